// Command vire-mcp serves the compliance MCP tools over stdio for clients
// that launch the server as a subprocess.
package main

import (
	"fmt"
	"os"

	"github.com/mark3labs/mcp-go/server"

	"github.com/bobmcallan/vire-compliance/internal/app"
)

func main() {
	a, err := app.NewApp(os.Getenv("VIRE_CONFIG"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize app: %v\n", err)
		os.Exit(1)
	}
	defer a.Close()

	a.Logger.Info().Msg("Serving MCP over stdio")

	if err := server.ServeStdio(a.MCPServer); err != nil {
		a.Logger.Error().Err(err).Msg("MCP stdio server failed")
		os.Exit(1)
	}
}

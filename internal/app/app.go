package app

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mark3labs/mcp-go/server"

	"github.com/bobmcallan/vire-compliance/internal/common"
	"github.com/bobmcallan/vire-compliance/internal/interfaces"
	"github.com/bobmcallan/vire-compliance/internal/services/compliance"
)

// App holds the initialized services and the MCP server.
// It is the shared core used by cmd/vire-server.
type App struct {
	Config            *common.Config
	Logger            *common.Logger
	ComplianceService interfaces.ComplianceService
	MCPServer         *server.MCPServer
	StartupTime       time.Time
}

// Uptime reports how long the App has been running.
func (a *App) Uptime() time.Duration {
	return time.Since(a.StartupTime)
}

// getBinaryDir returns the directory containing the executable.
func getBinaryDir() string {
	exe, err := os.Executable()
	if err != nil {
		return "."
	}
	return filepath.Dir(exe)
}

// resolveConfigPath picks the config file: explicit path, VIRE_CONFIG, a file
// next to the binary, then the development fallback.
func resolveConfigPath(configPath string) string {
	if configPath != "" {
		return configPath
	}
	if env := os.Getenv("VIRE_CONFIG"); env != "" {
		return env
	}
	path := filepath.Join(getBinaryDir(), "vire-compliance.toml")
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return "config/vire-compliance.toml"
	}
	return path
}

// NewApp loads configuration, builds the logger and services, and registers
// the MCP tools. configPath may be empty.
func NewApp(configPath string) (*App, error) {
	startupStart := time.Now()

	common.LoadVersionFromFile()

	config, err := common.LoadConfig(resolveConfigPath(configPath))
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logging := config.Logging
	logging.Format = config.LogFormat()
	logger := common.NewLoggerFromConfig(logging)

	a := NewAppWithConfig(config, logger)
	a.StartupTime = startupStart

	logger.Info().Dur("startup", time.Since(startupStart)).Msg("App initialized")

	return a, nil
}

// NewAppWithConfig wires an App from an already loaded config and logger.
func NewAppWithConfig(config *common.Config, logger *common.Logger) *App {
	mcpServer := server.NewMCPServer(
		"vire-compliance",
		common.GetVersion(),
		server.WithToolCapabilities(true),
	)

	a := &App{
		Config:            config,
		Logger:            logger,
		ComplianceService: compliance.NewService(logger),
		MCPServer:         mcpServer,
		StartupTime:       time.Now(),
	}

	a.registerTools()

	return a
}

// Close releases resources held by the App. The engine holds none today.
func (a *App) Close() {
	a.Logger.Debug().Msg("App closed")
}

// registerTools registers all MCP tools on the App's MCPServer.
func (a *App) registerTools() {
	s := a.MCPServer
	logger := a.Logger

	s.AddTool(createGetVersionTool(), handleGetVersion())
	s.AddTool(createGetRuleCatalogTool(), handleGetRuleCatalog(a.ComplianceService))
	s.AddTool(createEvaluateComplianceTool(), handleEvaluateCompliance(a.ComplianceService, logger))
}

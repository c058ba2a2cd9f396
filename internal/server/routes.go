package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/bobmcallan/vire-compliance/internal/common"
)

// setupMiddleware installs the stack shared by every route. The first one
// added runs first.
func (s *Server) setupMiddleware() {
	s.router.Use(recoveryMiddleware(s.logger))
	s.router.Use(middleware.RealIP)
	s.router.Use(corsMiddleware(s.app.Config))
	s.router.Use(correlationIDMiddleware)
	s.router.Use(loggingMiddleware(s.logger))
	s.router.Use(middleware.GetHead)
}

// setupRoutes registers the REST API and the MCP endpoint.
func (s *Server) setupRoutes() {
	s.router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		WriteError(w, http.StatusNotFound, "Not found")
	})
	s.router.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		WriteError(w, http.StatusMethodNotAllowed, "Method not allowed")
	})

	limited := rateLimitMiddleware(s.app.Config.API.RateLimit, s.app.Config.API.Burst)

	// System
	s.router.Get("/api/health", s.handleHealth)
	s.router.Get("/api/version", s.handleVersion)
	s.router.Get("/api/mcp/tools", s.handleToolCatalog)

	// Compliance
	s.router.Route("/api/compliance", func(r chi.Router) {
		r.Use(limited)
		r.Get("/catalog", s.handleComplianceCatalog)
		r.Post("/evaluate", s.handleComplianceEvaluate)
	})

	// MCP over Streamable HTTP
	httpMCP := mcpserver.NewStreamableHTTPServer(s.app.MCPServer,
		mcpserver.WithStateLess(true),
	)
	s.router.With(limited).Handle("/mcp", httpMCP)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// versionResponse is the body of GET /api/version.
type versionResponse struct {
	common.VersionInfo
	Environment   string `json:"environment"`
	UptimeSeconds int64  `json:"uptime_seconds"`
}

func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, versionResponse{
		VersionInfo:   common.GetVersionInfo(),
		Environment:   s.app.Config.Environment,
		UptimeSeconds: int64(s.app.Uptime().Seconds()),
	})
}

func (s *Server) handleToolCatalog(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, buildToolCatalog())
}

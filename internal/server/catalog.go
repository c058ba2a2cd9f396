package server

import "github.com/bobmcallan/vire-compliance/internal/models"

// buildToolCatalog describes the MCP tools and their HTTP mappings.
// Served at GET /api/mcp/tools so proxies can register tools dynamically.
func buildToolCatalog() []models.ToolDefinition {
	return []models.ToolDefinition{
		{
			Name:        "get_version",
			Description: "Get the compliance server version and status. Use this to verify connectivity.",
			Method:      "GET",
			Path:        "/api/version",
		},
		{
			Name:        "get_rule_catalog",
			Description: "List the portfolio constitution: every principle with its rules, thresholds, units and directions.",
			Method:      "GET",
			Path:        "/api/compliance/catalog",
		},
		{
			Name:        "evaluate_compliance",
			Description: "Evaluate a portfolio snapshot against the constitution and return a compliance report.",
			Method:      "POST",
			Path:        "/api/compliance/evaluate",
			Params: []models.ParamDefinition{
				{
					Name:        "snapshot",
					Type:        "object",
					Description: "Portfolio snapshot: holdings, total_value, optional total_cost and currency.",
					Required:    true,
					In:          "body",
				},
				{
					Name:        "format",
					Type:        "string",
					Description: "Response format: json (default), markdown or msgpack.",
					In:          "query",
				},
			},
		},
	}
}

package app

import (
	"github.com/mark3labs/mcp-go/mcp"
)

func createGetVersionTool() mcp.Tool {
	return mcp.NewTool("get_version",
		mcp.WithDescription("Get the compliance server version and status. Use this to verify connectivity."),
	)
}

func createGetRuleCatalogTool() mcp.Tool {
	return mcp.NewTool("get_rule_catalog",
		mcp.WithDescription("List the portfolio constitution: every principle with its rules, thresholds, units and directions."),
	)
}

func createEvaluateComplianceTool() mcp.Tool {
	return mcp.NewTool("evaluate_compliance",
		mcp.WithDescription("Evaluate a portfolio snapshot against the constitution. Returns a health score, per-principle verdicts, commentary and up to three recommended actions as markdown."),
		mcp.WithString("snapshot",
			mcp.Required(),
			mcp.Description(`Portfolio snapshot as JSON, e.g. {"holdings":[{"ticker":"AAPL","market_value":12000,"sector":"Technology","security_type":"stock"}],"total_value":100000,"currency":"USD"}`),
		),
	)
}

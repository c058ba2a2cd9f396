package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/bobmcallan/vire-compliance/internal/common"
	"github.com/bobmcallan/vire-compliance/internal/interfaces"
	"github.com/bobmcallan/vire-compliance/internal/models"
	"github.com/bobmcallan/vire-compliance/internal/services/compliance"
)

// handleGetVersion implements the get_version tool
func handleGetVersion() server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result := fmt.Sprintf("Vire Compliance MCP Server\nVersion: %s\nBuild: %s\nCommit: %s\nStatus: OK",
			common.GetVersion(), common.GetBuild(), common.GetGitCommit())
		return textResult(result), nil
	}
}

// handleGetRuleCatalog implements the get_rule_catalog tool
func handleGetRuleCatalog(svc interfaces.ComplianceService) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return textResult(formatCatalog(svc.Catalog())), nil
	}
}

// handleEvaluateCompliance implements the evaluate_compliance tool
func handleEvaluateCompliance(svc interfaces.ComplianceService, logger *common.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		raw, err := request.RequireString("snapshot")
		if err != nil || strings.TrimSpace(raw) == "" {
			return errorResult("Error: snapshot parameter is required"), nil
		}

		var snapshot models.PortfolioSnapshot
		if err := json.Unmarshal([]byte(raw), &snapshot); err != nil {
			return errorResult(fmt.Sprintf("Error: snapshot is not valid JSON: %v", err)), nil
		}

		report, err := svc.Evaluate(ctx, &snapshot)
		if err != nil {
			if errors.Is(err, compliance.ErrInvalidSnapshot) {
				return errorResult(fmt.Sprintf("Error: %v", err)), nil
			}
			logger.Error().Err(err).Msg("Compliance evaluation failed")
			return errorResult(fmt.Sprintf("Error evaluating compliance: %v", err)), nil
		}

		return textResult(report.ToMarkdown()), nil
	}
}

func formatCatalog(catalog models.RuleCatalog) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("# Portfolio Constitution (v%s)\n\n", catalog.Version))
	sb.WriteString(fmt.Sprintf("%d principles, %d rules.\n\n", len(catalog.Principles), catalog.RuleCount()))

	for _, p := range catalog.Principles {
		sb.WriteString(fmt.Sprintf("## %s %s\n\n", p.Icon, p.Name))
		sb.WriteString(fmt.Sprintf("*%s*\n\n", p.Tagline))
		sb.WriteString("| Rule | Threshold | Description |\n")
		sb.WriteString("|------|-----------|-------------|\n")
		for _, r := range p.Rules {
			sb.WriteString(fmt.Sprintf("| %s | %s | %s |\n", r.Name, models.FormatRuleThreshold(r), r.Description))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.NewTextContent(text),
		},
	}
}

func errorResult(message string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.NewTextContent(message),
		},
		IsError: true,
	}
}

package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleReport() *ComplianceReport {
	value := 12.0
	return &ComplianceReport{
		HealthScore:    86,
		CatalogVersion: "2026.1",
		TotalValue:     1234.5,
		Currency:       "USD",
		Commentary:     Commentary{Icon: "👍", Main: "Your portfolio is in good shape overall.", Detail: "Keep an eye on Diversification."},
		Actions:        []Action{{ID: "add-cash", Icon: "💵", Text: "Add 2.0% to Cash", Priority: PriorityHigh}},
		Principles: []PrincipleReport{{
			ID: "diversification", Name: "Diversification", Icon: "🌐", Tagline: "Spread the risk",
			Status: StatusWarning, PassingCount: 1, TotalCount: 3,
			Rules: []RuleReport{
				{ID: "max-position", Name: "Max single position", Value: &value, Limit: 10, Unit: "%", Direction: AtMost, Status: StatusWarning},
				{ID: "min-holdings", Name: "Minimum holdings", Limit: 15, Unit: "holdings", Direction: AtLeast, Status: StatusPassing},
				{ID: "harvest", Name: "Harvest", Limit: 0, Unit: "candidates", Neutral: true, Status: StatusPassing},
			},
		}},
	}
}

func TestComplianceReport_ToMarkdown(t *testing.T) {
	md := sampleReport().ToMarkdown()

	assert.Contains(t, md, "# Portfolio Compliance Report")
	assert.Contains(t, md, "**Health Score:** 86/100")
	assert.Contains(t, md, "**Portfolio Value:** $1,234.50")
	assert.Contains(t, md, "**Rule Catalog:** 2026.1")
	assert.Contains(t, md, "> 👍 Your portfolio is in good shape overall.\n>\n> Keep an eye on Diversification.")
	assert.Contains(t, md, "1. 💵 Add 2.0% to Cash (high)")
	assert.Contains(t, md, "### 🌐 Diversification: warning (1/3 passing)")
	assert.Contains(t, md, "| Max single position | 12% | ≤ 10% | warning |")
	assert.Contains(t, md, "| Minimum holdings | n/a | ≥ 15 holdings | passing |")
	assert.Contains(t, md, "| Harvest | n/a | info | passing |")
}

func TestComplianceReport_ToMarkdownWithoutActions(t *testing.T) {
	r := sampleReport()
	r.Actions = []Action{}
	r.Commentary.Detail = ""

	md := r.ToMarkdown()
	assert.NotContains(t, md, "Recommended Actions")
	assert.NotContains(t, md, ">\n>")
}

func TestComplianceReport_JSON(t *testing.T) {
	b, err := json.Marshal(sampleReport())
	require.NoError(t, err)
	s := string(b)

	assert.Contains(t, s, `"status":"warning"`)
	assert.Contains(t, s, `"direction":"at_least"`)
	assert.Contains(t, s, `"value":null`, "unknown values serialize as null, not 0")
	assert.Contains(t, s, `"value":12`)
}

func TestComplianceReport_CountByStatus(t *testing.T) {
	r := &ComplianceReport{Principles: []PrincipleReport{
		{Status: StatusFailing}, {Status: StatusWarning}, {Status: StatusFailing},
	}}
	assert.Equal(t, 2, r.CountByStatus(StatusFailing))
	assert.Equal(t, 1, r.CountByStatus(StatusWarning))
	assert.Equal(t, 0, r.CountByStatus(StatusPassing))
}

func TestNewPrincipleReport(t *testing.T) {
	pe := PrincipleEvaluation{
		Principle:    Principle{ID: "p", Name: "P", Icon: "x", Tagline: "t"},
		Status:       StatusFailing,
		PassingCount: 0,
		TotalCount:   1,
		Rules: []RuleEvaluation{{
			Rule:   Rule{ID: "r", Limit: 5, Unit: "%", Direction: AtLeast},
			Value:  Measured(0),
			Status: StatusFailing,
		}},
	}
	pr := NewPrincipleReport(pe)

	assert.Equal(t, "p", pr.ID)
	require.Len(t, pr.Rules, 1)
	require.NotNil(t, pr.Rules[0].Value, "a measured zero keeps its value")
	assert.Equal(t, 0.0, *pr.Rules[0].Value)
	assert.Equal(t, StatusFailing, pr.Rules[0].Status)
}

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "$1,234.50", FormatMoney(1234.5, "usd"))
	assert.Equal(t, "$0.00", FormatMoney(0, ""))
	assert.Equal(t, FormatMoney(10, "USD"), FormatMoney(10, "ZZZ"), "unknown codes fall back to USD")
}

func TestFormatRuleThreshold(t *testing.T) {
	assert.Equal(t, "≤ 10%", FormatRuleThreshold(Rule{Limit: 10, Unit: "%", Direction: AtMost}))
	assert.Equal(t, "≥ 0.5 months", FormatRuleThreshold(Rule{Limit: 0.5, Unit: "months", Direction: AtLeast}))
	assert.Equal(t, "≤ 0", FormatRuleThreshold(Rule{Limit: 0, Direction: AtMost}))
	assert.Equal(t, "info", FormatRuleThreshold(Rule{Limit: 3, Neutral: true}))
}

package models

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/Rhymond/go-money"
)

// RuleEvaluation is the verdict for one rule against one metric value. Derived, never stored.
type RuleEvaluation struct {
	Rule   Rule
	Value  MetricValue
	Status Status
}

// PrincipleEvaluation is the folded verdict for a principle's rules.
type PrincipleEvaluation struct {
	Principle    Principle
	Status       Status
	PassingCount int
	TotalCount   int
	Rules        []RuleEvaluation
}

// Commentary is the advisory summary shown above the report.
type Commentary struct {
	Icon   string `json:"icon"`
	Main   string `json:"main"`
	Detail string `json:"detail"`
}

// ActionPriority ranks a recommended action.
type ActionPriority string

const (
	PriorityHigh   ActionPriority = "high"
	PriorityMedium ActionPriority = "medium"
	PriorityLow    ActionPriority = "low"
)

// Action is a single user-actionable remediation step.
type Action struct {
	ID       string         `json:"id"`
	Icon     string         `json:"icon"`
	Text     string         `json:"text"`
	Priority ActionPriority `json:"priority"`
}

// RuleReport is the presentation form of a RuleEvaluation.
// Value is nil when the metric could not be measured.
type RuleReport struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Value       *float64  `json:"value"`
	Limit       float64   `json:"limit"`
	Unit        string    `json:"unit"`
	Direction   Direction `json:"direction"`
	Neutral     bool      `json:"neutral,omitempty"`
	Status      Status    `json:"status"`
}

// PrincipleReport is the presentation form of a PrincipleEvaluation.
type PrincipleReport struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Icon         string       `json:"icon"`
	Tagline      string       `json:"tagline"`
	Status       Status       `json:"status"`
	PassingCount int          `json:"passing_count"`
	TotalCount   int          `json:"total_count"`
	Rules        []RuleReport `json:"rules"`
}

// ComplianceReport is the engine output. Computed fresh per request and never
// mutated or persisted by the engine.
type ComplianceReport struct {
	HealthScore    int               `json:"health_score"`
	CatalogVersion string            `json:"catalog_version"`
	TotalValue     float64           `json:"total_value"`
	Currency       string            `json:"currency"`
	Principles     []PrincipleReport `json:"principles"`
	Commentary     Commentary        `json:"commentary"`
	Actions        []Action          `json:"actions"`
}

// NewRuleReport converts an evaluation into its presentation form.
func NewRuleReport(e RuleEvaluation) RuleReport {
	return RuleReport{
		ID:          e.Rule.ID,
		Name:        e.Rule.Name,
		Description: e.Rule.Description,
		Value:       e.Value.Ptr(),
		Limit:       e.Rule.Limit,
		Unit:        e.Rule.Unit,
		Direction:   e.Rule.Direction,
		Neutral:     e.Rule.Neutral,
		Status:      e.Status,
	}
}

// NewPrincipleReport converts a principle evaluation into its presentation form.
func NewPrincipleReport(pe PrincipleEvaluation) PrincipleReport {
	rules := make([]RuleReport, 0, len(pe.Rules))
	for _, re := range pe.Rules {
		rules = append(rules, NewRuleReport(re))
	}
	return PrincipleReport{
		ID:           pe.Principle.ID,
		Name:         pe.Principle.Name,
		Icon:         pe.Principle.Icon,
		Tagline:      pe.Principle.Tagline,
		Status:       pe.Status,
		PassingCount: pe.PassingCount,
		TotalCount:   pe.TotalCount,
		Rules:        rules,
	}
}

// CountByStatus returns how many principles currently hold the given status.
func (r *ComplianceReport) CountByStatus(status Status) int {
	n := 0
	for _, p := range r.Principles {
		if p.Status == status {
			n++
		}
	}
	return n
}

// ToMarkdown renders the report as a readable markdown document.
func (r *ComplianceReport) ToMarkdown() string {
	var b strings.Builder

	b.WriteString("# Portfolio Compliance Report\n\n")
	b.WriteString(fmt.Sprintf("**Health Score:** %d/100\n", r.HealthScore))
	b.WriteString(fmt.Sprintf("**Portfolio Value:** %s\n", FormatMoney(r.TotalValue, r.Currency)))
	if r.CatalogVersion != "" {
		b.WriteString(fmt.Sprintf("**Rule Catalog:** %s\n", r.CatalogVersion))
	}
	b.WriteString("\n")

	// Commentary
	b.WriteString(fmt.Sprintf("> %s %s\n", r.Commentary.Icon, r.Commentary.Main))
	if r.Commentary.Detail != "" {
		b.WriteString(fmt.Sprintf(">\n> %s\n", r.Commentary.Detail))
	}
	b.WriteString("\n")

	// Actions
	if len(r.Actions) > 0 {
		b.WriteString("## Recommended Actions\n\n")
		for i, a := range r.Actions {
			b.WriteString(fmt.Sprintf("%d. %s %s (%s)\n", i+1, a.Icon, a.Text, a.Priority))
		}
		b.WriteString("\n")
	}

	// Principles
	b.WriteString("## Principles\n\n")
	for _, p := range r.Principles {
		b.WriteString(fmt.Sprintf("### %s %s: %s (%d/%d passing)\n\n", p.Icon, p.Name, p.Status, p.PassingCount, p.TotalCount))
		if p.Tagline != "" {
			b.WriteString(fmt.Sprintf("*%s*\n\n", p.Tagline))
		}
		b.WriteString("| Rule | Value | Limit | Status |\n")
		b.WriteString("|------|-------|-------|--------|\n")
		for _, rr := range p.Rules {
			b.WriteString(fmt.Sprintf("| %s | %s | %s | %s |\n",
				rr.Name, formatRuleValue(rr.Value, rr.Unit), formatRuleLimit(rr), rr.Status))
		}
		b.WriteString("\n")
	}

	return b.String()
}

// FormatMoney renders amount in the given ISO currency, falling back to USD
// for codes go-money does not know.
func FormatMoney(amount float64, currency string) string {
	code := strings.ToUpper(strings.TrimSpace(currency))
	if code == "" || money.GetCurrency(code) == nil {
		code = DefaultCurrency
	}
	return money.NewFromFloat(amount, code).Display()
}

func formatRuleValue(v *float64, unit string) string {
	if v == nil {
		return "n/a"
	}
	return formatQuantity(*v, unit)
}

// FormatRuleThreshold renders a rule's limit with its direction, e.g. "≤ 10%".
func FormatRuleThreshold(r Rule) string {
	return formatThreshold(r.Limit, r.Unit, r.Direction, r.Neutral)
}

func formatRuleLimit(rr RuleReport) string {
	return formatThreshold(rr.Limit, rr.Unit, rr.Direction, rr.Neutral)
}

func formatThreshold(limit float64, unit string, dir Direction, neutral bool) string {
	if neutral {
		return "info"
	}
	op := "≤"
	if dir == AtLeast {
		op = "≥"
	}
	return op + " " + formatQuantity(limit, unit)
}

func formatQuantity(v float64, unit string) string {
	n := strconv.FormatFloat(math.Round(v*10)/10, 'f', -1, 64)
	switch unit {
	case "":
		return n
	case "%":
		return n + "%"
	}
	return n + " " + unit
}

package compliance

import (
	"github.com/bobmcallan/vire-compliance/internal/models"
)

// CatalogVersion identifies the rule table below. Bump it whenever a limit,
// direction, or rule membership changes so reports can be compared.
const CatalogVersion = "2026.1"

// Rule ids referenced outside the table (actions, narration).
const (
	RuleMaxPosition    = "max-position"
	RuleMaxSector      = "max-sector"
	RuleMinHoldings    = "min-holdings"
	RuleMinCash        = "min-cash"
	RuleMaxCash        = "max-cash"
	RuleMaxSpeculative = "max-speculative"
)

// Principle ids.
const (
	PrincipleDiversification = "diversification"
	PrincipleLiquidity       = "liquidity"
	PrincipleCostDiscipline  = "cost-discipline"
	PrinciplePatience        = "patience"
	PrincipleConviction      = "conviction"
	PrincipleTaxEfficiency   = "tax-efficiency"
)

var catalog = []models.Principle{
	{
		ID:      PrincipleDiversification,
		Name:    "Diversification",
		Icon:    "🧩",
		Tagline: "No single bet should be able to sink the portfolio.",
		Rules: []models.Rule{
			{ID: RuleMaxPosition, Name: "Max single position", Description: "A single company failing should not cost more than a tenth of the portfolio.",
				Metric: models.MetricMaxPositionPct, Limit: 10, Unit: "%", Direction: models.AtMost},
			{ID: RuleMaxSector, Name: "Max sector exposure", Description: "Sectors move together; cap how much rides on one.",
				Metric: models.MetricMaxSectorPct, Limit: 30, Unit: "%", Direction: models.AtMost},
			{ID: "top-five", Name: "Top five weight", Description: "The five largest positions should not dominate the portfolio.",
				Metric: models.MetricTopFivePct, Limit: 50, Unit: "%", Direction: models.AtMost},
			{ID: RuleMinHoldings, Name: "Minimum holdings", Description: "Enough positions to spread idiosyncratic risk.",
				Metric: models.MetricHoldingCount, Limit: 15, Unit: "holdings", Direction: models.AtLeast},
			{ID: "effective-holdings", Name: "Effective positions", Description: "Inverse concentration index; counts positions the way risk sees them.",
				Metric: models.MetricEffectiveHoldings, Limit: 10, Unit: "positions", Direction: models.AtLeast},
		},
	},
	{
		ID:      PrincipleLiquidity,
		Name:    "Liquidity",
		Icon:    "💧",
		Tagline: "Keep dry powder for emergencies and opportunities.",
		Rules: []models.Rule{
			{ID: RuleMinCash, Name: "Minimum cash buffer", Description: "Cash on hand avoids forced selling at bad prices.",
				Metric: models.MetricCashPct, Limit: 5, Unit: "%", Direction: models.AtLeast},
			{ID: RuleMaxCash, Name: "Maximum idle cash", Description: "Too much cash quietly loses to inflation.",
				Metric: models.MetricCashPct, Limit: 25, Unit: "%", Direction: models.AtMost},
			{ID: "max-illiquid", Name: "Illiquid assets cap", Description: "Assets that cannot be sold quickly stay a minority.",
				Metric: models.MetricIlliquidPct, Limit: 10, Unit: "%", Direction: models.AtMost},
			{ID: "max-leverage", Name: "No leverage", Description: "Borrowed money turns drawdowns into margin calls.",
				Metric: models.MetricLeveragePct, Limit: 0, Unit: "%", Direction: models.AtMost},
		},
	},
	{
		ID:      PrincipleCostDiscipline,
		Name:    "Cost Discipline",
		Icon:    "💸",
		Tagline: "Fees and friction compound against you.",
		Rules: []models.Rule{
			{ID: "max-turnover", Name: "Annual turnover", Description: "Frequent trading adds spread, commission, and tax drag.",
				Metric: models.MetricTurnoverPct, Limit: 30, Unit: "%", Direction: models.AtMost},
			{ID: "max-expense-ratio", Name: "Weighted expense ratio", Description: "Fund fees are a guaranteed negative return.",
				Metric: models.MetricExpenseRatioPct, Limit: 0.5, Unit: "%", Direction: models.AtMost},
			{ID: "max-trades", Name: "Trades per month", Description: "Activity is not the same as progress.",
				Metric: models.MetricTradesPerMonth, Limit: 10, Unit: "trades", Direction: models.AtMost},
			{ID: "min-position-size", Name: "Minimum position size", Description: "Tiny positions cost attention without moving the needle.",
				Metric: models.MetricMinPositionPct, Limit: 1, Unit: "%", Direction: models.AtLeast},
		},
	},
	{
		ID:      PrinciplePatience,
		Name:    "Patience",
		Icon:    "⏳",
		Tagline: "Time in the market beats timing the market.",
		Rules: []models.Rule{
			{ID: "min-holding-period", Name: "Average holding period", Description: "Give each thesis time to play out.",
				Metric: models.MetricAvgHoldingMonths, Limit: 12, Unit: "months", Direction: models.AtLeast},
			{ID: "max-short-term", Name: "Short-term positions", Description: "Positions opened in the last year stay a minority.",
				Metric: models.MetricShortTermPositionPct, Limit: 20, Unit: "%", Direction: models.AtMost},
			{ID: "max-position-loss", Name: "Largest position loss", Description: "A deep loser needs a fresh look at its thesis.",
				Metric: models.MetricMaxPositionLossPct, Limit: 25, Unit: "%", Direction: models.AtMost},
			{ID: "max-portfolio-loss", Name: "Portfolio drawdown from cost", Description: "Aggregate unrealized loss against what was invested.",
				Metric: models.MetricPortfolioLossPct, Limit: 20, Unit: "%", Direction: models.AtMost},
		},
	},
	{
		ID:      PrincipleConviction,
		Name:    "Conviction",
		Icon:    "🔍",
		Tagline: "Own nothing you cannot explain.",
		Rules: []models.Rule{
			{ID: "thesis-coverage", Name: "Documented thesis coverage", Description: "Every position has a written reason to own it.",
				Metric: models.MetricThesisCoveragePct, Limit: 100, Unit: "%", Direction: models.AtLeast},
			{ID: "stale-reviews", Name: "Overdue reviews", Description: "Positions not reviewed in the last quarter.",
				Metric: models.MetricStaleReviewCount, Limit: 0, Unit: "reviews", Direction: models.AtMost},
			{ID: RuleMaxSpeculative, Name: "Speculative allocation", Description: "Crypto, options, and other lottery tickets stay small.",
				Metric: models.MetricSpeculativePct, Limit: 5, Unit: "%", Direction: models.AtMost},
			{ID: "max-unclassified", Name: "Unclassified holdings", Description: "Holdings without a sector cannot be risk-checked.",
				Metric: models.MetricUnclassifiedPct, Limit: 5, Unit: "%", Direction: models.AtMost},
		},
	},
	{
		ID:      PrincipleTaxEfficiency,
		Name:    "Tax Efficiency",
		Icon:    "🧾",
		Tagline: "Keep more of what you earn.",
		Rules: []models.Rule{
			{ID: "harvest-opportunities", Name: "Tax-loss harvest candidates", Description: "Positions at least 5% below cost that could offset gains.",
				Metric: models.MetricHarvestCandidates, Limit: 0, Unit: "candidates", Direction: models.AtMost, Neutral: true},
			{ID: "max-short-term-gains", Name: "Short-term gains exposure", Description: "Unrealized gains that would be taxed at income rates.",
				Metric: models.MetricShortTermGainPct, Limit: 10, Unit: "%", Direction: models.AtMost},
			{ID: "wash-sales", Name: "Wash sale risk", Description: "Repurchases inside the wash-sale window.",
				Metric: models.MetricWashSaleCount, Limit: 0, Unit: "sales", Direction: models.AtMost},
			{ID: "realized-losses", Name: "Realized losses this year", Description: "Losses banked year to date.",
				Metric: models.MetricRealizedLossesYTD, Limit: 0, Unit: "", Direction: models.AtMost, Neutral: true},
		},
	},
}

// Catalog returns a copy of the rule catalog. The package-level table is never
// handed out directly so evaluation cannot mutate it.
func Catalog() []models.Principle {
	out := make([]models.Principle, len(catalog))
	for i, p := range catalog {
		out[i] = p
		out[i].Rules = append([]models.Rule(nil), p.Rules...)
	}
	return out
}

// RuleCatalog returns the versioned catalog.
func RuleCatalog() models.RuleCatalog {
	return models.RuleCatalog{Version: CatalogVersion, Principles: Catalog()}
}

// LookupRule finds a rule by id.
func LookupRule(id string) (models.Rule, bool) {
	for _, p := range catalog {
		for _, r := range p.Rules {
			if r.ID == id {
				return r, true
			}
		}
	}
	return models.Rule{}, false
}

// ruleLimit returns the limit for a rule id. Only used with ids declared above.
func ruleLimit(id string) float64 {
	r, ok := LookupRule(id)
	if !ok {
		panic("compliance: unknown rule " + id)
	}
	return r.Limit
}

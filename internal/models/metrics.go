package models

// MetricID names a numeric value derived from a portfolio snapshot.
type MetricID string

// Metrics measured from holdings.
const (
	MetricMaxPositionPct     MetricID = "max_position_pct"
	MetricMaxSectorPct       MetricID = "max_sector_pct"
	MetricTopFivePct         MetricID = "top_five_pct"
	MetricHoldingCount       MetricID = "holding_count"
	MetricEffectiveHoldings  MetricID = "effective_holdings"
	MetricCashPct            MetricID = "cash_pct"
	MetricIlliquidPct        MetricID = "illiquid_pct"
	MetricMinPositionPct     MetricID = "min_position_pct"
	MetricMaxPositionLossPct MetricID = "max_position_loss_pct"
	MetricPortfolioLossPct   MetricID = "portfolio_loss_pct"
	MetricSpeculativePct     MetricID = "speculative_pct"
	MetricUnclassifiedPct    MetricID = "unclassified_pct"
	MetricHarvestCandidates  MetricID = "harvest_candidates"
)

// Metrics that need trade history, tax lots, or research notes. A snapshot
// never carries that data, so these are always unknown.
const (
	MetricTurnoverPct          MetricID = "turnover_pct"
	MetricExpenseRatioPct      MetricID = "expense_ratio_pct"
	MetricTradesPerMonth       MetricID = "trades_per_month"
	MetricLeveragePct          MetricID = "leverage_pct"
	MetricAvgHoldingMonths     MetricID = "avg_holding_months"
	MetricShortTermPositionPct MetricID = "short_term_position_pct"
	MetricThesisCoveragePct    MetricID = "thesis_coverage_pct"
	MetricStaleReviewCount     MetricID = "stale_review_count"
	MetricShortTermGainPct     MetricID = "short_term_gain_pct"
	MetricWashSaleCount        MetricID = "wash_sale_count"
	MetricRealizedLossesYTD    MetricID = "realized_losses_ytd"
)

// MetricValue is a measured number or the "unknown" marker. The zero value is
// unknown, which is distinct from a measured 0.
type MetricValue struct {
	Value float64
	Known bool
}

// Measured wraps a value that was derived from the snapshot.
func Measured(v float64) MetricValue {
	return MetricValue{Value: v, Known: true}
}

// Unknown is the marker for a metric the snapshot cannot supply.
var Unknown = MetricValue{}

// Ptr returns the value as a pointer, nil when unknown. Used for JSON output.
func (v MetricValue) Ptr() *float64 {
	if !v.Known {
		return nil
	}
	f := v.Value
	return &f
}

// Metrics holds everything derived from one snapshot.
type Metrics struct {
	Values          map[MetricID]MetricValue
	LargestPosition string // ticker of the largest non-cash position
	LargestSector   string // sector with the largest aggregate weight
	TotalValue      float64
	Currency        string
}

// Get returns the value for id, or Unknown when it was never set.
func (m Metrics) Get(id MetricID) MetricValue {
	if m.Values == nil {
		return Unknown
	}
	return m.Values[id]
}

package compliance

import (
	"math"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
	"gonum.org/v1/gonum/floats"

	"github.com/bobmcallan/vire-compliance/internal/models"
)

// harvestLossPct is how far below cost a holding must sit to count as a
// tax-loss harvesting candidate.
const harvestLossPct = 5

var (
	illiquidTypes    = []string{"private", "private_equity", "real_estate", "collectible", "illiquid"}
	speculativeTypes = []string{"crypto", "cryptocurrency", "option", "derivative", "warrant", "speculative"}

	// metrics a snapshot cannot supply
	unmeasurable = []models.MetricID{
		models.MetricTurnoverPct,
		models.MetricExpenseRatioPct,
		models.MetricTradesPerMonth,
		models.MetricLeveragePct,
		models.MetricAvgHoldingMonths,
		models.MetricShortTermPositionPct,
		models.MetricThesisCoveragePct,
		models.MetricStaleReviewCount,
		models.MetricShortTermGainPct,
		models.MetricWashSaleCount,
		models.MetricRealizedLossesYTD,
	}

	hundred = decimal.NewFromInt(100)
)

type position struct {
	ticker string
	value  decimal.Decimal
}

type sectorWeight struct {
	name  string
	value decimal.Decimal
}

// ComputeMetrics derives the numeric portfolio metrics from a snapshot.
// A nil snapshot is treated as an empty portfolio.
//
// Holdings with a non-positive or non-finite market value are ignored
// entirely. Cash is excluded from the position, sector and count metrics.
// When the total is 0 every percentage is a measured 0.
func ComputeMetrics(snapshot *models.PortfolioSnapshot) models.Metrics {
	var holdings []models.Holding
	if snapshot != nil {
		holdings = snapshot.Holdings
	}

	sum := decimal.Zero
	for _, h := range holdings {
		if usable(h.MarketValue) {
			sum = sum.Add(decimal.NewFromFloat(h.MarketValue))
		}
	}
	total := sum
	if snapshot != nil && usable(snapshot.TotalValue) {
		total = decimal.NewFromFloat(snapshot.TotalValue)
	}

	pct := func(v decimal.Decimal) float64 {
		if total.IsZero() {
			return 0
		}
		return v.Div(total).Mul(hundred).InexactFloat64()
	}

	var (
		positions    []position
		sectors      []sectorWeight
		sectorIndex  = map[string]int{}
		cash         = decimal.Zero
		invested     = decimal.Zero
		illiquid     = decimal.Zero
		speculative  = decimal.Zero
		unclassified = decimal.Zero
		costedCost   = decimal.Zero
		costedValue  = decimal.Zero
		maxLoss      = decimal.Zero
		harvest      = 0
		anyCost      = false
	)

	for _, h := range holdings {
		if !usable(h.MarketValue) {
			continue
		}
		v := decimal.NewFromFloat(h.MarketValue)

		if h.IsCash() {
			cash = cash.Add(v)
			continue
		}

		invested = invested.Add(v)
		positions = append(positions, position{ticker: h.Ticker, value: v})

		if usable(h.CostBasis) {
			anyCost = true
			cost := decimal.NewFromFloat(h.CostBasis)
			costedCost = costedCost.Add(cost)
			costedValue = costedValue.Add(v)
			loss := cost.Sub(v).Div(cost).Mul(hundred)
			if loss.GreaterThan(maxLoss) {
				maxLoss = loss
			}
			if loss.GreaterThanOrEqual(decimal.NewFromInt(harvestLossPct)) {
				harvest++
			}
		}

		sector := strings.TrimSpace(h.Sector)
		if sector == "" {
			unclassified = unclassified.Add(v)
		} else {
			key := strings.ToLower(sector)
			if i, ok := sectorIndex[key]; ok {
				sectors[i].value = sectors[i].value.Add(v)
			} else {
				sectorIndex[key] = len(sectors)
				sectors = append(sectors, sectorWeight{name: sector, value: v})
			}
		}

		if h.HasSecurityType(illiquidTypes...) {
			illiquid = illiquid.Add(v)
		}
		if h.HasSecurityType(speculativeTypes...) {
			speculative = speculative.Add(v)
		}
	}

	m := models.Metrics{
		Values:     make(map[models.MetricID]models.MetricValue, 24),
		TotalValue: total.InexactFloat64(),
		Currency:   snapshot.CurrencyCode(),
	}

	// Largest position and sector; ties keep the first one seen.
	maxPos := decimal.Zero
	for _, p := range positions {
		if p.value.GreaterThan(maxPos) {
			maxPos = p.value
			m.LargestPosition = p.ticker
		}
	}
	maxSector := decimal.Zero
	for _, s := range sectors {
		if s.value.GreaterThan(maxSector) {
			maxSector = s.value
			m.LargestSector = s.name
		}
	}

	m.Values[models.MetricMaxPositionPct] = models.Measured(pct(maxPos))
	m.Values[models.MetricMaxSectorPct] = models.Measured(pct(maxSector))
	m.Values[models.MetricTopFivePct] = models.Measured(pct(topN(positions, 5)))
	m.Values[models.MetricHoldingCount] = models.Measured(float64(len(positions)))
	m.Values[models.MetricEffectiveHoldings] = models.Measured(effectiveHoldings(positions, invested))
	m.Values[models.MetricCashPct] = models.Measured(pct(cash))
	m.Values[models.MetricIlliquidPct] = models.Measured(pct(illiquid))
	m.Values[models.MetricSpeculativePct] = models.Measured(pct(speculative))
	m.Values[models.MetricUnclassifiedPct] = models.Measured(pct(unclassified))

	if len(positions) > 0 {
		minPos := positions[0].value
		for _, p := range positions[1:] {
			if p.value.LessThan(minPos) {
				minPos = p.value
			}
		}
		m.Values[models.MetricMinPositionPct] = models.Measured(pct(minPos))
	} else {
		m.Values[models.MetricMinPositionPct] = models.Unknown
	}

	if anyCost {
		m.Values[models.MetricMaxPositionLossPct] = models.Measured(maxLoss.InexactFloat64())
		m.Values[models.MetricHarvestCandidates] = models.Measured(float64(harvest))
	} else {
		m.Values[models.MetricMaxPositionLossPct] = models.Unknown
		m.Values[models.MetricHarvestCandidates] = models.Unknown
	}

	// A supplied total cost covers the whole portfolio, cash included, so it
	// is compared against invested value plus cash. Without one only holdings
	// that carry a cost basis take part. No value to compare leaves it unknown.
	costBase, valueBase := costedCost, costedValue
	if snapshot != nil && usable(snapshot.TotalCost) {
		costBase, valueBase = decimal.NewFromFloat(snapshot.TotalCost), invested.Add(cash)
	}
	if costBase.IsPositive() && valueBase.IsPositive() {
		loss := decimal.Max(decimal.Zero, costBase.Sub(valueBase).Div(costBase).Mul(hundred))
		m.Values[models.MetricPortfolioLossPct] = models.Measured(loss.InexactFloat64())
	} else {
		m.Values[models.MetricPortfolioLossPct] = models.Unknown
	}

	for _, id := range unmeasurable {
		m.Values[id] = models.Unknown
	}

	return m
}

// usable reports whether a snapshot number can take part in the metrics.
func usable(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}

// topN sums the n largest position values.
func topN(positions []position, n int) decimal.Decimal {
	values := make([]decimal.Decimal, len(positions))
	for i, p := range positions {
		values[i] = p.value
	}
	sort.SliceStable(values, func(i, j int) bool {
		return values[i].GreaterThan(values[j])
	})
	sum := decimal.Zero
	for i := 0; i < len(values) && i < n; i++ {
		sum = sum.Add(values[i])
	}
	return sum
}

// effectiveHoldings is the inverse Herfindahl index of the invested weights:
// n equal positions give n, one dominant position tends to 1.
func effectiveHoldings(positions []position, invested decimal.Decimal) float64 {
	if len(positions) == 0 || !invested.IsPositive() {
		return 0
	}
	weights := make([]float64, len(positions))
	for i, p := range positions {
		weights[i] = p.value.Div(invested).InexactFloat64()
	}
	hhi := floats.Dot(weights, weights)
	if hhi <= 0 {
		return 0
	}
	// four places absorbs float noise so n equal weights give exactly n
	return math.Round(1/hhi*1e4) / 1e4
}

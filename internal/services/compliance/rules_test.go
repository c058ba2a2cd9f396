package compliance

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bobmcallan/vire-compliance/internal/models"
)

func TestEvaluateRule_Boundaries(t *testing.T) {
	atMost := models.Rule{ID: "cap", Limit: 10, Direction: models.AtMost}
	atLeast := models.Rule{ID: "floor", Limit: 5, Direction: models.AtLeast}
	zeroCap := models.Rule{ID: "none", Limit: 0, Direction: models.AtMost}
	fractional := models.Rule{ID: "fees", Limit: 0.5, Direction: models.AtMost}

	tests := []struct {
		name  string
		rule  models.Rule
		value float64
		want  models.Status
	}{
		{"at most: well under", atMost, 0, models.StatusPassing},
		{"at most: at limit", atMost, 10, models.StatusPassing},
		{"at most: just over", atMost, 10.0001, models.StatusWarning},
		{"at most: at band edge", atMost, 12, models.StatusWarning},
		{"at most: past band", atMost, 12.0001, models.StatusFailing},
		{"at least: at limit", atLeast, 5, models.StatusPassing},
		{"at least: above", atLeast, 50, models.StatusPassing},
		{"at least: at band edge", atLeast, 4, models.StatusWarning},
		{"at least: past band", atLeast, 3.9999, models.StatusFailing},
		{"at least: cash 3 vs 5", atLeast, 3, models.StatusFailing},
		{"zero cap: zero", zeroCap, 0, models.StatusPassing},
		{"zero cap: anything", zeroCap, 0.01, models.StatusFailing},
		{"fractional: band edge", fractional, 0.6, models.StatusWarning},
		{"fractional: past band", fractional, 0.61, models.StatusFailing},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EvaluateRule(tt.rule, models.Measured(tt.value))
			assert.Equal(t, tt.want, got, "value %v against %s %v", tt.value, tt.rule.Direction, tt.rule.Limit)
		})
	}
}

func TestEvaluateRule_AlwaysPassing(t *testing.T) {
	capRule := models.Rule{ID: "cap", Limit: 10, Direction: models.AtMost}
	neutral := models.Rule{ID: "info", Limit: 0, Direction: models.AtMost, Neutral: true}

	assert.Equal(t, models.StatusPassing, EvaluateRule(neutral, models.Measured(1e9)), "neutral")
	assert.Equal(t, models.StatusPassing, EvaluateRule(capRule, models.Unknown), "unknown")
	assert.Equal(t, models.StatusPassing, EvaluateRule(capRule, models.Measured(math.NaN())), "NaN")
	assert.Equal(t, models.StatusPassing, EvaluateRule(capRule, models.Measured(math.Inf(1))), "+Inf")
	assert.Equal(t, models.StatusPassing, EvaluateRule(models.Rule{Limit: 1, Direction: models.Direction(7)}, models.Measured(100)), "unrecognised direction")
}

func TestEvaluateRule_MeasuredZeroIsEvaluated(t *testing.T) {
	minCash, _ := LookupRule(RuleMinCash)
	assert.Equal(t, models.StatusFailing, EvaluateRule(minCash, models.Measured(0)))
	assert.Equal(t, models.StatusPassing, EvaluateRule(minCash, models.Unknown))
}

func TestEvaluateRules_CatalogOrder(t *testing.T) {
	p := Catalog()[0]
	m := ComputeMetrics(&models.PortfolioSnapshot{
		Holdings:   []models.Holding{stock("AAPL", 12000, "Technology"), cash(3000)},
		TotalValue: 100000,
	})

	evals := EvaluateRules(p, m)
	if len(evals) != len(p.Rules) {
		t.Fatalf("expected %d evaluations, got %d", len(p.Rules), len(evals))
	}
	for i, e := range evals {
		assert.Equal(t, p.Rules[i].ID, e.Rule.ID)
	}
	assert.Equal(t, models.StatusWarning, evals[0].Status, "max-position at 12%")
	assert.Equal(t, 12.0, evals[0].Value.Value)
}

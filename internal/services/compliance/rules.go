// Package compliance evaluates portfolio snapshots against the rule catalog
package compliance

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/bobmcallan/vire-compliance/internal/models"
)

// Warning bands around a rule's limit. Values between the limit and the band
// edge (inclusive) are Warning; beyond it they are Failing.
var (
	atMostWarnBand  = decimal.RequireFromString("1.2")
	atLeastWarnBand = decimal.RequireFromString("0.8")
)

// EvaluateRule scores a single metric value against a rule's threshold.
// Neutral rules and unknown values always pass. The result depends only on
// the arguments.
func EvaluateRule(rule models.Rule, value models.MetricValue) models.Status {
	if rule.Neutral || !value.Known {
		return models.StatusPassing
	}
	if math.IsNaN(value.Value) || math.IsInf(value.Value, 0) {
		return models.StatusPassing
	}

	v := decimal.NewFromFloat(value.Value)
	limit := decimal.NewFromFloat(rule.Limit)

	switch rule.Direction {
	case models.AtMost:
		if v.LessThanOrEqual(limit) {
			return models.StatusPassing
		}
		if v.LessThanOrEqual(limit.Mul(atMostWarnBand)) {
			return models.StatusWarning
		}
		return models.StatusFailing
	case models.AtLeast:
		if v.GreaterThanOrEqual(limit) {
			return models.StatusPassing
		}
		if v.GreaterThanOrEqual(limit.Mul(atLeastWarnBand)) {
			return models.StatusWarning
		}
		return models.StatusFailing
	}
	return models.StatusPassing
}

// EvaluateRules evaluates every rule of a principle, in catalog order.
func EvaluateRules(principle models.Principle, metrics models.Metrics) []models.RuleEvaluation {
	results := make([]models.RuleEvaluation, 0, len(principle.Rules))
	for _, r := range principle.Rules {
		value := metrics.Get(r.Metric)
		results = append(results, models.RuleEvaluation{
			Rule:   r,
			Value:  value,
			Status: EvaluateRule(r, value),
		})
	}
	return results
}

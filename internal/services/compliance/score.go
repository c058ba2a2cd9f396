package compliance

import (
	"math"

	"github.com/bobmcallan/vire-compliance/internal/models"
)

// HealthScore reduces all rule evaluations to a 0-100 score. Passing rules
// earn full credit, Warning half, Failing none. No rules scores 100.
func HealthScore(evals []models.RuleEvaluation) int {
	if len(evals) == 0 {
		return 100
	}
	var passing, warning int
	for _, e := range evals {
		switch e.Status {
		case models.StatusPassing:
			passing++
		case models.StatusWarning:
			warning++
		}
	}
	score := int(math.Round(100 * (float64(passing) + 0.5*float64(warning)) / float64(len(evals))))
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

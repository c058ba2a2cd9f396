package compliance

import (
	"github.com/bobmcallan/vire-compliance/internal/models"
)

// WorstStatus folds statuses with Failing > Warning > Passing. The fold is
// commutative and associative; an empty input is Passing.
func WorstStatus(statuses ...models.Status) models.Status {
	worst := models.StatusPassing
	for _, s := range statuses {
		if s.Worse(worst) {
			worst = s
		}
	}
	return worst
}

// AggregatePrinciple reduces a principle's rule evaluations to a single
// verdict equal to the worst rule status.
func AggregatePrinciple(principle models.Principle, evals []models.RuleEvaluation) models.PrincipleEvaluation {
	pe := models.PrincipleEvaluation{
		Principle:  principle,
		Status:     models.StatusPassing,
		TotalCount: len(evals),
		Rules:      evals,
	}
	for _, e := range evals {
		pe.Status = WorstStatus(pe.Status, e.Status)
		if e.Status == models.StatusPassing {
			pe.PassingCount++
		}
	}
	return pe
}

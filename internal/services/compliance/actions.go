package compliance

import (
	"fmt"

	"github.com/bobmcallan/vire-compliance/internal/models"
)

// MaxActions caps the number of recommended actions in a report.
const MaxActions = 3

// actionCheck proposes an action from the metrics, or returns false.
type actionCheck func(principles []models.PrincipleEvaluation, m models.Metrics) (models.Action, bool)

// actionChecks run in priority order. The recommender reads the same metrics
// and limits as the rules but does not look at rule statuses, apart from the
// review fallback.
var actionChecks = []actionCheck{
	checkAddCash,
	checkTrimPosition,
	checkReduceSector,
	checkDeployCash,
	checkTrimSpeculative,
	checkAddHoldings,
}

// RecommendActions proposes up to MaxActions remediation steps in fixed
// priority order. The review fallback is only offered when no specific action
// fired and at least one principle is not passing.
func RecommendActions(principles []models.PrincipleEvaluation, metrics models.Metrics) []models.Action {
	actions := make([]models.Action, 0, MaxActions)
	for _, check := range actionChecks {
		if a, ok := check(principles, metrics); ok {
			actions = append(actions, a)
		}
	}

	if len(actions) == 0 {
		if a, ok := checkReviewWarnings(principles, metrics); ok {
			actions = append(actions, a)
		}
	}

	if len(actions) > MaxActions {
		actions = actions[:MaxActions]
	}
	return actions
}

func checkAddCash(_ []models.PrincipleEvaluation, m models.Metrics) (models.Action, bool) {
	cash := m.Get(models.MetricCashPct)
	limit := ruleLimit(RuleMinCash)
	if !cash.Known || cash.Value >= limit {
		return models.Action{}, false
	}
	return models.Action{
		ID:       "add-cash",
		Icon:     "💵",
		Text:     fmt.Sprintf("Add %.1f%% to Cash", limit-cash.Value),
		Priority: models.PriorityHigh,
	}, true
}

func checkTrimPosition(_ []models.PrincipleEvaluation, m models.Metrics) (models.Action, bool) {
	pos := m.Get(models.MetricMaxPositionPct)
	limit := ruleLimit(RuleMaxPosition)
	if !pos.Known || pos.Value <= limit {
		return models.Action{}, false
	}
	name := m.LargestPosition
	if name == "" {
		name = "your largest position"
	}
	return models.Action{
		ID:       "trim-position",
		Icon:     "✂️",
		Text:     fmt.Sprintf("Trim %s by %.1f%%", name, pos.Value-limit),
		Priority: models.PriorityHigh,
	}, true
}

func checkReduceSector(_ []models.PrincipleEvaluation, m models.Metrics) (models.Action, bool) {
	sector := m.Get(models.MetricMaxSectorPct)
	limit := ruleLimit(RuleMaxSector)
	if !sector.Known || sector.Value <= limit {
		return models.Action{}, false
	}
	name := m.LargestSector
	if name == "" {
		name = "your largest sector"
	}
	return models.Action{
		ID:       "reduce-sector",
		Icon:     "🏭",
		Text:     fmt.Sprintf("Reduce %s exposure by %.1f%%", name, sector.Value-limit),
		Priority: models.PriorityMedium,
	}, true
}

func checkDeployCash(_ []models.PrincipleEvaluation, m models.Metrics) (models.Action, bool) {
	cash := m.Get(models.MetricCashPct)
	limit := ruleLimit(RuleMaxCash)
	if !cash.Known || cash.Value <= limit {
		return models.Action{}, false
	}
	return models.Action{
		ID:       "deploy-cash",
		Icon:     "📈",
		Text:     fmt.Sprintf("Invest %.1f%% of idle Cash", cash.Value-limit),
		Priority: models.PriorityMedium,
	}, true
}

func checkTrimSpeculative(_ []models.PrincipleEvaluation, m models.Metrics) (models.Action, bool) {
	spec := m.Get(models.MetricSpeculativePct)
	limit := ruleLimit(RuleMaxSpeculative)
	if !spec.Known || spec.Value <= limit {
		return models.Action{}, false
	}
	return models.Action{
		ID:       "trim-speculative",
		Icon:     "🎲",
		Text:     fmt.Sprintf("Cut speculative assets by %.1f%%", spec.Value-limit),
		Priority: models.PriorityMedium,
	}, true
}

func checkAddHoldings(_ []models.PrincipleEvaluation, m models.Metrics) (models.Action, bool) {
	count := m.Get(models.MetricHoldingCount)
	limit := ruleLimit(RuleMinHoldings)
	if !count.Known || count.Value >= limit {
		return models.Action{}, false
	}
	return models.Action{
		ID:       "add-holdings",
		Icon:     "➕",
		Text:     fmt.Sprintf("Add %.0f more holdings", limit-count.Value),
		Priority: models.PriorityLow,
	}, true
}

func checkReviewWarnings(principles []models.PrincipleEvaluation, _ models.Metrics) (models.Action, bool) {
	flagged := 0
	for _, p := range principles {
		if p.Status != models.StatusPassing {
			flagged++
		}
	}
	if flagged == 0 {
		return models.Action{}, false
	}
	text := fmt.Sprintf("Review %d principles flagged for attention", flagged)
	if flagged == 1 {
		text = "Review 1 principle flagged for attention"
	}
	return models.Action{
		ID:       "review-warnings",
		Icon:     "📋",
		Text:     text,
		Priority: models.PriorityLow,
	}, true
}

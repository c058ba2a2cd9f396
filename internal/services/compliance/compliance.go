package compliance

import (
	"github.com/bobmcallan/vire-compliance/internal/models"
)

// EvaluatePrinciples runs every catalog rule against the metrics and folds
// the results per principle, in catalog order.
func EvaluatePrinciples(metrics models.Metrics) []models.PrincipleEvaluation {
	principles := Catalog()
	out := make([]models.PrincipleEvaluation, 0, len(principles))
	for _, p := range principles {
		out = append(out, AggregatePrinciple(p, EvaluateRules(p, metrics)))
	}
	return out
}

// EvaluateCompliance is the engine entry point: a pure transformation from a
// snapshot to a report. It never fails; a nil snapshot is an empty portfolio.
// Identical snapshots always produce identical reports.
func EvaluateCompliance(snapshot *models.PortfolioSnapshot) *models.ComplianceReport {
	metrics := ComputeMetrics(snapshot)
	principles := EvaluatePrinciples(metrics)

	var all []models.RuleEvaluation
	reports := make([]models.PrincipleReport, 0, len(principles))
	for _, pe := range principles {
		all = append(all, pe.Rules...)
		reports = append(reports, models.NewPrincipleReport(pe))
	}

	score := HealthScore(all)

	return &models.ComplianceReport{
		HealthScore:    score,
		CatalogVersion: CatalogVersion,
		TotalValue:     metrics.TotalValue,
		Currency:       metrics.Currency,
		Principles:     reports,
		Commentary:     Narrate(principles, metrics, score),
		Actions:        RecommendActions(principles, metrics),
	}
}

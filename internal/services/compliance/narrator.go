package compliance

import (
	"fmt"

	"github.com/bobmcallan/vire-compliance/internal/models"
)

// Score tiers for commentary.
const (
	tierExcellent = 90
	tierGood      = 75
	tierFair      = 50
)

// adviceFunc renders a sentence quoting the measured value of one metric.
type adviceFunc func(v float64, m models.Metrics) string

var metricAdvice = map[models.MetricID]adviceFunc{
	models.MetricMaxPositionPct: func(v float64, m models.Metrics) string {
		if m.LargestPosition != "" {
			return fmt.Sprintf("Your largest position (%s) is %.1f%% of the portfolio.", m.LargestPosition, v)
		}
		return fmt.Sprintf("Your largest position is %.1f%% of the portfolio.", v)
	},
	models.MetricMaxSectorPct: func(v float64, m models.Metrics) string {
		if m.LargestSector != "" {
			return fmt.Sprintf("Your largest sector (%s) is %.1f%% of the portfolio.", m.LargestSector, v)
		}
		return fmt.Sprintf("Your largest sector is %.1f%% of the portfolio.", v)
	},
	models.MetricTopFivePct: func(v float64, _ models.Metrics) string {
		return fmt.Sprintf("Your five largest positions make up %.1f%% of the portfolio.", v)
	},
	models.MetricHoldingCount: func(v float64, _ models.Metrics) string {
		if v == 1 {
			return fmt.Sprintf("The portfolio has 1 holding; aim for at least %.0f.", ruleLimit(RuleMinHoldings))
		}
		return fmt.Sprintf("The portfolio has %.0f holdings; aim for at least %.0f.", v, ruleLimit(RuleMinHoldings))
	},
	models.MetricEffectiveHoldings: func(v float64, _ models.Metrics) string {
		return fmt.Sprintf("Concentration makes the portfolio behave like %.1f equal positions.", v)
	},
	models.MetricCashPct: func(v float64, _ models.Metrics) string {
		return fmt.Sprintf("Cash is %.1f%% of the portfolio; keep it between %.0f%% and %.0f%%.",
			v, ruleLimit(RuleMinCash), ruleLimit(RuleMaxCash))
	},
	models.MetricIlliquidPct: func(v float64, _ models.Metrics) string {
		return fmt.Sprintf("%.1f%% of the portfolio sits in illiquid assets.", v)
	},
	models.MetricMinPositionPct: func(v float64, _ models.Metrics) string {
		return fmt.Sprintf("Your smallest position is only %.1f%% of the portfolio.", v)
	},
	models.MetricMaxPositionLossPct: func(v float64, _ models.Metrics) string {
		return fmt.Sprintf("Your weakest position is %.1f%% below its cost basis.", v)
	},
	models.MetricPortfolioLossPct: func(v float64, _ models.Metrics) string {
		return fmt.Sprintf("The portfolio is %.1f%% below what was invested.", v)
	},
	models.MetricSpeculativePct: func(v float64, _ models.Metrics) string {
		return fmt.Sprintf("%.1f%% of the portfolio sits in speculative assets.", v)
	},
	models.MetricUnclassifiedPct: func(v float64, _ models.Metrics) string {
		return fmt.Sprintf("%.1f%% of the portfolio has no sector classification.", v)
	},
}

// PrincipleAdvice quotes the first non-Passing rule of the principle whose
// metric has a template and was measured. It returns "" when none qualifies.
func PrincipleAdvice(pe models.PrincipleEvaluation, metrics models.Metrics) string {
	for _, re := range pe.Rules {
		if re.Status == models.StatusPassing || !re.Value.Known {
			continue
		}
		if render, ok := metricAdvice[re.Rule.Metric]; ok {
			return render(re.Value.Value, metrics)
		}
	}
	return ""
}

// Narrate turns an evaluation into advisory commentary tiered by score.
func Narrate(principles []models.PrincipleEvaluation, metrics models.Metrics, score int) models.Commentary {
	firstFailing := firstWithStatus(principles, models.StatusFailing)
	firstWarning := firstWithStatus(principles, models.StatusWarning)

	switch {
	case score >= tierExcellent:
		return models.Commentary{
			Icon: "🏆",
			Main: "Excellent! Your portfolio honours its constitution.",
		}

	case score >= tierGood:
		c := models.Commentary{
			Icon: "👍",
			Main: "Your portfolio is in good shape overall.",
		}
		watch := firstWarning
		if watch == nil {
			watch = firstFailing
		}
		if watch != nil {
			c.Detail = fmt.Sprintf("Keep an eye on %s.", watch.Principle.Name)
		}
		return c

	case score >= tierFair:
		c := models.Commentary{Icon: "⚠️"}
		cited := firstFailing
		if cited != nil {
			c.Main = fmt.Sprintf("%s needs attention.", cited.Principle.Name)
		} else {
			c.Main = "Some principles need adjustment."
			cited = firstWarning
		}
		if cited != nil {
			c.Detail = PrincipleAdvice(*cited, metrics)
		}
		return c
	}

	failing := 0
	for _, p := range principles {
		if p.Status == models.StatusFailing {
			failing++
		}
	}
	c := models.Commentary{Icon: "🚨"}
	if failing == 1 {
		c.Main = "Urgent: 1 principle is failing."
	} else {
		c.Main = fmt.Sprintf("Urgent: %d principles are failing.", failing)
	}
	if firstFailing != nil {
		c.Detail = PrincipleAdvice(*firstFailing, metrics)
	}
	if c.Detail == "" {
		c.Detail = "Address the failing principles before adding new positions."
	}
	return c
}

func firstWithStatus(principles []models.PrincipleEvaluation, status models.Status) *models.PrincipleEvaluation {
	for i := range principles {
		if principles[i].Status == status {
			return &principles[i]
		}
	}
	return nil
}

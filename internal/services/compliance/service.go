package compliance

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/bobmcallan/vire-compliance/internal/common"
	"github.com/bobmcallan/vire-compliance/internal/interfaces"
	"github.com/bobmcallan/vire-compliance/internal/models"
)

// ErrInvalidSnapshot reports a snapshot the engine should not be given.
var ErrInvalidSnapshot = errors.New("invalid portfolio snapshot")

// Service wraps the pure engine with input validation and logging
type Service struct {
	logger *common.Logger
}

var _ interfaces.ComplianceService = (*Service)(nil)

// NewService creates a new compliance service
func NewService(logger *common.Logger) *Service {
	return &Service{logger: logger}
}

// Catalog returns a copy of the rule catalog.
func (s *Service) Catalog() models.RuleCatalog {
	return RuleCatalog()
}

// Evaluate validates the snapshot and runs the engine.
func (s *Service) Evaluate(ctx context.Context, snapshot *models.PortfolioSnapshot) (*models.ComplianceReport, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := ValidateSnapshot(snapshot); err != nil {
		s.logger.Warn().Err(err).Msg("Rejected portfolio snapshot")
		return nil, err
	}

	start := time.Now()
	report := EvaluateCompliance(snapshot)

	s.logger.Info().
		Int("holdings", len(snapshot.Holdings)).
		Int("health_score", report.HealthScore).
		Int("principles_warning", report.CountByStatus(models.StatusWarning)).
		Int("principles_failing", report.CountByStatus(models.StatusFailing)).
		Dur("elapsed", time.Since(start)).
		Msg("Compliance evaluated")

	return report, nil
}

// ValidateSnapshot rejects nil snapshots and non-finite numbers. Negative or
// zero values are allowed; the engine ignores them.
func ValidateSnapshot(snapshot *models.PortfolioSnapshot) error {
	if snapshot == nil {
		return fmt.Errorf("%w: snapshot is required", ErrInvalidSnapshot)
	}
	if !finite(snapshot.TotalValue) {
		return fmt.Errorf("%w: total_value is not a finite number", ErrInvalidSnapshot)
	}
	if !finite(snapshot.TotalCost) {
		return fmt.Errorf("%w: total_cost is not a finite number", ErrInvalidSnapshot)
	}
	for i, h := range snapshot.Holdings {
		fields := []struct {
			name  string
			value float64
		}{
			{"quantity", h.Quantity},
			{"price", h.Price},
			{"market_value", h.MarketValue},
			{"cost_basis", h.CostBasis},
		}
		for _, f := range fields {
			if !finite(f.value) {
				return fmt.Errorf("%w: holdings[%d] (%s) %s is not a finite number", ErrInvalidSnapshot, i, h.Ticker, f.name)
			}
		}
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Package interfaces defines service contracts for the compliance service
package interfaces

import (
	"context"

	"github.com/bobmcallan/vire-compliance/internal/models"
)

// ComplianceService evaluates portfolio snapshots against the rule catalog
type ComplianceService interface {
	// Evaluate validates a snapshot and produces its compliance report
	Evaluate(ctx context.Context, snapshot *models.PortfolioSnapshot) (*models.ComplianceReport, error)

	// Catalog returns the rule catalog the service evaluates against
	Catalog() models.RuleCatalog
}

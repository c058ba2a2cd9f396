// Package models defines data structures for Vire Compliance
package models

import (
	"strings"
)

// DefaultCurrency is assumed when a snapshot does not name one.
const DefaultCurrency = "USD"

// Holding represents a single position (security or cash) within a portfolio.
// Produced by an external sync process and never modified by the engine.
type Holding struct {
	Ticker       string  `json:"ticker"`
	Quantity     float64 `json:"quantity"`
	Price        float64 `json:"price"`
	MarketValue  float64 `json:"market_value"`
	CostBasis    float64 `json:"cost_basis"`
	Sector       string  `json:"sector"`
	SecurityType string  `json:"security_type"`
}

// IsCash reports whether the holding represents uninvested cash.
func (h Holding) IsCash() bool {
	return strings.EqualFold(h.SecurityType, "cash") || strings.EqualFold(h.Ticker, "CASH")
}

// HasSecurityType reports whether the holding's security type matches any of types (case-insensitive).
func (h Holding) HasSecurityType(types ...string) bool {
	st := strings.TrimSpace(h.SecurityType)
	if st == "" {
		return false
	}
	for _, t := range types {
		if strings.EqualFold(st, t) {
			return true
		}
	}
	return false
}

// PortfolioSnapshot is the point-in-time set of holdings supplied to the engine.
// TotalValue may legitimately be 0 (empty portfolio); when it is not supplied
// the engine sums holding market values instead.
type PortfolioSnapshot struct {
	Holdings   []Holding `json:"holdings"`
	TotalValue float64   `json:"total_value"`
	TotalCost  float64   `json:"total_cost"`
	Currency   string    `json:"currency,omitempty"` // ISO 4217, display only
}

// CurrencyCode returns the snapshot currency, defaulting to USD.
func (s *PortfolioSnapshot) CurrencyCode() string {
	if s == nil || strings.TrimSpace(s.Currency) == "" {
		return DefaultCurrency
	}
	return strings.ToUpper(strings.TrimSpace(s.Currency))
}

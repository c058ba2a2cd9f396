package models

import (
	"fmt"
)

// Direction says which side of a rule's limit is safe.
type Direction int

const (
	// AtMost rules pass when the measured value is at or below the limit.
	AtMost Direction = iota
	// AtLeast rules pass when the measured value is at or above the limit.
	AtLeast
)

// String returns the wire name of the direction.
func (d Direction) String() string {
	switch d {
	case AtMost:
		return "at_most"
	case AtLeast:
		return "at_least"
	}
	return fmt.Sprintf("direction(%d)", int(d))
}

// MarshalText implements encoding.TextMarshaler.
func (d Direction) MarshalText() ([]byte, error) {
	switch d {
	case AtMost, AtLeast:
		return []byte(d.String()), nil
	}
	return nil, fmt.Errorf("invalid direction %d", int(d))
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Direction) UnmarshalText(b []byte) error {
	switch string(b) {
	case "at_most":
		*d = AtMost
	case "at_least":
		*d = AtLeast
	default:
		return fmt.Errorf("unknown direction %q", string(b))
	}
	return nil
}

// Status is the verdict for a rule or principle. Values are ordered so that a
// larger Status is worse: Passing < Warning < Failing.
type Status int

const (
	StatusPassing Status = iota
	StatusWarning
	StatusFailing
)

// String returns the wire name of the status.
func (s Status) String() string {
	switch s {
	case StatusPassing:
		return "passing"
	case StatusWarning:
		return "warning"
	case StatusFailing:
		return "failing"
	}
	return fmt.Sprintf("status(%d)", int(s))
}

// MarshalText implements encoding.TextMarshaler.
func (s Status) MarshalText() ([]byte, error) {
	switch s {
	case StatusPassing, StatusWarning, StatusFailing:
		return []byte(s.String()), nil
	}
	return nil, fmt.Errorf("invalid status %d", int(s))
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Status) UnmarshalText(b []byte) error {
	switch string(b) {
	case "passing":
		*s = StatusPassing
	case "warning":
		*s = StatusWarning
	case "failing":
		*s = StatusFailing
	default:
		return fmt.Errorf("unknown status %q", string(b))
	}
	return nil
}

// Worse reports whether s is a worse verdict than other.
func (s Status) Worse(other Status) bool {
	return s > other
}

// Rule is a single named threshold check against one metric.
type Rule struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Metric      MetricID  `json:"metric"`
	Limit       float64   `json:"limit"`
	Unit        string    `json:"unit"`
	Direction   Direction `json:"direction"`
	Neutral     bool      `json:"neutral"` // informational only, never degrades status
}

// Principle is a named group of related rules representing one investment-governance theme.
type Principle struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Icon    string `json:"icon"`
	Tagline string `json:"tagline"`
	Rules   []Rule `json:"rules"`
}

// RuleCatalog is the versioned, read-only set of principles evaluated by the engine.
type RuleCatalog struct {
	Version    string      `json:"version"`
	Principles []Principle `json:"principles"`
}

// RuleCount returns the total number of rules across all principles.
func (c RuleCatalog) RuleCount() int {
	n := 0
	for _, p := range c.Principles {
		n += len(p.Rules)
	}
	return n
}

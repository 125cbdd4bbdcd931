// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrUnknownRiskTier is returned when a persisted risk level cannot be mapped
// back to a [RiskTier].
var ErrUnknownRiskTier = errors.New("unknown risk tier")

// RiskTier is the discrete risk classification of a document.
type RiskTier int

const (
	RiskLow RiskTier = iota
	RiskMedium
	RiskHigh
)

// riskLevelError is the level reported when the pipeline could not finish.
const riskLevelError = "ERROR"

// String returns the persisted label of the tier ("LOW RISK", ...).
func (t RiskTier) String() string {
	switch t {
	case RiskLow:
		return "LOW RISK"
	case RiskMedium:
		return "MEDIUM RISK"
	case RiskHigh:
		return "HIGH RISK"
	default:
		return "UNKNOWN"
	}
}

// Short returns the tier name without the " RISK" suffix, as used by the
// external fraud model hint and the statistics endpoint.
func (t RiskTier) Short() string {
	switch t {
	case RiskLow:
		return "LOW"
	case RiskMedium:
		return "MEDIUM"
	case RiskHigh:
		return "HIGH"
	default:
		return "UNKNOWN"
	}
}

// MarshalJSON encodes the tier as its persisted label.
func (t RiskTier) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// UnmarshalJSON decodes a persisted label into the tier.
func (t *RiskTier) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, err := ParseRiskTier(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// ParseRiskTier maps a persisted label or a short tier name to a RiskTier.
func ParseRiskTier(s string) (RiskTier, error) {
	switch s {
	case "LOW RISK", "LOW":
		return RiskLow, nil
	case "MEDIUM RISK", "MEDIUM":
		return RiskMedium, nil
	case "HIGH RISK", "HIGH":
		return RiskHigh, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownRiskTier, s)
	}
}

// RiskTiers lists every tier in ascending order.
func RiskTiers() []RiskTier {
	return []RiskTier{RiskLow, RiskMedium, RiskHigh}
}

// RiskAssessment is the scored outcome for a single document.
type RiskAssessment struct {
	// Score is the final bounded score in [0, 100].
	Score int `json:"riskScore"`

	// Tier is derived from Score.
	Tier RiskTier `json:"riskLevel"`

	// Narrative is the ordered human-readable explanation.
	Narrative []string `json:"explanation"`
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package risk turns a [models.SignalBundle] into a bounded risk score, a
// risk tier and a human-readable explanation.
//
// Scoring is a fixed additive table. Every weight that fired is reported as a
// [Factor] so a score can be audited after the fact.
package risk

import (
	"github.com/MKhiriev/go-id-verifier/models"
)

const (
	MinScore = 0
	MaxScore = 100

	// MaxAdjustment bounds the external fraud model's contribution.
	MaxAdjustment = 25

	mediumTierFrom = 30
	highTierFrom   = 70

	smallImagePixels = 100_000
	largeImagePixels = 20_000_000
)

// Factor is a single weight that contributed to a subtotal.
type Factor struct {
	Name   string `json:"name"`
	Weight int    `json:"weight"`
}

type rule struct {
	name   string
	weight int
	when   func(b models.SignalBundle) bool
}

var rules = []rule{
	{"no_face", 35, func(b models.SignalBundle) bool { return !b.FaceDetected }},
	{"multiple_faces", 15, func(b models.SignalBundle) bool { return b.FaceDetected && b.FaceCount > 1 }},
	{"tampered", 60, func(b models.SignalBundle) bool { return b.Tampered }},
	{"blurry", 25, func(b models.SignalBundle) bool { return b.Blurry }},
	{"poor_lighting", 10, func(b models.SignalBundle) bool { return !b.GoodLighting }},
	{"document_like", -15, func(b models.SignalBundle) bool { return b.DocumentLike }},
	{"name_missing", 20, func(b models.SignalBundle) bool { return !b.Fields.HasName() }},
	{"id_number_missing", 25, func(b models.SignalBundle) bool { return !b.Fields.HasIDNumber() }},
	{"dob_missing", 10, func(b models.SignalBundle) bool { return !b.Fields.HasDOB() }},
	{"core_fields_present", -20, func(b models.SignalBundle) bool {
		return b.Fields.HasName() && b.Fields.HasIDNumber() && b.Fields.HasDOB()
	}},
	{"suspicious_content", 30, func(b models.SignalBundle) bool { return b.SuspiciousContent }},
	// unknown dimensions (0) do not count as a small image
	{"small_image", 20, func(b models.SignalBundle) bool {
		return b.ImageWidth > 0 && b.ImageHeight > 0 && b.Pixels() < smallImagePixels
	}},
	{"large_image", 10, func(b models.SignalBundle) bool { return b.Pixels() > largeImagePixels }},
}

// Factors returns every rule that fires for b, in table order.
func Factors(b models.SignalBundle) []Factor {
	factors := make([]Factor, 0, len(rules))
	for _, r := range rules {
		if r.when(b) {
			factors = append(factors, Factor{Name: r.name, Weight: r.weight})
		}
	}
	return factors
}

// Subtotal returns the unclamped sum of all firing weights.
func Subtotal(b models.SignalBundle) int {
	subtotal := 0
	for _, f := range Factors(b) {
		subtotal += f.Weight
	}
	return subtotal
}

// Score returns the final score and its tier.
//
// adjustment is the external model's contribution; it is bounded to
// [0, MaxAdjustment] before use and 0 means "no adjustment". The sum is
// clamped to [MinScore, MaxScore] exactly once, after the adjustment.
func Score(b models.SignalBundle, adjustment int) (int, models.RiskTier) {
	score := clamp(Subtotal(b)+ClampAdjustment(adjustment), MinScore, MaxScore)
	return score, TierFor(score)
}

// TierFor maps a score to its tier: [0,30) LOW, [30,70) MEDIUM, [70,100] HIGH.
func TierFor(score int) models.RiskTier {
	switch {
	case score >= highTierFrom:
		return models.RiskHigh
	case score >= mediumTierFrom:
		return models.RiskMedium
	default:
		return models.RiskLow
	}
}

// ClampAdjustment bounds an external model adjustment to [0, MaxAdjustment].
func ClampAdjustment(adjustment int) int {
	return clamp(adjustment, 0, MaxAdjustment)
}

// Assess scores b and builds the full assessment including the narrative.
func Assess(b models.SignalBundle, adjustment int) models.RiskAssessment {
	score, tier := Score(b, adjustment)
	return models.RiskAssessment{
		Score:     score,
		Tier:      tier,
		Narrative: Explain(b, score),
	}
}

func clamp(v, lo, hi int) int {
	return min(max(v, lo), hi)
}

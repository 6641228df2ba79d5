// Endless - Continuous Playback Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/endless

package recommend

import (
	"fmt"
	"math"
)

// VibeConfig holds the tempo continuity rule applied during re-ranking.
type VibeConfig struct {
	// BoostWithin is the largest bpm difference that still earns the boost.
	// Default: 10.
	BoostWithin float64 `json:"boost_within"`

	// PenaltyBeyond is the bpm difference above which the penalty applies.
	// Default: 30.
	PenaltyBeyond float64 `json:"penalty_beyond"`

	// BoostMultiplier scales candidates close in tempo to the seed.
	// Default: 1.5.
	BoostMultiplier float64 `json:"boost_multiplier"`

	// PenaltyMultiplier scales candidates far in tempo from the seed.
	// Default: 0.5.
	PenaltyMultiplier float64 `json:"penalty_multiplier"`
}

// DefaultVibeConfig returns the standard 10/30 bpm thresholds.
func DefaultVibeConfig() VibeConfig {
	return VibeConfig{
		BoostWithin:       10,
		PenaltyBeyond:     30,
		BoostMultiplier:   1.5,
		PenaltyMultiplier: 0.5,
	}
}

// Multiplier returns the score factor for a tempo difference. The sign of
// diff is ignored. Differences up to and including BoostWithin are boosted,
// differences strictly above PenaltyBeyond are penalised, the rest are left
// at 1.0.
func (v VibeConfig) Multiplier(diff float64) float64 {
	diff = math.Abs(diff)
	switch {
	case diff <= v.BoostWithin:
		return v.BoostMultiplier
	case diff > v.PenaltyBeyond:
		return v.PenaltyMultiplier
	default:
		return 1.0
	}
}

// Validate checks the thresholds are ordered and the multipliers positive.
func (v VibeConfig) Validate() error {
	if v.BoostWithin < 0 || math.IsNaN(v.BoostWithin) {
		return fmt.Errorf("vibe.boost_within must be non-negative, got %f", v.BoostWithin)
	}
	if v.PenaltyBeyond < v.BoostWithin || math.IsNaN(v.PenaltyBeyond) {
		return fmt.Errorf("vibe.penalty_beyond must be >= vibe.boost_within, got %f < %f", v.PenaltyBeyond, v.BoostWithin)
	}
	if !(v.BoostMultiplier > 0) || math.IsInf(v.BoostMultiplier, 0) {
		return fmt.Errorf("vibe.boost_multiplier must be positive, got %f", v.BoostMultiplier)
	}
	if !(v.PenaltyMultiplier > 0) || math.IsInf(v.PenaltyMultiplier, 0) {
		return fmt.Errorf("vibe.penalty_multiplier must be positive, got %f", v.PenaltyMultiplier)
	}
	return nil
}

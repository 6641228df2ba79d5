// Endless - Continuous Playback Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/endless

package recommend

import "fmt"

// Config contains the engine configuration.
type Config struct {
	// DefaultLimit is the limit a boundary should apply when the caller
	// gives none. The engine itself honours Request.Limit as given.
	// Default: 5.
	DefaultLimit int `json:"default_limit"`

	// MaxLimit caps Request.Limit. Zero means unbounded.
	// Default: 0.
	MaxLimit int `json:"max_limit"`

	// Oversample is the candidate pool size as a multiple of the limit.
	// Default: 4.
	Oversample int `json:"oversample"`

	// Vibe is the tempo continuity rule.
	Vibe VibeConfig `json:"vibe"`
}

// DefaultConfig returns a Config with the standard engine defaults.
func DefaultConfig() *Config {
	return &Config{
		DefaultLimit: DefaultLimit,
		MaxLimit:     0,
		Oversample:   4,
		Vibe:         DefaultVibeConfig(),
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.DefaultLimit < 1 {
		return fmt.Errorf("limits.default_limit must be positive, got %d", c.DefaultLimit)
	}
	if c.MaxLimit < 0 {
		return fmt.Errorf("limits.max_limit must be non-negative, got %d", c.MaxLimit)
	}
	if c.MaxLimit > 0 && c.MaxLimit < c.DefaultLimit {
		return fmt.Errorf("limits.max_limit must be >= limits.default_limit, got %d < %d", c.MaxLimit, c.DefaultLimit)
	}
	if c.Oversample < 1 {
		return fmt.Errorf("oversample must be positive, got %d", c.Oversample)
	}
	return c.Vibe.Validate()
}

// Clone returns a deep copy of the configuration.
func (c *Config) Clone() *Config {
	// All fields are value types.
	clone := *c
	return &clone
}

// Endless - Continuous Playback Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/endless

package config

import (
	"fmt"
	"strings"

	"github.com/tomtom215/endless/internal/logging"
)

// Validate checks that the configuration is internally consistent.
func (c *Config) Validate() error {
	if err := c.validateLogging(); err != nil {
		return err
	}
	if err := c.validateCatalog(); err != nil {
		return err
	}
	if err := c.validateBackend(); err != nil {
		return err
	}
	if err := c.validateResilience(); err != nil {
		return err
	}
	if err := c.validateLookupCache(); err != nil {
		return err
	}
	return c.validateRecommend()
}

func (c *Config) validateLogging() error {
	if !logging.ValidLevel(c.Logging.Level) {
		return fmt.Errorf("LOG_LEVEL must be one of trace, debug, info, warn, error, fatal, panic, disabled, got %q", c.Logging.Level)
	}
	switch strings.ToLower(c.Logging.Format) {
	case "json", "console":
		return nil
	default:
		return fmt.Errorf("LOG_FORMAT must be json or console, got %q", c.Logging.Format)
	}
}

func (c *Config) validateCatalog() error {
	switch c.Catalog.Source {
	case CatalogSourceDemo:
		return nil
	case CatalogSourceFile:
		if c.Catalog.Path == "" {
			return fmt.Errorf("CATALOG_PATH is required when CATALOG_SOURCE=file")
		}
		return nil
	default:
		return fmt.Errorf("CATALOG_SOURCE must be %q or %q, got %q", CatalogSourceDemo, CatalogSourceFile, c.Catalog.Source)
	}
}

func (c *Config) validateBackend() error {
	switch c.Backend.Driver {
	case BackendMemory, BackendDuckDB:
		return nil
	default:
		return fmt.Errorf("BACKEND_DRIVER must be %q or %q, got %q", BackendMemory, BackendDuckDB, c.Backend.Driver)
	}
}

// validateResilience only checks settings when the decorators are enabled.
func (c *Config) validateResilience() error {
	r := c.Resilience
	if !r.Enabled {
		return nil
	}
	if r.CallTimeout <= 0 {
		return fmt.Errorf("RESILIENCE_CALL_TIMEOUT must be positive, got %v", r.CallTimeout)
	}
	if r.FailureThreshold == 0 {
		return fmt.Errorf("RESILIENCE_FAILURE_THRESHOLD must be at least 1")
	}
	if r.OpenTimeout <= 0 {
		return fmt.Errorf("RESILIENCE_OPEN_TIMEOUT must be positive, got %v", r.OpenTimeout)
	}
	if r.HalfOpenRequests == 0 {
		return fmt.Errorf("RESILIENCE_HALF_OPEN_REQUESTS must be at least 1")
	}
	return nil
}

func (c *Config) validateLookupCache() error {
	lc := c.LookupCache
	if !lc.Enabled {
		return nil
	}
	if lc.Capacity <= 0 {
		return fmt.Errorf("LOOKUP_CACHE_CAPACITY must be positive, got %d", lc.Capacity)
	}
	if lc.TTL < 0 {
		return fmt.Errorf("LOOKUP_CACHE_TTL must not be negative, got %v", lc.TTL)
	}
	return nil
}

// validateRecommend mirrors recommend.Config.Validate so bad values fail at load time
// with the env var name in the message.
func (c *Config) validateRecommend() error {
	r := c.Recommend
	if r.DefaultLimit <= 0 {
		return fmt.Errorf("RECOMMEND_DEFAULT_LIMIT must be positive, got %d", r.DefaultLimit)
	}
	if r.MaxLimit < 0 {
		return fmt.Errorf("RECOMMEND_MAX_LIMIT must not be negative, got %d", r.MaxLimit)
	}
	if r.MaxLimit > 0 && r.DefaultLimit > r.MaxLimit {
		return fmt.Errorf("RECOMMEND_DEFAULT_LIMIT (%d) cannot exceed RECOMMEND_MAX_LIMIT (%d)", r.DefaultLimit, r.MaxLimit)
	}
	if r.Oversample < 1 {
		return fmt.Errorf("RECOMMEND_OVERSAMPLE must be at least 1, got %d", r.Oversample)
	}
	v := r.Vibe
	if v.BoostWithin < 0 {
		return fmt.Errorf("VIBE_BOOST_WITHIN must not be negative, got %g", v.BoostWithin)
	}
	if v.PenaltyBeyond < v.BoostWithin {
		return fmt.Errorf("VIBE_PENALTY_BEYOND (%g) must be at least VIBE_BOOST_WITHIN (%g)", v.PenaltyBeyond, v.BoostWithin)
	}
	if v.BoostMultiplier <= 0 || v.PenaltyMultiplier <= 0 {
		return fmt.Errorf("vibe multipliers must be positive, got boost=%g penalty=%g", v.BoostMultiplier, v.PenaltyMultiplier)
	}
	return nil
}

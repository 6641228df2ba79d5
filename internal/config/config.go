// Endless - Continuous Playback Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/endless

package config

import "time"

// Catalog sources.
const (
	CatalogSourceDemo = "demo"
	CatalogSourceFile = "file"
)

// Backend drivers.
const (
	BackendMemory = "memory"
	BackendDuckDB = "duckdb"
)

// Config is the root configuration tree.
type Config struct {
	Logging     LoggingConfig     `koanf:"logging"`
	Catalog     CatalogConfig     `koanf:"catalog"`
	Backend     BackendConfig     `koanf:"backend"`
	Resilience  ResilienceConfig  `koanf:"resilience"`
	LookupCache LookupCacheConfig `koanf:"lookup_cache"`
	Recommend   RecommendConfig   `koanf:"recommend"`
}

// LoggingConfig holds logger settings.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// CatalogConfig selects where tracks come from.
type CatalogConfig struct {
	// Source is "demo" for the built-in catalog or "file" for a JSON file.
	Source string `koanf:"source"`
	Path   string `koanf:"path"`
}

// BackendConfig selects the similarity index and metadata lookup implementation.
type BackendConfig struct {
	Driver string `koanf:"driver"`

	// DuckDBPath is the DuckDB DSN. Empty means an in-process ":memory:" database.
	DuckDBPath string `koanf:"duckdb_path"`
}

// ResilienceConfig configures the circuit breaker and timeout wrapped around backend calls.
type ResilienceConfig struct {
	Enabled          bool          `koanf:"enabled"`
	CallTimeout      time.Duration `koanf:"call_timeout"`
	FailureThreshold uint32        `koanf:"failure_threshold"`
	OpenTimeout      time.Duration `koanf:"open_timeout"`
	HalfOpenRequests uint32        `koanf:"half_open_requests"`
}

// LookupCacheConfig configures the metadata lookup cache.
type LookupCacheConfig struct {
	Enabled  bool          `koanf:"enabled"`
	Capacity int           `koanf:"capacity"`
	TTL      time.Duration `koanf:"ttl"`
}

// RecommendConfig mirrors recommend.Config in koanf form.
type RecommendConfig struct {
	DefaultLimit int        `koanf:"default_limit"`
	MaxLimit     int        `koanf:"max_limit"`
	Oversample   int        `koanf:"oversample"`
	Vibe         VibeConfig `koanf:"vibe"`
}

// VibeConfig holds the tempo continuity thresholds.
type VibeConfig struct {
	BoostWithin       float64 `koanf:"boost_within"`
	PenaltyBeyond     float64 `koanf:"penalty_beyond"`
	BoostMultiplier   float64 `koanf:"boost_multiplier"`
	PenaltyMultiplier float64 `koanf:"penalty_multiplier"`
}

// defaultConfig returns the built-in defaults, applied before file and env layers.
func defaultConfig() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
		Catalog: CatalogConfig{
			Source: CatalogSourceDemo,
			Path:   "",
		},
		Backend: BackendConfig{
			Driver:     BackendMemory,
			DuckDBPath: "",
		},
		Resilience: ResilienceConfig{
			Enabled:          false,
			CallTimeout:      2 * time.Second,
			FailureThreshold: 5,
			OpenTimeout:      30 * time.Second,
			HalfOpenRequests: 1,
		},
		LookupCache: LookupCacheConfig{
			Enabled:  false,
			Capacity: 1024,
			TTL:      5 * time.Minute,
		},
		Recommend: RecommendConfig{
			DefaultLimit: 5,
			MaxLimit:     0, // unbounded
			Oversample:   4,
			Vibe: VibeConfig{
				BoostWithin:       10,
				PenaltyBeyond:     30,
				BoostMultiplier:   1.5,
				PenaltyMultiplier: 0.5,
			},
		},
	}
}

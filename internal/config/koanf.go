// Endless - Continuous Playback Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/endless

package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists the paths searched for a config file, in priority order.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/endless/config.yaml",
	"/etc/endless/config.yml",
}

// ConfigPathEnvVar is the environment variable that can override the config file path.
const ConfigPathEnvVar = "CONFIG_PATH"

// envMappings maps lowercased environment variable names to koanf paths.
var envMappings = map[string]string{
	"log_level":  "logging.level",
	"log_format": "logging.format",
	"log_caller": "logging.caller",

	"catalog_source": "catalog.source",
	"catalog_path":   "catalog.path",

	"backend_driver": "backend.driver",
	"duckdb_path":    "backend.duckdb_path",

	"resilience_enabled":            "resilience.enabled",
	"resilience_call_timeout":       "resilience.call_timeout",
	"resilience_failure_threshold":  "resilience.failure_threshold",
	"resilience_open_timeout":       "resilience.open_timeout",
	"resilience_half_open_requests": "resilience.half_open_requests",

	"lookup_cache_enabled":  "lookup_cache.enabled",
	"lookup_cache_capacity": "lookup_cache.capacity",
	"lookup_cache_ttl":      "lookup_cache.ttl",

	"recommend_default_limit": "recommend.default_limit",
	"recommend_max_limit":     "recommend.max_limit",
	"recommend_oversample":    "recommend.oversample",

	"vibe_boost_within":       "recommend.vibe.boost_within",
	"vibe_penalty_beyond":     "recommend.vibe.penalty_beyond",
	"vibe_boost_multiplier":   "recommend.vibe.boost_multiplier",
	"vibe_penalty_multiplier": "recommend.vibe.penalty_multiplier",
}

// Load builds the configuration from defaults, the first config file found,
// and environment variables, in increasing priority.
func Load() (*Config, error) {
	return LoadFrom("")
}

// LoadFrom is Load with an explicit config file path. A non-empty path must
// exist; an empty path falls back to the CONFIG_PATH and default search.
func LoadFrom(path string) (*Config, error) {
	k := koanf.New(".")

	// Layer 1: defaults
	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// Layer 2: config file (optional)
	configPath := path
	if configPath != "" {
		if _, err := os.Stat(configPath); err != nil {
			return nil, fmt.Errorf("config file %s: %w", configPath, err)
		}
	} else {
		configPath = findConfigFile()
	}
	if configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	// Layer 3: environment variables
	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// findConfigFile returns the first existing config file, or "" if none exists.
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}

	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// envTransformFunc maps an environment variable name to its koanf path.
// Unmapped names return "" and are skipped by the env provider.
func envTransformFunc(key string) string {
	if path, ok := envMappings[strings.ToLower(key)]; ok {
		return path
	}
	return ""
}

// Endless - Continuous Playback Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/endless

/*
Package config loads and validates Endless configuration.

Configuration is layered with koanf v2, lowest priority first:

 1. Built-in defaults (defaultConfig)
 2. An optional YAML file: $CONFIG_PATH, ./config.yaml, /etc/endless/config.yaml
 3. Environment variables, through an explicit mapping table

Only mapped environment variables are read. Anything else in the process
environment is ignored, so unrelated variables such as PATH never reach the
config tree.

# Environment Variables

	LOG_LEVEL, LOG_FORMAT, LOG_CALLER
	CATALOG_SOURCE (demo|file), CATALOG_PATH
	BACKEND_DRIVER (memory|duckdb), DUCKDB_PATH
	RESILIENCE_ENABLED, RESILIENCE_CALL_TIMEOUT, RESILIENCE_FAILURE_THRESHOLD,
	RESILIENCE_OPEN_TIMEOUT, RESILIENCE_HALF_OPEN_REQUESTS
	LOOKUP_CACHE_ENABLED, LOOKUP_CACHE_CAPACITY, LOOKUP_CACHE_TTL
	RECOMMEND_DEFAULT_LIMIT, RECOMMEND_MAX_LIMIT, RECOMMEND_OVERSAMPLE
	VIBE_BOOST_WITHIN, VIBE_PENALTY_BEYOND, VIBE_BOOST_MULTIPLIER, VIBE_PENALTY_MULTIPLIER

# Example File

	logging:
	  level: debug
	  format: console
	catalog:
	  source: file
	  path: ./tracks.json
	backend:
	  driver: duckdb
	recommend:
	  default_limit: 10
	  vibe:
	    boost_within: 8

Durations accept Go syntax ("250ms", "30s").
*/
package config

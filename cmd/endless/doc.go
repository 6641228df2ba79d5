// Endless - Continuous Playback Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/endless

// Package main is the entry point for the endless command.
//
// endless loads a track catalog, builds the recommendation engine over the
// configured backend and prints recommendations as JSON.
//
// # Application Architecture
//
// Components are initialized in the following order:
//
//  1. Configuration: defaults, config file and environment (Koanf v2)
//  2. Logging: zerolog to stderr
//  3. Catalog: built-in demo catalog or a JSON file
//  4. Backend: in-memory reference index or DuckDB
//  5. Resilience (optional): circuit breaker and timeout around each port
//  6. Lookup cache (optional): LRU+TTL in front of the metadata lookup
//  7. Engine
//
// # Commands
//
//	endless [flags] recommend   print recommendations for -seed (or -request)
//	endless [flags] catalog     print the catalog summaries
//
// # Flags
//
//	-config PATH       config file (overrides CONFIG_PATH)
//	-seed ID           seed track id
//	-exclude IDS       comma-separated listening history to exclude
//	-limit N           number of tracks (default: recommend.default_limit)
//	-request FILE      JSON request body instead of -seed/-exclude/-limit ("-" for stdin)
//	-metrics-out PATH  write Prometheus metrics to PATH on exit
//
// # Exit Codes
//
//	0  success
//	1  configuration, catalog or backend failure
//	2  usage or request validation error
//	3  seed track not found (the envelope is still printed)
//
// # Example Usage
//
//	endless -seed uLK2r3sG4lE -exclude XoiOOiuH8iI recommend
//
//	BACKEND_DRIVER=duckdb RESILIENCE_ENABLED=true endless -seed 1 -limit 3 recommend
//
//	echo '{"seed_track_id":"1","limit":2}' | endless -request - recommend
package main

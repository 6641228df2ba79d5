// Endless - Continuous Playback Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/endless

/*
Package metrics provides Prometheus instrumentation for the recommendation path.

Collectors are registered on the default registry at init time via promauto.
The CLI can write a snapshot in the node_exporter textfile format with
WriteTextfile. Nothing in this module serves /metrics over the network.

# Available Metrics

Recommendation Metrics:
  - endless_recommend_requests_total: Requests by outcome (counter)
    Labels: outcome (ok, seed_not_found, error)
  - endless_recommend_duration_seconds: End-to-end engine latency (histogram)
    Labels: outcome
  - endless_recommend_candidate_pool_size: Neighbours retrieved per request (histogram)
  - endless_recommend_eligible_candidates: Candidates left after filtering (histogram)
  - endless_recommend_results_returned: Tracks returned per request (histogram)

Backend Metrics:
  - endless_backend_call_duration_seconds: Port call latency (histogram)
    Labels: backend, operation
  - endless_backend_call_errors_total: Port call failures (counter)
    Labels: backend, operation

Circuit Breaker Metrics:
  - endless_circuit_breaker_state: 0=closed, 1=half-open, 2=open (gauge)
  - endless_circuit_breaker_requests_total: Labels name, result
  - endless_circuit_breaker_consecutive_failures: Labels name
  - endless_circuit_breaker_state_transitions_total: Labels name, from_state, to_state

Lookup Cache Metrics:
  - endless_lookup_cache_hits_total / endless_lookup_cache_misses_total (counter)
  - endless_lookup_cache_entries (gauge)
*/
package metrics

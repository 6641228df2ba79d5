// Endless - Continuous Playback Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/endless

package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recommendation outcomes used as label values.
const (
	OutcomeOK           = "ok"
	OutcomeSeedNotFound = "seed_not_found"
	OutcomeError        = "error"
)

// poolBuckets covers pools from a handful of tracks up to a few thousand.
var poolBuckets = []float64{0, 1, 5, 10, 20, 50, 100, 200, 500, 1000, 5000}

var (
	// Recommendation Metrics
	RecommendRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "endless_recommend_requests_total",
			Help: "Total number of recommendation requests by outcome",
		},
		[]string{"outcome"},
	)

	RecommendDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "endless_recommend_duration_seconds",
			Help:    "Recommendation latency in seconds",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
		},
		[]string{"outcome"},
	)

	RecommendPoolSize = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "endless_recommend_candidate_pool_size",
			Help:    "Number of nearest neighbours retrieved per request",
			Buckets: poolBuckets,
		},
	)

	RecommendEligible = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "endless_recommend_eligible_candidates",
			Help:    "Number of candidates remaining after exclusion filtering",
			Buckets: poolBuckets,
		},
	)

	RecommendReturned = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "endless_recommend_results_returned",
			Help:    "Number of tracks returned per request",
			Buckets: []float64{0, 1, 2, 5, 10, 20, 50, 100},
		},
	)

	// Backend Metrics
	BackendCallDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "endless_backend_call_duration_seconds",
			Help:    "Duration of similarity index and metadata lookup calls",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"backend", "operation"},
	)

	BackendCallErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "endless_backend_call_errors_total",
			Help: "Total number of failed backend calls",
		},
		[]string{"backend", "operation"},
	)

	// Circuit Breaker Metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "endless_circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "endless_circuit_breaker_requests_total",
			Help: "Total number of requests through circuit breaker",
		},
		[]string{"name", "result"}, // result: "success", "failure", "rejected"
	)

	CircuitBreakerConsecutiveFailures = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "endless_circuit_breaker_consecutive_failures",
			Help: "Current number of consecutive failures",
		},
		[]string{"name"},
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "endless_circuit_breaker_state_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from_state", "to_state"},
	)

	// Lookup Cache Metrics
	LookupCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "endless_lookup_cache_hits_total",
			Help: "Total number of metadata lookup cache hits",
		},
	)

	LookupCacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "endless_lookup_cache_misses_total",
			Help: "Total number of metadata lookup cache misses",
		},
	)

	LookupCacheEntries = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "endless_lookup_cache_entries",
			Help: "Current number of cached metadata entries",
		},
	)
)

// RecordRecommendation records one finished engine request.
func RecordRecommendation(outcome string, duration time.Duration, pool, eligible, returned int) {
	RecommendRequests.WithLabelValues(outcome).Inc()
	RecommendDuration.WithLabelValues(outcome).Observe(duration.Seconds())
	if outcome != OutcomeOK {
		return
	}
	RecommendPoolSize.Observe(float64(pool))
	RecommendEligible.Observe(float64(eligible))
	RecommendReturned.Observe(float64(returned))
}

// RecordBackendCall records the latency and failure of a port call.
func RecordBackendCall(backend, operation string, duration time.Duration, err error) {
	BackendCallDuration.WithLabelValues(backend, operation).Observe(duration.Seconds())
	if err != nil {
		BackendCallErrors.WithLabelValues(backend, operation).Inc()
	}
}

// RecordLookupCache records a cache hit or miss.
func RecordLookupCache(hit bool) {
	if hit {
		LookupCacheHits.Inc()
		return
	}
	LookupCacheMisses.Inc()
}

// WriteTextfile writes the default registry to path in the Prometheus text
// format, for pickup by a node_exporter textfile collector.
func WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, prometheus.DefaultGatherer); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}
	return nil
}

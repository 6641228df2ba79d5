// Endless - Continuous Playback Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/endless

/*
Package resilient decorates the recommendation ports with a per-call timeout
and a circuit breaker (sony/gobreaker).

	idx := resilient.NewIndex(store, settings, logger)
	lookup := resilient.NewLookup(store, settings, logger)

Each decorator owns its own breaker. After FailureThreshold consecutive
failures the breaker opens and calls fail fast with an error matching both
ErrCircuitOpen and gobreaker.ErrOpenState. After OpenTimeout up to
HalfOpenRequests trial calls are let through; one success closes it again.

A call that exceeds CallTimeout returns an error wrapping
context.DeadlineExceeded and counts as a failure. The timeout is enforced
even for backends that ignore their context. Cancellation by the caller is
not held against the backend.

Breaker state, transitions and per-result request counts are exported through
internal/metrics under the breaker name.
*/
package resilient

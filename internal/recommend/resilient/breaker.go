// Endless - Continuous Playback Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/endless

package resilient

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/endless/internal/logging"
	"github.com/tomtom215/endless/internal/metrics"
)

// ErrCircuitOpen is wrapped by every error returned while a breaker rejects calls.
var ErrCircuitOpen = errors.New("circuit breaker open")

// Settings configures a decorator.
type Settings struct {
	// Name prefixes the breaker names in logs and metrics.
	Name string

	// CallTimeout bounds each backend call.
	CallTimeout time.Duration

	// FailureThreshold is the number of consecutive failures that opens the breaker.
	FailureThreshold uint32

	// OpenTimeout is how long the breaker stays open before trying again.
	OpenTimeout time.Duration

	// HalfOpenRequests is the number of trial calls allowed while half-open.
	HalfOpenRequests uint32
}

// DefaultSettings returns conservative defaults for an in-process backend.
func DefaultSettings() Settings {
	return Settings{
		Name:             "backend",
		CallTimeout:      2 * time.Second,
		FailureThreshold: 5,
		OpenTimeout:      30 * time.Second,
		HalfOpenRequests: 1,
	}
}

// breaker runs calls of one operation through a gobreaker with a timeout.
type breaker[T any] struct {
	cb      *gobreaker.CircuitBreaker[T]
	name    string
	timeout time.Duration
	logger  zerolog.Logger
}

//nolint:gocritic // logger passed by value is acceptable for zerolog
func newBreaker[T any](name string, s Settings, logger zerolog.Logger) *breaker[T] {
	b := &breaker[T]{
		name:    name,
		timeout: s.CallTimeout,
		logger:  logger.With().Str("component", "resilient").Str("breaker", name).Logger(),
	}

	metrics.CircuitBreakerState.WithLabelValues(name).Set(0)
	metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(name).Set(0)

	threshold := s.FailureThreshold
	if threshold == 0 {
		threshold = 1
	}

	b.cb = gobreaker.NewCircuitBreaker[T](gobreaker.Settings{
		Name:        name,
		MaxRequests: s.HalfOpenRequests,
		Timeout:     s.OpenTimeout,

		ReadyToTrip: func(counts gobreaker.Counts) bool {
			trip := counts.ConsecutiveFailures >= threshold
			if trip {
				b.logger.Warn().Uint32("consecutive_failures", counts.ConsecutiveFailures).Msg("opening circuit")
			}
			return trip
		},

		OnStateChange: func(name string, from, to gobreaker.State) {
			fromStr, toStr := stateToString(from), stateToString(to)
			b.logger.Info().Str("from", fromStr).Str("to", toStr).Msg("circuit breaker state transition")

			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
			metrics.CircuitBreakerTransitions.WithLabelValues(name, fromStr, toStr).Inc()
			if to == gobreaker.StateClosed {
				metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(name).Set(0)
			}
		},

		// The caller giving up says nothing about backend health.
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
	})

	return b
}

// outcome carries a backend result across the timeout goroutine.
type outcome[T any] struct {
	value T
	err   error
}

// execute runs fn under the breaker and the call timeout.
func (b *breaker[T]) execute(ctx context.Context, fn func(context.Context) (T, error)) (T, error) {
	value, err := b.cb.Execute(func() (T, error) {
		return b.withTimeout(ctx, fn)
	})

	if err != nil {
		var zero T
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			metrics.CircuitBreakerRequests.WithLabelValues(b.name, "rejected").Inc()
			b.logger.Warn().Str("request_id", logging.RequestIDFromContext(ctx)).Err(err).Msg("request rejected")
			return zero, fmt.Errorf("%w: %s: %w", ErrCircuitOpen, b.name, err)
		}

		metrics.CircuitBreakerRequests.WithLabelValues(b.name, "failure").Inc()
		counts := b.cb.Counts()
		metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(b.name).Set(float64(counts.ConsecutiveFailures))
		return zero, err
	}

	metrics.CircuitBreakerRequests.WithLabelValues(b.name, "success").Inc()
	metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(b.name).Set(0)
	return value, nil
}

// withTimeout runs fn in its own goroutine so a backend that ignores ctx
// still cannot hold the caller past the deadline.
func (b *breaker[T]) withTimeout(ctx context.Context, fn func(context.Context) (T, error)) (T, error) {
	if b.timeout <= 0 {
		return fn(ctx)
	}

	ctx, cancel := context.WithTimeout(ctx, b.timeout)
	defer cancel()

	done := make(chan outcome[T], 1)
	go func() {
		v, err := fn(ctx)
		done <- outcome[T]{value: v, err: err}
	}()

	select {
	case o := <-done:
		return o.value, o.err
	case <-ctx.Done():
		var zero T
		return zero, fmt.Errorf("%s: %w", b.name, ctx.Err())
	}
}

// State returns the current breaker state.
func (b *breaker[T]) State() gobreaker.State {
	return b.cb.State()
}

func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}

func stateToString(state gobreaker.State) string {
	switch state {
	case gobreaker.StateClosed:
		return "closed"
	case gobreaker.StateHalfOpen:
		return "half-open"
	case gobreaker.StateOpen:
		return "open"
	default:
		return "unknown"
	}
}

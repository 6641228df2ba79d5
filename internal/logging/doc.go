// Endless - Continuous Playback Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/endless

// Package logging provides the process-wide zerolog logger for Endless.
//
// # Quick Start
//
//	logging.Init(logging.Config{Level: "info", Format: "json"})
//
//	logging.Info().Str("backend", "memory").Msg("engine ready")
//	logging.Error().Err(err).Msg("catalog load failed")
//
//	// Request-scoped fields
//	ctx = logging.ContextWithNewRequestID(ctx)
//	logging.Ctx(ctx).Debug().Msg("recommending")
//
// Components that take a zerolog.Logger (the recommendation engine, the
// resilient decorators) should be handed WithComponent(name) so every line
// carries a component field.
//
// # Configuration
//
//   - level: trace, debug, info, warn, error, fatal, panic, disabled (default info)
//   - format: json or console (default json)
//   - caller: include file:line (default false)
//
// Always terminate log chains with .Msg() or .Send(); an unterminated event
// is never written.
package logging

// Endless - Continuous Playback Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/endless

// Package validation provides struct validation using go-playground/validator v10.
//
// A single validator instance is built lazily and shared by every caller. It
// caches struct metadata, so repeated validation of Track and request values
// stays cheap.
//
// # Custom Tags
//
//   - finite: the float (or every float in a slice) is neither NaN nor ±Inf
//
// # Usage
//
//	type Track struct {
//	    ID    string  `validate:"required,max=128"`
//	    Tempo float64 `validate:"finite,gt=0"`
//	}
//
//	if verr := validation.ValidateStruct(&track); verr != nil {
//	    return fmt.Errorf("invalid track: %w", verr)
//	}
//
// Errors are returned as *RequestValidationError, which carries one
// ValidationError per failed field and can be flattened to an APIError for
// boundary layers.
package validation

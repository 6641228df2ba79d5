// Endless - Continuous Playback Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/endless

package boundary

import (
	"fmt"
	"io"

	"github.com/goccy/go-json"

	"github.com/tomtom215/endless/internal/catalog"
	"github.com/tomtom215/endless/internal/recommend"
	"github.com/tomtom215/endless/internal/validation"
)

// Response is the client-facing recommendation envelope.
type Response struct {
	Tracks    []catalog.Summary `json:"tracks"`
	Status    string            `json:"status"`
	RequestID string            `json:"request_id,omitempty"`
}

// ErrorResponse wraps a validation failure.
type ErrorResponse struct {
	Error *validation.APIError `json:"error"`
}

// NewResponse maps an engine result to the envelope. Tracks is never null.
//
//nolint:gocritic // Result passed by value, it is small and read-only here
func NewResponse(res recommend.Result) Response {
	tracks := res.Tracks
	if tracks == nil {
		tracks = []catalog.Summary{}
	}
	return Response{
		Tracks:    tracks,
		Status:    res.Status.String(),
		RequestID: res.RequestID,
	}
}

// NewErrorResponse wraps a validation error.
func NewErrorResponse(verr *validation.RequestValidationError) ErrorResponse {
	return ErrorResponse{Error: verr.ToAPIError()}
}

// WriteJSON writes v as indented JSON followed by a newline.
func WriteJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode response: %w", err)
	}
	return nil
}

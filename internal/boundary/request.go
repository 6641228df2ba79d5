// Endless - Continuous Playback Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/endless

package boundary

import (
	"fmt"
	"io"

	"github.com/goccy/go-json"

	"github.com/tomtom215/endless/internal/recommend"
	"github.com/tomtom215/endless/internal/validation"
)

// RecommendationRequest is the client-facing recommendation request.
type RecommendationRequest struct {
	SeedTrackID    string   `json:"seed_track_id" validate:"required,max=128"`
	UserHistoryIDs []string `json:"user_history_ids" validate:"max=1000,dive,required"`
	Limit          *int     `json:"limit,omitempty" validate:"omitempty,min=1,max=100"`
}

// Validate checks r against its struct tags. It returns nil when r is valid.
func (r *RecommendationRequest) Validate() *validation.RequestValidationError {
	return validation.ValidateStruct(r)
}

// ToRequest converts r to an engine request. defaultLimit applies when r has no limit.
func (r *RecommendationRequest) ToRequest(defaultLimit int) recommend.Request {
	limit := defaultLimit
	if r.Limit != nil {
		limit = *r.Limit
	}

	var exclude []string
	if len(r.UserHistoryIDs) > 0 {
		exclude = make([]string, len(r.UserHistoryIDs))
		copy(exclude, r.UserHistoryIDs)
	}

	return recommend.Request{
		SeedID:     r.SeedTrackID,
		ExcludeIDs: exclude,
		Limit:      limit,
	}
}

// DecodeRequest reads one JSON request body. Unknown fields are rejected.
func DecodeRequest(rd io.Reader) (RecommendationRequest, error) {
	var req RecommendationRequest
	dec := json.NewDecoder(rd)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		return RecommendationRequest{}, fmt.Errorf("decode recommendation request: %w", err)
	}
	return req, nil
}

// Endless - Continuous Playback Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/endless

package recommend

import "github.com/tomtom215/endless/internal/catalog"

// DefaultLimit is the number of recommendations NewRequest asks for.
const DefaultLimit = 5

// Request is a single recommendation request.
type Request struct {
	// SeedID is the track the listener is currently playing.
	SeedID string `json:"seed_id"`

	// ExcludeIDs are tracks that must not be returned, typically the
	// listener's recent history. Treated as a set; duplicates are harmless.
	ExcludeIDs []string `json:"exclude_ids,omitempty"`

	// Limit is the maximum number of tracks to return. Zero returns none;
	// negative values are treated as zero.
	Limit int `json:"limit"`

	// RequestID is a tracing identifier. Generated when empty.
	RequestID string `json:"request_id,omitempty"`
}

// NewRequest builds a Request for seedID with DefaultLimit.
func NewRequest(seedID string, excludeIDs []string) Request {
	return Request{
		SeedID:     seedID,
		ExcludeIDs: excludeIDs,
		Limit:      DefaultLimit,
	}
}

// Status describes how a request was resolved.
type Status int

const (
	// StatusOK means the seed was found; Tracks may still be empty.
	StatusOK Status = iota

	// StatusSeedNotFound means the seed id is not in the catalog.
	StatusSeedNotFound
)

// String returns the wire name of the status.
func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusSeedNotFound:
		return "seed_not_found"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Candidate is a track under consideration for a single request.
type Candidate struct {
	Track catalog.Track

	// Rank is the zero-based position in the similarity pool.
	Rank int

	// Score is the vibe-adjusted relevance, higher is better.
	Score float64
}

// Result is the outcome of a recommendation request.
type Result struct {
	Status    Status            `json:"status"`
	Tracks    []catalog.Summary `json:"tracks"`
	RequestID string            `json:"request_id,omitempty"`

	// PoolSize is the number of candidates the similarity index returned.
	PoolSize int `json:"pool_size"`

	// Eligible is the number of candidates left after exclusion filtering.
	Eligible int `json:"eligible"`
}

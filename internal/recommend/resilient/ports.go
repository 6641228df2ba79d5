// Endless - Continuous Playback Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/endless

package resilient

import (
	"context"

	"github.com/rs/zerolog"
	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/endless/internal/catalog"
	"github.com/tomtom215/endless/internal/recommend"
)

// Index guards a recommend.SimilarityIndex.
type Index struct {
	next recommend.SimilarityIndex
	br   *breaker[[]catalog.Track]
}

// NewIndex wraps next. The breaker is named "<s.Name>.find_nearest".
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewIndex(next recommend.SimilarityIndex, s Settings, logger zerolog.Logger) *Index {
	return &Index{
		next: next,
		br:   newBreaker[[]catalog.Track](s.Name+".find_nearest", s, logger),
	}
}

// FindNearest forwards to the wrapped index.
func (i *Index) FindNearest(ctx context.Context, vector []float64, limit int) ([]catalog.Track, error) {
	return i.br.execute(ctx, func(ctx context.Context) ([]catalog.Track, error) {
		return i.next.FindNearest(ctx, vector, limit)
	})
}

// State returns the breaker state.
func (i *Index) State() gobreaker.State {
	return i.br.State()
}

// lookupResult bundles GetByID's two non-error returns for the generic breaker.
type lookupResult struct {
	track catalog.Track
	found bool
}

// Lookup guards a recommend.MetadataLookup.
type Lookup struct {
	next recommend.MetadataLookup
	br   *breaker[lookupResult]
}

// NewLookup wraps next. The breaker is named "<s.Name>.get_by_id".
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewLookup(next recommend.MetadataLookup, s Settings, logger zerolog.Logger) *Lookup {
	return &Lookup{
		next: next,
		br:   newBreaker[lookupResult](s.Name+".get_by_id", s, logger),
	}
}

// GetByID forwards to the wrapped lookup. A missing id is a success.
func (l *Lookup) GetByID(ctx context.Context, id string) (catalog.Track, bool, error) {
	r, err := l.br.execute(ctx, func(ctx context.Context) (lookupResult, error) {
		t, found, err := l.next.GetByID(ctx, id)
		return lookupResult{track: t, found: found}, err
	})
	if err != nil {
		return catalog.Track{}, false, err
	}
	return r.track, r.found, nil
}

// State returns the breaker state.
func (l *Lookup) State() gobreaker.State {
	return l.br.State()
}

// Endless - Continuous Playback Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/endless

package memory

import (
	"context"

	"github.com/tomtom215/endless/internal/catalog"
)

// Lookup resolves tracks by id from a catalog.
type Lookup struct {
	catalog *catalog.Catalog
}

// NewLookup creates a lookup over c.
func NewLookup(c *catalog.Catalog) *Lookup {
	return &Lookup{catalog: c}
}

// GetByID returns a copy of the track with the given id. The error is always nil.
func (l *Lookup) GetByID(_ context.Context, id string) (catalog.Track, bool, error) {
	t, ok := l.catalog.Get(id)
	if !ok {
		return catalog.Track{}, false, nil
	}
	return t.Clone(), true, nil
}

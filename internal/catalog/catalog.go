// Endless - Continuous Playback Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/endless

package catalog

import (
	"errors"
	"fmt"

	"github.com/tomtom215/endless/internal/validation"
)

// ErrInvalidCatalog is wrapped by every error New returns.
var ErrInvalidCatalog = errors.New("invalid catalog")

// Catalog is an ordered, immutable collection of tracks.
type Catalog struct {
	tracks []Track
	index  map[string]int
	dim    int
}

// New validates tracks and builds a catalog snapshot.
// The input slice and its embeddings are copied.
func New(tracks []Track) (*Catalog, error) {
	c := &Catalog{
		tracks: make([]Track, 0, len(tracks)),
		index:  make(map[string]int, len(tracks)),
	}

	for i := range tracks {
		t := tracks[i]

		if verr := validation.ValidateStruct(&t); verr != nil {
			return nil, fmt.Errorf("%w: track %d (%q): %w", ErrInvalidCatalog, i, t.ID, verr)
		}

		if _, dup := c.index[t.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate track id %q", ErrInvalidCatalog, t.ID)
		}

		if i == 0 {
			c.dim = len(t.Embedding)
		} else if len(t.Embedding) != c.dim {
			return nil, fmt.Errorf("%w: track %q has %d embedding dimensions, want %d",
				ErrInvalidCatalog, t.ID, len(t.Embedding), c.dim)
		}

		c.index[t.ID] = len(c.tracks)
		c.tracks = append(c.tracks, t.Clone())
	}

	return c, nil
}

// MustNew is like New but panics on error. Intended for fixed fixtures.
func MustNew(tracks []Track) *Catalog {
	c, err := New(tracks)
	if err != nil {
		panic(err)
	}
	return c
}

// Len returns the number of tracks.
func (c *Catalog) Len() int {
	return len(c.tracks)
}

// Dimension returns the shared embedding dimensionality, or 0 for an empty catalog.
func (c *Catalog) Dimension() int {
	return c.dim
}

// Tracks returns the tracks in catalog order.
// The returned slice is a copy; embeddings are shared and read-only.
func (c *Catalog) Tracks() []Track {
	out := make([]Track, len(c.tracks))
	copy(out, c.tracks)
	return out
}

// At returns the track at position i. It panics if i is out of range.
func (c *Catalog) At(i int) Track {
	return c.tracks[i]
}

// Get returns the track with the given id.
func (c *Catalog) Get(id string) (Track, bool) {
	i, ok := c.index[id]
	if !ok {
		return Track{}, false
	}
	return c.tracks[i], true
}

// Summaries returns the public summaries of all tracks in catalog order.
func (c *Catalog) Summaries() []Summary {
	return Summaries(c.tracks)
}

// Endless - Continuous Playback Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/endless

package memory

import (
	"context"
	"sort"

	"github.com/tomtom215/endless/internal/catalog"
)

// Index is a brute-force cosine similarity index over a catalog.
type Index struct {
	catalog *catalog.Catalog
}

// NewIndex creates an index over c.
func NewIndex(c *catalog.Catalog) *Index {
	return &Index{catalog: c}
}

// scored pairs a catalog position with its similarity to the query.
type scored struct {
	pos   int
	score float64
}

// FindNearest returns the limit tracks most similar to vector, best first.
// Equal similarities keep catalog order. The error is always nil.
func (i *Index) FindNearest(_ context.Context, vector []float64, limit int) ([]catalog.Track, error) {
	n := i.catalog.Len()
	if limit <= 0 || n == 0 {
		return []catalog.Track{}, nil
	}

	scores := make([]scored, n)
	for pos := 0; pos < n; pos++ {
		scores[pos] = scored{pos: pos, score: CosineSimilarity(vector, i.catalog.At(pos).Embedding)}
	}

	sort.SliceStable(scores, func(a, b int) bool {
		return scores[a].score > scores[b].score
	})

	if limit > n {
		limit = n
	}
	out := make([]catalog.Track, limit)
	for k := 0; k < limit; k++ {
		out[k] = i.catalog.At(scores[k].pos).Clone()
	}
	return out, nil
}

// Endless - Continuous Playback Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/endless

package recommend

import (
	"context"

	"github.com/tomtom215/endless/internal/catalog"
)

// SimilarityIndex finds the tracks whose embeddings are closest to a query vector.
type SimilarityIndex interface {
	// FindNearest returns up to limit tracks ordered best match first.
	// A non-positive limit yields an empty slice. Implementations must not
	// retain or modify vector.
	FindNearest(ctx context.Context, vector []float64, limit int) ([]catalog.Track, error)
}

// MetadataLookup resolves a track by id.
type MetadataLookup interface {
	// GetByID returns the track and true, or the zero Track and false when the
	// id is unknown. Absence is not an error.
	GetByID(ctx context.Context, id string) (catalog.Track, bool, error)
}

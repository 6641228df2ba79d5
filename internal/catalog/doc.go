// Endless - Continuous Playback Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/endless

// Package catalog holds the immutable track snapshot the recommendation engine
// reads from.
//
// A Catalog is built once, usually at process start, by New, Demo or
// LoadFile. Construction validates every track and copies the embeddings, so
// later changes to the caller's slices cannot leak into the snapshot. After
// that the catalog is read-only and safe for unsynchronized concurrent reads.
//
// # Invariants
//
//   - Track IDs are unique within a catalog.
//   - Every embedding has the same dimensionality.
//   - Tempo is a finite, positive BPM value.
//
// Track embeddings returned by accessors share storage with the catalog and
// must be treated as read-only. Use Track.Clone for a private copy.
package catalog

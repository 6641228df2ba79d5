// Endless - Continuous Playback Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/endless

// Package memory provides the in-process reference implementations of the
// recommend.SimilarityIndex and recommend.MetadataLookup ports.
//
// Index is an exact brute-force cosine search: every query scores the whole
// catalog. It is the ground truth other backends are compared against.
// Lookup is a map from id to catalog position.
//
// Both are read-only views over a catalog.Catalog and safe for concurrent use.
package memory

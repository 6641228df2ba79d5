// Endless - Continuous Playback Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/endless

// Package cached wraps a recommend.MetadataLookup with an LRU+TTL cache.
//
// Both hits and confirmed misses are cached; errors are not. Concurrent misses
// for the same id share one call to the underlying lookup through
// golang.org/x/sync/singleflight. Cached tracks are copied on the way out so
// callers cannot modify the cache.
package cached

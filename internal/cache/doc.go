// Endless - Continuous Playback Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/endless

/*
Package cache provides a thread-safe generic LRU cache with TTL support.

LRU keeps a hashmap for lookups and a doubly linked list for recency, so Get,
Add, Remove and eviction are all O(1). Expiry is lazy: an expired entry is
dropped when it is next read, or in bulk by CleanupExpired.

# Usage Example

	tracks := cache.NewLRU[catalog.Track](1024, 5*time.Minute)

	tracks.Add(t.ID, t)
	if t, ok := tracks.Get(id); ok {
	    // hit
	}

	hits, misses, size := tracks.Stats()

A TTL of zero or less disables expiry.
*/
package cache

// Endless - Continuous Playback Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/endless

package cached

import (
	"context"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/tomtom215/endless/internal/cache"
	"github.com/tomtom215/endless/internal/catalog"
	"github.com/tomtom215/endless/internal/metrics"
	"github.com/tomtom215/endless/internal/recommend"
)

// result is a cached answer from the underlying lookup.
type result struct {
	track catalog.Track
	found bool
}

// Lookup is a caching recommend.MetadataLookup.
type Lookup struct {
	next  recommend.MetadataLookup
	cache *cache.LRU[result]
	group singleflight.Group
}

// NewLookup caches up to capacity answers from next for ttl each.
func NewLookup(next recommend.MetadataLookup, capacity int, ttl time.Duration) *Lookup {
	return &Lookup{
		next:  next,
		cache: cache.NewLRU[result](capacity, ttl),
	}
}

// GetByID serves id from the cache, falling through to the wrapped lookup on a miss.
func (l *Lookup) GetByID(ctx context.Context, id string) (catalog.Track, bool, error) {
	if r, ok := l.cache.Get(id); ok {
		metrics.RecordLookupCache(true)
		return r.track.Clone(), r.found, nil
	}
	metrics.RecordLookupCache(false)

	v, err, _ := l.group.Do(id, func() (interface{}, error) {
		t, found, err := l.next.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		r := result{track: t.Clone(), found: found}
		l.cache.Add(id, r)
		metrics.LookupCacheEntries.Set(float64(l.cache.Len()))
		return r, nil
	})
	if err != nil {
		return catalog.Track{}, false, err
	}

	r := v.(result)
	return r.track.Clone(), r.found, nil
}

// Stats returns the cache hit and miss counts and current size.
func (l *Lookup) Stats() (hits, misses int64, size int) {
	return l.cache.Stats()
}

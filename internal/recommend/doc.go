// Endless - Continuous Playback Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/endless

/*
Package recommend implements the continuous playback recommendation engine.

Given a seed track and the listener's recent history, the engine returns an
ordered list of tracks that keep the session flowing:

 1. Resolve the seed through a MetadataLookup.
 2. Ask a SimilarityIndex for Oversample x Limit nearest neighbours of the
    seed embedding (the candidate pool).
 3. Drop the seed itself and every excluded id.
 4. Rescale each survivor's base score of 1.0 by a tempo continuity factor
    (VibeConfig.Multiplier on the absolute bpm difference).
 5. Stable sort by score, so equal scores keep similarity order, and
    truncate to Limit.

# Ports

SimilarityIndex and MetadataLookup are the only collaborators. The reference
implementations live in recommend/memory; recommend/duckdb provides a
SQL-backed alternative. Decorators in recommend/cached and recommend/resilient
wrap either port without the engine knowing.

# Usage

	cat := catalog.Demo()
	idx := memory.NewIndex(cat)
	lookup := memory.NewLookup(cat)

	engine, err := recommend.NewEngine(idx, lookup, recommend.DefaultConfig(), logger)
	if err != nil {
		return err
	}

	res, err := engine.Recommend(ctx, recommend.NewRequest("uLK2r3sG4lE", history))
	if err != nil {
		return err
	}
	if res.Status == recommend.StatusSeedNotFound {
		// unknown seed; res.Tracks is empty
	}

# Thread Safety

Engine holds no mutable state after construction and is safe for concurrent
use. Inputs and catalog data are never modified.
*/
package recommend

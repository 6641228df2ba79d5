// Endless - Continuous Playback Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/endless

package recommend

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/endless/internal/catalog"
	"github.com/tomtom215/endless/internal/logging"
	"github.com/tomtom215/endless/internal/metrics"
)

// baseScore is the relevance every candidate starts with before vibe scaling.
const baseScore = 1.0

var (
	// ErrNilIndex is returned by NewEngine when no SimilarityIndex is given.
	ErrNilIndex = errors.New("recommend: similarity index is nil")

	// ErrNilLookup is returned by NewEngine when no MetadataLookup is given.
	ErrNilLookup = errors.New("recommend: metadata lookup is nil")
)

// Engine produces continuous playback recommendations.
// It is safe for concurrent use.
type Engine struct {
	config *Config
	logger zerolog.Logger

	index  SimilarityIndex
	lookup MetadataLookup
}

// NewEngine creates an engine over the given ports. A nil cfg uses DefaultConfig.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(index SimilarityIndex, lookup MetadataLookup, cfg *Config, logger zerolog.Logger) (*Engine, error) {
	if index == nil {
		return nil, ErrNilIndex
	}
	if lookup == nil {
		return nil, ErrNilLookup
	}
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Engine{
		config: cfg.Clone(),
		logger: logger.With().Str("component", "recommend").Logger(),
		index:  index,
		lookup: lookup,
	}, nil
}

// DefaultLimit returns the configured limit for callers that received none.
func (e *Engine) DefaultLimit() int {
	return e.config.DefaultLimit
}

// Config returns a copy of the engine configuration.
func (e *Engine) Config() *Config {
	return e.config.Clone()
}

// Recommend returns up to req.Limit tracks to play after req.SeedID.
//
// An unknown seed is not an error: the result has StatusSeedNotFound and no
// tracks. Errors are only returned when a port fails.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) Recommend(ctx context.Context, req Request) (Result, error) {
	start := time.Now()

	req = e.prepareRequest(ctx, req)
	ctx = logging.ContextWithRequestID(ctx, req.RequestID)
	logger := e.createRequestLogger(req)
	logger.Debug().Msg("processing recommendation request")

	seed, found, err := e.lookup.GetByID(ctx, req.SeedID)
	if err != nil {
		metrics.RecordRecommendation(metrics.OutcomeError, time.Since(start), 0, 0, 0)
		logger.Error().Err(err).Msg("seed lookup failed")
		return Result{}, fmt.Errorf("seed lookup: %w", err)
	}
	if !found {
		metrics.RecordRecommendation(metrics.OutcomeSeedNotFound, time.Since(start), 0, 0, 0)
		logger.Warn().Msg("seed track not found")
		return Result{
			Status:    StatusSeedNotFound,
			Tracks:    []catalog.Summary{},
			RequestID: req.RequestID,
		}, nil
	}

	if req.Limit == 0 {
		metrics.RecordRecommendation(metrics.OutcomeOK, time.Since(start), 0, 0, 0)
		return e.okResult(req, nil, 0, 0), nil
	}

	pool, err := e.index.FindNearest(ctx, seed.Embedding, e.poolSize(req.Limit))
	if err != nil {
		metrics.RecordRecommendation(metrics.OutcomeError, time.Since(start), 0, 0, 0)
		logger.Error().Err(err).Msg("candidate search failed")
		return Result{}, fmt.Errorf("candidate search: %w", err)
	}

	candidates := e.filterCandidates(pool, buildExcludeSet(req.ExcludeIDs), seed.ID)
	eligible := len(candidates)

	e.rerank(candidates, seed.Tempo)

	if len(candidates) > req.Limit {
		candidates = candidates[:req.Limit]
	}

	res := e.okResult(req, candidates, len(pool), eligible)
	metrics.RecordRecommendation(metrics.OutcomeOK, time.Since(start), len(pool), eligible, len(res.Tracks))

	logger.Debug().
		Int("pool", len(pool)).
		Int("eligible", eligible).
		Int("returned", len(res.Tracks)).
		Dur("latency", time.Since(start)).
		Msg("recommendation complete")

	return res, nil
}

// prepareRequest fills in the request id and normalises the limit.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) prepareRequest(ctx context.Context, req Request) Request {
	if req.RequestID == "" {
		req.RequestID = logging.RequestIDFromContext(ctx)
	}
	if req.RequestID == "" {
		req.RequestID = logging.GenerateRequestID()
	}

	if req.Limit < 0 {
		req.Limit = 0
	}
	if e.config.MaxLimit > 0 && req.Limit > e.config.MaxLimit {
		req.Limit = e.config.MaxLimit
	}

	return req
}

// createRequestLogger creates a logger with request context.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) createRequestLogger(req Request) zerolog.Logger {
	return e.logger.With().
		Str("request_id", req.RequestID).
		Str("seed_id", req.SeedID).
		Int("limit", req.Limit).
		Logger()
}

// poolSize returns Oversample x limit, saturating instead of overflowing.
func (e *Engine) poolSize(limit int) int {
	if limit > math.MaxInt/e.config.Oversample {
		return math.MaxInt
	}
	return limit * e.config.Oversample
}

// buildExcludeSet builds a lookup set from the exclusion list.
func buildExcludeSet(ids []string) map[string]struct{} {
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

// filterCandidates drops the seed and excluded tracks, keeping pool order.
func (e *Engine) filterCandidates(pool []catalog.Track, exclude map[string]struct{}, seedID string) []Candidate {
	candidates := make([]Candidate, 0, len(pool))
	for rank, t := range pool {
		if t.ID == seedID {
			continue
		}
		if _, skip := exclude[t.ID]; skip {
			continue
		}
		candidates = append(candidates, Candidate{Track: t, Rank: rank, Score: baseScore})
	}
	return candidates
}

// rerank applies the vibe multiplier and sorts by score. The sort is stable,
// so candidates with equal scores keep their similarity order.
func (e *Engine) rerank(candidates []Candidate, seedTempo float64) {
	for i := range candidates {
		candidates[i].Score *= e.config.Vibe.Multiplier(candidates[i].Track.Tempo - seedTempo)
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})
}

// okResult maps candidates to summaries.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) okResult(req Request, candidates []Candidate, pool, eligible int) Result {
	tracks := make([]catalog.Summary, len(candidates))
	for i, c := range candidates {
		tracks[i] = c.Track.Summary()
	}
	return Result{
		Status:    StatusOK,
		Tracks:    tracks,
		RequestID: req.RequestID,
		PoolSize:  pool,
		Eligible:  eligible,
	}
}

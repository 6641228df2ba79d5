// Endless - Continuous Playback Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/endless

package main

import (
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/tomtom215/endless/internal/catalog"
	"github.com/tomtom215/endless/internal/config"
	"github.com/tomtom215/endless/internal/logging"
	"github.com/tomtom215/endless/internal/recommend"
	"github.com/tomtom215/endless/internal/recommend/cached"
	"github.com/tomtom215/endless/internal/recommend/duckdb"
	"github.com/tomtom215/endless/internal/recommend/memory"
	"github.com/tomtom215/endless/internal/recommend/resilient"
)

// app holds the wired components of one invocation.
type app struct {
	catalog *catalog.Catalog
	engine  *recommend.Engine
	closers []io.Closer
}

// Close releases backend resources.
func (a *app) Close() {
	for _, c := range a.closers {
		if err := c.Close(); err != nil {
			logging.Error().Err(err).Msg("error closing backend")
		}
	}
}

// build wires catalog, backend, decorators and engine from cfg.
//
//nolint:gocritic // hugeParam: logger passed by value for zerolog chaining
func build(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (*app, error) {
	cat, err := buildCatalog(cfg.Catalog)
	if err != nil {
		return nil, err
	}
	logger.Info().
		Str("source", cfg.Catalog.Source).
		Int("tracks", cat.Len()).
		Int("dimension", cat.Dimension()).
		Msg("catalog loaded")

	a := &app{catalog: cat}

	index, lookup, closer, err := buildBackend(ctx, cfg.Backend, cat)
	if err != nil {
		return nil, err
	}
	if closer != nil {
		a.closers = append(a.closers, closer)
	}

	// The breaker guards the backend only, so cache hits keep flowing while it is open.
	if cfg.Resilience.Enabled {
		s := resilienceSettings(cfg.Backend.Driver, cfg.Resilience)
		index = resilient.NewIndex(index, s, logger)
		lookup = resilient.NewLookup(lookup, s, logger)
		logger.Info().
			Dur("call_timeout", s.CallTimeout).
			Uint32("failure_threshold", s.FailureThreshold).
			Msg("resilience enabled")
	}

	if cfg.LookupCache.Enabled {
		lookup = cached.NewLookup(lookup, cfg.LookupCache.Capacity, cfg.LookupCache.TTL)
		logger.Info().
			Int("capacity", cfg.LookupCache.Capacity).
			Dur("ttl", cfg.LookupCache.TTL).
			Msg("lookup cache enabled")
	}

	engine, err := recommend.NewEngine(index, lookup, engineConfig(cfg.Recommend), logger)
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to create recommendation engine: %w", err)
	}
	a.engine = engine

	logger.Info().Str("backend", cfg.Backend.Driver).Msg("recommendation engine ready")
	return a, nil
}

func buildCatalog(cfg config.CatalogConfig) (*catalog.Catalog, error) {
	switch cfg.Source {
	case config.CatalogSourceFile:
		cat, err := catalog.LoadFile(cfg.Path)
		if err != nil {
			return nil, fmt.Errorf("failed to load catalog: %w", err)
		}
		return cat, nil
	default:
		return catalog.Demo(), nil
	}
}

// buildBackend returns the ports for the configured driver and, when the
// backend holds resources, a closer for them.
func buildBackend(ctx context.Context, cfg config.BackendConfig, cat *catalog.Catalog) (recommend.SimilarityIndex, recommend.MetadataLookup, io.Closer, error) {
	switch cfg.Driver {
	case config.BackendDuckDB:
		store, err := duckdb.Open(ctx, cfg.DuckDBPath, cat)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("failed to open duckdb backend: %w", err)
		}
		return store, store, store, nil
	default:
		return memory.NewIndex(cat), memory.NewLookup(cat), nil, nil
	}
}

func engineConfig(cfg config.RecommendConfig) *recommend.Config {
	return &recommend.Config{
		DefaultLimit: cfg.DefaultLimit,
		MaxLimit:     cfg.MaxLimit,
		Oversample:   cfg.Oversample,
		Vibe: recommend.VibeConfig{
			BoostWithin:       cfg.Vibe.BoostWithin,
			PenaltyBeyond:     cfg.Vibe.PenaltyBeyond,
			BoostMultiplier:   cfg.Vibe.BoostMultiplier,
			PenaltyMultiplier: cfg.Vibe.PenaltyMultiplier,
		},
	}
}

func resilienceSettings(name string, cfg config.ResilienceConfig) resilient.Settings {
	return resilient.Settings{
		Name:             name,
		CallTimeout:      cfg.CallTimeout,
		FailureThreshold: cfg.FailureThreshold,
		OpenTimeout:      cfg.OpenTimeout,
		HalfOpenRequests: cfg.HalfOpenRequests,
	}
}

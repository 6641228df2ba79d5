// Endless - Continuous Playback Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/endless

package duckdb

import (
	"context"
	"io"
	"reflect"
	"testing"

	"github.com/rs/zerolog"

	"github.com/tomtom215/endless/internal/catalog"
	"github.com/tomtom215/endless/internal/recommend"
	"github.com/tomtom215/endless/internal/recommend/memory"
)

var (
	_ recommend.SimilarityIndex = (*Store)(nil)
	_ recommend.MetadataLookup  = (*Store)(nil)
)

func openStore(t *testing.T, c *catalog.Catalog) *Store {
	t.Helper()
	s, err := Open(context.Background(), "", c)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func trackIDs(tracks []catalog.Track) []string {
	out := make([]string, len(tracks))
	for i, t := range tracks {
		out[i] = t.ID
	}
	return out
}

func TestStore_GetByID(t *testing.T) {
	demo := catalog.Demo()
	s := openStore(t, demo)
	ctx := context.Background()

	got, ok, err := s.GetByID(ctx, "SZpiiixlHWY")
	if err != nil || !ok {
		t.Fatalf("GetByID() = %v, %v", ok, err)
	}
	want, _ := demo.Get("SZpiiixlHWY")
	if !reflect.DeepEqual(got, want) {
		t.Errorf("GetByID() = %+v, want %+v", got, want)
	}

	_, ok, err = s.GetByID(ctx, "missing")
	if err != nil || ok {
		t.Errorf("missing id: ok=%v err=%v", ok, err)
	}
}

func TestStore_MatchesMemoryIndex(t *testing.T) {
	demo := catalog.Demo()
	s := openStore(t, demo)
	ref := memory.NewIndex(demo)
	ctx := context.Background()

	queries := [][]float64{
		{0.3, 0.6, 0.5},
		{0.1, 0.2, 0.9},
		{0.9, 0.8, 0.1},
		{1, 1, 1},
		{0, 0, 0},      // zero vector: all similarities 0, catalog order
		{1, 2},         // dimension mismatch: same
		{-0.5, 0.1, 0}, // negative components
	}

	for _, q := range queries {
		for _, limit := range []int{1, 3, 10, 40} {
			want, _ := ref.FindNearest(ctx, q, limit)
			got, err := s.FindNearest(ctx, q, limit)
			if err != nil {
				t.Fatalf("FindNearest(%v, %d) error = %v", q, limit, err)
			}
			if !reflect.DeepEqual(trackIDs(got), trackIDs(want)) {
				t.Errorf("FindNearest(%v, %d) = %v, want %v", q, limit, trackIDs(got), trackIDs(want))
			}
		}
	}
}

func TestStore_FindNearestLimits(t *testing.T) {
	s := openStore(t, catalog.Demo())
	ctx := context.Background()

	for _, limit := range []int{0, -2} {
		got, err := s.FindNearest(ctx, []float64{1, 1, 1}, limit)
		if err != nil || got == nil || len(got) != 0 {
			t.Errorf("FindNearest(limit=%d) = %v, %v; want empty", limit, got, err)
		}
	}

	empty := openStore(t, catalog.MustNew(nil))
	got, err := empty.FindNearest(ctx, []float64{1}, 5)
	if err != nil || len(got) != 0 {
		t.Errorf("empty catalog: %v, %v", got, err)
	}
}

func TestStore_EmbeddingRoundTrip(t *testing.T) {
	c := catalog.MustNew([]catalog.Track{
		{ID: "a", Title: "A", Artist: "X", Tempo: 120.5, Embedding: []float64{1e-7, -3.25, 0.1 + 0.2}},
	})
	s := openStore(t, c)

	got, ok, err := s.GetByID(context.Background(), "a")
	if err != nil || !ok {
		t.Fatalf("GetByID() = %v, %v", ok, err)
	}
	want := []float64{1e-7, -3.25, 0.1 + 0.2}
	if !reflect.DeepEqual(got.Embedding, want) {
		t.Errorf("embedding = %v, want %v", got.Embedding, want)
	}
	if got.Tempo != 120.5 {
		t.Errorf("tempo = %v, want 120.5", got.Tempo)
	}
}

func TestStore_EngineMatchesMemory(t *testing.T) {
	demo := catalog.Demo()
	s := openStore(t, demo)
	logger := zerolog.New(io.Discard)
	ctx := context.Background()

	viaDuck, err := recommend.NewEngine(s, s, nil, logger)
	if err != nil {
		t.Fatal(err)
	}
	viaMem, err := recommend.NewEngine(memory.NewIndex(demo), memory.NewLookup(demo), nil, logger)
	if err != nil {
		t.Fatal(err)
	}

	for i := 0; i < demo.Len(); i++ {
		seed := demo.At(i).ID
		req := recommend.Request{SeedID: seed, ExcludeIDs: []string{"3"}, Limit: 4, RequestID: "cmp"}

		want, err := viaMem.Recommend(ctx, req)
		if err != nil {
			t.Fatal(err)
		}
		got, err := viaDuck.Recommend(ctx, req)
		if err != nil {
			t.Fatal(err)
		}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("seed %s: duckdb %+v, memory %+v", seed, got.Tracks, want.Tracks)
		}
	}
}

func TestStore_VibeScenario(t *testing.T) {
	emb := []float64{0.5, 0.5, 0.5}
	c := catalog.MustNew([]catalog.Track{
		{ID: "seed", Title: "Seed", Tempo: 100, Embedding: emb},
		{ID: "t140", Title: "Fast", Tempo: 140, Embedding: emb},
		{ID: "t115", Title: "Mid", Tempo: 115, Embedding: emb},
		{ID: "t95", Title: "Close", Tempo: 95, Embedding: emb},
	})
	s := openStore(t, c)
	e, err := recommend.NewEngine(s, s, nil, zerolog.New(io.Discard))
	if err != nil {
		t.Fatal(err)
	}

	res, err := e.Recommend(context.Background(), recommend.Request{SeedID: "seed", Limit: 3})
	if err != nil {
		t.Fatal(err)
	}
	var got []string
	for _, tr := range res.Tracks {
		got = append(got, tr.ID)
	}
	if want := []string{"t95", "t115", "t140"}; !reflect.DeepEqual(got, want) {
		t.Errorf("order = %v, want %v", got, want)
	}
}

func TestListLiteral(t *testing.T) {
	tests := []struct {
		in   []float64
		want string
	}{
		{[]float64{1, 0.5, -2}, "[1, 0.5, -2]::DOUBLE[]"},
		{[]float64{1e-7}, "[1e-07]::DOUBLE[]"},
		{nil, "[]::DOUBLE[]"},
	}
	for _, tt := range tests {
		if got := listLiteral(tt.in); got != tt.want {
			t.Errorf("listLiteral(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

// Endless - Continuous Playback Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/endless

package memory

import (
	"context"
	"io"
	"math"
	"reflect"
	"testing"

	"github.com/rs/zerolog"

	"github.com/tomtom215/endless/internal/catalog"
	"github.com/tomtom215/endless/internal/recommend"
)

var (
	_ recommend.SimilarityIndex = (*Index)(nil)
	_ recommend.MetadataLookup  = (*Lookup)(nil)
)

func TestCosineSimilarity(t *testing.T) {
	tests := []struct {
		name string
		a, b []float64
		want float64
	}{
		{"identical", []float64{0.3, 0.6, 0.5}, []float64{0.3, 0.6, 0.5}, 1},
		{"scaled", []float64{1, 2, 3}, []float64{2, 4, 6}, 1},
		{"orthogonal", []float64{1, 0}, []float64{0, 1}, 0},
		{"opposite", []float64{1, 0}, []float64{-1, 0}, -1},
		{"zero vector", []float64{0, 0, 0}, []float64{1, 2, 3}, 0},
		{"both zero", []float64{0, 0}, []float64{0, 0}, 0},
		{"length mismatch", []float64{1, 2}, []float64{1, 2, 3}, 0},
		{"empty", nil, nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CosineSimilarity(tt.a, tt.b)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("CosineSimilarity() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIndex_FindNearest(t *testing.T) {
	ctx := context.Background()
	idx := NewIndex(catalog.Demo())

	got, err := idx.FindNearest(ctx, []float64{0.1, 0.2, 0.9}, 3)
	if err != nil {
		t.Fatalf("FindNearest() error = %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	if got[0].ID != "1" {
		t.Errorf("best match = %q, want 1 (exact vector)", got[0].ID)
	}

	prev := math.Inf(1)
	for _, tk := range got {
		s := CosineSimilarity([]float64{0.1, 0.2, 0.9}, tk.Embedding)
		if s > prev+1e-12 {
			t.Errorf("results not sorted: %v after %v", s, prev)
		}
		prev = s
	}
}

func TestIndex_TiesKeepCatalogOrder(t *testing.T) {
	// uLK2r3sG4lE and SZpiiixlHWY share an embedding; catalog order wins.
	idx := NewIndex(catalog.Demo())

	got, err := idx.FindNearest(context.Background(), []float64{0.3, 0.6, 0.5}, 2)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"uLK2r3sG4lE", "SZpiiixlHWY"}
	if ids := []string{got[0].ID, got[1].ID}; !reflect.DeepEqual(ids, want) {
		t.Errorf("ids = %v, want %v", ids, want)
	}
}

func TestIndex_Limits(t *testing.T) {
	ctx := context.Background()
	demo := catalog.Demo()
	idx := NewIndex(demo)
	q := []float64{1, 1, 1}

	tests := []struct {
		limit int
		want  int
	}{
		{0, 0},
		{-1, 0},
		{1, 1},
		{demo.Len(), demo.Len()},
		{demo.Len() + 50, demo.Len()},
	}
	for _, tt := range tests {
		got, err := idx.FindNearest(ctx, q, tt.limit)
		if err != nil {
			t.Fatalf("FindNearest(%d) error = %v", tt.limit, err)
		}
		if got == nil || len(got) != tt.want {
			t.Errorf("FindNearest(%d) len = %d, want %d", tt.limit, len(got), tt.want)
		}
	}

	empty := NewIndex(catalog.MustNew(nil))
	got, err := empty.FindNearest(ctx, q, 5)
	if err != nil || len(got) != 0 {
		t.Errorf("empty catalog: got %v, %v", got, err)
	}
}

func TestIndex_ReturnsCopies(t *testing.T) {
	demo := catalog.Demo()
	idx := NewIndex(demo)

	got, _ := idx.FindNearest(context.Background(), []float64{0.1, 0.2, 0.9}, 1)
	got[0].Embedding[0] = 42

	again, _ := idx.FindNearest(context.Background(), []float64{0.1, 0.2, 0.9}, 1)
	if again[0].Embedding[0] == 42 {
		t.Error("caller mutation leaked into the catalog")
	}
}

func TestLookup_GetByID(t *testing.T) {
	lookup := NewLookup(catalog.Demo())

	tk, ok, err := lookup.GetByID(context.Background(), "XoiOOiuH8iI")
	if err != nil || !ok {
		t.Fatalf("GetByID() = %v, %v", ok, err)
	}
	if tk.Title != "Tyla - Water" || tk.Tempo != 102 {
		t.Errorf("unexpected track %+v", tk)
	}

	_, ok, err = lookup.GetByID(context.Background(), "nope")
	if err != nil || ok {
		t.Errorf("missing id: ok=%v err=%v", ok, err)
	}
}

// TestEngine_DemoCatalog runs the engine end to end on the reference backend.
func TestEngine_DemoCatalog(t *testing.T) {
	demo := catalog.Demo()
	e, err := recommend.NewEngine(NewIndex(demo), NewLookup(demo), nil, zerolog.New(io.Discard))
	if err != nil {
		t.Fatal(err)
	}

	res, err := e.Recommend(context.Background(), recommend.NewRequest("uLK2r3sG4lE", []string{"XoiOOiuH8iI"}))
	if err != nil {
		t.Fatal(err)
	}
	if res.Status != recommend.StatusOK {
		t.Fatalf("Status = %v", res.Status)
	}
	if len(res.Tracks) != 5 {
		t.Fatalf("len = %d, want 5", len(res.Tracks))
	}
	if res.Tracks[0].ID != "SZpiiixlHWY" {
		t.Errorf("first = %q, want SZpiiixlHWY (same vector, 5 bpm apart)", res.Tracks[0].ID)
	}
	for _, s := range res.Tracks {
		if s.ID == "uLK2r3sG4lE" || s.ID == "XoiOOiuH8iI" {
			t.Errorf("result contains seed or excluded id %q", s.ID)
		}
	}
}

// TestEngine_VibeScenario is the 95/115/140 scenario over identical embeddings.
func TestEngine_VibeScenario(t *testing.T) {
	emb := []float64{0.5, 0.5, 0.5}
	c := catalog.MustNew([]catalog.Track{
		{ID: "seed", Title: "Seed", Tempo: 100, Embedding: emb},
		{ID: "t140", Title: "Fast", Tempo: 140, Embedding: emb},
		{ID: "t115", Title: "Mid", Tempo: 115, Embedding: emb},
		{ID: "t95", Title: "Close", Tempo: 95, Embedding: emb},
	})
	e, err := recommend.NewEngine(NewIndex(c), NewLookup(c), nil, zerolog.New(io.Discard))
	if err != nil {
		t.Fatal(err)
	}

	res, err := e.Recommend(context.Background(), recommend.Request{SeedID: "seed", Limit: 3})
	if err != nil {
		t.Fatal(err)
	}
	var got []float64
	for _, s := range res.Tracks {
		got = append(got, s.Tempo)
	}
	if want := []float64{95, 115, 140}; !reflect.DeepEqual(got, want) {
		t.Errorf("tempos = %v, want %v", got, want)
	}
}

// Endless - Continuous Playback Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/endless

package catalog

import (
	"errors"
	"math"
	"testing"
)

func track(id string, tempo float64, emb ...float64) Track {
	return Track{ID: id, Title: "Title " + id, Artist: "Artist " + id, Tempo: tempo, Embedding: emb}
}

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		tracks  []Track
		wantErr bool
		wantLen int
		wantDim int
	}{
		{name: "empty", tracks: nil, wantLen: 0, wantDim: 0},
		{
			name:    "valid",
			tracks:  []Track{track("a", 100, 1, 0), track("b", 90, 0, 1)},
			wantLen: 2,
			wantDim: 2,
		},
		{
			name:    "duplicate id",
			tracks:  []Track{track("a", 100, 1), track("a", 90, 1)},
			wantErr: true,
		},
		{
			name:    "mismatched dimensions",
			tracks:  []Track{track("a", 100, 1, 0), track("b", 90, 1)},
			wantErr: true,
		},
		{
			name:    "empty id",
			tracks:  []Track{track("", 100, 1)},
			wantErr: true,
		},
		{
			name:    "zero tempo",
			tracks:  []Track{track("a", 0, 1)},
			wantErr: true,
		},
		{
			name:    "nan embedding",
			tracks:  []Track{track("a", 100, math.NaN())},
			wantErr: true,
		},
		{
			name:    "missing embedding",
			tracks:  []Track{{ID: "a", Tempo: 100}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := New(tt.tracks)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				if !errors.Is(err, ErrInvalidCatalog) {
					t.Errorf("error %v should wrap ErrInvalidCatalog", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if c.Len() != tt.wantLen {
				t.Errorf("Len() = %d, want %d", c.Len(), tt.wantLen)
			}
			if c.Dimension() != tt.wantDim {
				t.Errorf("Dimension() = %d, want %d", c.Dimension(), tt.wantDim)
			}
		})
	}
}

func TestNew_CopiesInput(t *testing.T) {
	input := []Track{track("a", 100, 1, 2)}
	c, err := New(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	input[0].Embedding[0] = 99
	input[0].Title = "changed"

	got, _ := c.Get("a")
	if got.Embedding[0] != 1 {
		t.Errorf("embedding leaked from caller: %v", got.Embedding)
	}
	if got.Title != "Title a" {
		t.Errorf("title leaked from caller: %q", got.Title)
	}
}

func TestCatalog_Accessors(t *testing.T) {
	c := MustNew([]Track{track("a", 100, 1), track("b", 90, 2), track("c", 80, 3)})

	if got := c.At(1).ID; got != "b" {
		t.Errorf("At(1) = %q, want b", got)
	}

	if _, ok := c.Get("missing"); ok {
		t.Error("Get(missing) should report absence")
	}
	if got, ok := c.Get("c"); !ok || got.Tempo != 80 {
		t.Errorf("Get(c) = %+v, %v", got, ok)
	}

	tracks := c.Tracks()
	tracks[0] = Track{ID: "zzz"}
	if c.At(0).ID != "a" {
		t.Error("Tracks() should return a copy of the slice")
	}

	sums := c.Summaries()
	want := []string{"a", "b", "c"}
	for i, s := range sums {
		if s.ID != want[i] {
			t.Errorf("Summaries()[%d].ID = %q, want %q", i, s.ID, want[i])
		}
	}
}

func TestTrack_SummaryAndClone(t *testing.T) {
	tr := track("a", 101.5, 0.5, 0.5)

	s := tr.Summary()
	if s != (Summary{ID: "a", Title: "Title a", Artist: "Artist a", Tempo: 101.5}) {
		t.Errorf("Summary() = %+v", s)
	}

	cl := tr.Clone()
	cl.Embedding[0] = 7
	if tr.Embedding[0] != 0.5 {
		t.Error("Clone() should not share embedding storage")
	}
}

func TestMustNew_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustNew should panic on invalid input")
		}
	}()
	MustNew([]Track{track("a", -1, 1)})
}

func TestDemo(t *testing.T) {
	c := Demo()

	if c.Len() != 10 {
		t.Fatalf("Len() = %d, want 10", c.Len())
	}
	if c.Dimension() != 3 {
		t.Errorf("Dimension() = %d, want 3", c.Dimension())
	}
	water, ok := c.Get("XoiOOiuH8iI")
	if !ok {
		t.Fatal("demo catalog should contain XoiOOiuH8iI")
	}
	if water.Tempo != 102 || water.Artist != "Tyla" {
		t.Errorf("unexpected demo track: %+v", water)
	}

	// Independent snapshots.
	if Demo() == c {
		t.Error("Demo() should build a fresh catalog each call")
	}
}

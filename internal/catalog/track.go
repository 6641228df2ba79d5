// Endless - Continuous Playback Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/endless

package catalog

// Track is a single catalog entry.
type Track struct {
	// ID uniquely identifies the track within a catalog snapshot.
	ID string `json:"id" validate:"required,max=128"`

	// Title is the display title.
	Title string `json:"title" validate:"max=512"`

	// Artist is the display artist name.
	Artist string `json:"artist" validate:"max=512"`

	// Tempo is the track tempo in beats per minute.
	Tempo float64 `json:"bpm" validate:"finite,gt=0"`

	// Embedding describes the track for similarity search.
	// All tracks in a catalog share the same dimensionality.
	Embedding []float64 `json:"embedding" validate:"required,min=1,dive,finite"`
}

// Summary is the public projection of a Track. It leaves out the embedding.
type Summary struct {
	ID     string  `json:"id"`
	Title  string  `json:"title"`
	Artist string  `json:"artist"`
	Tempo  float64 `json:"bpm"`
}

// Summary returns the public fields of t.
//
//nolint:gocritic // Track is an immutable value type
func (t Track) Summary() Summary {
	return Summary{
		ID:     t.ID,
		Title:  t.Title,
		Artist: t.Artist,
		Tempo:  t.Tempo,
	}
}

// Clone returns a copy of t with its own embedding storage.
//
//nolint:gocritic // Track is an immutable value type
func (t Track) Clone() Track {
	if t.Embedding != nil {
		emb := make([]float64, len(t.Embedding))
		copy(emb, t.Embedding)
		t.Embedding = emb
	}
	return t
}

// Summaries maps tracks to their public summaries, preserving order.
func Summaries(tracks []Track) []Summary {
	out := make([]Summary, len(tracks))
	for i := range tracks {
		out[i] = tracks[i].Summary()
	}
	return out
}

// Endless - Continuous Playback Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/endless

package catalog

// demoTracks is the fixed demo catalog: three-dimensional embeddings, mixed tempos.
func demoTracks() []Track {
	return []Track{
		{ID: "1", Title: "Chill Lo-Fi Beat", Artist: "Lofi Girl", Tempo: 85, Embedding: []float64{0.1, 0.2, 0.9}},
		{ID: "2", Title: "Fast Techno", Artist: "Rave Master", Tempo: 140, Embedding: []float64{0.9, 0.8, 0.1}},
		{ID: "3", Title: "Smooth Jazz", Artist: "Jazz Cat", Tempo: 90, Embedding: []float64{0.15, 0.25, 0.85}},
		{ID: "4", Title: "Heavy Metal", Artist: "Metal head", Tempo: 130, Embedding: []float64{0.8, 0.9, 0.2}},
		{ID: "5", Title: "Acoustic Pop", Artist: "Indie Boy", Tempo: 88, Embedding: []float64{0.2, 0.3, 0.8}},
		{ID: "6", Title: "Deep House", Artist: "Club DJ", Tempo: 120, Embedding: []float64{0.7, 0.6, 0.4}},
		{ID: "7", Title: "Piano Ballad", Artist: "Sad Artist", Tempo: 80, Embedding: []float64{0.1, 0.1, 0.92}},
		// Mid-tempo pop/RnB cluster
		{ID: "uLK2r3sG4lE", Title: "Tyla - PUSH 2 START", Artist: "Tyla", Tempo: 100, Embedding: []float64{0.3, 0.6, 0.5}},
		{ID: "XoiOOiuH8iI", Title: "Tyla - Water", Artist: "Tyla", Tempo: 102, Embedding: []float64{0.3, 0.65, 0.55}},
		{ID: "SZpiiixlHWY", Title: "Tyla - IS IT", Artist: "Tyla", Tempo: 105, Embedding: []float64{0.3, 0.6, 0.5}},
	}
}

// Demo builds the demo catalog. Each call returns a fresh snapshot.
func Demo() *Catalog {
	return MustNew(demoTracks())
}

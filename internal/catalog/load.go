// Endless - Continuous Playback Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/endless

package catalog

import (
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-json"
)

// fileFormat is the on-disk catalog document.
type fileFormat struct {
	Tracks []Track `json:"tracks"`
}

// Decode reads a JSON catalog document of the form {"tracks": [...]}.
func Decode(r io.Reader) (*Catalog, error) {
	var doc fileFormat
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	return New(doc.Tracks)
}

// LoadFile reads a JSON catalog document from path.
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path) //nolint:gosec // path comes from operator configuration
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()

	return Decode(f)
}

// Encode writes c as a JSON catalog document that Decode accepts.
func Encode(w io.Writer, c *Catalog) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(fileFormat{Tracks: c.tracks}); err != nil {
		return fmt.Errorf("encode catalog: %w", err)
	}
	return nil
}

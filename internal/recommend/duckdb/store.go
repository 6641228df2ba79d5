// Endless - Continuous Playback Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/endless

package duckdb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"

	_ "github.com/duckdb/duckdb-go/v2"

	"github.com/tomtom215/endless/internal/catalog"
	"github.com/tomtom215/endless/internal/logging"
	"github.com/tomtom215/endless/internal/metrics"
)

// BackendName labels this backend in metrics.
const BackendName = "duckdb"

// dsnOptions disables extension auto-install so Open never reaches the network.
const dsnOptions = "autoinstall_known_extensions=false&autoload_known_extensions=false"

const createTable = `CREATE OR REPLACE TABLE tracks (
	ordinal   INTEGER NOT NULL,
	id        VARCHAR PRIMARY KEY,
	title     VARCHAR NOT NULL,
	artist    VARCHAR NOT NULL,
	bpm       DOUBLE NOT NULL,
	embedding DOUBLE[] NOT NULL
)`

const selectColumns = `SELECT id, title, artist, bpm, embedding FROM tracks`

// Store serves both recommendation ports from a DuckDB table.
type Store struct {
	conn *sql.DB
	dim  int
	size int
}

// Open creates a DuckDB database at dsn (":memory:" when empty) and loads c into it.
func Open(ctx context.Context, dsn string, c *catalog.Catalog) (*Store, error) {
	if dsn == "" {
		dsn = ":memory:"
	}
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}

	conn, err := sql.Open("duckdb", dsn+sep+dsnOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to open duckdb: %w", err)
	}

	s := &Store{conn: conn, dim: c.Dimension(), size: c.Len()}
	if err := s.load(ctx, c); err != nil {
		closeQuietly(conn)
		return nil, err
	}

	logging.Debug().
		Str("dsn", dsn).
		Int("tracks", s.size).
		Int("dimension", s.dim).
		Msg("duckdb catalog loaded")

	return s, nil
}

// load creates the tracks table and inserts every catalog track in one transaction.
func (s *Store) load(ctx context.Context, c *catalog.Catalog) error {
	tx, err := s.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin load transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, createTable); err != nil {
		return fmt.Errorf("failed to create tracks table: %w", err)
	}

	for i := 0; i < c.Len(); i++ {
		t := c.At(i)
		// The embedding is a validated finite float list, so inlining it as a literal is safe.
		query := `INSERT INTO tracks VALUES (?, ?, ?, ?, ?, ` + listLiteral(t.Embedding) + `)`
		if _, err := tx.ExecContext(ctx, query, i, t.ID, t.Title, t.Artist, t.Tempo); err != nil {
			return fmt.Errorf("failed to insert track %q: %w", t.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit load transaction: %w", err)
	}
	return nil
}

// Close releases the database.
func (s *Store) Close() error {
	return s.conn.Close()
}

// FindNearest returns the limit tracks most similar to vector, best first,
// with ties in catalog order.
func (s *Store) FindNearest(ctx context.Context, vector []float64, limit int) (tracks []catalog.Track, err error) {
	if limit <= 0 || s.size == 0 {
		return []catalog.Track{}, nil
	}
	if limit > s.size {
		limit = s.size
	}

	start := time.Now()
	defer func() { metrics.RecordBackendCall(BackendName, "find_nearest", time.Since(start), err) }()

	query := selectColumns + ` ORDER BY ordinal LIMIT ?`
	if norm := dot(vector, vector); len(vector) == s.dim && norm > 0 {
		// Similarity is zero for zero-norm rows, matching memory.CosineSimilarity.
		q := listLiteral(vector)
		query = selectColumns + `
			ORDER BY
				CASE WHEN list_dot_product(embedding, embedding) = 0 THEN 0
				     ELSE list_dot_product(embedding, ` + q + `)
				          / (sqrt(list_dot_product(embedding, embedding)) * ` + formatFloat(math.Sqrt(norm)) + `)
				END DESC,
				ordinal ASC
			LIMIT ?`
	}

	rows, err := s.conn.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("find nearest: %w", err)
	}
	defer closeQuietly(rows)

	tracks = make([]catalog.Track, 0, limit)
	for rows.Next() {
		t, err := scanTrack(rows)
		if err != nil {
			return nil, err
		}
		tracks = append(tracks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("find nearest: %w", err)
	}
	return tracks, nil
}

// GetByID resolves a track by primary key.
func (s *Store) GetByID(ctx context.Context, id string) (t catalog.Track, found bool, err error) {
	start := time.Now()
	defer func() { metrics.RecordBackendCall(BackendName, "get_by_id", time.Since(start), err) }()

	row := s.conn.QueryRowContext(ctx, selectColumns+` WHERE id = ?`, id)
	t, err = scanTrack(row)
	if errors.Is(err, sql.ErrNoRows) {
		return catalog.Track{}, false, nil
	}
	if err != nil {
		return catalog.Track{}, false, err
	}
	return t, true, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanTrack(r scanner) (catalog.Track, error) {
	var (
		t   catalog.Track
		raw any
	)
	if err := r.Scan(&t.ID, &t.Title, &t.Artist, &t.Tempo, &raw); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return catalog.Track{}, err
		}
		return catalog.Track{}, fmt.Errorf("scan track: %w", err)
	}
	emb, err := toFloats(raw)
	if err != nil {
		return catalog.Track{}, fmt.Errorf("scan track %q: %w", t.ID, err)
	}
	t.Embedding = emb
	return t, nil
}

// toFloats converts a scanned DOUBLE[] value to []float64.
func toFloats(raw any) ([]float64, error) {
	list, ok := raw.([]any)
	if !ok {
		return nil, fmt.Errorf("embedding has type %T, want list", raw)
	}
	out := make([]float64, len(list))
	for i, v := range list {
		switch f := v.(type) {
		case float64:
			out[i] = f
		case float32:
			out[i] = float64(f)
		default:
			return nil, fmt.Errorf("embedding element %d has type %T", i, v)
		}
	}
	return out, nil
}

// listLiteral renders v as a DuckDB DOUBLE[] literal.
func listLiteral(v []float64) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, f := range v {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(formatFloat(f))
	}
	b.WriteString("]::DOUBLE[]")
	return b.String()
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

func dot(a, b []float64) float64 {
	var sum float64
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}

func closeQuietly(closer io.Closer) {
	if closer != nil {
		_ = closer.Close()
	}
}

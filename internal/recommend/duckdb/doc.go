// Endless - Continuous Playback Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/endless

/*
Package duckdb implements recommend.SimilarityIndex and recommend.MetadataLookup
on top of an in-process DuckDB database.

Open loads a catalog.Catalog into a single table:

	tracks(ordinal INTEGER, id VARCHAR PRIMARY KEY, title VARCHAR,
	       artist VARCHAR, bpm DOUBLE, embedding DOUBLE[])

FindNearest computes cosine similarity in SQL with list_dot_product and orders
by similarity, then ordinal, so results match the memory backend exactly,
including tie order. GetByID is a primary key lookup.

The table is rebuilt from the catalog on every Open; the database is a query
engine here, not a store of record. An empty DSN opens ":memory:".

# Dependencies

  - github.com/duckdb/duckdb-go/v2: CGO DuckDB driver for database/sql
*/
package duckdb

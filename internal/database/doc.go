// Wanderlust - Travel Destination Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wanderlust

/*
Package database ingests the source CSV files through an embedded, in-memory
DuckDB instance and publishes them as immutable dataset snapshots.

DuckDB's read_csv table function handles quoting, encodings and ragged rows;
every column is read as VARCHAR so value classification stays in one place
(dataset.ParseCell). Empty cells arrive as SQL NULL and become Missing.

# Loading

LoadSnapshot reads the trip and country tables concurrently, cleans them and
merges them into a dataset.Snapshot:

	db, err := database.New(&cfg.Data)
	snap, err := db.LoadSnapshot(ctx, cfg.Data.TripsPath, cfg.Data.CountriesPath)

# Store

Store holds the current snapshot behind an atomic pointer. Reload builds a
new snapshot and swaps it in only on success, so readers always see a
complete, consistent pair of tables:

	store := database.NewStore(db, cfg.Data.TripsPath, cfg.Data.CountriesPath)
	if _, err := store.Reload(ctx); err != nil { ... }
	snap, err := store.Snapshot()
*/
package database

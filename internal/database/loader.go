// Wanderlust - Travel Destination Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wanderlust

package database

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/tomtom215/wanderlust/internal/dataset"
	"github.com/tomtom215/wanderlust/internal/logging"
	"github.com/tomtom215/wanderlust/internal/metrics"
)

// LoadSnapshot reads, cleans and merges both source tables. The two files are
// read concurrently; the first failure cancels the other read.
func (db *DB) LoadSnapshot(ctx context.Context, tripsPath, countriesPath string) (*dataset.Snapshot, error) {
	var (
		trips     []dataset.Trip
		countries []dataset.Country
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		trips, err = loadTable(gctx, db, "trips", tripsPath, dataset.BuildTrips)
		return err
	})
	g.Go(func() error {
		var err error
		countries, err = loadTable(gctx, db, "countries", countriesPath, dataset.BuildCountries)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	snap := dataset.NewSnapshot(trips, countries, time.Now().UTC())
	metrics.RecordSnapshot(len(snap.Trips), len(snap.Countries), len(snap.Merged), snap.LoadedAt)

	logging.Info().
		Int("trips", len(snap.Trips)).
		Int("countries", len(snap.Countries)).
		Int("merged", len(snap.Merged)).
		Msg("Dataset snapshot loaded")

	return snap, nil
}

// loadTable reads one CSV and converts it with build, recording load metrics.
func loadTable[T any](ctx context.Context, db *DB, table, path string, build func(*dataset.RawTable) ([]T, error)) ([]T, error) {
	start := time.Now()

	raw, err := db.ReadCSV(ctx, path)
	if err != nil {
		metrics.RecordDatasetLoad(table, 0, time.Since(start), err)
		return nil, fmt.Errorf("load %s: %w", table, err)
	}

	out, err := build(raw)
	if err != nil {
		metrics.RecordDatasetLoad(table, 0, time.Since(start), err)
		return nil, fmt.Errorf("clean %s: %w", table, err)
	}

	metrics.RecordDatasetLoad(table, len(out), time.Since(start), nil)
	logging.Debug().
		Str("table", table).
		Str("path", path).
		Int("raw_rows", len(raw.Rows)).
		Int("rows", len(out)).
		Dur("duration", time.Since(start)).
		Msg("Table loaded")

	return out, nil
}

// Wanderlust - Travel Destination Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wanderlust

// Package query builds the DuckDB statements used by the database package.
//
// DuckDB table functions such as read_csv take their file argument as a
// literal rather than a bound parameter, so statements are assembled here
// with every literal and identifier escaped in one place.
//
//	stmt := query.ReadCSV("/data/trips.csv").
//	    Option("header", true).
//	    Option("all_varchar", true).
//	    Build()
//	// SELECT * FROM read_csv('/data/trips.csv', header = true, all_varchar = true)
package query

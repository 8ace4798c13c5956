// Wanderlust - Travel Destination Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wanderlust

// Package dataset defines the in-memory base tables of Wanderlust: trip records,
// country reference records and the trip/country merge used by the planner.
//
// # Cell Values
//
// CSV cells arrive as text. Each cell is parsed exactly once into a Value, a
// closed sum type with four variants:
//
//	Missing  empty cell or an explicit NaN
//	Number   finite float64
//	Bool     the literals true/false (any case)
//	Text     anything else, kept verbatim
//
// Consumers never inspect raw strings. They call one conversion per target use:
// Value.Float for numeric columns, Value.Exempt for the visa flag, Value.Label for
// advisory labels and Value.IsBlank for "best available data" picks.
//
// # Immutability
//
// A Snapshot is built once by the loader and never mutated afterwards. Every
// planner stage reads from it and returns newly allocated slices, so concurrent
// requests share no mutable state.
package dataset

// Wanderlust - Travel Destination Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wanderlust

// Package recommend implements the destination planner: the filtering,
// aggregation and scoring pipeline that turns trip records and country
// reference data into a ranked country list and a side-by-side comparison.
//
// # Pipeline
//
// A ranking query flows through pure stage functions, each returning a new
// slice and never mutating its input:
//
//	SanitizeBounds          swap an inverted cost range
//	NormalizeTrips          coerce cost and duration, derive trip/daily cost
//	FilterByCostAndTypes    cost range and accommodation type membership
//	PickCountryLevel        first usable reference value per country
//	FilterByAlertAndVisa    advisory tier threshold and visa exemption
//	AggregateTrips / Join   per-destination trip statistics, inner join
//	AdjustCostsWithCPI      rescale median daily cost by relative CPI
//	ComputeScores           min-max normalized safety and inverted cost
//	SortRanked              score desc, safety desc, adjusted cost asc
//
// The comparison query (BuildComparison) reads the merged base table
// directly rather than reusing scorer output, so its figures are raw means and
// first-seen reference values.
//
// # Undefined Values
//
// Scores and normalized metrics are dataset.OptFloat. A country whose metrics
// are all undefined gets an absent score, which sorts after every defined
// score instead of being ranked as zero.
//
// # Usage
//
//	engine, err := recommend.NewEngine(recommend.DefaultConfig(), store, logger)
//	result, err := engine.Rank(ctx, recommend.RankRequest{
//	    CostMin:      ptr(0.0),
//	    CostMax:      ptr(500.0),
//	    MaxAlert:     ptr("黃色"),
//	    WeightSafety: ptr(10.0),
//	})
//	cmp, err := engine.Compare(ctx, recommend.CompareRequest{Countries: result.CompareSet})
//
// # Thread Safety
//
// The Engine is safe for concurrent use. Base tables come from an immutable
// dataset.Snapshot, and every request derives its own intermediate slices.
package recommend

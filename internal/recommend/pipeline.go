// Wanderlust - Travel Destination Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wanderlust

package recommend

import "github.com/tomtom215/wanderlust/internal/dataset"

// StageCounts records how many rows survived each pipeline stage.
type StageCounts struct {
	MatchedTrips     int
	MatchedCountries int
	CountryLevel     int
	AlertFiltered    int
	Ranked           int
}

// Plan runs the full ranking pipeline over a snapshot. It never mutates the
// snapshot, so any number of goroutines may plan against the same one.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func Plan(snap *dataset.Snapshot, req RankRequest, scale AlertScale, topN int) (RankResult, StageCounts) {
	var counts StageCounts

	lo, hi := SanitizeBounds(req.CostMin, req.CostMax)
	trips := FilterByCostAndTypes(NormalizeTrips(snap.Trips), lo, hi, req.AccommodationTypes)
	counts.MatchedTrips = len(trips)
	if len(trips) == 0 {
		return RankResult{Status: StatusNoTrips}, counts
	}

	candidates := MatchedCountries(trips)
	counts.MatchedCountries = len(candidates)

	levels := PickCountryLevel(snap.Merged, candidates)
	counts.CountryLevel = len(levels)

	levels = FilterByAlertAndVisa(levels, scale, req.MaxAlert, req.VisaOnly)
	counts.AlertFiltered = len(levels)
	if len(levels) == 0 {
		return RankResult{Status: StatusFilteredOut}, counts
	}

	rows := JoinTripStats(levels, AggregateTrips(trips))
	rows = AdjustCostsWithCPI(rows)
	rows = ComputeScores(rows, req.WeightSafety, req.WeightCost)
	rows = SortRanked(rows)
	counts.Ranked = len(rows)
	if len(rows) == 0 {
		return RankResult{Status: StatusFilteredOut}, counts
	}

	return RankResult{
		Status:     StatusOK,
		Rows:       rows,
		CompareSet: TopCountries(rows, topN),
	}, counts
}

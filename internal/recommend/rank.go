// Wanderlust - Travel Destination Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wanderlust

package recommend

import (
	"slices"

	"github.com/tomtom215/wanderlust/internal/dataset"
)

// compareRanked orders rows by score descending, safety index descending and
// adjusted daily cost ascending. Absent values sort last on every key, so a
// row without a score follows every scored row.
func compareRanked(a, b CountryStat) int {
	if c := dataset.CompareDesc(a.Score, b.Score); c != 0 {
		return c
	}
	if c := dataset.CompareDesc(a.SafetyIndex, b.SafetyIndex); c != 0 {
		return c
	}
	return dataset.CompareAsc(a.AdjDailyAccCost, b.AdjDailyAccCost)
}

// SortRanked returns a stably sorted copy of rows.
func SortRanked(rows []CountryStat) []CountryStat {
	out := slices.Clone(rows)
	slices.SortStableFunc(out, compareRanked)
	return out
}

// TopCountries returns the names of the first n rows.
func TopCountries(rows []CountryStat, n int) []string {
	n = max(0, min(n, len(rows)))
	names := make([]string, 0, n)
	for _, r := range rows[:n] {
		names = append(names, r.Country)
	}
	return names
}

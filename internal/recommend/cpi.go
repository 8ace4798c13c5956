// Wanderlust - Travel Destination Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wanderlust

package recommend

import "github.com/tomtom215/wanderlust/internal/dataset"

// AdjustCostsWithCPI sets AdjDailyAccCost to the median daily cost scaled by
// the row's CPI relative to the median CPI of all rows. Rows without a cost
// or CPI, or a non-positive median CPI, keep the unadjusted cost.
func AdjustCostsWithCPI(rows []CountryStat) []CountryStat {
	cpis := make([]float64, 0, len(rows))
	for _, r := range rows {
		if v, ok := r.CPI.Get(); ok {
			cpis = append(cpis, v)
		}
	}
	cpiMedian, hasMedian := median(cpis).Get()

	out := make([]CountryStat, len(rows))
	for i, r := range rows {
		out[i] = r
		out[i].AdjDailyAccCost = r.MedianDailyAccCost

		base, okBase := r.MedianDailyAccCost.Get()
		cpi, okCPI := r.CPI.Get()
		if okBase && okCPI && hasMedian && cpiMedian > 0 {
			out[i].AdjDailyAccCost = dataset.Some(base * (cpi / cpiMedian))
		}
	}
	return out
}

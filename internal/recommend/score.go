// Wanderlust - Travel Destination Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wanderlust

package recommend

import "github.com/tomtom215/wanderlust/internal/dataset"

// MinMax rescales values to [0, 1] over their own range. Absent inputs stay
// absent. A constant series maps to 0.5 everywhere; a series with no present
// value maps to absent everywhere.
func MinMax(values []dataset.OptFloat) []dataset.OptFloat {
	out := make([]dataset.OptFloat, len(values))

	var lo, hi float64
	seen := false
	for _, v := range values {
		x, ok := v.Get()
		if !ok {
			continue
		}
		if !seen || x < lo {
			lo = x
		}
		if !seen || x > hi {
			hi = x
		}
		seen = true
	}
	if !seen {
		return out
	}

	for i, v := range values {
		x, ok := v.Get()
		switch {
		case hi == lo:
			// Constant series maps to 0.5, absent inputs included.
			out[i] = dataset.Some(0.5)
		case ok:
			out[i] = dataset.Some((x - lo) / (hi - lo))
		}
	}
	return out
}

// NormalizeWeights scales the two weights to sum to 1. Nil weights count as
// zero, and a zero total yields an even split.
func NormalizeWeights(safety, cost *float64) (float64, float64) {
	ws, wc := 0.0, 0.0
	if safety != nil {
		ws = *safety
	}
	if cost != nil {
		wc = *cost
	}
	sum := ws + wc
	if sum == 0 {
		return 0.5, 0.5
	}
	return ws / sum, wc / sum
}

// ComputeScores scores each row from 0 to 100. Safety is min-max normalized;
// adjusted cost is min-max normalized and inverted so cheaper scores higher.
// Each row uses only the metrics it has, with those weights renormalized, and
// a row with no usable metric gets an absent score.
func ComputeScores(rows []CountryStat, weightSafety, weightCost *float64) []CountryStat {
	safety := make([]dataset.OptFloat, len(rows))
	cost := make([]dataset.OptFloat, len(rows))
	for i, r := range rows {
		safety[i] = r.SafetyIndex
		cost[i] = r.AdjDailyAccCost
	}
	safety = MinMax(safety)
	cost = MinMax(cost)

	ws, wc := NormalizeWeights(weightSafety, weightCost)

	out := make([]CountryStat, len(rows))
	for i, r := range rows {
		out[i] = r

		var sum, wsum float64
		if s, ok := safety[i].Get(); ok {
			sum += ws * s
			wsum += ws
		}
		if c, ok := cost[i].Get(); ok {
			sum += wc * (1 - c)
			wsum += wc
		}
		if wsum == 0 {
			out[i].Score = dataset.None()
			continue
		}
		out[i].Score = dataset.Some(100 * sum / wsum)
	}
	return out
}

// Wanderlust - Travel Destination Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wanderlust

package recommend

import (
	"slices"

	"github.com/tomtom215/wanderlust/internal/dataset"
)

// AggregateTrips computes per-destination trip statistics.
func AggregateTrips(trips []NormalizedTrip) map[string]TripStats {
	daily := make(map[string][]float64)
	total := make(map[string][]float64)
	for _, t := range trips {
		daily[t.Destination] = append(daily[t.Destination], t.DailyCost)
		total[t.Destination] = append(total[t.Destination], t.TripCost)
	}

	out := make(map[string]TripStats, len(daily))
	for dest, d := range daily {
		out[dest] = TripStats{
			Trips:              len(d),
			MedianDailyAccCost: median(d),
			MeanDailyAccCost:   mean(d),
			MedianTripAccCost:  median(total[dest]),
			MeanTripAccCost:    mean(total[dest]),
		}
	}
	return out
}

// JoinTripStats inner-joins country rows with trip statistics, keeping the
// country order. Countries without qualifying trips are dropped. Reference
// figures are coerced to numbers here; unparseable values become absent.
func JoinTripStats(countries []CountryLevel, stats map[string]TripStats) []CountryStat {
	out := make([]CountryStat, 0, len(countries))
	for _, c := range countries {
		s, ok := stats[c.Country]
		if !ok {
			continue
		}
		out = append(out, CountryStat{
			Country:     c.Country,
			SafetyIndex: c.SafetyIndex.Opt(),
			CPI:         c.CPI.Opt(),
			PCE:         c.PCE.Opt(),
			TravelAlert: c.TravelAlert,
			VisaExempt:  c.VisaExempt,
			TripStats:   s,
		})
	}
	return out
}

func median(xs []float64) dataset.OptFloat {
	if len(xs) == 0 {
		return dataset.None()
	}
	s := slices.Clone(xs)
	slices.Sort(s)
	mid := len(s) / 2
	if len(s)%2 == 1 {
		return dataset.Some(s[mid])
	}
	return dataset.Some((s[mid-1] + s[mid]) / 2)
}

func mean(xs []float64) dataset.OptFloat {
	if len(xs) == 0 {
		return dataset.None()
	}
	var sum float64
	for _, x := range xs {
		sum += x
	}
	return dataset.Some(sum / float64(len(xs)))
}

// Wanderlust - Travel Destination Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wanderlust

package recommend

import (
	"slices"

	"github.com/tomtom215/wanderlust/internal/dataset"
)

// SanitizeBounds swaps min and max when both are set and inverted.
func SanitizeBounds(lo, hi *float64) (*float64, *float64) {
	if lo != nil && hi != nil && *lo > *hi {
		return hi, lo
	}
	return lo, hi
}

// NormalizeTrips coerces accommodation cost (unparseable becomes 0) and
// duration (unparseable becomes missing), drops trips without a positive
// duration, and derives trip and daily accommodation cost.
func NormalizeTrips(trips []dataset.Trip) []NormalizedTrip {
	out := make([]NormalizedTrip, 0, len(trips))
	for i := range trips {
		days, ok := trips[i].Duration.Float()
		if !ok || days <= 0 {
			continue
		}
		cost, ok := trips[i].AccommodationCost.Float()
		if !ok {
			cost = 0
		}
		out = append(out, NormalizedTrip{
			Trip:      trips[i],
			Cost:      cost,
			Days:      days,
			TripCost:  cost,
			DailyCost: cost / days,
		})
	}
	return out
}

// FilterByCostAndTypes keeps trips whose cost lies within the optional bounds
// and, when types is non-empty, whose accommodation type is listed.
func FilterByCostAndTypes(trips []NormalizedTrip, lo, hi *float64, types []string) []NormalizedTrip {
	var allowed map[string]struct{}
	if len(types) > 0 {
		allowed = make(map[string]struct{}, len(types))
		for _, t := range types {
			allowed[t] = struct{}{}
		}
	}

	out := make([]NormalizedTrip, 0, len(trips))
	for _, t := range trips {
		if lo != nil && t.Cost < *lo {
			continue
		}
		if hi != nil && t.Cost > *hi {
			continue
		}
		if allowed != nil {
			if _, ok := allowed[t.AccommodationType]; !ok {
				continue
			}
		}
		out = append(out, t)
	}
	return out
}

// MatchedCountries returns the sorted distinct destinations of trips.
func MatchedCountries(trips []NormalizedTrip) []string {
	seen := make(map[string]struct{})
	var names []string
	for _, t := range trips {
		if t.Destination == "" {
			continue
		}
		if _, ok := seen[t.Destination]; ok {
			continue
		}
		seen[t.Destination] = struct{}{}
		names = append(names, t.Destination)
	}
	slices.Sort(names)
	return names
}

// Wanderlust - Travel Destination Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wanderlust

package dataset

// Merge left-joins trips to countries on Destination = Country. A trip
// matching several country rows yields one merged row per match, in country
// row order; a trip matching none yields one row with an empty Country.
func Merge(trips []Trip, countries []Country) []MergedRow {
	byName := make(map[string][]Country, len(countries))
	for _, c := range countries {
		byName[c.Name] = append(byName[c.Name], c)
	}

	out := make([]MergedRow, 0, len(trips))
	for _, t := range trips {
		matches := byName[t.Destination]
		if len(matches) == 0 {
			out = append(out, MergedRow{Trip: t})
			continue
		}
		for _, c := range matches {
			out = append(out, MergedRow{Trip: t, Country: c})
		}
	}
	return out
}

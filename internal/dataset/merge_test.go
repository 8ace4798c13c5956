// Wanderlust - Travel Destination Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wanderlust

package dataset

import "testing"

func TestMerge_LeftJoin(t *testing.T) {
	t.Parallel()

	trips := []Trip{{Destination: "A"}, {Destination: "B"}, {Destination: "Z"}}
	countries := []Country{
		{Name: "A", CPI: Number(100)},
		{Name: "B", CPI: Missing()},
		{Name: "B", CPI: Number(120)},
	}

	merged := Merge(trips, countries)
	if len(merged) != 4 {
		t.Fatalf("len(merged) = %d, want 4", len(merged))
	}

	wantDest := []string{"A", "B", "B", "Z"}
	for i, r := range merged {
		if r.Destination != wantDest[i] {
			t.Errorf("merged[%d].Destination = %q, want %q", i, r.Destination, wantDest[i])
		}
	}
	if !merged[1].Country.CPI.IsMissing() {
		t.Error("first B match should carry the first country row")
	}
	if merged[3].Country.Name != "" {
		t.Errorf("unmatched trip Country = %+v, want zero", merged[3].Country)
	}
}

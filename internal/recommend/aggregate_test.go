// Wanderlust - Travel Destination Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wanderlust

package recommend

import (
	"slices"
	"testing"

	"github.com/tomtom215/wanderlust/internal/dataset"
)

func TestAggregateTrips(t *testing.T) {
	t.Parallel()

	trips := NormalizeTrips([]dataset.Trip{
		trip("Japan", 300, 3, ""), // daily 100
		trip("Japan", 100, 2, ""), // daily 50
		trip("Japan", 800, 4, ""), // daily 200
		trip("Peru", 120, 4, ""),  // daily 30
		trip("Peru", 60, 1, ""),   // daily 60
	})

	stats := AggregateTrips(trips)

	tests := []struct {
		dest                   string
		trips                  int
		medDaily, meanDaily    float64
		medTrip, meanTripTotal float64
	}{
		{"Japan", 3, 100, 350.0 / 3, 300, 400},
		{"Peru", 2, 45, 45, 90, 90},
	}
	for _, tt := range tests {
		s, ok := stats[tt.dest]
		if !ok {
			t.Fatalf("missing stats for %s", tt.dest)
		}
		if s.Trips != tt.trips {
			t.Errorf("%s trips = %d, want %d", tt.dest, s.Trips, tt.trips)
		}
		checks := []struct {
			name string
			got  dataset.OptFloat
			want float64
		}{
			{"median daily", s.MedianDailyAccCost, tt.medDaily},
			{"mean daily", s.MeanDailyAccCost, tt.meanDaily},
			{"median trip", s.MedianTripAccCost, tt.medTrip},
			{"mean trip", s.MeanTripAccCost, tt.meanTripTotal},
		}
		for _, c := range checks {
			if !optEqual(c.got, dataset.Some(c.want), 1e-9) {
				t.Errorf("%s %s = %v, want %v", tt.dest, c.name, c.got.Ptr(), c.want)
			}
		}
	}
}

func TestJoinTripStats(t *testing.T) {
	t.Parallel()

	countries := []CountryLevel{
		{Country: "Chile", SafetyIndex: dataset.Text("55"), CPI: dataset.Number(90), PCE: dataset.Text("high")},
		{Country: "Japan", SafetyIndex: dataset.Number(80), CPI: dataset.Number(100), PCE: dataset.Number(30)},
		{Country: "Peru", SafetyIndex: dataset.Number(40), CPI: dataset.Number(70), PCE: dataset.Number(10)},
	}
	stats := map[string]TripStats{
		"Peru":  {Trips: 2},
		"Chile": {Trips: 1},
	}

	got := JoinTripStats(countries, stats)

	if want := []string{"Chile", "Peru"}; !slices.Equal(names(got), want) {
		t.Fatalf("JoinTripStats() = %v, want %v", names(got), want)
	}
	if !optEqual(got[0].SafetyIndex, dataset.Some(55), 0) {
		t.Errorf("Chile safety = %v, want 55", got[0].SafetyIndex.Ptr())
	}
	if got[0].PCE.Valid() {
		t.Errorf("Chile PCE = %v, want absent", got[0].PCE.Ptr())
	}
	if got[1].Trips != 2 {
		t.Errorf("Peru trips = %d, want 2", got[1].Trips)
	}
}

func TestAdjustCostsWithCPI(t *testing.T) {
	t.Parallel()

	rows := []CountryStat{
		{Country: "A", CPI: dataset.Some(100), TripStats: TripStats{MedianDailyAccCost: dataset.Some(50)}},
		{Country: "B", CPI: dataset.Some(120), TripStats: TripStats{MedianDailyAccCost: dataset.Some(200)}},
		{Country: "C", TripStats: TripStats{MedianDailyAccCost: dataset.Some(30)}},
		{Country: "D", CPI: dataset.Some(80)},
	}

	got := AdjustCostsWithCPI(rows)

	// Median CPI of {100, 120, 80} is 100.
	want := []dataset.OptFloat{
		dataset.Some(50),
		dataset.Some(240),
		dataset.Some(30),
		dataset.None(),
	}
	for i := range got {
		if !optEqual(got[i].AdjDailyAccCost, want[i], 1e-9) {
			t.Errorf("%s adj = %v, want %v", got[i].Country, got[i].AdjDailyAccCost.Ptr(), want[i].Ptr())
		}
	}
	if rows[1].AdjDailyAccCost.Valid() {
		t.Error("input rows were modified")
	}
}

func TestAdjustCostsWithCPI_NonPositiveMedian(t *testing.T) {
	t.Parallel()

	rows := []CountryStat{
		{Country: "A", CPI: dataset.Some(0), TripStats: TripStats{MedianDailyAccCost: dataset.Some(50)}},
		{Country: "B", CPI: dataset.Some(0), TripStats: TripStats{MedianDailyAccCost: dataset.Some(70)}},
	}
	for _, r := range AdjustCostsWithCPI(rows) {
		if !optEqual(r.AdjDailyAccCost, r.MedianDailyAccCost, 0) {
			t.Errorf("%s adj = %v, want unadjusted %v", r.Country, r.AdjDailyAccCost.Ptr(), r.MedianDailyAccCost.Ptr())
		}
	}
}

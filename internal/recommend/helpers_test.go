// Wanderlust - Travel Destination Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wanderlust

package recommend

import (
	"time"

	"github.com/tomtom215/wanderlust/internal/dataset"
)

var testLoadedAt = time.Date(2026, time.January, 2, 3, 4, 5, 0, time.UTC)

func f64(v float64) *float64 { return &v }

func str(s string) *string { return &s }

func trip(dest string, cost, days float64, accType string) dataset.Trip {
	return dataset.Trip{
		Destination:        dest,
		AccommodationType:  accType,
		AccommodationCost:  dataset.Number(cost),
		TransportationCost: dataset.Number(cost / 2),
		Duration:           dataset.Number(days),
	}
}

func country(name string, safety, cpi float64, alert, visa string) dataset.Country {
	return dataset.Country{
		Name:        name,
		Continent:   "Asia",
		CPI:         dataset.Number(cpi),
		PCE:         dataset.Number(cpi * 10),
		SafetyIndex: dataset.Number(safety),
		TravelAlert: dataset.Text(alert),
		VisaExempt:  dataset.Text(visa),
	}
}

// e2eSnapshot is two destinations: A is safe, cheap and visa-exempt; B is
// less safe, pricier and requires a visa.
func e2eSnapshot() *dataset.Snapshot {
	return dataset.NewSnapshot(
		[]dataset.Trip{
			trip("A", 100, 2, "Hotel"),
			trip("B", 400, 2, "Hostel"),
		},
		[]dataset.Country{
			country("A", 80, 100, "灰色", "yes"),
			country("B", 40, 120, "黃色", "no"),
		},
		testLoadedAt,
	)
}

func names(rows []CountryStat) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.Country
	}
	return out
}

func optEqual(a, b dataset.OptFloat, tol float64) bool {
	x, okA := a.Get()
	y, okB := b.Get()
	if okA != okB {
		return false
	}
	if !okA {
		return true
	}
	d := x - y
	return d <= tol && d >= -tol
}

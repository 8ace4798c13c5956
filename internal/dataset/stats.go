// Wanderlust - Travel Destination Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wanderlust

package dataset

import (
	"math"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Overview holds the headline counts shown above the dashboard.
type Overview struct {
	Destinations  int      `json:"destinations"`
	Travelers     int      `json:"travelers"`
	Nationalities int      `json:"nationalities"`
	AvgDays       OptFloat `json:"avg_days"`
	AvgTotalCost  OptFloat `json:"avg_total_cost"`

	// StartMonths always lists January through December.
	StartMonths []Bucket `json:"start_months"`

	// AgeGroups lists the occupied five-year bins, youngest first.
	AgeGroups []Bucket `json:"age_groups"`
}

// Bucket is one bar of a categorical histogram.
type Bucket struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// ComputeOverview counts distinct destinations, traveler names and
// nationalities, averages trip duration to one decimal place, and tallies
// trips per start month and age group.
func ComputeOverview(trips []Trip) Overview {
	dests := make(map[string]struct{})
	names := make(map[string]struct{})
	nats := make(map[string]struct{})
	months := make(map[string]int)
	ages := make(map[string]int)
	var sum, costSum float64
	var n, costN int

	for _, t := range trips {
		if t.Destination != "" {
			dests[t.Destination] = struct{}{}
		}
		if t.TravelerName != "" {
			names[t.TravelerName] = struct{}{}
		}
		if t.TravelerNationality != "" {
			nats[t.TravelerNationality] = struct{}{}
		}
		if d, ok := t.Duration.Float(); ok {
			sum += d
			n++
		}
		if c, ok := t.TotalCost.Get(); ok {
			costSum += c
			costN++
		}
		if t.StartMonth != "" {
			months[t.StartMonth]++
		}
		if t.AgeGroup != "" {
			ages[t.AgeGroup]++
		}
	}

	ov := Overview{
		Destinations:  len(dests),
		Travelers:     len(names),
		Nationalities: len(nats),
		StartMonths:   make([]Bucket, 0, 12),
		AgeGroups:     make([]Bucket, 0, len(ages)),
	}
	if n > 0 {
		ov.AvgDays = Some(math.Round(sum/float64(n)*10) / 10)
	}
	if costN > 0 {
		ov.AvgTotalCost = Some(costSum / float64(costN))
	}
	for m := time.January; m <= time.December; m++ {
		ov.StartMonths = append(ov.StartMonths, Bucket{Label: m.String(), Count: months[m.String()]})
	}
	for label, count := range ages {
		ov.AgeGroups = append(ov.AgeGroups, Bucket{Label: label, Count: count})
	}
	sort.Slice(ov.AgeGroups, func(i, j int) bool {
		return binStart(ov.AgeGroups[i].Label) < binStart(ov.AgeGroups[j].Label)
	})
	return ov
}

// binStart parses the lower edge of an "a-b" age label.
func binStart(label string) int {
	lo, _, _ := strings.Cut(label, "-")
	n, err := strconv.Atoi(lo)
	if err != nil {
		return math.MaxInt
	}
	return n
}

// DashboardDefaults are the initial selections for the overview charts.
type DashboardDefaults struct {
	// Geo is the first continent present in the merged data, falling back
	// to the first destination. Nil when both are empty.
	Geo       *string `json:"geo"`
	PieField  string  `json:"pie_field"`
	MapMetric string  `json:"map_metric"`
	BoxMetric string  `json:"box_metric"`
}

// ComputeDashboardDefaults picks the default chart selections.
func ComputeDashboardDefaults(merged []MergedRow) DashboardDefaults {
	d := DashboardDefaults{
		PieField:  ColTravelerNationality,
		MapMetric: ColSafetyIndex,
		BoxMetric: ColAccommodationCost,
	}

	var firstDest string
	for _, r := range merged {
		if r.Country.Continent != "" {
			geo := r.Country.Continent
			d.Geo = &geo
			return d
		}
		if firstDest == "" && r.Destination != "" {
			firstDest = r.Destination
		}
	}
	if firstDest != "" {
		d.Geo = &firstDest
	}
	return d
}

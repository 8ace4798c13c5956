// Wanderlust - Travel Destination Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wanderlust

package dataset

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

var costReplacer = strings.NewReplacer("$", "", ",", "", " USD", "")

// CleanCost strips currency decoration ("$1,200 USD") from a text cost and
// re-parses it. Values that still do not parse are returned unchanged.
func CleanCost(v Value) Value {
	if v.Kind() != KindText {
		return v
	}
	cleaned := ParseCell(costReplacer.Replace(v.String()), false)
	if cleaned.Kind() == KindNumber {
		return cleaned
	}
	return v
}

var dateLayouts = []string{
	"1/2/2006",
	"2006-01-02",
	"2006/01/02",
	"2006-01-02 15:04:05",
	"1/2/06",
}

// ParseDate parses the date formats found in trip exports. The zero time is
// returned for anything unrecognized.
func ParseDate(v Value) time.Time {
	s := strings.TrimSpace(v.String())
	if s == "" {
		return time.Time{}
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

// columns maps required and optional column names to header positions.
type columns map[string]int

func resolveColumns(raw *RawTable, required, optional []string) (columns, error) {
	cols := make(columns, len(required)+len(optional))
	for _, name := range required {
		idx := raw.Index(name)
		if idx < 0 {
			return nil, fmt.Errorf("%w: %q", ErrMissingColumn, name)
		}
		cols[name] = idx
	}
	for _, name := range optional {
		if idx := raw.Index(name); idx >= 0 {
			cols[name] = idx
		}
	}
	return cols, nil
}

// get returns the cell for name, or Missing when the column is absent.
func (c columns) get(row []Value, name string) Value {
	idx, ok := c[name]
	if !ok || idx >= len(row) {
		return Missing()
	}
	return row[idx]
}

// complete reports whether no known column of row is missing.
func (c columns) complete(row []Value) bool {
	for _, idx := range c {
		if idx >= len(row) || row[idx].IsMissing() {
			return false
		}
	}
	return true
}

// BuildTrips converts a raw trip table into cleaned trip records.
//
// Rows with a missing cell in any known column are dropped. Costs are
// stripped of currency decoration, dates parsed, and the derived total cost,
// five-year age group and start month filled in.
func BuildTrips(raw *RawTable) ([]Trip, error) {
	cols, err := resolveColumns(raw,
		[]string{ColDestination, ColAccommodationCost, ColDuration, ColAccommodationType},
		[]string{ColTransportationCost, ColTravelerName, ColTravelerAge, ColTravelerNationality, ColStartDate, ColEndDate},
	)
	if err != nil {
		return nil, fmt.Errorf("trip table: %w", err)
	}

	trips := make([]Trip, 0, len(raw.Rows))
	for _, row := range raw.Rows {
		if !cols.complete(row) {
			continue
		}
		t := Trip{
			Destination:         cols.get(row, ColDestination).Label(),
			AccommodationType:   cols.get(row, ColAccommodationType).Label(),
			AccommodationCost:   CleanCost(cols.get(row, ColAccommodationCost)),
			TransportationCost:  CleanCost(cols.get(row, ColTransportationCost)),
			Duration:            cols.get(row, ColDuration),
			TravelerName:        cols.get(row, ColTravelerName).String(),
			TravelerNationality: cols.get(row, ColTravelerNationality).String(),
			TravelerAge:         cols.get(row, ColTravelerAge),
			StartDate:           ParseDate(cols.get(row, ColStartDate)),
			EndDate:             ParseDate(cols.get(row, ColEndDate)),
		}
		acc, okAcc := t.AccommodationCost.Float()
		trans, okTrans := t.TransportationCost.Float()
		if okAcc && okTrans {
			t.TotalCost = Some(acc + trans)
		}
		if !t.StartDate.IsZero() {
			t.StartMonth = t.StartDate.Month().String()
		}
		trips = append(trips, t)
	}

	AssignAgeGroups(trips)
	return trips, nil
}

// AssignAgeGroups labels each trip with a five-year age bucket such as
// "25-29". Bucket edges start at the youngest age (truncated) and stop below
// the oldest; intervals are right-closed, so the youngest age itself and ages
// past the last edge get no label.
func AssignAgeGroups(trips []Trip) {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, t := range trips {
		if age, ok := t.TravelerAge.Float(); ok {
			lo = math.Min(lo, age)
			hi = math.Max(hi, age)
		}
	}
	if math.IsInf(lo, 0) {
		return
	}

	var edges []int
	for e := int(lo); e < int(hi); e += 5 {
		edges = append(edges, e)
	}
	if len(edges) < 2 {
		return
	}

	for i := range trips {
		age, ok := trips[i].TravelerAge.Float()
		if !ok {
			continue
		}
		for j := 0; j+1 < len(edges); j++ {
			if age > float64(edges[j]) && age <= float64(edges[j+1]) {
				trips[i].AgeGroup = strconv.Itoa(edges[j]) + "-" + strconv.Itoa(edges[j]+4)
				break
			}
		}
	}
}

// BuildCountries converts a raw country reference table into records. Rows
// with a missing cell in any known column are dropped.
func BuildCountries(raw *RawTable) ([]Country, error) {
	cols, err := resolveColumns(raw,
		[]string{ColCountry, ColCPI, ColPCE, ColSafetyIndex, ColTravelAlert},
		[]string{ColContinent, ColVisaExempt},
	)
	if err != nil {
		return nil, fmt.Errorf("country table: %w", err)
	}

	countries := make([]Country, 0, len(raw.Rows))
	for _, row := range raw.Rows {
		if !cols.complete(row) {
			continue
		}
		countries = append(countries, Country{
			Name:        cols.get(row, ColCountry).Label(),
			Continent:   cols.get(row, ColContinent).Label(),
			CPI:         cols.get(row, ColCPI),
			PCE:         cols.get(row, ColPCE),
			SafetyIndex: cols.get(row, ColSafetyIndex),
			TravelAlert: cols.get(row, ColTravelAlert),
			VisaExempt:  cols.get(row, ColVisaExempt),
		})
	}
	return countries, nil
}

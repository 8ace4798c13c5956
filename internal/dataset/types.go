// Wanderlust - Travel Destination Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wanderlust

package dataset

import (
	"errors"
	"time"
)

// Column names of the trip CSV.
const (
	ColDestination         = "Destination"
	ColAccommodationCost   = "Accommodation cost"
	ColAccommodationType   = "Accommodation type"
	ColDuration            = "Duration (days)"
	ColTransportationCost  = "Transportation cost"
	ColTravelerName        = "Traveler name"
	ColTravelerAge         = "Traveler age"
	ColTravelerNationality = "Traveler nationality"
	ColStartDate           = "Start date"
	ColEndDate             = "End date"
)

// Column names of the country reference CSV.
const (
	ColCountry     = "Country"
	ColContinent   = "Continent"
	ColCPI         = "CPI"
	ColPCE         = "PCE"
	ColSafetyIndex = "Safety Index"
	ColTravelAlert = "Travel Alert"
	ColVisaExempt  = "Visa_exempt_entry"
)

var (
	// ErrMissingColumn is returned when a required CSV column is absent.
	ErrMissingColumn = errors.New("required column missing")

	// ErrNotLoaded is returned when no snapshot has been loaded yet.
	ErrNotLoaded = errors.New("dataset not loaded")
)

// RawTable is a header plus parsed cells, as produced by the loader.
type RawTable struct {
	Columns []string
	Rows    [][]Value
}

// Index returns the position of the named column, or -1.
func (t *RawTable) Index(name string) int {
	for i, c := range t.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// Trip is one traveler trip record.
type Trip struct {
	Destination         string
	AccommodationType   string
	AccommodationCost   Value
	TransportationCost  Value
	Duration            Value
	TravelerName        string
	TravelerNationality string
	TravelerAge         Value
	StartDate           time.Time
	EndDate             time.Time

	// Derived during cleaning.
	TotalCost  OptFloat
	AgeGroup   string
	StartMonth string
}

// Country is one country reference record. A country may appear on several
// rows; the planner picks the first usable value per field.
type Country struct {
	Name        string
	Continent   string
	CPI         Value
	PCE         Value
	SafetyIndex Value
	TravelAlert Value
	VisaExempt  Value
}

// MergedRow is a trip left-joined with one matching country row. Country is
// the zero value when the destination has no reference data.
type MergedRow struct {
	Trip
	Country Country
}

// Snapshot holds the immutable base tables for one load of the source data.
type Snapshot struct {
	Trips     []Trip
	Countries []Country
	Merged    []MergedRow
	LoadedAt  time.Time
}

// NewSnapshot merges trips with countries and stamps the load time.
func NewSnapshot(trips []Trip, countries []Country, loadedAt time.Time) *Snapshot {
	return &Snapshot{
		Trips:     trips,
		Countries: countries,
		Merged:    Merge(trips, countries),
		LoadedAt:  loadedAt,
	}
}

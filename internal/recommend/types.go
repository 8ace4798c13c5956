// Wanderlust - Travel Destination Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wanderlust

package recommend

import (
	"time"

	"github.com/tomtom215/wanderlust/internal/dataset"
)

// Status describes the outcome of a ranking query.
type Status int

const (
	// StatusOK means at least one country was ranked.
	StatusOK Status = iota

	// StatusNoTrips means no trip survived the cost/type filter.
	StatusNoTrips

	// StatusFilteredOut means every candidate country was removed by the
	// reference-data requirements or the alert/visa filter.
	StatusFilteredOut
)

// String returns the wire name of the status.
func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusNoTrips:
		return "no_trips"
	case StatusFilteredOut:
		return "filtered_out"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Metric is a comparison metric key.
type Metric string

const (
	MetricSafety         Metric = "safety"
	MetricCPI            Metric = "cpi"
	MetricPCE            Metric = "pce"
	MetricAccommodation  Metric = "accommodation"
	MetricTransportation Metric = "transportation"
	MetricTravelers      Metric = "travelers"
)

// AllMetrics lists every comparison metric in display order.
var AllMetrics = []Metric{
	MetricSafety, MetricCPI, MetricPCE,
	MetricAccommodation, MetricTransportation, MetricTravelers,
}

// IsValid reports whether m is a known metric.
func (m Metric) IsValid() bool {
	for _, known := range AllMetrics {
		if m == known {
			return true
		}
	}
	return false
}

// NormalizedTrip is a trip with coerced cost and duration.
type NormalizedTrip struct {
	dataset.Trip

	// Cost is the accommodation cost, 0 when it could not be parsed.
	Cost float64

	// Days is the trip duration, always > 0.
	Days float64

	TripCost  float64
	DailyCost float64
}

// CountryLevel is one country after collapsing its reference rows.
type CountryLevel struct {
	Country     string
	CPI         dataset.Value
	PCE         dataset.Value
	SafetyIndex dataset.Value
	VisaExempt  dataset.Value
	TravelAlert dataset.Value
}

// TripStats aggregates the qualifying trips of one destination.
type TripStats struct {
	Trips              int              `json:"trips"`
	MedianDailyAccCost dataset.OptFloat `json:"median_daily_acc_cost"`
	MeanDailyAccCost   dataset.OptFloat `json:"mean_daily_acc_cost"`
	MedianTripAccCost  dataset.OptFloat `json:"median_trip_acc_cost"`
	MeanTripAccCost    dataset.OptFloat `json:"mean_trip_acc_cost"`
}

// CountryStat is a ranked row: reference fields, trip statistics and the
// derived adjusted cost and score.
type CountryStat struct {
	Country     string           `json:"country"`
	SafetyIndex dataset.OptFloat `json:"safety_index"`
	CPI         dataset.OptFloat `json:"cpi"`
	PCE         dataset.OptFloat `json:"pce"`
	TravelAlert dataset.Value    `json:"travel_alert"`
	VisaExempt  dataset.Value    `json:"visa_exempt_entry"`

	TripStats

	AdjDailyAccCost dataset.OptFloat `json:"adj_daily_acc_cost"`
	Score           dataset.OptFloat `json:"score"`
}

// RankRequest holds the planner form inputs. Nil pointers mean "not set".
type RankRequest struct {
	CostMin            *float64 `json:"cost_min,omitempty"`
	CostMax            *float64 `json:"cost_max,omitempty"`
	AccommodationTypes []string `json:"accommodation_types,omitempty"`
	MaxAlert           *string  `json:"max_alert,omitempty"`
	VisaOnly           bool     `json:"visa_only"`
	WeightSafety       *float64 `json:"weight_safety,omitempty"`
	WeightCost         *float64 `json:"weight_cost,omitempty"`
}

// RankResult is the outcome of a ranking query.
type RankResult struct {
	Status     Status
	Rows       []CountryStat
	CompareSet []string
	Metadata   ResultMetadata
}

// ResultMetadata describes how a result was produced.
type ResultMetadata struct {
	RequestID       string    `json:"request_id,omitempty"`
	MatchedTrips    int       `json:"matched_trips"`
	MatchedCountry  int       `json:"matched_countries"`
	LatencyMS       int64     `json:"latency_ms"`
	CacheHit        bool      `json:"cache_hit"`
	DatasetLoadedAt time.Time `json:"dataset_loaded_at"`
}

// CompareRequest selects countries and metrics for a comparison.
type CompareRequest struct {
	Countries []string
	Metrics   []Metric
}

// CompareResult holds comparison rows and the countries actually compared.
type CompareResult struct {
	Rows      []ComparisonRow
	Countries []string
}

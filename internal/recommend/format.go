// Wanderlust - Travel Destination Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wanderlust

package recommend

import (
	"strconv"

	"github.com/tomtom215/wanderlust/internal/dataset"
)

// FormatFixed renders v with nd decimals, or nil when v is absent.
func FormatFixed(v dataset.OptFloat, nd int) *string {
	x, ok := v.Get()
	if !ok {
		return nil
	}
	s := strconv.FormatFloat(x, 'f', max(nd, 0), 64)
	return &s
}

// TableRow is the display projection of a ranked row. Score and cost columns
// are pre-formatted as whole numbers.
type TableRow struct {
	Country            string           `json:"Country"`
	Score              *string          `json:"Score"`
	SafetyIndex        dataset.OptFloat `json:"Safety Index"`
	TravelAlert        dataset.Value    `json:"Travel Alert"`
	CPI                dataset.OptFloat `json:"CPI"`
	PCE                dataset.OptFloat `json:"PCE"`
	VisaExempt         dataset.Value    `json:"Visa_exempt_entry"`
	Trips              int              `json:"trips"`
	MedianDailyAccCost *string          `json:"median_daily_acc_cost"`
	AdjDailyAccCost    *string          `json:"adj_daily_acc_cost"`
	MedianTripAccCost  *string          `json:"median_trip_acc_cost"`
}

// ToTable projects ranked rows onto the display columns.
func ToTable(rows []CountryStat) []TableRow {
	out := make([]TableRow, len(rows))
	for i := range rows {
		r := &rows[i]
		out[i] = TableRow{
			Country:            r.Country,
			Score:              FormatFixed(r.Score, 0),
			SafetyIndex:        r.SafetyIndex,
			TravelAlert:        r.TravelAlert,
			CPI:                r.CPI,
			PCE:                r.PCE,
			VisaExempt:         r.VisaExempt,
			Trips:              r.Trips,
			MedianDailyAccCost: FormatFixed(r.MedianDailyAccCost, 0),
			AdjDailyAccCost:    FormatFixed(r.AdjDailyAccCost, 0),
			MedianTripAccCost:  FormatFixed(r.MedianTripAccCost, 0),
		}
	}
	return out
}

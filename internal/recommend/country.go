// Wanderlust - Travel Destination Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wanderlust

package recommend

import (
	"cmp"
	"maps"
	"slices"
	"strings"

	"github.com/tomtom215/wanderlust/internal/dataset"
)

// AlertScale ranks travel advisory labels. Lower ranks are safer; labels
// not on the scale get the default rank.
type AlertScale struct {
	ranks       map[string]int
	defaultRank int
}

// NewAlertScale builds a scale. Keys are trimmed.
func NewAlertScale(ranks map[string]int, defaultRank int) AlertScale {
	m := make(map[string]int, len(ranks))
	for k, v := range ranks {
		m[strings.TrimSpace(k)] = v
	}
	return AlertScale{ranks: m, defaultRank: defaultRank}
}

// DefaultAlertScale is the grey/yellow/orange scale with default rank 3.
func DefaultAlertScale() AlertScale {
	return NewAlertScale(DefaultAlertRanks(), 3)
}

// Rank returns the tier of a label after trimming.
func (s AlertScale) Rank(label string) int {
	if r, ok := s.ranks[strings.TrimSpace(label)]; ok {
		return r
	}
	return s.defaultRank
}

// SortLabels orders labels by rank, then by label text.
func (s AlertScale) SortLabels(labels []string) []string {
	out := slices.Clone(labels)
	slices.SortStableFunc(out, func(a, b string) int {
		if c := cmp.Compare(s.Rank(a), s.Rank(b)); c != 0 {
			return c
		}
		return strings.Compare(a, b)
	})
	return out
}

// PickCountryLevel collapses merged rows to one row per candidate country,
// ordered by country name. Each reference field takes the first value, in
// input order, that is neither missing nor blank. Countries lacking CPI, PCE,
// safety index or travel alert are dropped.
func PickCountryLevel(merged []dataset.MergedRow, candidates []string) []CountryLevel {
	wanted := make(map[string]struct{}, len(candidates))
	for _, c := range candidates {
		wanted[c] = struct{}{}
	}

	byCountry := make(map[string]*CountryLevel)
	for i := range merged {
		r := &merged[i]
		if _, ok := wanted[r.Destination]; !ok {
			continue
		}
		lvl, ok := byCountry[r.Destination]
		if !ok {
			lvl = &CountryLevel{Country: r.Destination}
			byCountry[r.Destination] = lvl
		}
		firstUsable(&lvl.CPI, r.Country.CPI)
		firstUsable(&lvl.PCE, r.Country.PCE)
		firstUsable(&lvl.SafetyIndex, r.Country.SafetyIndex)
		firstUsable(&lvl.VisaExempt, r.Country.VisaExempt)
		firstUsable(&lvl.TravelAlert, r.Country.TravelAlert)
	}

	names := slices.Sorted(maps.Keys(byCountry))
	out := make([]CountryLevel, 0, len(names))
	for _, name := range names {
		lvl := byCountry[name]
		if lvl.CPI.IsBlank() || lvl.PCE.IsBlank() || lvl.SafetyIndex.IsBlank() || lvl.TravelAlert.IsBlank() {
			continue
		}
		out = append(out, *lvl)
	}
	return out
}

func firstUsable(dst *dataset.Value, v dataset.Value) {
	if dst.IsBlank() && !v.IsBlank() {
		*dst = v
	}
}

// FilterByAlertAndVisa keeps countries whose advisory rank does not exceed
// that of maxAlert (when set) and, when visaOnly is set, whose visa field
// reads as exempt.
func FilterByAlertAndVisa(rows []CountryLevel, scale AlertScale, maxAlert *string, visaOnly bool) []CountryLevel {
	out := make([]CountryLevel, 0, len(rows))
	for _, r := range rows {
		if maxAlert != nil && scale.Rank(r.TravelAlert.Label()) > scale.Rank(*maxAlert) {
			continue
		}
		if visaOnly && !r.VisaExempt.Exempt() {
			continue
		}
		out = append(out, r)
	}
	return out
}

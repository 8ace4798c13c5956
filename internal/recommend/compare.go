// Wanderlust - Travel Destination Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wanderlust

package recommend

import (
	"bytes"

	"github.com/goccy/go-json"

	"github.com/tomtom215/wanderlust/internal/dataset"
)

// ComparisonRow holds the requested metrics for one country. Only metrics in
// Metrics are serialized.
type ComparisonRow struct {
	Country               string
	Metrics               []Metric
	SafetyIndex           dataset.OptFloat
	CPI                   dataset.OptFloat
	PCE                   dataset.OptFloat
	AvgAccommodationCost  dataset.OptFloat
	AvgTransportationCost dataset.OptFloat
	TotalTravelers        int
}

// MarshalJSON writes the display column names in metric order.
func (r ComparisonRow) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	if err := writeField(&buf, "Country", r.Country, true); err != nil {
		return nil, err
	}
	for _, m := range r.Metrics {
		var err error
		switch m {
		case MetricSafety:
			err = writeField(&buf, "Safety Index", r.SafetyIndex, false)
		case MetricCPI:
			err = writeField(&buf, "CPI", r.CPI, false)
		case MetricPCE:
			err = writeField(&buf, "PCE", r.PCE, false)
		case MetricAccommodation:
			err = writeField(&buf, "Avg Accommodation Cost", r.AvgAccommodationCost, false)
		case MetricTransportation:
			err = writeField(&buf, "Avg Transportation Cost", r.AvgTransportationCost, false)
		case MetricTravelers:
			err = writeField(&buf, "Total Travelers", r.TotalTravelers, false)
		}
		if err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func writeField(buf *bytes.Buffer, key string, v any, first bool) error {
	if !first {
		buf.WriteByte(',')
	}
	k, err := json.Marshal(key)
	if err != nil {
		return err
	}
	val, err := json.Marshal(v)
	if err != nil {
		return err
	}
	buf.Write(k)
	buf.WriteByte(':')
	buf.Write(val)
	return nil
}

// CountryNames keeps the string entries of a decoded JSON list, dropping
// blanks and duplicates while preserving order.
func CountryNames(items []any) []string {
	names := make([]string, 0, len(items))
	seen := make(map[string]struct{}, len(items))
	for _, it := range items {
		s, ok := it.(string)
		if !ok || s == "" {
			continue
		}
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		names = append(names, s)
	}
	return names
}

// canonicalMetrics filters metrics to known keys, deduplicated and in
// display order.
func canonicalMetrics(metrics []Metric) []Metric {
	want := make(map[Metric]struct{}, len(metrics))
	for _, m := range metrics {
		want[m] = struct{}{}
	}
	out := make([]Metric, 0, len(AllMetrics))
	for _, m := range AllMetrics {
		if _, ok := want[m]; ok {
			out = append(out, m)
		}
	}
	return out
}

// BuildComparison extracts the requested metrics for up to limit countries
// straight from the merged base table. Reference figures are the first
// present value for the country; costs are plain means over its trip rows;
// travelers is the row count. Unknown countries are skipped. The result is
// empty when no country or metric is given or none of the countries exist.
func BuildComparison(countries []string, metrics []Metric, merged []dataset.MergedRow, limit int) CompareResult {
	metrics = canonicalMetrics(metrics)
	if len(countries) == 0 || len(metrics) == 0 {
		return CompareResult{}
	}

	rowsByCountry := make(map[string][]*dataset.MergedRow)
	for i := range merged {
		d := merged[i].Destination
		if d == "" {
			continue
		}
		rowsByCountry[d] = append(rowsByCountry[d], &merged[i])
	}

	names := make([]any, len(countries))
	for i, c := range countries {
		names[i] = c
	}
	limited := make([]string, 0, limit)
	for _, c := range CountryNames(names) {
		if len(limited) == limit {
			break
		}
		if _, ok := rowsByCountry[c]; ok {
			limited = append(limited, c)
		}
	}
	if len(limited) == 0 {
		return CompareResult{}
	}

	rows := make([]ComparisonRow, 0, len(limited))
	for _, c := range limited {
		rows = append(rows, comparisonRow(c, metrics, rowsByCountry[c]))
	}
	return CompareResult{Rows: rows, Countries: limited}
}

func comparisonRow(country string, metrics []Metric, data []*dataset.MergedRow) ComparisonRow {
	row := ComparisonRow{Country: country, Metrics: metrics}
	for _, m := range metrics {
		switch m {
		case MetricSafety:
			row.SafetyIndex = firstPresent(data, func(r *dataset.MergedRow) dataset.Value { return r.Country.SafetyIndex })
		case MetricCPI:
			row.CPI = firstPresent(data, func(r *dataset.MergedRow) dataset.Value { return r.Country.CPI })
		case MetricPCE:
			row.PCE = firstPresent(data, func(r *dataset.MergedRow) dataset.Value { return r.Country.PCE })
		case MetricAccommodation:
			row.AvgAccommodationCost = meanOf(data, func(r *dataset.MergedRow) dataset.Value { return r.AccommodationCost })
		case MetricTransportation:
			row.AvgTransportationCost = meanOf(data, func(r *dataset.MergedRow) dataset.Value { return r.TransportationCost })
		case MetricTravelers:
			row.TotalTravelers = len(data)
		}
	}
	return row
}

// firstPresent returns the first cell that parses as a number; text such as
// "n/a" is skipped so a later numeric value still counts.
func firstPresent(data []*dataset.MergedRow, field func(*dataset.MergedRow) dataset.Value) dataset.OptFloat {
	for _, r := range data {
		if x, ok := field(r).Float(); ok {
			return dataset.Some(x)
		}
	}
	return dataset.None()
}

func meanOf(data []*dataset.MergedRow, field func(*dataset.MergedRow) dataset.Value) dataset.OptFloat {
	var sum float64
	var n int
	for _, r := range data {
		if x, ok := field(r).Float(); ok {
			sum += x
			n++
		}
	}
	if n == 0 {
		return dataset.None()
	}
	return dataset.Some(sum / float64(n))
}

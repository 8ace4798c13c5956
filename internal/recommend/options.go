// Wanderlust - Travel Destination Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wanderlust

package recommend

import (
	"slices"

	"github.com/tomtom215/wanderlust/internal/dataset"
)

// PlannerOptions are the choices and initial values of the planner form.
type PlannerOptions struct {
	AccommodationTypes []string       `json:"accommodation_types"`
	AlertOptions       []string       `json:"alert_options"`
	DefaultAlert       *string        `json:"default_alert"`
	Metrics            []Metric       `json:"metrics"`
	DefaultWeights     WeightDefaults `json:"default_weights"`
	MaxCompare         int            `json:"max_compare"`
}

// OverviewResult combines the headline statistics with the dashboard's
// default selections.
type OverviewResult struct {
	Stats    dataset.Overview          `json:"stats"`
	Defaults dataset.DashboardDefaults `json:"defaults"`
}

// BuildOptions derives the form choices from a snapshot. Alert options are
// the distinct non-blank advisory labels of the country and merged tables,
// safest first; the default is the first option.
func BuildOptions(snap *dataset.Snapshot, scale AlertScale, cfg *Config) PlannerOptions {
	types := make(map[string]struct{})
	for _, t := range snap.Trips {
		if t.AccommodationType != "" {
			types[t.AccommodationType] = struct{}{}
		}
	}

	alerts := make(map[string]struct{})
	for _, c := range snap.Countries {
		if l := c.TravelAlert.Label(); l != "" {
			alerts[l] = struct{}{}
		}
	}
	for _, r := range snap.Merged {
		if l := r.Country.TravelAlert.Label(); l != "" {
			alerts[l] = struct{}{}
		}
	}

	opts := PlannerOptions{
		AccommodationTypes: sortedKeys(types),
		AlertOptions:       scale.SortLabels(sortedKeys(alerts)),
		Metrics:            slices.Clone(AllMetrics),
		DefaultWeights:     cfg.Weights,
		MaxCompare:         cfg.Limits.MaxCompare,
	}
	if len(opts.AlertOptions) > 0 {
		def := opts.AlertOptions[0]
		opts.DefaultAlert = &def
	}
	return opts
}

func sortedKeys(m map[string]struct{}) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	slices.Sort(out)
	return out
}

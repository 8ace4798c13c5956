// Wanderlust - Travel Destination Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wanderlust

package recommend

import (
	"strconv"
	"strings"
)

// PriceLevelByBudget maps a budget to a 1-4 price level, the scale used by
// place listings. A nil budget means no limit.
func PriceLevelByBudget(budget *float64) int {
	switch {
	case budget == nil:
		return 4
	case *budget <= 100:
		return 1
	case *budget <= 300:
		return 2
	case *budget <= 600:
		return 3
	default:
		return 4
	}
}

// WithinBudget reports whether a "$a-b" price range starts at or below the
// budget. Malformed ranges never match.
func WithinBudget(priceRange string, budget *float64) bool {
	if priceRange == "" || budget == nil {
		return false
	}
	lo, hi, ok := strings.Cut(strings.ReplaceAll(priceRange, "$", ""), "-")
	if !ok || strings.Contains(hi, "-") {
		return false
	}
	start, err := strconv.ParseFloat(strings.TrimSpace(lo), 64)
	if err != nil {
		return false
	}
	if _, err := strconv.ParseFloat(strings.TrimSpace(hi), 64); err != nil {
		return false
	}
	return start <= *budget
}

// Wanderlust - Travel Destination Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wanderlust

package api

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/goccy/go-json"

	"github.com/tomtom215/wanderlust/internal/recommend"
)

// maxBodyBytes caps JSON request bodies.
const maxBodyBytes = 64 << 10

// RankRequestBody is the JSON body of POST /planner/rank.
type RankRequestBody struct {
	CostMin            *float64 `json:"cost_min" validate:"omitempty,gte=0"`
	CostMax            *float64 `json:"cost_max" validate:"omitempty,gte=0"`
	AccommodationTypes []string `json:"accommodation_types" validate:"max=50,dive,max=100"`
	MaxAlert           *string  `json:"max_alert" validate:"omitempty,max=100"`
	VisaOnly           bool     `json:"visa_only"`
	WeightSafety       *float64 `json:"weight_safety" validate:"omitempty,gte=0,lte=10"`
	WeightCost         *float64 `json:"weight_cost" validate:"omitempty,gte=0,lte=10"`
}

// ToRankRequest converts the body into an engine request.
func (b *RankRequestBody) ToRankRequest() recommend.RankRequest {
	return recommend.RankRequest{
		CostMin:            b.CostMin,
		CostMax:            b.CostMax,
		AccommodationTypes: b.AccommodationTypes,
		MaxAlert:           b.MaxAlert,
		VisaOnly:           b.VisaOnly,
		WeightSafety:       b.WeightSafety,
		WeightCost:         b.WeightCost,
	}
}

// CompareRequestBody is the JSON body of POST /planner/compare. Countries is
// left untyped: non-string entries are ignored rather than rejected.
type CompareRequestBody struct {
	Countries []any    `json:"countries" validate:"max=500"`
	Metrics   []string `json:"metrics" validate:"max=20,dive,metric"`
}

// ToCompareRequest converts the body into an engine request.
func (b *CompareRequestBody) ToCompareRequest() recommend.CompareRequest {
	metrics := make([]recommend.Metric, len(b.Metrics))
	for i, m := range b.Metrics {
		metrics[i] = recommend.Metric(m)
	}
	return recommend.CompareRequest{
		Countries: recommend.CountryNames(b.Countries),
		Metrics:   metrics,
	}
}

// PriceLevelQuery holds the query parameters of GET /planner/price-level.
type PriceLevelQuery struct {
	Budget     *float64 `json:"budget" validate:"omitempty,gte=0"`
	PriceRange string   `json:"price_range" validate:"max=64"`
}

// parsePriceLevelQuery reads budget and price_range. An empty budget means
// no limit.
func parsePriceLevelQuery(r *http.Request) (PriceLevelQuery, error) {
	q := r.URL.Query()
	out := PriceLevelQuery{PriceRange: q.Get("price_range")}
	if raw := strings.TrimSpace(q.Get("budget")); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return out, fmt.Errorf("budget must be a number: %q", raw)
		}
		out.Budget = &v
	}
	return out, nil
}

// decodeJSON reads a single JSON object from the body into dst.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	if r.Body == nil || r.Body == http.NoBody {
		return ErrEmptyBody
	}
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return ErrEmptyBody
		}
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return fmt.Errorf("request body exceeds %d bytes", maxErr.Limit)
		}
		return fmt.Errorf("invalid JSON body: %w", err)
	}
	if dec.More() {
		return errors.New("request body must contain a single JSON object")
	}
	return nil
}

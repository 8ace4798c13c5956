// Wanderlust - Travel Destination Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wanderlust

package api

import (
	"errors"
	"net/http"

	"github.com/tomtom215/wanderlust/internal/logging"
	"github.com/tomtom215/wanderlust/internal/recommend"
	"github.com/tomtom215/wanderlust/internal/validation"
)

// Status messages shown next to an empty result.
const (
	msgNoTrips     = "No countries match the selected cost range and accommodation types."
	msgFilteredOut = "No countries left after the travel alert and visa filters."
	msgNoCompare   = "The selected countries do not have enough data to compare."
)

// RankResponse is the data of POST /planner/rank.
type RankResponse struct {
	Status     recommend.Status         `json:"status"`
	Message    string                   `json:"message,omitempty"`
	Rows       []recommend.TableRow     `json:"rows"`
	CompareSet []string                 `json:"compare_set"`
	Metadata   recommend.ResultMetadata `json:"metadata"`
}

// CompareResponse is the data of POST /planner/compare.
type CompareResponse struct {
	Countries []string                  `json:"countries"`
	Rows      []recommend.ComparisonRow `json:"rows"`
	Message   string                    `json:"message,omitempty"`
}

// PriceLevelResponse is the data of GET /planner/price-level.
type PriceLevelResponse struct {
	Budget       *float64 `json:"budget"`
	PriceLevel   int      `json:"price_level"`
	PriceRange   string   `json:"price_range,omitempty"`
	WithinBudget bool     `json:"within_budget"`
}

// OverviewStats handles GET /overview/stats.
func (h *Handler) OverviewStats(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	ctx, cancel := h.withTimeout(r.Context())
	defer cancel()

	res, err := h.planner.Overview(ctx)
	if err != nil {
		respondPlannerError(rw, err)
		return
	}
	rw.Success(res)
}

// PlannerOptions handles GET /planner/options.
func (h *Handler) PlannerOptions(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	ctx, cancel := h.withTimeout(r.Context())
	defer cancel()

	opts, err := h.planner.Options(ctx)
	if err != nil {
		respondPlannerError(rw, err)
		return
	}
	rw.Success(opts)
}

// PlannerRank handles POST /planner/rank.
func (h *Handler) PlannerRank(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	var body RankRequestBody
	if err := decodeJSON(w, r, &body); err != nil && !errors.Is(err, ErrEmptyBody) {
		rw.BadRequest(err.Error())
		return
	}
	if verr := validation.ValidateStruct(&body); verr != nil {
		respondValidationError(rw, verr)
		return
	}

	ctx, cancel := h.withTimeout(r.Context())
	defer cancel()

	res, err := h.planner.Rank(ctx, body.ToRankRequest())
	if err != nil {
		respondPlannerError(rw, err)
		return
	}

	out := RankResponse{
		Status:     res.Status,
		Rows:       recommend.ToTable(res.Rows),
		CompareSet: res.CompareSet,
		Metadata:   res.Metadata,
	}
	if out.CompareSet == nil {
		out.CompareSet = []string{}
	}
	switch res.Status {
	case recommend.StatusNoTrips:
		out.Message = msgNoTrips
	case recommend.StatusFilteredOut:
		out.Message = msgFilteredOut
	}

	logging.Ctx(r.Context()).Debug().
		Str("status", res.Status.String()).
		Int("rows", len(out.Rows)).
		Bool("cache_hit", res.Metadata.CacheHit).
		Msg("Rank request served")

	rw.Success(out)
}

// PlannerCompare handles POST /planner/compare.
func (h *Handler) PlannerCompare(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	var body CompareRequestBody
	if err := decodeJSON(w, r, &body); err != nil {
		rw.BadRequest(err.Error())
		return
	}
	if verr := validation.ValidateStruct(&body); verr != nil {
		respondValidationError(rw, verr)
		return
	}

	ctx, cancel := h.withTimeout(r.Context())
	defer cancel()

	res, err := h.planner.Compare(ctx, body.ToCompareRequest())
	if err != nil {
		respondPlannerError(rw, err)
		return
	}

	out := CompareResponse{Countries: res.Countries, Rows: res.Rows}
	if out.Countries == nil {
		out.Countries = []string{}
	}
	if out.Rows == nil {
		out.Rows = []recommend.ComparisonRow{}
	}
	if len(out.Rows) == 0 {
		out.Message = msgNoCompare
	}
	rw.Success(out)
}

// PriceLevel handles GET /planner/price-level.
func (h *Handler) PriceLevel(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	q, err := parsePriceLevelQuery(r)
	if err != nil {
		rw.BadRequest(err.Error())
		return
	}
	if verr := validation.ValidateStruct(&q); verr != nil {
		respondValidationError(rw, verr)
		return
	}

	rw.Success(PriceLevelResponse{
		Budget:       q.Budget,
		PriceLevel:   recommend.PriceLevelByBudget(q.Budget),
		PriceRange:   q.PriceRange,
		WithinBudget: recommend.WithinBudget(q.PriceRange, q.Budget),
	})
}

func respondValidationError(rw *ResponseWriter, verr *validation.RequestValidationError) {
	apiErr := verr.ToAPIError()
	rw.ErrorWithDetails(http.StatusBadRequest, apiErr.Code, apiErr.Message, apiErr.Details)
}

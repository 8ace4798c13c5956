// Wanderlust - Travel Destination Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wanderlust

package api

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/tomtom215/wanderlust/internal/dataset"
)

type rankData struct {
	Status     string           `json:"status"`
	Message    string           `json:"message"`
	Rows       []map[string]any `json:"rows"`
	CompareSet []string         `json:"compare_set"`
	Metadata   struct {
		RequestID    string `json:"request_id"`
		MatchedTrips int    `json:"matched_trips"`
		CacheHit     bool   `json:"cache_hit"`
	} `json:"metadata"`
}

func rowCountries(rows []map[string]any) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i], _ = r["Country"].(string)
	}
	return out
}

// ========================================
// Rank
// ========================================

func TestPlannerRank(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		body        string
		wantStatus  string
		wantRows    []string
		wantMessage bool
	}{
		{"empty body uses defaults", "", "ok", []string{"A", "B"}, false},
		{"empty object", "{}", "ok", []string{"A", "B"}, false},
		{"visa only", `{"visa_only": true}`, "ok", []string{"A"}, false},
		{"strict alert", `{"max_alert": "灰色"}`, "ok", []string{"A"}, false},
		{"type filter", `{"accommodation_types": ["Hostel"]}`, "ok", []string{"B"}, false},
		{"swapped bounds", `{"cost_min": 150, "cost_max": 50}`, "ok", []string{"A"}, false},
		{"no trips", `{"cost_min": 1000}`, "no_trips", []string{}, true},
		{"filtered out", `{"accommodation_types": ["Hostel"], "visa_only": true}`, "filtered_out", []string{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			srv := newTestServer(t, newTestEngine(t, &staticSource{snap: testSnapshot()}), loadedHealth())

			rec := do(t, srv, http.MethodPost, "/api/v1/planner/rank", tt.body)
			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d, want 200; body = %s", rec.Code, rec.Body.String())
			}
			env := decodeEnvelope(t, rec)
			if !env.Success {
				t.Fatalf("success = false, error = %+v", env.Error)
			}
			var data rankData
			decodeData(t, env, &data)

			if data.Status != tt.wantStatus {
				t.Errorf("status = %q, want %q", data.Status, tt.wantStatus)
			}
			if got := rowCountries(data.Rows); strings.Join(got, ",") != strings.Join(tt.wantRows, ",") {
				t.Errorf("rows = %v, want %v", got, tt.wantRows)
			}
			if (data.Message != "") != tt.wantMessage {
				t.Errorf("message = %q, want present = %v", data.Message, tt.wantMessage)
			}
			if data.CompareSet == nil {
				t.Error("compare_set = null, want array")
			}
		})
	}
}

func TestPlannerRank_TableProjection(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, newTestEngine(t, &staticSource{snap: testSnapshot()}), loadedHealth())
	rec := do(t, srv, http.MethodPost, "/api/v1/planner/rank", `{"weight_safety": 5, "weight_cost": 5}`)

	var data rankData
	decodeData(t, decodeEnvelope(t, rec), &data)
	if len(data.Rows) != 2 {
		t.Fatalf("len(rows) = %d, want 2", len(data.Rows))
	}

	top := data.Rows[0]
	if top["Score"] != "100" {
		t.Errorf("Score = %v, want \"100\"", top["Score"])
	}
	if top["median_daily_acc_cost"] != "50" {
		t.Errorf("median_daily_acc_cost = %v, want \"50\"", top["median_daily_acc_cost"])
	}
	if top["Travel Alert"] != "灰色" {
		t.Errorf("Travel Alert = %v, want 灰色", top["Travel Alert"])
	}
	for _, col := range []string{"Safety Index", "CPI", "PCE", "Visa_exempt_entry", "trips", "adj_daily_acc_cost", "median_trip_acc_cost"} {
		if _, ok := top[col]; !ok {
			t.Errorf("row missing column %q", col)
		}
	}
	if data.Rows[1]["Score"] != "0" {
		t.Errorf("second Score = %v, want \"0\"", data.Rows[1]["Score"])
	}
	if strings.Join(data.CompareSet, ",") != "A,B" {
		t.Errorf("compare_set = %v, want [A B]", data.CompareSet)
	}
	if data.Metadata.RequestID == "" {
		t.Error("metadata.request_id is empty")
	}
}

func TestPlannerRank_Rejects(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		body     string
		wantCode string
	}{
		{"malformed json", `{"cost_min":`, ErrCodeBadRequest},
		{"unknown field", `{"budget": 10}`, ErrCodeBadRequest},
		{"wrong type", `{"visa_only": "yes"}`, ErrCodeBadRequest},
		{"negative cost", `{"cost_min": -1}`, ErrCodeValidation},
		{"weight above range", `{"weight_cost": 11}`, ErrCodeValidation},
	}

	srv := newTestServer(t, newTestEngine(t, &staticSource{snap: testSnapshot()}), loadedHealth())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rec := do(t, srv, http.MethodPost, "/api/v1/planner/rank", tt.body)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400; body = %s", rec.Code, rec.Body.String())
			}
			env := decodeEnvelope(t, rec)
			if env.Success || env.Error == nil {
				t.Fatalf("envelope = %+v, want error", env)
			}
			if env.Error.Code != tt.wantCode {
				t.Errorf("code = %q, want %q", env.Error.Code, tt.wantCode)
			}
		})
	}
}

func TestPlannerRank_NotLoaded(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, newTestEngine(t, &staticSource{err: dataset.ErrNotLoaded}), stubHealth{})
	rec := do(t, srv, http.MethodPost, "/api/v1/planner/rank", "{}")

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", rec.Code)
	}
	if env := decodeEnvelope(t, rec); env.Error.Code != ErrCodeServiceUnavailable {
		t.Errorf("code = %q, want %q", env.Error.Code, ErrCodeServiceUnavailable)
	}
}

func TestPlannerEndpoints_InternalError(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, failingPlanner{err: errors.New("boom")}, loadedHealth())
	for _, tc := range []struct{ method, path, body string }{
		{http.MethodPost, "/api/v1/planner/rank", "{}"},
		{http.MethodPost, "/api/v1/planner/compare", `{"countries": ["A"]}`},
		{http.MethodGet, "/api/v1/planner/options", ""},
		{http.MethodGet, "/api/v1/overview/stats", ""},
	} {
		rec := do(t, srv, tc.method, tc.path, tc.body)
		if rec.Code != http.StatusInternalServerError {
			t.Errorf("%s %s status = %d, want 500", tc.method, tc.path, rec.Code)
			continue
		}
		env := decodeEnvelope(t, rec)
		if env.Error.Code != ErrCodeInternalError {
			t.Errorf("%s %s code = %q, want %q", tc.method, tc.path, env.Error.Code, ErrCodeInternalError)
		}
		if strings.Contains(env.Error.Message, "boom") {
			t.Errorf("%s %s leaked internal error: %q", tc.method, tc.path, env.Error.Message)
		}
	}
}

// ========================================
// Compare
// ========================================

func TestPlannerCompare(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, newTestEngine(t, &staticSource{snap: testSnapshot()}), loadedHealth())
	rec := do(t, srv, http.MethodPost, "/api/v1/planner/compare",
		`{"countries": ["A", "B", "A", "Z", 5, ""], "metrics": ["travelers", "safety"]}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body = %s", rec.Code, rec.Body.String())
	}

	var data struct {
		Countries []string         `json:"countries"`
		Rows      []map[string]any `json:"rows"`
	}
	decodeData(t, decodeEnvelope(t, rec), &data)

	if strings.Join(data.Countries, ",") != "A,B" {
		t.Errorf("countries = %v, want [A B]", data.Countries)
	}
	if len(data.Rows) != 2 {
		t.Fatalf("len(rows) = %d, want 2", len(data.Rows))
	}
	row := data.Rows[0]
	if row["Safety Index"] != float64(80) {
		t.Errorf("Safety Index = %v, want 80", row["Safety Index"])
	}
	if row["Total Travelers"] != float64(1) {
		t.Errorf("Total Travelers = %v, want 1", row["Total Travelers"])
	}
	if _, ok := row["CPI"]; ok {
		t.Error("CPI present, want only requested metrics")
	}
}

func TestPlannerCompare_KeyOrder(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, newTestEngine(t, &staticSource{snap: testSnapshot()}), loadedHealth())
	rec := do(t, srv, http.MethodPost, "/api/v1/planner/compare",
		`{"countries": ["A"], "metrics": ["travelers", "cpi"]}`)

	body := rec.Body.String()
	c, cpi, tr := strings.Index(body, `"Country"`), strings.Index(body, `"CPI"`), strings.Index(body, `"Total Travelers"`)
	if c < 0 || cpi < c || tr < cpi {
		t.Errorf("column order wrong in %s", body)
	}
}

func TestPlannerCompare_EmptyAndInvalid(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, newTestEngine(t, &staticSource{snap: testSnapshot()}), loadedHealth())

	rec := do(t, srv, http.MethodPost, "/api/v1/planner/compare", `{"countries": ["Nowhere"]}`)
	var data CompareResponse
	decodeData(t, decodeEnvelope(t, rec), &data)
	if len(data.Rows) != 0 || data.Message == "" {
		t.Errorf("rows = %v, message = %q, want empty rows with message", data.Rows, data.Message)
	}

	rec = do(t, srv, http.MethodPost, "/api/v1/planner/compare", `{"countries": ["A"], "metrics": ["weather"]}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if env := decodeEnvelope(t, rec); env.Error.Code != ErrCodeValidation {
		t.Errorf("code = %q, want %q", env.Error.Code, ErrCodeValidation)
	}

	rec = do(t, srv, http.MethodPost, "/api/v1/planner/compare", "")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("empty body status = %d, want 400", rec.Code)
	}
}

// ========================================
// Options / overview / price level
// ========================================

func TestPlannerOptions(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, newTestEngine(t, &staticSource{snap: testSnapshot()}), loadedHealth())
	rec := do(t, srv, http.MethodGet, "/api/v1/planner/options", "")

	var data struct {
		AccommodationTypes []string `json:"accommodation_types"`
		AlertOptions       []string `json:"alert_options"`
		DefaultAlert       *string  `json:"default_alert"`
		Metrics            []string `json:"metrics"`
	}
	decodeData(t, decodeEnvelope(t, rec), &data)

	if strings.Join(data.AccommodationTypes, ",") != "Hostel,Hotel" {
		t.Errorf("accommodation_types = %v, want [Hostel Hotel]", data.AccommodationTypes)
	}
	if strings.Join(data.AlertOptions, ",") != "灰色,黃色" {
		t.Errorf("alert_options = %v, want [灰色 黃色]", data.AlertOptions)
	}
	if data.DefaultAlert == nil || *data.DefaultAlert != "灰色" {
		t.Errorf("default_alert = %v, want 灰色", data.DefaultAlert)
	}
	if len(data.Metrics) != 6 {
		t.Errorf("len(metrics) = %d, want 6", len(data.Metrics))
	}
}

func TestOverviewStats(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, newTestEngine(t, &staticSource{snap: testSnapshot()}), loadedHealth())
	rec := do(t, srv, http.MethodGet, "/api/v1/overview/stats", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var data struct {
		Stats    map[string]any `json:"stats"`
		Defaults map[string]any `json:"defaults"`
	}
	decodeData(t, decodeEnvelope(t, rec), &data)
	if data.Stats == nil || data.Defaults == nil {
		t.Fatalf("data = %+v, want stats and defaults", data)
	}
	if months, _ := data.Stats["start_months"].([]any); len(months) != 12 {
		t.Errorf("start_months = %v, want 12 buckets", data.Stats["start_months"])
	}
	if _, ok := data.Stats["age_groups"].([]any); !ok {
		t.Errorf("age_groups = %v, want a list", data.Stats["age_groups"])
	}
}

func TestPriceLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		query      string
		wantCode   int
		wantLevel  int
		wantWithin bool
	}{
		{"", http.StatusOK, 4, false},
		{"?budget=80", http.StatusOK, 1, false},
		{"?budget=250&price_range=%24100-200", http.StatusOK, 2, true},
		{"?budget=50&price_range=%24100-200", http.StatusOK, 1, false},
		{"?budget=1000&price_range=cheap", http.StatusOK, 4, false},
		{"?budget=abc", http.StatusBadRequest, 0, false},
		{"?budget=-5", http.StatusBadRequest, 0, false},
	}

	srv := newTestServer(t, failingPlanner{}, loadedHealth())
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			t.Parallel()
			rec := do(t, srv, http.MethodGet, "/api/v1/planner/price-level"+tt.query, "")
			if rec.Code != tt.wantCode {
				t.Fatalf("status = %d, want %d; body = %s", rec.Code, tt.wantCode, rec.Body.String())
			}
			if tt.wantCode != http.StatusOK {
				return
			}
			var data PriceLevelResponse
			decodeData(t, decodeEnvelope(t, rec), &data)
			if data.PriceLevel != tt.wantLevel {
				t.Errorf("price_level = %d, want %d", data.PriceLevel, tt.wantLevel)
			}
			if data.WithinBudget != tt.wantWithin {
				t.Errorf("within_budget = %v, want %v", data.WithinBudget, tt.wantWithin)
			}
		})
	}
}

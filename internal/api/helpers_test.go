// Wanderlust - Travel Destination Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wanderlust

package api

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/wanderlust/internal/database"
	"github.com/tomtom215/wanderlust/internal/dataset"
	"github.com/tomtom215/wanderlust/internal/logging"
	"github.com/tomtom215/wanderlust/internal/recommend"
)

var testLoadedAt = time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)

type staticSource struct {
	snap *dataset.Snapshot
	err  error
}

func (s *staticSource) Snapshot() (*dataset.Snapshot, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.snap, nil
}

type stubHealth struct {
	h database.Health
}

func (s stubHealth) Health() database.Health { return s.h }

// failingPlanner returns err from every call.
type failingPlanner struct{ err error }

func (p failingPlanner) Rank(context.Context, recommend.RankRequest) (*recommend.RankResult, error) {
	return nil, p.err
}

func (p failingPlanner) Compare(context.Context, recommend.CompareRequest) (*recommend.CompareResult, error) {
	return nil, p.err
}

func (p failingPlanner) Options(context.Context) (*recommend.PlannerOptions, error) {
	return nil, p.err
}

func (p failingPlanner) Overview(context.Context) (*recommend.OverviewResult, error) {
	return nil, p.err
}

func testTrip(dest string, cost, days float64, accType, traveler string) dataset.Trip {
	return dataset.Trip{
		Destination:        dest,
		TravelerName:       traveler,
		AccommodationType:  accType,
		AccommodationCost:  dataset.Number(cost),
		TransportationCost: dataset.Number(cost / 2),
		Duration:           dataset.Number(days),
	}
}

func testCountry(name string, safety, cpi float64, alert, visa string) dataset.Country {
	return dataset.Country{
		Name:        name,
		Continent:   "Asia",
		CPI:         dataset.Number(cpi),
		PCE:         dataset.Number(cpi * 10),
		SafetyIndex: dataset.Number(safety),
		TravelAlert: dataset.Text(alert),
		VisaExempt:  dataset.Text(visa),
	}
}

// testSnapshot: A is safe, cheap and visa-exempt; B is less safe, pricier
// and needs a visa.
func testSnapshot() *dataset.Snapshot {
	return dataset.NewSnapshot(
		[]dataset.Trip{
			testTrip("A", 100, 2, "Hotel", "Ann"),
			testTrip("B", 400, 2, "Hostel", "Bob"),
		},
		[]dataset.Country{
			testCountry("A", 80, 100, "灰色", "yes"),
			testCountry("B", 40, 120, "黃色", "no"),
		},
		testLoadedAt,
	)
}

func newTestEngine(t *testing.T, src recommend.SnapshotSource) *recommend.Engine {
	t.Helper()
	engine, err := recommend.NewEngine(nil, src, logging.NewTestLogger(io.Discard))
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	return engine
}

func loadedHealth() stubHealth {
	at := testLoadedAt
	return stubHealth{h: database.Health{Loaded: true, Trips: 2, Countries: 2, Merged: 2, LoadedAt: &at}}
}

// newTestServer wires the full router with rate limiting disabled.
func newTestServer(t *testing.T, planner Planner, health HealthReporter) http.Handler {
	t.Helper()
	cfg := DefaultChiMiddlewareConfig()
	cfg.RateLimitDisabled = true
	return NewRouter(NewHandler(planner, health, time.Second, "test"), cfg).Setup()
}

func do(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var rdr io.Reader
	if body != "" {
		rdr = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, rdr)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

// envelope decodes the response envelope with Data left raw.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *APIError       `json:"error"`
	Meta    *APIMeta        `json:"meta"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode envelope: %v; body = %s", err, rec.Body.String())
	}
	return env
}

func decodeData(t *testing.T, env envelope, dst any) {
	t.Helper()
	if err := json.Unmarshal(env.Data, dst); err != nil {
		t.Fatalf("decode data: %v; data = %s", err, env.Data)
	}
}

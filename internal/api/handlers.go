// Wanderlust - Travel Destination Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wanderlust

package api

import (
	"context"
	"time"

	"github.com/tomtom215/wanderlust/internal/database"
	"github.com/tomtom215/wanderlust/internal/recommend"
)

// Planner is the subset of *recommend.Engine the handlers use.
type Planner interface {
	Rank(ctx context.Context, req recommend.RankRequest) (*recommend.RankResult, error)
	Compare(ctx context.Context, req recommend.CompareRequest) (*recommend.CompareResult, error)
	Options(ctx context.Context) (*recommend.PlannerOptions, error)
	Overview(ctx context.Context) (*recommend.OverviewResult, error)
}

// HealthReporter reports dataset load state; *database.Store implements it.
type HealthReporter interface {
	Health() database.Health
}

// DefaultRequestTimeout bounds planner calls when no timeout is configured.
const DefaultRequestTimeout = 10 * time.Second

// Handler serves the planner endpoints.
type Handler struct {
	planner   Planner
	health    HealthReporter
	timeout   time.Duration
	startTime time.Time
	version   string
}

// NewHandler creates a handler. A non-positive timeout uses
// DefaultRequestTimeout.
func NewHandler(planner Planner, health HealthReporter, timeout time.Duration, version string) *Handler {
	if timeout <= 0 {
		timeout = DefaultRequestTimeout
	}
	return &Handler{
		planner:   planner,
		health:    health,
		timeout:   timeout,
		startTime: time.Now(),
		version:   version,
	}
}

func (h *Handler) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, h.timeout)
}

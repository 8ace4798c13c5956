// Wanderlust - Travel Destination Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wanderlust

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/wanderlust/internal/database"
)

// HealthStatus is the body of GET /health.
type HealthStatus struct {
	Status  string          `json:"status"`
	Version string          `json:"version,omitempty"`
	Uptime  float64         `json:"uptime_seconds"`
	Dataset database.Health `json:"dataset"`
}

// Health reports the dataset state. It always answers 200; status is
// "degraded" until the first successful load or after a failed reload.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	ds := h.health.Health()
	status := "healthy"
	if !ds.Loaded || ds.LastError != "" {
		status = "degraded"
	}
	WriteSuccess(w, r, HealthStatus{
		Status:  status,
		Version: h.version,
		Uptime:  time.Since(h.startTime).Seconds(),
		Dataset: ds,
	})
}

// HealthLive answers 200 while the process is up.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, r, map[string]any{
		"alive":  true,
		"uptime": time.Since(h.startTime).Seconds(),
	})
}

// HealthReady answers 503 until a dataset snapshot is available.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	if !h.health.Health().Loaded {
		WriteError(w, r, http.StatusServiceUnavailable, ErrCodeServiceUnavailable, "Dataset is not loaded yet")
		return
	}
	WriteSuccess(w, r, map[string]any{"ready": true})
}

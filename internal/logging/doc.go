// Wanderlust - Travel Destination Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wanderlust

// Package logging provides the zerolog-based structured logger shared by every
// Wanderlust component.
//
// A single global logger is configured once from main via Init. Packages log
// through the package-level helpers or through a component sub-logger:
//
//	logging.Init(logging.Config{Level: "info", Format: "json"})
//	logging.Info().Int("trips", n).Msg("Dataset loaded")
//
//	plannerLog := logging.WithComponent("planner")
//	plannerLog.Debug().Str("status", "ok").Msg("Rank computed")
//
// # Request Context
//
// HTTP middleware stores a request ID in the request context. Ctx returns a
// logger that carries it automatically:
//
//	logging.Ctx(r.Context()).Warn().Err(err).Msg("Invalid rank request")
//
// # Supervisor Integration
//
// The suture supervisor tree reports lifecycle events through log/slog. NewSlogLogger
// returns an *slog.Logger whose records are written by the zerolog backend, so
// supervisor events share the same output format as the rest of the service.
package logging

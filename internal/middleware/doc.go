// Wanderlust - Travel Destination Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wanderlust

/*
Package middleware provides HTTP middleware shared by the API router.

Components:

  - RequestID: reuses or generates X-Request-ID and stores it in the context
    for logging.Ctx
  - PrometheusMetrics: request count, latency and in-flight gauge, labelled
    by the chi route pattern rather than the raw path
  - AccessLog: one structured log line per request, promoted to warn when the
    request exceeds the slow threshold

All middleware have the func(http.Handler) http.Handler shape used by chi:

	r.Use(middleware.RequestID)
	r.Use(middleware.AccessLog(time.Second))
	r.Use(middleware.PrometheusMetrics)
*/
package middleware

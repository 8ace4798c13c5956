// Wanderlust - Travel Destination Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wanderlust

/*
Package api exposes the destination planner over HTTP using the chi router.

Routes:

	GET  /api/v1/health                 dataset load state
	GET  /api/v1/health/live            liveness probe
	GET  /api/v1/health/ready           readiness probe (503 until the first load)
	GET  /api/v1/overview/stats         headline statistics and dashboard defaults
	GET  /api/v1/planner/options        form choices and defaults
	POST /api/v1/planner/rank           ranked destinations
	POST /api/v1/planner/compare        side-by-side comparison
	GET  /api/v1/planner/price-level    budget to price level mapping
	GET  /metrics                       Prometheus exposition

Every JSON endpoint answers with the APIResponse envelope:

	{"success": true, "data": {...}, "meta": {"request_id": "...", "timestamp": "..."}}
	{"success": false, "error": {"code": "VALIDATION_ERROR", "message": "..."}}

Middleware order: request ID, real IP, panic recovery, CORS, then per-group
rate limiting, security headers, metrics and access logging.
*/
package api

// Wanderlust - Travel Destination Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wanderlust

/*
Package metrics defines the Prometheus instrumentation for Wanderlust.

All collectors are registered on the default registry through promauto and are
exposed by the API router at /metrics.

# Metric Families

Dataset loading (DuckDB CSV ingestion):

	wanderlust_dataset_load_duration_seconds{table}
	wanderlust_dataset_load_errors_total{table}
	wanderlust_dataset_rows{table}
	wanderlust_dataset_last_load_timestamp_seconds

Planner:

	wanderlust_planner_rank_duration_seconds
	wanderlust_planner_rank_results_total{status}
	wanderlust_planner_stage_rows{stage}
	wanderlust_planner_compare_total
	wanderlust_planner_cache_hits_total / _misses_total

HTTP API:

	api_requests_total{method,endpoint,status_code}
	api_request_duration_seconds{method,endpoint}
	api_active_requests
	api_rate_limit_hits_total{endpoint}

Helpers such as RecordAPIRequest and RecordRank keep label handling in one
place so callers never build label values by hand.
*/
package metrics

// Wanderlust - Travel Destination Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wanderlust

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Dataset Metrics
	DatasetLoadDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "wanderlust_dataset_load_duration_seconds",
			Help:    "Duration of CSV ingestion through DuckDB in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"table"},
	)

	DatasetLoadErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wanderlust_dataset_load_errors_total",
			Help: "Total number of failed table loads",
		},
		[]string{"table"},
	)

	DatasetRows = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "wanderlust_dataset_rows",
			Help: "Rows held by the current dataset snapshot",
		},
		[]string{"table"}, // "trips", "countries", "merged"
	)

	DatasetLastLoad = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "wanderlust_dataset_last_load_timestamp_seconds",
			Help: "Unix time of the last successful dataset load",
		},
	)

	// Planner Metrics
	PlannerRankDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "wanderlust_planner_rank_duration_seconds",
			Help:    "Time to compute a ranking, cache hits included",
			Buckets: []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 1},
		},
	)

	PlannerRankResults = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wanderlust_planner_rank_results_total",
			Help: "Ranking queries by outcome",
		},
		[]string{"status"}, // "ok", "no_trips", "filtered_out", "error"
	)

	PlannerStageRows = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "wanderlust_planner_stage_rows",
			Help:    "Rows surviving each pipeline stage",
			Buckets: prometheus.ExponentialBuckets(1, 4, 8),
		},
		[]string{"stage"},
	)

	PlannerCompareTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "wanderlust_planner_compare_total",
			Help: "Total number of comparison queries",
		},
	)

	PlannerCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "wanderlust_planner_cache_hits_total",
			Help: "Ranking queries served from cache",
		},
	)

	PlannerCacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "wanderlust_planner_cache_misses_total",
			Help: "Ranking queries computed from scratch",
		},
	)

	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	APIRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_rate_limit_hits_total",
			Help: "Total number of rate limit rejections",
		},
		[]string{"endpoint"},
	)
)

// RecordDatasetLoad records one table load.
func RecordDatasetLoad(table string, rows int, duration time.Duration, err error) {
	DatasetLoadDuration.WithLabelValues(table).Observe(duration.Seconds())
	if err != nil {
		DatasetLoadErrors.WithLabelValues(table).Inc()
		return
	}
	DatasetRows.WithLabelValues(table).Set(float64(rows))
}

// RecordSnapshot publishes the sizes of a freshly installed snapshot.
func RecordSnapshot(trips, countries, merged int, loadedAt time.Time) {
	DatasetRows.WithLabelValues("trips").Set(float64(trips))
	DatasetRows.WithLabelValues("countries").Set(float64(countries))
	DatasetRows.WithLabelValues("merged").Set(float64(merged))
	DatasetLastLoad.Set(float64(loadedAt.Unix()))
}

// RecordRank records a ranking query outcome.
func RecordRank(status string, duration time.Duration, cacheHit bool) {
	PlannerRankDuration.Observe(duration.Seconds())
	PlannerRankResults.WithLabelValues(status).Inc()
	if cacheHit {
		PlannerCacheHits.Inc()
	} else {
		PlannerCacheMisses.Inc()
	}
}

// RecordStageRows records how many rows a pipeline stage produced.
func RecordStageRows(stage string, rows int) {
	PlannerStageRows.WithLabelValues(stage).Observe(float64(rows))
}

// RecordAPIRequest records an API request metric.
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest increments or decrements the in-flight gauge.
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

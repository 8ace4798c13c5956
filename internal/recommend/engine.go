// Wanderlust - Travel Destination Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wanderlust

package recommend

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/wanderlust/internal/cache"
	"github.com/tomtom215/wanderlust/internal/dataset"
	"github.com/tomtom215/wanderlust/internal/logging"
	"github.com/tomtom215/wanderlust/internal/metrics"
)

// SnapshotSource supplies the current base tables. It is typically the
// database store, which swaps snapshots atomically on reload.
type SnapshotSource interface {
	Snapshot() (*dataset.Snapshot, error)
}

// Engine answers planner queries against the current snapshot.
// It is safe for concurrent use.
type Engine struct {
	config *Config
	scale  AlertScale
	logger zerolog.Logger
	source SnapshotSource

	// nil when caching is disabled
	cache *cache.LRU[*RankResult]

	requestCount atomic.Int64
	cacheHits    atomic.Int64
	cacheMisses  atomic.Int64
	errorCount   atomic.Int64
}

// EngineMetrics is a point-in-time view of the engine counters.
type EngineMetrics struct {
	Requests    int64 `json:"requests"`
	CacheHits   int64 `json:"cache_hits"`
	CacheMisses int64 `json:"cache_misses"`
	Errors      int64 `json:"errors"`
	CacheSize   int   `json:"cache_size"`
}

// NewEngine creates a planner engine.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(cfg *Config, source SnapshotSource, logger zerolog.Logger) (*Engine, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if source == nil {
		return nil, fmt.Errorf("snapshot source is required")
	}

	e := &Engine{
		config: cfg.Clone(),
		scale:  cfg.Scale(),
		logger: logger.With().Str("component", "planner").Logger(),
		source: source,
	}
	if cfg.Cache.Enabled {
		e.cache = cache.NewLRU[*RankResult](cfg.Cache.MaxEntries, cfg.Cache.TTL)
	}
	return e, nil
}

// Rank filters, scores and orders destinations for the request.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) Rank(ctx context.Context, req RankRequest) (*RankResult, error) {
	start := time.Now()
	e.requestCount.Add(1)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	snap, err := e.source.Snapshot()
	if err != nil {
		e.errorCount.Add(1)
		metrics.PlannerRankResults.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("get snapshot: %w", err)
	}

	requestID := logging.RequestIDFromContext(ctx)
	logger := e.logger.With().Str("request_id", requestID).Logger()

	key := rankCacheKey(req, snap.LoadedAt)
	if e.cache != nil {
		if cached, ok := e.cache.Get(key); ok {
			e.cacheHits.Add(1)
			out := *cached
			out.Metadata.RequestID = requestID
			out.Metadata.CacheHit = true
			out.Metadata.LatencyMS = time.Since(start).Milliseconds()
			metrics.RecordRank(out.Status.String(), time.Since(start), true)
			logger.Debug().Str("status", out.Status.String()).Msg("rank served from cache")
			return &out, nil
		}
		e.cacheMisses.Add(1)
	}

	result, counts := Plan(snap, req, e.scale, e.config.Limits.TopN)
	result.Metadata = ResultMetadata{
		RequestID:       requestID,
		MatchedTrips:    counts.MatchedTrips,
		MatchedCountry:  counts.MatchedCountries,
		LatencyMS:       time.Since(start).Milliseconds(),
		DatasetLoadedAt: snap.LoadedAt,
	}

	if e.cache != nil {
		stored := result
		e.cache.Add(key, &stored)
	}

	metrics.RecordStageRows("matched_trips", counts.MatchedTrips)
	metrics.RecordStageRows("matched_countries", counts.MatchedCountries)
	metrics.RecordStageRows("country_level", counts.CountryLevel)
	metrics.RecordStageRows("alert_filtered", counts.AlertFiltered)
	metrics.RecordStageRows("ranked", counts.Ranked)
	metrics.RecordRank(result.Status.String(), time.Since(start), false)

	logger.Debug().
		Str("status", result.Status.String()).
		Int("matched_trips", counts.MatchedTrips).
		Int("ranked", counts.Ranked).
		Int64("latency_ms", result.Metadata.LatencyMS).
		Msg("rank complete")

	return &result, nil
}

// rankCacheKey includes the snapshot load time so a reload never serves
// results computed from the previous tables.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func rankCacheKey(req RankRequest, loadedAt time.Time) string {
	return cache.GenerateKey("rank", struct {
		Request  RankRequest `json:"request"`
		LoadedAt int64       `json:"loaded_at"`
	}{req, loadedAt.UnixNano()})
}

// Compare builds the side-by-side table for the requested countries. An empty
// metric list selects every metric.
func (e *Engine) Compare(ctx context.Context, req CompareRequest) (*CompareResult, error) {
	e.requestCount.Add(1)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	snap, err := e.source.Snapshot()
	if err != nil {
		e.errorCount.Add(1)
		return nil, fmt.Errorf("get snapshot: %w", err)
	}

	m := req.Metrics
	if len(m) == 0 {
		m = AllMetrics
	}
	result := BuildComparison(req.Countries, m, snap.Merged, e.config.Limits.MaxCompare)
	metrics.PlannerCompareTotal.Inc()

	e.logger.Debug().
		Str("request_id", logging.RequestIDFromContext(ctx)).
		Strs("countries", result.Countries).
		Msg("compare complete")

	return &result, nil
}

// Options returns the planner form choices for the current snapshot.
func (e *Engine) Options(ctx context.Context) (*PlannerOptions, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	snap, err := e.source.Snapshot()
	if err != nil {
		return nil, fmt.Errorf("get snapshot: %w", err)
	}
	opts := BuildOptions(snap, e.scale, e.config)
	return &opts, nil
}

// Overview returns the headline statistics and dashboard defaults.
func (e *Engine) Overview(ctx context.Context) (*OverviewResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	snap, err := e.source.Snapshot()
	if err != nil {
		return nil, fmt.Errorf("get snapshot: %w", err)
	}
	return &OverviewResult{
		Stats:    dataset.ComputeOverview(snap.Trips),
		Defaults: dataset.ComputeDashboardDefaults(snap.Merged),
	}, nil
}

// InvalidateCache drops every cached ranking.
func (e *Engine) InvalidateCache() {
	if e.cache != nil {
		e.cache.Purge()
	}
}

// GetMetrics returns the engine counters.
func (e *Engine) GetMetrics() EngineMetrics {
	m := EngineMetrics{
		Requests:    e.requestCount.Load(),
		CacheHits:   e.cacheHits.Load(),
		CacheMisses: e.cacheMisses.Load(),
		Errors:      e.errorCount.Load(),
	}
	if e.cache != nil {
		m.CacheSize = e.cache.Len()
	}
	return m
}

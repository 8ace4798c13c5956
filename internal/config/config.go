// Wanderlust - Travel Destination Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wanderlust

package config

import (
	"time"

	"github.com/tomtom215/wanderlust/internal/recommend"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig   `koanf:"server"`
	Data     DataConfig     `koanf:"data"`
	Planner  PlannerConfig  `koanf:"planner"`
	Security SecurityConfig `koanf:"security"`
	Logging  LoggingConfig  `koanf:"logging"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port            int           `koanf:"port"`
	Host            string        `koanf:"host"`
	Timeout         time.Duration `koanf:"timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// DataConfig locates the source CSVs and tunes the DuckDB instance that
// ingests them.
type DataConfig struct {
	TripsPath     string `koanf:"trips_path"`
	CountriesPath string `koanf:"countries_path"`

	// ReloadSchedule is a five-field cron expression. Empty disables
	// scheduled reloads; the data is then loaded once at startup.
	ReloadSchedule string `koanf:"reload_schedule"`

	// Threads is the DuckDB worker count. 0 = runtime.NumCPU().
	Threads int `koanf:"duckdb_threads"`

	// MaxMemory is the DuckDB memory limit, e.g. "512MB".
	MaxMemory string `koanf:"max_memory"`
}

// PlannerConfig holds ranking engine settings.
type PlannerConfig struct {
	TopN          int            `koanf:"top_n"`
	MaxCompare    int            `koanf:"max_compare"`
	WeightSafety  float64        `koanf:"weight_safety"`
	WeightCost    float64        `koanf:"weight_cost"`
	CacheEnabled  bool           `koanf:"cache_enabled"`
	CacheTTL      time.Duration  `koanf:"cache_ttl"`
	CacheSize     int            `koanf:"cache_size"`
	DefaultAlert  int            `koanf:"default_alert_rank"`
	AlertRankings map[string]int `koanf:"alert_ranks"`
}

// SecurityConfig holds CORS and rate limiting settings.
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	// Default: info
	Level string `koanf:"level"`

	// Format is the output format: json or console.
	// Default: json
	Format string `koanf:"format"`

	// Caller includes caller file and line number in logs.
	// Default: false
	Caller bool `koanf:"caller"`
}

// EngineConfig converts the planner section into the engine's configuration.
func (p *PlannerConfig) EngineConfig() *recommend.Config {
	cfg := recommend.DefaultConfig()
	cfg.Limits.TopN = p.TopN
	cfg.Limits.MaxCompare = p.MaxCompare
	cfg.Weights.Safety = p.WeightSafety
	cfg.Weights.Cost = p.WeightCost
	cfg.Cache.Enabled = p.CacheEnabled
	cfg.Cache.TTL = p.CacheTTL
	cfg.Cache.MaxEntries = p.CacheSize
	if len(p.AlertRankings) > 0 {
		cfg.Alerts.Ranks = make(map[string]int, len(p.AlertRankings))
		for k, v := range p.AlertRankings {
			cfg.Alerts.Ranks[k] = v
		}
	}
	if p.DefaultAlert > 0 {
		cfg.Alerts.DefaultRank = p.DefaultAlert
	}
	return cfg
}

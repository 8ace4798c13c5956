// Wanderlust - Travel Destination Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wanderlust

package config

import (
	"strings"
	"testing"
	"time"
)

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"defaults", func(*Config) {}, ""},
		{"port zero", func(c *Config) { c.Server.Port = 0 }, "HTTP_PORT"},
		{"port too high", func(c *Config) { c.Server.Port = 70000 }, "HTTP_PORT"},
		{"no timeout", func(c *Config) { c.Server.Timeout = 0 }, "HTTP_TIMEOUT"},
		{"no trips path", func(c *Config) { c.Data.TripsPath = " " }, "TRIPS_CSV"},
		{"no countries path", func(c *Config) { c.Data.CountriesPath = "" }, "COUNTRIES_CSV"},
		{"negative threads", func(c *Config) { c.Data.Threads = -1 }, "DUCKDB_THREADS"},
		{"bad cron", func(c *Config) { c.Data.ReloadSchedule = "every day" }, "DATA_RELOAD_SCHEDULE"},
		{"good cron", func(c *Config) { c.Data.ReloadSchedule = "@hourly" }, ""},
		{"weight out of range", func(c *Config) { c.Planner.WeightSafety = 11 }, "planner"},
		{"top n zero", func(c *Config) { c.Planner.TopN = 0 }, "planner"},
		{"cache ttl zero", func(c *Config) { c.Planner.CacheTTL = 0 }, "planner"},
		{"cache off ignores ttl", func(c *Config) { c.Planner.CacheEnabled = false; c.Planner.CacheTTL = 0 }, ""},
		{"rate limit zero", func(c *Config) { c.Security.RateLimitReqs = 0 }, "RATE_LIMIT_REQUESTS"},
		{"rate limit disabled", func(c *Config) { c.Security.RateLimitDisabled = true; c.Security.RateLimitReqs = 0 }, ""},
		{"rate window zero", func(c *Config) { c.Security.RateLimitWindow = -time.Second }, "RATE_LIMIT_WINDOW"},
		{"log level", func(c *Config) { c.Logging.Level = "verbose" }, "LOG_LEVEL"},
		{"log format", func(c *Config) { c.Logging.Format = "xml" }, "LOG_FORMAT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := defaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			switch {
			case tt.wantErr == "" && err != nil:
				t.Errorf("Validate() = %v, want nil", err)
			case tt.wantErr != "" && err == nil:
				t.Errorf("Validate() = nil, want error containing %q", tt.wantErr)
			case tt.wantErr != "" && !strings.Contains(err.Error(), tt.wantErr):
				t.Errorf("Validate() = %v, want error containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestEngineConfig(t *testing.T) {
	t.Parallel()

	p := defaultConfig().Planner
	p.CacheSize = 42
	p.DefaultAlert = 4

	cfg := p.EngineConfig()
	if cfg.Cache.MaxEntries != 42 {
		t.Errorf("Cache.MaxEntries = %d, want 42", cfg.Cache.MaxEntries)
	}
	if cfg.Alerts.DefaultRank != 4 {
		t.Errorf("Alerts.DefaultRank = %d, want 4", cfg.Alerts.DefaultRank)
	}
	if cfg.Alerts.Ranks["橙色"] != 4 {
		t.Errorf("default ranks not kept: %v", cfg.Alerts.Ranks)
	}
	if cfg.Weights.Safety != 7 || cfg.Weights.Cost != 8 {
		t.Errorf("Weights = %+v, want 7/8", cfg.Weights)
	}
}

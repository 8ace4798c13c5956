// Wanderlust - Travel Destination Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wanderlust

package recommend

import (
	"fmt"
	"maps"
	"time"
)

// Config contains all configuration for the planner engine.
type Config struct {
	// Limits contains result size limits.
	Limits LimitsConfig `json:"limits"`

	// Weights are the form defaults offered to clients. They are not applied
	// to requests that omit a weight; a missing weight counts as zero.
	Weights WeightDefaults `json:"weights"`

	// Alerts maps advisory labels to risk tiers.
	Alerts AlertConfig `json:"alerts"`

	// Cache contains rank result caching parameters.
	Cache CacheConfig `json:"cache"`
}

// LimitsConfig bounds result sizes.
type LimitsConfig struct {
	// TopN is the size of the comparison set taken from the ranking.
	// Default: 5.
	TopN int `json:"top_n"`

	// MaxCompare caps the number of countries in one comparison.
	// Default: 5.
	MaxCompare int `json:"max_compare"`
}

// WeightDefaults are the initial slider positions, each in [0, 10].
type WeightDefaults struct {
	Safety float64 `json:"safety"`
	Cost   float64 `json:"cost"`
}

// AlertConfig defines the advisory label ranking. Lower ranks are safer.
type AlertConfig struct {
	Ranks       map[string]int `json:"ranks"`
	DefaultRank int            `json:"default_rank"`
}

// CacheConfig controls the rank result cache.
type CacheConfig struct {
	// Enabled turns caching on.
	// Default: true.
	Enabled bool `json:"enabled"`

	// TTL is the cache entry time-to-live.
	// Default: 5m.
	TTL time.Duration `json:"ttl"`

	// MaxEntries is the maximum number of cached results.
	// Default: 1000.
	MaxEntries int `json:"max_entries"`
}

// DefaultAlertRanks is the standard advisory scale: grey, yellow, orange.
func DefaultAlertRanks() map[string]int {
	return map[string]int{"灰色": 2, "黃色": 3, "橙色": 4}
}

// DefaultConfig returns a Config with production defaults.
func DefaultConfig() *Config {
	return &Config{
		Limits: LimitsConfig{
			TopN:       5,
			MaxCompare: 5,
		},
		Weights: WeightDefaults{
			Safety: 7,
			Cost:   8,
		},
		Alerts: AlertConfig{
			Ranks:       DefaultAlertRanks(),
			DefaultRank: 3,
		},
		Cache: CacheConfig{
			Enabled:    true,
			TTL:        5 * time.Minute,
			MaxEntries: 1000,
		},
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.Limits.TopN < 1 {
		return fmt.Errorf("limits.top_n must be positive, got %d", c.Limits.TopN)
	}
	if c.Limits.MaxCompare < 1 {
		return fmt.Errorf("limits.max_compare must be positive, got %d", c.Limits.MaxCompare)
	}
	if c.Weights.Safety < 0 || c.Weights.Safety > 10 {
		return fmt.Errorf("weights.safety must be in [0, 10], got %v", c.Weights.Safety)
	}
	if c.Weights.Cost < 0 || c.Weights.Cost > 10 {
		return fmt.Errorf("weights.cost must be in [0, 10], got %v", c.Weights.Cost)
	}
	if len(c.Alerts.Ranks) == 0 {
		return fmt.Errorf("alerts.ranks must not be empty")
	}
	if c.Cache.Enabled {
		if c.Cache.TTL <= 0 {
			return fmt.Errorf("cache.ttl must be positive when caching is enabled, got %v", c.Cache.TTL)
		}
		if c.Cache.MaxEntries < 1 {
			return fmt.Errorf("cache.max_entries must be positive when caching is enabled, got %d", c.Cache.MaxEntries)
		}
	}
	return nil
}

// Clone returns a deep copy of the configuration.
func (c *Config) Clone() *Config {
	out := *c
	out.Alerts.Ranks = maps.Clone(c.Alerts.Ranks)
	return &out
}

// Scale returns the alert scale described by the configuration.
func (c *Config) Scale() AlertScale {
	return NewAlertScale(c.Alerts.Ranks, c.Alerts.DefaultRank)
}

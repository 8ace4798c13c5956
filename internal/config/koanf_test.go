// Wanderlust - Travel Destination Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wanderlust

package config

import (
	"os"
	"path/filepath"
	"slices"
	"testing"
	"time"
)

// isolateEnv points config discovery at an empty directory so a developer's
// local config.yaml or .env cannot leak into tests.
func isolateEnv(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv(ConfigPathEnvVar, filepath.Join(dir, "absent.yaml"))
	t.Setenv(DotenvPathEnvVar, "")
	t.Chdir(dir)
	return dir
}

// TestDefaultConfig verifies that defaultConfig() returns proper defaults
func TestDefaultConfig(t *testing.T) {
	cfg := defaultConfig()

	if cfg.Server.Port != 8050 {
		t.Errorf("Server.Port = %d, want 8050", cfg.Server.Port)
	}
	if cfg.Data.MaxMemory != "512MB" {
		t.Errorf("Data.MaxMemory = %q, want 512MB", cfg.Data.MaxMemory)
	}
	if cfg.Data.ReloadSchedule != "" {
		t.Errorf("Data.ReloadSchedule = %q, want empty", cfg.Data.ReloadSchedule)
	}
	if cfg.Planner.WeightSafety != 7 || cfg.Planner.WeightCost != 8 {
		t.Errorf("Planner weights = %v/%v, want 7/8", cfg.Planner.WeightSafety, cfg.Planner.WeightCost)
	}
	if cfg.Planner.TopN != 5 || cfg.Planner.MaxCompare != 5 {
		t.Errorf("Planner limits = %d/%d, want 5/5", cfg.Planner.TopN, cfg.Planner.MaxCompare)
	}
	if len(cfg.Security.CORSOrigins) != 1 || cfg.Security.CORSOrigins[0] != "*" {
		t.Errorf("Security.CORSOrigins = %v, want [*]", cfg.Security.CORSOrigins)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Logging.Level = %q, want info", cfg.Logging.Level)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaultConfig().Validate() = %v", err)
	}
}

// TestEnvTransformFunc verifies environment variable name transformations
func TestEnvTransformFunc(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"HTTP_PORT", "server.port"},
		{"TRIPS_CSV", "data.trips_path"},
		{"COUNTRIES_CSV", "data.countries_path"},
		{"DATA_RELOAD_SCHEDULE", "data.reload_schedule"},
		{"DUCKDB_MAX_MEMORY", "data.max_memory"},
		{"PLANNER_WEIGHT_SAFETY", "planner.weight_safety"},
		{"DISABLE_RATE_LIMIT", "security.rate_limit_disabled"},
		{"LOG_LEVEL", "logging.level"},
		{"log_format", "logging.format"},
		{"PATH", ""},
		{"HOME", ""},
	}

	for _, tt := range tests {
		if got := envTransformFunc(tt.input); got != tt.expected {
			t.Errorf("envTransformFunc(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestLoadWithKoanf_Defaults(t *testing.T) {
	isolateEnv(t)

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}
	if cfg.Server.Port != 8050 {
		t.Errorf("Server.Port = %d, want 8050", cfg.Server.Port)
	}
	if cfg.Planner.CacheTTL != 5*time.Minute {
		t.Errorf("Planner.CacheTTL = %v, want 5m", cfg.Planner.CacheTTL)
	}
}

func TestLoadWithKoanf_EnvOverrides(t *testing.T) {
	isolateEnv(t)
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("TRIPS_CSV", "/srv/trips.csv")
	t.Setenv("PLANNER_WEIGHT_COST", "2.5")
	t.Setenv("PLANNER_CACHE_TTL", "90s")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("DATA_RELOAD_SCHEDULE", "0 */6 * * *")

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d, want 9090", cfg.Server.Port)
	}
	if cfg.Data.TripsPath != "/srv/trips.csv" {
		t.Errorf("Data.TripsPath = %q, want /srv/trips.csv", cfg.Data.TripsPath)
	}
	if cfg.Planner.WeightCost != 2.5 {
		t.Errorf("Planner.WeightCost = %v, want 2.5", cfg.Planner.WeightCost)
	}
	if cfg.Planner.CacheTTL != 90*time.Second {
		t.Errorf("Planner.CacheTTL = %v, want 90s", cfg.Planner.CacheTTL)
	}
	want := []string{"https://a.example", "https://b.example"}
	if !slices.Equal(cfg.Security.CORSOrigins, want) {
		t.Errorf("Security.CORSOrigins = %v, want %v", cfg.Security.CORSOrigins, want)
	}
	if cfg.Data.ReloadSchedule != "0 */6 * * *" {
		t.Errorf("Data.ReloadSchedule = %q", cfg.Data.ReloadSchedule)
	}
}

func TestLoadWithKoanf_File(t *testing.T) {
	dir := isolateEnv(t)

	path := filepath.Join(dir, "config.yaml")
	content := `server:
  port: 7000
data:
  countries_path: /srv/countries.csv
planner:
  top_n: 3
  alert_ranks:
    灰色: 1
    紅色: 5
logging:
  format: console
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv(ConfigPathEnvVar, path)
	t.Setenv("HTTP_PORT", "7001")

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}
	if cfg.Server.Port != 7001 {
		t.Errorf("Server.Port = %d, want 7001 (env beats file)", cfg.Server.Port)
	}
	if cfg.Data.CountriesPath != "/srv/countries.csv" {
		t.Errorf("Data.CountriesPath = %q", cfg.Data.CountriesPath)
	}
	if cfg.Planner.TopN != 3 {
		t.Errorf("Planner.TopN = %d, want 3", cfg.Planner.TopN)
	}
	if cfg.Logging.Format != "console" {
		t.Errorf("Logging.Format = %q, want console", cfg.Logging.Format)
	}

	engine := cfg.Planner.EngineConfig()
	if engine.Limits.TopN != 3 {
		t.Errorf("EngineConfig TopN = %d, want 3", engine.Limits.TopN)
	}
	if engine.Alerts.Ranks["紅色"] != 5 || engine.Alerts.Ranks["灰色"] != 1 {
		t.Errorf("EngineConfig ranks = %v", engine.Alerts.Ranks)
	}
}

func TestLoadWithKoanf_Dotenv(t *testing.T) {
	dir := isolateEnv(t)

	const key = "PLANNER_MAX_COMPARE"
	if _, set := os.LookupEnv(key); set {
		t.Skipf("%s already set in the environment", key)
	}
	t.Cleanup(func() { _ = os.Unsetenv(key) })

	path := filepath.Join(dir, "custom.env")
	if err := os.WriteFile(path, []byte(key+"=4\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv(DotenvPathEnvVar, path)

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}
	if cfg.Planner.MaxCompare != 4 {
		t.Errorf("Planner.MaxCompare = %d, want 4", cfg.Planner.MaxCompare)
	}
}

func TestLoadWithKoanf_MissingExplicitDotenv(t *testing.T) {
	dir := isolateEnv(t)
	t.Setenv(DotenvPathEnvVar, filepath.Join(dir, "nope.env"))

	if _, err := LoadWithKoanf(); err == nil {
		t.Error("LoadWithKoanf() error = nil, want error for missing DOTENV_PATH")
	}
}

func TestLoadWithKoanf_InvalidFails(t *testing.T) {
	isolateEnv(t)
	t.Setenv("LOG_LEVEL", "loud")

	if _, err := LoadWithKoanf(); err == nil {
		t.Error("LoadWithKoanf() error = nil, want validation error")
	}
}

// Wanderlust - Travel Destination Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wanderlust

/*
Package config loads Wanderlust configuration.

Configuration is layered with Koanf v2, later layers overriding earlier ones:

 1. Built-in defaults (defaultConfig)
 2. An optional YAML file, located through CONFIG_PATH or DefaultConfigPaths
 3. Environment variables, mapped explicitly by envTransformFunc

Before the layers are read, a .env file in the working directory (or the file
named by DOTENV_PATH) is loaded into the process environment with godotenv.
Variables already set in the environment are never overwritten.

# Environment Variables

	HTTP_HOST, HTTP_PORT, HTTP_TIMEOUT, SHUTDOWN_TIMEOUT
	TRIPS_CSV, COUNTRIES_CSV, DATA_RELOAD_SCHEDULE
	DUCKDB_THREADS, DUCKDB_MAX_MEMORY
	PLANNER_TOP_N, PLANNER_MAX_COMPARE
	PLANNER_WEIGHT_SAFETY, PLANNER_WEIGHT_COST
	PLANNER_CACHE_ENABLED, PLANNER_CACHE_TTL, PLANNER_CACHE_SIZE
	CORS_ORIGINS (comma separated), RATE_LIMIT_REQUESTS, RATE_LIMIT_WINDOW,
	DISABLE_RATE_LIMIT
	LOG_LEVEL, LOG_FORMAT, LOG_CALLER

# Example

	cfg, err := config.LoadWithKoanf()
	if err != nil {
	    log.Fatal(err)
	}
	engineCfg := cfg.Planner.EngineConfig()
*/
package config

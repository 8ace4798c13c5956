// Wanderlust - Travel Destination Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wanderlust

/*
Command server runs the Wanderlust destination planner API.

Startup order:

 1. Configuration: .env (godotenv), then defaults, config.yaml and environment
    variables (koanf)
 2. Logging: zerolog, configured from LOG_LEVEL, LOG_FORMAT and LOG_CALLER
 3. Database: in-memory DuckDB used to read the trip and country CSVs
 4. Dataset: initial load into the snapshot store; a failure is logged and
    the server starts degraded (ready probe answers 503)
 5. Planner engine: ranking cache invalidated on every reload
 6. Supervisor tree: dataset reload service (cron) and HTTP server

Common settings:

	HTTP_PORT=8050
	TRIPS_CSV="data/Travel details dataset.csv"
	COUNTRIES_CSV=data/country_info.csv
	DATA_RELOAD_SCHEDULE="0 * * * *"
	CORS_ORIGINS=https://planner.example.com
	LOG_LEVEL=debug LOG_FORMAT=console

SIGINT and SIGTERM cancel the root context; the HTTP server drains within
SHUTDOWN_TIMEOUT and the database is closed last.
*/
package main

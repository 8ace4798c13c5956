// Wanderlust - Travel Destination Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wanderlust

package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tomtom215/wanderlust/internal/api"
	"github.com/tomtom215/wanderlust/internal/config"
	"github.com/tomtom215/wanderlust/internal/database"
	"github.com/tomtom215/wanderlust/internal/dataset"
	"github.com/tomtom215/wanderlust/internal/logging"
	"github.com/tomtom215/wanderlust/internal/recommend"
	"github.com/tomtom215/wanderlust/internal/supervisor"
	"github.com/tomtom215/wanderlust/internal/supervisor/services"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	if err := run(); err != nil {
		logging.Fatal().Err(err).Msg("Server failed")
	}
}

func run() error {
	cfg, err := config.LoadWithKoanf()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
	})
	logging.Info().
		Str("version", version).
		Str("trips", cfg.Data.TripsPath).
		Str("countries", cfg.Data.CountriesPath).
		Str("reload_schedule", cfg.Data.ReloadSchedule).
		Msg("Starting Wanderlust")

	db, err := database.New(&cfg.Data)
	if err != nil {
		return fmt.Errorf("initialize database: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing database")
		}
	}()

	store := database.NewStore(db, cfg.Data.TripsPath, cfg.Data.CountriesPath)

	engine, err := recommend.NewEngine(cfg.Planner.EngineConfig(), store, logging.WithComponent("planner"))
	if err != nil {
		return fmt.Errorf("create planner engine: %w", err)
	}
	store.OnReload(func(*dataset.Snapshot) { engine.InvalidateCache() })

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	loadCtx, loadCancel := context.WithTimeout(ctx, 2*time.Minute)
	_, loadErr := store.Reload(loadCtx)
	if loadErr != nil {
		logging.Error().Err(loadErr).Msg("Initial dataset load failed; serving degraded until the next reload")
	}
	loadCancel()

	tree, err := buildTree(cfg, store, engine, loadErr == nil)
	if err != nil {
		return err
	}

	logging.Info().Str("addr", listenAddr(&cfg.Server)).Msg("Starting supervisor tree")
	if err := tree.Run(ctx); err != nil {
		logging.Error().Err(err).Msg("Supervisor tree stopped")
	}

	if unstopped, _ := tree.UnstoppedServiceReport(); len(unstopped) > 0 {
		for _, svc := range unstopped {
			logging.Warn().Str("service", svc.Name).Msg("Service failed to stop within timeout")
		}
	}

	logging.Info().Msg("Stopped")
	return nil
}

func buildTree(cfg *config.Config, store *database.Store, engine *recommend.Engine, loaded bool) (*supervisor.SupervisorTree, error) {
	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	})
	if err != nil {
		return nil, fmt.Errorf("create supervisor tree: %w", err)
	}

	reload, err := services.NewReloadService(
		services.ReloadFunc(func(ctx context.Context) error {
			_, err := store.Reload(ctx)
			return err
		}),
		reloadConfig(&cfg.Data, loaded),
		logging.WithComponent("supervisor"),
	)
	if err != nil {
		return nil, err
	}
	tree.AddDataService(reload)

	handler := api.NewHandler(engine, store, cfg.Server.Timeout, version)
	router := api.NewRouter(handler, api.ChiMiddlewareConfigFrom(&cfg.Security))

	server := &http.Server{
		Addr:              listenAddr(&cfg.Server),
		Handler:           router.Setup(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.Server.Timeout,
		WriteTimeout:      cfg.Server.Timeout + 5*time.Second,
		IdleTimeout:       2 * time.Minute,
	}
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))

	return tree, nil
}

// reloadConfig retries the load as soon as the reload service starts when the
// initial load failed, rather than waiting for the first scheduled run.
func reloadConfig(d *config.DataConfig, loaded bool) services.ReloadServiceConfig {
	return services.ReloadServiceConfig{
		Schedule:      d.ReloadSchedule,
		ReloadOnStart: !loaded,
	}
}

func listenAddr(s *config.ServerConfig) string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

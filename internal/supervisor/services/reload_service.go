// Wanderlust - Travel Destination Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wanderlust

package services

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

// DatasetReloader re-reads the source CSVs. The server adapts
// (*database.Store).Reload to it with ReloadFunc.
type DatasetReloader interface {
	Reload(ctx context.Context) error
}

// ReloadFunc adapts a function to DatasetReloader.
type ReloadFunc func(ctx context.Context) error

// Reload calls f(ctx).
func (f ReloadFunc) Reload(ctx context.Context) error { return f(ctx) }

// ReloadServiceConfig controls when the dataset is reloaded.
type ReloadServiceConfig struct {
	// Schedule is a standard five-field cron expression or descriptor
	// such as "@hourly". Empty disables scheduled reloads.
	Schedule string

	// ReloadOnStart reloads once when the service starts.
	ReloadOnStart bool

	// Timeout bounds a single reload. Default: 2m.
	Timeout time.Duration
}

// ReloadService reloads the dataset on a cron schedule. Overlapping runs are
// skipped, and a failed reload keeps the previous snapshot in place.
type ReloadService struct {
	reloader DatasetReloader
	config   ReloadServiceConfig
	logger   zerolog.Logger

	runs     atomic.Int64
	failures atomic.Int64
}

// NewReloadService validates the schedule and builds the service.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewReloadService(reloader DatasetReloader, cfg ReloadServiceConfig, logger zerolog.Logger) (*ReloadService, error) {
	if reloader == nil {
		return nil, fmt.Errorf("reload service: reloader is required")
	}
	if cfg.Schedule != "" {
		if _, err := cron.ParseStandard(cfg.Schedule); err != nil {
			return nil, fmt.Errorf("reload service: invalid schedule %q: %w", cfg.Schedule, err)
		}
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 2 * time.Minute
	}
	return &ReloadService{
		reloader: reloader,
		config:   cfg,
		logger:   logger.With().Str("service", "dataset-reload").Logger(),
	}, nil
}

// Serve implements suture.Service.
func (s *ReloadService) Serve(ctx context.Context) error {
	if s.config.ReloadOnStart {
		s.reload(ctx)
	}

	if s.config.Schedule == "" {
		s.logger.Info().Msg("scheduled reloads disabled")
		<-ctx.Done()
		return ctx.Err()
	}

	cl := cronLogger{logger: s.logger}
	c := cron.New(
		cron.WithLogger(cl),
		cron.WithChain(cron.Recover(cl), cron.SkipIfStillRunning(cl)),
	)
	if _, err := c.AddFunc(s.config.Schedule, func() { s.reload(ctx) }); err != nil {
		return fmt.Errorf("schedule reload: %w", err)
	}
	c.Start()
	s.logger.Info().Str("schedule", s.config.Schedule).Msg("dataset reload scheduled")

	<-ctx.Done()

	// Let an in-flight reload observe the cancellation and finish.
	select {
	case <-c.Stop().Done():
	case <-time.After(s.config.Timeout):
		s.logger.Warn().Msg("reload still running at shutdown")
	}
	return ctx.Err()
}

func (s *ReloadService) reload(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, s.config.Timeout)
	defer cancel()

	s.runs.Add(1)
	start := time.Now()
	if err := s.reloader.Reload(ctx); err != nil {
		s.failures.Add(1)
		s.logger.Error().Err(err).Dur("duration", time.Since(start)).Msg("dataset reload failed")
		return
	}
	s.logger.Info().Dur("duration", time.Since(start)).Msg("dataset reloaded")
}

// Runs returns how many reloads were attempted.
func (s *ReloadService) Runs() int64 { return s.runs.Load() }

// Failures returns how many reloads failed.
func (s *ReloadService) Failures() int64 { return s.failures.Load() }

// String names the service in supervisor logs.
func (s *ReloadService) String() string {
	return "dataset-reload"
}

// cronLogger routes cron's internal logging to zerolog.
type cronLogger struct {
	logger zerolog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Debug().Fields(keysAndValues).Msg("cron: " + msg)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.logger.Error().Err(err).Fields(keysAndValues).Msg("cron: " + msg)
}

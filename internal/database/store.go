// Wanderlust - Travel Destination Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wanderlust

package database

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/tomtom215/wanderlust/internal/dataset"
	"github.com/tomtom215/wanderlust/internal/logging"
)

// Store publishes the current dataset snapshot. It is safe for concurrent
// use: readers never block, and reloads are serialized.
type Store struct {
	db            *DB
	tripsPath     string
	countriesPath string

	current  atomic.Pointer[dataset.Snapshot]
	reloadMu sync.Mutex

	hooksMu sync.RWMutex
	hooks   []func(*dataset.Snapshot)

	lastErr atomic.Pointer[loadError]
}

type loadError struct {
	err error
	at  time.Time
}

// Health summarizes the store state for the health endpoint.
type Health struct {
	Loaded      bool       `json:"loaded"`
	Trips       int        `json:"trips"`
	Countries   int        `json:"countries"`
	Merged      int        `json:"merged"`
	LoadedAt    *time.Time `json:"loaded_at,omitempty"`
	LastError   string     `json:"last_error,omitempty"`
	LastErrorAt *time.Time `json:"last_error_at,omitempty"`
}

// NewStore creates an empty store for the given source files.
func NewStore(db *DB, tripsPath, countriesPath string) *Store {
	return &Store{db: db, tripsPath: tripsPath, countriesPath: countriesPath}
}

// Snapshot returns the current snapshot, or dataset.ErrNotLoaded before the
// first successful load.
func (s *Store) Snapshot() (*dataset.Snapshot, error) {
	snap := s.current.Load()
	if snap == nil {
		return nil, dataset.ErrNotLoaded
	}
	return snap, nil
}

// OnReload registers fn to run after every successful reload.
func (s *Store) OnReload(fn func(*dataset.Snapshot)) {
	s.hooksMu.Lock()
	defer s.hooksMu.Unlock()
	s.hooks = append(s.hooks, fn)
}

// Reload loads fresh tables and swaps them in. On failure the previous
// snapshot stays current.
func (s *Store) Reload(ctx context.Context) (*dataset.Snapshot, error) {
	s.reloadMu.Lock()
	defer s.reloadMu.Unlock()

	snap, err := s.db.LoadSnapshot(ctx, s.tripsPath, s.countriesPath)
	if err != nil {
		s.lastErr.Store(&loadError{err: err, at: time.Now().UTC()})
		logging.Error().Err(err).Msg("Dataset reload failed, keeping previous snapshot")
		return nil, err
	}

	s.current.Store(snap)
	s.lastErr.Store(nil)

	s.hooksMu.RLock()
	hooks := s.hooks
	s.hooksMu.RUnlock()
	for _, fn := range hooks {
		fn(snap)
	}

	return snap, nil
}

// Health reports whether a snapshot is loaded and its sizes.
func (s *Store) Health() Health {
	var h Health
	if snap := s.current.Load(); snap != nil {
		loadedAt := snap.LoadedAt
		h = Health{
			Loaded:    true,
			Trips:     len(snap.Trips),
			Countries: len(snap.Countries),
			Merged:    len(snap.Merged),
			LoadedAt:  &loadedAt,
		}
	}
	if le := s.lastErr.Load(); le != nil {
		at := le.at
		h.LastError = le.err.Error()
		h.LastErrorAt = &at
	}
	return h
}

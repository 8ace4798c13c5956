// Wanderlust - Travel Destination Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wanderlust

/*
Package cache provides a bounded, thread-safe LRU cache with per-entry TTL.

The planner caches ranking results keyed by the request and the dataset
version, so repeated slider positions are served without recomputing the
pipeline.

# Usage

	c := cache.NewLRU[*recommend.RankResult](1000, 5*time.Minute)
	key := cache.GenerateKey("rank", params)
	if v, ok := c.Get(key); ok {
	    return v
	}
	c.Add(key, result)

Keys are produced by GenerateKey, which hashes the JSON encoding of the
parameters, so structurally equal requests share an entry.
*/
package cache

// Wanderlust - Travel Destination Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wanderlust

package middleware

import (
	"net/http"
	"time"

	"github.com/tomtom215/wanderlust/internal/logging"
)

// AccessLog logs every request at debug level, or at warn when it took
// longer than slow. A zero threshold disables the warn promotion.
func AccessLog(slow time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := newStatusRecorder(w)
			next.ServeHTTP(rec, r)
			elapsed := time.Since(start)

			logger := logging.Ctx(r.Context())
			event := logger.Debug()
			msg := "Request completed"
			if slow > 0 && elapsed > slow {
				event = logger.Warn()
				msg = "Slow request detected"
			}
			event.
				Str("method", r.Method).
				Str("route", routeLabel(r)).
				Int("status", rec.statusCode).
				Int("bytes", rec.bytes).
				Int64("duration_ms", elapsed.Milliseconds()).
				Msg(msg)
		})
	}
}

// Wanderlust - Travel Destination Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wanderlust

package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/tomtom215/wanderlust/internal/dataset"
)

// ErrEmptyBody is returned when a JSON body is required but missing.
var ErrEmptyBody = errors.New("request body is empty")

// respondPlannerError maps engine errors to HTTP responses.
func respondPlannerError(rw *ResponseWriter, err error) {
	switch {
	case errors.Is(err, dataset.ErrNotLoaded):
		rw.ServiceUnavailable("Dataset is not loaded yet")
	case errors.Is(err, context.DeadlineExceeded):
		rw.Error(http.StatusGatewayTimeout, ErrCodeTimeout, "Request timed out")
	case errors.Is(err, context.Canceled):
		// Client went away; nobody reads this.
		rw.Error(499, ErrCodeBadRequest, "Request canceled")
	default:
		rw.InternalError("Planner request failed", err)
	}
}

// sanitizeLogValue escapes control characters so user input cannot forge
// log lines.
func sanitizeLogValue(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r < 0x20 || r == 0x7F {
			fmt.Fprintf(&b, "\\x%02x", r)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

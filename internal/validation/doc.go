// Wanderlust - Travel Destination Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wanderlust

/*
Package validation validates API request payloads with go-playground/validator.

A single validator instance is shared process-wide; it caches struct metadata
and is safe for concurrent use. Field names in errors are taken from the json
tag so messages match what the client sent.

Custom tags:

	metric    value is a known comparison metric (see recommend.AllMetrics)
	notblank  string is non-empty after trimming whitespace

Example:

	type CompareBody struct {
	    Countries []string `json:"countries" validate:"max=50,dive,notblank"`
	    Metrics   []string `json:"metrics" validate:"dive,metric"`
	}

	if verr := validation.ValidateStruct(&body); verr != nil {
	    apiErr := verr.ToAPIError()
	    // respond 400 with apiErr.Code, apiErr.Message, apiErr.Details
	}
*/
package validation

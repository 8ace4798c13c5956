// Wanderlust - Travel Destination Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wanderlust

package dataset

import (
	"math"
	"strconv"
)

// OptFloat is an optionally absent float64. It models values that may be
// undefined, such as a score with no scorable metric, without using NaN as a
// sentinel. The zero OptFloat is absent.
type OptFloat struct {
	v  float64
	ok bool
}

// Some returns a present value. NaN and infinities yield None.
func Some(f float64) OptFloat {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return OptFloat{}
	}
	return OptFloat{v: f, ok: true}
}

// None returns the absent value.
func None() OptFloat { return OptFloat{} }

// Get returns the value and whether it is present.
func (o OptFloat) Get() (float64, bool) { return o.v, o.ok }

// Valid reports whether the value is present.
func (o OptFloat) Valid() bool { return o.ok }

// Or returns the value, or def when absent.
func (o OptFloat) Or(def float64) float64 {
	if o.ok {
		return o.v
	}
	return def
}

// Ptr returns a pointer to a copy of the value, or nil when absent.
func (o OptFloat) Ptr() *float64 {
	if !o.ok {
		return nil
	}
	v := o.v
	return &v
}

// FromPtr converts a nullable pointer.
func FromPtr(p *float64) OptFloat {
	if p == nil {
		return None()
	}
	return Some(*p)
}

// CompareDesc orders a before b when a is larger. Absent values order after
// every present value; two absent values are equal. Returns -1, 0 or 1.
func CompareDesc(a, b OptFloat) int {
	return compareOpt(a, b, true)
}

// CompareAsc orders a before b when a is smaller, with absent values last.
func CompareAsc(a, b OptFloat) int {
	return compareOpt(a, b, false)
}

func compareOpt(a, b OptFloat, desc bool) int {
	switch {
	case !a.ok && !b.ok:
		return 0
	case !a.ok:
		return 1
	case !b.ok:
		return -1
	case a.v == b.v:
		return 0
	case (a.v > b.v) == desc:
		return -1
	default:
		return 1
	}
}

// MarshalJSON encodes an absent value as null.
func (o OptFloat) MarshalJSON() ([]byte, error) {
	if !o.ok {
		return []byte("null"), nil
	}
	return strconv.AppendFloat(nil, o.v, 'f', -1, 64), nil
}

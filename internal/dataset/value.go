// Wanderlust - Travel Destination Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wanderlust

package dataset

import (
	"math"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
)

// Kind identifies the variant held by a Value.
type Kind uint8

const (
	KindMissing Kind = iota
	KindNumber
	KindBool
	KindText
)

// String returns the variant name.
func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindBool:
		return "bool"
	case KindText:
		return "text"
	default:
		return "missing"
	}
}

// Value is a parsed table cell. The zero Value is Missing.
type Value struct {
	kind Kind
	num  float64
	flag bool
	text string
}

// Missing returns the missing Value.
func Missing() Value { return Value{} }

// Number returns a numeric Value. NaN and infinities collapse to Missing.
func Number(f float64) Value {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Value{}
	}
	return Value{kind: KindNumber, num: f}
}

// Bool returns a boolean Value.
func Bool(b bool) Value { return Value{kind: KindBool, flag: b} }

// Text returns a text Value. The string is kept verbatim.
func Text(s string) Value { return Value{kind: KindText, text: s} }

// ParseCell classifies a raw CSV cell. null reports a SQL NULL from the loader.
func ParseCell(raw string, null bool) Value {
	if null {
		return Missing()
	}
	s := strings.TrimSpace(raw)
	switch strings.ToLower(s) {
	case "":
		if raw == "" {
			return Missing()
		}
		return Text(raw)
	case "nan", "-nan", "null", "none", "n/a", "na", "#n/a", "<na>":
		return Missing()
	case "true":
		return Bool(true)
	case "false":
		return Bool(false)
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return Number(f)
	}
	return Text(raw)
}

// Kind returns the variant of v.
func (v Value) Kind() Kind { return v.kind }

// IsMissing reports whether v is the Missing variant.
func (v Value) IsMissing() bool { return v.kind == KindMissing }

// IsBlank reports whether v is Missing or text that is empty after trimming.
func (v Value) IsBlank() bool {
	switch v.kind {
	case KindMissing:
		return true
	case KindText:
		return strings.TrimSpace(v.text) == ""
	default:
		return false
	}
}

// Float converts v to a number. Text is parsed after trimming; booleans map to
// 1 and 0. The second result is false when no finite number can be derived.
func (v Value) Float() (float64, bool) {
	switch v.kind {
	case KindNumber:
		return v.num, true
	case KindBool:
		if v.flag {
			return 1, true
		}
		return 0, true
	case KindText:
		f, err := strconv.ParseFloat(strings.TrimSpace(v.text), 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// Opt converts v to an optional number.
func (v Value) Opt() OptFloat {
	if f, ok := v.Float(); ok {
		return Some(f)
	}
	return None()
}

// Label returns the trimmed textual form of v, or "" when missing.
func (v Value) Label() string {
	return strings.TrimSpace(v.String())
}

// exemptTokens are the affirmative visa-exemption spellings, compared after
// trimming and lower-casing.
var exemptTokens = map[string]struct{}{
	"1": {}, "true": {}, "yes": {}, "y": {},
	"是": {}, "免簽": {}, "免簽證": {}, "exempt": {}, "免": {},
}

// Exempt interprets v as a visa-exemption flag. Numbers are exempt when
// positive, booleans as-is, text when it is one of the affirmative tokens.
func (v Value) Exempt() bool {
	switch v.kind {
	case KindNumber:
		return v.num > 0
	case KindBool:
		return v.flag
	case KindText:
		_, ok := exemptTokens[strings.ToLower(strings.TrimSpace(v.text))]
		return ok
	default:
		return false
	}
}

// String renders v for display. Missing renders as "".
func (v Value) String() string {
	switch v.kind {
	case KindNumber:
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	case KindBool:
		if v.flag {
			return "True"
		}
		return "False"
	case KindText:
		return v.text
	default:
		return ""
	}
}

// MarshalJSON encodes numbers and booleans natively, text as a string and
// Missing as null.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindNumber:
		return strconv.AppendFloat(nil, v.num, 'f', -1, 64), nil
	case KindBool:
		return strconv.AppendBool(nil, v.flag), nil
	case KindText:
		return json.Marshal(v.text)
	default:
		return []byte("null"), nil
	}
}

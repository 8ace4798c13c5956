// Wanderlust - Travel Destination Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wanderlust

package dataset

import (
	"math"
	"testing"

	"github.com/goccy/go-json"
)

func TestParseCell(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
		null bool
		kind Kind
	}{
		{"null", "x", true, KindMissing},
		{"empty", "", false, KindMissing},
		{"nan", "NaN", false, KindMissing},
		{"integer", "42", false, KindNumber},
		{"float with spaces", " 3.5 ", false, KindNumber},
		{"true", "TRUE", false, KindBool},
		{"false", "false", false, KindBool},
		{"text", "Japan", false, KindText},
		{"whitespace only", "   ", false, KindText},
		{"chinese label", "灰色", false, KindText},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := ParseCell(tt.raw, tt.null).Kind(); got != tt.kind {
				t.Errorf("ParseCell(%q).Kind() = %v, want %v", tt.raw, got, tt.kind)
			}
		})
	}
}

func TestValue_Float(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		v      Value
		want   float64
		wantOK bool
	}{
		{"number", Number(12.5), 12.5, true},
		{"numeric text", Text(" 7 "), 7, true},
		{"bad text", Text("cheap"), 0, false},
		{"bool true", Bool(true), 1, true},
		{"missing", Missing(), 0, false},
		{"nan number", Number(math.NaN()), 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := tt.v.Float()
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("Float() = (%v, %v), want (%v, %v)", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestValue_IsBlank(t *testing.T) {
	t.Parallel()

	if !Missing().IsBlank() {
		t.Error("Missing should be blank")
	}
	if !Text("  ").IsBlank() {
		t.Error("whitespace text should be blank")
	}
	if Number(0).IsBlank() {
		t.Error("zero should not be blank")
	}
	if Bool(false).IsBlank() {
		t.Error("false should not be blank")
	}
}

func TestValue_Exempt(t *testing.T) {
	t.Parallel()

	tests := []struct {
		v    Value
		want bool
	}{
		{Number(1), true},
		{Number(0), false},
		{Number(-2), false},
		{Bool(true), true},
		{Bool(false), false},
		{Text("Yes"), true},
		{Text(" y "), true},
		{Text("1"), true},
		{Text("TRUE"), true},
		{Text("exempt"), true},
		{Text("是"), true},
		{Text("免簽"), true},
		{Text("免簽證"), true},
		{Text("免"), true},
		{Text("no"), false},
		{Text("否"), false},
		{Missing(), false},
	}
	for _, tt := range tests {
		if got := tt.v.Exempt(); got != tt.want {
			t.Errorf("%v(%q).Exempt() = %v, want %v", tt.v.Kind(), tt.v.String(), got, tt.want)
		}
	}
}

func TestValue_Label(t *testing.T) {
	t.Parallel()

	if got := Text(" 黃色 ").Label(); got != "黃色" {
		t.Errorf("Label() = %q, want %q", got, "黃色")
	}
	if got := Missing().Label(); got != "" {
		t.Errorf("Missing Label() = %q, want empty", got)
	}
	if got := Number(3).Label(); got != "3" {
		t.Errorf("Number Label() = %q, want %q", got, "3")
	}
}

func TestValue_MarshalJSON(t *testing.T) {
	t.Parallel()

	in := []Value{Number(1.5), Bool(true), Text("a\"b"), Missing()}
	got, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	want := `[1.5,true,"a\"b",null]`
	if string(got) != want {
		t.Errorf("Marshal = %s, want %s", got, want)
	}
}

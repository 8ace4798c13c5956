// Wanderlust - Travel Destination Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wanderlust

package query

import (
	"fmt"
	"strconv"
	"strings"
)

// QuoteLiteral renders s as a SQL string literal.
func QuoteLiteral(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

// QuoteIdent renders s as a SQL identifier.
func QuoteIdent(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

type option struct {
	name  string
	value string
}

// CSVScan builds a SELECT over DuckDB's read_csv table function.
type CSVScan struct {
	path    string
	columns []string
	options []option
}

// ReadCSV starts a scan of the file at path.
func ReadCSV(path string) *CSVScan {
	return &CSVScan{path: path}
}

// Columns restricts the projection. No columns selects *.
func (s *CSVScan) Columns(cols ...string) *CSVScan {
	s.columns = append(s.columns, cols...)
	return s
}

// Option appends a named read_csv option. Strings are quoted, booleans and
// integers written verbatim. Options keep insertion order; setting the same
// name twice replaces the earlier value.
func (s *CSVScan) Option(name string, value any) *CSVScan {
	var v string
	switch x := value.(type) {
	case string:
		v = QuoteLiteral(x)
	case bool:
		v = strconv.FormatBool(x)
	case int:
		v = strconv.Itoa(x)
	default:
		v = QuoteLiteral(fmt.Sprint(x))
	}
	for i := range s.options {
		if s.options[i].name == name {
			s.options[i].value = v
			return s
		}
	}
	s.options = append(s.options, option{name: name, value: v})
	return s
}

// Build renders the statement.
func (s *CSVScan) Build() string {
	projection := "*"
	if len(s.columns) > 0 {
		quoted := make([]string, len(s.columns))
		for i, c := range s.columns {
			quoted[i] = QuoteIdent(c)
		}
		projection = strings.Join(quoted, ", ")
	}

	var b strings.Builder
	b.WriteString("SELECT ")
	b.WriteString(projection)
	b.WriteString(" FROM read_csv(")
	b.WriteString(QuoteLiteral(s.path))
	for _, o := range s.options {
		b.WriteString(", ")
		b.WriteString(o.name)
		b.WriteString(" = ")
		b.WriteString(o.value)
	}
	b.WriteString(")")
	return b.String()
}

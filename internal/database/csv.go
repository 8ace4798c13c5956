// Wanderlust - Travel Destination Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wanderlust

package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/tomtom215/wanderlust/internal/database/query"
	"github.com/tomtom215/wanderlust/internal/dataset"
)

// ReadCSV reads a headered CSV file into a raw table. Every cell is read as
// text and classified with dataset.ParseCell; NULLs become Missing.
func (db *DB) ReadCSV(ctx context.Context, path string) (*dataset.RawTable, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}

	stmt := query.ReadCSV(path).
		Option("header", true).
		Option("all_varchar", true).
		Option("sample_size", -1).
		Build()

	rows, err := db.conn.QueryContext(ctx, stmt)
	if err != nil {
		return nil, fmt.Errorf("read_csv %s: %w", path, err)
	}
	defer closeQuietly(rows)

	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("read columns of %s: %w", path, err)
	}
	for i, c := range columns {
		columns[i] = strings.TrimSpace(strings.TrimPrefix(c, "\ufeff"))
	}

	table := &dataset.RawTable{Columns: columns}
	cells := make([]sql.NullString, len(columns))
	dest := make([]any, len(columns))
	for i := range cells {
		dest[i] = &cells[i]
	}

	for rows.Next() {
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("scan %s row %d: %w", path, len(table.Rows)+1, err)
		}
		row := make([]dataset.Value, len(cells))
		for i, c := range cells {
			row[i] = dataset.ParseCell(c.String, !c.Valid)
		}
		table.Rows = append(table.Rows, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate %s: %w", path, err)
	}

	return table, nil
}

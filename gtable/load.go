// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gtable

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"

	"github.com/aclements/go-gg/table"
	"github.com/jmoiron/sqlx"
	"github.com/xuri/excelize/v2"
)

// ReadCSV reads a flat table from delimiter-separated text. The first
// record is the header. Column types are inferred from the cell
// text, and empty cells are read as missing values.
func ReadCSV(r io.Reader, comma rune) (*table.Table, error) {
	cr := csv.NewReader(r)
	cr.Comma = comma
	cr.FieldsPerRecord = -1
	recs, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading CSV: %w", err)
	}
	return fromRecords(recs)
}

// ReadXLSX reads a flat table from a sheet of an Excel workbook. If
// sheet is "", the first sheet is read.
func ReadXLSX(r io.Reader, sheet string) (*table.Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("opening workbook: %w", err)
	}
	defer f.Close()

	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("workbook has no sheets")
		}
		sheet = sheets[0]
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q: %w", sheet, err)
	}
	return fromRecords(rows)
}

// ReadSQL reads the result of query as a flat table. NULLs are read
// as missing values.
func ReadSQL(ctx context.Context, db *sqlx.DB, query string) (*table.Table, error) {
	rows, err := db.QueryxContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}
	recs := [][]string{cols}
	for rows.Next() {
		vals, err := rows.SliceScan()
		if err != nil {
			return nil, err
		}
		rec := make([]string, len(vals))
		for i, v := range vals {
			switch v := v.(type) {
			case nil:
			case []byte:
				rec[i] = string(v)
			default:
				rec[i] = fmt.Sprint(v)
			}
		}
		recs = append(recs, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return fromRecords(recs)
}

// fromRecords builds a table from a header record and data records.
// Short records are padded with missing values.
func fromRecords(recs [][]string) (*table.Table, error) {
	if len(recs) == 0 {
		return nil, fmt.Errorf("no header row")
	}
	header := recs[0]
	seen := make(map[string]bool)
	for _, h := range header {
		if h == "" {
			return nil, fmt.Errorf("empty column name in header")
		}
		if seen[h] {
			return nil, fmt.Errorf("duplicate column %q in header", h)
		}
		seen[h] = true
	}

	rows := make([][]string, 0, len(recs)-1)
	for i, rec := range recs[1:] {
		if len(rec) > len(header) {
			return nil, fmt.Errorf("row %d has %d fields, but header has %d", i+1, len(rec), len(header))
		}
		row := make([]string, len(header))
		for j := range row {
			if j < len(rec) && rec[j] != "" {
				row[j] = rec[j]
			} else {
				row[j] = "NaN"
			}
		}
		rows = append(rows, row)
	}
	return table.TableFromStrings(header, rows, true), nil
}

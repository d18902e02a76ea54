// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/aclements/go-gg/generic/slice"
	"github.com/aclements/go-gg/table"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"

	"github.com/aclements/gdfplot/bench"
	"github.com/aclements/gdfplot/gtable"
)

// inputFormat returns the format of the input at path. An explicit
// format wins over the file extension. Standard input defaults to
// CSV.
func inputFormat(path, format string) (string, error) {
	if format != "" {
		switch format {
		case "csv", "tsv", "xlsx", "bench":
			return format, nil
		}
		return "", fmt.Errorf("unknown input format %q", format)
	}
	if path == "-" {
		return "csv", nil
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return "csv", nil
	case ".tsv", ".tab":
		return "tsv", nil
	case ".xlsx":
		return "xlsx", nil
	case ".txt", ".bench":
		return "bench", nil
	}
	return "", fmt.Errorf("%s: cannot guess input format; use -informat", path)
}

// readInputs reads and concatenates the tables in paths. It returns
// the format of the inputs, which must all agree.
func readInputs(paths []string, format, sheet string) (*table.Table, string, error) {
	var (
		tabs []*table.Table
		got  string
	)
	for _, path := range paths {
		f, err := inputFormat(path, format)
		if err != nil {
			return nil, "", err
		}
		if got != "" && f != got {
			return nil, "", fmt.Errorf("%s: %s input mixed with %s input", path, f, got)
		}
		got = f

		tab, err := readInput(path, f, sheet)
		if err != nil {
			return nil, "", fmt.Errorf("%s: %w", path, err)
		}
		tabs = append(tabs, tab)
	}
	tab, err := concat(tabs)
	if err != nil {
		return nil, "", err
	}
	return tab, got, nil
}

func readInput(path, format, sheet string) (*table.Table, error) {
	var r io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}

	switch format {
	case "tsv":
		return gtable.ReadCSV(r, '\t')
	case "xlsx":
		return gtable.ReadXLSX(r, sheet)
	case "bench":
		bs, err := bench.Parse(r)
		if err != nil {
			return nil, err
		}
		return bench.Table(bs), nil
	}
	return gtable.ReadCSV(r, ',')
}

// readDB runs query against the database named by spec, which has
// the form driver:dsn.
func readDB(ctx context.Context, spec, query string) (*table.Table, error) {
	driver, dsn, ok := strings.Cut(spec, ":")
	if !ok || driver == "" {
		return nil, fmt.Errorf("bad -db %q; want driver:dsn", spec)
	}
	if query == "" {
		return nil, fmt.Errorf("-db requires -query")
	}
	db, err := sqlx.Open(driver, dsn)
	if err != nil {
		return nil, err
	}
	defer db.Close()
	return gtable.ReadSQL(ctx, db, query)
}

// concat joins tables with the same columns end to end.
func concat(tabs []*table.Table) (*table.Table, error) {
	if len(tabs) == 1 {
		return tabs[0], nil
	}
	cols := tabs[0].Columns()
	var b table.Builder
	for _, col := range cols {
		var all table.Slice
		typ := reflect.TypeOf(tabs[0].MustColumn(col))
		for i, t := range tabs {
			c := t.Column(col)
			if c == nil {
				return nil, fmt.Errorf("input %d lacks column %q", i+1, col)
			}
			if reflect.TypeOf(c) != typ {
				return nil, fmt.Errorf("column %q has type %s in input 1 but %s in input %d", col, typ, reflect.TypeOf(c), i+1)
			}
			if all == nil {
				all = c
			} else {
				all = slice.Concat(all, c)
			}
		}
		b.Add(col, all)
	}
	for i, t := range tabs {
		if len(t.Columns()) != len(cols) {
			return nil, fmt.Errorf("input %d has columns %v, but input 1 has %v", i+1, t.Columns(), cols)
		}
	}
	return b.Done(), nil
}

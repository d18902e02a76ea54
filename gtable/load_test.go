// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gtable

import (
	"context"
	"math"
	"strings"
	"testing"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestReadCSV(t *testing.T) {
	src := "align,choice,rate\ndots,T1,1.5\ndots,T2,\nsacc,T1,3\n"
	flat, err := ReadCSV(strings.NewReader(src), ',')
	require.NoError(t, err)
	assert.Equal(t, []string{"align", "choice", "rate"}, flat.Columns())

	tab, err := FromTable(flat, "align", "choice")
	require.NoError(t, err)
	rate := tab.Column("rate")
	require.Len(t, rate, 3)
	assert.Equal(t, 1.5, rate[0])
	assert.True(t, math.IsNaN(rate[1]))
	assert.Equal(t, 3.0, rate[2])
}

func TestReadCSVTabs(t *testing.T) {
	flat, err := ReadCSV(strings.NewReader("k\tv\nx\t1\n"), '\t')
	require.NoError(t, err)
	assert.Equal(t, []string{"k", "v"}, flat.Columns())
}

func TestReadCSVBadHeader(t *testing.T) {
	_, err := ReadCSV(strings.NewReader("k,k\nx,1\n"), ',')
	assert.ErrorContains(t, err, "duplicate column")
	_, err = ReadCSV(strings.NewReader(""), ',')
	assert.ErrorContains(t, err, "no header row")
	_, err = ReadCSV(strings.NewReader("k,v\nx,1,2\n"), ',')
	assert.ErrorContains(t, err, "has 3 fields")
}

func TestReadXLSX(t *testing.T) {
	f := excelize.NewFile()
	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &[]interface{}{"align", "rate"}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A2", &[]interface{}{"dots", 2}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A3", &[]interface{}{"sacc", 4}))
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	flat, err := ReadXLSX(buf, "")
	require.NoError(t, err)
	tab, err := FromTable(flat, "align")
	require.NoError(t, err)
	assert.Equal(t, []string{"dots", "sacc"}, tab.KeyColumn("align"))
	assert.Equal(t, []float64{2, 4}, tab.Column("rate"))
}

func TestReadSQL(t *testing.T) {
	db, err := sqlx.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	defer db.Close()
	db.SetMaxOpenConns(1)

	db.MustExec(`CREATE TABLE runs (align TEXT, choice TEXT, rate REAL)`)
	db.MustExec(`INSERT INTO runs VALUES ('dots', 'T1', 1.5), ('dots', 'T2', NULL), ('sacc', 'T1', 3)`)

	flat, err := ReadSQL(context.Background(), db, `SELECT align, choice, rate FROM runs`)
	require.NoError(t, err)
	tab, err := FromTable(flat, "align", "choice")
	require.NoError(t, err)
	assert.Equal(t, []string{"T1", "T2", "T1"}, tab.KeyColumn("choice"))
	rate := tab.Column("rate")
	assert.Equal(t, 1.5, rate[0])
	assert.True(t, math.IsNaN(rate[1]))

	_, err = ReadSQL(context.Background(), db, `SELECT * FROM missing`)
	assert.Error(t, err)
}

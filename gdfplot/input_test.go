// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aclements/gdfplot/facet"
	"github.com/aclements/gdfplot/gtable"
	"github.com/aclements/gdfplot/render/echarts"
	"github.com/aclements/gdfplot/render/ggsvg"
)

func TestInputFormat(t *testing.T) {
	for _, test := range []struct {
		path, format, want string
	}{
		{"-", "", "csv"},
		{"a.CSV", "", "csv"},
		{"a.tsv", "", "tsv"},
		{"a.xlsx", "", "xlsx"},
		{"old.txt", "", "bench"},
		{"a.csv", "bench", "bench"},
	} {
		got, err := inputFormat(test.path, test.format)
		require.NoError(t, err, test.path)
		assert.Equal(t, test.want, got, test.path)
	}

	_, err := inputFormat("a.json", "")
	assert.ErrorContains(t, err, "-informat")
	_, err = inputFormat("a.csv", "json")
	assert.ErrorContains(t, err, `unknown input format "json"`)
}

func writeTemp(t *testing.T, name, data string) string {
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(data), 0666))
	return path
}

func TestReadInputs(t *testing.T) {
	a := writeTemp(t, "a.csv", "align,choice,rate\nleft,T1,1\nright,T2,2\n")
	b := writeTemp(t, "b.csv", "align,choice,rate\nleft,T2,3\n")
	tab, format, err := readInputs([]string{a, b}, "", "")
	require.NoError(t, err)
	assert.Equal(t, "csv", format)
	assert.Equal(t, 3, tab.Len())
	assert.Equal(t, []string{"left", "right", "left"}, tab.MustColumn("align"))

	c := writeTemp(t, "c.csv", "align,rate\nleft,1\n")
	_, _, err = readInputs([]string{a, c}, "", "")
	assert.Error(t, err)

	d := writeTemp(t, "d.txt", "BenchmarkX-4\t1\t2 ns/op\n")
	_, _, err = readInputs([]string{a, d}, "", "")
	assert.ErrorContains(t, err, "mixed")

	tab, format, err = readInputs([]string{d}, "", "")
	require.NoError(t, err)
	assert.Equal(t, "bench", format)
	assert.Equal(t, []string{"X"}, tab.MustColumn("name"))
}

func TestReadDB(t *testing.T) {
	ctx := context.Background()
	_, err := readDB(ctx, "sqlite3", "select 1")
	assert.ErrorContains(t, err, "driver:dsn")
	_, err = readDB(ctx, "sqlite3::memory:", "")
	assert.ErrorContains(t, err, "-query")

	tab, err := readDB(ctx, "sqlite3::memory:", "select 'left' as align, 2.5 as rate")
	require.NoError(t, err)
	assert.Equal(t, []string{"align", "rate"}, tab.Columns())
}

func TestFigurePath(t *testing.T) {
	assert.Equal(t, "out-1.svg", figurePath("out.svg", 0))
	assert.Equal(t, filepath.Join("d", "plot-3"), figurePath(filepath.Join("d", "plot"), 2))
}

func TestWriteFigures(t *testing.T) {
	figs := []*facet.Figure{{Title: "a"}, {Title: "b"}}
	err := writeFigures(ggsvg.Backend{}, figs, "")
	assert.ErrorContains(t, err, "use -o")

	// Figures without subplots fail to draw; the error reaches
	// the caller and no output files are left behind.
	dir := t.TempDir()
	out := filepath.Join(dir, "out.svg")
	err = writeFigures(ggsvg.Backend{}, figs, out)
	assert.ErrorContains(t, err, "no subplots")
	err = writeFigures(ggsvg.Backend{}, figs[:1], out)
	assert.ErrorContains(t, err, "no subplots")
	err = writeFigures(echarts.Backend{}, figs, out)
	assert.ErrorContains(t, err, "no subplots")
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestWriteFiguresFiles(t *testing.T) {
	tab, err := new(gtable.Builder).
		AddKey("align", []string{"dots", "sacc"}).
		AddKey("choice", []string{"T1", "T1"}).
		AddValue("rate", []float64{1, 2}).
		Done()
	require.NoError(t, err)
	figs, err := facet.Plot(tab, facet.Request{Metric: "rate", VSubplots: "align"})
	require.NoError(t, err)
	require.Len(t, figs, 2)

	dir := t.TempDir()
	require.NoError(t, writeFigures(ggsvg.Backend{}, figs, filepath.Join(dir, "out.svg")))
	for _, name := range []string{"out-1.svg", "out-2.svg"} {
		data, err := os.ReadFile(filepath.Join(dir, name))
		require.NoError(t, err, name)
		assert.Contains(t, string(data), "<svg", name)
	}
}

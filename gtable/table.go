// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gtable implements grouped tables: tables of numeric value
// columns whose rows are identified by a composite key of one or more
// categorical dimensions.
//
// A grouped table is what an aggregation ("group by these columns and
// sum the rest") produces. Missing observations are represented as
// NaN.
package gtable

import (
	"fmt"
	"math"
	"strings"

	"github.com/aclements/go-gg/table"
)

// StdDevCol is the conventional name of the value column that holds
// the standard deviation of the other value columns. It is never
// plotted as a metric itself.
const StdDevCol = "St.Dev"

// Table is a grouped table. A Table is immutable once built.
type Table struct {
	keys   []string
	labels [][]string

	cols []string
	data [][]float64

	n int
}

// Keys returns the names of t's grouping dimensions, outermost first.
func (t *Table) Keys() []string {
	return append([]string(nil), t.keys...)
}

// Columns returns the names of t's value columns, including StdDevCol
// if present.
func (t *Table) Columns() []string {
	return append([]string(nil), t.cols...)
}

// Metrics returns the names of t's value columns other than
// StdDevCol.
func (t *Table) Metrics() []string {
	var out []string
	for _, c := range t.cols {
		if c != StdDevCol {
			out = append(out, c)
		}
	}
	return out
}

// Len returns the number of rows in t.
func (t *Table) Len() int {
	return t.n
}

// Composite reports whether t is keyed by more than one dimension.
// Only composite tables can be cross-sectioned.
func (t *Table) Composite() bool {
	return len(t.keys) > 1
}

// HasKey reports whether name is one of t's grouping dimensions.
func (t *Table) HasKey(name string) bool {
	return index(t.keys, name) >= 0
}

// HasStdDev reports whether t has a StdDevCol value column.
func (t *Table) HasStdDev() bool {
	return index(t.cols, StdDevCol) >= 0
}

// Column returns the values of the named value column, or nil if
// there is no such column. The caller must not modify the result.
func (t *Table) Column(name string) []float64 {
	if i := index(t.cols, name); i >= 0 {
		return t.data[i]
	}
	return nil
}

// KeyColumn returns the labels of the named grouping dimension, or
// nil if there is no such dimension. The caller must not modify the
// result.
func (t *Table) KeyColumn(name string) []string {
	if i := index(t.keys, name); i >= 0 {
		return t.labels[i]
	}
	return nil
}

// Values returns the distinct labels of dimension dim in the order
// they first occur in t.
func (t *Table) Values(dim string) []string {
	var out []string
	seen := make(map[string]bool)
	for _, l := range t.KeyColumn(dim) {
		if !seen[l] {
			seen[l] = true
			out = append(out, l)
		}
	}
	return out
}

// Xs returns the cross-section of t at dim == label: the rows whose
// dim label equals label, in order, with dim removed from the key
// set. Xs panics if dim is not a key of t or t is not composite.
func (t *Table) Xs(dim, label string) *Table {
	ki := index(t.keys, dim)
	if ki < 0 {
		panic(fmt.Sprintf("unknown grouping key %q", dim))
	}
	if !t.Composite() {
		panic("cross-section of a table with a single grouping key")
	}

	var rows []int
	for i, l := range t.labels[ki] {
		if l == label {
			rows = append(rows, i)
		}
	}

	nt := &Table{n: len(rows), cols: t.cols}
	for i, k := range t.keys {
		if i == ki {
			continue
		}
		nt.keys = append(nt.keys, k)
		nt.labels = append(nt.labels, pickStrings(t.labels[i], rows))
	}
	for _, col := range t.data {
		nt.data = append(nt.data, pickFloats(col, rows))
	}
	return nt
}

// RowLabel returns the composite key of row i as a single string,
// skipping the dimensions named in except.
func (t *Table) RowLabel(i int, except ...string) string {
	var parts []string
	for k, name := range t.keys {
		if index(except, name) >= 0 {
			continue
		}
		parts = append(parts, t.labels[k][i])
	}
	return strings.Join(parts, ", ")
}

// Max returns the largest non-missing value in the named columns. It
// returns NaN if there is none.
func (t *Table) Max(cols ...string) float64 {
	max := math.NaN()
	for _, name := range cols {
		for _, v := range t.Column(name) {
			if !math.IsNaN(v) && (math.IsNaN(max) || v > max) {
				max = v
			}
		}
	}
	return max
}

// Flat returns t as an ungrouped go-gg table, with the key columns
// first.
func (t *Table) Flat() *table.Table {
	b := table.NewBuilder(nil)
	for i, k := range t.keys {
		b.Add(k, t.labels[i])
	}
	for i, c := range t.cols {
		b.Add(c, t.data[i])
	}
	return b.Done()
}

// A Builder constructs a Table column by column.
type Builder struct {
	t   Table
	err error
}

// AddKey appends a grouping dimension with the given row labels.
func (b *Builder) AddKey(name string, labels []string) *Builder {
	if b.check(name, len(labels)) {
		b.t.keys = append(b.t.keys, name)
		b.t.labels = append(b.t.labels, append([]string(nil), labels...))
	}
	return b
}

// AddValue appends a value column.
func (b *Builder) AddValue(name string, data []float64) *Builder {
	if b.check(name, len(data)) {
		b.t.cols = append(b.t.cols, name)
		b.t.data = append(b.t.data, append([]float64(nil), data...))
	}
	return b
}

func (b *Builder) check(name string, n int) bool {
	if b.err != nil {
		return false
	}
	if name == "" {
		b.err = fmt.Errorf("empty column name")
		return false
	}
	if index(b.t.keys, name) >= 0 || index(b.t.cols, name) >= 0 {
		b.err = fmt.Errorf("duplicate column %q", name)
		return false
	}
	if len(b.t.keys)+len(b.t.cols) == 0 {
		b.t.n = n
	} else if n != b.t.n {
		b.err = fmt.Errorf("column %q has %d rows, but table has %d", name, n, b.t.n)
		return false
	}
	return true
}

// Done returns the built Table, or the first error encountered while
// building it.
func (b *Builder) Done() (*Table, error) {
	if b.err != nil {
		return nil, b.err
	}
	if len(b.t.keys) == 0 {
		return nil, fmt.Errorf("table has no grouping keys")
	}
	if len(b.t.cols) == 0 {
		return nil, fmt.Errorf("table has no value columns")
	}
	t := b.t
	return &t, nil
}

func index(xs []string, x string) int {
	for i, y := range xs {
		if x == y {
			return i
		}
	}
	return -1
}

func pickStrings(xs []string, rows []int) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = xs[r]
	}
	return out
}

func pickFloats(xs []float64, rows []int) []float64 {
	out := make([]float64, len(rows))
	for i, r := range rows {
		out[i] = xs[r]
	}
	return out
}

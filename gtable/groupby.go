// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gtable

import (
	"fmt"
	"math"
	"reflect"
	"strings"

	"github.com/aclements/go-gg/generic/slice"
	"github.com/aclements/go-gg/table"
	"github.com/aclements/go-moremath/stats"
)

// FromTable converts a flat go-gg table into a grouped table keyed by
// the named columns. Key values are converted to labels with
// fmt.Sprint. Numeric non-key columns become value columns and other
// non-key columns are dropped. FromTable does not merge rows with
// equal keys; use GroupBy for that.
func FromTable(t *table.Table, keys ...string) (*Table, error) {
	var b Builder
	for _, k := range keys {
		col := t.Column(k)
		if col == nil {
			return nil, fmt.Errorf("unknown column %q", k)
		}
		b.AddKey(k, labels(col))
	}
	for _, name := range t.Columns() {
		if index(keys, name) >= 0 {
			continue
		}
		col := t.Column(name)
		if !isNumeric(col) {
			continue
		}
		var xs []float64
		slice.Convert(&xs, col)
		b.AddValue(name, xs)
	}
	return b.Done()
}

func labels(col table.Slice) []string {
	rv := reflect.ValueOf(col)
	out := make([]string, rv.Len())
	for i := range out {
		out[i] = fmt.Sprint(rv.Index(i).Interface())
	}
	return out
}

func isNumeric(col table.Slice) bool {
	switch reflect.TypeOf(col).Elem().Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

// Agg is an aggregation function applied to each group of a value
// column.
type Agg int

const (
	// AggSum sums the non-missing values of each group.
	AggSum Agg = iota

	// AggMean averages the non-missing values of each group.
	AggMean
)

func (a Agg) String() string {
	switch a {
	case AggSum:
		return "sum"
	case AggMean:
		return "mean"
	}
	return fmt.Sprintf("Agg(%d)", int(a))
}

// ParseAgg returns the Agg named s ("sum" or "mean").
func ParseAgg(s string) (Agg, error) {
	switch strings.ToLower(s) {
	case "sum":
		return AggSum, nil
	case "mean":
		return AggMean, nil
	}
	return 0, fmt.Errorf("unknown aggregation %q", s)
}

// GroupOptions controls GroupBy.
type GroupOptions struct {
	// Agg is the aggregation applied to every value column.
	Agg Agg

	// StdDev, if non-empty, names a value column whose per-group
	// sample standard deviation is added as StdDevCol.
	StdDev string
}

// GroupBy groups the rows of src by the named key columns and
// aggregates every numeric column per group. Groups appear in the
// order their keys first occur in src. A group with no non-missing
// values in a column aggregates to NaN.
func GroupBy(src *table.Table, keys []string, opts GroupOptions) (*Table, error) {
	if len(keys) == 0 {
		return nil, fmt.Errorf("no grouping columns")
	}
	flat, err := FromTable(src, keys...)
	if err != nil {
		return nil, err
	}
	if opts.StdDev != "" && flat.Column(opts.StdDev) == nil {
		return nil, fmt.Errorf("cannot compute %s: unknown numeric column %q", StdDevCol, opts.StdDev)
	}
	if opts.StdDev != "" && flat.HasStdDev() {
		return nil, fmt.Errorf("table already has a %s column", StdDevCol)
	}

	// Assign each row to a group.
	var groups [][]int
	gidx := make(map[string]int)
	for i := 0; i < flat.Len(); i++ {
		k := groupKey(flat, i)
		g, ok := gidx[k]
		if !ok {
			g = len(groups)
			gidx[k] = g
			groups = append(groups, nil)
		}
		groups[g] = append(groups[g], i)
	}
	first := make([]int, len(groups))
	for g, rows := range groups {
		first[g] = rows[0]
	}

	var b Builder
	for i, k := range flat.keys {
		b.AddKey(k, pickStrings(flat.labels[i], first))
	}
	for i, c := range flat.cols {
		b.AddValue(c, aggregate(flat.data[i], groups, opts.Agg.f))
	}
	if opts.StdDev != "" {
		b.AddValue(StdDevCol, aggregate(flat.Column(opts.StdDev), groups, stdDev))
	}
	return b.Done()
}

// groupKey returns a map key identifying the composite key of row i.
func groupKey(t *Table, i int) string {
	var sb strings.Builder
	for _, l := range t.labels {
		sb.WriteString(l[i])
		sb.WriteByte(0)
	}
	return sb.String()
}

func aggregate(col []float64, groups [][]int, f func([]float64) float64) []float64 {
	out := make([]float64, len(groups))
	xs := make([]float64, 0)
	for g, rows := range groups {
		xs = xs[:0]
		for _, r := range rows {
			if !math.IsNaN(col[r]) {
				xs = append(xs, col[r])
			}
		}
		if len(xs) == 0 {
			out[g] = math.NaN()
			continue
		}
		out[g] = f(xs)
	}
	return out
}

func (a Agg) f(xs []float64) float64 {
	if a == AggMean {
		return stats.Mean(xs)
	}
	sum := 0.0
	for _, x := range xs {
		sum += x
	}
	return sum
}

func stdDev(xs []float64) float64 {
	if len(xs) < 2 {
		return math.NaN()
	}
	return stats.StdDev(xs)
}

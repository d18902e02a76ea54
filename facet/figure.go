// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package facet

// A Figure is one chart collection: a row of subplots sharing a
// title. Plot returns one Figure per vertical facet value.
type Figure struct {
	Title    string
	Subplots []*Subplot
	Style    Style
}

// A Subplot is one chart within a Figure. All of its series share the
// categorical axis Categories.
type Subplot struct {
	Title      string
	Categories []string
	Series     []*Series

	// Legend indicates that the series were split by hue and
	// should be labeled.
	Legend bool

	// YLim is the value-axis range.
	YLim Range
}

// A Series is one set of bars (or one line) within a Subplot.
type Series struct {
	Name string

	// Values is parallel to the Subplot's Categories. NaN marks a
	// category with no observation in this series.
	Values []float64

	// Err, if non-nil, is parallel to Values and gives the
	// half-height of each error bar.
	Err []float64
}

// NumSeries returns the total number of series in f.
func (f *Figure) NumSeries() int {
	n := 0
	for _, sp := range f.Subplots {
		n += len(sp.Series)
	}
	return n
}

// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package facet

import (
	"math"

	"github.com/aclements/gdfplot/gtable"
)

// walker builds the figure tree for one Plot call. It never draws.
type walker struct {
	metric string
	hsub   string
	hue    string
	style  Style
	ylim   Range
}

// rows splits t into one Figure per plottable value of dim.
func (w *walker) rows(t *gtable.Table, dim string) ([]*Figure, error) {
	vals, err := PlottableValues(t, dim, w.metric)
	if err != nil {
		return nil, err
	}
	figs := make([]*Figure, 0, len(vals))
	for _, v := range vals {
		fig, err := w.cols(t.Xs(dim, v), v)
		if err != nil {
			return nil, err
		}
		figs = append(figs, fig)
	}
	return figs, nil
}

// cols lays t out as one Figure with a subplot per plottable value
// of the horizontal facet dimension. suffix is appended to the
// figure title.
func (w *walker) cols(t *gtable.Table, suffix string) (*Figure, error) {
	fig := &Figure{Title: w.metric, Style: w.style}
	if suffix != "" {
		fig.Title += " - " + suffix
	}

	if w.hsub == "" || !t.Composite() {
		fig.Subplots = []*Subplot{w.subplot(t, fig.Title)}
		return fig, nil
	}

	vals, err := PlottableValues(t, w.hsub, w.metric)
	if err != nil {
		return nil, err
	}
	for _, v := range vals {
		fig.Subplots = append(fig.Subplots, w.subplot(t.Xs(w.hsub, v), v))
	}
	return fig, nil
}

// subplot renders the metric of t into a Subplot, split into one
// series per hue value if possible.
func (w *walker) subplot(t *gtable.Table, title string) *Subplot {
	if title == "" {
		title = w.metric
	}
	sp := &Subplot{Title: title, YLim: w.ylim}
	if w.hue != "" && t.Composite() && t.HasKey(w.hue) {
		w.hueSeries(sp, t)
	} else {
		w.series(sp, t)
	}
	return sp
}

// series adds a single series with one category per row of t.
func (w *walker) series(sp *Subplot, t *gtable.Table) {
	s := &Series{Name: w.metric, Values: append([]float64(nil), t.Column(w.metric)...)}
	if t.HasStdDev() && w.metric != gtable.StdDevCol {
		s.Err = append([]float64(nil), t.Column(gtable.StdDevCol)...)
	}
	for i := 0; i < t.Len(); i++ {
		sp.Categories = append(sp.Categories, t.RowLabel(i))
	}
	sp.Series = []*Series{s}
}

// hueSeries pivots the hue dimension of t into one series per hue
// value. The remaining keys form the shared categories.
func (w *walker) hueSeries(sp *Subplot, t *gtable.Table) {
	sp.Legend = true

	hues := t.Values(w.hue)
	hueIdx := make(map[string]int, len(hues))
	for i, h := range hues {
		hueIdx[h] = i
	}
	catIdx := make(map[string]int)
	for i := 0; i < t.Len(); i++ {
		c := t.RowLabel(i, w.hue)
		if _, ok := catIdx[c]; !ok {
			catIdx[c] = len(sp.Categories)
			sp.Categories = append(sp.Categories, c)
		}
	}

	withErr := t.HasStdDev() && w.metric != gtable.StdDevCol
	for _, h := range hues {
		s := &Series{Name: h, Values: nans(len(sp.Categories))}
		if withErr {
			s.Err = nans(len(sp.Categories))
		}
		sp.Series = append(sp.Series, s)
	}

	vals, hueCol := t.Column(w.metric), t.KeyColumn(w.hue)
	sd := t.Column(gtable.StdDevCol)
	for i := 0; i < t.Len(); i++ {
		s := sp.Series[hueIdx[hueCol[i]]]
		c := catIdx[t.RowLabel(i, w.hue)]
		s.Values[c] = vals[i]
		if withErr {
			s.Err[c] = sd[i]
		}
	}
}

func nans(n int) []float64 {
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = math.NaN()
	}
	return xs
}

// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package facet lays out a grouped table as a grid of charts.
//
// Plot slices a gtable.Table by up to three of its grouping keys: a
// vertical facet produces one Figure per value, a horizontal facet
// produces one Subplot per value within each Figure, and a hue splits
// each Subplot into one Series per value. Facet and hue values appear
// in the order they first occur in the table. Values with no data are
// left out.
//
// Plot only builds the figure tree. Drawing is left to a backend
// (see the render packages), which receives each Figure explicitly.
package facet

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/aclements/gdfplot/gtable"
)

// Request describes one Plot call.
type Request struct {
	// Metric names the value column to plot. If empty, the
	// table must have exactly one metric column.
	Metric string

	// HSubplots, VSubplots and Hue optionally name grouping keys
	// to split by horizontally, vertically and by color.
	HSubplots, VSubplots, Hue string

	Style Style

	// Logger receives non-fatal warnings. If nil, slog.Default()
	// is used.
	Logger *slog.Logger
}

// Plot lays out the Metric column of t according to req. It returns
// one Figure per value of req.VSubplots, or a single Figure if
// req.VSubplots is empty.
//
// Plot fails with a *ParamError if a split parameter is not a
// grouping key of t or the metric is not a column of t. It produces
// no figures in that case. If t has a single grouping key, the split
// parameters are ignored with a warning and the metric is plotted as
// a single series. Plot fails with ErrNoData if the facets leave
// nothing to draw.
func Plot(t *gtable.Table, req Request) ([]*Figure, error) {
	log := req.Logger
	if log == nil {
		log = slog.Default()
	}

	metric, err := validate(t, &req, log)
	if err != nil {
		return nil, err
	}

	w := &walker{
		metric: metric,
		hsub:   req.HSubplots,
		hue:    req.Hue,
		style:  req.Style.withDefaults(),
	}
	if w.style.YLim != nil {
		w.ylim = *w.style.YLim
	} else {
		w.ylim = defaultYLim(t)
	}

	if !t.Composite() {
		log.Warn("table lacks composite grouping keys - plotting the metric without facets or hue",
			"keys", t.Keys(), "metric", metric)
		fig := &Figure{Title: metric, Style: w.style}
		sp := &Subplot{Title: metric, YLim: w.ylim}
		w.series(sp, t)
		fig.Subplots = []*Subplot{sp}
		return []*Figure{fig}, nil
	}

	var figs []*Figure
	switch {
	case req.VSubplots != "":
		figs, err = w.rows(t, req.VSubplots)
	case req.HSubplots != "":
		var fig *Figure
		fig, err = w.cols(t, "")
		figs = []*Figure{fig}
	default:
		fig := &Figure{Title: metric, Style: w.style}
		fig.Subplots = []*Subplot{w.subplot(t, metric)}
		figs = []*Figure{fig}
	}
	if err != nil {
		return nil, err
	}
	if len(figs) == 0 {
		return nil, fmt.Errorf("plotting %q: %w", metric, ErrNoData)
	}
	for _, fig := range figs {
		if len(fig.Subplots) == 0 {
			return nil, fmt.Errorf("plotting %q in %q: %w", metric, fig.Title, ErrNoData)
		}
	}
	return figs, nil
}

// defaultYLim returns the value-axis range shared by every subplot:
// zero to 20% above the largest metric value anywhere in t.
func defaultYLim(t *gtable.Table) Range {
	max := t.Max(t.Metrics()...)
	if math.IsNaN(max) || max <= 0 {
		return Range{0, 1}
	}
	return Range{0, 1.2 * max}
}

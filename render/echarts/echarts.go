// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package echarts draws facet figures as interactive HTML pages using
// go-echarts. Each subplot becomes one chart on the page.
package echarts

import (
	"fmt"
	"io"
	"math"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/aclements/gdfplot/facet"
)

// missing is how ECharts spells a missing data point.
const missing = "-"

// Backend draws figures as HTML.
type Backend struct{}

// Draw writes fig to w as an HTML page.
func (b Backend) Draw(w io.Writer, fig *facet.Figure) error {
	return b.DrawAll(w, []*facet.Figure{fig})
}

// DrawAll writes every figure in figs to a single HTML page, in order.
func (Backend) DrawAll(w io.Writer, figs []*facet.Figure) error {
	page := components.NewPage()
	page.PageTitle = "gdfplot"
	for _, fig := range figs {
		if len(fig.Subplots) == 0 {
			return fmt.Errorf("figure %q has no subplots", fig.Title)
		}
		page.PageTitle = fig.Title
		for _, sp := range fig.Subplots {
			page.AddCharts(chart(fig, sp))
		}
	}
	return page.Render(w)
}

func chart(fig *facet.Figure, sp *facet.Subplot) components.Charter {
	global := globalOpts(fig, sp)
	if fig.Style.Kind == facet.KindLine {
		c := charts.NewLine()
		c.SetGlobalOptions(global...)
		c.SetXAxis(sp.Categories)
		for _, s := range sp.Series {
			c.AddSeries(s.Name, lineData(sp, s))
		}
		return c
	}
	c := charts.NewBar()
	c.SetGlobalOptions(global...)
	c.SetXAxis(sp.Categories)
	for _, s := range sp.Series {
		c.AddSeries(s.Name, barData(sp, s))
	}
	return c
}

func globalOpts(fig *facet.Figure, sp *facet.Subplot) []charts.GlobalOpts {
	title := opts.Title{Title: sp.Title}
	if sp.Title != fig.Title {
		title.Subtitle = fig.Title
	}
	if fig.Style.FontSize > 0 {
		title.TitleStyle = &opts.TextStyle{FontSize: fontSize(fig.Style.FontSize)}
	}
	init := opts.Initialization{PageTitle: fig.Title}
	if fig.Style.Width > 0 {
		init.Width = fmt.Sprintf("%dpx", fig.Style.Width)
	}
	if fig.Style.Height > 0 {
		init.Height = fmt.Sprintf("%dpx", fig.Style.Height)
	}
	return []charts.GlobalOpts{
		charts.WithInitializationOpts(init),
		charts.WithTitleOpts(title),
		charts.WithYAxisOpts(opts.YAxis{Min: sp.YLim.Lo, Max: sp.YLim.Hi}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(sp.Legend), Top: "bottom"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	}
}

// fontSize rounds a point size to the whole pixels ECharts accepts.
// Positive sizes never round to 0.
func fontSize(pt float64) int {
	n := int(math.Round(pt))
	if n < 1 {
		n = 1
	}
	return n
}

// point returns the value and item name of series s at category ci.
// The name carries the error term, if any, so tooltips show it.
func point(sp *facet.Subplot, s *facet.Series, ci int) (interface{}, string) {
	name := sp.Categories[ci]
	if s.Err != nil && !math.IsNaN(s.Err[ci]) {
		name = fmt.Sprintf("%s (±%g)", name, s.Err[ci])
	}
	v := s.Values[ci]
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return missing, name
	}
	return v, name
}

func barData(sp *facet.Subplot, s *facet.Series) []opts.BarData {
	items := make([]opts.BarData, len(s.Values))
	for i := range items {
		v, name := point(sp, s, i)
		items[i] = opts.BarData{Name: name, Value: v}
	}
	return items
}

func lineData(sp *facet.Subplot, s *facet.Series) []opts.LineData {
	items := make([]opts.LineData, len(s.Values))
	for i := range items {
		v, name := point(sp, s, i)
		items[i] = opts.LineData{Name: name, Value: v}
	}
	return items
}

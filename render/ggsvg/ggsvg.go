// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ggsvg draws facet figures as SVG using go-gg.
//
// Each figure becomes one gg.Plot, faceted horizontally by subplot.
// go-gg has no bar geometry, so bars are drawn as filled paths around
// numeric category positions and categories are labeled with tags.
package ggsvg

import (
	"fmt"
	"image/color"
	"io"
	"math"

	"github.com/aclements/go-gg/gg"
	"github.com/aclements/go-gg/table"

	"github.com/aclements/gdfplot/facet"
)

// Default subplot size in pixels.
const (
	DefaultWidth  = 500
	DefaultHeight = 350
)

// barSpan is the fraction of a category's slot covered by its bars.
const barSpan = 0.8

// barGray fills the bars of a figure without a hue split.
var barGray = color.Gray{160}

func fixedColor(c color.Color) gg.Scaler {
	s := gg.NewOrdinalScale()
	s.Ranger(gg.NewColorRanger([]color.Color{c}))
	return s
}

// Backend draws figures as SVG.
type Backend struct{}

// Draw writes fig to w as an SVG document.
func (Backend) Draw(w io.Writer, fig *facet.Figure) (err error) {
	if len(fig.Subplots) == 0 {
		return fmt.Errorf("figure %q has no subplots", fig.Title)
	}
	// go-gg reports misuse by panicking.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("drawing %q: %v", fig.Title, r)
		}
	}()

	p := newPlot(fig)
	width, height := fig.Style.Width, fig.Style.Height
	if width == 0 {
		width = DefaultWidth
	}
	if height == 0 {
		height = DefaultHeight
	}
	return p.WriteSVG(w, width*len(fig.Subplots), height)
}

func newPlot(fig *facet.Figure) *gg.Plot {
	tab := figureTable(fig)
	p := gg.NewPlot(tab)
	p.Add(gg.Title(fig.Title))
	p.Add(gg.AxisLabel("x", ""), gg.AxisLabel("y", ""))

	// Facet keys are subplot indexes so go-gg keeps subplots in
	// figure order.
	p.Add(gg.FacetX{
		Col:          "subplot",
		Labeler:      func(v interface{}) string { return fig.Subplots[v.(int)].Title },
		SplitXScales: true,
	})
	ylim := fig.Subplots[0].YLim
	p.SetScale("y", gg.NewLinearScaler().SetMin(ylim.Lo).SetMax(ylim.Hi))
	p.GroupBy("path")

	legend := false
	for _, sp := range fig.Subplots {
		legend = legend || sp.Legend
	}
	// Colors go through ordinal scales over the paint column. Fixed
	// colors are one-entry palettes on those scales.
	if !legend {
		p.SetScale("fill", fixedColor(barGray))
	}
	if fig.Style.Kind != facet.KindLine {
		p.SetScale("stroke", fixedColor(color.Black))
	}
	layer(p, tab, "bar", func() {
		p.Add(gg.LayerPaths{X: "x", Y: "y", Fill: "paint"})
	})
	layer(p, tab, "point", func() {
		p.Add(gg.LayerLines{X: "x", Y: "y", Color: "paint"})
	})
	layer(p, tab, "err", func() {
		p.Add(gg.LayerPaths{X: "x", Y: "y", Color: "paint"})
	})
	layer(p, tab, "tag", func() {
		p.Add(gg.LayerTags{X: "x", Y: "y", Label: "label"})
	})
	return p
}

// layer applies add to the rows of p's data with the given mark, if
// there are any.
func layer(p *gg.Plot, tab *table.Table, mark string, add func()) {
	found := false
	for _, m := range tab.MustColumn("mark").([]string) {
		if m == mark {
			found = true
			break
		}
	}
	if !found {
		return
	}
	defer p.Save().Restore()
	p.SetData(table.FilterEq(p.Data(), "mark", mark))
	add()
}

// figureTable flattens fig into one row per path vertex. Rows with
// the same path value form one path. The mark column says which
// layer draws the row and the paint column which color it gets.
func figureTable(fig *facet.Figure) *table.Table {
	var (
		subplot    []int
		path       []int
		mark       []string
		xs, ys     []float64
		series     []string
		paint      []string
		label      []string
		nextPathID int
	)
	line := fig.Style.Kind == facet.KindLine
	// paintOf returns the paint value of mark m of series s. Bars
	// and lines are painted by series. Error bars share the line
	// color in line charts and are painted uniformly otherwise.
	paintOf := func(m, s string) string {
		if m == "err" && !line {
			return "err"
		}
		return s
	}
	add := func(si int, m, s, l string, pts ...float64) {
		for i := 0; i+1 < len(pts); i += 2 {
			subplot = append(subplot, si)
			path = append(path, nextPathID)
			mark = append(mark, m)
			xs = append(xs, pts[i])
			ys = append(ys, pts[i+1])
			series = append(series, s)
			paint = append(paint, paintOf(m, s))
			label = append(label, l)
		}
		nextPathID++
	}

	for si, sp := range fig.Subplots {
		nseries := float64(len(sp.Series))
		for ci, cat := range sp.Categories {
			x := float64(ci)
			add(si, "tag", "", cat, x, sp.YLim.Lo)

			for sj, s := range sp.Series {
				v := s.Values[ci]
				if math.IsNaN(v) {
					continue
				}
				xc := x
				if line {
					// Lines join all categories of a
					// series, so they share a path.
					// Paths are grouped within each
					// subplot, so series indexes suffice.
					subplot = append(subplot, si)
					path = append(path, -1-sj)
					mark = append(mark, "point")
					xs = append(xs, x)
					ys = append(ys, v)
					series = append(series, s.Name)
					paint = append(paint, s.Name)
					label = append(label, cat)
				} else {
					w := barSpan / nseries
					x0 := x - barSpan/2 + float64(sj)*w
					x1 := x0 + w
					xc = (x0 + x1) / 2
					add(si, "bar", s.Name, cat, x0, 0, x0, v, x1, v, x1, 0)
				}
				if s.Err != nil && !math.IsNaN(s.Err[ci]) {
					e := s.Err[ci]
					add(si, "err", s.Name, cat, xc, v-e, xc, v+e)
				}
			}
		}
	}

	return new(table.Builder).
		Add("subplot", subplot).
		Add("path", path).
		Add("mark", mark).
		Add("x", xs).
		Add("y", ys).
		Add("series", series).
		Add("paint", paint).
		Add("label", label).
		Done()
}

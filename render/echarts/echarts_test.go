// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package echarts

import (
	"bytes"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aclements/gdfplot/facet"
)

func figure(kind string) *facet.Figure {
	return &facet.Figure{
		Title: "rate - left",
		Style: facet.Style{Kind: kind, FontSize: 12},
		Subplots: []*facet.Subplot{
			{
				Title:      "coherenceA",
				Categories: []string{"lo", "hi"},
				Legend:     true,
				YLim:       facet.Range{Lo: 0, Hi: 6},
				Series: []*facet.Series{
					{Name: "choiceT1", Values: []float64{1, math.NaN()}},
					{Name: "choiceT2", Values: []float64{3, 4}, Err: []float64{0.5, math.NaN()}},
				},
			},
			{
				Title:      "coherenceB",
				Categories: []string{"lo"},
				YLim:       facet.Range{Lo: 0, Hi: 6},
				Series:     []*facet.Series{{Name: "rate", Values: []float64{2}}},
			},
		},
	}
}

func TestDrawAll(t *testing.T) {
	for _, kind := range []string{facet.KindBar, facet.KindLine} {
		var buf bytes.Buffer
		require.NoError(t, Backend{}.DrawAll(&buf, []*facet.Figure{figure(kind)}))
		out := buf.String()
		for _, want := range []string{"coherenceA", "coherenceB", "choiceT1", "choiceT2", "rate - left"} {
			assert.Contains(t, out, want, kind)
		}
	}
}

func TestDrawEmpty(t *testing.T) {
	var buf bytes.Buffer
	err := Backend{}.Draw(&buf, &facet.Figure{Title: "empty"})
	assert.ErrorContains(t, err, "no subplots")
}

func TestPoint(t *testing.T) {
	sp := figure(facet.KindBar).Subplots[0]

	v, name := point(sp, sp.Series[0], 1)
	assert.Equal(t, missing, v)
	assert.Equal(t, "hi", name)

	v, name = point(sp, sp.Series[1], 0)
	assert.Equal(t, 3.0, v)
	assert.Equal(t, "lo (±0.5)", name)

	_, name = point(sp, sp.Series[1], 1)
	assert.Equal(t, "hi", name)
}

func TestFontSize(t *testing.T) {
	assert.Equal(t, 12, fontSize(12))
	assert.Equal(t, 11, fontSize(10.5))
	assert.Equal(t, 10, fontSize(10.4))
	assert.Equal(t, 1, fontSize(0.2))
}

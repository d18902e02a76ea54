// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package facet

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Chart kinds.
const (
	KindBar  = "bar"
	KindLine = "line"
)

// DefaultFontSize is the font size used when a Style does not set
// one.
const DefaultFontSize = 12

// Range is a closed interval of the value axis.
type Range struct {
	Lo, Hi float64
}

// Style carries rendering options through to the backend. The zero
// Style renders bar charts at the default font size with automatic
// value-axis limits.
type Style struct {
	// Kind is KindBar or KindLine. "" means KindBar.
	Kind string

	// FontSize is the title and label font size in points. 0
	// means DefaultFontSize.
	FontSize float64

	// YLim, if non-nil, overrides the value-axis limits.
	YLim *Range

	// Width and Height are the size in pixels of one subplot. 0
	// lets the backend choose.
	Width, Height int

	// Extra holds options this package does not interpret. They
	// are passed through to the backend unchanged.
	Extra map[string]string
}

// ParseStyle builds a Style from key=value options. The recognized
// keys are kind, fontsize, ylim (as "lo,hi"), width and height. Other
// keys are kept in Extra.
func ParseStyle(opts map[string]string) (Style, error) {
	var s Style
	for k, v := range opts {
		var err error
		switch k {
		case "kind":
			if v != KindBar && v != KindLine {
				return s, fmt.Errorf("unknown chart kind %q", v)
			}
			s.Kind = v
		case "fontsize":
			s.FontSize, err = strconv.ParseFloat(v, 64)
			if err == nil && !(finite(s.FontSize) && s.FontSize > 0) {
				return s, fmt.Errorf("fontsize must be positive; got %q", v)
			}
		case "ylim":
			lo, hi, ok := strings.Cut(v, ",")
			if !ok {
				return s, fmt.Errorf("ylim must be lo,hi; got %q", v)
			}
			var r Range
			if r.Lo, err = strconv.ParseFloat(strings.TrimSpace(lo), 64); err != nil {
				break
			}
			if r.Hi, err = strconv.ParseFloat(strings.TrimSpace(hi), 64); err != nil {
				break
			}
			if !finite(r.Lo) || !finite(r.Hi) {
				return s, fmt.Errorf("ylim bounds must be finite; got %q", v)
			}
			if r.Hi <= r.Lo {
				return s, fmt.Errorf("empty ylim %q", v)
			}
			s.YLim = &r
		case "width":
			s.Width, err = strconv.Atoi(v)
		case "height":
			s.Height, err = strconv.Atoi(v)
		default:
			if s.Extra == nil {
				s.Extra = make(map[string]string)
			}
			s.Extra[k] = v
		}
		if err != nil {
			return s, fmt.Errorf("bad %s option: %w", k, err)
		}
	}
	return s, nil
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// withDefaults returns s with unset options filled in.
func (s Style) withDefaults() Style {
	if s.Kind == "" {
		s.Kind = KindBar
	}
	if s.FontSize == 0 {
		s.FontSize = DefaultFontSize
	}
	return s
}

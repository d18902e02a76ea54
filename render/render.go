// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package render selects a drawing backend for facet figures.
package render

import (
	"fmt"
	"io"
	"sort"

	"github.com/aclements/gdfplot/facet"
	"github.com/aclements/gdfplot/render/echarts"
	"github.com/aclements/gdfplot/render/ggsvg"
)

// A Backend draws one figure. Each call receives its figure
// explicitly; backends keep no drawing state between calls.
type Backend interface {
	Draw(w io.Writer, fig *facet.Figure) error
}

// A MultiBackend can also put several figures in one document.
type MultiBackend interface {
	Backend
	DrawAll(w io.Writer, figs []*facet.Figure) error
}

var backends = map[string]Backend{
	"svg":  ggsvg.Backend{},
	"html": echarts.Backend{},
}

// ByName returns the backend for the named output format.
func ByName(format string) (Backend, error) {
	b, ok := backends[format]
	if !ok {
		return nil, fmt.Errorf("unknown format %q (want one of %v)", format, Formats())
	}
	return b, nil
}

// Formats returns the known output format names, sorted.
func Formats() []string {
	var names []string
	for name := range backends {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

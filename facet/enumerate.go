// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package facet

import (
	"fmt"
	"math"

	"github.com/aclements/gdfplot/gtable"
)

// PlottableValues returns the values of dimension dim that have
// something to draw, in first-occurrence order. A value is dropped if
// its cross-section has no observation in any of the named metric
// columns. With no metrics named, every value column other than
// gtable.StdDevCol is considered.
//
// PlottableValues returns an error wrapping ErrIndexShape if t is not
// composite.
func PlottableValues(t *gtable.Table, dim string, metrics ...string) ([]string, error) {
	if !t.Composite() {
		return nil, fmt.Errorf("cannot list plottable values of %q: %w", dim, ErrIndexShape)
	}
	if len(metrics) == 0 {
		metrics = t.Metrics()
	}
	var out []string
	for _, v := range t.Values(dim) {
		if hasData(t.Xs(dim, v), metrics) {
			out = append(out, v)
		}
	}
	return out, nil
}

func hasData(t *gtable.Table, metrics []string) bool {
	for _, m := range metrics {
		for _, x := range t.Column(m) {
			if !math.IsNaN(x) {
				return true
			}
		}
	}
	return false
}

// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package facet

import (
	"errors"
	"fmt"
)

var (
	// ErrNotInKeys indicates that a split parameter names a
	// dimension that is not one of the table's grouping keys.
	ErrNotInKeys = errors.New("not present in grouping keys")

	// ErrMetricNotFound indicates that the requested metric is
	// not a value column of the table.
	ErrMetricNotFound = errors.New("not present in value columns")

	// ErrIndexShape indicates that a table has a single grouping
	// key and so cannot be sliced by dimension. Plot recovers
	// from this by rendering the metric without facets.
	ErrIndexShape = errors.New("table has a single grouping key")

	// ErrNoData indicates that every facet value was dropped
	// because the metric has no observations, so there is
	// nothing to draw.
	ErrNoData = errors.New("metric has no observations")
)

// A ParamError reports a request parameter that does not fit the
// table being plotted.
type ParamError struct {
	Param string // "hsubplots", "vsubplots", "hue" or "metric"
	Name  string // the column name given for Param
	Err   error  // ErrNotInKeys or ErrMetricNotFound

	// Reason optionally refines Err.
	Reason string
}

func (e *ParamError) Error() string {
	msg := fmt.Sprintf("column %q %v (%s parameter)", e.Name, e.Err, e.Param)
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	return msg
}

func (e *ParamError) Unwrap() error {
	return e.Err
}

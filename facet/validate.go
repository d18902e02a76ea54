// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package facet

import (
	"log/slog"

	"github.com/aclements/gdfplot/gtable"
)

// hueIgnored is logged when every grouping key is consumed by a split
// parameter and hue is one of them.
const hueIgnored = "number of grouping keys equals number of plot parameters - " +
	"hue parameter will be ignored to avoid confusing results"

// validate checks req against t's schema and returns the resolved
// metric name.
func validate(t *gtable.Table, req *Request, log *slog.Logger) (string, error) {
	params := []struct{ param, name string }{
		{"hsubplots", req.HSubplots},
		{"vsubplots", req.VSubplots},
		{"hue", req.Hue},
	}
	used := make(map[string]string)
	nonEmpty := 0
	for _, p := range params {
		if p.name == "" {
			continue
		}
		nonEmpty++
		if !t.HasKey(p.name) {
			return "", &ParamError{Param: p.param, Name: p.name, Err: ErrNotInKeys}
		}
		if prev, ok := used[p.name]; ok {
			return "", &ParamError{Param: p.param, Name: p.name, Err: ErrNotInKeys,
				Reason: "already used by the " + prev + " parameter"}
		}
		used[p.name] = p.param
	}

	metric := req.Metric
	if metric == "" {
		ms := t.Metrics()
		if len(ms) != 1 {
			return "", &ParamError{Param: "metric", Err: ErrMetricNotFound,
				Reason: "table has several metrics; one must be named"}
		}
		metric = ms[0]
	} else if t.Column(metric) == nil {
		return "", &ParamError{Param: "metric", Name: metric, Err: ErrMetricNotFound}
	}

	// This is a plain count, not a check of which dimensions are
	// left over for hue.
	if nonEmpty == len(t.Keys()) && req.Hue != "" {
		log.Warn(hueIgnored, "hue", req.Hue)
	}
	return metric, nil
}

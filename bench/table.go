// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bench

import (
	"math"
	"sort"

	"github.com/aclements/go-gg/table"
)

// Table returns bs as a flat table with a "name" column, one string
// column per configuration key and one float64 column per unit.
// Configuration and unit columns are each sorted by name. Missing
// configuration values are "" and missing results are NaN.
func Table(bs []*Benchmark) *table.Table {
	nan := math.NaN()
	names := make([]string, len(bs))
	configs, results := map[string][]string{}, map[string][]float64{}
	for i, b := range bs {
		names[i] = b.Name
		for k, v := range b.Config {
			seq, ok := configs[k]
			if !ok {
				seq = make([]string, len(bs))
				configs[k] = seq
			}
			seq[i] = v
		}
		for k, v := range b.Result {
			seq, ok := results[k]
			if !ok {
				seq = make([]float64, len(bs))
				for j := range seq {
					seq[j] = nan
				}
				results[k] = seq
			}
			seq[i] = v
		}
	}

	tab := new(table.Builder).Add("name", names)
	for _, k := range sortedKeys(configs) {
		if k == "name" {
			continue
		}
		tab.Add(k, configs[k])
	}
	for _, k := range sortedKeys(results) {
		if _, ok := configs[k]; ok || k == "name" {
			continue
		}
		tab.Add(k, results[k])
	}
	return tab.Done()
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

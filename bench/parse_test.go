// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bench

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	for _, test := range []struct {
		name  string
		input string
		want  []*Benchmark
	}{
		{"basic", `
BenchmarkX	1	2 ns/op 3 MB/s`,
			[]*Benchmark{
				{"X", 1, map[string]string{}, map[string]float64{"ns/op": 2, "MB/s": 3}},
			},
		},
		{"short name", `
Benchmark	1	2 ns/op`,
			[]*Benchmark{
				{"", 1, map[string]string{}, map[string]float64{"ns/op": 2}},
			},
		},
		{"bad names", `
Benchmarkx	1	2 ns/op
benchmarkx	1	2 ns/op
benchmarkX	1	2 ns/op`,
			[]*Benchmark{},
		},
		{"short lines", `
BenchmarkX
BenchmarkX	1
BenchmarkX	1	2`,
			[]*Benchmark{},
		},
		{"bad iterations", `
BenchmarkX	0	2 ns/op
BenchmarkX	many	2 ns/op`,
			[]*Benchmark{},
		},
		{"gomaxprocs", `
BenchmarkX-4	1	2 ns/op`,
			[]*Benchmark{
				{"X", 1, map[string]string{"gomaxprocs": "4"}, map[string]float64{"ns/op": 2}},
			},
		},
		{"name config", `
BenchmarkX/a:20/b:abc-8	1	2 ns/op
BenchmarkY/c:123	2	4 ns/op`,
			[]*Benchmark{
				{"X", 1, map[string]string{"a": "20", "b": "abc", "gomaxprocs": "8"}, map[string]float64{"ns/op": 2}},
				{"Y", 2, map[string]string{"c": "123"}, map[string]float64{"ns/op": 4}},
			},
		},
		{"block config", `
commit: 123456
date: Jan 1
colon:colon: 42
blank:
#not-config: x
spa ce: x
Not-config: x
BenchmarkX	1	2 ns/op`,
			[]*Benchmark{
				{"X", 1, map[string]string{
					"commit":      "123456",
					"date":        "Jan 1",
					"colon:colon": "42",
					"blank":       "",
				}, map[string]float64{"ns/op": 2}},
			},
		},
		{"name overrides block", `
commit: 123456
commit: abcdef
BenchmarkX/commit:fedcba	1	2 ns/op
BenchmarkY	1	2 ns/op`,
			[]*Benchmark{
				{"X", 1, map[string]string{"commit": "fedcba"}, map[string]float64{"ns/op": 2}},
				{"Y", 1, map[string]string{"commit": "abcdef"}, map[string]float64{"ns/op": 2}},
			},
		},
	} {
		t.Run(test.name, func(t *testing.T) {
			bs, err := Parse(strings.NewReader(test.input))
			require.NoError(t, err)
			assert.Equal(t, test.want, bs)
		})
	}
}

func TestTable(t *testing.T) {
	bs, err := Parse(strings.NewReader(`
goos: linux
BenchmarkEncode/size:small-4	100	20 ns/op	8 B/op
BenchmarkEncode/size:large-4	10	200 ns/op
BenchmarkDecode-2	50	30 ns/op	16 B/op
`))
	require.NoError(t, err)
	tab := Table(bs)

	assert.Equal(t, []string{"name", "gomaxprocs", "goos", "size", "B/op", "ns/op"}, tab.Columns())
	assert.Equal(t, []string{"Encode", "Encode", "Decode"}, tab.MustColumn("name"))
	assert.Equal(t, []string{"small", "large", ""}, tab.MustColumn("size"))
	assert.Equal(t, []string{"4", "4", "2"}, tab.MustColumn("gomaxprocs"))
	assert.Equal(t, []float64{20, 200, 30}, tab.MustColumn("ns/op"))

	bop := tab.MustColumn("B/op").([]float64)
	assert.Equal(t, 8.0, bop[0])
	assert.True(t, math.IsNaN(bop[1]))
	assert.Equal(t, 16.0, bop[2])
}

// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bench reads Go benchmark results files as tables.
//
// The file format is described at:
// https://github.com/golang/proposal/blob/master/design/14313-benchmark-format.md
package bench

import (
	"bufio"
	"io"
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Benchmark is one benchmark result line.
type Benchmark struct {
	// Name is the benchmark name without the "Benchmark" prefix,
	// sub-benchmark configuration or GOMAXPROCS suffix.
	Name string

	Iterations int

	// Config maps configuration keys to raw values. It combines
	// the enclosing configuration block with "/key:value" parts
	// of the benchmark name, which take precedence. A "-N" name
	// suffix is recorded as "gomaxprocs".
	Config map[string]string

	// Result maps units to measured values.
	Result map[string]float64
}

var configRe = regexp.MustCompile(`^(\p{Ll}[^\p{Lu}\s\x85\xa0\x{1680}\x{2000}-\x{200a}\x{2028}\x{2029}\x{202f}\x{205f}\x{3000}]*):(?:[ \t]+(.*))?$`)

// Parse reads a benchmark results file from r. Lines that are neither
// configuration nor well-formed benchmark results are skipped.
func Parse(r io.Reader) ([]*Benchmark, error) {
	benchmarks := []*Benchmark{}
	block := make(map[string]string)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()

		if m := configRe.FindStringSubmatch(line); m != nil {
			block[m[1]] = m[2]
			continue
		}
		if strings.HasPrefix(line, "Benchmark") {
			if b := parseLine(line, block); b != nil {
				benchmarks = append(benchmarks, b)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return benchmarks, nil
}

func parseLine(line string, block map[string]string) *Benchmark {
	f := strings.Fields(line)
	if len(f) < 4 {
		return nil
	}
	name := strings.TrimPrefix(f[0], "Benchmark")
	if name != "" {
		next, _ := utf8.DecodeRuneInString(name)
		if !unicode.IsUpper(next) {
			return nil
		}
	}
	n, err := strconv.Atoi(f[1])
	if err != nil || n <= 0 {
		return nil
	}

	b := &Benchmark{
		Iterations: n,
		Config:     make(map[string]string, len(block)+1),
		Result:     make(map[string]float64),
	}
	for k, v := range block {
		b.Config[k] = v
	}

	if i := strings.LastIndex(name, "-"); i >= 0 {
		if _, err := strconv.Atoi(name[i+1:]); err == nil {
			b.Config["gomaxprocs"] = name[i+1:]
			name = name[:i]
		}
	}
	parts := strings.Split(name, "/")
	b.Name = parts[0]
	for _, part := range parts[1:] {
		if k, v, ok := strings.Cut(part, ":"); ok {
			b.Config[k] = v
		}
	}

	for i := 2; i+2 <= len(f); i += 2 {
		val, err := strconv.ParseFloat(f[i], 64)
		if err != nil {
			continue
		}
		b.Result[f[i+1]] = val
	}
	return b
}

// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command gdfplot plots a metric of a grouped table as a grid of bar
// or line charts.
//
// gdfplot reads a flat table from CSV, TSV, Excel or Go benchmark
// format [1] inputs, or from a SQL query, groups it by the -by
// columns, and plots one -metric of the result. The -vsubplots,
// -hsubplots and -hue flags name grouping columns to split into
// separate figures, side-by-side subplots and colored series.
//
// Defaults for -format, -style and -db can be set with the
// GDFPLOT_FORMAT, GDFPLOT_STYLE and GDFPLOT_DB environment variables,
// which are also read from a .env file in the current directory.
//
// [1] https://github.com/golang/proposal/blob/master/design/14313-benchmark-format.md
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"runtime"
	"runtime/pprof"
	"strings"

	"github.com/aclements/go-gg/table"
	"github.com/joho/godotenv"

	"github.com/aclements/gdfplot/facet"
	"github.com/aclements/gdfplot/gtable"
	"github.com/aclements/gdfplot/render"
)

func main() {
	log.SetPrefix("gdfplot: ")
	log.SetFlags(0)

	// A missing .env file is fine.
	_ = godotenv.Load()

	var (
		flagCPUProfile = flag.String("cpuprofile", "", "write CPU profile to `file`")
		flagMemProfile = flag.String("memprofile", "", "write heap profile to `file`")
		flagOut        = flag.String("o", "", "write output to `file` (default: stdout)")
		flagTable      = flag.Bool("table", false, "output the grouped table instead of a plot")
		flagFormat     = flag.String("format", envOr("GDFPLOT_FORMAT", "svg"), "output `format`: "+strings.Join(render.Formats(), " or "))
		flagInFormat   = flag.String("informat", "", "input `format`: csv, tsv, xlsx or bench (default: by file extension)")
		flagSheet      = flag.String("sheet", "", "read `sheet` of xlsx inputs (default: first sheet)")
		flagDB         = flag.String("db", envOr("GDFPLOT_DB", ""), "read from database `driver:dsn` instead of inputs")
		flagQuery      = flag.String("query", "", "SQL `query` to run with -db")
		flagBy         = flag.String("by", "", "comma-separated grouping `columns` (default: name for bench inputs)")
		flagAgg        = flag.String("agg", "sum", "aggregate rows with equal keys by `func`: sum or mean")
		flagStdDev     = flag.String("stdev", "", "add a St.Dev column computed from `column`")
		flagMetric     = flag.String("metric", "", "plot value `column` (default: the only one)")
		flagHSubplots  = flag.String("hsubplots", "", "split subplots horizontally by `key`")
		flagVSubplots  = flag.String("vsubplots", "", "split figures vertically by `key`")
		flagHue        = flag.String("hue", "", "split series by `key`")
		flagStyle      = flag.String("style", envOr("GDFPLOT_STYLE", ""), "plot style as space-separated `key=value` pairs")
	)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] [inputs...]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if *flagCPUProfile != "" {
		f, err := os.Create(*flagCPUProfile)
		if err != nil {
			log.Fatal(err)
		}
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}

	if *flagMemProfile != "" {
		defer func() {
			runtime.GC()
			f, err := os.Create(*flagMemProfile)
			if err != nil {
				log.Fatal(err)
			}
			pprof.WriteHeapProfile(f)
			f.Close()
		}()
	}

	style, err := parseStyle(*flagStyle)
	if err != nil {
		log.Fatal(err)
	}
	backend, err := render.ByName(*flagFormat)
	if err != nil {
		log.Fatal(err)
	}

	// Read the flat table.
	var (
		flat   *table.Table
		format string
	)
	if *flagDB != "" {
		flat, err = readDB(context.Background(), *flagDB, *flagQuery)
	} else {
		paths := flag.Args()
		if len(paths) == 0 {
			paths = []string{"-"}
		}
		flat, format, err = readInputs(paths, *flagInFormat, *flagSheet)
	}
	if err != nil {
		log.Fatal(err)
	}

	// Group it.
	by := *flagBy
	if by == "" && format == "bench" {
		by = "name"
	}
	if by == "" {
		log.Fatal("no grouping columns; use -by")
	}
	agg, err := gtable.ParseAgg(*flagAgg)
	if err != nil {
		log.Fatal(err)
	}
	gt, err := gtable.GroupBy(flat, strings.Split(by, ","), gtable.GroupOptions{Agg: agg, StdDev: *flagStdDev})
	if err != nil {
		log.Fatal(err)
	}

	if *flagTable {
		out, err := create(*flagOut)
		if err != nil {
			log.Fatal(err)
		}
		table.Fprint(out, gt.Flat())
		if err := out.Close(); err != nil {
			log.Fatal(err)
		}
		return
	}

	figs, err := facet.Plot(gt, facet.Request{
		Metric:    *flagMetric,
		HSubplots: *flagHSubplots,
		VSubplots: *flagVSubplots,
		Hue:       *flagHue,
		Style:     style,
		Logger:    slog.New(slog.NewTextHandler(os.Stderr, nil)),
	})
	if err != nil {
		log.Fatal(err)
	}
	if err := writeFigures(backend, figs, *flagOut); err != nil {
		log.Fatal(err)
	}
}

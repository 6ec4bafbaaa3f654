// Copyright 2026 The tb-perf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Sweepplot analyzes a benchmark sweep and renders it as PNG charts.
//
// Usage:
//
//	sweepplot [-title text] [-o file.png] [-charts list] [-top n] [-x dim] [-logx] results.csv
//
// The input file is the CSV output of a benchmark sweep: one row per
// measured configuration with concurrency, pool_size, tps and
// error_rate columns, plus an optional label (or executor) column.
//
// Sweepplot keeps the configurations whose error rate is zero, ranks
// them by throughput, prints a summary to standard output and writes
// the requested charts:
//
//	line     throughput against concurrency, best point highlighted
//	series   one line per group value (see -x), best point highlighted
//	heatmap  throughput over the (concurrency, pool_size) grid
//	bar      top configurations side by side
//
// With a single chart the output is written to -o (by default the
// input name with a .png extension); with several charts the chart
// name is appended to the output name.
//
// Sweepplot exits non-zero when the input file is missing or
// malformed, when the sweep has no records, or when every
// configuration failed.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/softwaremill/tb-perf/sweepfmt"
	"github.com/softwaremill/tb-perf/sweepplot"
	"github.com/softwaremill/tb-perf/sweepproc"
	"github.com/softwaremill/tb-perf/sweepstat"
)

var (
	flagTitle  = flag.String("title", "", "chart `title`")
	flagOut    = flag.String("o", "", "write charts to `file` (default: input with .png extension)")
	flagCharts = flag.String("charts", "line", "comma-separated `list` of charts: line, series, heatmap, bar")
	flagTop    = flag.Int("top", 5, "report the top `n` configurations")
	flagX      = flag.String("x", "concurrency", "`dimension` on the x axis: concurrency or pool")
	flagLogX   = flag.Bool("logx", false, "use a log-scale x axis")
)

func usage() {
	fmt.Fprintf(os.Stderr, "usage: sweepplot [options] results.csv\n")
	fmt.Fprintf(os.Stderr, "options:\n")
	flag.PrintDefaults()
	os.Exit(2)
}

// xDims maps the -x flag to the x-axis dimension; the grouping
// dimension is the other one.
var xDims = map[string]sweepproc.Dim{
	"concurrency": sweepproc.DimConcurrency,
	"c":           sweepproc.DimConcurrency,
	"pool":        sweepproc.DimPoolSize,
	"pool_size":   sweepproc.DimPoolSize,
}

// outPath names the output file for one chart. The chart name is
// appended only when several charts are being written.
func outPath(base, chart string, multi bool) string {
	if !multi {
		return base
	}
	ext := filepath.Ext(base)
	return strings.TrimSuffix(base, ext) + "-" + chart + ext
}

func main() {
	log.SetPrefix("sweepplot: ")
	log.SetFlags(0)
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
	}
	xDim, ok := xDims[strings.ToLower(*flagX)]
	if !ok {
		flag.Usage()
	}
	groupDim := sweepproc.DimPoolSize
	if xDim == sweepproc.DimPoolSize {
		groupDim = sweepproc.DimConcurrency
	}

	file := flag.Arg(0)
	f, err := os.Open(file)
	if err != nil {
		log.Fatal(err)
	}
	recs, err := sweepfmt.ReadAll(f, file, sweepfmt.DefaultSchema)
	f.Close()
	if err != nil {
		log.Fatal(err)
	}

	s, err := sweepstat.Summarize(*flagTitle, recs, *flagTop)
	if err != nil {
		log.Fatal(err)
	}
	sweepstat.FormatText(os.Stdout, s)

	base := *flagOut
	if base == "" {
		base = strings.TrimSuffix(file, filepath.Ext(file)) + ".png"
	}
	charts := strings.Split(*flagCharts, ",")
	multi := len(charts) > 1

	ranked := sweepproc.Rank(recs)
	rows := ranked.Rows()
	opt := sweepplot.Options{Title: *flagTitle, LogX: *flagLogX}

	for _, chart := range charts {
		chart = strings.TrimSpace(chart)
		path := outPath(base, chart, multi)
		switch chart {
		case "line":
			err = sweepplot.Line(rows, s.Best, opt, path)
		case "series":
			err = sweepplot.Series(sweepproc.GroupBy(rows, groupDim, xDim), s.Best, opt, path)
		case "heatmap":
			err = sweepplot.Heatmap(sweepproc.Pivot(rows, groupDim, xDim), opt, path)
		case "bar":
			err = sweepplot.Bars(sweepstat.FromRanked(ranked, *flagTop), opt, path)
		default:
			log.Fatalf("unknown chart %q", chart)
		}
		if err != nil {
			log.Fatalf("%s: %v", chart, err)
		}
		fmt.Printf("wrote %s\n", path)
	}
}

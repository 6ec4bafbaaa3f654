// Copyright 2026 The tb-perf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Sweepstat compares benchmark sweeps.
//
// Usage:
//
//	sweepstat [-top n] [-html] [-csv] [label=]file.csv...
//
// Each input file is the CSV output of one benchmark sweep. A file
// may be given as label=file.csv, in which case the label names the
// sweep in the report; files whose records already carry a label (or
// executor) column keep it.
//
// Sweepstat merges the inputs, averages repeated runs of the same
// configuration, finds the best viable configuration of each label
// (lowest-error-rate filter, highest throughput), and prints a
// comparison table followed by pairwise statements of the form
//
//	postgres-batched is 2.15x faster than postgres
//
// The -html and -csv options select alternative output formats.
//
// Sweepstat exits non-zero when an input is missing or malformed,
// when a sweep has no records, or when every configuration of a sweep
// failed.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"sort"

	"github.com/softwaremill/tb-perf/sweepfmt"
	"github.com/softwaremill/tb-perf/sweepproc"
	"github.com/softwaremill/tb-perf/sweepstat"
)

var (
	flagTitle = flag.String("title", "", "report `title`")
	flagTop   = flag.Int("top", 0, "keep only the best `n` sweeps in the report (0 means all)")
	flagHTML  = flag.Bool("html", false, "print the report as an HTML page")
	flagCSV   = flag.Bool("csv", false, "print the report in CSV form")
)

func usage() {
	fmt.Fprintf(os.Stderr, "usage: sweepstat [options] [label=]file.csv...\n")
	fmt.Fprintf(os.Stderr, "options:\n")
	flag.PrintDefaults()
	os.Exit(2)
}

func main() {
	log.SetPrefix("sweepstat: ")
	log.SetFlags(0)
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() < 1 {
		flag.Usage()
	}

	files := &sweepfmt.Files{Paths: flag.Args()}
	var recs []sweepfmt.Record
	for files.Scan() {
		recs = append(recs, files.Record())
	}
	if err := files.Err(); err != nil {
		log.Fatal(err)
	}

	recs = sweepproc.CollapseRuns(recs)

	// One best viable configuration per label, in input order.
	byLabel := make(map[string][]sweepfmt.Record)
	var labels []string
	for _, r := range recs {
		if _, ok := byLabel[r.Label]; !ok {
			labels = append(labels, r.Label)
		}
		byLabel[r.Label] = append(byLabel[r.Label], r)
	}

	var bests []sweepfmt.Record
	considered, retained := 0, 0
	for _, label := range labels {
		t := sweepproc.Rank(byLabel[label])
		best, err := t.Best()
		if err != nil {
			if label != "" {
				log.Fatalf("%s: %v", label, err)
			}
			log.Fatal(err)
		}
		bests = append(bests, best)
		considered += t.Considered()
		retained += t.Retained()
	}
	if len(bests) == 0 {
		log.Fatal(sweepproc.ErrEmptyDataset)
	}
	sort.SliceStable(bests, func(i, j int) bool {
		return bests[i].Throughput > bests[j].Throughput
	})
	if *flagTop > 0 && *flagTop < len(bests) {
		bests = bests[:*flagTop]
	}

	cfgs := make([]sweepstat.Config, len(bests))
	tps := make([]float64, len(bests))
	for i, r := range bests {
		cfgs[i] = sweepstat.Config{Name: sweepstat.ConfigName(r), Throughput: r.Throughput}
		tps[i] = r.Throughput
	}
	ratios, err := sweepstat.Compare(cfgs)
	if err != nil {
		log.Fatal(err)
	}

	s := &sweepstat.Summary{
		Title:      *flagTitle,
		Best:       bests[0],
		Considered: considered,
		Retained:   retained,
		Top:        bests,
		Ratios:     ratios,
		Dist:       sweepproc.DistOf(tps),
	}

	switch {
	case *flagHTML:
		if err := sweepstat.FormatHTML(os.Stdout, s); err != nil {
			log.Fatal(err)
		}
	case *flagCSV:
		sweepstat.FormatCSV(os.Stdout, s)
	default:
		sweepstat.FormatText(os.Stdout, s)
	}
}

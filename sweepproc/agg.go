// Copyright 2026 The tb-perf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sweepproc

import (
	"sort"

	"github.com/aclements/go-gg/ggstat"
	"github.com/aclements/go-gg/table"

	"github.com/softwaremill/tb-perf/sweepfmt"
)

// runRow is the flat row shape handed to the go-gg aggregation
// pipeline. Only exported fields become table columns.
type runRow struct {
	Label       string
	Concurrency int
	PoolSize    int
	Throughput  float64
	ErrorRate   float64
}

// CollapseRuns merges repeated runs of the same (label, concurrency,
// pool size) configuration into a single record carrying the mean
// throughput and the worst error rate observed across the runs.
// Records of configurations that were run once pass through
// unchanged.
//
// The result is sorted by (label, concurrency, pool size), so
// collapsing is deterministic regardless of input order. Source
// positions are not retained; a collapsed record no longer
// corresponds to one file row.
func CollapseRuns(recs []sweepfmt.Record) []sweepfmt.Record {
	if len(recs) == 0 {
		return nil
	}

	rows := make([]runRow, len(recs))
	for i, r := range recs {
		rows[i] = runRow{r.Label, r.Concurrency, r.PoolSize, r.Throughput, r.ErrorRate}
	}

	g := ggstat.Agg("Label", "Concurrency", "PoolSize")(
		ggstat.AggMean("Throughput"),
		ggstat.AggMax("ErrorRate"),
	).F(table.TableFromStructs(rows))
	flat := table.Flatten(g)

	labels := flat.MustColumn("Label").([]string)
	concs := flat.MustColumn("Concurrency").([]int)
	pools := flat.MustColumn("PoolSize").([]int)
	tps := flat.MustColumn("mean Throughput").([]float64)
	errRates := flat.MustColumn("max ErrorRate").([]float64)

	out := make([]sweepfmt.Record, len(labels))
	for i := range labels {
		out[i] = sweepfmt.Record{
			Label:       labels[i],
			Concurrency: concs[i],
			PoolSize:    pools[i],
			Throughput:  tps[i],
			ErrorRate:   errRates[i],
		}
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Label != b.Label {
			return a.Label < b.Label
		}
		if a.Concurrency != b.Concurrency {
			return a.Concurrency < b.Concurrency
		}
		return a.PoolSize < b.PoolSize
	})
	return out
}

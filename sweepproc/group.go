// Copyright 2026 The tb-perf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sweepproc

import (
	"fmt"
	"sort"

	"github.com/softwaremill/tb-perf/sweepfmt"
)

// A Dim names a swept configuration dimension. The grouping and
// series dimensions of GroupBy and Pivot are caller-selected, so one
// builder serves both pool-centric and concurrency-centric views.
type Dim int

const (
	DimConcurrency Dim = iota
	DimPoolSize
)

func (d Dim) String() string {
	switch d {
	case DimConcurrency:
		return "concurrency"
	case DimPoolSize:
		return "pool_size"
	}
	return fmt.Sprintf("Dim(%d)", int(d))
}

// Of returns the record's coordinate on d.
func (d Dim) Of(r sweepfmt.Record) int {
	if d == DimPoolSize {
		return r.PoolSize
	}
	return r.Concurrency
}

// A SeriesPoint is one (key, throughput) pair within a grouped
// series.
type SeriesPoint struct {
	Key        int
	Throughput float64
}

// A GroupedSeries groups records by one dimension and orders each
// group's points by the other, ready for per-group line rendering.
type GroupedSeries struct {
	GroupDim, SeriesDim Dim

	// Groups is the sorted list of distinct group values present
	// in the data.
	Groups []int

	// Series maps each group value to its points, sorted
	// ascending by Key. Groups with a single point are kept;
	// callers decide whether to render them.
	Series map[int][]SeriesPoint
}

// GroupBy groups recs by the group dimension and builds one ordered
// series per distinct group value, keyed by the series dimension.
func GroupBy(recs []sweepfmt.Record, group, series Dim) *GroupedSeries {
	gs := &GroupedSeries{
		GroupDim:  group,
		SeriesDim: series,
		Series:    make(map[int][]SeriesPoint),
	}
	for _, r := range recs {
		g := group.Of(r)
		if _, ok := gs.Series[g]; !ok {
			gs.Groups = append(gs.Groups, g)
		}
		gs.Series[g] = append(gs.Series[g], SeriesPoint{series.Of(r), r.Throughput})
	}
	sort.Ints(gs.Groups)
	for _, pts := range gs.Series {
		sort.Slice(pts, func(i, j int) bool { return pts[i].Key < pts[j].Key })
	}
	return gs
}

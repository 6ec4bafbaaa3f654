// Copyright 2026 The tb-perf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sweepproc

import (
	"errors"
	"reflect"
	"testing"

	"github.com/softwaremill/tb-perf/sweepfmt"
)

func rec(c, p int, tps, errRate float64) sweepfmt.Record {
	return sweepfmt.Record{Concurrency: c, PoolSize: p, Throughput: tps, ErrorRate: errRate}
}

func TestRank(t *testing.T) {
	recs := []sweepfmt.Record{
		rec(1, 4, 1000, 0),
		rec(2, 4, 2500, 0),
		rec(4, 4, 4000, 2.5), // dropped: failed runs don't count
		rec(8, 4, 3000, 0),
		rec(16, 4, 3500, 100),
	}
	tbl := Rank(recs)

	if tbl.Considered() != 5 || tbl.Retained() != 3 {
		t.Errorf("considered, retained = %d, %d, want 5, 3", tbl.Considered(), tbl.Retained())
	}
	want := []sweepfmt.Record{
		rec(8, 4, 3000, 0),
		rec(2, 4, 2500, 0),
		rec(1, 4, 1000, 0),
	}
	if got := tbl.Rows(); !reflect.DeepEqual(got, want) {
		t.Errorf("Rows() = %+v, want %+v", got, want)
	}

	best, err := tbl.Best()
	if err != nil {
		t.Fatalf("Best: %v", err)
	}
	if best != want[0] {
		t.Errorf("Best = %+v, want %+v", best, want[0])
	}
}

func TestRankTieBreak(t *testing.T) {
	// Equal throughput ranks by ascending concurrency, then
	// ascending pool size.
	recs := []sweepfmt.Record{
		rec(8, 2, 1000, 0),
		rec(2, 8, 1000, 0),
		rec(2, 2, 1000, 0),
	}
	want := []sweepfmt.Record{
		rec(2, 2, 1000, 0),
		rec(2, 8, 1000, 0),
		rec(8, 2, 1000, 0),
	}
	if got := Rank(recs).Rows(); !reflect.DeepEqual(got, want) {
		t.Errorf("Rows() = %+v, want %+v", got, want)
	}
}

func TestRankZeroThroughputViable(t *testing.T) {
	// Zero throughput with a zero error rate is a valid measurement
	// and stays in the ranking.
	tbl := Rank([]sweepfmt.Record{rec(1, 1, 0, 0)})
	if tbl.Retained() != 1 {
		t.Errorf("Retained = %d, want 1", tbl.Retained())
	}
}

func TestBestErrors(t *testing.T) {
	if _, err := Rank(nil).Best(); !errors.Is(err, ErrEmptyDataset) {
		t.Errorf("empty sweep: err = %v, want ErrEmptyDataset", err)
	}

	failed := []sweepfmt.Record{rec(1, 1, 100, 5), rec(2, 1, 200, 1)}
	if _, err := Rank(failed).Best(); !errors.Is(err, ErrNoViableConfig) {
		t.Errorf("all failed: err = %v, want ErrNoViableConfig", err)
	}
}

func TestTopK(t *testing.T) {
	recs := []sweepfmt.Record{
		rec(1, 1, 100, 0),
		rec(2, 1, 200, 0),
		rec(4, 1, 300, 0),
	}
	tbl := Rank(recs)

	tests := []struct {
		k    int
		want int
	}{
		{0, 0},
		{-1, 0},
		{2, 2},
		{3, 3},
		{10, 3}, // clamped, not an error
	}
	for _, test := range tests {
		if got := tbl.TopK(test.k); len(got) != test.want {
			t.Errorf("len(TopK(%d)) = %d, want %d", test.k, len(got), test.want)
		}
	}

	top := tbl.TopK(2)
	if top[0].Throughput != 300 || top[1].Throughput != 200 {
		t.Errorf("TopK(2) = %+v, want best first", top)
	}
}

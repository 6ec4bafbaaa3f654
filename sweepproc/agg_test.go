// Copyright 2026 The tb-perf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sweepproc

import (
	"reflect"
	"testing"

	"github.com/softwaremill/tb-perf/sweepfmt"
)

func TestCollapseRuns(t *testing.T) {
	runs := []sweepfmt.Record{
		{Label: "pg", Concurrency: 2, PoolSize: 4, Throughput: 100, ErrorRate: 0},
		{Label: "pg", Concurrency: 2, PoolSize: 4, Throughput: 300, ErrorRate: 1.5},
		{Label: "pg", Concurrency: 2, PoolSize: 4, Throughput: 200, ErrorRate: 0},
		{Label: "tb", Concurrency: 2, PoolSize: 4, Throughput: 900, ErrorRate: 0},
	}
	got := CollapseRuns(runs)

	want := []sweepfmt.Record{
		// Mean throughput, worst error rate across the three runs.
		{Label: "pg", Concurrency: 2, PoolSize: 4, Throughput: 200, ErrorRate: 1.5},
		{Label: "tb", Concurrency: 2, PoolSize: 4, Throughput: 900, ErrorRate: 0},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("CollapseRuns = %+v, want %+v", got, want)
	}
}

func TestCollapseRunsPassThrough(t *testing.T) {
	runs := []sweepfmt.Record{
		{Concurrency: 4, PoolSize: 8, Throughput: 150, ErrorRate: 0.5},
		{Concurrency: 2, PoolSize: 8, Throughput: 100, ErrorRate: 0},
	}
	got := CollapseRuns(runs)

	// Single runs pass through unchanged, sorted by configuration.
	want := []sweepfmt.Record{
		{Concurrency: 2, PoolSize: 8, Throughput: 100, ErrorRate: 0},
		{Concurrency: 4, PoolSize: 8, Throughput: 150, ErrorRate: 0.5},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("CollapseRuns = %+v, want %+v", got, want)
	}
}

func TestCollapseRunsEmpty(t *testing.T) {
	if got := CollapseRuns(nil); got != nil {
		t.Errorf("CollapseRuns(nil) = %+v, want nil", got)
	}
}

// Copyright 2026 The tb-perf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sweepstat

import (
	"errors"
	"math"
	"testing"

	"github.com/softwaremill/tb-perf/sweepfmt"
)

func TestCompare(t *testing.T) {
	cfgs := []Config{
		{"tigerbeetle", 4300},
		{"postgres-batched", 2000},
		{"postgres", 1000},
	}
	ratios, err := Compare(cfgs)
	if err != nil {
		t.Fatalf("Compare: %v", err)
	}

	want := []struct {
		faster, slower string
		value          float64
	}{
		{"tigerbeetle", "postgres-batched", 2.15},
		{"tigerbeetle", "postgres", 4.3},
		{"postgres-batched", "postgres", 2},
	}
	if len(ratios) != len(want) {
		t.Fatalf("got %d ratios, want %d", len(ratios), len(want))
	}
	for i, w := range want {
		r := ratios[i]
		if r.Faster.Name != w.faster || r.Slower.Name != w.slower || math.Abs(r.Value-w.value) > 1e-9 {
			t.Errorf("ratios[%d] = %+v, want %s/%s = %v", i, r, w.faster, w.slower, w.value)
		}
	}

	if got, want := ratios[0].String(), "tigerbeetle is 2.15x faster than postgres-batched"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestCompareZeroThroughput(t *testing.T) {
	cfgs := []Config{{"a", 100}, {"b", 0}}
	_, err := Compare(cfgs)
	var ze *ZeroThroughputError
	if !errors.As(err, &ze) {
		t.Fatalf("err = %v, want *ZeroThroughputError", err)
	}
	if ze.Num != "a" || ze.Den != "b" {
		t.Errorf("error names %q, %q, want a, b", ze.Num, ze.Den)
	}
}

func TestCompareDegenerate(t *testing.T) {
	for _, cfgs := range [][]Config{nil, {{"only", 100}}} {
		ratios, err := Compare(cfgs)
		if err != nil {
			t.Errorf("Compare(%v): %v", cfgs, err)
		}
		if len(ratios) != 0 {
			t.Errorf("Compare(%v) = %v, want none", cfgs, ratios)
		}
	}
}

func TestConfigName(t *testing.T) {
	labeled := sweepfmt.Record{Concurrency: 2, PoolSize: 4, Label: "postgres"}
	if got := ConfigName(labeled); got != "postgres" {
		t.Errorf("ConfigName = %q, want %q", got, "postgres")
	}
	plain := sweepfmt.Record{Concurrency: 2, PoolSize: 4}
	if got := ConfigName(plain); got != "c=2 pool=4" {
		t.Errorf("ConfigName = %q, want %q", got, "c=2 pool=4")
	}
}

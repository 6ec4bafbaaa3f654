// Copyright 2026 The tb-perf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sweepproc

import (
	"reflect"
	"testing"

	"github.com/softwaremill/tb-perf/sweepfmt"
)

func TestPivot(t *testing.T) {
	// A sparse grid: (c=2, pool=8) was never measured.
	recs := []sweepfmt.Record{
		rec(1, 4, 100, 0),
		rec(1, 8, 150, 0),
		rec(2, 4, 200, 0),
	}
	p := Pivot(recs, DimPoolSize, DimConcurrency)

	if want := []int{4, 8}; !reflect.DeepEqual(p.Rows, want) {
		t.Errorf("Rows = %v, want %v", p.Rows, want)
	}
	if want := []int{1, 2}; !reflect.DeepEqual(p.Cols, want) {
		t.Errorf("Cols = %v, want %v", p.Cols, want)
	}

	if v, ok := p.Value(4, 2); !ok || v != 200 {
		t.Errorf("Value(4, 2) = %v, %v, want 200, true", v, ok)
	}
	// A missing cell is reported as missing, never as zero.
	if v, ok := p.Value(8, 2); ok {
		t.Errorf("Value(8, 2) = %v, %v, want missing", v, ok)
	}
}

func TestPivotZeroCell(t *testing.T) {
	// A measured zero is distinguishable from a missing cell.
	p := Pivot([]sweepfmt.Record{rec(1, 4, 0, 0)}, DimPoolSize, DimConcurrency)
	if v, ok := p.Value(4, 1); !ok || v != 0 {
		t.Errorf("Value(4, 1) = %v, %v, want 0, true", v, ok)
	}
}

func TestPivotDuplicateCell(t *testing.T) {
	// The last record written into a cell wins.
	recs := []sweepfmt.Record{
		rec(1, 4, 100, 0),
		rec(1, 4, 120, 0),
	}
	p := Pivot(recs, DimPoolSize, DimConcurrency)
	if v, ok := p.Value(4, 1); !ok || v != 120 {
		t.Errorf("Value(4, 1) = %v, %v, want 120, true", v, ok)
	}
}

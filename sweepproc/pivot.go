// Copyright 2026 The tb-perf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sweepproc

import (
	"sort"

	"github.com/softwaremill/tb-perf/sweepfmt"
)

type pivotKey struct {
	row, col int
}

// A PivotTable maps (row dimension, column dimension) pairs to
// throughput, for heatmap rendering.
//
// Not all (row, column) pairs need be present: a cell with no source
// record is reported as missing, never as zero, since zero throughput
// is a valid measured outcome. Rendering code shows missing cells as
// blank.
type PivotTable struct {
	RowDim, ColDim Dim

	// Rows and Cols are the sorted distinct values of the two
	// dimensions present in the data.
	Rows, Cols []int

	cells map[pivotKey]float64
}

// Pivot builds a two-dimensional table of throughput keyed by the row
// and column dimensions. When several records land in the same cell
// the last one wins; collapse repeated runs first (see CollapseRuns)
// if that matters.
func Pivot(recs []sweepfmt.Record, row, col Dim) *PivotTable {
	p := &PivotTable{
		RowDim: row,
		ColDim: col,
		cells:  make(map[pivotKey]float64),
	}
	rowSeen := make(map[int]bool)
	colSeen := make(map[int]bool)
	for _, r := range recs {
		k := pivotKey{row.Of(r), col.Of(r)}
		p.cells[k] = r.Throughput
		if !rowSeen[k.row] {
			rowSeen[k.row] = true
			p.Rows = append(p.Rows, k.row)
		}
		if !colSeen[k.col] {
			colSeen[k.col] = true
			p.Cols = append(p.Cols, k.col)
		}
	}
	sort.Ints(p.Rows)
	sort.Ints(p.Cols)
	return p
}

// Value returns the throughput measured at (row, col). ok reports
// whether the cell has a source record; a missing cell returns
// ok == false, never a zero measurement.
func (p *PivotTable) Value(row, col int) (v float64, ok bool) {
	v, ok = p.cells[pivotKey{row, col}]
	return
}

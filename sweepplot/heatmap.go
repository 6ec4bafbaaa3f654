// Copyright 2026 The tb-perf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sweepplot

import (
	"fmt"
	"math"

	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"

	"github.com/softwaremill/tb-perf/sweepproc"
)

// pivotGrid adapts a PivotTable to plotter.GridXYZ. The column
// dimension runs along X and the row dimension along Y. Missing cells
// report NaN, which the heat map leaves unpainted.
type pivotGrid struct {
	p *sweepproc.PivotTable
}

func (g pivotGrid) Dims() (c, r int) { return len(g.p.Cols), len(g.p.Rows) }
func (g pivotGrid) X(c int) float64  { return float64(g.p.Cols[c]) }
func (g pivotGrid) Y(r int) float64  { return float64(g.p.Rows[r]) }

func (g pivotGrid) Z(c, r int) float64 {
	v, ok := g.p.Value(g.p.Rows[r], g.p.Cols[c])
	if !ok {
		return math.NaN()
	}
	return v
}

// Heatmap renders a pivot table as a colored grid with the measured
// throughput annotated in each cell. Cells with no source record are
// left blank rather than drawn as zero.
func Heatmap(p *sweepproc.PivotTable, opt Options, path string) error {
	if len(p.Rows) == 0 || len(p.Cols) == 0 {
		return errNoData
	}

	h := plotter.NewHeatMap(pivotGrid{p}, palette.Heat(12, 1))

	// Pin the color range to the measured values so NaN cells
	// cannot skew it.
	min, max := math.Inf(1), math.Inf(-1)
	var labels plotter.XYLabels
	for ri, row := range p.Rows {
		for ci, col := range p.Cols {
			v, ok := p.Value(row, col)
			if !ok {
				continue
			}
			min = math.Min(min, v)
			max = math.Max(max, v)
			labels.XYs = append(labels.XYs, plotter.XY{X: float64(p.Cols[ci]), Y: float64(p.Rows[ri])})
			labels.Labels = append(labels.Labels, fmt.Sprintf("%.0f", v))
		}
	}
	h.Min, h.Max = min, max

	// Cells are drawn in data coordinates, so the axes stay linear.
	opt.LogX = false
	pl := newPlot(opt, p.ColDim.String(), p.RowDim.String())
	pl.Add(h)

	lab, err := plotter.NewLabels(labels)
	if err != nil {
		return err
	}
	pl.Add(lab)

	return writePNG(pl, path, opt)
}

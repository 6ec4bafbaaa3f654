// Copyright 2026 The tb-perf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sweepplot

import (
	"fmt"

	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/softwaremill/tb-perf/sweepfmt"
	"github.com/softwaremill/tb-perf/sweepproc"
)

// Series renders one line-and-scatter series per group value (e.g.
// one line per pool size, points keyed by concurrency) and highlights
// the best configuration. Single-point groups get a marker but no
// line.
func Series(gs *sweepproc.GroupedSeries, best sweepfmt.Record, opt Options, path string) error {
	if len(gs.Groups) == 0 {
		return errNoData
	}

	pl := newPlot(opt, gs.SeriesDim.String(), "Throughput (TPS)")
	pl.Add(plotter.NewGrid())

	for i, g := range gs.Groups {
		pts := make(plotter.XYs, len(gs.Series[g]))
		for j, sp := range gs.Series[g] {
			pts[j] = plotter.XY{X: float64(sp.Key), Y: sp.Throughput}
		}

		scatter, err := plotter.NewScatter(pts)
		if err != nil {
			return err
		}
		scatter.GlyphStyle.Radius = vg.Points(2.5)
		scatter.Color = seriesColor(i)
		pl.Add(scatter)

		name := fmt.Sprintf("%s=%d", dimShort(gs.GroupDim), g)
		if len(pts) > 1 {
			line, err := plotter.NewLine(pts)
			if err != nil {
				return err
			}
			line.LineStyle.Width = vg.Points(1)
			line.Color = seriesColor(i)
			pl.Add(line)
			pl.Legend.Add(name, line, scatter)
		} else {
			pl.Legend.Add(name, scatter)
		}
	}

	bestPt, err := plotter.NewScatter(plotter.XYs{{X: float64(gs.SeriesDim.Of(best)), Y: best.Throughput}})
	if err != nil {
		return err
	}
	bestPt.GlyphStyle.Radius = vg.Points(6)
	bestPt.Color = bestColor
	pl.Add(bestPt)
	pl.Legend.Add(fmt.Sprintf("best: c=%d, pool=%d (%.1f TPS)", best.Concurrency, best.PoolSize, best.Throughput), bestPt)
	pl.Legend.Top = true

	return writePNG(pl, path, opt)
}

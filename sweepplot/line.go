// Copyright 2026 The tb-perf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sweepplot

import (
	"errors"
	"fmt"
	"sort"

	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/softwaremill/tb-perf/sweepfmt"
)

// errNoData is returned when a chart is asked to render zero points.
var errNoData = errors.New("sweepplot: no records to plot")

// Line renders throughput against concurrency as a connected line
// with point markers, sorted by concurrency, and highlights the best
// configuration in red with a TPS annotation.
func Line(recs []sweepfmt.Record, best sweepfmt.Record, opt Options, path string) error {
	if len(recs) == 0 {
		return errNoData
	}

	pts := make(plotter.XYs, len(recs))
	for i, r := range recs {
		pts[i] = plotter.XY{X: float64(r.Concurrency), Y: r.Throughput}
	}
	sort.Slice(pts, func(i, j int) bool { return pts[i].X < pts[j].X })

	pl := newPlot(opt, "Concurrency", "Throughput (TPS)")
	pl.Add(plotter.NewGrid())

	line, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	line.LineStyle.Width = vg.Points(1.5)
	line.Color = seriesColor(0)

	points, err := plotter.NewScatter(pts)
	if err != nil {
		return err
	}
	points.GlyphStyle.Radius = vg.Points(2.5)
	points.Color = seriesColor(0)

	bestPt, err := plotter.NewScatter(plotter.XYs{{X: float64(best.Concurrency), Y: best.Throughput}})
	if err != nil {
		return err
	}
	bestPt.GlyphStyle.Radius = vg.Points(6)
	bestPt.Color = bestColor

	labels, err := plotter.NewLabels(plotter.XYLabels{
		XYs:    plotter.XYs{{X: float64(best.Concurrency), Y: best.Throughput}},
		Labels: []string{fmt.Sprintf("%.0f TPS @ %d", best.Throughput, best.Concurrency)},
	})
	if err != nil {
		return err
	}

	pl.Add(line, points, bestPt, labels)
	pl.Legend.Add(fmt.Sprintf("best: c=%d (%.1f TPS)", best.Concurrency, best.Throughput), bestPt)
	pl.Legend.Top = true

	return writePNG(pl, path, opt)
}

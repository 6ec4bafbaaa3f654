// Copyright 2026 The tb-perf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sweepplot

import (
	"fmt"

	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/softwaremill/tb-perf/sweepstat"
)

// Bars renders a named-configuration comparison as a bar chart with
// the throughput printed above each bar. The configurations are drawn
// in the order given.
func Bars(cfgs []sweepstat.Config, opt Options, path string) error {
	if len(cfgs) == 0 {
		return errNoData
	}

	vals := make(plotter.Values, len(cfgs))
	names := make([]string, len(cfgs))
	var labels plotter.XYLabels
	for i, c := range cfgs {
		vals[i] = c.Throughput
		names[i] = c.Name
		labels.XYs = append(labels.XYs, plotter.XY{X: float64(i), Y: c.Throughput})
		labels.Labels = append(labels.Labels, fmt.Sprintf("%.0f", c.Throughput))
	}

	opt.LogX = false
	pl := newPlot(opt, "", "Throughput (TPS)")

	bars, err := plotter.NewBarChart(vals, vg.Points(40))
	if err != nil {
		return err
	}
	bars.LineStyle.Width = 0
	bars.Color = seriesColor(0)
	pl.Add(bars)
	pl.NominalX(names...)

	lab, err := plotter.NewLabels(labels)
	if err != nil {
		return err
	}
	pl.Add(lab)

	return writePNG(pl, path, opt)
}

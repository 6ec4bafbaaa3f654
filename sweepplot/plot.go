// Copyright 2026 The tb-perf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sweepplot renders benchmark sweep tables as PNG charts:
// a throughput line chart with the best point highlighted, per-group
// series, a pivot heatmap, and a labeled comparison bar chart.
package sweepplot

import (
	"image/color"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/softwaremill/tb-perf/sweepproc"
)

// Options configure chart rendering. The zero value is usable.
type Options struct {
	// Title is drawn above the chart.
	Title string

	// LogX plots the concurrency axis on a log scale. Sweeps
	// typically double concurrency per step, so this is usually
	// what you want.
	LogX bool

	// Width and Height are the canvas size in centimeters.
	// Zero means 30x17.5.
	Width, Height float64

	// DPI is the PNG resolution. Zero means 150.
	DPI int
}

func (o Options) size() (w, h float64) {
	w, h = o.Width, o.Height
	if w == 0 {
		w = 30
	}
	if h == 0 {
		h = 17.5
	}
	return w, h
}

func (o Options) dpi() int {
	if o.DPI == 0 {
		return 150
	}
	return o.DPI
}

var (
	seriesColors = []color.Color{
		color.NRGBA{0x1f, 0x77, 0xb4, 0xff},
		color.NRGBA{0xff, 0x7f, 0x0e, 0xff},
		color.NRGBA{0x2c, 0xa0, 0x2c, 0xff},
		color.NRGBA{0xd6, 0x27, 0x28, 0xff},
		color.NRGBA{0x94, 0x67, 0xbd, 0xff},
		color.NRGBA{0x8c, 0x56, 0x4b, 0xff},
		color.NRGBA{0xe3, 0x77, 0xc2, 0xff},
		color.NRGBA{0x7f, 0x7f, 0x7f, 0xff},
	}
	bestColor = color.NRGBA{0xd6, 0x27, 0x28, 0xff}
)

func seriesColor(i int) color.Color {
	return seriesColors[i%len(seriesColors)]
}

// dimShort abbreviates a dimension for legend and annotation text.
func dimShort(d sweepproc.Dim) string {
	if d == sweepproc.DimPoolSize {
		return "pool"
	}
	return "c"
}

// writePNG draws pl onto a PNG canvas and writes it to path.
func writePNG(pl *plot.Plot, path string, opt Options) error {
	w, h := opt.size()
	can := vgimg.PngCanvas{Canvas: vgimg.NewWith(
		vgimg.UseWH(vg.Length(w)*vg.Centimeter, vg.Length(h)*vg.Centimeter),
		vgimg.UseDPI(opt.dpi()),
		vgimg.UseBackgroundColor(color.White),
	)}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	pl.Draw(draw.New(can))
	if _, err := can.WriteTo(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// newPlot builds a plot with the shared axis setup.
func newPlot(opt Options, xLabel, yLabel string) *plot.Plot {
	pl := plot.New()
	pl.Title.Text = opt.Title
	pl.X.Label.Text = xLabel
	pl.Y.Label.Text = yLabel
	if opt.LogX {
		pl.X.Scale = plot.LogScale{}
		pl.X.Tick.Marker = plot.LogTicks{Prec: -1}
	}
	return pl
}

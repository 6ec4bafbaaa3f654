// Copyright 2026 The tb-perf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sweepproc

import (
	"github.com/aclements/go-moremath/stats"

	"github.com/softwaremill/tb-perf/sweepfmt"
)

// A Dist summarizes the distribution of a throughput sample, e.g. all
// viable measurements of one executor across a sweep.
type Dist struct {
	N      int
	Mean   float64
	StdDev float64
	// CV is the coefficient of variation, StdDev / Mean. It is 0
	// when the mean is 0.
	CV  float64
	Min float64
	Max float64
}

// DistOf computes distribution statistics over xs. It returns the
// zero Dist for an empty sample.
func DistOf(xs []float64) Dist {
	if len(xs) == 0 {
		return Dist{}
	}
	s := stats.Sample{Xs: xs}
	d := Dist{N: len(xs), Mean: s.Mean()}
	if len(xs) > 1 {
		d.StdDev = s.StdDev()
	}
	if d.Mean > 0 {
		d.CV = d.StdDev / d.Mean
	}
	d.Min, d.Max = s.Bounds()
	return d
}

// ThroughputDist computes the throughput distribution of recs.
func ThroughputDist(recs []sweepfmt.Record) Dist {
	xs := make([]float64, len(recs))
	for i, r := range recs {
		xs[i] = r.Throughput
	}
	return DistOf(xs)
}

// Copyright 2026 The tb-perf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sweepproc

import (
	"math"
	"testing"
)

func TestDistOf(t *testing.T) {
	d := DistOf([]float64{1, 2, 3})
	if d.N != 3 {
		t.Errorf("N = %d, want 3", d.N)
	}
	if d.Mean != 2 {
		t.Errorf("Mean = %v, want 2", d.Mean)
	}
	if math.Abs(d.StdDev-1) > 1e-9 {
		t.Errorf("StdDev = %v, want 1", d.StdDev)
	}
	if math.Abs(d.CV-0.5) > 1e-9 {
		t.Errorf("CV = %v, want 0.5", d.CV)
	}
	if d.Min != 1 || d.Max != 3 {
		t.Errorf("Min, Max = %v, %v, want 1, 3", d.Min, d.Max)
	}
}

func TestDistOfDegenerate(t *testing.T) {
	if d := DistOf(nil); d != (Dist{}) {
		t.Errorf("DistOf(nil) = %+v, want zero", d)
	}

	d := DistOf([]float64{42})
	if d.N != 1 || d.Mean != 42 || d.StdDev != 0 || d.CV != 0 {
		t.Errorf("single sample: %+v", d)
	}

	// A zero mean must not divide; CV stays 0.
	if d := DistOf([]float64{0, 0}); d.CV != 0 {
		t.Errorf("zero mean: CV = %v, want 0", d.CV)
	}
}

// Copyright 2026 The tb-perf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sweepstat

import "fmt"

// A Scaler is a function that scales and formats a throughput value.
// All values within a given table are formatted using the same
// scaler, so the units are consistent across rows.
type Scaler func(float64) string

// NewScaler returns a Scaler appropriate for formatting values
// comparable in magnitude to val.
func NewScaler(val float64) Scaler {
	var format string
	var scale float64
	var suffix string

	switch {
	case val >= 99500000000:
		format, scale, suffix = "%.0f", 1e9, "G"
	case val >= 9950000000:
		format, scale, suffix = "%.1f", 1e9, "G"
	case val >= 995000000:
		format, scale, suffix = "%.2f", 1e9, "G"
	case val >= 99500000:
		format, scale, suffix = "%.0f", 1e6, "M"
	case val >= 9950000:
		format, scale, suffix = "%.1f", 1e6, "M"
	case val >= 995000:
		format, scale, suffix = "%.2f", 1e6, "M"
	case val >= 99500:
		format, scale, suffix = "%.0f", 1e3, "k"
	case val >= 9950:
		format, scale, suffix = "%.1f", 1e3, "k"
	case val >= 995:
		format, scale, suffix = "%.2f", 1e3, "k"
	case val >= 99.5:
		format, scale, suffix = "%.0f", 1, ""
	case val >= 9.95:
		format, scale, suffix = "%.1f", 1, ""
	default:
		format, scale, suffix = "%.2f", 1, ""
	}

	return func(v float64) string {
		return fmt.Sprintf(format+suffix, v/scale)
	}
}

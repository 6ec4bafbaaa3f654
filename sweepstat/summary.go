// Copyright 2026 The tb-perf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sweepstat

import (
	"github.com/softwaremill/tb-perf/sweepfmt"
	"github.com/softwaremill/tb-perf/sweepproc"
)

// A Summary is the reportable outcome of analyzing one sweep: the
// best viable configuration, how much of the input survived the
// error-rate filter, the top-ranked configurations, and the pairwise
// throughput ratios between them.
type Summary struct {
	Title      string
	Best       sweepfmt.Record
	Considered int
	Retained   int
	Top        []sweepfmt.Record
	Ratios     []Ratio
	Dist       sweepproc.Dist
}

// Summarize ranks recs and assembles the report data, comparing the
// topK highest-ranked configurations pairwise. It fails with
// sweepproc.ErrEmptyDataset or sweepproc.ErrNoViableConfig when there
// is nothing to report, and with *ZeroThroughputError when a ranked
// entry has zero throughput.
func Summarize(title string, recs []sweepfmt.Record, topK int) (*Summary, error) {
	t := sweepproc.Rank(recs)
	best, err := t.Best()
	if err != nil {
		return nil, err
	}
	top := t.TopK(topK)
	ratios, err := Compare(FromRanked(t, topK))
	if err != nil {
		return nil, err
	}
	return &Summary{
		Title:      title,
		Best:       best,
		Considered: t.Considered(),
		Retained:   t.Retained(),
		Top:        top,
		Ratios:     ratios,
		Dist:       sweepproc.ThroughputDist(t.Rows()),
	}, nil
}

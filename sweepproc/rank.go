// Copyright 2026 The tb-perf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sweepproc derives ranked, grouped, and pivoted tables from
// benchmark sweep records.
//
// All operations are single-pass batch computations over a fully
// loaded sweep; nothing here retains state between calls.
package sweepproc

import (
	"errors"
	"sort"

	"github.com/softwaremill/tb-perf/sweepfmt"
)

var (
	// ErrEmptyDataset indicates that no records were loaded at
	// all, as opposed to ErrNoViableConfig.
	ErrEmptyDataset = errors.New("no data was found: the sweep has no records")

	// ErrNoViableConfig indicates that every record in the sweep
	// had a non-zero error rate, so there is no correct
	// configuration to report.
	ErrNoViableConfig = errors.New("every configuration failed: no record has a zero error rate")
)

// A RankedTable is the error-free subset of a sweep's records,
// ordered by throughput descending. It is immutable once built.
type RankedTable struct {
	rows       []sweepfmt.Record
	considered int
}

// Rank filters recs down to records with a zero error rate and orders
// them by throughput, descending. Ties are broken by ascending
// concurrency, then ascending pool size, so the ranking is
// deterministic and reproducible across runs.
func Rank(recs []sweepfmt.Record) *RankedTable {
	t := &RankedTable{considered: len(recs)}
	for _, r := range recs {
		if r.ErrorRate == 0 {
			t.rows = append(t.rows, r)
		}
	}
	sort.SliceStable(t.rows, func(i, j int) bool {
		a, b := t.rows[i], t.rows[j]
		if a.Throughput != b.Throughput {
			return a.Throughput > b.Throughput
		}
		if a.Concurrency != b.Concurrency {
			return a.Concurrency < b.Concurrency
		}
		return a.PoolSize < b.PoolSize
	})
	return t
}

// Len returns the number of ranked records.
func (t *RankedTable) Len() int { return len(t.rows) }

// Considered returns the number of records given to Rank, before the
// error-rate filter.
func (t *RankedTable) Considered() int { return t.considered }

// Retained returns the number of records that survived the filter.
func (t *RankedTable) Retained() int { return len(t.rows) }

// Rows returns a copy of the ranked records, best first.
func (t *RankedTable) Rows() []sweepfmt.Record {
	return append([]sweepfmt.Record(nil), t.rows...)
}

// Best returns the highest-throughput viable configuration.
//
// Best is a partial function: it fails with ErrEmptyDataset when the
// sweep had no records, and with ErrNoViableConfig when the
// error-rate filter removed every record. It never falls back to an
// arbitrary record.
func (t *RankedTable) Best() (sweepfmt.Record, error) {
	if t.considered == 0 {
		return sweepfmt.Record{}, ErrEmptyDataset
	}
	if len(t.rows) == 0 {
		return sweepfmt.Record{}, ErrNoViableConfig
	}
	return t.rows[0], nil
}

// TopK returns the k highest-ranked records. k is clamped to the
// available count; asking for more than exists is not an error.
func (t *RankedTable) TopK(k int) []sweepfmt.Record {
	if k < 0 {
		k = 0
	}
	if k > len(t.rows) {
		k = len(t.rows)
	}
	return append([]sweepfmt.Record(nil), t.rows[:k]...)
}

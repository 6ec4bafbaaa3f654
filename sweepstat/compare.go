// Copyright 2026 The tb-perf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sweepstat reports on ranked sweep configurations: pairwise
// throughput ratios and run summaries in text, CSV, and HTML form.
package sweepstat

import (
	"fmt"

	"github.com/softwaremill/tb-perf/sweepfmt"
	"github.com/softwaremill/tb-perf/sweepproc"
)

// A Config is a named configuration with its measured throughput.
// Slices of Config are ordered best-first.
type Config struct {
	Name       string
	Throughput float64
}

// A ZeroThroughputError reports a pairwise comparison whose
// lower-ranked configuration measured zero throughput. A
// zero-throughput ranked entry indicates a measurement or filtering
// anomaly the caller should see, so it is surfaced instead of
// silently producing infinity.
type ZeroThroughputError struct {
	// Num and Den name the two configurations being compared;
	// Den is the zero-throughput denominator.
	Num, Den string
}

func (e *ZeroThroughputError) Error() string {
	return fmt.Sprintf("cannot compare %s against %s: %s has zero throughput", e.Num, e.Den, e.Den)
}

// A Ratio states how much faster one ranked configuration is than a
// lower-ranked one.
type Ratio struct {
	Faster, Slower Config
	Value          float64
}

// String renders the ratio the way comparison reports read, e.g.
// "TigerBeetle is 2.15x faster than PostgreSQL Batched".
func (r Ratio) String() string {
	return fmt.Sprintf("%s is %.2fx faster than %s", r.Faster.Name, r.Value, r.Slower.Name)
}

// Compare produces the ordered pairwise ratio statements for cfgs:
// for every pair of ranks i < j, throughput[i] / throughput[j]. The
// full pairwise matrix is len(cfgs)*(len(cfgs)-1)/2 entries, which is
// fine for the small rank counts reports deal in.
func Compare(cfgs []Config) ([]Ratio, error) {
	var ratios []Ratio
	for i := 0; i < len(cfgs); i++ {
		for j := i + 1; j < len(cfgs); j++ {
			if cfgs[j].Throughput == 0 {
				return nil, &ZeroThroughputError{cfgs[i].Name, cfgs[j].Name}
			}
			ratios = append(ratios, Ratio{
				Faster: cfgs[i],
				Slower: cfgs[j],
				Value:  cfgs[i].Throughput / cfgs[j].Throughput,
			})
		}
	}
	return ratios, nil
}

// FromRanked converts the top n entries of a ranked table into named
// configurations. n <= 0 means all entries.
func FromRanked(t *sweepproc.RankedTable, n int) []Config {
	rows := t.Rows()
	if n > 0 && n < len(rows) {
		rows = rows[:n]
	}
	cfgs := make([]Config, len(rows))
	for i, r := range rows {
		cfgs[i] = Config{Name: ConfigName(r), Throughput: r.Throughput}
	}
	return cfgs
}

// ConfigName names a record for report output: its label when it has
// one, otherwise its sweep coordinates.
func ConfigName(r sweepfmt.Record) string {
	if r.Label != "" {
		return r.Label
	}
	return fmt.Sprintf("c=%d pool=%d", r.Concurrency, r.PoolSize)
}

// Copyright 2026 The tb-perf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sweepstat

import (
	"fmt"
	"io"
	"text/tabwriter"
)

// FormatText appends a fixed-width text rendering of s to w.
func FormatText(w io.Writer, s *Summary) {
	if s.Title != "" {
		fmt.Fprintf(w, "%s\n", s.Title)
	}
	fmt.Fprintf(w, "best configuration: concurrency=%d pool_size=%d throughput=%.1f TPS\n",
		s.Best.Concurrency, s.Best.PoolSize, s.Best.Throughput)
	fmt.Fprintf(w, "records: %d considered, %d retained (error_rate == 0)\n",
		s.Considered, s.Retained)
	if s.Dist.N > 1 {
		fmt.Fprintf(w, "throughput: mean=%.1f stddev=%.1f cv=%.3f min=%.1f max=%.1f\n",
			s.Dist.Mean, s.Dist.StdDev, s.Dist.CV, s.Dist.Min, s.Dist.Max)
	}

	if len(s.Top) > 0 {
		fmt.Fprintf(w, "\ntop configurations:\n")
		scaler := NewScaler(s.Top[0].Throughput)
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		fmt.Fprintf(tw, "rank\tname\tconcurrency\tpool_size\ttps\n")
		for i, r := range s.Top {
			fmt.Fprintf(tw, "%d\t%s\t%d\t%d\t%s\n",
				i+1, ConfigName(r), r.Concurrency, r.PoolSize, scaler(r.Throughput))
		}
		tw.Flush()
	}

	if len(s.Ratios) > 0 {
		fmt.Fprintf(w, "\n")
		for _, r := range s.Ratios {
			fmt.Fprintf(w, "%s\n", r)
		}
	}
}

// FormatCSV appends a CSV rendering of s to w: the ranked
// configurations followed by a blank line and the pairwise ratios.
func FormatCSV(w io.Writer, s *Summary) {
	fmt.Fprintf(w, "rank,name,concurrency,pool_size,tps\n")
	for i, r := range s.Top {
		fmt.Fprintf(w, "%d,%s,%d,%d,%v\n", i+1, csvQuote(ConfigName(r)), r.Concurrency, r.PoolSize, r.Throughput)
	}
	if len(s.Ratios) > 0 {
		fmt.Fprintf(w, "\nfaster,slower,ratio\n")
		for _, r := range s.Ratios {
			fmt.Fprintf(w, "%s,%s,%.4f\n", csvQuote(r.Faster.Name), csvQuote(r.Slower.Name), r.Value)
		}
	}
}

// csvQuote quotes a field if it needs it. Names come from labels and
// coordinates, so this rarely triggers.
func csvQuote(s string) string {
	for _, c := range s {
		if c == ',' || c == '"' || c == '\n' {
			q := `"`
			for _, c := range s {
				if c == '"' {
					q += `""`
				} else {
					q += string(c)
				}
			}
			return q + `"`
		}
	}
	return s
}

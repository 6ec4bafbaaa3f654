// Copyright 2026 The tb-perf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sweepfmt provides a reader and writer for benchmark sweep
// result files.
//
// A sweep file is a CSV file with a header row and one data row per
// tested configuration of concurrency and connection pool size,
// carrying the measured throughput and error rate for that
// configuration. Column order is irrelevant; columns are located by
// header name through a Schema, so the same reader serves sweeps with
// different column naming.
package sweepfmt

// A Record is a single measured configuration from a benchmark sweep.
type Record struct {
	// Concurrency is the number of concurrent workers that drove
	// load during the run. Always > 0.
	Concurrency int

	// PoolSize is the connection pool capacity used by the run.
	// Always > 0.
	PoolSize int

	// Throughput is the measured rate in transactions per second.
	// Always >= 0; a zero value is a valid measurement.
	Throughput float64

	// ErrorRate is the percentage of operations that failed, in
	// [0, 100]. Zero denotes a fully successful run.
	ErrorRate float64

	// Label identifies the executor or backend under test when
	// several systems are being compared. It is empty when the
	// sweep file has no label column.
	Label string

	// fileName and row record where this Record was read from.
	fileName string
	row      int
}

// Pos returns the file name and 1-based data row number this Record
// was read from. The header row is not counted. For Records that were
// not read from a file, it returns "", 0.
func (r Record) Pos() (fileName string, row int) {
	return r.fileName, r.row
}

// A Schema maps the column names of a sweep file to Record fields.
// Required columns are matched case-sensitively and exactly.
type Schema struct {
	Concurrency string
	PoolSize    string
	Throughput  string
	ErrorRate   string

	// Label lists candidate names for the optional label column.
	// The first name present in the header is used; if none is
	// present, records are unlabeled.
	Label []string
}

// DefaultSchema matches the column names written by the benchmark
// coordinator: concurrency, pool_size, tps, error_rate, and an
// optional label or executor column.
var DefaultSchema = Schema{
	Concurrency: "concurrency",
	PoolSize:    "pool_size",
	Throughput:  "tps",
	ErrorRate:   "error_rate",
	Label:       []string{"label", "executor"},
}

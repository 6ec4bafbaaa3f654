// Copyright 2026 The tb-perf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sweepfmt

import (
	"encoding/csv"
	"io"
	"strconv"
)

// A Writer writes sweep records as CSV.
//
// The header row is emitted before the first record. Whether a label
// column is included is decided by the first record written: labeled
// records get a label column, unlabeled ones do not.
type Writer struct {
	cw     *csv.Writer
	schema Schema

	wroteHeader bool
	withLabel   bool
}

// NewWriter returns a Writer that emits records to w using schema's
// column names. The zero Schema means DefaultSchema.
func NewWriter(w io.Writer, schema Schema) *Writer {
	if schema.Concurrency == "" {
		schema = DefaultSchema
	}
	return &Writer{cw: csv.NewWriter(w), schema: schema}
}

// Write writes a single record, preceded by the header row if this is
// the first write.
func (w *Writer) Write(rec Record) error {
	if !w.wroteHeader {
		w.wroteHeader = true
		w.withLabel = rec.Label != ""
		header := []string{w.schema.Concurrency, w.schema.PoolSize, w.schema.Throughput, w.schema.ErrorRate}
		if w.withLabel {
			name := "label"
			if len(w.schema.Label) > 0 {
				name = w.schema.Label[0]
			}
			header = append(header, name)
		}
		if err := w.cw.Write(header); err != nil {
			return err
		}
	}

	row := []string{
		strconv.Itoa(rec.Concurrency),
		strconv.Itoa(rec.PoolSize),
		strconv.FormatFloat(rec.Throughput, 'g', -1, 64),
		strconv.FormatFloat(rec.ErrorRate, 'g', -1, 64),
	}
	if w.withLabel {
		row = append(row, rec.Label)
	}
	return w.cw.Write(row)
}

// Flush writes any buffered rows to the underlying io.Writer and
// returns any error that occurred during writing.
func (w *Writer) Flush() error {
	w.cw.Flush()
	return w.cw.Error()
}

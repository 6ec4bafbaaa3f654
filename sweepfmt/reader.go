// Copyright 2026 The tb-perf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sweepfmt

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
)

// A HeaderError reports a required column that is missing from a
// sweep file header.
type HeaderError struct {
	FileName string
	Column   string
}

func (e *HeaderError) Error() string {
	return fmt.Sprintf("%s: missing required column %q", e.FileName, e.Column)
}

// A SyntaxError reports a structurally invalid data row, such as a
// row with too few fields to cover a required column.
type SyntaxError struct {
	FileName string
	Row      int // 1-based data row number; the header is row 0
	Msg      string
}

// Pos returns the file name and data row number of the error.
func (e *SyntaxError) Pos() (fileName string, row int) {
	return e.FileName, e.Row
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s: row %d: %s", e.FileName, e.Row, e.Msg)
}

// A ValueError reports a field that failed numeric parsing or
// violated a field invariant. It records the raw string so the
// offending value is actionable from the error message alone.
type ValueError struct {
	FileName string
	Row      int
	Field    string // column name, as given by the Schema
	Raw      string
	Msg      string
}

// Pos returns the file name and data row number of the error.
func (e *ValueError) Pos() (fileName string, row int) {
	return e.FileName, e.Row
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("%s: row %d: column %s: invalid value %q: %s", e.FileName, e.Row, e.Field, e.Raw, e.Msg)
}

// A Reader reads sweep records from CSV input.
//
// Its API is modeled on bufio.Scanner: call Scan until it returns
// false, then check Err. The Reader is strict: the first malformed
// row stops the scan and is reported from Err, so a successful read
// covers every row of the input. An empty input, with or without a
// header row, yields zero records and a nil Err.
type Reader struct {
	cr       *csv.Reader
	fileName string
	schema   Schema

	started bool
	done    bool
	row     int
	rec     Record
	err     error

	// column indexes resolved from the header; -1 when absent
	colConcurrency int
	colPoolSize    int
	colThroughput  int
	colErrorRate   int
	colLabel       int
	labelName      string
}

// NewReader constructs a Reader that parses sweep records from r
// using schema to locate columns. fileName is used in errors and
// record positions; it is purely diagnostic.
func NewReader(r io.Reader, fileName string, schema Schema) *Reader {
	cr := csv.NewReader(r)
	// Row width is validated against the schema, not the header,
	// so short rows produce a positioned SyntaxError instead of a
	// csv.ErrFieldCount.
	cr.FieldsPerRecord = -1
	if fileName == "" {
		fileName = "<unknown>"
	}
	return &Reader{cr: cr, fileName: fileName, schema: schema}
}

// Scan advances the Reader to the next record and reports whether one
// was read. Once Scan returns false, the caller should check Err.
func (r *Reader) Scan() bool {
	if r.err != nil || r.done {
		return false
	}
	if !r.started {
		r.started = true
		if !r.readHeader() {
			return false
		}
	}

	row, err := r.cr.Read()
	if err == io.EOF {
		r.done = true
		return false
	}
	if err != nil {
		r.err = err
		return false
	}
	r.row++

	rec, perr := r.parseRow(row)
	if perr != nil {
		r.err = perr
		return false
	}
	r.rec = rec
	return true
}

// Record returns the record read by the last successful call to Scan.
func (r *Reader) Record() Record {
	return r.rec
}

// Err returns the first error encountered by the Reader, other than
// io.EOF.
func (r *Reader) Err() error {
	return r.err
}

func (r *Reader) readHeader() bool {
	header, err := r.cr.Read()
	if err == io.EOF {
		// A fully empty file is an empty sweep, not an error.
		r.done = true
		return false
	}
	if err != nil {
		r.err = err
		return false
	}

	index := func(name string) int {
		for i, col := range header {
			if col == name {
				return i
			}
		}
		return -1
	}

	required := []struct {
		name string
		dst  *int
	}{
		{r.schema.Concurrency, &r.colConcurrency},
		{r.schema.PoolSize, &r.colPoolSize},
		{r.schema.Throughput, &r.colThroughput},
		{r.schema.ErrorRate, &r.colErrorRate},
	}
	for _, col := range required {
		if *col.dst = index(col.name); *col.dst < 0 {
			r.err = &HeaderError{r.fileName, col.name}
			return false
		}
	}

	r.colLabel = -1
	for _, name := range r.schema.Label {
		if i := index(name); i >= 0 {
			r.colLabel = i
			r.labelName = name
			break
		}
	}
	return true
}

func (r *Reader) parseRow(row []string) (Record, error) {
	width := r.colConcurrency
	for _, i := range []int{r.colPoolSize, r.colThroughput, r.colErrorRate} {
		if i > width {
			width = i
		}
	}
	if len(row) <= width {
		return Record{}, &SyntaxError{r.fileName, r.row, fmt.Sprintf("row has %d fields, need at least %d", len(row), width+1)}
	}

	rec := Record{fileName: r.fileName, row: r.row}
	var err error

	rec.Concurrency, err = r.parseInt(r.schema.Concurrency, row[r.colConcurrency])
	if err != nil {
		return Record{}, err
	}
	rec.PoolSize, err = r.parseInt(r.schema.PoolSize, row[r.colPoolSize])
	if err != nil {
		return Record{}, err
	}
	rec.Throughput, err = r.parseFloat(r.schema.Throughput, row[r.colThroughput], 0, -1)
	if err != nil {
		return Record{}, err
	}
	rec.ErrorRate, err = r.parseFloat(r.schema.ErrorRate, row[r.colErrorRate], 0, 100)
	if err != nil {
		return Record{}, err
	}
	if r.colLabel >= 0 && r.colLabel < len(row) {
		rec.Label = row[r.colLabel]
	}
	return rec, nil
}

func (r *Reader) parseInt(field, raw string) (int, error) {
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &ValueError{r.fileName, r.row, field, raw, "not an integer"}
	}
	if v <= 0 {
		return 0, &ValueError{r.fileName, r.row, field, raw, "must be positive"}
	}
	return v, nil
}

// parseFloat parses raw as a float in [min, max]. max < 0 means
// unbounded above.
func (r *Reader) parseFloat(field, raw string, min, max float64) (float64, error) {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, &ValueError{r.fileName, r.row, field, raw, "not a number"}
	}
	if v < min || (max >= 0 && v > max) {
		if max >= 0 {
			return 0, &ValueError{r.fileName, r.row, field, raw, fmt.Sprintf("outside [%g, %g]", min, max)}
		}
		return 0, &ValueError{r.fileName, r.row, field, raw, fmt.Sprintf("must be >= %g", min)}
	}
	return v, nil
}

// ReadAll reads every record from r. It stops at the first malformed
// row and returns its error, in which case the returned slice holds
// the records read before the failure.
func ReadAll(r io.Reader, fileName string, schema Schema) ([]Record, error) {
	rd := NewReader(r, fileName, schema)
	var recs []Record
	for rd.Scan() {
		recs = append(recs, rd.Record())
	}
	return recs, rd.Err()
}

// IsPositioned reports whether err carries a file position, and
// returns it if so. This covers *SyntaxError and *ValueError.
func IsPositioned(err error) (fileName string, row int, ok bool) {
	var se *SyntaxError
	if errors.As(err, &se) {
		fileName, row = se.Pos()
		return fileName, row, true
	}
	var ve *ValueError
	if errors.As(err, &ve) {
		fileName, row = ve.Pos()
		return fileName, row, true
	}
	return "", 0, false
}

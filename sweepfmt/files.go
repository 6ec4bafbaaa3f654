// Copyright 2026 The tb-perf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sweepfmt

import (
	"os"
	"strings"
)

// A Files reads sweep records from a sequence of input files, as one
// continuous stream.
//
// Entries in Paths may be of the form label=path, in which case the
// label part is applied to every record read from path that does not
// carry a label of its own. This is the desired behavior when the
// file list comes from command-line flags, as it lets one sweep per
// backend be compared without a label column in each file.
type Files struct {
	// Paths is the list of file names to read in.
	Paths []string

	// Schema locates the sweep columns in each file. The zero
	// value means DefaultSchema.
	Schema Schema

	// inputs is the sequence of remaining inputs, or nil if this
	// Files has not started yet. This distinguishes nil from
	// length 0.
	inputs []input

	reader *Reader
	file   *os.File
	label  string
	rec    Record
	err    error
}

type input struct {
	path  string
	label string
}

// Scan advances to the next record in the sequence of files and
// reports whether one was read. Once Scan returns false, the caller
// must check Err.
func (f *Files) Scan() bool {
	if f.err != nil {
		return false
	}
	if f.inputs == nil {
		f.init()
	}

	for {
		if f.reader != nil {
			if f.reader.Scan() {
				f.rec = f.reader.Record()
				if f.rec.Label == "" {
					f.rec.Label = f.label
				}
				return true
			}
			err := f.reader.Err()
			f.file.Close()
			f.reader, f.file = nil, nil
			if err != nil {
				f.err = err
				return false
			}
		}

		if len(f.inputs) == 0 {
			return false
		}
		in := f.inputs[0]
		f.inputs = f.inputs[1:]

		file, err := os.Open(in.path)
		if err != nil {
			f.err = err
			return false
		}
		schema := f.Schema
		if schema.Concurrency == "" {
			schema = DefaultSchema
		}
		f.file = file
		f.reader = NewReader(file, in.path, schema)
		f.label = in.label
	}
}

func (f *Files) init() {
	f.inputs = make([]input, 0, len(f.Paths))
	for _, path := range f.Paths {
		label := ""
		if i := strings.Index(path, "="); i >= 0 {
			label, path = path[:i], path[i+1:]
		}
		f.inputs = append(f.inputs, input{path, label})
	}
}

// Record returns the record read by the last successful call to Scan.
func (f *Files) Record() Record {
	return f.rec
}

// Err returns the first error encountered while opening or reading
// the files.
func (f *Files) Err() error {
	return f.err
}

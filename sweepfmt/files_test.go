// Copyright 2026 The tb-perf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sweepfmt

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeFile(t *testing.T, dir, name, data string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(data), 0666); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestFiles(t *testing.T) {
	dir := t.TempDir()
	pg := writeFile(t, dir, "pg.csv", "concurrency,pool_size,tps,error_rate\n1,4,100,0\n")
	tb := writeFile(t, dir, "tb.csv", "concurrency,pool_size,tps,error_rate\n1,4,300,0\n")

	f := &Files{Paths: []string{"postgres=" + pg, "tigerbeetle=" + tb}}
	var got []Record
	for f.Scan() {
		r := f.Record()
		r.fileName, r.row = "", 0
		got = append(got, r)
	}
	if err := f.Err(); err != nil {
		t.Fatalf("Err: %v", err)
	}

	want := []Record{
		{Concurrency: 1, PoolSize: 4, Throughput: 100, Label: "postgres"},
		{Concurrency: 1, PoolSize: 4, Throughput: 300, Label: "tigerbeetle"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("records = %+v, want %+v", got, want)
	}
}

func TestFilesLabelColumnWins(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "mixed.csv",
		"concurrency,pool_size,tps,error_rate,label\n1,4,100,0,fromfile\n2,4,200,0,\n")

	f := &Files{Paths: []string{"fromflag=" + path}}
	var labels []string
	for f.Scan() {
		labels = append(labels, f.Record().Label)
	}
	if err := f.Err(); err != nil {
		t.Fatalf("Err: %v", err)
	}
	// A record's own label is kept; the path label only fills blanks.
	if want := []string{"fromfile", "fromflag"}; !reflect.DeepEqual(labels, want) {
		t.Errorf("labels = %v, want %v", labels, want)
	}
}

func TestFilesMissing(t *testing.T) {
	f := &Files{Paths: []string{filepath.Join(t.TempDir(), "nope.csv")}}
	if f.Scan() {
		t.Error("Scan succeeded on a missing file")
	}
	if err := f.Err(); err == nil {
		t.Error("Err = nil, want error")
	}
}

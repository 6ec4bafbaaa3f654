// Copyright 2026 The tb-perf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package db_test

import (
	"context"
	"reflect"
	"testing"

	"github.com/softwaremill/tb-perf/storage/db"
	"github.com/softwaremill/tb-perf/storage/db/dbtest"
	"github.com/softwaremill/tb-perf/sweepfmt"
)

// TestSweepIDs verifies that NewSweep generates sequential sweep IDs.
func TestSweepIDs(t *testing.T) {
	ctx := context.Background()

	d, cleanup := dbtest.NewDB(t)
	defer cleanup()

	for _, want := range []string{"1", "2", "3"} {
		s, err := d.NewSweep(ctx, "postgres sweep")
		if err != nil {
			t.Fatalf("NewSweep: %v", err)
		}
		if s.ID != want {
			t.Fatalf("s.ID = %q, want %q", s.ID, want)
		}
	}

	n, err := d.CountSweeps()
	if err != nil {
		t.Fatalf("CountSweeps: %v", err)
	}
	if n != 3 {
		t.Errorf("CountSweeps = %d, want 3", n)
	}
}

// TestInsertRecord verifies that InsertRecord wrote the correct rows
// to the database.
func TestInsertRecord(t *testing.T) {
	ctx := context.Background()

	d, cleanup := dbtest.NewDB(t)
	defer cleanup()

	s, err := d.NewSweep(ctx, "atomic quick")
	if err != nil {
		t.Fatalf("NewSweep: %v", err)
	}

	recs := []sweepfmt.Record{
		{Concurrency: 8, PoolSize: 4, Throughput: 1500.5, ErrorRate: 0, Label: "postgres"},
		{Concurrency: 16, PoolSize: 4, Throughput: 2100, ErrorRate: 0.5, Label: "postgres"},
	}
	for _, r := range recs {
		if err := s.InsertRecord(r); err != nil {
			t.Fatalf("InsertRecord: %v", err)
		}
	}

	rows, err := db.DBSQL(d).Query("SELECT RecordID FROM Records WHERE SweepID = ? ORDER BY RecordID", s.ID)
	if err != nil {
		t.Fatalf("sql.Query: %v", err)
	}
	defer rows.Close()
	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			t.Fatalf("rows.Scan: %v", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		t.Fatalf("rows.Err: %v", err)
	}
	if want := []int64{0, 1}; !reflect.DeepEqual(ids, want) {
		t.Errorf("record IDs = %v, want %v", ids, want)
	}

	have, err := d.Records(ctx, s.ID)
	if err != nil {
		t.Fatalf("Records: %v", err)
	}
	if !reflect.DeepEqual(have, recs) {
		t.Errorf("Records(%q) = %+v, want %+v", s.ID, have, recs)
	}
}

// TestRecordsOtherSweep verifies that records are scoped to their
// sweep.
func TestRecordsOtherSweep(t *testing.T) {
	ctx := context.Background()

	d, cleanup := dbtest.NewDB(t)
	defer cleanup()

	s1, err := d.NewSweep(ctx, "first")
	if err != nil {
		t.Fatalf("NewSweep: %v", err)
	}
	if err := s1.InsertRecord(sweepfmt.Record{Concurrency: 1, PoolSize: 1, Throughput: 10}); err != nil {
		t.Fatalf("InsertRecord: %v", err)
	}
	s2, err := d.NewSweep(ctx, "second")
	if err != nil {
		t.Fatalf("NewSweep: %v", err)
	}

	recs, err := d.Records(ctx, s2.ID)
	if err != nil {
		t.Fatalf("Records: %v", err)
	}
	if len(recs) != 0 {
		t.Errorf("Records(%q) returned %d records, want 0", s2.ID, len(recs))
	}

	if _, err := d.Records(ctx, "not-a-number"); err == nil {
		t.Error("Records with malformed ID: err = nil, want error")
	}
}

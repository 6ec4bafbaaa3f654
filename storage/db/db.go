// Copyright 2026 The tb-perf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package db provides the high-level database interface for archiving
// benchmark sweeps.
package db

import (
	"bytes"
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"
	"text/template"

	"github.com/softwaremill/tb-perf/sweepfmt"
)

// DB is a high-level interface to a sweep archive database. It's safe
// for concurrent use by multiple goroutines.
type DB struct {
	sql *sql.DB // underlying database connection
	// prepared statements
	insertSweep  *sql.Stmt
	insertRecord *sql.Stmt
}

// OpenSQL creates a DB backed by a SQL database. The parameters are
// the same as the parameters for sql.Open. Only mysql and sqlite3 are
// explicitly supported; other database engines will receive MySQL
// query syntax which may or may not be compatible.
func OpenSQL(driverName, dataSourceName string) (*DB, error) {
	db, err := sql.Open(driverName, dataSourceName)
	if err != nil {
		return nil, err
	}
	if hook := openHooks[driverName]; hook != nil {
		if err := hook(db); err != nil {
			return nil, err
		}
	}
	d := &DB{sql: db}
	if err := d.createTables(driverName); err != nil {
		return nil, err
	}
	if err := d.prepareStatements(); err != nil {
		return nil, err
	}
	return d, nil
}

var openHooks = make(map[string]func(*sql.DB) error)

// RegisterOpenHook registers a hook to be called after opening a connection to driverName.
// This is used by the sqlite3 package to configure the connection.
// It must be called from an init function.
func RegisterOpenHook(driverName string, hook func(*sql.DB) error) {
	openHooks[driverName] = hook
}

// createTmpl is the template used to prepare the CREATE statements
// for the database. It is evaluated with . as a map containing one
// entry whose key is the driver name.
var createTmpl = template.Must(template.New("create").Parse(`
CREATE TABLE IF NOT EXISTS Sweeps (
	SweepID {{if .sqlite3}}INTEGER PRIMARY KEY AUTOINCREMENT{{else}}SERIAL PRIMARY KEY AUTO_INCREMENT{{end}},
	Title VARCHAR(255)
);
CREATE TABLE IF NOT EXISTS Records (
	SweepID BIGINT UNSIGNED,
	RecordID BIGINT UNSIGNED,
	Label VARCHAR(255),
	Concurrency INT,
	PoolSize INT,
	Throughput DOUBLE,
	ErrorRate DOUBLE,
	PRIMARY KEY (SweepID, RecordID),
	FOREIGN KEY (SweepID) REFERENCES Sweeps(SweepID) ON UPDATE CASCADE ON DELETE CASCADE
);
`))

// createTables creates any missing tables on the connection in
// db.sql. driverName is the same driver name passed to sql.Open and
// is used to select the correct syntax.
func (db *DB) createTables(driverName string) error {
	var buf bytes.Buffer
	if err := createTmpl.Execute(&buf, map[string]bool{driverName: true}); err != nil {
		return err
	}
	for _, q := range strings.Split(buf.String(), ";") {
		if strings.TrimSpace(q) == "" {
			continue
		}
		if _, err := db.sql.Exec(q); err != nil {
			return fmt.Errorf("create table: %v", err)
		}
	}
	return nil
}

// prepareStatements calls db.sql.Prepare on reusable SQL statements.
func (db *DB) prepareStatements() error {
	var err error
	db.insertSweep, err = db.sql.Prepare("INSERT INTO Sweeps(Title) VALUES (?)")
	if err != nil {
		return err
	}
	db.insertRecord, err = db.sql.Prepare("INSERT INTO Records(SweepID, RecordID, Label, Concurrency, PoolSize, Throughput, ErrorRate) VALUES (?, ?, ?, ?, ?, ?, ?)")
	if err != nil {
		return err
	}
	return nil
}

// A Sweep is a collection of records that share a sweep ID.
type Sweep struct {
	// ID is the key that identifies this sweep in the archive.
	ID string

	// id is the numeric value used as the primary key. ID is a
	// string for the public API; the underlying table actually
	// uses an integer key.
	id int64
	// recordid is the index of the next record to insert.
	recordid int64
	// db is the underlying database that this sweep is going to.
	db *DB
}

// NewSweep returns a sweep for storing new records.
// All records written to the Sweep will have the same sweep ID.
func (db *DB) NewSweep(ctx context.Context, title string) (*Sweep, error) {
	res, err := db.insertSweep.ExecContext(ctx, title)
	if err != nil {
		return nil, err
	}
	i, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	return &Sweep{
		ID: fmt.Sprint(i),
		id: i,
		db: db,
	}, nil
}

// InsertRecord inserts a single record in an existing sweep.
func (s *Sweep) InsertRecord(r sweepfmt.Record) (err error) {
	tx, err := s.db.sql.Begin()
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		} else {
			err = tx.Commit()
		}
	}()
	if _, err = tx.Stmt(s.db.insertRecord).Exec(s.id, s.recordid, r.Label, r.Concurrency, r.PoolSize, r.Throughput, r.ErrorRate); err != nil {
		return err
	}
	s.recordid++
	return nil
}

// CountSweeps returns the number of sweeps in the archive.
func (db *DB) CountSweeps() (int, error) {
	var n int
	err := db.sql.QueryRow("SELECT COUNT(*) FROM Sweeps").Scan(&n)
	return n, err
}

// Records returns the records of the sweep with the given ID, in
// insertion order.
func (db *DB) Records(ctx context.Context, sweepID string) ([]sweepfmt.Record, error) {
	id, err := strconv.ParseInt(sweepID, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid sweep ID %q: %v", sweepID, err)
	}
	rows, err := db.sql.QueryContext(ctx, "SELECT Label, Concurrency, PoolSize, Throughput, ErrorRate FROM Records WHERE SweepID = ? ORDER BY RecordID", id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var recs []sweepfmt.Record
	for rows.Next() {
		var r sweepfmt.Record
		if err := rows.Scan(&r.Label, &r.Concurrency, &r.PoolSize, &r.Throughput, &r.ErrorRate); err != nil {
			return nil, err
		}
		recs = append(recs, r)
	}
	return recs, rows.Err()
}

// Close closes the database connections, releasing any open resources.
func (db *DB) Close() error {
	if err := db.insertSweep.Close(); err != nil {
		return err
	}
	if err := db.insertRecord.Close(); err != nil {
		return err
	}
	return db.sql.Close()
}

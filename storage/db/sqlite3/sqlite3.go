// Copyright 2026 The tb-perf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sqlite3 provides the sqlite3 driver for the archive
// database. It must be imported for its side effects.
package sqlite3

import (
	"database/sql"

	_ "github.com/mattn/go-sqlite3"

	"github.com/softwaremill/tb-perf/storage/db"
)

func init() {
	db.RegisterOpenHook("sqlite3", func(d *sql.DB) error {
		// In-memory databases vanish when their connection is
		// closed, so keep exactly one connection open.
		d.SetMaxOpenConns(1)
		_, err := d.Exec("PRAGMA foreign_keys = ON;")
		return err
	})
}

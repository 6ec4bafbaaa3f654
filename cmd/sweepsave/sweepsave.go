// Copyright 2026 The tb-perf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Sweepsave uploads benchmark sweep results to a storage server.
//
// Usage:
//
//	sweepsave [-v] [-server url] [-token token] file...
//	sweepsave -dsn source [-driver name] [-title text] file...
//
// Each input file should contain the CSV output of one benchmark
// sweep.
//
// By default sweepsave uploads the input files to the specified
// server and prints a URL where they can be viewed. The bearer token
// for the upload comes from -token or the SWEEPSAVE_TOKEN environment
// variable.
//
// With -dsn, sweepsave instead parses the files and archives their
// records into a SQL database, one sweep per file, and prints the
// assigned sweep IDs. The sqlite3 and mysql drivers are supported.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/oauth2"

	"github.com/softwaremill/tb-perf/storage/db"
	_ "github.com/softwaremill/tb-perf/storage/db/sqlite3"
	"github.com/softwaremill/tb-perf/sweepfmt"

	_ "github.com/go-sql-driver/mysql"
)

var (
	server  = flag.String("server", "https://sweeps.softwaremill.com", "upload sweeps to server at `url`")
	verbose = flag.Bool("v", false, "print verbose log messages")
	token   = flag.String("token", os.Getenv("SWEEPSAVE_TOKEN"), "bearer `token` for the upload server")
	driver  = flag.String("driver", "sqlite3", "database driver `name` for -dsn")
	dsn     = flag.String("dsn", "", "archive into the database at `source` instead of uploading")
	title   = flag.String("title", "", "sweep `title` to record in the archive (default: file name)")
)

type uploadStatus struct {
	// SweepID is the sweep ID assigned to the upload.
	SweepID string `json:"sweepid"`
	// ViewURL is a server-supplied URL to view the results.
	ViewURL string `json:"viewurl"`
}

// writeOneFile reads name and writes it to mpw.
func writeOneFile(mpw *multipart.Writer, name string) error {
	w, err := mpw.CreateFormFile("file", filepath.Base(name))
	if err != nil {
		return err
	}
	f, err := os.Open(name)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := io.Copy(w, f); err != nil {
		return err
	}
	return nil
}

func usage() {
	fmt.Fprintf(os.Stderr, `Usage of sweepsave:
	sweepsave [flags] file...
`)
	flag.PrintDefaults()
	os.Exit(2)
}

// archive parses each file and stores its records as one sweep in the
// database at dsn.
func archive(files []string) {
	d, err := db.OpenSQL(*driver, *dsn)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer d.Close()

	ctx := context.Background()
	for _, name := range files {
		f, err := os.Open(name)
		if err != nil {
			log.Fatal(err)
		}
		recs, err := sweepfmt.ReadAll(f, name, sweepfmt.DefaultSchema)
		f.Close()
		if err != nil {
			log.Fatal(err)
		}

		t := *title
		if t == "" {
			t = filepath.Base(name)
		}
		s, err := d.NewSweep(ctx, t)
		if err != nil {
			log.Fatalf("new sweep: %v", err)
		}
		for _, r := range recs {
			if err := s.InsertRecord(r); err != nil {
				log.Fatalf("insert record: %v", err)
			}
		}
		fmt.Printf("%s: sweep %s (%d records)\n", name, s.ID, len(recs))
	}
}

func main() {
	log.SetPrefix("sweepsave: ")
	log.SetFlags(0)
	flag.Usage = usage
	flag.Parse()

	files := flag.Args()
	if len(files) == 0 {
		log.Fatal("no files to save")
	}

	if *dsn != "" {
		archive(files)
		return
	}

	var ts oauth2.TokenSource
	if *token != "" {
		ts = oauth2.StaticTokenSource(&oauth2.Token{AccessToken: *token})
	}
	hc := oauth2.NewClient(context.Background(), ts)

	pr, pw := io.Pipe()
	mpw := multipart.NewWriter(pw)

	go func() {
		defer pw.Close()
		defer mpw.Close()

		for _, name := range files {
			if err := writeOneFile(mpw, name); err != nil {
				log.Print(err)
				mpw.WriteField("abort", "1")
				// Writing the 'abort' field will cause the server to send back an error response,
				// which will cause the main goroutine to exit below.
				return
			}
		}

		mpw.WriteField("commit", "1")
	}()

	start := time.Now()

	resp, err := hc.Post(*server+"/upload", mpw.FormDataContentType(), pr)
	if err != nil {
		log.Fatalf("upload failed: %v\n", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		log.Printf("upload failed: %v\n", resp.Status)
		io.Copy(os.Stderr, resp.Body)
		os.Exit(1)
	}

	status := &uploadStatus{}
	if err := json.NewDecoder(resp.Body).Decode(status); err != nil {
		log.Fatalf("cannot parse upload response: %v\n", err)
	}

	if *verbose {
		s := ""
		if len(files) != 1 {
			s = "s"
		}
		log.Printf("%d file%s uploaded in %.2f seconds.\n", len(files), s, time.Since(start).Seconds())
	}
	if status.ViewURL != "" {
		fmt.Printf("%s\n", status.ViewURL)
	}
}

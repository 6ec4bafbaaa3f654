// Copyright 2026 The tb-perf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sweepstat

import (
	"io"

	"github.com/google/safehtml/template"
)

var reportTemplate = template.Must(template.New("sweep").ParseFromTrustedTemplate(template.MakeTrustedTemplate(`<!doctype html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
.sweep { border-collapse: collapse; }
.sweep th, .sweep td { border-bottom: 1px solid #ccc; padding: 0.2em 1em; text-align: right; }
.sweep th:nth-child(2), .sweep td:nth-child(2) { text-align: left; }
.best { font-weight: bold; }
</style>
</head>
<body>
<h1>{{.Title}}</h1>
<p class="best">Best configuration: concurrency={{.Best.Concurrency}},
pool_size={{.Best.PoolSize}}, {{printf "%.1f" .Best.Throughput}} TPS</p>
<p>{{.Considered}} records considered, {{.Retained}} retained (error_rate == 0)</p>
<table class="sweep">
<tr><th>rank</th><th>name</th><th>concurrency</th><th>pool_size</th><th>tps</th></tr>
{{range .Rows}}<tr><td>{{.Rank}}</td><td>{{.Name}}</td><td>{{.Concurrency}}</td><td>{{.PoolSize}}</td><td>{{printf "%.1f" .Throughput}}</td></tr>
{{end}}</table>
{{if .Ratios}}<ul>
{{range .Ratios}}<li>{{.}}</li>
{{end}}</ul>{{end}}
</body>
</html>
`)))

type htmlRow struct {
	Rank        int
	Name        string
	Concurrency int
	PoolSize    int
	Throughput  float64
}

type htmlReport struct {
	Title      string
	Best       htmlRow
	Considered int
	Retained   int
	Rows       []htmlRow
	Ratios     []string
}

// FormatHTML writes an HTML rendering of s to w.
func FormatHTML(w io.Writer, s *Summary) error {
	rep := htmlReport{
		Title:      s.Title,
		Considered: s.Considered,
		Retained:   s.Retained,
	}
	if rep.Title == "" {
		rep.Title = "Sweep report"
	}
	rep.Best = htmlRow{
		Name:        ConfigName(s.Best),
		Concurrency: s.Best.Concurrency,
		PoolSize:    s.Best.PoolSize,
		Throughput:  s.Best.Throughput,
	}
	for i, r := range s.Top {
		rep.Rows = append(rep.Rows, htmlRow{
			Rank:        i + 1,
			Name:        ConfigName(r),
			Concurrency: r.Concurrency,
			PoolSize:    r.PoolSize,
			Throughput:  r.Throughput,
		})
	}
	for _, r := range s.Ratios {
		rep.Ratios = append(rep.Ratios, r.String())
	}
	return reportTemplate.Execute(w, rep)
}

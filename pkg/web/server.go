// Package web serves a stats.Dashboard over HTTP: an HTML page with a
// year selector, the charts as HTML, SVG, JSON and XLSX, and Prometheus
// metrics.
package web

import (
	"bytes"
	"context"
	"encoding/json"
	"html/template"
	"log"
	"math"
	"mime"
	"net/http"
	"strconv"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/anrid/world-population/pkg/chart"
	"github.com/anrid/world-population/pkg/stats"
)

// Server serializes every dashboard event through one mutex, so the
// dashboard sees load and selection events one at a time.
type Server struct {
	mu      sync.Mutex
	dash    *stats.Dashboard
	rec     *chart.Recorder
	metrics *metrics
	mux     *http.ServeMux
}

// NewServer returns a server for d, whose renderer must be rec. Metrics
// are registered with reg and served from it; a nil reg gets a fresh
// registry.
func NewServer(d *stats.Dashboard, rec *chart.Recorder, reg *prometheus.Registry) *Server {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	s := &Server{
		dash:    d,
		rec:     rec,
		metrics: newMetrics(reg),
		mux:     http.NewServeMux(),
	}

	s.mux.HandleFunc("GET /{$}", s.handleIndex)
	s.mux.HandleFunc("POST /select", s.handleSelect)
	s.mux.HandleFunc("GET /charts", s.handleCharts)
	s.mux.HandleFunc("GET /area.svg", s.handleAreaSVG)
	s.mux.HandleFunc("GET /scatter.svg", s.handleScatterSVG)
	s.mux.HandleFunc("GET /api/area", s.handleAPIArea)
	s.mux.HandleFunc("GET /api/scatter", s.handleAPIScatter)
	s.mux.HandleFunc("GET /export.xlsx", s.handleExport)
	s.mux.Handle("GET /metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// Load fetches the dataset from src and hands it to the dashboard. The
// fetch runs without holding the lock so the page keeps showing the
// loading state meanwhile. A load into a ready dashboard, or while
// another is outstanding, fails without fetching.
func (s *Server) Load(ctx context.Context, src stats.Source) error {
	s.mu.Lock()
	err := s.dash.StartLoad()
	s.mu.Unlock()
	if err != nil {
		return err
	}

	raw, err := stats.Fetch(ctx, src)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err == nil {
		err = s.dash.OnDataLoaded(raw)
	} else {
		s.dash.LoadFailed(err)
	}
	if err != nil {
		s.metrics.loadFailures.Inc()
		return err
	}

	s.metrics.ready.Set(1)
	s.metrics.rows.Set(float64(len(s.dash.Rows())))
	return nil
}

type indexData struct {
	State        string
	Err          error
	Years        []string
	SelectedYear string
	Countries    int
	World        string
	AvgDensity   string
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	data := indexData{
		State:        s.dash.State().String(),
		Err:          s.dash.Err(),
		Years:        s.dash.Years(),
		SelectedYear: s.dash.SelectedYear(),
		Countries:    len(s.dash.Countries()),
	}
	if s.dash.State() == stats.Ready {
		view := s.rec.Scatter
		data.World = stats.FormatBillions(view.WorldPopulationBillions)
		data.AvgDensity = "no data"
		if !math.IsNaN(view.WorldAverageDensity) {
			data.AvgDensity = strconv.FormatFloat(view.WorldAverageDensity, 'f', 0, 64)
		}
	}
	s.mu.Unlock()

	var buf bytes.Buffer
	if err := indexTemplate.Execute(&buf, data); err != nil {
		log.Printf("render index: %v", err)
		http.Error(w, "Failed to render page", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(buf.Bytes())
}

func (s *Server) handleSelect(w http.ResponseWriter, r *http.Request) {
	year := r.FormValue("year")
	if year == "" {
		http.Error(w, "year required", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	err := s.dash.SelectYear(year)
	s.mu.Unlock()

	if err != nil {
		http.Error(w, err.Error(), http.StatusConflict)
		return
	}
	s.metrics.selections.Inc()
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// sizeFrom overrides size with the w and h query parameters.
func sizeFrom(r *http.Request, size stats.Size) stats.Size {
	if w, err := strconv.Atoi(r.URL.Query().Get("w")); err == nil && w > 0 {
		size.Width = w
	}
	if h, err := strconv.Atoi(r.URL.Query().Get("h")); err == nil && h > 0 {
		size.Height = h
	}
	return size
}

// notReadyMessage describes why there is nothing to chart yet. It must be
// called with s.mu held.
func (s *Server) notReadyMessage() string {
	if err := s.dash.Err(); err != nil {
		return "failed to load dataset: " + err.Error()
	}
	return "loading..."
}

func (s *Server) handleCharts(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	area, areaSize := s.rec.Area, sizeFrom(r, s.rec.AreaSize)
	view, scatterSize := s.rec.Scatter, sizeFrom(r, s.rec.ScatterSize)
	s.mu.Unlock()

	var buf bytes.Buffer
	if err := chart.WritePage(&buf, area, areaSize, view, scatterSize); err != nil {
		log.Printf("render charts: %v", err)
		http.Error(w, "Failed to render charts", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(buf.Bytes())
}

func (s *Server) handleAreaSVG(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	ready := s.dash.State() == stats.Ready
	msg := s.notReadyMessage()
	area, size := s.rec.Area, sizeFrom(r, s.rec.AreaSize)
	s.mu.Unlock()

	s.writeSVG(w, func(buf *bytes.Buffer) error {
		if !ready {
			return chart.WriteMessageSVG(buf, msg, size)
		}
		return chart.WriteAreaSVG(buf, area, size)
	})
}

func (s *Server) handleScatterSVG(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	ready := s.dash.State() == stats.Ready
	msg := s.notReadyMessage()
	view, size := s.rec.Scatter, sizeFrom(r, s.rec.ScatterSize)
	s.mu.Unlock()

	s.writeSVG(w, func(buf *bytes.Buffer) error {
		if !ready {
			return chart.WriteMessageSVG(buf, msg, size)
		}
		return chart.WriteScatterSVG(buf, view, size)
	})
}

func (s *Server) writeSVG(w http.ResponseWriter, render func(*bytes.Buffer) error) {
	var buf bytes.Buffer
	if err := render(&buf); err != nil {
		log.Printf("render svg: %v", err)
		http.Error(w, "Failed to render chart", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/svg+xml")
	w.Write(buf.Bytes())
}

// scatterJSON is a stats.ScatterView with the NaN average encoded as null.
type scatterJSON struct {
	Year                    string
	Points                  []stats.ScatterPoint
	WorldPopulationBillions float64
	WorldAverageDensity     *float64
}

func (s *Server) handleAPIArea(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	ready, area := s.dash.State() == stats.Ready, s.rec.Area
	s.mu.Unlock()

	if !ready {
		http.Error(w, stats.ErrNotReady.Error(), http.StatusServiceUnavailable)
		return
	}
	writeJSON(w, area)
}

func (s *Server) handleAPIScatter(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	ready, view := s.dash.State() == stats.Ready, s.rec.Scatter
	s.mu.Unlock()

	if !ready {
		http.Error(w, stats.ErrNotReady.Error(), http.StatusServiceUnavailable)
		return
	}

	out := scatterJSON{
		Year:                    view.Year,
		Points:                  view.Points,
		WorldPopulationBillions: view.WorldPopulationBillions,
	}
	if !math.IsNaN(view.WorldAverageDensity) {
		avg := view.WorldAverageDensity
		out.WorldAverageDensity = &avg
	}
	writeJSON(w, out)
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	js, err := json.Marshal(v)
	if err != nil {
		log.Printf("encode json: %v", err)
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(js)
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	ready, area, view := s.dash.State() == stats.Ready, s.rec.Area, s.rec.Scatter
	s.mu.Unlock()

	if !ready {
		http.Error(w, stats.ErrNotReady.Error(), http.StatusServiceUnavailable)
		return
	}

	var buf bytes.Buffer
	if err := chart.WriteXLSX(&buf, area, view); err != nil {
		log.Printf("export xlsx: %v", err)
		http.Error(w, "Failed to export", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	// The year is whatever was posted to /select.
	disposition := mime.FormatMediaType("attachment", map[string]string{
		"filename": "world-population-" + view.Year + ".xlsx",
	})
	w.Header().Set("Content-Disposition", disposition)
	w.Write(buf.Bytes())
}

var indexTemplate = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>World Population Dashboard</title>
</head>
<body>
<h1>World Population Dashboard</h1>
{{if .Err}}
<p class="error">Failed to load dataset: {{.Err}}</p>
{{else if eq .State "loading"}}
<p class="loading">Loading dataset...</p>
{{else}}
<form method="post" action="/select">
  <label for="year">Year</label>
  <select id="year" name="year" onchange="this.form.submit()">
  {{range .Years}}<option value="{{.}}"{{if eq . $.SelectedYear}} selected{{end}}>{{.}}</option>
  {{end}}</select>
  <noscript><button type="submit">Show</button></noscript>
</form>
<p>{{.Countries}} countries. World population {{.SelectedYear}}: {{.World}}Bn. World average density: {{.AvgDensity}}.</p>
<p><a href="/export.xlsx">Export XLSX</a></p>
{{end}}
<img src="/area.svg" alt="World population">
<img src="/scatter.svg" alt="Population density vs. growth">
<iframe src="/charts" width="100%" height="1100" frameborder="0"></iframe>
</body>
</html>
`))

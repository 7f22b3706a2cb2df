package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/anrid/world-population/pkg/chart"
	"github.com/anrid/world-population/pkg/stats"
	"github.com/anrid/world-population/pkg/web"
)

const worldPopulationDatabase = "/tmp/world-population.json"
const worldPopulationSource = "assets/data/world_population.csv"

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func main() {
	log.SetPrefix("dashboard: ")
	log.SetFlags(0)

	addr := flag.String("addr", getenv("WORLDPOP_ADDR", ":8080"), "listen address")
	dbFile := flag.String("db", getenv("WORLDPOP_DB", worldPopulationDatabase), "snapshot database written by cmd/create")
	source := flag.String("source", getenv("WORLDPOP_SOURCE", worldPopulationSource), "dataset file, http(s):// or s3:// URL")
	width := flag.Int("width", chart.DefaultSize.Width, "chart container width")
	height := flag.Int("height", chart.DefaultSize.Height, "chart container height")
	flag.Parse()

	ctx := context.Background()

	src, err := stats.OpenDataset(ctx, *dbFile, *source)
	if err != nil {
		log.Fatal(err)
	}

	rec := &chart.Recorder{}
	size := stats.Size{Width: *width, Height: *height}
	d := stats.NewDashboard(rec, stats.WithViewport(func() stats.Size { return size }))

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	srv := web.NewServer(d, rec, reg)

	go func() {
		if err := srv.Load(ctx, src); err != nil {
			return
		}
		log.Printf("Loaded %d rows from %s", len(d.Rows()), src.Name())
	}()

	log.Printf("Listening on %s", *addr)
	log.Fatal(http.ListenAndServe(*addr, srv))
}

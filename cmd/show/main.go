package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/davecgh/go-spew/spew"
	"golang.org/x/text/language"

	"github.com/anrid/world-population/pkg/chart"
	"github.com/anrid/world-population/pkg/stats"
)

const worldPopulationDatabase = "/tmp/world-population.json"

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func main() {
	log.SetPrefix("show: ")
	log.SetFlags(0)

	dbFile := flag.String("db", getenv("WORLDPOP_DB", worldPopulationDatabase), "snapshot database written by cmd/create")
	source := flag.String("source", os.Getenv("WORLDPOP_SOURCE"), "dataset to use instead of the database source")
	year := flag.String("year", "", "year to rank countries for (default: the last year)")
	limit := flag.Int("limit", 50, "max countries to list, 0 for all")
	xlsxFile := flag.String("xlsx", "", "also export the charts to this XLSX file")
	dump := flag.Bool("dump", false, "dump the selected year's scatter data")
	flag.Parse()

	ctx := context.Background()

	src, err := stats.OpenDataset(ctx, *dbFile, *source)
	if err != nil {
		log.Fatalf("No dataset found, run the create command in `cmd/create` first or pass -source: %v", err)
	}

	rec := &chart.Recorder{}
	d := stats.NewDashboard(rec)
	if err := d.Load(ctx, src); err != nil {
		log.Fatal(err)
	}
	if *year != "" {
		if err := d.SelectYear(*year); err != nil {
			log.Fatal(err)
		}
	}

	if *dump {
		spew.Dump(rec.Scatter)
	}

	if err := chart.WriteReport(os.Stdout, language.English, rec.Area, rec.Scatter, *limit); err != nil {
		log.Fatal(err)
	}

	if *xlsxFile != "" {
		f, err := os.Create(*xlsxFile)
		if err != nil {
			log.Fatal(err)
		}
		if err := chart.WriteXLSX(f, rec.Area, rec.Scatter); err != nil {
			f.Close()
			log.Fatal(err)
		}
		if err := f.Close(); err != nil {
			log.Fatal(err)
		}
		log.Printf("Wrote %s", *xlsxFile)
	}
}

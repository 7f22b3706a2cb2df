package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/anrid/world-population/pkg/stats"
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
	log.SetPrefix("create: ")
	log.SetFlags(0)

	dbFile := flag.String("db", getenv("WORLDPOP_DB", worldPopulationDatabase), "snapshot database to write")
	source := flag.String("source", getenv("WORLDPOP_SOURCE", worldPopulationSource), "dataset file, http(s):// or s3:// URL")
	index := flag.String("index", "", "HTML page listing dataset files to download instead of -source")
	match := flag.String("match", "", "only download index links whose title contains this text")
	flag.Parse()

	ctx := context.Background()

	db, found, err := stats.LoadIfExists(*dbFile)
	if err != nil {
		log.Fatal(err)
	}
	if !found {
		db = stats.NewDatabase(*source)
	}

	var sources []stats.Source
	if *index != "" {
		x := &stats.Index{URL: *index}
		var patterns []string
		if *match != "" {
			patterns = append(patterns, *match)
		}
		if err := x.FindLinks(ctx, patterns...); err != nil {
			log.Fatal(err)
		}
		sources = x.Sources()
		if len(x.Links) > 0 && !found {
			db.SourceURL = x.Links[0].URL
		}
	} else {
		src, err := stats.OpenSource(ctx, *source)
		if err != nil {
			log.Fatal(err)
		}
		sources = append(sources, src)
	}

	if err := db.Download(ctx, sources...); err != nil {
		log.Fatal(err)
	}
	if err := db.Save(*dbFile); err != nil {
		log.Fatal(err)
	}

	if err := db.Info(os.Stdout); err != nil {
		log.Fatal(err)
	}
}

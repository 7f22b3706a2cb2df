package stats

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

const indexHTML = `<html><body>
<ul>
<li><a href="data/world_population.csv"><b>World Population</b> (CSV)</a></li>
<li><a href="/files/world_population.xlsx">World Population (Excel)</a></li>
<li><a href="about.html">About</a></li>
</ul>
</body></html>`

func TestIndexFindLinks(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/open-data/index.html", func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, indexHTML)
	})
	mux.HandleFunc("/open-data/data/world_population.csv", func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, sampleCSV)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	ctx := context.Background()
	x := &Index{URL: srv.URL + "/open-data/index.html"}
	if err := x.FindLinks(ctx, "World Population"); err != nil {
		t.Fatal(err)
	}
	if len(x.Links) != 2 {
		t.Fatalf("found %d links, want 2: %+v", len(x.Links), x.Links)
	}

	csv := x.FindFile("World Population  (CSV)")
	if csv == nil {
		t.Fatalf("CSV link not found in %+v", x.Links)
	}
	if want := srv.URL + "/open-data/data/world_population.csv"; csv.URL != want {
		t.Errorf("CSV link = %s, want %s", csv.URL, want)
	}
	if want := srv.URL + "/files/world_population.xlsx"; x.Links[1].URL != want {
		t.Errorf("XLSX link = %s, want %s", x.Links[1].URL, want)
	}

	db := NewDatabase(x.URL)
	if err := db.Download(ctx, x.Sources()[0]); err != nil {
		t.Fatal(err)
	}
	f, found := db.GetFile(csv.URL)
	if !found {
		t.Fatal("downloaded file not in database")
	}
	rows, err := Fetch(ctx, f)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 3 {
		t.Errorf("got %d rows, want 3", len(rows))
	}
}

func TestIndexNoMatch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, indexHTML)
	}))
	defer srv.Close()

	x := &Index{URL: srv.URL}
	if err := x.FindLinks(context.Background(), "Rainfall"); err == nil {
		t.Error("FindLinks succeeded without matching links")
	}

	x = &Index{URL: srv.URL}
	if err := x.FindLinks(context.Background()); err != nil {
		t.Fatal(err)
	}
	if len(x.Links) != 3 {
		t.Errorf("found %d links, want 3", len(x.Links))
	}
}

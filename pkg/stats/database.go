package stats

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"time"
)

// Database is a snapshot of downloaded dataset files, saved as JSON so
// the dashboard can start without fetching anything.
type Database struct {
	SourceURL  string
	Files      []*File
	Downloaded time.Time
}

func NewDatabase(sourceURL string) *Database {
	return &Database{SourceURL: sourceURL}
}

// LoadIfExists loads the database saved in dbFile. found is false when
// the file doesn't exist.
func LoadIfExists(dbFile string) (db *Database, found bool, err error) {
	data, err := os.ReadFile(dbFile)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, err
	}

	db = new(Database)
	if err := json.Unmarshal(data, db); err != nil {
		return nil, false, fmt.Errorf("load %s: %w", dbFile, err)
	}
	return db, true, nil
}

// Info prints a summary of the database to w.
func (db *Database) Info(w io.Writer) error {
	uniqueFiles := make(map[string]bool)
	contentSize := 0

	for _, f := range db.Files {
		if uniqueFiles[f.URL] {
			return fmt.Errorf("duplicate dataset file URL: '%s'", f.URL)
		}
		uniqueFiles[f.URL] = true
		contentSize += len(f.ContentBase64)
	}

	_, err := fmt.Fprintf(w, `
	Source       : %s
	Unique Files : %d
	Content Size : %d
	Downloaded   : %s
`, db.SourceURL, len(uniqueFiles), contentSize, db.Downloaded.Format(time.RFC3339))
	return err
}

func (db *Database) Save(dbFile string) error {
	js, err := json.MarshalIndent(db, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(dbFile, js, 0o644)
}

// Dump writes o as indented JSON.
func Dump(w io.Writer, o interface{}) error {
	js, err := json.MarshalIndent(o, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(js))
	return err
}

// Download fetches every source into the database, replacing files
// downloaded earlier from the same URL.
func (db *Database) Download(ctx context.Context, sources ...Source) error {
	for _, src := range sources {
		f := &File{}
		if err := f.DownloadContent(ctx, src); err != nil {
			return err
		}
		db.putFile(f)
	}

	db.Downloaded = time.Now()
	return nil
}

func (db *Database) putFile(f *File) {
	for i, old := range db.Files {
		if old.URL == f.URL {
			db.Files[i] = f
			return
		}
	}
	db.Files = append(db.Files, f)
}

// GetFile returns the file downloaded from url, or the source URL of the
// database when url is empty.
func (db *Database) GetFile(url string) (f *File, found bool) {
	if url == "" {
		url = db.SourceURL
	}
	for _, f := range db.Files {
		if f.URL == url {
			return f, true
		}
	}
	return nil, false
}

// OpenDataset returns the copy of uri saved in the database at dbFile, or
// the database's own source when uri is empty. Without a saved copy it
// falls back to OpenSource(uri).
func OpenDataset(ctx context.Context, dbFile, uri string) (Source, error) {
	if dbFile != "" {
		db, found, err := LoadIfExists(dbFile)
		if err != nil {
			return nil, err
		}
		if found {
			if f, ok := db.GetFile(uri); ok {
				log.Printf("Using %s from database %s", f.URL, dbFile)
				return f, nil
			}
		}
	}
	return OpenSource(ctx, uri)
}

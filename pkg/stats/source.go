package stats

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
)

// Source is where the dataset is fetched from.
type Source interface {
	// Name identifies the source and carries the file suffix used to
	// pick a decoder.
	Name() string
	Open(ctx context.Context) (io.ReadCloser, error)
}

// OpenSource returns the Source for uri: s3://bucket/key, http(s)://...,
// or a local file path.
func OpenSource(ctx context.Context, uri string) (Source, error) {
	switch {
	case strings.HasPrefix(uri, "s3://"):
		src, err := NewS3SourceFromURI(ctx, uri, S3ConfigFromEnv())
		if err != nil {
			return nil, err
		}
		return src, nil
	case strings.HasPrefix(uri, "http://"), strings.HasPrefix(uri, "https://"):
		return &HTTPSource{URL: uri}, nil
	case uri == "":
		return nil, fmt.Errorf("stats: empty source")
	default:
		return FileSource(uri), nil
	}
}

// Fetch reads and decodes all dataset rows of src.
func Fetch(ctx context.Context, src Source) ([]RawRow, error) {
	rc, err := src.Open(ctx)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", src.Name(), err)
	}
	defer rc.Close()

	rows, err := ReadFile(src.Name(), rc)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", src.Name(), err)
	}
	return rows, nil
}

// FileSource is a dataset on the local filesystem.
type FileSource string

func (f FileSource) Name() string { return string(f) }

func (f FileSource) Open(ctx context.Context) (io.ReadCloser, error) {
	return os.Open(string(f))
}

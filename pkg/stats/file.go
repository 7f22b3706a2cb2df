package stats

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"path"
)

// File is a downloaded copy of a dataset file, kept in the snapshot
// database.
type File struct {
	URL           string
	Title         string
	ContentBase64 string
}

// DownloadContent fetches the file content from src.
func (f *File) DownloadContent(ctx context.Context, src Source) error {
	data, err := download(ctx, src)
	if err != nil {
		return fmt.Errorf("download %s: %w", src.Name(), err)
	}
	f.URL = src.Name()
	if f.Title == "" {
		f.Title = path.Base(f.URL)
	}
	f.ContentBase64 = base64.StdEncoding.EncodeToString(data)
	return nil
}

// Name returns the URL the file was downloaded from.
func (f *File) Name() string { return f.URL }

// Open returns the stored content.
func (f *File) Open(ctx context.Context) (io.ReadCloser, error) {
	data, err := base64.StdEncoding.DecodeString(f.ContentBase64)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", f.Title, err)
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

package stats

import (
	"context"
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

var (
	linkRegexp      = regexp.MustCompile(`<a href="(.*?)">(.*?)</a>`)
	stripTagsRegexp = regexp.MustCompile(`<.*?>`)
)

// Index is an HTML page listing downloadable dataset files, e.g. an open
// data portal's download page.
type Index struct {
	URL   string
	Links []*File
}

// FindLinks collects the links on the index page whose title contains one
// of patterns, or every link when no pattern is given. Relative links are
// resolved against the page URL. The returned files carry no content yet;
// pass them to Database.Download as HTTP sources.
func (x *Index) FindLinks(ctx context.Context, patterns ...string) error {
	base, err := url.Parse(x.URL)
	if err != nil {
		return err
	}

	page, err := download(ctx, &HTTPSource{URL: x.URL})
	if err != nil {
		return fmt.Errorf("index %s: %w", x.URL, err)
	}

	for _, m := range linkRegexp.FindAllStringSubmatch(string(page), -1) {
		title := strings.TrimSpace(stripTagsRegexp.ReplaceAllString(m[2], " "))
		if !matchesAny(title, patterns) {
			continue
		}

		ref, err := url.Parse(m[1])
		if err != nil {
			return fmt.Errorf("index %s: bad link %q: %w", x.URL, m[1], err)
		}
		x.Links = append(x.Links, &File{
			URL:   base.ResolveReference(ref).String(),
			Title: title,
		})
	}

	if len(patterns) > 0 && len(x.Links) == 0 {
		return fmt.Errorf("index %s: no links match %q", x.URL, patterns)
	}
	return nil
}

func matchesAny(title string, patterns []string) bool {
	if len(patterns) == 0 {
		return true
	}
	for _, p := range patterns {
		if strings.Contains(title, p) {
			return true
		}
	}
	return false
}

// FindFile returns the link titled title.
func (x *Index) FindFile(title string) *File {
	for _, f := range x.Links {
		if f.Title == title {
			return f
		}
	}
	return nil
}

// Sources returns an HTTPSource for every link found.
func (x *Index) Sources() []Source {
	srcs := make([]Source, 0, len(x.Links))
	for _, f := range x.Links {
		srcs = append(srcs, &HTTPSource{URL: f.URL})
	}
	return srcs
}

// Package catalog answers title searches from an in-memory list, for running
// the form without a suggestion endpoint.
package catalog

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"
)

const (
	// MaxResults caps the number of titles returned per query
	MaxResults = 10
	minQuery   = 2
)

// Catalog is an ordered list of titles searchable by substring
type Catalog struct {
	titles []string
	lower  []string
}

// New creates a catalog over titles, keeping their order
func New(titles []string) *Catalog {
	c := &Catalog{
		titles: make([]string, 0, len(titles)),
		lower:  make([]string, 0, len(titles)),
	}
	for _, t := range titles {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		c.titles = append(c.titles, t)
		c.lower = append(c.lower, strings.ToLower(t))
	}
	return c
}

// Default returns the built-in catalog of popular movies
func Default() *Catalog {
	return New(PopularMovies)
}

// Load reads one title per line; blank lines and lines starting with # are skipped
func Load(r io.Reader) (*Catalog, error) {
	var titles []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		titles = append(titles, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}
	return New(titles), nil
}

// LoadFile reads a catalog from path
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// Len returns the number of titles
func (c *Catalog) Len() int {
	return len(c.titles)
}

// Search returns up to MaxResults titles containing query, case-insensitively,
// in catalog order. Queries shorter than two characters match nothing.
func (c *Catalog) Search(query string) []string {
	q := strings.ToLower(query)
	if utf8.RuneCountInString(q) < minQuery {
		return []string{}
	}

	out := make([]string, 0, MaxResults)
	for i, l := range c.lower {
		if strings.Contains(l, q) {
			out = append(out, c.titles[i])
			if len(out) == MaxResults {
				break
			}
		}
	}
	return out
}

// Fetch implements autocomplete.Fetcher
func (c *Catalog) Fetch(ctx context.Context, query string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return c.Search(query), nil
}

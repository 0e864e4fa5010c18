package autocomplete

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/vmihailenco/msgpack/v5"
)

// DefaultSearchPath is where the suggestion endpoint lives on its host
const DefaultSearchPath = "/api/movies/search"

const maxBodySize = 64 * 1024

// ErrEmptyQuery is returned for queries that are blank after trimming
var ErrEmptyQuery = errors.New("empty query")

// Fetcher looks up candidate titles for a text fragment
type Fetcher interface {
	Fetch(ctx context.Context, query string) ([]string, error)
}

// FetcherFunc adapts a function to the Fetcher interface
type FetcherFunc func(ctx context.Context, query string) ([]string, error)

// Fetch calls f
func (f FetcherFunc) Fetch(ctx context.Context, query string) ([]string, error) {
	return f(ctx, query)
}

// FetchError reports a transport, status or decode failure of the endpoint
type FetchError struct {
	Query      string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetch suggestions for %q: unexpected status %d", e.Query, e.StatusCode)
	}
	return fmt.Sprintf("fetch suggestions for %q: %v", e.Query, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// HTTPFetcher queries the remote suggestion endpoint
type HTTPFetcher struct {
	base   *url.URL
	client *http.Client
}

// NewHTTPFetcher creates a fetcher for endpoint + path. A nil client gets a
// default one with a 10 second timeout.
func NewHTTPFetcher(endpoint, path string, client *http.Client) (*HTTPFetcher, error) {
	base, err := url.Parse(endpoint)
	if err != nil {
		return nil, fmt.Errorf("failed to parse search endpoint: %w", err)
	}
	if base.Scheme != "http" && base.Scheme != "https" {
		return nil, fmt.Errorf("search endpoint %q must be http or https", endpoint)
	}
	if path == "" {
		path = DefaultSearchPath
	}
	base = base.JoinPath(path)

	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &HTTPFetcher{base: base, client: client}, nil
}

// URL returns the request URL for query
func (f *HTTPFetcher) URL(query string) string {
	u := *f.base
	u.RawQuery = url.Values{"q": {query}}.Encode()
	return u.String()
}

// Fetch performs one GET round trip. Any 2xx with a JSON (or msgpack) array of
// strings succeeds; everything else is a *FetchError.
func (f *HTTPFetcher) Fetch(ctx context.Context, query string) ([]string, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrEmptyQuery
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.URL(query), nil)
	if err != nil {
		return nil, &FetchError{Query: query, Err: err}
	}
	req.Header.Set("Accept", "application/json, application/msgpack;q=0.9")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, &FetchError{Query: query, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodySize))
		return nil, &FetchError{Query: query, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize+1))
	if err != nil {
		return nil, &FetchError{Query: query, Err: err}
	}
	if len(body) > maxBodySize {
		return nil, &FetchError{Query: query, Err: fmt.Errorf("response larger than %d bytes", maxBodySize)}
	}

	titles, err := decodeTitles(resp.Header.Get("Content-Type"), body)
	if err != nil {
		return nil, &FetchError{Query: query, Err: err}
	}
	return uniqueTitles(titles), nil
}

func decodeTitles(contentType string, body []byte) ([]string, error) {
	mediaType, _, _ := mime.ParseMediaType(contentType)

	var out *[]string
	switch mediaType {
	case "application/msgpack", "application/x-msgpack", "application/vnd.msgpack":
		if err := msgpack.Unmarshal(body, &out); err != nil {
			return nil, fmt.Errorf("failed to decode msgpack body: %w", err)
		}
	default:
		if err := json.Unmarshal(body, &out); err != nil {
			return nil, fmt.Errorf("failed to decode json body: %w", err)
		}
	}
	if out == nil {
		return nil, errors.New("expected an array of titles, got null")
	}
	return *out, nil
}

// uniqueTitles drops repeated titles keeping the first occurrence
func uniqueTitles(titles []string) []string {
	seen := make(map[string]struct{}, len(titles))
	out := make([]string, 0, len(titles))
	for _, t := range titles {
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}

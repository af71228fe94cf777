// Package fetch opens the export document, wherever it lives.
// Most runs point at a local file downloaded from /wp-admin/export.php,
// but the export can also be fetched straight from a URL.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

const (
	defaultTimeout   = 30 * time.Second
	defaultUserAgent = "wp2zola/1.0 (https://github.com/gaurav-prasanna/wp2zola)"
)

// Source opens export documents from paths or URLs.
type Source struct {
	client *http.Client
}

// New creates a Source with a sensible HTTP timeout.
func New() *Source {
	return &Source{
		client: &http.Client{Timeout: defaultTimeout},
	}
}

// Open returns a reader over the export document. Arguments starting with
// http:// or https:// are fetched over HTTP; everything else is a file path.
// The caller closes the reader.
func (s *Source) Open(ctx context.Context, arg string) (io.ReadCloser, error) {
	if strings.HasPrefix(arg, "http://") || strings.HasPrefix(arg, "https://") {
		return s.fetch(ctx, arg)
	}

	f, err := os.Open(arg)
	if err != nil {
		return nil, fmt.Errorf("opening export file: %w", err)
	}
	return f, nil
}

// fetch retrieves the export document over HTTP.
func (s *Source) fetch(ctx context.Context, url string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", defaultUserAgent)
	req.Header.Set("Accept", "application/rss+xml, application/xml, text/xml")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", url, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		resp.Body.Close()
		return nil, fmt.Errorf("unexpected status %d for %s", resp.StatusCode, url)
	}

	return resp.Body, nil
}

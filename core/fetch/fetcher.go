// Package fetch retrieves remote documents so that http(s):// inputs can
// be converted like local files.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	defaultTimeout   = 30 * time.Second
	defaultUserAgent = "docmd/1.0 (+https://github.com/knakagawa/docmd)"

	// maxBodySize caps remote downloads at 32 MiB.
	maxBodySize = 32 << 20
)

// Fetcher downloads documents over HTTP.
type Fetcher struct {
	client *http.Client
}

// New creates a Fetcher with a sensible timeout.
func New() *Fetcher {
	return &Fetcher{
		client: &http.Client{Timeout: defaultTimeout},
	}
}

// IsURL reports whether the input names a remote document.
func IsURL(input string) bool {
	return strings.HasPrefix(input, "http://") || strings.HasPrefix(input, "https://")
}

// Fetch retrieves the document body at the given URL.
func (f *Fetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", defaultUserAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}
	return body, nil
}

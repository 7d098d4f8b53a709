package localize

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"localize/pkg/catalog"
)

// defaultFetchTimeout bounds catalog requests when the caller supplies no
// client of their own.
const defaultFetchTimeout = 10 * time.Second

// Fetcher retrieves the raw message catalog from wherever it lives. The
// engine treats any returned error as "no messages available": resolution
// then degrades to echoing keys.
type Fetcher interface {
	Fetch(ctx context.Context) (catalog.Raw, error)
}

// FetcherFunc adapts a function to the Fetcher interface.
type FetcherFunc func(ctx context.Context) (catalog.Raw, error)

// Fetch calls f.
func (f FetcherFunc) Fetch(ctx context.Context) (catalog.Raw, error) {
	return f(ctx)
}

// HTTPFetcher retrieves message catalogs from fixed, well-known URLs, each
// returning a JSON document of key to locale to value shape. Multiple URLs
// are fetched concurrently and merged, later URLs winning on conflicts.
type HTTPFetcher struct {
	client *http.Client
	urls   []string
}

// NewHTTPFetcher creates an HTTPFetcher for the given catalog URLs. A nil
// client gets a default one with a request timeout.
func NewHTTPFetcher(client *http.Client, urls ...string) *HTTPFetcher {
	if client == nil {
		client = &http.Client{Timeout: defaultFetchTimeout}
	}
	return &HTTPFetcher{client: client, urls: urls}
}

// Fetch retrieves and merges all configured catalog URLs. Any failed URL
// fails the whole fetch; the engine then degrades to an empty catalog.
func (f *HTTPFetcher) Fetch(ctx context.Context) (catalog.Raw, error) {
	if len(f.urls) == 0 {
		return nil, ErrNoCatalogURL
	}

	parts := make([]catalog.Raw, len(f.urls))
	g, ctx := errgroup.WithContext(ctx)
	for i, url := range f.urls {
		i, url := i, url
		g.Go(func() error {
			raw, err := f.fetchOne(ctx, url)
			if err != nil {
				return err
			}
			parts[i] = raw
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	merged := make(catalog.Raw)
	for _, part := range parts {
		merged.Merge(part)
	}
	return merged, nil
}

func (f *HTTPFetcher) fetchOne(ctx context.Context, url string) (catalog.Raw, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("localize: building catalog request for %q: %w", url, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("localize: fetching catalog %q: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("localize: fetching catalog %q: unexpected status %d", url, resp.StatusCode)
	}

	var raw catalog.Raw
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("localize: decoding catalog %q: %w", url, err)
	}
	return raw, nil
}

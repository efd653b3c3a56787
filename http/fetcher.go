// Package http provides the net/http implementation of crawler.Fetcher.
package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/isabelleatkins/crawler"
)

// UserAgent is sent on every request. Sites behind bot-detection proxies
// reject requests without a recognizable browser identity, so a fixed
// mobile-browser string is used instead of a crawler identity.
const UserAgent = "Mozilla/5.0 (iPad; CPU OS 12_2 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Mobile/15E148"

// Ensure Fetcher implements crawler.Fetcher at compile time.
var _ crawler.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves pages using net/http. The underlying client's
// connection pool is shared safely across all crawl workers.
//
// By default requests have no timeout, so a stalled fetch occupies its
// concurrency slot until the server gives up. Set WithTimeout to bound
// each fetch instead.
type Fetcher struct {
	client    *http.Client
	timeout   time.Duration
	userAgent string
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout bounds each request. Zero (the default) disables the bound.
// A timed-out fetch surfaces as a transport error, so the crawl abandons
// the URL and continues.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent overrides the User-Agent header sent on each request.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		userAgent: UserAgent,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch issues a GET for the URL. Non-2xx statuses are returned in the
// Response, not as errors; only transport failures error.
func (f *Fetcher) Fetch(ctx context.Context, url string) (*crawler.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, crawler.Errorf(crawler.EINVALID, "invalid URL %q: %v", url, err)
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", url, err)
	}

	return &crawler.Response{
		StatusCode: resp.StatusCode,
		Body:       string(body),
	}, nil
}

// Close releases resources. For the HTTP fetcher this is a no-op since
// http.Client doesn't require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}

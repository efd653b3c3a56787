package mock

import (
	"context"

	"github.com/isabelleatkins/crawler"
)

var _ crawler.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of crawler.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (*crawler.Response, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (*crawler.Response, error) {
	return f.FetchFn(ctx, url)
}

func (f *Fetcher) Close() error {
	return f.CloseFn()
}

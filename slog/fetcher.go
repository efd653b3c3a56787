// Package slog provides log/slog decorators for crawler interfaces.
package slog

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/isabelleatkins/crawler"
)

// Ensure LoggingFetcher implements crawler.Fetcher.
var _ crawler.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with per-request logging. The logged
// body digest makes it easy to spot distinct URL spellings of the same
// page, which the crawl otherwise treats as separate entities.
type LoggingFetcher struct {
	next   crawler.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next crawler.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher and logs the outcome.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (resp *crawler.Response, err error) {
	defer func(begin time.Time) {
		attrs := []any{
			"url", url,
			"duration", time.Since(begin),
		}
		if resp != nil {
			attrs = append(attrs,
				"status", resp.StatusCode,
				"bytes", len(resp.Body),
				"digest", fmt.Sprintf("%016x", xxhash.Sum64String(resp.Body)),
			)
		}
		if err != nil {
			attrs = append(attrs, "err", err)
		}
		f.logger.Info("fetch", attrs...)
	}(time.Now())
	return f.next.Fetch(ctx, url)
}

// Close delegates to the wrapped fetcher.
func (f *LoggingFetcher) Close() error {
	return f.next.Close()
}

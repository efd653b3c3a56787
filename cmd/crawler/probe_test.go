package main_test

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/isabelleatkins/crawler"
	main "github.com/isabelleatkins/crawler/cmd/crawler"
	"github.com/isabelleatkins/crawler/mock"
	"github.com/stretchr/testify/assert"
)

func TestProbe_ReportsStatus(t *testing.T) {
	t.Parallel()

	fetcher := &mock.Fetcher{
		FetchFn: func(ctx context.Context, url string) (*crawler.Response, error) {
			return &crawler.Response{StatusCode: http.StatusOK}, nil
		},
	}

	var out bytes.Buffer
	main.Probe(context.Background(), fetcher, "https://example.test/", &out)

	assert.Equal(t, "Status for https://example.test/: 200\n", out.String())
}

func TestProbe_ReportsServerUnderLoad(t *testing.T) {
	t.Parallel()

	fetcher := &mock.Fetcher{
		FetchFn: func(ctx context.Context, url string) (*crawler.Response, error) {
			return &crawler.Response{StatusCode: http.StatusAccepted}, nil
		},
	}

	var out bytes.Buffer
	main.Probe(context.Background(), fetcher, "https://example.test/", &out)

	assert.Contains(t, out.String(), "Status for https://example.test/: 202")
	assert.Contains(t, out.String(), "under load")
}

func TestProbe_ReportsFailureWithoutAborting(t *testing.T) {
	t.Parallel()

	fetcher := &mock.Fetcher{
		FetchFn: func(ctx context.Context, url string) (*crawler.Response, error) {
			return nil, errors.New("connection refused")
		},
	}

	var out bytes.Buffer
	main.Probe(context.Background(), fetcher, "https://example.test/", &out)

	assert.Contains(t, out.String(), "Probe for https://example.test/ failed")
	assert.Contains(t, out.String(), "connection refused")
}

package main

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/isabelleatkins/crawler"
)

// Probe issues a single GET to the origin before the crawl starts and
// reports the status it sees. A 202 means the server is shedding load;
// the crawl proceeds regardless, so the report is informational only.
func Probe(ctx context.Context, fetcher crawler.Fetcher, url string, out io.Writer) {
	resp, err := fetcher.Fetch(ctx, url)
	if err != nil {
		fmt.Fprintf(out, "Probe for %s failed: %v\n", url, err)
		return
	}
	fmt.Fprintf(out, "Status for %s: %d\n", url, resp.StatusCode)
	if resp.StatusCode == http.StatusAccepted {
		fmt.Fprintf(out, "%s reports it is under load; continuing anyway\n", url)
	}
}

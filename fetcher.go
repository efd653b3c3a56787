package crawler

import "context"

// Response is the raw outcome of fetching a page.
type Response struct {
	// StatusCode is the HTTP status returned by the server.
	StatusCode int

	// Body is the response body. The crawl only consults it for 200
	// responses.
	Body string
}

// Fetcher retrieves pages over HTTP.
// Implementations must be safe for concurrent use by multiple goroutines.
type Fetcher interface {
	// Fetch issues a GET request for the URL and returns the status and
	// body. A non-2xx status is not an error; transport failures are.
	Fetch(ctx context.Context, url string) (*Response, error)

	// Close releases any underlying resources.
	// Must be called when the Fetcher is no longer needed.
	Close() error
}

package crawler

// Frontier holds URLs that have been discovered but not yet fetched.
// Order is unspecified: the crawl guarantees termination and coverage,
// not any particular visit order.
//
// A Frontier does not deduplicate. The crawl engine gates every Push on
// the visited registry, and it does so from a single goroutine, which is
// what makes the check-then-insert atomic.
type Frontier interface {
	// Push adds a URL to the frontier.
	Push(url string)

	// Pop removes and returns a URL.
	// The bool result is false if the frontier is empty.
	Pop() (string, bool)

	// Len returns the number of queued URLs.
	Len() int
}

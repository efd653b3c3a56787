package crawl

import (
	"sync"

	"github.com/isabelleatkins/crawler"
)

// Compile-time interface verification.
var _ crawler.Frontier = (*Frontier)(nil)

// Frontier is an in-memory stack of URLs awaiting a fetch. Pop returns the
// most recently pushed URL first, but callers must not rely on the order.
// It is safe for concurrent use by multiple goroutines, although under the
// message-passing coordinator only one goroutine touches it.
type Frontier struct {
	mu   sync.Mutex
	urls []string
}

// NewFrontier creates an empty Frontier.
func NewFrontier() *Frontier {
	return &Frontier{}
}

// Push adds a URL to the frontier.
func (f *Frontier) Push(url string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.urls = append(f.urls, url)
}

// Pop removes and returns the most recently pushed URL.
// The bool result is false if the frontier is empty.
func (f *Frontier) Pop() (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.urls) == 0 {
		return "", false
	}
	url := f.urls[len(f.urls)-1]
	f.urls = f.urls[:len(f.urls)-1]
	return url, true
}

// Len returns the number of queued URLs.
func (f *Frontier) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.urls)
}

package crawler

import "sort"

// Graph maps each visited page to the in-scope links found on it. Keys are
// canonical absolute URLs; values are the raw hrefs as they appeared in the
// document, in document order. The key set doubles as the crawl's "seen"
// record: once a URL is a key it is never fetched again.
//
// Graph is not safe for concurrent use; the crawl engine mutates it from a
// single goroutine.
type Graph map[string][]string

// Visit records url as fetched, creating an empty entry if absent.
// A page with no in-scope links still appears in the graph.
func (g Graph) Visit(url string) {
	if _, ok := g[url]; !ok {
		g[url] = []string{}
	}
}

// Add appends a raw href to the parent's entry, creating it if needed.
func (g Graph) Add(parent, href string) {
	g[parent] = append(g[parent], href)
}

// Visited returns true if url has been recorded as fetched.
func (g Graph) Visited(url string) bool {
	_, ok := g[url]
	return ok
}

// Len returns the number of visited pages.
func (g Graph) Len() int {
	return len(g)
}

// URLs returns the visited page URLs in sorted order.
func (g Graph) URLs() []string {
	urls := make([]string, 0, len(g))
	for u := range g {
		urls = append(urls, u)
	}
	sort.Strings(urls)
	return urls
}

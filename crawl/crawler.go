// Package crawl provides the bounded-concurrency crawl engine. A fixed
// pool of workers fetches and parses pages while a single coordinator
// goroutine owns the frontier and the visited registry, so the
// check-then-insert that prevents duplicate fetches needs no locking.
package crawl

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"sync"

	"github.com/isabelleatkins/crawler"
)

// DefaultConcurrency caps simultaneously in-flight fetches. The cap keeps
// the number of open outbound sockets within OS limits; it is a resource
// bound, not a correctness device.
const DefaultConcurrency = 100

// Crawler walks a single site from a root URL and records, for every page
// fetched, the in-scope links found on it.
type Crawler struct {
	Fetcher   crawler.Fetcher
	Extractor crawler.LinkExtractor

	// Frontier holds discovered-but-unfetched URLs.
	// Nil means an in-memory frontier.
	Frontier crawler.Frontier

	// Concurrency caps in-flight fetches.
	// Zero or negative means DefaultConcurrency.
	Concurrency int

	// Logger receives abandoned-fetch warnings. Nil discards them.
	Logger *slog.Logger
}

// outcome is a worker's report for one URL.
type outcome struct {
	url     string
	hrefs   []string // raw hrefs, populated only when fetched is true
	fetched bool     // server returned 200
	err     error
}

// Run crawls the site rooted at root and returns the visited registry:
// each fetched page mapped to the raw hrefs of its in-scope links.
//
// Run returns when the frontier is empty and no worker is in flight, or
// when ctx is canceled, in which case the partial registry is returned
// together with ctx.Err().
func (c *Crawler) Run(ctx context.Context, root string) (crawler.Graph, error) {
	scope, err := crawler.NewScope(root)
	if err != nil {
		return nil, err
	}

	concurrency := c.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}
	logger := c.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	frontier := c.Frontier
	if frontier == nil {
		frontier = NewFrontier()
	}

	graph := crawler.Graph{}

	// pending tracks URLs that are queued or in flight so that concurrent
	// discovery from multiple parents cannot schedule the same fetch
	// twice. A URL leaves pending when its fetch completes: a 200 makes
	// it a graph key and it is never fetched again, anything else leaves
	// it re-discoverable.
	pending := map[string]bool{scope.Root(): true}
	frontier.Push(scope.Root())

	workCh := make(chan string, concurrency)
	resultCh := make(chan outcome)

	var wg sync.WaitGroup
	for i := 0; i < concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for url := range workCh {
				out := c.process(ctx, url)
				select {
				case resultCh <- out:
				case <-ctx.Done():
					return
				}
			}
		}()
	}

	// Close the result channel once every worker has exited.
	go func() {
		wg.Wait()
		close(resultCh)
	}()

	// Coordinator loop. The sole termination condition is: nothing left
	// to dispatch AND zero workers in flight, re-checked after every
	// completion. Workers grow the frontier, so counting dispatches up
	// front would under-count.
	inFlight := 0
	next, hasNext := frontier.Pop()

coordinatorLoop:
	for {
		if !hasNext && inFlight == 0 {
			break coordinatorLoop
		}
		if ctx.Err() != nil {
			break coordinatorLoop
		}

		if hasNext {
			select {
			case <-ctx.Done():
				break coordinatorLoop
			case workCh <- next:
				inFlight++
				hasNext = false
			case out := <-resultCh:
				inFlight--
				c.record(out, scope, graph, frontier, pending, logger)
			}
		} else {
			select {
			case <-ctx.Done():
				break coordinatorLoop
			case out, ok := <-resultCh:
				if !ok {
					break coordinatorLoop
				}
				inFlight--
				c.record(out, scope, graph, frontier, pending, logger)
			}
		}

		if !hasNext {
			next, hasNext = frontier.Pop()
		}
	}

	// Stop the workers and discard any results still in flight.
	close(workCh)
	for range resultCh {
	}

	return graph, ctx.Err()
}

// process fetches one URL and extracts its raw hrefs.
func (c *Crawler) process(ctx context.Context, url string) outcome {
	out := outcome{url: url}

	resp, err := c.Fetcher.Fetch(ctx, url)
	if err != nil {
		out.err = err
		return out
	}
	if resp.StatusCode != http.StatusOK {
		// Skipped silently: the URL never becomes a registry key, so a
		// later discovery from a different parent will try it again.
		return out
	}

	hrefs, err := c.Extractor.ExtractHrefs(resp.Body)
	if err != nil {
		out.err = err
		return out
	}

	out.fetched = true
	out.hrefs = hrefs
	return out
}

// record folds one worker outcome into the registry and the frontier.
// Only the coordinator goroutine calls record, which is what makes the
// check-then-insert on the registry atomic.
func (c *Crawler) record(out outcome, scope *crawler.Scope, graph crawler.Graph, frontier crawler.Frontier, pending map[string]bool, logger *slog.Logger) {
	delete(pending, out.url)

	if out.err != nil {
		// Abandoned, not retried. The rest of the crawl proceeds.
		logger.Warn("fetch abandoned", "url", out.url, "err", out.err)
		return
	}
	if !out.fetched {
		return
	}

	// Register the visit before classifying children so a page linking
	// to itself does not re-enter the frontier.
	graph.Visit(out.url)

	for _, href := range out.hrefs {
		abs, ok := scope.Resolve(href)
		if !ok {
			continue
		}
		graph.Add(out.url, href)
		if graph.Visited(abs) || pending[abs] {
			continue
		}
		pending[abs] = true
		frontier.Push(abs)
	}
}

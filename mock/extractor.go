package mock

import "github.com/isabelleatkins/crawler"

var _ crawler.LinkExtractor = (*LinkExtractor)(nil)

// LinkExtractor is a mock implementation of crawler.LinkExtractor.
type LinkExtractor struct {
	ExtractHrefsFn func(html string) ([]string, error)
}

func (e *LinkExtractor) ExtractHrefs(html string) ([]string, error) {
	return e.ExtractHrefsFn(html)
}

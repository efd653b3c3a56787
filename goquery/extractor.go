// Package goquery provides HTML link extraction backed by PuerkitoBio/goquery.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/isabelleatkins/crawler"
)

// Ensure Extractor implements crawler.LinkExtractor at compile time.
var _ crawler.LinkExtractor = (*Extractor)(nil)

// Extractor pulls anchor hrefs out of HTML documents.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// ExtractHrefs returns the href of every anchor element in document order.
// Anchors without an href attribute are skipped and duplicates are
// preserved. Malformed HTML is parsed permissively: a document with no
// anchors yields an empty result, not an error.
func (e *Extractor) ExtractHrefs(html string) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, crawler.Errorf(crawler.EINVALID, "failed to parse HTML: %v", err)
	}

	var hrefs []string
	doc.Find("a").Each(func(_ int, sel *goquery.Selection) {
		if href, exists := sel.Attr("href"); exists {
			hrefs = append(hrefs, href)
		}
	})
	return hrefs, nil
}

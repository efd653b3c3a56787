package crawler

// LinkExtractor extracts raw anchor targets from an HTML document.
type LinkExtractor interface {
	// ExtractHrefs returns the href attribute of every anchor element in
	// document order. Anchors without an href are skipped; duplicate hrefs
	// are preserved (deduplication happens at the registry boundary, not
	// here).
	ExtractHrefs(html string) ([]string, error)
}

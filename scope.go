package crawler

import (
	"net/url"
	"strings"
)

// Scope decides whether a discovered href belongs to the crawled site and
// resolves root-relative paths to absolute URLs.
//
// Scope performs no canonicalization beyond trimming the root's trailing
// slash: scheme case, default ports, query strings and fragments are all
// significant, so two spellings of the same resource count as distinct
// pages. This is a deliberate, documented simplification.
type Scope struct {
	origin string
}

// NewScope creates a Scope for the given crawl root.
// The root must be an absolute http or https URL.
func NewScope(root string) (*Scope, error) {
	u, err := url.Parse(root)
	if err != nil {
		return nil, Errorf(EINVALID, "invalid root URL %q: %v", root, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, Errorf(EINVALID, "root URL %q must be an absolute http(s) URL", root)
	}
	return &Scope{origin: strings.TrimSuffix(root, "/")}, nil
}

// Root returns the canonical form of the crawl root, used to seed the
// frontier and as the registry key for the root page.
func (s *Scope) Root() string {
	return s.origin + "/"
}

// Resolve classifies an href against the crawl root. In-scope hrefs return
// their absolute form and true; everything else (other hosts, bare
// fragments, mailto: and friends) returns "" and false.
func (s *Scope) Resolve(href string) (string, bool) {
	switch {
	case strings.HasPrefix(href, s.origin):
		return href, true
	case strings.HasPrefix(href, "/"):
		return s.origin + href, true
	default:
		return "", false
	}
}

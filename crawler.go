// Package crawler maps a single website: starting from a root URL it follows
// hyperlinks confined to that site's origin and records, for every page it
// fetches, the links found on it.
//
// This package contains domain types and interfaces following the Standard
// Package Layout. Implementations live in subdirectories named after their
// primary dependency (e.g., http/, goquery/); the crawl engine lives in
// crawl/ and the binary in cmd/crawler.
package crawler

package domain

import "time"

// SourceItem is one raw item returned by the external content provider,
// before fingerprinting and enrichment.
type SourceItem struct {
	Title       string
	Description string
	Content     string
	URL         string
	Image       string
	PublishedAt time.Time
	SourceName  string
	SourceURL   string
}

// SearchResult is one page of provider results.
type SearchResult struct {
	Items      []SourceItem
	TotalCount int
}

package domain

import "context"

// SearchClient defines the interface to the CSE-like search collaborator.
// Implementations return up to num ranked results for a free-text query.
type SearchClient interface {
	Search(ctx context.Context, query string, num int) ([]SearchItem, error)
}

// PageFetcher defines the interface for fetching a page body as text.
// Any transport failure or non-2xx status is returned as an error.
type PageFetcher interface {
	FetchPage(ctx context.Context, pageURL string) (string, error)
}

package domain

import "errors"

var (
	// ErrSearchNotConfigured is returned when CSE credentials are absent
	ErrSearchNotConfigured = errors.New("search credentials not configured")

	// ErrSearchFailed is returned when a search API request fails
	ErrSearchFailed = errors.New("search API request failed")

	// ErrNoResults is returned when a search query yields zero items
	ErrNoResults = errors.New("no search results")

	// ErrPageFetchFailed is returned when a page fetch fails or returns a non-success status
	ErrPageFetchFailed = errors.New("page fetch failed")
)

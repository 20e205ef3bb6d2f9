package usecase

import (
	"context"
	"strings"

	"github.com/ayna/brand-harvester/internal/domain"
)

// fakeSearchClient scripts search responses by query substring
type fakeSearchClient struct {
	results map[string][]domain.SearchItem
	errs    map[string]error
	queries []string
}

func (f *fakeSearchClient) Search(_ context.Context, query string, _ int) ([]domain.SearchItem, error) {
	f.queries = append(f.queries, query)
	for key, err := range f.errs {
		if strings.Contains(query, key) {
			return nil, err
		}
	}
	for key, items := range f.results {
		if strings.Contains(query, key) {
			if len(items) == 0 {
				return nil, domain.ErrNoResults
			}
			return items, nil
		}
	}
	return nil, domain.ErrNoResults
}

// emptySearchClient answers every query with no items and a nil error,
// as the SearchClient contract permits
type emptySearchClient struct{}

func (emptySearchClient) Search(_ context.Context, _ string, _ int) ([]domain.SearchItem, error) {
	return []domain.SearchItem{}, nil
}

// unconfiguredSearchClient simulates missing CSE credentials
type unconfiguredSearchClient struct {
	calls int
}

func (f *unconfiguredSearchClient) Search(_ context.Context, _ string, _ int) ([]domain.SearchItem, error) {
	f.calls++
	return nil, domain.ErrSearchNotConfigured
}

// fakePageFetcher scripts page bodies and failures by URL
type fakePageFetcher struct {
	pages   map[string]string
	errs    map[string]error
	fetched []string
}

func (f *fakePageFetcher) FetchPage(_ context.Context, pageURL string) (string, error) {
	f.fetched = append(f.fetched, pageURL)
	if err, ok := f.errs[pageURL]; ok {
		return "", err
	}
	if body, ok := f.pages[pageURL]; ok {
		return body, nil
	}
	return "", domain.ErrPageFetchFailed
}

package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/ayna/brand-harvester/internal/domain"
)

// marketplaceSites are scanned in priority order; an acceptable link on an
// earlier site wins even when later sites would also have hits.
var marketplaceSites = []string{
	"myntra.com",
	"ajio.com",
	"nykaafashion.com",
}

// productURLTokens appear in marketplace product page paths
var productURLTokens = []string{"/buy", "/p/", "/dp/", "/product", "/products"}

// MarketplaceResolver finds a marketplace product page for a brand via the
// search collaborator.
type MarketplaceResolver struct {
	search domain.SearchClient
}

// NewMarketplaceResolver creates a marketplace resolver
func NewMarketplaceResolver(search domain.SearchClient) *MarketplaceResolver {
	return &MarketplaceResolver{search: search}
}

// FindProductURL returns the first plausible marketplace product URL for
// companyName, or "" when nothing is found.
//
// Each site gets one `"<name>" site:<domain>` query of up to 5 results.
// The first link carrying a product token wins; a site whose results carry
// no product token still returns its first result rather than moving on.
// Query failures and empty results advance to the next site.
func (r *MarketplaceResolver) FindProductURL(ctx context.Context, companyName string) string {
	for _, site := range marketplaceSites {
		// Plain quoting, not %q: the search API should see the name
		// verbatim, never Go-escaped
		query := fmt.Sprintf("\"%s\" site:%s", companyName, site)

		items, err := r.search.Search(ctx, query, 5)
		if err != nil {
			if errors.Is(err, domain.ErrSearchNotConfigured) {
				log.Printf("[Marketplace] CSE config missing, skipping marketplace search")
				return ""
			}
			log.Printf("[Marketplace] search error for site %s: %v", site, err)
			continue
		}

		for _, item := range items {
			if containsAny(strings.ToLower(item.Link), productURLTokens) {
				return item.Link
			}
		}

		// No product-ish URL, but the site did answer: fall back to its top hit
		if len(items) > 0 {
			return items[0].Link
		}
	}

	return ""
}

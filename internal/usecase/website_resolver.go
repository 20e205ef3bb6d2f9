package usecase

import (
	"context"
	"log"
	"strings"

	"github.com/ayna/brand-harvester/internal/domain"
)

// nonTargetHosts are domains we never want to present as a brand's own
// website: the marketplaces we search separately, social networks, and
// the big generic retailers.
var nonTargetHosts = []string{
	"myntra.com",
	"ajio.com",
	"nykaafashion.com",
	"instagram.com",
	"facebook.com",
	"linkedin.com",
	"x.com",
	"twitter.com",
	"pinterest.com",
	"amazon.in",
	"amazon.com",
}

// fashionKeywords mark a search result as plausibly belonging to an
// apparel brand when found in its title or snippet
var fashionKeywords = []string{
	"clothing", "apparel", "fashion", "wear", "dress",
	"kurta", "saree", "lehenga", "ethnic", "menswear",
	"womenswear", "footwear", "accessories", "boutique", "couture",
	"designer", "garment", "outfit", "style", "lifestyle",
}

// websiteQuerySuffix biases the query toward apparel-brand results so a
// bakery or consultancy with the same name doesn't win
const websiteQuerySuffix = " (clothing OR apparel OR fashion OR brand)"

// WebsiteResolver finds a brand's own website via the search collaborator.
type WebsiteResolver struct {
	search domain.SearchClient
}

// NewWebsiteResolver creates a website resolver
func NewWebsiteResolver(search domain.SearchClient) *WebsiteResolver {
	return &WebsiteResolver{search: search}
}

// FindWebsiteURL returns the most plausible brand-website link for
// companyName, or "" when the query fails or yields nothing.
//
// Selection tiers, first match wins:
//  1. first result neither on a non-target host nor missing a fashion
//     keyword in its title/snippet
//  2. first result not on a non-target host
//  3. first result regardless
func (r *WebsiteResolver) FindWebsiteURL(ctx context.Context, companyName string) string {
	query := companyName + websiteQuerySuffix

	items, err := r.search.Search(ctx, query, 10)
	if err != nil {
		log.Printf("[Website] search error for %q: %v", companyName, err)
		return ""
	}
	if len(items) == 0 {
		return ""
	}

	for _, item := range items {
		if isNonTargetHost(item.Link) {
			continue
		}
		if hasFashionKeyword(item.Title + " " + item.Snippet) {
			return item.Link
		}
	}

	for _, item := range items {
		if !isNonTargetHost(item.Link) {
			return item.Link
		}
	}

	return items[0].Link
}

// isNonTargetHost reports whether link points at a marketplace, social
// network or generic retailer
func isNonTargetHost(link string) bool {
	return containsAny(strings.ToLower(link), nonTargetHosts)
}

// hasFashionKeyword reports whether text mentions apparel context
func hasFashionKeyword(text string) bool {
	return containsAny(strings.ToLower(text), fashionKeywords)
}

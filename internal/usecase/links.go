package usecase

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// productLinkTokens suggest product or catalog pages
var productLinkTokens = []string{
	"/product", "/products", "/shop", "/collection", "/collections",
	"/catalog", "/buy", "/p/", "/dp/", "/store",
}

// nonProductLinkTokens filter out homepage anchors, login, cart and the like
var nonProductLinkTokens = []string{
	"#", "login", "signin", "sign-in", "account",
	"cart", "wishlist", "help", "faq", "contact", "about",
}

// FindProductLink scans a homepage or landing page for one "product-like"
// or "catalog-like" link and returns it resolved to an absolute URL, or ""
// when no anchor qualifies.
func FindProductLink(html, baseURL string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return ""
	}

	base, err := url.Parse(baseURL)
	if err != nil {
		base = nil
	}

	var found string
	doc.Find("a[href]").EachWithBreak(func(_ int, a *goquery.Selection) bool {
		href := strings.TrimSpace(a.AttrOr("href", ""))
		if href == "" {
			return true
		}

		// Skip purely anchor or obviously non-product links
		if containsAny(strings.ToLower(href), nonProductLinkTokens) {
			return true
		}

		full := href
		if base != nil {
			if ref, err := url.Parse(href); err == nil {
				full = base.ResolveReference(ref).String()
			}
		}

		if containsAny(strings.ToLower(full), productLinkTokens) {
			found = full
			return false
		}
		return true
	})

	return found
}

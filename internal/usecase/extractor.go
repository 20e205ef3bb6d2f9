package usecase

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// imageExtensions are the only file types accepted as product images.
// Matched as substrings so query strings after the extension are tolerated.
var imageExtensions = []string{".jpg", ".jpeg", ".png", ".webp", ".avif"}

// junkTokens mark obvious UI chrome rather than product imagery
var junkTokens = []string{
	"sprite", "icon", "logo", "placeholder",
	"chevron", "arrow", "banner", "nav", "favicon",
}

// myntraUIAssetPath is Myntra's shared UI asset bucket; anything under it
// is site chrome, never a product shot.
const myntraUIAssetPath = "constant.myntassets.com/web/assets/img"

// lazyImgAttrs are the attributes lazy-loading frameworks stash image URLs in
var lazyImgAttrs = []string{"src", "data-src", "data-original", "data-img", "data-lazy"}

var (
	inlineStyleURLRegex = regexp.MustCompile(`url\(["']?(.*?)["']?\)`)

	// Myntra embeds product image URLs inside script blocks, so when a page
	// looks like Myntra the raw HTML is scanned for its CDN host as well.
	myntraCDNRegex = regexp.MustCompile(`https?://assets\.myntassets\.com/[^\s"'\\<>]+\.(?:jpg|jpeg|png|webp|avif)`)
)

// imageCollector accumulates normalized, filtered, deduplicated image URLs
// in insertion order.
type imageCollector struct {
	base      *url.URL
	baseLower string
	seen      map[string]bool
	urls      []string
}

func newImageCollector(baseURL string) *imageCollector {
	base, err := url.Parse(baseURL)
	if err != nil {
		base = nil
	}
	return &imageCollector{
		base:      base,
		baseLower: strings.ToLower(baseURL),
		seen:      make(map[string]bool),
		urls:      []string{},
	}
}

// add normalizes a raw candidate and keeps it if it passes the acceptance
// filter. Rejections are silent.
func (c *imageCollector) add(raw string) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return
	}

	// Protocol-relative -> assume https
	if strings.HasPrefix(raw, "//") {
		raw = "https:" + raw
	}

	// Make absolute if relative
	abs := raw
	if c.base != nil {
		if ref, err := url.Parse(raw); err == nil {
			abs = c.base.ResolveReference(ref).String()
		}
	}

	lower := strings.ToLower(abs)

	// Keep only likely image URLs (allow query params)
	if !containsAny(lower, imageExtensions) {
		return
	}

	// Filter obvious UI junk
	if containsAny(lower, junkTokens) {
		return
	}

	// Myntra-specific: drop constant UI assets
	if strings.Contains(c.baseLower, "myntra") || strings.Contains(lower, "myntra") {
		if strings.Contains(lower, myntraUIAssetPath) {
			return
		}
	}

	if c.seen[abs] {
		return
	}
	c.seen[abs] = true
	c.urls = append(c.urls, abs)
}

// ExtractImages parses an HTML document into an ordered, deduplicated list
// of absolute product-image URLs.
//
// Sources scanned, in priority order (all unioned, duplicates dropped):
//  1. og:image / twitter:image / twitter:image:src meta tags
//  2. <img> src and common lazy-load attributes
//  3. <source srcset> entries
//  4. inline style background url(...) references
//  5. for Myntra pages, a raw-HTML scan for the Myntra CDN host
//
// Pure function: the same (html, baseURL) always yields the same list.
func ExtractImages(html, baseURL string) []string {
	collector := newImageCollector(baseURL)

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err == nil {
		collectFromDocument(doc, collector)
	}

	// Raw-text fallback for image URLs embedded in script blocks
	if strings.Contains(collector.baseLower, "myntra") || strings.Contains(strings.ToLower(html), "myntra") {
		for _, match := range myntraCDNRegex.FindAllString(html, -1) {
			collector.add(match)
		}
	}

	return collector.urls
}

func collectFromDocument(doc *goquery.Document, collector *imageCollector) {
	// 1) META TAGS: og:image, twitter:image, etc.
	doc.Find("meta").Each(func(_ int, meta *goquery.Selection) {
		prop, ok := meta.Attr("property")
		if !ok || prop == "" {
			prop, _ = meta.Attr("name")
		}
		switch strings.ToLower(prop) {
		case "og:image", "twitter:image", "twitter:image:src":
			if content, ok := meta.Attr("content"); ok {
				collector.add(content)
			}
		}
	})

	// 2) <img> tags with various lazy-load attributes
	doc.Find("img").Each(func(_ int, img *goquery.Selection) {
		for _, attr := range lazyImgAttrs {
			if val, ok := img.Attr(attr); ok {
				collector.add(val)
			}
		}
	})

	// 3) <source srcset="..."> inside <picture>
	doc.Find("source").Each(func(_ int, source *goquery.Selection) {
		srcset, ok := source.Attr("srcset")
		if !ok {
			return
		}
		for _, item := range strings.Split(srcset, ",") {
			// Drop the width/density descriptor after the URL
			candidate := strings.SplitN(strings.TrimSpace(item), " ", 2)[0]
			collector.add(candidate)
		}
	})

	// 4) Inline CSS background-image / background
	doc.Find("[style]").Each(func(_ int, tag *goquery.Selection) {
		style, _ := tag.Attr("style")
		if match := inlineStyleURLRegex.FindStringSubmatch(style); match != nil {
			collector.add(match[1])
		}
	})
}

// containsAny reports whether s contains at least one of the tokens
func containsAny(s string, tokens []string) bool {
	for _, token := range tokens {
		if strings.Contains(s, token) {
			return true
		}
	}
	return false
}

package domain

// EnrichRequest is the inbound payload for a brand enrichment lookup.
// All three fields are optional; when several are set, sku_url takes
// priority over website_url, which takes priority over company_name.
type EnrichRequest struct {
	CompanyName string `json:"company_name,omitempty"`
	WebsiteURL  string `json:"website_url,omitempty"`
	SKUURL      string `json:"sku_url,omitempty"`
}

// EnrichResponse is the complete result of one enrichment attempt.
// It is always structurally complete; failures are reported through
// placeholder values and the Notes field, never as an error status.
type EnrichResponse struct {
	CompanyName        string `json:"company_name,omitempty"`
	ResolvedWebsiteURL string `json:"resolved_website_url,omitempty"`

	// Primary "chosen" triple (kept for backwards compatibility)
	ChosenProductURL   string   `json:"chosen_product_url,omitempty"`
	ChosenImageURL     string   `json:"chosen_image_url,omitempty"`
	CandidateImageURLs []string `json:"candidate_image_urls"`

	// Website-derived image(s)
	WebsiteProductURL         string   `json:"website_product_url,omitempty"`
	WebsiteImageURL           string   `json:"website_image_url,omitempty"`
	WebsiteCandidateImageURLs []string `json:"website_candidate_image_urls"`

	// Marketplace-derived image(s)
	MarketplaceProductURL         string   `json:"marketplace_product_url,omitempty"`
	MarketplaceImageURL           string   `json:"marketplace_image_url,omitempty"`
	MarketplaceCandidateImageURLs []string `json:"marketplace_candidate_image_urls"`

	Notes string `json:"notes,omitempty"`
}

// SearchItem is one ranked result from the search collaborator.
// Consumed read-only; never mutated by this service.
type SearchItem struct {
	Link    string `json:"link"`
	Title   string `json:"title"`
	Snippet string `json:"snippet"`
}

// Placeholder values used uniformly across all degraded paths.
const (
	PlaceholderImageURL   = "https://picsum.photos/800/1200"
	PlaceholderProductURL = "https://example.com/dummy-product"
)

package usecase

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/ayna/brand-harvester/internal/domain"
)

// EnrichmentService is the top-level decision procedure for a brand
// enrichment request. It picks which sources to consult from the request's
// populated fields, extracts images from each fetched page, and arbitrates
// a primary image/URL pair, preferring marketplace over website over
// placeholder. It never returns an error: every failure degrades to
// placeholder values and a line in the notes trail.
type EnrichmentService struct {
	fetcher     domain.PageFetcher
	marketplace *MarketplaceResolver
	website     *WebsiteResolver
}

// NewEnrichmentService creates an enrichment service with its collaborators
func NewEnrichmentService(fetcher domain.PageFetcher, search domain.SearchClient) *EnrichmentService {
	return &EnrichmentService{
		fetcher:     fetcher,
		marketplace: NewMarketplaceResolver(search),
		website:     NewWebsiteResolver(search),
	}
}

// Enrich resolves product/hero images for the request. Branch priority:
// sku_url > website_url > company_name-only > nothing.
func (s *EnrichmentService) Enrich(ctx context.Context, req *domain.EnrichRequest) *domain.EnrichResponse {
	switch {
	case req.SKUURL != "":
		return s.enrichFromSKU(ctx, req)
	case req.WebsiteURL != "":
		return s.enrichFromWebsite(ctx, req)
	case req.CompanyName != "":
		return s.enrichFromCompanyName(ctx, req)
	default:
		return s.enrichEmpty(req)
	}
}

// enrichFromSKU scrapes the SKU page directly. website_url and
// company_name are echoed but never consulted for image sourcing here.
func (s *EnrichmentService) enrichFromSKU(ctx context.Context, req *domain.EnrichRequest) *domain.EnrichResponse {
	body, err := s.fetcher.FetchPage(ctx, req.SKUURL)
	if err != nil {
		return skuFallbackResponse(req, fmt.Sprintf("Error fetching/parsing sku_url: %v", err))
	}

	images := ExtractImages(body, req.SKUURL)
	if len(images) == 0 {
		return skuFallbackResponse(req, "No images found on sku_url; returned dummy image.")
	}

	chosen := images[0]
	return &domain.EnrichResponse{
		CompanyName:                   req.CompanyName,
		ResolvedWebsiteURL:            req.WebsiteURL,
		ChosenProductURL:              req.SKUURL,
		ChosenImageURL:                chosen,
		CandidateImageURLs:            images,
		WebsiteProductURL:             req.SKUURL,
		WebsiteImageURL:               chosen,
		WebsiteCandidateImageURLs:     images,
		MarketplaceCandidateImageURLs: []string{},
		Notes:                         fmt.Sprintf("Found %d image(s) from sku_url. Using first candidate as hero.", len(images)),
	}
}

// skuFallbackResponse is the degraded SKU-branch result: placeholder image,
// single-element candidate list, and a note saying what went wrong.
func skuFallbackResponse(req *domain.EnrichRequest, note string) *domain.EnrichResponse {
	return &domain.EnrichResponse{
		CompanyName:                   req.CompanyName,
		ResolvedWebsiteURL:            req.WebsiteURL,
		ChosenProductURL:              req.SKUURL,
		ChosenImageURL:                domain.PlaceholderImageURL,
		CandidateImageURLs:            []string{domain.PlaceholderImageURL},
		WebsiteProductURL:             req.SKUURL,
		WebsiteImageURL:               domain.PlaceholderImageURL,
		WebsiteCandidateImageURLs:     []string{domain.PlaceholderImageURL},
		MarketplaceCandidateImageURLs: []string{},
		Notes:                         note,
	}
}

// enrichFromWebsite scrapes website_url, plus a marketplace product page
// when company_name allows resolving one.
func (s *EnrichmentService) enrichFromWebsite(ctx context.Context, req *domain.EnrichRequest) *domain.EnrichResponse {
	websiteHero, websiteImages := s.scrapePage(ctx, req.WebsiteURL)

	var marketURL, marketHero string
	marketImages := []string{}
	if req.CompanyName != "" {
		marketURL, marketHero, marketImages = s.scrapeMarketplace(ctx, req.CompanyName)
	}

	// Decide a primary
	var primaryProductURL, primaryImageURL string
	var primaryCandidates []string
	switch {
	case marketHero != "":
		primaryProductURL = marketURL
		primaryImageURL = marketHero
		primaryCandidates = marketImages
	case websiteHero != "":
		primaryProductURL = req.WebsiteURL
		primaryImageURL = websiteHero
		primaryCandidates = websiteImages
	default:
		primaryProductURL = req.WebsiteURL
		primaryImageURL = domain.PlaceholderImageURL
		primaryCandidates = []string{domain.PlaceholderImageURL}
	}

	var notes []string
	if websiteHero != "" {
		notes = append(notes, fmt.Sprintf("Website image OK (%d candidates).", len(websiteImages)))
	} else {
		notes = append(notes, "Website image missing or failed.")
	}
	if marketHero != "" {
		notes = append(notes, fmt.Sprintf("Marketplace image OK from %s (%d candidates).", marketURL, len(marketImages)))
	} else if req.CompanyName != "" {
		notes = append(notes, "Marketplace image missing or failed.")
	} else {
		notes = append(notes, "Marketplace search skipped (no company_name).")
	}

	return &domain.EnrichResponse{
		CompanyName:                   req.CompanyName,
		ResolvedWebsiteURL:            req.WebsiteURL,
		ChosenProductURL:              primaryProductURL,
		ChosenImageURL:                primaryImageURL,
		CandidateImageURLs:            primaryCandidates,
		WebsiteProductURL:             req.WebsiteURL,
		WebsiteImageURL:               websiteHero,
		WebsiteCandidateImageURLs:     websiteImages,
		MarketplaceProductURL:         marketURL,
		MarketplaceImageURL:           marketHero,
		MarketplaceCandidateImageURLs: marketImages,
		Notes:                         strings.Join(notes, " | "),
	}
}

// enrichFromCompanyName resolves a brand website and a marketplace product
// independently, then arbitrates between them.
func (s *EnrichmentService) enrichFromCompanyName(ctx context.Context, req *domain.EnrichRequest) *domain.EnrichResponse {
	resolvedWebsite := s.website.FindWebsiteURL(ctx, req.CompanyName)

	var websiteHero string
	websiteImages := []string{}
	if resolvedWebsite != "" {
		websiteHero, websiteImages = s.scrapePage(ctx, resolvedWebsite)
	}

	marketURL, marketHero, marketImages := s.scrapeMarketplace(ctx, req.CompanyName)

	var primaryProductURL, primaryImageURL string
	var primaryCandidates []string
	switch {
	case marketHero != "":
		primaryProductURL = marketURL
		primaryImageURL = marketHero
		primaryCandidates = marketImages
	case websiteHero != "":
		primaryProductURL = resolvedWebsite
		primaryImageURL = websiteHero
		primaryCandidates = websiteImages
	default:
		primaryProductURL = resolvedWebsite
		if primaryProductURL == "" {
			primaryProductURL = domain.PlaceholderProductURL
		}
		primaryImageURL = domain.PlaceholderImageURL
		primaryCandidates = []string{domain.PlaceholderImageURL}
	}

	var notes []string
	if resolvedWebsite != "" {
		if websiteHero != "" {
			notes = append(notes, fmt.Sprintf("Brand website resolved to %s (%d image candidates).", resolvedWebsite, len(websiteImages)))
		} else {
			notes = append(notes, fmt.Sprintf("Brand website resolved to %s but no images found.", resolvedWebsite))
		}
	} else {
		notes = append(notes, "Brand website could not be resolved via CSE.")
	}
	if marketHero != "" {
		notes = append(notes, fmt.Sprintf("Marketplace image OK from %s (%d candidates).", marketURL, len(marketImages)))
	} else {
		notes = append(notes, "Marketplace image missing or failed.")
	}

	return &domain.EnrichResponse{
		CompanyName:                   req.CompanyName,
		ResolvedWebsiteURL:            resolvedWebsite,
		ChosenProductURL:              primaryProductURL,
		ChosenImageURL:                primaryImageURL,
		CandidateImageURLs:            primaryCandidates,
		WebsiteProductURL:             resolvedWebsite,
		WebsiteImageURL:               websiteHero,
		WebsiteCandidateImageURLs:     websiteImages,
		MarketplaceProductURL:         marketURL,
		MarketplaceImageURL:           marketHero,
		MarketplaceCandidateImageURLs: marketImages,
		Notes:                         strings.Join(notes, " | "),
	}
}

// enrichEmpty is the degenerate no-input case
func (s *EnrichmentService) enrichEmpty(req *domain.EnrichRequest) *domain.EnrichResponse {
	productURL := req.WebsiteURL
	if productURL == "" {
		productURL = domain.PlaceholderProductURL
	}

	return &domain.EnrichResponse{
		CompanyName:                   req.CompanyName,
		ResolvedWebsiteURL:            req.WebsiteURL,
		ChosenProductURL:              productURL,
		ChosenImageURL:                domain.PlaceholderImageURL,
		CandidateImageURLs:            []string{domain.PlaceholderImageURL},
		WebsiteProductURL:             productURL,
		WebsiteImageURL:               domain.PlaceholderImageURL,
		WebsiteCandidateImageURLs:     []string{domain.PlaceholderImageURL},
		MarketplaceCandidateImageURLs: []string{},
		Notes:                         "sku_url and website_url not provided; using dummy response for now.",
	}
}

// scrapePage fetches a page and extracts its images. Any fetch failure
// degrades to "no images from this source".
func (s *EnrichmentService) scrapePage(ctx context.Context, pageURL string) (hero string, images []string) {
	images = []string{}

	body, err := s.fetcher.FetchPage(ctx, pageURL)
	if err != nil {
		log.Printf("[Enrich] error fetching %s: %v", pageURL, err)
		return "", images
	}

	images = ExtractImages(body, pageURL)
	if len(images) > 0 {
		hero = images[0]
	}
	return hero, images
}

// scrapeMarketplace resolves a marketplace product page for the company
// and extracts its images.
func (s *EnrichmentService) scrapeMarketplace(ctx context.Context, companyName string) (productURL, hero string, images []string) {
	images = []string{}

	productURL = s.marketplace.FindProductURL(ctx, companyName)
	if productURL == "" {
		return "", "", images
	}

	hero, images = s.scrapePage(ctx, productURL)
	return productURL, hero, images
}

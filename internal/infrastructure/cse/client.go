package cse

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/ayna/brand-harvester/internal/domain"
	"golang.org/x/time/rate"
)

// maxBodyBytes caps how much of a search response we read
const maxBodyBytes = 1 << 20 // 1 MiB

// Client handles communication with the Google Custom Search JSON API
type Client struct {
	httpClient  *http.Client
	apiKey      string
	cx          string
	baseURL     string
	rateLimiter *rate.Limiter
	debug       bool
}

// searchResponse mirrors the slice of the CSE payload we consume
type searchResponse struct {
	Items []domain.SearchItem `json:"items"`
}

// NewClient creates a new Custom Search client. Empty apiKey or cx is
// allowed; queries then fail with domain.ErrSearchNotConfigured so callers
// can degrade to "not found".
func NewClient(apiKey, cx, baseURL string) *Client {
	// The free CSE tier allows 100 queries/day; keep outbound traffic
	// well under quota with a small steady rate and a burst for the
	// multi-domain marketplace scan.
	limiter := rate.NewLimiter(rate.Limit(1), 5)

	return &Client{
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		apiKey:      apiKey,
		cx:          cx,
		baseURL:     baseURL,
		rateLimiter: limiter,
	}
}

// SetDebug enables verbose request/response logging
func (c *Client) SetDebug(debug bool) {
	c.debug = debug
}

func (c *Client) debugLog(format string, args ...interface{}) {
	if c.debug {
		log.Printf("[CSE] "+format, args...)
	}
}

// Search issues one query against the Custom Search API and returns up to
// num ranked items. Exactly one attempt is made per call; any transport or
// status failure is returned as an error for the caller to degrade on.
func (c *Client) Search(ctx context.Context, query string, num int) ([]domain.SearchItem, error) {
	if c.apiKey == "" || c.cx == "" {
		return nil, domain.ErrSearchNotConfigured
	}

	c.debugLog("Search called with query: %q, num: %d", query, num)

	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter error: %w", err)
	}

	// Build request URL
	params := url.Values{}
	params.Add("key", c.apiKey)
	params.Add("cx", c.cx)
	params.Add("q", query)
	params.Add("num", strconv.Itoa(num))

	reqURL := fmt.Sprintf("%s?%s", c.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, "GET", reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", "BrandHarvester/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrSearchFailed, err)
	}
	defer resp.Body.Close()

	body, err := readLimitedBody(resp.Body, maxBodyBytes)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		c.debugLog("API error - Status: %d, Body: %s", resp.StatusCode, string(body))
		return nil, fmt.Errorf("%w: status %d", domain.ErrSearchFailed, resp.StatusCode)
	}

	var searchResp searchResponse
	if err := json.Unmarshal(body, &searchResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if len(searchResp.Items) == 0 {
		c.debugLog("No items for query: %q", query)
		return nil, domain.ErrNoResults
	}

	c.debugLog("Found %d items for query: %q", len(searchResp.Items), query)
	return searchResp.Items, nil
}

// readLimitedBody reads at most limit bytes from r
func readLimitedBody(r io.Reader, limit int64) ([]byte, error) {
	return io.ReadAll(io.LimitReader(r, limit))
}

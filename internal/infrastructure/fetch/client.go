package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/ayna/brand-harvester/internal/domain"
)

// maxBodyBytes caps how much of a page body we read; product pages past
// this size carry nothing extractable in the tail.
const maxBodyBytes = 5 << 20 // 5 MiB

// Client fetches page bodies for image extraction. It makes exactly one
// attempt per URL with a fixed timeout and a browser-like User-Agent,
// since several marketplaces serve empty shells to generic Go clients.
type Client struct {
	httpClient *http.Client
	userAgent  string
}

// NewClient creates a page-fetch client with the given timeout and User-Agent
func NewClient(timeout time.Duration, userAgent string) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		userAgent: userAgent,
	}
}

// FetchPage retrieves pageURL and returns its body as text. Transport
// failures and non-2xx statuses are both reported as domain.ErrPageFetchFailed.
func (c *Client) FetchPage(ctx context.Context, pageURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", pageURL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrPageFetchFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("%w: status %d for %s", domain.ErrPageFetchFailed, resp.StatusCode, pageURL)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return "", fmt.Errorf("%w: reading body: %v", domain.ErrPageFetchFailed, err)
	}

	return string(body), nil
}

package ticket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/codeready-toolchain/recap/pkg/config"
)

// Client provides HTTP access to the external ticketing system's read API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
	cache      *cache
}

// NewClient creates a lookup client from configuration. A nil config or an
// empty base URL disables cross-referencing: every lookup then answers
// ErrTicketNotFound without a network call.
func NewClient(cfg *config.TicketingConfig) *Client {
	if cfg == nil {
		cfg = &config.TicketingConfig{}
	}

	timeout := cfg.Timeout.Std()
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	cacheTTL := cfg.CacheTTL.Std()
	if cacheTTL <= 0 {
		cacheTTL = 5 * time.Minute
	}

	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/"),
		token:      cfg.Token(),
		cache:      newCache(cacheTTL),
	}
}

// Lookup fetches the ticket for an incident number, serving repeated
// lookups from cache. Not-found answers are cached too.
func (c *Client) Lookup(ctx context.Context, incidentNumber string) (*Record, error) {
	incidentNumber = strings.TrimSpace(incidentNumber)
	if incidentNumber == "" {
		return nil, ErrTicketNotFound
	}
	if c.baseURL == "" {
		return nil, ErrTicketNotFound
	}

	if record, hit := c.cache.get(incidentNumber); hit {
		if record == nil {
			return nil, fmt.Errorf("%w: %s", ErrTicketNotFound, incidentNumber)
		}
		return record, nil
	}

	record, err := c.fetch(ctx, incidentNumber)
	if err != nil {
		if errors.Is(err, ErrTicketNotFound) {
			c.cache.set(incidentNumber, nil)
		}
		return nil, err
	}

	c.cache.set(incidentNumber, record)
	return record, nil
}

func (c *Client) fetch(ctx context.Context, incidentNumber string) (*Record, error) {
	lookupURL := fmt.Sprintf("%s/api/v1/tickets/%s", c.baseURL, url.PathEscape(incidentNumber))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, lookupURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("lookup ticket %s: %w", incidentNumber, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, fmt.Errorf("%w: %s", ErrTicketNotFound, incidentNumber)
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("ticketing system returned HTTP %d for %s", resp.StatusCode, incidentNumber)
	}

	var record Record
	if err := json.NewDecoder(resp.Body).Decode(&record); err != nil {
		return nil, fmt.Errorf("decode ticket response: %w", err)
	}
	if record.Key == "" {
		record.Key = incidentNumber
	}
	return &record, nil
}

// OverrideHTTPClientForTest replaces the internal HTTP client.
// For testing only.
func (c *Client) OverrideHTTPClientForTest(httpClient *http.Client) {
	c.httpClient = httpClient
}

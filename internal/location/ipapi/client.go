// Package ipapi implements IP geolocation against ipapi.co.
package ipapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/skycast/skycast/internal/location"
	"github.com/skycast/skycast/internal/provider/resilience"
)

const (
	// ProviderName identifies this IP geolocation provider.
	ProviderName = "ipapi"

	// DefaultBaseURL is the ipapi.co base URL.
	DefaultBaseURL = "https://ipapi.co"

	// DefaultTimeout is the per-call timeout. IP geolocation is a
	// best-effort convenience, so it gets a shorter budget than the
	// weather upstreams.
	DefaultTimeout = 5 * time.Second
)

// ClientConfig holds configuration for the IP geolocation client.
type ClientConfig struct {
	// BaseURL is the API base URL (optional).
	BaseURL string

	// HTTPClient is the HTTP client to use (optional).
	// If nil, uses a resilient client with a 5 second timeout.
	HTTPClient *resilience.Client

	// Logger for client operations.
	Logger zerolog.Logger
}

// Client is an ipapi.co client. The service infers the caller's address;
// no location parameters are sent.
type Client struct {
	baseURL    string
	httpClient *resilience.Client
	logger     zerolog.Logger
}

// NewClient creates a new IP geolocation client.
func NewClient(cfg ClientConfig) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		clientCfg := resilience.DefaultClientConfig(ProviderName)
		clientCfg.Timeout = DefaultTimeout
		httpClient = resilience.NewClient(clientCfg)
	}

	return &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
		logger:     cfg.Logger,
	}
}

// Name returns the provider name.
func (c *Client) Name() string {
	return ProviderName
}

// Locate fetches the location the provider infers for this host.
func (c *Client) Locate(ctx context.Context) (*location.Resolved, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/json/", http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var body ipLocation
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}

	if body.City == "" {
		return nil, fmt.Errorf("incomplete response: missing city")
	}

	return &location.Resolved{
		Lat:     body.Latitude,
		Lon:     body.Longitude,
		Label:   body.City + ", " + body.CountryCode,
		State:   body.RegionCode,
		Country: body.CountryCode,
	}, nil
}

// ipLocation is the ipapi.co /json/ response shape.
type ipLocation struct {
	City        string  `json:"city"`
	RegionCode  string  `json:"region_code"`
	CountryCode string  `json:"country_code"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
}

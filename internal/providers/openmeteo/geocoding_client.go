package openmeteo

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
)

// API Docs: https://open-meteo.com/en/docs/geocoding-api
// Sample request: https://geocoding-api.open-meteo.com/v1/search?name=Paris&count=1&language=en&format=json
const (
	baseGeocodingURL = "https://geocoding-api.open-meteo.com/v1/search"
	defaultLanguage  = "en"
)

type GeocodingClient struct {
	httpClient *http.Client
	baseURL    string
	language   string
	logger     *slog.Logger
}

// GeocodingOption configures a GeocodingClient
type GeocodingOption func(*GeocodingClient)

// WithGeocodingURL points the client at a different search endpoint
func WithGeocodingURL(baseURL string) GeocodingOption {
	return func(c *GeocodingClient) {
		if baseURL != "" {
			c.baseURL = baseURL
		}
	}
}

// WithLanguage sets the language results are biased to
func WithLanguage(language string) GeocodingOption {
	return func(c *GeocodingClient) {
		if language != "" {
			c.language = language
		}
	}
}

// WithGeocodingHTTPClient replaces the underlying http.Client
func WithGeocodingHTTPClient(httpClient *http.Client) GeocodingOption {
	return func(c *GeocodingClient) {
		c.httpClient = httpClient
	}
}

func NewGeocodingClient(logger *slog.Logger, opts ...GeocodingOption) *GeocodingClient {
	c := &GeocodingClient{
		httpClient: &http.Client{},
		baseURL:    baseGeocodingURL,
		language:   defaultLanguage,
		logger:     logger.With("component", "openmeteo-geocoding-client"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Search looks up a place by name, asking for at most one match
func (c *GeocodingClient) Search(ctx context.Context, name string) (*GeocodingAPIResponse, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}

	q := u.Query()
	q.Set("name", name)
	q.Set("count", "1")
	q.Set("language", c.language)
	q.Set("format", "json")
	u.RawQuery = q.Encode()

	var apiResp GeocodingAPIResponse
	if err := getJSON(ctx, c.httpClient, c.logger, u.String(), &apiResp); err != nil {
		return nil, err
	}

	c.logger.Debug("geocoding search complete", "name", name, "result_count", len(apiResp.Results))

	return &apiResp, nil
}

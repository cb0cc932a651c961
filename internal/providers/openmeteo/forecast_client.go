package openmeteo

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// API Docs: https://open-meteo.com/en/docs
// Sample request: https://api.open-meteo.com/v1/forecast?latitude=48.85341&longitude=2.3488&current=temperature_2m,relative_humidity_2m,apparent_temperature,wind_speed_10m&temperature_unit=celsius&windspeed_unit=kmh&timezone=auto
const (
	baseForecastURL = "https://api.open-meteo.com/v1/forecast"

	// TimezoneAuto lets the API pick the timezone from the coordinates
	TimezoneAuto = "auto"
)

var currentVars = []string{
	"temperature_2m",
	"relative_humidity_2m",
	"apparent_temperature",
	"wind_speed_10m",
}

type ForecastClient struct {
	httpClient *http.Client
	baseURL    string
	logger     *slog.Logger
}

// ForecastOption configures a ForecastClient
type ForecastOption func(*ForecastClient)

// WithForecastURL points the client at a different forecast endpoint
func WithForecastURL(baseURL string) ForecastOption {
	return func(c *ForecastClient) {
		if baseURL != "" {
			c.baseURL = baseURL
		}
	}
}

// WithForecastHTTPClient replaces the underlying http.Client
func WithForecastHTTPClient(httpClient *http.Client) ForecastOption {
	return func(c *ForecastClient) {
		c.httpClient = httpClient
	}
}

func NewForecastClient(logger *slog.Logger, opts ...ForecastOption) *ForecastClient {
	c := &ForecastClient{
		httpClient: &http.Client{},
		baseURL:    baseForecastURL,
		logger:     logger.With("component", "openmeteo-forecast-client"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// GetCurrent fetches current conditions in Celsius and km/h for the given coordinates.
// An empty timezone is sent as "auto".
func (c *ForecastClient) GetCurrent(ctx context.Context, latitude, longitude float64, timezone string) (*CurrentAPIResponse, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}

	if timezone == "" {
		timezone = TimezoneAuto
	}

	q := u.Query()
	q.Set("latitude", strconv.FormatFloat(latitude, 'f', -1, 64))
	q.Set("longitude", strconv.FormatFloat(longitude, 'f', -1, 64))
	q.Set("current", strings.Join(currentVars, ","))
	q.Set("temperature_unit", "celsius")
	q.Set("windspeed_unit", "kmh")
	q.Set("timezone", timezone)
	u.RawQuery = q.Encode()

	var apiResp CurrentAPIResponse
	if err := getJSON(ctx, c.httpClient, c.logger, u.String(), &apiResp); err != nil {
		return nil, err
	}

	if apiResp.Current == nil {
		c.logger.Error("forecast response has no current block",
			"latitude", latitude,
			"longitude", longitude,
		)
		return nil, fmt.Errorf("forecast response has no current block")
	}

	return &apiResp, nil
}

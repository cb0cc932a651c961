package weather

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"city-weather/internal/config"
	"city-weather/internal/providers/openmeteo"
	"city-weather/internal/timezone"
	"city-weather/internal/types"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "city-weather/internal/weather"

// GeocodingProvider resolves a place name to at most one match
type GeocodingProvider interface {
	Search(ctx context.Context, name string) (*openmeteo.GeocodingAPIResponse, error)
}

// CurrentProvider fetches current conditions for a coordinate.
// An empty timezone lets the upstream pick one.
type CurrentProvider interface {
	GetCurrent(ctx context.Context, latitude, longitude float64, timezone string) (*openmeteo.CurrentAPIResponse, error)
}

type Service interface {
	// Lookup geocodes the query and then fetches current conditions for the match.
	Lookup(ctx context.Context, query types.Query) (*Report, error)
}

type weatherService struct {
	geocodingProvider GeocodingProvider
	currentProvider   CurrentProvider
	timezoneService   timezone.Service
	tracer            trace.Tracer
	logger            *slog.Logger
}

// NewWeatherService creates a service backed by the Open-Meteo clients.
// With weather.timezone=local the IANA zone is resolved locally and sent explicitly.
func NewWeatherService(cfg *config.Config, logger *slog.Logger) (Service, error) {
	var tzSvc timezone.Service
	if cfg.Weather.Timezone == config.TimezoneLocal {
		svc, err := timezone.NewService()
		if err != nil {
			return nil, fmt.Errorf("failed to create timezone service: %w", err)
		}
		tzSvc = svc
	}

	geocoder := openmeteo.NewGeocodingClient(logger,
		openmeteo.WithGeocodingURL(cfg.OpenMeteo.GeocodingURL),
		openmeteo.WithLanguage(cfg.OpenMeteo.Language),
	)
	forecast := openmeteo.NewForecastClient(logger,
		openmeteo.WithForecastURL(cfg.OpenMeteo.ForecastURL),
	)

	return NewWeatherServiceWithProviders(geocoder, forecast, tzSvc, logger), nil
}

// NewWeatherServiceWithProviders creates a service with custom providers.
// timezoneService may be nil, in which case the upstream resolves the timezone.
func NewWeatherServiceWithProviders(
	geocodingProvider GeocodingProvider,
	currentProvider CurrentProvider,
	timezoneService timezone.Service,
	logger *slog.Logger,
) Service {
	return &weatherService{
		geocodingProvider: geocodingProvider,
		currentProvider:   currentProvider,
		timezoneService:   timezoneService,
		tracer:            otel.Tracer(tracerName),
		logger:            logger.With("component", "weather-service"),
	}
}

func (s *weatherService) Lookup(ctx context.Context, query types.Query) (*Report, error) {
	if query == "" {
		return nil, types.ErrEmptyQuery
	}

	location, err := s.geocode(ctx, query)
	if err != nil {
		return nil, err
	}

	conditions, err := s.current(ctx, location)
	if err != nil {
		return nil, err
	}

	return &Report{
		Location:   location,
		Conditions: conditions,
	}, nil
}

func (s *weatherService) geocode(ctx context.Context, query types.Query) (types.Location, error) {
	ctx, span := s.tracer.Start(ctx, StageGeocode, trace.WithAttributes(
		attribute.String("city.query", query.String()),
	))
	defer span.End()

	resp, err := s.geocodingProvider.Search(ctx, query.String())
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "geocoding request failed")
		return types.Location{}, fmt.Errorf("%w: %s: %w", ErrNetworkFailure, StageGeocode, err)
	}

	location, err := mapGeocodingResult(resp)
	if errors.Is(err, ErrCityNotFound) {
		s.logger.Debug("no geocoding match", "query", query.String())
		span.SetAttributes(attribute.Bool("city.found", false))
		return types.Location{}, err
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "invalid geocoding response")
		return types.Location{}, fmt.Errorf("%w: %s: %w", ErrNetworkFailure, StageGeocode, err)
	}

	span.SetAttributes(
		attribute.Bool("city.found", true),
		attribute.String("city.name", location.Name),
		attribute.Float64("city.latitude", location.Coordinates.Latitude),
		attribute.Float64("city.longitude", location.Coordinates.Longitude),
	)

	s.logger.Debug("geocoded city",
		"query", query.String(),
		"name", location.Name,
		"country", location.Country,
		"latitude", location.Coordinates.Latitude,
		"longitude", location.Coordinates.Longitude,
	)

	return location, nil
}

func (s *weatherService) current(ctx context.Context, location types.Location) (types.CurrentConditions, error) {
	ctx, span := s.tracer.Start(ctx, StageCurrent, trace.WithAttributes(
		attribute.Float64("city.latitude", location.Coordinates.Latitude),
		attribute.Float64("city.longitude", location.Coordinates.Longitude),
	))
	defer span.End()

	tz := s.resolveTimezone(location.Coordinates)

	resp, err := s.currentProvider.GetCurrent(ctx, location.Coordinates.Latitude, location.Coordinates.Longitude, tz)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "current weather request failed")
		return types.CurrentConditions{}, fmt.Errorf("%w: %s: %w", ErrNetworkFailure, StageCurrent, err)
	}

	return mapCurrent(resp), nil
}

// resolveTimezone returns "" (upstream decides) unless a local resolver is configured
func (s *weatherService) resolveTimezone(coords types.Coords) string {
	if s.timezoneService == nil {
		return ""
	}

	tz, err := s.timezoneService.Lookup(coords)
	if err != nil {
		s.logger.Warn("failed to determine timezone, falling back to auto",
			"latitude", coords.Latitude,
			"longitude", coords.Longitude,
			"error", err,
		)
		return ""
	}

	s.logger.Debug("determined timezone for location",
		"latitude", coords.Latitude,
		"longitude", coords.Longitude,
		"timezone", tz,
	)
	return tz
}

package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Timezone modes for the forecast request
const (
	TimezoneAuto  = "auto"
	TimezoneLocal = "local"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig
	Log       LogConfig
	OpenMeteo OpenMeteoConfig
	Weather   WeatherConfig
	Session   SessionConfig
	Tracing   TracingConfig
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port    int
	GinMode string // debug, release, test
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, text
}

// OpenMeteoConfig holds the upstream endpoints
type OpenMeteoConfig struct {
	GeocodingURL string `mapstructure:"geocoding_url"`
	ForecastURL  string `mapstructure:"forecast_url"`
	Language     string
}

// WeatherConfig holds resolver settings
type WeatherConfig struct {
	Timezone string // auto, local
}

// SessionConfig controls how long an idle visitor keeps its display state
type SessionConfig struct {
	TTL time.Duration
}

// TracingConfig holds OpenTelemetry exporter settings
type TracingConfig struct {
	Enabled     bool
	ZipkinURL   string `mapstructure:"zipkin_url"`
	ServiceName string `mapstructure:"service_name"`
}

// Load reads configuration from file and environment variables
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("$HOME/.city-weather")

	v.SetDefault("server.port", 8080)
	v.SetDefault("server.ginmode", "release")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("openmeteo.geocoding_url", "https://geocoding-api.open-meteo.com/v1/search")
	v.SetDefault("openmeteo.forecast_url", "https://api.open-meteo.com/v1/forecast")
	v.SetDefault("openmeteo.language", "en")
	v.SetDefault("weather.timezone", TimezoneAuto)
	v.SetDefault("session.ttl", 30*time.Minute)
	v.SetDefault("tracing.enabled", false)
	v.SetDefault("tracing.zipkin_url", "http://localhost:9411/api/v2/spans")
	v.SetDefault("tracing.service_name", "city-weather")

	// CITY_WEATHER_SERVER_PORT overrides server.port
	v.SetEnvPrefix("CITY_WEATHER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// It's okay if config file doesn't exist, we have defaults
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	switch strings.ToLower(c.Weather.Timezone) {
	case TimezoneAuto, TimezoneLocal:
	default:
		return fmt.Errorf("invalid weather.timezone %q: must be %q or %q", c.Weather.Timezone, TimezoneAuto, TimezoneLocal)
	}
	if c.Session.TTL <= 0 {
		return fmt.Errorf("invalid session.ttl %s: must be positive", c.Session.TTL)
	}
	return nil
}

// GetServerAddr returns the server address in the format ":port"
func (c *Config) GetServerAddr() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}

// NewLogger creates a new slog.Logger based on the configuration
func (c *Config) NewLogger() *slog.Logger {
	var level slog.Level
	switch strings.ToLower(c.Log.Level) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn", "warning":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	var handler slog.Handler
	switch strings.ToLower(c.Log.Format) {
	case "json":
		handler = slog.NewJSONHandler(os.Stdout, opts)
	default: // "text" or anything else
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	return slog.New(handler)
}

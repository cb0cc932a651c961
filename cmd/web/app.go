package main

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"time"

	"city-weather/internal/config"
	"city-weather/internal/session"
	"city-weather/internal/weather"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

const (
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 10 * time.Second
)

//go:embed templates/*.html
var templatesFS embed.FS

// App encapsulates application dependencies
type App struct {
	router         *gin.Engine
	logger         *slog.Logger
	cfg            *config.Config
	weatherService weather.Service
	sessions       *session.Store
	tracer         trace.Tracer
}

// NewApp creates a new application with injected dependencies
func NewApp(cfg *config.Config, logger *slog.Logger) (*App, error) {
	weatherSvc, err := weather.NewWeatherService(cfg, logger)
	if err != nil {
		return nil, err
	}
	return newAppWithService(cfg, logger, weatherSvc)
}

func newAppWithService(cfg *config.Config, logger *slog.Logger, weatherSvc weather.Service) (*App, error) {
	// Set Gin mode from configuration
	gin.SetMode(cfg.Server.GinMode)

	tmpl, err := template.ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestLogger(logger))
	router.SetHTMLTemplate(tmpl)

	app := &App{
		router:         router,
		logger:         logger,
		cfg:            cfg,
		weatherService: weatherSvc,
		sessions:       session.NewStore(weatherSvc, cfg.Session.TTL, logger),
		tracer:         otel.Tracer("city-weather/cmd/web"),
	}

	app.registerRoutes()

	logger.Info("application initialized")

	return app, nil
}

// Run serves HTTP until ctx is cancelled, then shuts down gracefully
func (app *App) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           app.router,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	app.logger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}
	return <-errCh
}

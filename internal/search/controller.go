package search

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"city-weather/internal/display"
	"city-weather/internal/types"
	"city-weather/internal/weather"

	"github.com/google/uuid"
)

// Controller owns one display state and runs searches against it.
// Each submission gets a token; a settling search only updates the state
// if no newer submission has been made since it started.
type Controller struct {
	service weather.Service
	logger  *slog.Logger

	mu     sync.Mutex
	latest uint64
	state  display.State
}

// Outcome is what a single Search produced
type Outcome struct {
	// State is the display state after the search settled. For a stale
	// search it is the state left by the newer one.
	State display.State
	// Applied is false when the result was discarded as stale
	Applied bool
	// Err is the resolver error, if any. Never shown to users.
	Err error
}

func NewController(service weather.Service, logger *slog.Logger) *Controller {
	return &Controller{
		service: service,
		logger:  logger.With("component", "search-controller"),
		state:   display.Idle(),
	}
}

// State returns the current display state
func (c *Controller) State() display.State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Search trims raw and resolves it. Empty input goes straight to the error
// state without any network call.
func (c *Controller) Search(ctx context.Context, raw string) Outcome {
	token := c.issue()
	searchID := uuid.NewString()
	logger := c.logger.With("search_id", searchID)

	query, err := types.NewQuery(raw)
	if err != nil {
		logger.Debug("rejected empty query")
		return c.settle(token, display.ValidationFailed{}, err)
	}

	c.apply(token, display.SearchStarted{})
	logger.Info("search started", "query", query.String())

	report, err := c.service.Lookup(ctx, query)
	switch {
	case err == nil:
		logger.Info("search succeeded",
			"query", query.String(),
			"location", report.Location.DisplayName(),
		)
		return c.settle(token, display.SearchSucceeded{
			Location:   report.Location,
			Conditions: report.Conditions,
		}, nil)
	case errors.Is(err, weather.ErrCityNotFound):
		logger.Info("city not found", "query", query.String())
		return c.settle(token, display.CityNotFound{}, err)
	case errors.Is(err, types.ErrEmptyQuery):
		return c.settle(token, display.ValidationFailed{}, err)
	default:
		logger.Error("search failed", "query", query.String(), "error", err)
		return c.settle(token, display.SearchFailed{Err: err}, err)
	}
}

func (c *Controller) issue() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.latest++
	return c.latest
}

// apply moves the state forward if token is still the latest
func (c *Controller) apply(token uint64, ev display.Event) (display.State, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if token != c.latest {
		return c.state, false
	}
	c.state = display.Next(c.state, ev)
	return c.state, true
}

func (c *Controller) settle(token uint64, ev display.Event, err error) Outcome {
	state, applied := c.apply(token, ev)
	if !applied {
		c.logger.Debug("discarded stale search result", "token", token)
	}
	return Outcome{State: state, Applied: applied, Err: err}
}

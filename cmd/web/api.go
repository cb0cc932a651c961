package main

import (
	"errors"
	"net/http"

	"city-weather/internal/display"
	"city-weather/internal/search"
	"city-weather/internal/types"
	"city-weather/internal/weather"

	"github.com/gin-gonic/gin"
)

// handleGetWeather godoc
// @Summary Current weather for a city
// @Description Geocodes the city name and returns the rendered current conditions of the first match
// @Tags weather
// @Produce json
// @Param city query string true "City name" example(Paris)
// @Success 200 {object} display.View
// @Failure 400 {object} display.View "Empty city name"
// @Failure 404 {object} display.View "City not found"
// @Failure 502 {object} display.View "Upstream failure"
// @Router /api/v1/weather [get]
func (app *App) handleGetWeather(c *gin.Context) {
	ctx, span := app.tracer.Start(c.Request.Context(), "api-search")
	defer span.End()

	controller := search.NewController(app.weatherService, app.logger)
	outcome := controller.Search(ctx, c.Query("city"))

	c.JSON(statusFor(outcome), outcome.State.View())
}

func statusFor(outcome search.Outcome) int {
	switch {
	case outcome.Err == nil && outcome.State.Phase == display.PhaseResult:
		return http.StatusOK
	case errors.Is(outcome.Err, types.ErrEmptyQuery):
		return http.StatusBadRequest
	case errors.Is(outcome.Err, weather.ErrCityNotFound):
		return http.StatusNotFound
	default:
		return http.StatusBadGateway
	}
}

package main

import (
	"net/http"

	"city-weather/internal/display"

	"github.com/gin-gonic/gin"
)

const sessionCookie = "city_weather_session"

// pageData feeds templates/index.html
type pageData struct {
	View    display.View
	City    string
	Refresh bool
}

// handleIndex renders the search page from the visitor's display state.
// A city query parameter, even an empty one, counts as a submitted search.
func (app *App) handleIndex(c *gin.Context) {
	cookieID, _ := c.Cookie(sessionCookie)
	sessionID, controller := app.sessions.Get(cookieID)
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(sessionCookie, sessionID, int(app.cfg.Session.TTL.Seconds()), "/", "", false, true)

	state := controller.State()

	raw, submitted := c.GetQuery("city")
	if submitted {
		ctx, span := app.tracer.Start(c.Request.Context(), "search")
		outcome := controller.Search(ctx, raw)
		span.End()
		state = outcome.State
	}

	c.HTML(http.StatusOK, "index.html", pageData{
		View:    state.View(),
		City:    raw,
		Refresh: state.Phase == display.PhaseLoading,
	})
}

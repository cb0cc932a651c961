package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// registerRoutes sets up all endpoints
func (app *App) registerRoutes() {
	// Search page
	app.router.GET("/", app.handleIndex)

	// Health check endpoint
	app.router.GET("/ping", app.handlePing)

	// Weather endpoints
	v1 := app.router.Group("/api/v1")
	v1.GET("/weather", app.handleGetWeather)

	// Swagger documentation
	app.router.GET("/swagger/*any", func(c *gin.Context) {
		path := c.Param("any")
		if path == "/" {
			c.Redirect(http.StatusMovedPermanently, "/swagger/index.html")
			return
		}
		ginSwagger.WrapHandler(swaggerFiles.Handler)(c)
	})
}

package routes

import (
	"github.com/labstack/echo/v4"

	"realestate-listings/handlers"
)

func RegisterRoutes(e *echo.Echo, pc *handlers.PropertyController) {
	api := e.Group("/api")
	api.GET("/properties", pc.ListProperties)
	api.GET("/properties/health", handlers.HealthCheck)
	api.GET("/properties/:id", pc.GetProperty)
}

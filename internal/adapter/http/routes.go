package http

import (
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// RegisterRoutes registers all trip info API routes.
// Middleware passed in applies to the /api/v1 group only.
func RegisterRoutes(e *echo.Echo, h *Handler, middleware ...echo.MiddlewareFunc) {
	// Health check and docs (no version prefix, no middleware)
	e.GET("/health", h.Health)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api/v1", middleware...)
	api.GET("/trip-info", h.TripInfo)
	api.GET("/locations", h.SearchLocations)
	api.GET("/airports/nearby", h.NearbyAirports)
	api.GET("/hotels/nearby", h.NearbyHotels)
	api.GET("/route", h.Route)
	api.GET("/places", h.Places)

	flights := api.Group("/flights")
	flights.GET("", h.SearchFlights)
	flights.GET("/polyline", h.FlightPath)
}

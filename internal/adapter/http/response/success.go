package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status       string `json:"status"`
	ProviderMode string `json:"providerMode,omitempty"`
}

// Health writes a health check response.
func Health(c echo.Context, providerMode string) error {
	return c.JSON(http.StatusOK, &HealthResponse{
		Status:       "ok",
		ProviderMode: providerMode,
	})
}

// List writes a 200 OK response with a JSON array, never null.
func List[T any](c echo.Context, items []T) error {
	if items == nil {
		items = []T{}
	}
	return c.JSON(http.StatusOK, items)
}

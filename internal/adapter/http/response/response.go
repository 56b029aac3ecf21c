// Package response provides standardized HTTP response builders for the trip info API.
// It centralizes response formatting to ensure consistency across all endpoints.
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ErrorDetail contains structured error information.
type ErrorDetail struct {
	// Code is a machine-readable error code
	Code string `json:"code"`

	// Message is a human-readable error message
	Message string `json:"message"`

	// Details contains field-specific error details (for validation errors)
	Details map[string]string `json:"details,omitempty"`
}

// Error codes used in API responses.
const (
	CodeInvalidRequest     = "invalid_request"
	CodeValidationError    = "validation_error"
	CodeGeocodeFailed      = "geocode_failed"
	CodeNotFound           = "not_found"
	CodeRateLimited        = "rate_limited"
	CodeUpstreamError      = "upstream_error"
	CodeServiceUnavailable = "service_unavailable"
	CodeTimeout            = "timeout"
	CodeInternalError      = "internal_error"
)

// Error messages used in API responses.
const (
	MsgInvalidRequestBody = "Failed to parse request parameters"
	MsgValidationFailed   = "Missing or invalid parameters"
	MsgRateLimited        = "Too many requests, slow down"
	MsgUpstreamError      = "Upstream service error"
	MsgNotConfigured      = "Provider credentials are not configured"
	MsgTimeout            = "Request timed out"
	MsgRequestCancelled   = "Request was cancelled"
	MsgInternalError      = "An unexpected error occurred"
)

// JSON writes a JSON response with the given status code and data.
func JSON(c echo.Context, statusCode int, data interface{}) error {
	return c.JSON(statusCode, data)
}

// OK writes a 200 OK response with the given data.
func OK(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, data)
}

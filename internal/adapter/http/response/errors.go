package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Error writes an ErrorDetail with the given status.
func Error(c echo.Context, status int, code, message string) error {
	return c.JSON(status, &ErrorDetail{Code: code, Message: message})
}

// BadRequest writes a 400 Bad Request response with the given error message.
func BadRequest(c echo.Context, message string) error {
	return Error(c, http.StatusBadRequest, CodeInvalidRequest, message)
}

// InvalidRequestBody writes a 400 Bad Request response for unparsable parameters.
func InvalidRequestBody(c echo.Context) error {
	return Error(c, http.StatusBadRequest, CodeInvalidRequest, MsgInvalidRequestBody)
}

// ValidationError writes a 400 Bad Request response with validation error details.
func ValidationError(c echo.Context, details map[string]string) error {
	return c.JSON(http.StatusBadRequest, &ErrorDetail{
		Code:    CodeValidationError,
		Message: MsgValidationFailed,
		Details: details,
	})
}

// ValidationErrorWithMessage writes a 400 Bad Request response with a custom message.
func ValidationErrorWithMessage(c echo.Context, message string) error {
	return Error(c, http.StatusBadRequest, CodeValidationError, message)
}

// GeocodeFailed writes a 400 Bad Request response for a place that could not be located.
func GeocodeFailed(c echo.Context, message string) error {
	return Error(c, http.StatusBadRequest, CodeGeocodeFailed, message)
}

// NotFound writes a 404 Not Found response.
func NotFound(c echo.Context, message string) error {
	return Error(c, http.StatusNotFound, CodeNotFound, message)
}

// TooManyRequests writes a 429 Too Many Requests response.
func TooManyRequests(c echo.Context) error {
	return Error(c, http.StatusTooManyRequests, CodeRateLimited, MsgRateLimited)
}

// BadGateway writes a 502 Bad Gateway response. The upstream message goes
// into details so clients can still see it.
func BadGateway(c echo.Context, upstream string) error {
	detail := &ErrorDetail{Code: CodeUpstreamError, Message: MsgUpstreamError}
	if upstream != "" {
		detail.Details = map[string]string{"upstream": upstream}
	}
	return c.JSON(http.StatusBadGateway, detail)
}

// ServiceUnavailable writes a 503 Service Unavailable response.
func ServiceUnavailable(c echo.Context) error {
	return Error(c, http.StatusServiceUnavailable, CodeServiceUnavailable, MsgNotConfigured)
}

// GatewayTimeout writes a 504 Gateway Timeout response.
func GatewayTimeout(c echo.Context) error {
	return Error(c, http.StatusGatewayTimeout, CodeTimeout, MsgTimeout)
}

// RequestCancelled writes a 504 Gateway Timeout response for cancelled requests.
func RequestCancelled(c echo.Context) error {
	return Error(c, http.StatusGatewayTimeout, CodeTimeout, MsgRequestCancelled)
}

// InternalServerError writes a 500 Internal Server Error response.
func InternalServerError(c echo.Context) error {
	return Error(c, http.StatusInternalServerError, CodeInternalError, MsgInternalError)
}

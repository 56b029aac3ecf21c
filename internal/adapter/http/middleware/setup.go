package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/tripcompass/trip-info-service/internal/infrastructure/logger"
)

// Setup registers all middleware on the Echo instance in the correct order.
// The order is important:
//  1. RequestID - First, to generate/propagate request ID for all subsequent logging
//  2. RequestLogger - Second, stores the request logger and logs all requests with request ID
//  3. Recover - Third, catches panics and returns 500 (wraps handlers)
//
// This function should be called before registering routes.
func Setup(e *echo.Echo, log *logger.Logger) {
	SetupWithConfig(e, log, DefaultRecoveryConfig())
}

// SetupWithConfig registers middleware with custom recovery configuration.
func SetupWithConfig(e *echo.Echo, log *logger.Logger, recoveryConfig RecoveryConfig) {
	e.Use(RequestID())
	e.Use(RequestLogger(log))
	e.Use(RecoverWithConfig(log, recoveryConfig))
}

package middleware

import (
	"fmt"
	"runtime/debug"

	"github.com/labstack/echo/v4"

	"github.com/tripcompass/trip-info-service/internal/adapter/http/response"
	"github.com/tripcompass/trip-info-service/internal/infrastructure/logger"
)

// RecoveryConfig tunes the recovery middleware.
type RecoveryConfig struct {
	// DisablePrintStack omits the stack trace from the panic log entry
	DisablePrintStack bool
}

// DefaultRecoveryConfig returns the default recovery configuration.
func DefaultRecoveryConfig() RecoveryConfig {
	return RecoveryConfig{
		DisablePrintStack: false,
	}
}

// Recover returns middleware that recovers from panics in the handler chain.
// It logs the panic with stack trace and returns a 500 Internal Server Error.
// The server continues to handle subsequent requests.
func Recover(log *logger.Logger) echo.MiddlewareFunc {
	return RecoverWithConfig(log, DefaultRecoveryConfig())
}

// RecoverWithConfig returns recovery middleware with custom configuration.
func RecoverWithConfig(log *logger.Logger, config RecoveryConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			defer func() {
				r := recover()
				if r == nil {
					return
				}

				var panicMsg string
				if err, ok := r.(error); ok {
					panicMsg = err.Error()
				} else {
					panicMsg = fmt.Sprintf("%v", r)
				}

				event := log.Error().
					Str("request_id", GetRequestID(c)).
					Str("panic", panicMsg)
				if !config.DisablePrintStack {
					event = event.Str("stack", string(debug.Stack()))
				}
				event.Msg("Panic recovered")

				// Generic body so internal details do not leak
				if !c.Response().Committed {
					_ = response.InternalServerError(c)
				}
			}()

			return next(c)
		}
	}
}

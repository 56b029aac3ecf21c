package middleware

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/tripcompass/trip-info-service/internal/infrastructure/logger"
)

// RequestLogger returns middleware that logs HTTP requests.
// It stores a logger tagged with the request ID in the request context, so
// use case and executor logs carry the same ID, and logs on completion with
// method, path, status, duration, and client info.
func RequestLogger(log *logger.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			reqID := GetRequestID(c)
			reqLog := log
			if reqID != "" {
				reqLog = log.WithRequestID(reqID)
			}
			req := c.Request()
			c.SetRequest(req.WithContext(logger.ToContext(req.Context(), reqLog)))

			// Process request through handler chain
			err := next(c)
			if err != nil {
				// Let Echo's error handler process the error
				c.Error(err)
			}

			duration := time.Since(start)
			res := c.Response()

			// Determine log level based on status code
			var event *zerolog.Event
			status := res.Status
			switch {
			case status >= 500:
				event = reqLog.Error()
			case status >= 400:
				event = reqLog.Warn()
			default:
				event = reqLog.Info()
			}

			event.
				Str("method", req.Method).
				Str("path", req.URL.Path).
				Str("query", req.URL.RawQuery).
				Int("status", status).
				Int64("duration_ms", duration.Milliseconds()).
				Int64("bytes_out", res.Size).
				Str("client_ip", c.RealIP()).
				Str("user_agent", req.UserAgent()).
				Msg("HTTP request")

			// Return nil since we already handled the error via c.Error()
			return nil
		}
	}
}

package middleware

import (
	"net/http"
	"time"

	"github.com/go-chi/httprate"
	"github.com/labstack/echo/v4"

	"github.com/tripcompass/trip-info-service/internal/adapter/http/response"
)

// RateLimit returns middleware allowing requestsPerMinute requests per
// client IP in a sliding one-minute window. Excess requests get a 429 in
// the API error format. A non-positive limit disables the middleware.
func RateLimit(requestsPerMinute int) echo.MiddlewareFunc {
	if requestsPerMinute <= 0 {
		return func(next echo.HandlerFunc) echo.HandlerFunc { return next }
	}

	limiter := httprate.Limit(
		requestsPerMinute,
		time.Minute,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set(echo.HeaderContentType, echo.MIMEApplicationJSONCharsetUTF8)
			w.WriteHeader(http.StatusTooManyRequests)
			_, _ = w.Write([]byte(`{"code":"` + response.CodeRateLimited + `","message":"` + response.MsgRateLimited + `"}`))
		}),
	)
	return echo.WrapMiddleware(limiter)
}

// Package integration provides helpers and integration tests for the trip info service.
// Integration tests run the full HTTP stack (middleware, handlers, use cases,
// executor and caches) against the seeded offline providers, with the
// result cache stored in an in-process Redis.
package integration

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/labstack/echo/v4"

	triphttp "github.com/tripcompass/trip-info-service/internal/adapter/http"
	"github.com/tripcompass/trip-info-service/internal/adapter/http/middleware"
	"github.com/tripcompass/trip-info-service/internal/adapter/provider/fake"
	"github.com/tripcompass/trip-info-service/internal/cache"
	"github.com/tripcompass/trip-info-service/internal/domain"
	"github.com/tripcompass/trip-info-service/internal/infrastructure/executor"
	"github.com/tripcompass/trip-info-service/internal/infrastructure/logger"
	"github.com/tripcompass/trip-info-service/internal/infrastructure/timeutil"
	"github.com/tripcompass/trip-info-service/internal/usecase"
	"github.com/tripcompass/trip-info-service/test/testutil"
)

// Now is the fixed "today" of every test server.
const Now = "2026-10-19T09:00:00Z"

const redisPrefix = "trip-info-test:"

// TestServer wraps an Echo instance and the fakes behind it.
type TestServer struct {
	Echo         *echo.Echo
	FlightsStays *fake.FlightsStays
	Maps         *fake.Maps
	Redis        *miniredis.Miniredis
	Tokens       *cache.TokenCache
}

// ServerOption customizes a TestServer before it is wired.
type ServerOption func(*serverConfig)

type serverConfig struct {
	flightsStays      *fake.FlightsStays
	maps              *fake.Maps
	requestsPerMinute int
}

// WithFlightsStays replaces the seeded flights and stays fake.
func WithFlightsStays(f *fake.FlightsStays) ServerOption {
	return func(c *serverConfig) { c.flightsStays = f }
}

// WithMaps replaces the seeded maps fake.
func WithMaps(m *fake.Maps) ServerOption {
	return func(c *serverConfig) { c.maps = m }
}

// WithRateLimit enables per-client rate limiting on the API group.
func WithRateLimit(requestsPerMinute int) ServerOption {
	return func(c *serverConfig) { c.requestsPerMinute = requestsPerMinute }
}

// NewTestServer wires the service the way cmd/server does.
func NewTestServer(t *testing.T, opts ...ServerOption) *TestServer {
	t.Helper()

	cfg := serverConfig{
		flightsStays: fake.NewSeededFlightsStays(),
		maps:         fake.NewSeededMaps(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	clock := timeutil.NewMockClockFromString(Now)
	log := logger.Nop()

	mr, client := testutil.NewRedis(t)
	store := cache.NewRedisStore(client, redisPrefix)

	exec := executor.New(executor.Config{
		CallTimeout: 2 * time.Second,
		MaxRetries:  1,
		BaseDelay:   time.Millisecond,
		MaxDelay:    5 * time.Millisecond,
		Workers:     6,
	}, log)
	authExec := executor.New(executor.Config{CallTimeout: 2 * time.Second, Workers: 1}, log)

	tokens := cache.NewTokenCache(cfg.flightsStays, authExec,
		cache.Credentials{ClientID: "test-id", ClientSecret: "test-secret"},
		cache.TokenConfig{Clock: clock}, log)

	hotelsCache := cache.NewResultCache[[]domain.Hotel](store, cache.ResultConfig{Namespace: usecase.HotelsCacheNamespace, Clock: clock}, log)
	offersCache := cache.NewResultCache[[]domain.HotelOfferSummary](store, cache.ResultConfig{Namespace: usecase.HotelOffersCacheNamespace, Clock: clock}, log)

	airports := usecase.NewAirportResolver(cfg.flightsStays, exec, nil, log)
	flights := usecase.NewFlightFinder(cfg.flightsStays, exec, airports, nil, log)
	hotels := usecase.NewHotelFinder(cfg.flightsStays, exec, hotelsCache, log)

	services := triphttp.Services{
		TripInfo:  usecase.NewTripInfoUseCase(airports, flights, hotels, cfg.maps, exec, nil, log),
		Flights:   usecase.NewFlightSearchUseCase(flights, cfg.flightsStays, exec, log),
		Hotels:    usecase.NewHotelSearchUseCase(hotels, cfg.flightsStays, exec, offersCache, nil, log),
		Locations: usecase.NewLocationUseCase(cfg.flightsStays, airports, exec, nil, log),
		Maps:      usecase.NewMapsUseCase(cfg.maps, airports, exec, log),
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	middleware.SetupWithConfig(e, log, middleware.RecoveryConfig{DisablePrintStack: true})
	triphttp.RegisterRoutes(e, triphttp.NewHandler(services, clock, "fake"), middleware.RateLimit(cfg.requestsPerMinute))

	return &TestServer{
		Echo:         e,
		FlightsStays: cfg.flightsStays,
		Maps:         cfg.maps,
		Redis:        mr,
		Tokens:       tokens,
	}
}

// Response represents a test HTTP response.
type Response struct {
	Code    int
	Body    []byte
	Headers http.Header
}

// Get issues a GET request for target from a fixed client address.
// headers are alternating names and values.
func (ts *TestServer) Get(target string, headers ...string) Response {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	req.RemoteAddr = "198.51.100.10:40000"
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	rec := httptest.NewRecorder()
	ts.Echo.ServeHTTP(rec, req)
	return Response{Code: rec.Code, Body: rec.Body.Bytes(), Headers: rec.Header()}
}

// TripInfoPath builds a trip-info URL for the seeded New York destination.
func TripInfoPath(origin string) string {
	return "/api/v1/trip-info?lat=40.7128&lng=-74.0060&origin=" + origin +
		"&checkInDate=2026-11-02&checkOutDate=2026-11-05&adults=1&roomQuantity=1"
}

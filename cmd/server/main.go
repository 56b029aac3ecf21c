// Package main is the entry point for the trip info service.
//
//	@title						Trip Info API
//	@version					1.0.0
//	@description				Combines airports, flights, hotels and maps lookups for a trip destination. Flights fall back to alternate airports when the direct pair has no offers.
//
//	@contact.name				API Support
//	@contact.url				https://github.com/tripcompass/trip-info-service/issues
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/api/v1
//
//	@schemes					http https
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"

	_ "github.com/tripcompass/trip-info-service/docs"

	triphttp "github.com/tripcompass/trip-info-service/internal/adapter/http"
	"github.com/tripcompass/trip-info-service/internal/adapter/http/middleware"
	"github.com/tripcompass/trip-info-service/internal/adapter/provider/amadeus"
	"github.com/tripcompass/trip-info-service/internal/adapter/provider/fake"
	"github.com/tripcompass/trip-info-service/internal/adapter/provider/googlemaps"
	"github.com/tripcompass/trip-info-service/internal/cache"
	"github.com/tripcompass/trip-info-service/internal/config"
	"github.com/tripcompass/trip-info-service/internal/domain"
	"github.com/tripcompass/trip-info-service/internal/infrastructure/executor"
	"github.com/tripcompass/trip-info-service/internal/infrastructure/logger"
	"github.com/tripcompass/trip-info-service/internal/infrastructure/timeutil"
	"github.com/tripcompass/trip-info-service/internal/usecase"
)

const (
	shutdownTimeout  = 10 * time.Second
	redisDialTimeout = 5 * time.Second
)

func main() {
	cfg := config.MustLoad()

	log := logger.New(logger.Config{
		Level:       cfg.Logging.Level,
		Format:      cfg.Logging.Format,
		ServiceName: "trip-info",
	})

	log.Info().
		Str("env", cfg.App.Env).
		Str("provider_mode", cfg.App.ProviderMode).
		Int("port", cfg.Server.Port).
		Msg("Configuration loaded")

	store, closeStore := setupStore(cfg, log)
	defer closeStore()

	services := setupServices(cfg, store, log)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	middleware.Setup(e, log)

	handler := triphttp.NewHandler(services, timeutil.NewRealClock(), cfg.App.ProviderMode)
	triphttp.RegisterRoutes(e, handler, middleware.RateLimit(cfg.RateLimit.RequestsPerMinute))

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	go func() {
		log.Info().Str("address", addr).Msg("Starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	gracefulShutdown(e, log)
}

// setupStore returns the Redis-backed hotel cache store when REDIS_URL is
// set and reachable, otherwise the in-process store.
func setupStore(cfg *config.Config, log *logger.Logger) (cache.Store, func()) {
	if cfg.Cache.RedisURL == "" {
		return cache.NewMemoryStore(), func() {}
	}

	ctx, cancel := context.WithTimeout(context.Background(), redisDialTimeout)
	defer cancel()

	client, err := cache.NewRedisClient(ctx, cfg.Cache.RedisURL)
	if err != nil {
		log.Warn().Err(err).Msg("Redis unavailable, using in-memory cache")
		return cache.NewMemoryStore(), func() {}
	}

	log.Info().Str("prefix", cfg.Cache.RedisKeyPrefix).Msg("Using Redis result cache")
	return cache.NewRedisStore(client, cfg.Cache.RedisKeyPrefix), func() {
		if err := client.Close(); err != nil {
			log.Error().Err(err).Msg("Error closing Redis client")
		}
	}
}

// setupProviders builds the upstream clients, or the seeded offline fakes
// when PROVIDER_MODE=fake.
func setupProviders(cfg *config.Config, log *logger.Logger) (domain.FlightsStaysProvider, domain.MapsProvider) {
	if cfg.UseFakeProviders() {
		log.Warn().Msg("Using offline fake providers")
		return fake.NewSeededFlightsStays(), fake.NewSeededMaps()
	}

	if !cfg.Amadeus.Configured() {
		log.Warn().Msg("Amadeus credentials missing, flight and hotel endpoints will answer 503")
	}

	flightsStays := amadeus.NewClient(cfg.Amadeus.BaseURL, nil)

	// Token refreshes get their own single-worker executor so they never
	// wait behind the calls that need the token.
	authExec := executor.New(executor.Config{
		CallTimeout: cfg.Executor.CallTimeout,
		MaxRetries:  cfg.Executor.MaxRetries,
		BaseDelay:   cfg.Executor.BaseDelay,
		MaxDelay:    cfg.Executor.MaxDelay,
		Workers:     1,
	}, log.WithOperation("authenticate"))

	tokens := cache.NewTokenCache(flightsStays, authExec, cache.Credentials{
		ClientID:     cfg.Amadeus.ClientID,
		ClientSecret: cfg.Amadeus.ClientSecret,
	}, cache.TokenConfig{
		SafetyMargin: cfg.Cache.TokenSafetyMargin,
		MinTTL:       cfg.Cache.TokenMinTTL,
	}, log)
	flightsStays.UseTokens(tokens)

	return flightsStays, googlemaps.NewClient(cfg.Maps.BaseURL, cfg.Maps.APIKey, nil)
}

// setupServices wires the use cases shared by the HTTP handler.
func setupServices(cfg *config.Config, store cache.Store, log *logger.Logger) triphttp.Services {
	flightsStays, maps := setupProviders(cfg, log)

	exec := executor.New(executor.Config{
		CallTimeout: cfg.Executor.CallTimeout,
		MaxRetries:  cfg.Executor.MaxRetries,
		BaseDelay:   cfg.Executor.BaseDelay,
		MaxDelay:    cfg.Executor.MaxDelay,
		Workers:     cfg.Executor.Workers,
	}, log)

	opts := usecase.DefaultOptions()
	opts.HotelRadiusKm = float64(cfg.Search.HotelRadiusKm)
	opts.MaxHotelResults = cfg.Search.MaxHotelResults
	opts.HotelGeoRadiusKm = cfg.Search.HotelGeoRadius

	hotelsCache := cache.NewResultCache[[]domain.Hotel](store, cache.ResultConfig{
		Namespace: usecase.HotelsCacheNamespace,
		TTL:       cfg.Cache.ResultTTL,
	}, log)
	offersCache := cache.NewResultCache[[]domain.HotelOfferSummary](store, cache.ResultConfig{
		Namespace: usecase.HotelOffersCacheNamespace,
		TTL:       cfg.Cache.ResultTTL,
	}, log)

	airports := usecase.NewAirportResolver(flightsStays, exec, &opts, log)
	flightFinder := usecase.NewFlightFinder(flightsStays, exec, airports, &opts, log)
	hotelFinder := usecase.NewHotelFinder(flightsStays, exec, hotelsCache, log)

	return triphttp.Services{
		TripInfo:  usecase.NewTripInfoUseCase(airports, flightFinder, hotelFinder, maps, exec, &opts, log),
		Flights:   usecase.NewFlightSearchUseCase(flightFinder, flightsStays, exec, log),
		Hotels:    usecase.NewHotelSearchUseCase(hotelFinder, flightsStays, exec, offersCache, &opts, log),
		Locations: usecase.NewLocationUseCase(flightsStays, airports, exec, &opts, log),
		Maps:      usecase.NewMapsUseCase(maps, airports, exec, log),
	}
}

// gracefulShutdown handles graceful server shutdown on interrupt signals.
func gracefulShutdown(e *echo.Echo, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Error during server shutdown")
	}

	log.Info().Msg("Server stopped")
}

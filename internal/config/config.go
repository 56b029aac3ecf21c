// Package config provides application configuration management.
// It loads configuration from environment variables with support for .env files.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Provider modes.
const (
	ProviderModeLive = "live"
	ProviderModeFake = "fake"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig
	Executor  ExecutorConfig
	Cache     CacheConfig
	Amadeus   AmadeusConfig
	Maps      MapsConfig
	Search    SearchConfig
	RateLimit RateLimitConfig
	Logging   LoggingConfig
	App       AppConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         int           `env:"SERVER_PORT" envDefault:"8080"`
	ReadTimeout  time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"60s"`
}

// ExecutorConfig holds settings for the resilient call executor.
type ExecutorConfig struct {
	CallTimeout time.Duration `env:"EXECUTOR_CALL_TIMEOUT" envDefault:"10s"`
	MaxRetries  int           `env:"EXECUTOR_MAX_RETRIES" envDefault:"2"`
	BaseDelay   time.Duration `env:"EXECUTOR_BASE_DELAY" envDefault:"300ms"`
	MaxDelay    time.Duration `env:"EXECUTOR_MAX_DELAY" envDefault:"2s"`
	Workers     int           `env:"EXECUTOR_WORKERS" envDefault:"6"`
}

// CacheConfig holds result and token cache settings.
// RedisURL is optional; when empty the result cache stays in process memory.
type CacheConfig struct {
	ResultTTL         time.Duration `env:"CACHE_RESULT_TTL" envDefault:"10m"`
	TokenSafetyMargin time.Duration `env:"CACHE_TOKEN_SAFETY_MARGIN" envDefault:"60s"`
	TokenMinTTL       time.Duration `env:"CACHE_TOKEN_MIN_TTL" envDefault:"60s"`
	RedisURL          string        `env:"REDIS_URL"`
	RedisKeyPrefix    string        `env:"REDIS_KEY_PREFIX" envDefault:"trip-info:hotels:"`
}

// AmadeusConfig holds Flights&Stays provider credentials.
type AmadeusConfig struct {
	BaseURL      string `env:"AMADEUS_BASE_URL" envDefault:"https://test.api.amadeus.com"`
	ClientID     string `env:"AMADEUS_CLIENT_ID"`
	ClientSecret string `env:"AMADEUS_CLIENT_SECRET"`
}

// Configured reports whether both credentials are present.
func (c AmadeusConfig) Configured() bool {
	return c.ClientID != "" && c.ClientSecret != ""
}

// MapsConfig holds Maps provider settings.
type MapsConfig struct {
	BaseURL string `env:"MAPS_BASE_URL" envDefault:"https://maps.googleapis.com/maps/api"`
	APIKey  string `env:"MAPS_API_KEY"`
}

// SearchConfig holds hotel search tuning.
type SearchConfig struct {
	HotelRadiusKm   int `env:"SEARCH_HOTEL_RADIUS_KM" envDefault:"15"`
	MaxHotelResults int `env:"SEARCH_MAX_HOTEL_RESULTS" envDefault:"25"`
	HotelGeoRadius  int `env:"SEARCH_HOTEL_GEO_RADIUS_KM" envDefault:"10"`
}

// RateLimitConfig holds the per-IP request limit.
type RateLimitConfig struct {
	RequestsPerMinute int `env:"RATE_LIMIT_PER_MINUTE" envDefault:"60"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

// AppConfig holds general application settings.
type AppConfig struct {
	Env          string `env:"APP_ENV" envDefault:"development"`
	ProviderMode string `env:"PROVIDER_MODE" envDefault:"live"`
}

// Load reads configuration from environment variables.
// It attempts to load a .env file first (optional - won't fail if missing).
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found, using environment variables")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

// MustLoad loads configuration or panics on error.
// Use this in main() where configuration is required to start.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return cfg
}

// validate checks configuration values for correctness.
func validate(cfg *Config) error {
	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		return fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", cfg.Server.Port)
	}

	positive := []struct {
		name  string
		value time.Duration
	}{
		{"SERVER_READ_TIMEOUT", cfg.Server.ReadTimeout},
		{"SERVER_WRITE_TIMEOUT", cfg.Server.WriteTimeout},
		{"EXECUTOR_CALL_TIMEOUT", cfg.Executor.CallTimeout},
		{"EXECUTOR_BASE_DELAY", cfg.Executor.BaseDelay},
		{"EXECUTOR_MAX_DELAY", cfg.Executor.MaxDelay},
		{"CACHE_RESULT_TTL", cfg.Cache.ResultTTL},
		{"CACHE_TOKEN_MIN_TTL", cfg.Cache.TokenMinTTL},
	}
	for _, p := range positive {
		if p.value <= 0 {
			return fmt.Errorf("%s must be positive", p.name)
		}
	}

	if cfg.Cache.TokenSafetyMargin < 0 {
		return fmt.Errorf("CACHE_TOKEN_SAFETY_MARGIN must not be negative")
	}

	if cfg.Executor.MaxDelay < cfg.Executor.BaseDelay {
		return fmt.Errorf("EXECUTOR_MAX_DELAY (%s) should not be less than EXECUTOR_BASE_DELAY (%s)",
			cfg.Executor.MaxDelay, cfg.Executor.BaseDelay)
	}

	if cfg.Executor.MaxRetries < 0 {
		return fmt.Errorf("EXECUTOR_MAX_RETRIES must not be negative, got %d", cfg.Executor.MaxRetries)
	}
	if cfg.Executor.Workers < 1 {
		return fmt.Errorf("EXECUTOR_WORKERS must be at least 1, got %d", cfg.Executor.Workers)
	}

	if cfg.Search.HotelRadiusKm < 1 || cfg.Search.MaxHotelResults < 1 || cfg.Search.HotelGeoRadius < 1 {
		return fmt.Errorf("SEARCH_* values must be positive")
	}
	if cfg.RateLimit.RequestsPerMinute < 1 {
		return fmt.Errorf("RATE_LIMIT_PER_MINUTE must be positive, got %d", cfg.RateLimit.RequestsPerMinute)
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: debug, info, warn, error; got %q", cfg.Logging.Level)
	}

	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console; got %q", cfg.Logging.Format)
	}

	validEnvs := map[string]bool{"development": true, "staging": true, "production": true}
	if !validEnvs[cfg.App.Env] {
		return fmt.Errorf("APP_ENV must be one of: development, staging, production; got %q", cfg.App.Env)
	}

	if cfg.App.ProviderMode != ProviderModeLive && cfg.App.ProviderMode != ProviderModeFake {
		return fmt.Errorf("PROVIDER_MODE must be one of: live, fake; got %q", cfg.App.ProviderMode)
	}

	return nil
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}

// UseFakeProviders reports whether the deterministic in-memory providers are selected.
func (c *Config) UseFakeProviders() bool {
	return c.App.ProviderMode == ProviderModeFake
}

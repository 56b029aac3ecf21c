package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoad_Defaults tests that all default values load correctly without any env vars.
func TestLoad_Defaults(t *testing.T) {
	// Clear all config-related env vars
	clearEnvVars(t)

	cfg, err := Load()
	require.NoError(t, err)

	// Server defaults
	assert.Equal(t, 8080, cfg.Server.Port, "default server port")
	assert.Equal(t, "10s", cfg.Server.ReadTimeout.String(), "default read timeout")
	assert.Equal(t, "1m0s", cfg.Server.WriteTimeout.String(), "default write timeout")

	// Executor defaults
	assert.Equal(t, "10s", cfg.Executor.CallTimeout.String(), "default call timeout")
	assert.Equal(t, 2, cfg.Executor.MaxRetries, "default max retries")
	assert.Equal(t, "300ms", cfg.Executor.BaseDelay.String(), "default base delay")
	assert.Equal(t, "2s", cfg.Executor.MaxDelay.String(), "default max delay")
	assert.Equal(t, 6, cfg.Executor.Workers, "default worker slots")

	// Cache defaults
	assert.Equal(t, "10m0s", cfg.Cache.ResultTTL.String(), "default result TTL")
	assert.Equal(t, "1m0s", cfg.Cache.TokenSafetyMargin.String(), "default token safety margin")
	assert.Equal(t, "1m0s", cfg.Cache.TokenMinTTL.String(), "default token floor")
	assert.Empty(t, cfg.Cache.RedisURL, "redis disabled by default")

	// Search defaults
	assert.Equal(t, 15, cfg.Search.HotelRadiusKm)
	assert.Equal(t, 25, cfg.Search.MaxHotelResults)
	assert.Equal(t, 10, cfg.Search.HotelGeoRadius)
	assert.Equal(t, 60, cfg.RateLimit.RequestsPerMinute)

	// Provider defaults
	assert.Equal(t, "https://test.api.amadeus.com", cfg.Amadeus.BaseURL)
	assert.False(t, cfg.Amadeus.Configured())

	// Logging defaults
	assert.Equal(t, "info", cfg.Logging.Level, "default log level")
	assert.Equal(t, "json", cfg.Logging.Format, "default log format")

	// App defaults
	assert.Equal(t, "development", cfg.App.Env, "default app environment")
	assert.Equal(t, ProviderModeLive, cfg.App.ProviderMode, "default provider mode")
}

// TestLoad_EnvironmentOverrides tests that environment variables override defaults.
func TestLoad_EnvironmentOverrides(t *testing.T) {
	clearEnvVars(t)

	// Set custom values
	setEnvVars(t, map[string]string{
		"SERVER_PORT":           "3000",
		"SERVER_READ_TIMEOUT":   "30s",
		"SERVER_WRITE_TIMEOUT":  "30s",
		"EXECUTOR_CALL_TIMEOUT": "5s",
		"EXECUTOR_MAX_RETRIES":  "4",
		"EXECUTOR_WORKERS":      "12",
		"CACHE_RESULT_TTL":      "2m",
		"REDIS_URL":             "redis://localhost:6379/0",
		"AMADEUS_CLIENT_ID":     "id",
		"AMADEUS_CLIENT_SECRET": "secret",
		"LOG_LEVEL":             "debug",
		"LOG_FORMAT":            "console",
		"APP_ENV":               "production",
		"PROVIDER_MODE":         "fake",
	})

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 3000, cfg.Server.Port)
	assert.Equal(t, "30s", cfg.Server.ReadTimeout.String())
	assert.Equal(t, "30s", cfg.Server.WriteTimeout.String())
	assert.Equal(t, "5s", cfg.Executor.CallTimeout.String())
	assert.Equal(t, 4, cfg.Executor.MaxRetries)
	assert.Equal(t, 12, cfg.Executor.Workers)
	assert.Equal(t, "2m0s", cfg.Cache.ResultTTL.String())
	assert.Equal(t, "redis://localhost:6379/0", cfg.Cache.RedisURL)
	assert.True(t, cfg.Amadeus.Configured())
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.Equal(t, "production", cfg.App.Env)
	assert.True(t, cfg.UseFakeProviders())
}

// TestLoad_PartialOverrides tests that only overridden values change.
func TestLoad_PartialOverrides(t *testing.T) {
	clearEnvVars(t)

	// Only override port
	setEnvVars(t, map[string]string{
		"SERVER_PORT": "9000",
	})

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Server.Port, "overridden port")
	assert.Equal(t, "10s", cfg.Server.ReadTimeout.String(), "default read timeout")
	assert.Equal(t, "info", cfg.Logging.Level, "default log level")
}

// TestLoad_Validation_PortRange tests port validation boundaries.
func TestLoad_Validation_PortRange(t *testing.T) {
	tests := []struct {
		name    string
		port    string
		wantErr bool
		errMsg  string
	}{
		{"valid port 1", "1", false, ""},
		{"valid port 80", "80", false, ""},
		{"valid port 8080", "8080", false, ""},
		{"valid port 65535", "65535", false, ""},
		{"invalid port 0", "0", true, "SERVER_PORT must be between 1 and 65535"},
		{"invalid port negative", "-1", true, "SERVER_PORT must be between 1 and 65535"},
		{"invalid port too high", "65536", true, "SERVER_PORT must be between 1 and 65535"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnvVars(t)
			setEnvVars(t, map[string]string{"SERVER_PORT": tt.port})

			cfg, err := Load()
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				assert.Nil(t, cfg)
			} else {
				require.NoError(t, err)
				assert.NotNil(t, cfg)
			}
		})
	}
}

// TestLoad_Validation_PositiveTimeouts tests that timeouts must be positive.
func TestLoad_Validation_PositiveTimeouts(t *testing.T) {
	tests := []struct {
		name   string
		envVar string
		value  string
		errMsg string
	}{
		{"zero read timeout", "SERVER_READ_TIMEOUT", "0s", "SERVER_READ_TIMEOUT must be positive"},
		{"negative read timeout", "SERVER_READ_TIMEOUT", "-1s", "SERVER_READ_TIMEOUT must be positive"},
		{"zero write timeout", "SERVER_WRITE_TIMEOUT", "0s", "SERVER_WRITE_TIMEOUT must be positive"},
		{"negative write timeout", "SERVER_WRITE_TIMEOUT", "-1s", "SERVER_WRITE_TIMEOUT must be positive"},
		{"zero call timeout", "EXECUTOR_CALL_TIMEOUT", "0s", "EXECUTOR_CALL_TIMEOUT must be positive"},
		{"negative call timeout", "EXECUTOR_CALL_TIMEOUT", "-1s", "EXECUTOR_CALL_TIMEOUT must be positive"},
		{"zero base delay", "EXECUTOR_BASE_DELAY", "0s", "EXECUTOR_BASE_DELAY must be positive"},
		{"zero result ttl", "CACHE_RESULT_TTL", "0s", "CACHE_RESULT_TTL must be positive"},
		{"zero token floor", "CACHE_TOKEN_MIN_TTL", "0s", "CACHE_TOKEN_MIN_TTL must be positive"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnvVars(t)
			setEnvVars(t, map[string]string{tt.envVar: tt.value})

			cfg, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
			assert.Nil(t, cfg)
		})
	}
}

// TestLoad_Validation_MaxDelayNotBelowBase tests backoff cap ordering.
func TestLoad_Validation_MaxDelayNotBelowBase(t *testing.T) {
	clearEnvVars(t)

	setEnvVars(t, map[string]string{
		"EXECUTOR_BASE_DELAY": "2s",
		"EXECUTOR_MAX_DELAY":  "1s",
	})

	cfg, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "EXECUTOR_MAX_DELAY")
	assert.Contains(t, err.Error(), "should not be less than")
	assert.Nil(t, cfg)
}

// TestLoad_Validation_Executor tests retry and worker bounds.
func TestLoad_Validation_Executor(t *testing.T) {
	tests := []struct {
		name    string
		vars    map[string]string
		wantErr string
	}{
		{"zero retries allowed", map[string]string{"EXECUTOR_MAX_RETRIES": "0"}, ""},
		{"negative retries", map[string]string{"EXECUTOR_MAX_RETRIES": "-1"}, "EXECUTOR_MAX_RETRIES must not be negative"},
		{"single worker allowed", map[string]string{"EXECUTOR_WORKERS": "1"}, ""},
		{"zero workers", map[string]string{"EXECUTOR_WORKERS": "0"}, "EXECUTOR_WORKERS must be at least 1"},
		{"zero rate limit", map[string]string{"RATE_LIMIT_PER_MINUTE": "0"}, "RATE_LIMIT_PER_MINUTE must be positive"},
		{"zero hotel radius", map[string]string{"SEARCH_HOTEL_RADIUS_KM": "0"}, "SEARCH_* values must be positive"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnvVars(t)
			setEnvVars(t, tt.vars)

			cfg, err := Load()
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				assert.Nil(t, cfg)
			} else {
				require.NoError(t, err)
				assert.NotNil(t, cfg)
			}
		})
	}
}

// TestLoad_Validation_ProviderMode tests provider mode validation.
func TestLoad_Validation_ProviderMode(t *testing.T) {
	tests := []struct {
		mode    string
		wantErr bool
	}{
		{"live", false},
		{"fake", false},
		{"mock", true},
	}

	for _, tt := range tests {
		t.Run(tt.mode, func(t *testing.T) {
			clearEnvVars(t)
			setEnvVars(t, map[string]string{"PROVIDER_MODE": tt.mode})

			cfg, err := Load()
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "PROVIDER_MODE must be one of")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.mode, cfg.App.ProviderMode)
		})
	}
}

// TestLoad_Validation_LogLevel tests log level validation.
func TestLoad_Validation_LogLevel(t *testing.T) {
	tests := []struct {
		name    string
		level   string
		wantErr bool
	}{
		{"valid debug", "debug", false},
		{"valid info", "info", false},
		{"valid warn", "warn", false},
		{"valid error", "error", false},
		{"invalid trace", "trace", true},
		{"invalid fatal", "fatal", true},
		// Note: empty string uses default value "info" due to envDefault tag
		{"invalid random", "invalid", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnvVars(t)
			setEnvVars(t, map[string]string{"LOG_LEVEL": tt.level})

			cfg, err := Load()
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "LOG_LEVEL must be one of")
				assert.Nil(t, cfg)
			} else {
				require.NoError(t, err)
				assert.NotNil(t, cfg)
			}
		})
	}
}

// TestLoad_Validation_LogFormat tests log format validation.
func TestLoad_Validation_LogFormat(t *testing.T) {
	tests := []struct {
		name    string
		format  string
		wantErr bool
	}{
		{"valid json", "json", false},
		{"valid console", "console", false},
		{"invalid text", "text", true},
		// Note: empty string uses default value "json" due to envDefault tag
		{"invalid random", "invalid", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnvVars(t)
			setEnvVars(t, map[string]string{"LOG_FORMAT": tt.format})

			cfg, err := Load()
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "LOG_FORMAT must be one of")
				assert.Nil(t, cfg)
			} else {
				require.NoError(t, err)
				assert.NotNil(t, cfg)
			}
		})
	}
}

// TestLoad_Validation_AppEnv tests app environment validation.
func TestLoad_Validation_AppEnv(t *testing.T) {
	tests := []struct {
		name    string
		env     string
		wantErr bool
	}{
		{"valid development", "development", false},
		{"valid staging", "staging", false},
		{"valid production", "production", false},
		{"invalid local", "local", true},
		// Note: empty string uses default value "development" due to envDefault tag
		{"invalid random", "invalid", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnvVars(t)
			setEnvVars(t, map[string]string{"APP_ENV": tt.env})

			cfg, err := Load()
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "APP_ENV must be one of")
				assert.Nil(t, cfg)
			} else {
				require.NoError(t, err)
				assert.NotNil(t, cfg)
			}
		})
	}
}

// TestLoad_DurationParsing tests that duration strings are parsed correctly.
func TestLoad_DurationParsing(t *testing.T) {
	clearEnvVars(t)

	setEnvVars(t, map[string]string{
		"SERVER_READ_TIMEOUT":  "1m30s",
		"SERVER_WRITE_TIMEOUT": "2m",
		"EXECUTOR_BASE_DELAY":  "150ms",
		"EXECUTOR_MAX_DELAY":   "1s500ms",
	})

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "1m30s", cfg.Server.ReadTimeout.String())
	assert.Equal(t, "2m0s", cfg.Server.WriteTimeout.String())
	assert.Equal(t, "150ms", cfg.Executor.BaseDelay.String())
	assert.Equal(t, "1.5s", cfg.Executor.MaxDelay.String())
}

// TestMustLoad_Success tests MustLoad with valid config.
func TestMustLoad_Success(t *testing.T) {
	clearEnvVars(t)

	assert.NotPanics(t, func() {
		cfg := MustLoad()
		assert.NotNil(t, cfg)
	})
}

// TestMustLoad_Panic tests MustLoad panics on invalid config.
func TestMustLoad_Panic(t *testing.T) {
	clearEnvVars(t)
	setEnvVars(t, map[string]string{"SERVER_PORT": "0"})

	assert.Panics(t, func() {
		MustLoad()
	})
}

// TestConfig_IsDevelopment tests the IsDevelopment helper method.
func TestConfig_IsDevelopment(t *testing.T) {
	tests := []struct {
		env      string
		expected bool
	}{
		{"development", true},
		{"staging", false},
		{"production", false},
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			clearEnvVars(t)
			setEnvVars(t, map[string]string{"APP_ENV": tt.env})

			cfg, err := Load()
			require.NoError(t, err)
			assert.Equal(t, tt.expected, cfg.IsDevelopment())
		})
	}
}

// TestConfig_IsProduction tests the IsProduction helper method.
func TestConfig_IsProduction(t *testing.T) {
	tests := []struct {
		env      string
		expected bool
	}{
		{"development", false},
		{"staging", false},
		{"production", true},
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			clearEnvVars(t)
			setEnvVars(t, map[string]string{"APP_ENV": tt.env})

			cfg, err := Load()
			require.NoError(t, err)
			assert.Equal(t, tt.expected, cfg.IsProduction())
		})
	}
}

// Helper functions

// clearEnvVars clears all config-related environment variables.
func clearEnvVars(t *testing.T) {
	t.Helper()
	envVars := []string{
		"SERVER_PORT",
		"SERVER_READ_TIMEOUT",
		"SERVER_WRITE_TIMEOUT",
		"EXECUTOR_CALL_TIMEOUT",
		"EXECUTOR_MAX_RETRIES",
		"EXECUTOR_BASE_DELAY",
		"EXECUTOR_MAX_DELAY",
		"EXECUTOR_WORKERS",
		"CACHE_RESULT_TTL",
		"CACHE_TOKEN_SAFETY_MARGIN",
		"CACHE_TOKEN_MIN_TTL",
		"REDIS_URL",
		"REDIS_KEY_PREFIX",
		"AMADEUS_BASE_URL",
		"AMADEUS_CLIENT_ID",
		"AMADEUS_CLIENT_SECRET",
		"MAPS_BASE_URL",
		"MAPS_API_KEY",
		"SEARCH_HOTEL_RADIUS_KM",
		"SEARCH_MAX_HOTEL_RESULTS",
		"SEARCH_HOTEL_GEO_RADIUS_KM",
		"RATE_LIMIT_PER_MINUTE",
		"LOG_LEVEL",
		"LOG_FORMAT",
		"APP_ENV",
		"PROVIDER_MODE",
	}
	for _, v := range envVars {
		os.Unsetenv(v)
	}
}

// setEnvVars sets multiple environment variables.
func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	for k, v := range vars {
		os.Setenv(k, v)
	}
}

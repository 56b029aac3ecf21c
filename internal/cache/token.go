// Package cache holds the process-wide caches that sit beneath every
// upstream call path: the Flights&Stays bearer token and memoized search
// results.
package cache

import (
	"context"
	"errors"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/tripcompass/trip-info-service/internal/domain"
	"github.com/tripcompass/trip-info-service/internal/infrastructure/executor"
	"github.com/tripcompass/trip-info-service/internal/infrastructure/logger"
	"github.com/tripcompass/trip-info-service/internal/infrastructure/timeutil"
)

// Token lifetime defaults.
const (
	DefaultTokenSafetyMargin = 60 * time.Second
	DefaultTokenMinTTL       = 60 * time.Second
)

// Credentials are the client id and secret for the token endpoint.
type Credentials struct {
	ClientID     string
	ClientSecret string
}

// TokenConfig tunes the computed token expiry.
type TokenConfig struct {
	SafetyMargin time.Duration
	MinTTL       time.Duration
	Clock        timeutil.Clock
}

// TokenCache lazily obtains and reuses a bearer token until it expires.
// Refreshes are single-flight: concurrent callers share one authentication call.
type TokenCache struct {
	auth  domain.Authenticator
	exec  *executor.Executor
	creds Credentials
	cfg   TokenConfig
	log   *logger.Logger

	mu        sync.RWMutex
	token     string
	expiresAt time.Time

	group singleflight.Group
}

// NewTokenCache creates a TokenCache. Authentication goes through exec.
func NewTokenCache(auth domain.Authenticator, exec *executor.Executor, creds Credentials, cfg TokenConfig, log *logger.Logger) *TokenCache {
	if cfg.SafetyMargin < 0 {
		cfg.SafetyMargin = DefaultTokenSafetyMargin
	}
	if cfg.MinTTL <= 0 {
		cfg.MinTTL = DefaultTokenMinTTL
	}
	if cfg.Clock == nil {
		cfg.Clock = timeutil.NewRealClock()
	}
	if log == nil {
		log = logger.Nop()
	}
	return &TokenCache{auth: auth, exec: exec, creds: creds, cfg: cfg, log: log}
}

// Token returns the cached token, refreshing it when absent or expired.
func (c *TokenCache) Token(ctx context.Context) (string, error) {
	if c.creds.ClientID == "" || c.creds.ClientSecret == "" {
		return "", domain.ErrProviderNotConfigured
	}
	if token, ok := c.cached(); ok {
		return token, nil
	}

	v, err, _ := c.group.Do("token", func() (interface{}, error) {
		if token, ok := c.cached(); ok {
			return token, nil
		}
		// The refresh outlives a cancelled leader so followers are not failed with it.
		return c.refresh(context.WithoutCancel(ctx))
	})
	if err != nil {
		return "", err
	}
	return v.(string), nil
}

// ExpiresAt returns the expiry of the cached token, zero when none is held.
func (c *TokenCache) ExpiresAt() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.expiresAt
}

// Invalidate drops the cached token so the next call re-authenticates.
func (c *TokenCache) Invalidate() {
	c.mu.Lock()
	c.token = ""
	c.expiresAt = time.Time{}
	c.mu.Unlock()
}

func (c *TokenCache) cached() (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.token == "" || !c.cfg.Clock.Now().Before(c.expiresAt) {
		return "", false
	}
	return c.token, true
}

func (c *TokenCache) refresh(ctx context.Context) (string, error) {
	at, err := executor.Execute(ctx, c.exec, "authenticate", func(ctx context.Context) (domain.AccessToken, error) {
		return c.auth.Authenticate(ctx, c.creds.ClientID, c.creds.ClientSecret)
	})
	if err != nil {
		c.log.Error().Err(err).Msg("token refresh failed")
		return "", domain.NewAuthError(err)
	}
	if at.Value == "" || at.ExpiresIn <= 0 {
		return "", domain.NewAuthError(errors.New("token response missing access_token or expires_in"))
	}

	lifetime := time.Duration(at.ExpiresIn)*time.Second - c.cfg.SafetyMargin
	if lifetime < c.cfg.MinTTL {
		lifetime = c.cfg.MinTTL
	}
	expiresAt := c.cfg.Clock.Now().Add(lifetime)

	c.mu.Lock()
	c.token = at.Value
	c.expiresAt = expiresAt
	c.mu.Unlock()

	c.log.Debug().Time("expires_at", expiresAt).Msg("token refreshed")
	return at.Value, nil
}

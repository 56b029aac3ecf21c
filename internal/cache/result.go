package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/tripcompass/trip-info-service/internal/infrastructure/logger"
	"github.com/tripcompass/trip-info-service/internal/infrastructure/timeutil"
)

// DefaultResultTTL is how long a fetched result is served from cache.
const DefaultResultTTL = 10 * time.Minute

// Fingerprinter yields the cache key of a query.
type Fingerprinter interface {
	Fingerprint() string
}

// ResultCache memoizes fetch results per query fingerprint for a fixed TTL.
// Concurrent misses on the same key may fetch twice; the last write wins.
// Failed fetches are never stored.
type ResultCache[T any] struct {
	store     Store
	namespace string
	ttl       time.Duration
	clock     timeutil.Clock
	log       *logger.Logger
}

// ResultConfig configures a ResultCache.
type ResultConfig struct {
	// Namespace separates caches sharing one store
	Namespace string
	TTL       time.Duration
	Clock     timeutil.Clock
}

// NewResultCache creates a ResultCache over store.
func NewResultCache[T any](store Store, cfg ResultConfig, log *logger.Logger) *ResultCache[T] {
	if cfg.TTL <= 0 {
		cfg.TTL = DefaultResultTTL
	}
	if cfg.Clock == nil {
		cfg.Clock = timeutil.NewRealClock()
	}
	if log == nil {
		log = logger.Nop()
	}
	return &ResultCache[T]{
		store:     store,
		namespace: cfg.Namespace,
		ttl:       cfg.TTL,
		clock:     cfg.Clock,
		log:       log,
	}
}

// GetOrFetch returns the cached payload for query when present and fresh;
// otherwise it calls fetch, stores the result (even if empty) and returns it.
// The second return value reports a cache hit.
func (c *ResultCache[T]) GetOrFetch(ctx context.Context, query Fingerprinter, fetch func(ctx context.Context) (T, error)) (T, bool, error) {
	key := c.key(query)
	log := logger.FromContext(ctx, c.log)

	if value, ok := c.lookup(ctx, key); ok {
		log.Debug().Str("cache_key", key).Msg("result cache hit")
		return value, true, nil
	}

	value, err := fetch(ctx)
	if err != nil {
		var zero T
		return zero, false, err
	}

	payload, err := json.Marshal(value)
	if err != nil {
		return value, false, fmt.Errorf("encode cached result: %w", err)
	}
	entry := Entry{Payload: payload, StoredAt: c.clock.Now()}
	if err := c.store.Set(ctx, key, entry, c.ttl); err != nil {
		// Serve the fresh value even when it could not be stored.
		log.Warn().Err(err).Str("cache_key", key).Msg("result cache write failed")
	}
	return value, false, nil
}

// Expired reports whether an entry stored at storedAt is stale now.
func (c *ResultCache[T]) Expired(storedAt time.Time) bool {
	return c.clock.Now().After(storedAt.Add(c.ttl))
}

func (c *ResultCache[T]) lookup(ctx context.Context, key string) (T, bool) {
	var zero T

	entry, ok, err := c.store.Get(ctx, key)
	if err != nil {
		c.log.Warn().Err(err).Str("cache_key", key).Msg("result cache read failed")
		return zero, false
	}
	if !ok {
		return zero, false
	}
	if c.Expired(entry.StoredAt) {
		_ = c.store.Delete(ctx, key)
		return zero, false
	}

	var value T
	if err := json.Unmarshal(entry.Payload, &value); err != nil {
		c.log.Warn().Err(err).Str("cache_key", key).Msg("result cache entry unreadable")
		_ = c.store.Delete(ctx, key)
		return zero, false
	}
	return value, true
}

func (c *ResultCache[T]) key(query Fingerprinter) string {
	if c.namespace == "" {
		return query.Fingerprint()
	}
	return c.namespace + ":" + query.Fingerprint()
}

package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tripcompass/trip-info-service/internal/domain"
	"github.com/tripcompass/trip-info-service/internal/infrastructure/timeutil"
)

func newTestRedisStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewRedisStore(client, "trip-info:"), mr
}

func TestRedisStore_SetGetDelete(t *testing.T) {
	store, mr := newTestRedisStore(t)
	ctx := context.Background()

	storedAt := time.Date(2026, 10, 19, 8, 0, 0, 0, time.UTC)
	require.NoError(t, store.Set(ctx, "k", Entry{Payload: []byte(`[1,2]`), StoredAt: storedAt}, time.Minute))

	assert.True(t, mr.Exists("trip-info:k"))
	assert.Equal(t, time.Minute, mr.TTL("trip-info:k"))

	got, ok, err := store.Get(ctx, "k")
	require.NoError(t, err)
	require.True(t, ok)
	assert.JSONEq(t, `[1,2]`, string(got.Payload))
	assert.True(t, storedAt.Equal(got.StoredAt))

	require.NoError(t, store.Delete(ctx, "k"))
	_, ok, err = store.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisStore_Miss(t *testing.T) {
	store, _ := newTestRedisStore(t)

	_, ok, err := store.Get(context.Background(), "missing")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisStore_CorruptEntry(t *testing.T) {
	store, mr := newTestRedisStore(t)
	require.NoError(t, mr.Set("trip-info:bad", "not json"))

	_, _, err := store.Get(context.Background(), "bad")
	assert.Error(t, err)
}

func TestRedisStore_ExpiresWithServerTTL(t *testing.T) {
	store, mr := newTestRedisStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "k", Entry{Payload: []byte(`1`), StoredAt: time.Now()}, time.Minute))
	mr.FastForward(2 * time.Minute)

	_, ok, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestResultCache_OverRedis(t *testing.T) {
	store, _ := newTestRedisStore(t)
	clock := timeutil.NewMockClockFromString("2026-10-19T08:00:00Z")
	c := newHotelCache(store, clock)
	f := &countingFetch{result: []domain.HotelOfferSummary{{HotelID: "HLNYC001", Name: "Hudson Stay", PriceTotal: "199.00"}}}

	first, _, err := c.GetOrFetch(context.Background(), nycQuery(), f.fetch)
	require.NoError(t, err)
	second, hit, err := c.GetOrFetch(context.Background(), nycQuery(), f.fetch)
	require.NoError(t, err)

	assert.True(t, hit)
	assert.Equal(t, first, second)
	assert.Equal(t, int32(1), f.count())

	clock.Advance(11 * time.Minute)
	_, hit, err = c.GetOrFetch(context.Background(), nycQuery(), f.fetch)
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Equal(t, int32(2), f.count())
}

func TestNewRedisClient(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client, err := NewRedisClient(context.Background(), "redis://"+mr.Addr()+"/0")
	require.NoError(t, err)
	_ = client.Close()

	_, err = NewRedisClient(context.Background(), "not-a-url")
	assert.Error(t, err)
}

// Package testutil provides test helper functions for unit and integration tests.
package testutil

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

// MustParseTime parses a time string in RFC3339 format.
// It fails the test if parsing fails.
func MustParseTime(t *testing.T, dateStr string) time.Time {
	t.Helper()
	parsed, err := time.Parse(time.RFC3339, dateStr)
	if err != nil {
		t.Fatalf("Failed to parse time %s: %v", dateStr, err)
	}
	return parsed
}

// DecodeJSON unmarshals body into a T, failing the test on error.
func DecodeJSON[T any](t *testing.T, body []byte) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(body, &v); err != nil {
		t.Fatalf("Failed to decode %s: %v", string(body), err)
	}
	return v
}

// NewRedis starts an in-process Redis server and returns it with a
// connected client. Both are closed when the test ends.
func NewRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}

// Ptr returns a pointer to the given value.
// Useful for creating pointers to literals in tests.
func Ptr[T any](v T) *T {
	return &v
}

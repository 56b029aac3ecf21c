package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2026-10-20")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 10, 20, 0, 0, 0, 0, time.UTC), d)

	_, err = ParseDate("20-10-2026")
	assert.Error(t, err)
}

func TestIsFutureDate(t *testing.T) {
	clock := NewMockClock(time.Date(2026, 10, 19, 23, 0, 0, 0, time.UTC))

	tests := []struct {
		name  string
		value string
		want  bool
	}{
		{"tomorrow", "2026-10-20", true},
		{"today", "2026-10-19", false},
		{"yesterday", "2026-10-18", false},
		{"garbage", "next week", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsFutureDate(clock, tt.value))
		})
	}
}

func TestIsValidDateRange(t *testing.T) {
	assert.True(t, IsValidDateRange("2026-10-20", "2026-10-22"))
	assert.False(t, IsValidDateRange("2026-10-20", "2026-10-20"))
	assert.False(t, IsValidDateRange("2026-10-22", "2026-10-20"))
	assert.False(t, IsValidDateRange("2026-10-20", "soon"))
}

func TestTomorrow(t *testing.T) {
	clock := NewMockClock(time.Date(2026, 12, 31, 18, 0, 0, 0, time.UTC))
	assert.Equal(t, "2027-01-01", Tomorrow(clock))
}

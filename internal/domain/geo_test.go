package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGeoPoint(t *testing.T) {
	tests := []struct {
		name    string
		lat     float64
		lng     float64
		wantErr bool
	}{
		{"new york", 40.7128, -74.0060, false},
		{"north pole", 90, 0, false},
		{"south west corner", -90, -180, false},
		{"east edge", 0, 180, false},
		{"latitude too high", 90.0001, 0, true},
		{"latitude too low", -91, 0, true},
		{"longitude too high", 0, 180.5, true},
		{"longitude too low", 0, -181, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewGeoPoint(tt.lat, tt.lng)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidRequest))
				assert.Equal(t, GeoPoint{}, p)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.lat, p.Latitude)
			assert.Equal(t, tt.lng, p.Longitude)
		})
	}
}

func TestGeoPoint_String(t *testing.T) {
	assert.Equal(t, "40.712800,-74.006000", GeoPoint{Latitude: 40.7128, Longitude: -74.006}.String())
}

func TestParseAirportCode(t *testing.T) {
	tests := []struct {
		in      string
		want    AirportCode
		wantErr bool
	}{
		{"JFK", "JFK", false},
		{" cdg ", "CDG", false},
		{"JFKX", "", true},
		{"J1K", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseAirportCode(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidRequest)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.True(t, got.Resolved())
		})
	}
}

func TestIsAirportCode(t *testing.T) {
	assert.True(t, IsAirportCode("LHR"))
	assert.False(t, IsAirportCode("lhr"))
	assert.False(t, IsAirportCode("Paris"))
	assert.False(t, AirportCode("").Resolved())
}

func TestNewOriginFromText(t *testing.T) {
	code := NewOriginFromText("CDG")
	assert.Equal(t, OriginAirport, code.Kind)
	assert.Equal(t, AirportCode("CDG"), code.Code)

	place := NewOriginFromText("Paris")
	assert.Equal(t, OriginPlace, place.Kind)
	assert.Equal(t, "Paris", place.Place)

	lower := NewOriginFromText("cdg")
	assert.Equal(t, OriginPlace, lower.Kind)

	point := NewOriginFromPoint(GeoPoint{Latitude: 1, Longitude: 2})
	assert.Equal(t, OriginCoordinates, point.Kind)
}

func TestDistanceKm(t *testing.T) {
	paris := GeoPoint{Latitude: 48.8566, Longitude: 2.3522}
	cdg := GeoPoint{Latitude: 49.0097, Longitude: 2.5479}
	newYork := GeoPoint{Latitude: 40.7128, Longitude: -74.0060}

	assert.InDelta(t, 0, DistanceKm(paris, paris), 1e-9)
	assert.InDelta(t, 23, DistanceKm(paris, cdg), 2)
	assert.InDelta(t, 5837, DistanceKm(paris, newYork), 15)
	assert.InDelta(t, DistanceKm(paris, newYork), DistanceKm(newYork, paris), 1e-9)
}

package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodePolyline(t *testing.T) {
	tests := []struct {
		name   string
		points []GeoPoint
		want   string
	}{
		{
			name: "reference example",
			points: []GeoPoint{
				{Latitude: 38.5, Longitude: -120.2},
				{Latitude: 40.7, Longitude: -120.95},
				{Latitude: 43.252, Longitude: -126.453},
			},
			want: "_p~iF~ps|U_ulLnnqC_mqNvxq`@",
		},
		{
			name:   "empty",
			points: nil,
			want:   "",
		},
		{
			name:   "origin",
			points: []GeoPoint{{Latitude: 0, Longitude: 0}},
			want:   "??",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EncodePolyline(tt.points))
		})
	}
}

func TestDecodePolyline(t *testing.T) {
	cdgToJFK := []GeoPoint{
		{Latitude: 49.00970, Longitude: 2.54778},
		{Latitude: 40.63980, Longitude: -73.77890},
	}

	got := DecodePolyline(EncodePolyline(cdgToJFK))
	require.Len(t, got, 2)
	for i := range cdgToJFK {
		assert.InDelta(t, cdgToJFK[i].Latitude, got[i].Latitude, 1e-5)
		assert.InDelta(t, cdgToJFK[i].Longitude, got[i].Longitude, 1e-5)
	}

	assert.Empty(t, DecodePolyline("_p~iF"))
}

package domain

import (
	"math"
	"strings"
)

// EncodePolyline encodes points with the Google encoded polyline algorithm
// at 1e5 precision.
func EncodePolyline(points []GeoPoint) string {
	var b strings.Builder
	var prevLat, prevLng int64
	for _, p := range points {
		lat := int64(math.Round(p.Latitude * 1e5))
		lng := int64(math.Round(p.Longitude * 1e5))
		encodeSigned(&b, lat-prevLat)
		encodeSigned(&b, lng-prevLng)
		prevLat, prevLng = lat, lng
	}
	return b.String()
}

func encodeSigned(b *strings.Builder, v int64) {
	u := v << 1
	if v < 0 {
		u = ^u
	}
	for u >= 0x20 {
		b.WriteByte(byte((0x20 | (u & 0x1f)) + 63))
		u >>= 5
	}
	b.WriteByte(byte(u + 63))
}

// DecodePolyline reverses EncodePolyline. Malformed trailing input is ignored.
func DecodePolyline(encoded string) []GeoPoint {
	points := make([]GeoPoint, 0)
	var lat, lng int64
	for i := 0; i < len(encoded); {
		dLat, next, ok := decodeSigned(encoded, i)
		if !ok {
			break
		}
		dLng, next2, ok := decodeSigned(encoded, next)
		if !ok {
			break
		}
		i = next2
		lat += dLat
		lng += dLng
		points = append(points, GeoPoint{Latitude: float64(lat) / 1e5, Longitude: float64(lng) / 1e5})
	}
	return points
}

func decodeSigned(s string, i int) (int64, int, bool) {
	var result int64
	var shift uint
	for i < len(s) {
		c := int64(s[i]) - 63
		i++
		result |= (c & 0x1f) << shift
		shift += 5
		if c < 0x20 {
			if result&1 != 0 {
				return ^(result >> 1), i, true
			}
			return result >> 1, i, true
		}
	}
	return 0, i, false
}

package domain

import (
	"fmt"
	"math"
	"regexp"
	"strings"
)

// GeoPoint is a coordinate pair in degrees.
type GeoPoint struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lng"`
}

// NewGeoPoint builds a GeoPoint and rejects out-of-range coordinates.
func NewGeoPoint(lat, lng float64) (GeoPoint, error) {
	p := GeoPoint{Latitude: lat, Longitude: lng}
	if err := p.Validate(); err != nil {
		return GeoPoint{}, err
	}
	return p, nil
}

// Validate checks -90 <= lat <= 90 and -180 <= lng <= 180.
func (p GeoPoint) Validate() error {
	if p.Latitude < -90 || p.Latitude > 90 {
		return fmt.Errorf("%w: latitude must be between -90 and 90, got %v", ErrInvalidRequest, p.Latitude)
	}
	if p.Longitude < -180 || p.Longitude > 180 {
		return fmt.Errorf("%w: longitude must be between -180 and 180, got %v", ErrInvalidRequest, p.Longitude)
	}
	return nil
}

// String renders the point with six decimal places, the canonical form used
// for cache keys and upstream query parameters.
func (p GeoPoint) String() string {
	return fmt.Sprintf("%.6f,%.6f", p.Latitude, p.Longitude)
}

const earthRadiusKm = 6371.0

// DistanceKm returns the great-circle distance between two points.
func DistanceKm(a, b GeoPoint) float64 {
	lat1 := a.Latitude * math.Pi / 180
	lat2 := b.Latitude * math.Pi / 180
	dLat := lat2 - lat1
	dLng := (b.Longitude - a.Longitude) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) + math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	return 2 * earthRadiusKm * math.Asin(math.Min(1, math.Sqrt(h)))
}

// AirportCode is a 3-letter IATA code. The empty value means unresolved.
type AirportCode string

// airportCodeRegex matches valid IATA airport codes (3 uppercase letters).
var airportCodeRegex = regexp.MustCompile(`^[A-Z]{3}$`)

// IsAirportCode reports whether s looks like an IATA airport code.
func IsAirportCode(s string) bool {
	return airportCodeRegex.MatchString(s)
}

// Resolved reports whether the code holds a value.
func (c AirportCode) Resolved() bool {
	return c != ""
}

func (c AirportCode) String() string {
	return string(c)
}

// ParseAirportCode upper-cases s and validates it.
func ParseAirportCode(s string) (AirportCode, error) {
	code := strings.ToUpper(strings.TrimSpace(s))
	if !IsAirportCode(code) {
		return "", fmt.Errorf("%w: must be a valid 3-letter IATA code, got %q", ErrInvalidRequest, s)
	}
	return AirportCode(code), nil
}

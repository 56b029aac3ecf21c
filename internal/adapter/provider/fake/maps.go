package fake

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/tripcompass/trip-info-service/internal/domain"
)

// Average speeds used to synthesize routes between known places.
var travelSpeedsKmh = map[string]float64{
	"driving":   80,
	"transit":   60,
	"bicycling": 15,
	"walking":   5,
}

// Maps is an in-memory domain.MapsProvider backed by a place table.
type Maps struct {
	recorder

	places map[string]domain.GeoPoint
	routes map[string]domain.RouteInfo
	pois   map[string][]domain.Place
}

var _ domain.MapsProvider = (*Maps)(nil)

// NewMaps creates an empty fake.
func NewMaps() *Maps {
	return &Maps{
		places: make(map[string]domain.GeoPoint),
		routes: make(map[string]domain.RouteInfo),
		pois:   make(map[string][]domain.Place),
	}
}

// WithPlace registers a geocodable name. Lookups ignore case and surrounding space.
func (m *Maps) WithPlace(name string, p domain.GeoPoint) *Maps {
	m.places[placeKey(name)] = p
	return m
}

// WithRoute sets a fixed answer for a route.
func (m *Maps) WithRoute(origin, destination, mode string, route domain.RouteInfo) *Maps {
	m.routes[routeInfoKey(origin, destination, mode)] = route
	return m
}

// WithPlaces sets the places returned for a place type, wherever the search is.
func (m *Maps) WithPlaces(placeType string, places ...domain.Place) *Maps {
	m.pois[placeType] = append(m.pois[placeType], places...)
	return m
}

// WithError makes every call to op fail with err.
func (m *Maps) WithError(op string, err error) *Maps {
	m.setError(op, err)
	return m
}

// WithDelay makes every call to op wait d, or until ctx is done.
func (m *Maps) WithDelay(op string, d time.Duration) *Maps {
	m.setDelay(op, d)
	return m
}

// Name returns the provider identifier.
func (m *Maps) Name() string {
	return ProviderName
}

// Geocode looks the address up in the place table.
func (m *Maps) Geocode(ctx context.Context, address string) (domain.GeoPoint, error) {
	if err := m.enter(ctx, OpGeocode, "%s", address); err != nil {
		return domain.GeoPoint{}, err
	}
	p, ok := m.places[placeKey(address)]
	if !ok {
		return domain.GeoPoint{}, fmt.Errorf("%w: no match for %q", domain.ErrGeocodeFailed, address)
	}
	return p, nil
}

// Route returns the fixed route if one is set, otherwise a straight-line
// route between two known places at an average speed for the mode.
func (m *Maps) Route(ctx context.Context, origin, destination, mode string) (domain.RouteInfo, error) {
	if err := m.enter(ctx, OpRoute, "%s|%s|%s", origin, destination, mode); err != nil {
		return domain.RouteInfo{}, err
	}
	if mode == "" {
		mode = "driving"
	}
	if r, ok := m.routes[routeInfoKey(origin, destination, mode)]; ok {
		return r, nil
	}

	from, okFrom := m.places[placeKey(origin)]
	to, okTo := m.places[placeKey(destination)]
	if !okFrom || !okTo {
		return domain.RouteInfo{}, fmt.Errorf("%w: no route from %q to %q", domain.ErrGeocodeFailed, origin, destination)
	}
	speed, ok := travelSpeedsKmh[mode]
	if !ok {
		return domain.RouteInfo{}, domain.WrapInvalidRequest("unsupported travel mode %q", mode)
	}

	km := domain.DistanceKm(from, to)
	travel := time.Duration(km / speed * float64(time.Hour)).Round(time.Minute)
	return domain.RouteInfo{
		Distance: fmt.Sprintf("%.0f km", km),
		Duration: humanDuration(travel),
		Polyline: domain.EncodePolyline([]domain.GeoPoint{from, to}),
	}, nil
}

// PlacesNearby returns the places registered for placeType.
func (m *Maps) PlacesNearby(ctx context.Context, point domain.GeoPoint, placeType string) ([]domain.Place, error) {
	if err := m.enter(ctx, OpPlacesNearby, "%s:%s", point, placeType); err != nil {
		return nil, err
	}
	result := make([]domain.Place, 0, len(m.pois[placeType]))
	result = append(result, m.pois[placeType]...)
	return result, nil
}

func placeKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func routeInfoKey(origin, destination, mode string) string {
	if mode == "" {
		mode = "driving"
	}
	return placeKey(origin) + "|" + placeKey(destination) + "|" + mode
}

// humanDuration formats like the directions API, e.g. "6 hours 12 mins".
func humanDuration(d time.Duration) string {
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	unit := func(n int, singular string) string {
		if n == 1 {
			return fmt.Sprintf("%d %s", n, singular)
		}
		return fmt.Sprintf("%d %ss", n, singular)
	}
	switch {
	case h == 0:
		return unit(m, "min")
	case m == 0:
		return unit(h, "hour")
	default:
		return unit(h, "hour") + " " + unit(m, "min")
	}
}

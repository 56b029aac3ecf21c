package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/tripcompass/trip-info-service/internal/domain"
	"github.com/tripcompass/trip-info-service/internal/infrastructure/executor"
	"github.com/tripcompass/trip-info-service/internal/infrastructure/logger"
)

// Travel modes accepted by Route.
var travelModes = map[string]struct{}{
	"driving":   {},
	"walking":   {},
	"bicycling": {},
	"transit":   {},
}

// DefaultTravelMode is used when Route gets no mode.
const DefaultTravelMode = "driving"

// MapsUseCase covers routes, places and flight paths.
type MapsUseCase interface {
	Route(ctx context.Context, origin, destination, mode string) (domain.RouteInfo, error)
	PlacesNearby(ctx context.Context, point domain.GeoPoint, placeType string) ([]domain.Place, error)
	FlightPath(ctx context.Context, startPlace, endPlace string) (*domain.FlightPath, error)
}

type mapsUseCase struct {
	maps     domain.MapsProvider
	airports *AirportResolver
	exec     *executor.Executor
	log      *logger.Logger
}

// NewMapsUseCase creates a MapsUseCase.
func NewMapsUseCase(maps domain.MapsProvider, airports *AirportResolver, exec *executor.Executor, log *logger.Logger) MapsUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &mapsUseCase{maps: maps, airports: airports, exec: exec, log: log}
}

// Route returns the route summary between two places.
func (uc *mapsUseCase) Route(ctx context.Context, origin, destination, mode string) (domain.RouteInfo, error) {
	origin, destination = strings.TrimSpace(origin), strings.TrimSpace(destination)
	if origin == "" || destination == "" {
		return domain.RouteInfo{}, domain.WrapInvalidRequest("origin and destination are required")
	}
	mode = strings.ToLower(strings.TrimSpace(mode))
	if mode == "" {
		mode = DefaultTravelMode
	}
	if _, ok := travelModes[mode]; !ok {
		return domain.RouteInfo{}, domain.WrapInvalidRequest("unsupported travel mode %q", mode)
	}

	return executor.Execute(ctx, uc.exec, "route", func(ctx context.Context) (domain.RouteInfo, error) {
		return uc.maps.Route(ctx, origin, destination, mode)
	})
}

// PlacesNearby lists places of a type around point.
func (uc *mapsUseCase) PlacesNearby(ctx context.Context, point domain.GeoPoint, placeType string) ([]domain.Place, error) {
	if err := point.Validate(); err != nil {
		return nil, err
	}
	placeType = strings.TrimSpace(placeType)
	if placeType == "" {
		return nil, domain.WrapInvalidRequest("type is required")
	}
	return executor.Execute(ctx, uc.exec, "places-nearby", func(ctx context.Context) ([]domain.Place, error) {
		return uc.maps.PlacesNearby(ctx, point, placeType)
	})
}

// FlightPath geocodes both places, resolves their nearest airports and
// encodes the straight line between the airports.
func (uc *mapsUseCase) FlightPath(ctx context.Context, startPlace, endPlace string) (*domain.FlightPath, error) {
	startPlace, endPlace = strings.TrimSpace(startPlace), strings.TrimSpace(endPlace)
	if startPlace == "" || endPlace == "" {
		return nil, domain.WrapInvalidRequest("startPlace and endPlace are required")
	}

	start, err := uc.airportFor(ctx, startPlace)
	if err != nil {
		return nil, err
	}
	end, err := uc.airportFor(ctx, endPlace)
	if err != nil {
		return nil, err
	}

	logger.FromContext(ctx, uc.log).Debug().
		Str("start_airport", start.IataCode.String()).
		Str("end_airport", end.IataCode.String()).
		Msg("flight path resolved")

	return &domain.FlightPath{
		StartAirport: start.IataCode,
		EndAirport:   end.IataCode,
		Polyline:     domain.EncodePolyline([]domain.GeoPoint{start.GeoCode, end.GeoCode}),
		DistanceKm:   domain.DistanceKm(start.GeoCode, end.GeoCode),
	}, nil
}

func (uc *mapsUseCase) airportFor(ctx context.Context, place string) (domain.Airport, error) {
	point, err := executor.Execute(ctx, uc.exec, "geocode", func(ctx context.Context) (domain.GeoPoint, error) {
		return uc.maps.Geocode(ctx, place)
	})
	if err != nil {
		return domain.Airport{}, geocodeFailure(place, err)
	}

	airport, ok, err := uc.airports.NearestAirportDetail(ctx, point, 0)
	if err != nil {
		return domain.Airport{}, airportFailure(place, err)
	}
	if !ok {
		return domain.Airport{}, fmt.Errorf("%w: no airport near %q", domain.ErrNoAirportFound, place)
	}
	return airport, nil
}

package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/tripcompass/trip-info-service/internal/domain"
	"github.com/tripcompass/trip-info-service/internal/infrastructure/executor"
	"github.com/tripcompass/trip-info-service/internal/infrastructure/logger"
)

// TripInfoRequest asks for airports, hotels and flights for a trip.
type TripInfoRequest struct {
	Destination domain.GeoPoint
	Origin      domain.OriginSpec
	CheckIn     string
	CheckOut    string
	Adults      int
	Rooms       int
}

// Validate checks the request fields.
func (r TripInfoRequest) Validate() error {
	if err := r.Destination.Validate(); err != nil {
		return err
	}
	switch r.Origin.Kind {
	case domain.OriginAirport:
		if !domain.IsAirportCode(r.Origin.Code.String()) {
			return domain.WrapInvalidRequest("origin must be a valid 3-letter IATA code, got %q", r.Origin.Code)
		}
	case domain.OriginPlace:
		if strings.TrimSpace(r.Origin.Place) == "" {
			return domain.WrapInvalidRequest("origin is required")
		}
	case domain.OriginCoordinates:
		if err := r.Origin.Point.Validate(); err != nil {
			return err
		}
	default:
		return domain.WrapInvalidRequest("origin or origin coordinates are required")
	}
	return r.hotelQuery(0).Validate()
}

func (r TripInfoRequest) hotelQuery(radiusKm int) domain.HotelQuery {
	return domain.HotelQuery{
		Point:    r.Destination,
		CheckIn:  r.CheckIn,
		CheckOut: r.CheckOut,
		Adults:   r.Adults,
		Rooms:    r.Rooms,
		RadiusKm: float64(radiusKm),
	}
}

// TripInfoUseCase composes airports, hotels and flights into one result.
type TripInfoUseCase interface {
	GetTripInfo(ctx context.Context, req TripInfoRequest) (*domain.TripInfoResult, error)
}

type tripInfoUseCase struct {
	airports *AirportResolver
	flights  *FlightFinder
	hotels   *HotelFinder
	maps     domain.MapsProvider
	exec     *executor.Executor
	opts     Options
	log      *logger.Logger
}

// NewTripInfoUseCase creates a TripInfoUseCase.
func NewTripInfoUseCase(airports *AirportResolver, flights *FlightFinder, hotels *HotelFinder, maps domain.MapsProvider, exec *executor.Executor, opts *Options, log *logger.Logger) TripInfoUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &tripInfoUseCase{
		airports: airports,
		flights:  flights,
		hotels:   hotels,
		maps:     maps,
		exec:     exec,
		opts:     resolveOptions(opts),
		log:      log,
	}
}

// GetTripInfo resolves both airports, then fetches hotels and flights
// concurrently. Airport resolution failures are fatal; hotel and flight
// failures degrade to empty lists.
func (uc *tripInfoUseCase) GetTripInfo(ctx context.Context, req TripInfoRequest) (*domain.TripInfoResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	log := logger.FromContext(ctx, uc.log).WithOperation("trip-info")
	ctx = logger.ToContext(ctx, log)

	destination, err := uc.resolveDestination(ctx, req.Destination)
	if err != nil {
		return nil, err
	}
	origin, originPoint, err := uc.resolveOrigin(ctx, req.Origin)
	if err != nil {
		return nil, err
	}
	log.Info().
		Str("origin", origin.String()).
		Str("destination", destination.String()).
		Str("check_in", req.CheckIn).
		Msg("airports resolved")

	result := &domain.TripInfoResult{
		Coordinates:        req.Destination,
		OriginAirport:      origin,
		DestinationAirport: destination,
		Hotels:             []domain.HotelOfferSummary{},
		Flights:            []domain.FlightOfferSummary{},
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		hotels, err := uc.collectHotels(gctx, req)
		if err != nil {
			return err
		}
		result.Hotels = hotels
		return nil
	})
	g.Go(func() error {
		found, err := uc.flights.SearchWithFallback(gctx, FallbackRequest{
			Origin:           origin,
			Destination:      destination,
			OriginPoint:      originPoint,
			DestinationPoint: &req.Destination,
			DepartureDate:    req.CheckIn,
			Adults:           req.Adults,
		})
		if err != nil {
			if isCancellation(err) {
				return err
			}
			log.Warn().Err(err).Msg("flight search failed, returning no flights")
			return nil
		}
		result.OriginAirport = found.UsedOrigin
		result.DestinationAirport = found.UsedDestination
		result.Flights = domain.SummarizeOffers(found.Offers, uc.opts.FlightsPerTrip)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	log.Info().
		Int("hotels", len(result.Hotels)).
		Int("flights", len(result.Flights)).
		Str("origin", result.OriginAirport.String()).
		Str("destination", result.DestinationAirport.String()).
		Msg("trip info assembled")
	return result, nil
}

// resolveDestination uses the nearest airport, then the first of a few
// nearby candidates.
func (uc *tripInfoUseCase) resolveDestination(ctx context.Context, point domain.GeoPoint) (domain.AirportCode, error) {
	code, err := uc.airports.NearestAirport(ctx, point)
	if err != nil {
		return "", airportFailure("destination", err)
	}
	if code.Resolved() {
		return code, nil
	}

	logger.FromContext(ctx, uc.log).Warn().Msg("no destination airport found, trying nearby airports")
	candidates, err := uc.airports.NearbyAirports(ctx, point, uc.opts.InitialAirportRadiusKm, uc.opts.AlternateLimit)
	if err != nil {
		return "", airportFailure("destination", err)
	}
	if len(candidates) == 0 {
		return "", fmt.Errorf("%w: no destination airport within %dkm", domain.ErrNoAirportFound, uc.opts.InitialAirportRadiusKm)
	}
	return candidates[0], nil
}

// resolveOrigin returns the origin airport and, when known, the point used
// to look up alternate origins.
func (uc *tripInfoUseCase) resolveOrigin(ctx context.Context, origin domain.OriginSpec) (domain.AirportCode, *domain.GeoPoint, error) {
	var point domain.GeoPoint
	switch origin.Kind {
	case domain.OriginAirport:
		return origin.Code, nil, nil
	case domain.OriginPlace:
		p, err := executor.Execute(ctx, uc.exec, "geocode", func(ctx context.Context) (domain.GeoPoint, error) {
			return uc.maps.Geocode(ctx, origin.Place)
		})
		if err != nil {
			return "", nil, geocodeFailure(origin.Place, err)
		}
		point = p
	default:
		point = origin.Point
	}

	code, err := uc.airports.NearestAirport(ctx, point)
	if err != nil {
		return "", nil, airportFailure("origin", err)
	}
	if !code.Resolved() {
		return "", nil, fmt.Errorf("%w: no origin airport near %s", domain.ErrNoAirportFound, point)
	}
	return code, &point, nil
}

// collectHotels lists hotels near the destination and gathers offers from
// the first ones that have any. Failures other than cancellation yield no
// hotels.
func (uc *tripInfoUseCase) collectHotels(ctx context.Context, req TripInfoRequest) ([]domain.HotelOfferSummary, error) {
	log := logger.FromContext(ctx, uc.log)
	query := req.hotelQuery(uc.opts.HotelGeoRadiusKm)

	hotels, err := uc.hotels.HotelsNear(ctx, query)
	if err != nil {
		if isCancellation(err) {
			return nil, err
		}
		log.Warn().Err(err).Msg("hotel search failed, returning no hotels")
		return []domain.HotelOfferSummary{}, nil
	}

	summaries, err := uc.hotels.CollectOffers(ctx, query, hotels, uc.opts.HotelsPerTrip, false)
	if err != nil {
		if isCancellation(err) {
			return nil, err
		}
		log.Warn().Err(err).Msg("hotel offers failed, returning no hotels")
		return []domain.HotelOfferSummary{}, nil
	}
	return summaries, nil
}

// airportFailure reports a failed airport lookup as ErrNoAirportFound.
// Cancellation and credential errors keep their own identity.
func airportFailure(side string, err error) error {
	if isCancellation(err) || errors.Is(err, domain.ErrAuth) || errors.Is(err, domain.ErrProviderNotConfigured) {
		return err
	}
	return fmt.Errorf("%w: %s: %w", domain.ErrNoAirportFound, side, err)
}

// geocodeFailure reports a failed geocode as ErrGeocodeFailed.
func geocodeFailure(place string, err error) error {
	if isCancellation(err) || errors.Is(err, domain.ErrGeocodeFailed) || errors.Is(err, domain.ErrProviderNotConfigured) {
		return err
	}
	return fmt.Errorf("%w: %q: %w", domain.ErrGeocodeFailed, place, err)
}

func isCancellation(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

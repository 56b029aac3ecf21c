package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/tripcompass/trip-info-service/internal/domain"
	"github.com/tripcompass/trip-info-service/internal/infrastructure/executor"
	"github.com/tripcompass/trip-info-service/internal/infrastructure/logger"
)

// FallbackRequest is a flight search between two resolved airports. The
// points locate the alternate airports; a nil point means no alternates
// are looked up on that side.
type FallbackRequest struct {
	Origin           domain.AirportCode
	Destination      domain.AirportCode
	OriginPoint      *domain.GeoPoint
	DestinationPoint *domain.GeoPoint
	DepartureDate    string
	ReturnDate       string
	Adults           int
}

// FallbackResult holds the offers and the airport pair that produced them.
type FallbackResult struct {
	Offers          []domain.FlightOffer
	UsedOrigin      domain.AirportCode
	UsedDestination domain.AirportCode
}

// FlightFinder searches flights and, when the direct search is empty,
// tries alternate airports near both ends.
type FlightFinder struct {
	provider domain.FlightsStaysProvider
	exec     *executor.Executor
	airports *AirportResolver
	opts     Options
	log      *logger.Logger
}

// NewFlightFinder creates a FlightFinder.
func NewFlightFinder(provider domain.FlightsStaysProvider, exec *executor.Executor, airports *AirportResolver, opts *Options, log *logger.Logger) *FlightFinder {
	if log == nil {
		log = logger.Nop()
	}
	return &FlightFinder{provider: provider, exec: exec, airports: airports, opts: resolveOptions(opts), log: log}
}

// Search runs one flight search through the executor.
func (f *FlightFinder) Search(ctx context.Context, search domain.FlightSearch) ([]domain.FlightOffer, error) {
	return executor.Execute(ctx, f.exec, "flight-offers", func(ctx context.Context) ([]domain.FlightOffer, error) {
		return f.provider.SearchFlights(ctx, search)
	})
}

// SearchWithFallback tries the direct pair, then every alternate pair with
// the origin in the outer loop, skipping the direct pair, and stops at the
// first pair with offers. Per-pair failures count as no offers. An error is
// returned only when every attempted search failed.
func (f *FlightFinder) SearchWithFallback(ctx context.Context, req FallbackRequest) (FallbackResult, error) {
	log := logger.FromContext(ctx, f.log)
	result := FallbackResult{UsedOrigin: req.Origin, UsedDestination: req.Destination}

	attempts, failures := 0, 0
	var lastErr error
	try := func(origin, destination domain.AirportCode) []domain.FlightOffer {
		attempts++
		offers, err := f.Search(ctx, domain.FlightSearch{
			Origin:        origin,
			Destination:   destination,
			DepartureDate: req.DepartureDate,
			ReturnDate:    req.ReturnDate,
			Adults:        req.Adults,
		})
		if err != nil {
			failures++
			lastErr = err
			log.Debug().Err(err).Str("origin", origin.String()).Str("destination", destination.String()).Msg("flight search failed for pair")
			return nil
		}
		return offers
	}

	if offers := try(req.Origin, req.Destination); len(offers) > 0 {
		result.Offers = offers
		return result, nil
	}
	if ctx.Err() != nil {
		return result, ctx.Err()
	}

	log.Warn().Str("origin", req.Origin.String()).Str("destination", req.Destination.String()).Msg("no direct flights, trying nearby airports")
	origins := f.alternates(ctx, req.OriginPoint, req.Origin)
	destinations := f.alternates(ctx, req.DestinationPoint, req.Destination)

	for _, pair := range pairs(origins, destinations) {
		if pair[0] == req.Origin && pair[1] == req.Destination {
			continue
		}
		if ctx.Err() != nil {
			return result, ctx.Err()
		}
		if offers := try(pair[0], pair[1]); len(offers) > 0 {
			log.Info().Str("origin", pair[0].String()).Str("destination", pair[1].String()).Msg("fallback flight found")
			return FallbackResult{Offers: offers, UsedOrigin: pair[0], UsedDestination: pair[1]}, nil
		}
	}

	if failures == attempts && lastErr != nil {
		return result, lastErr
	}
	result.Offers = []domain.FlightOffer{}
	return result, nil
}

// alternates returns the airports near point. Without a point, or when the
// lookup fails, the only candidate is the airport itself.
func (f *FlightFinder) alternates(ctx context.Context, point *domain.GeoPoint, self domain.AirportCode) []domain.AirportCode {
	if point == nil {
		return []domain.AirportCode{self}
	}
	codes, err := f.airports.NearbyAirports(ctx, *point, f.opts.AlternateRadiusKm, f.opts.AlternateLimit)
	if err != nil {
		logger.FromContext(ctx, f.log).Warn().Err(err).Str("airport", self.String()).Msg("alternate airport lookup failed")
		return []domain.AirportCode{self}
	}
	return codes
}

// pairs lists the cartesian product, origin outer.
func pairs(origins, destinations []domain.AirportCode) [][2]domain.AirportCode {
	out := make([][2]domain.AirportCode, 0, len(origins)*len(destinations))
	for _, o := range origins {
		for _, d := range destinations {
			out = append(out, [2]domain.AirportCode{o, d})
		}
	}
	return out
}

// FlightSearchUseCase is the direct flight search with carrier names.
type FlightSearchUseCase interface {
	Search(ctx context.Context, search domain.FlightSearch) (*domain.FlightSearchResult, error)
}

type flightSearchUseCase struct {
	finder   *FlightFinder
	provider domain.FlightsStaysProvider
	exec     *executor.Executor
	log      *logger.Logger
}

// NewFlightSearchUseCase creates a FlightSearchUseCase.
func NewFlightSearchUseCase(finder *FlightFinder, provider domain.FlightsStaysProvider, exec *executor.Executor, log *logger.Logger) FlightSearchUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &flightSearchUseCase{finder: finder, provider: provider, exec: exec, log: log}
}

// Search returns every offer for the route, flattened and deduplicated.
// Carrier names are added when the lookup succeeds.
func (uc *flightSearchUseCase) Search(ctx context.Context, search domain.FlightSearch) (*domain.FlightSearchResult, error) {
	start := time.Now()
	search.SetDefaults()
	if err := search.Validate(); err != nil {
		return nil, err
	}

	offers, err := uc.finder.Search(ctx, search)
	if err != nil {
		return nil, err
	}
	summaries := domain.SummarizeOffers(offers, 0)
	uc.addCarrierNames(ctx, summaries)

	result := domain.NewFlightSearchResult(search, summaries, search.Origin, search.Destination, time.Since(start).Milliseconds())
	return &result, nil
}

func (uc *flightSearchUseCase) addCarrierNames(ctx context.Context, summaries []domain.FlightOfferSummary) {
	codes := domain.CarrierCodes(summaries)
	if len(codes) == 0 {
		return
	}
	names, err := executor.Execute(ctx, uc.exec, "airline-names", func(ctx context.Context) (map[string]string, error) {
		return uc.provider.AirlineNames(ctx, codes)
	})
	if err != nil {
		if !errors.Is(err, context.Canceled) {
			logger.FromContext(ctx, uc.log).Warn().Err(err).Msg("airline name lookup failed")
		}
		return
	}
	for i := range summaries {
		summaries[i].CarrierName = names[summaries[i].Carrier]
	}
}

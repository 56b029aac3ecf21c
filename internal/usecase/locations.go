package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/tripcompass/trip-info-service/internal/domain"
	"github.com/tripcompass/trip-info-service/internal/infrastructure/executor"
	"github.com/tripcompass/trip-info-service/internal/infrastructure/logger"
)

// LocationUseCase covers keyword location search and nearby airports.
type LocationUseCase interface {
	SearchLocations(ctx context.Context, keyword string) ([]domain.Location, error)
	NearbyAirports(ctx context.Context, point domain.GeoPoint, radiusKm, limit int) ([]domain.Airport, error)
}

type locationUseCase struct {
	provider domain.FlightsStaysProvider
	airports *AirportResolver
	exec     *executor.Executor
	opts     Options
	log      *logger.Logger
}

// NewLocationUseCase creates a LocationUseCase.
func NewLocationUseCase(provider domain.FlightsStaysProvider, airports *AirportResolver, exec *executor.Executor, opts *Options, log *logger.Logger) LocationUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &locationUseCase{provider: provider, airports: airports, exec: exec, opts: resolveOptions(opts), log: log}
}

// SearchLocations returns airports and cities matching keyword.
func (uc *locationUseCase) SearchLocations(ctx context.Context, keyword string) ([]domain.Location, error) {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return nil, domain.WrapInvalidRequest("keyword is required")
	}
	subTypes := []string{domain.SubTypeAirport, domain.SubTypeCity}
	return executor.Execute(ctx, uc.exec, "location-search", func(ctx context.Context) ([]domain.Location, error) {
		return uc.provider.SearchLocations(ctx, keyword, subTypes, uc.opts.LocationLimit)
	})
}

// NearbyAirports lists airports within radiusKm. When there are none it
// widens from radiusKm like NearestAirport and returns that single airport.
func (uc *locationUseCase) NearbyAirports(ctx context.Context, point domain.GeoPoint, radiusKm, limit int) ([]domain.Airport, error) {
	if err := point.Validate(); err != nil {
		return nil, err
	}
	if radiusKm <= 0 {
		radiusKm = uc.opts.NearbyAirportRadiusKm
	}
	if limit <= 0 {
		limit = uc.opts.NearbyAirportLimit
	}

	airports, err := uc.airports.NearbyAirportDetails(ctx, point, radiusKm, limit)
	if err != nil {
		return nil, err
	}
	if len(airports) > 0 {
		return airports, nil
	}

	log := logger.FromContext(ctx, uc.log)
	log.Debug().Int("radius_km", radiusKm).Msg("no nearby airports, widening search")
	code, err := uc.airports.NearestAirportFrom(ctx, point, radiusKm)
	if err != nil {
		return nil, err
	}
	if !code.Resolved() {
		return nil, fmt.Errorf("%w: no airport near %s", domain.ErrNoAirportFound, point)
	}

	details, err := uc.airports.NearbyAirportDetails(ctx, point, uc.opts.WideAirportRadiusKm, 1)
	if err != nil {
		log.Warn().Err(err).Str("airport", code.String()).Msg("airport detail lookup failed")
	}
	for _, a := range details {
		if a.IataCode == code {
			return []domain.Airport{a}, nil
		}
	}
	return []domain.Airport{{IataCode: code}}, nil
}

package usecase

import (
	"context"

	"github.com/tripcompass/trip-info-service/internal/domain"
	"github.com/tripcompass/trip-info-service/internal/infrastructure/executor"
	"github.com/tripcompass/trip-info-service/internal/infrastructure/logger"
)

// AirportResolver turns points into airport codes.
type AirportResolver struct {
	provider domain.FlightsStaysProvider
	exec     *executor.Executor
	opts     Options
	log      *logger.Logger
}

// NewAirportResolver creates an AirportResolver.
func NewAirportResolver(provider domain.FlightsStaysProvider, exec *executor.Executor, opts *Options, log *logger.Logger) *AirportResolver {
	if log == nil {
		log = logger.Nop()
	}
	return &AirportResolver{provider: provider, exec: exec, opts: resolveOptions(opts), log: log}
}

// NearestAirport looks for the closest airport, doubling the radius from
// the initial radius on every miss and stopping once it exceeds the max.
// It returns the empty code, not an error, when nothing is in range.
func (r *AirportResolver) NearestAirport(ctx context.Context, point domain.GeoPoint) (domain.AirportCode, error) {
	return r.NearestAirportFrom(ctx, point, r.opts.InitialAirportRadiusKm)
}

// NearestAirportFrom is NearestAirport with an explicit initial radius.
func (r *AirportResolver) NearestAirportFrom(ctx context.Context, point domain.GeoPoint, initialRadiusKm int) (domain.AirportCode, error) {
	airport, ok, err := r.NearestAirportDetail(ctx, point, initialRadiusKm)
	if err != nil || !ok {
		return "", err
	}
	return airport.IataCode, nil
}

// NearestAirportDetail is NearestAirportFrom returning the whole airport.
// The boolean is false when nothing is in range.
func (r *AirportResolver) NearestAirportDetail(ctx context.Context, point domain.GeoPoint, initialRadiusKm int) (domain.Airport, bool, error) {
	log := logger.FromContext(ctx, r.log)
	if initialRadiusKm <= 0 {
		initialRadiusKm = r.opts.InitialAirportRadiusKm
	}

	for radius := initialRadiusKm; radius <= r.opts.MaxAirportRadiusKm; radius *= 2 {
		airports, err := r.nearby(ctx, point, radius, 1)
		if err != nil {
			return domain.Airport{}, false, err
		}
		for _, a := range airports {
			if a.IataCode.Resolved() {
				log.Debug().Str("airport", a.IataCode.String()).Int("radius_km", radius).Msg("nearest airport resolved")
				return a, true, nil
			}
		}
		log.Debug().Int("radius_km", radius).Msg("no airport in radius, widening")
	}
	return domain.Airport{}, false, nil
}

// NearbyAirports returns up to limit airport codes within radiusKm, closest first.
func (r *AirportResolver) NearbyAirports(ctx context.Context, point domain.GeoPoint, radiusKm, limit int) ([]domain.AirportCode, error) {
	airports, err := r.nearby(ctx, point, radiusKm, limit)
	if err != nil {
		return nil, err
	}
	return domain.AirportCodes(airports), nil
}

// NearbyAirportDetails is NearbyAirports with names and coordinates.
func (r *AirportResolver) NearbyAirportDetails(ctx context.Context, point domain.GeoPoint, radiusKm, limit int) ([]domain.Airport, error) {
	return r.nearby(ctx, point, radiusKm, limit)
}

func (r *AirportResolver) nearby(ctx context.Context, point domain.GeoPoint, radiusKm, limit int) ([]domain.Airport, error) {
	return executor.Execute(ctx, r.exec, "nearest-airports", func(ctx context.Context) ([]domain.Airport, error) {
		return r.provider.NearestAirports(ctx, point, radiusKm, limit)
	})
}

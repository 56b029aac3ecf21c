package usecase

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/tripcompass/trip-info-service/internal/cache"
	"github.com/tripcompass/trip-info-service/internal/domain"
	"github.com/tripcompass/trip-info-service/internal/infrastructure/executor"
	"github.com/tripcompass/trip-info-service/internal/infrastructure/logger"
)

// Result cache namespaces.
const (
	HotelsCacheNamespace      = "hotels-by-geo"
	HotelOffersCacheNamespace = "hotel-offers-by-geo"
)

// HotelFinder lists hotels near a point and collects their offers.
type HotelFinder struct {
	provider domain.FlightsStaysProvider
	exec     *executor.Executor
	hotels   *cache.ResultCache[[]domain.Hotel]
	log      *logger.Logger
}

// NewHotelFinder creates a HotelFinder. Hotel lists are memoized in hotels.
func NewHotelFinder(provider domain.FlightsStaysProvider, exec *executor.Executor, hotels *cache.ResultCache[[]domain.Hotel], log *logger.Logger) *HotelFinder {
	if log == nil {
		log = logger.Nop()
	}
	return &HotelFinder{provider: provider, exec: exec, hotels: hotels, log: log}
}

// HotelsNear lists the hotels within query.RadiusKm of query.Point.
func (h *HotelFinder) HotelsNear(ctx context.Context, query domain.HotelQuery) ([]domain.Hotel, error) {
	radius := int(query.RadiusKm)
	hotels, hit, err := h.hotels.GetOrFetch(ctx, query, func(ctx context.Context) ([]domain.Hotel, error) {
		return executor.Execute(ctx, h.exec, "hotels-by-geo", func(ctx context.Context) ([]domain.Hotel, error) {
			return h.provider.SearchHotelsByGeo(ctx, query.Point, radius)
		})
	})
	if err != nil {
		return nil, err
	}
	logger.FromContext(ctx, h.log).Debug().Bool("cache_hit", hit).Int("hotels", len(hotels)).Msg("hotels near point")
	return hotels, nil
}

// CollectOffers fetches offers hotel by hotel, in order, until limit hotels
// with offers are found. Hotels without offers or whose lookup fails are
// skipped. With abortOnRateLimit a 429 stops the walk with ErrRateLimited.
func (h *HotelFinder) CollectOffers(ctx context.Context, query domain.HotelQuery, hotels []domain.Hotel, limit int, abortOnRateLimit bool) ([]domain.HotelOfferSummary, error) {
	log := logger.FromContext(ctx, h.log)
	result := make([]domain.HotelOfferSummary, 0, limit)

	for _, hotel := range hotels {
		if len(result) >= limit {
			break
		}
		if err := ctx.Err(); err != nil {
			return result, err
		}
		if hotel.HotelID == "" {
			continue
		}

		offerQuery := query.OfferQuery(hotel.HotelID)
		offers, err := executor.Execute(ctx, h.exec, "hotel-offers", func(ctx context.Context) ([]domain.HotelOffer, error) {
			return h.provider.HotelOffers(ctx, offerQuery)
		})
		if err != nil {
			if abortOnRateLimit && errors.Is(err, domain.ErrRateLimited) {
				return result, domain.ErrRateLimited
			}
			if errors.Is(err, context.Canceled) {
				return result, err
			}
			if isBadRequest(err) {
				log.Debug().Str("hotel_id", hotel.HotelID).Msg("hotel unavailable, skipping")
			} else {
				log.Warn().Err(err).Str("hotel_id", hotel.HotelID).Msg("hotel offers failed, skipping")
			}
			continue
		}
		if len(offers) == 0 {
			continue
		}
		result = append(result, domain.SummarizeHotel(hotel, offers, query.Point))
	}
	return result, nil
}

func isBadRequest(err error) bool {
	var upstream *domain.UpstreamError
	return errors.As(err, &upstream) && upstream.Code == http.StatusBadRequest
}

// HotelSearchUseCase searches bookable hotels near a point.
type HotelSearchUseCase interface {
	SearchNearby(ctx context.Context, query domain.HotelQuery) (*domain.HotelSearchResult, error)
}

type hotelSearchUseCase struct {
	finder   *HotelFinder
	provider domain.FlightsStaysProvider
	exec     *executor.Executor
	offers   *cache.ResultCache[[]domain.HotelOfferSummary]
	opts     Options
	log      *logger.Logger
}

// NewHotelSearchUseCase creates a HotelSearchUseCase. Single-call results
// are memoized in offers.
func NewHotelSearchUseCase(finder *HotelFinder, provider domain.FlightsStaysProvider, exec *executor.Executor, offers *cache.ResultCache[[]domain.HotelOfferSummary], opts *Options, log *logger.Logger) HotelSearchUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &hotelSearchUseCase{finder: finder, provider: provider, exec: exec, offers: offers, opts: resolveOptions(opts), log: log}
}

// SearchNearby tries the single-call geo search first. When it yields
// nothing it lists hotels by geocode and fetches offers per hotel.
func (uc *hotelSearchUseCase) SearchNearby(ctx context.Context, query domain.HotelQuery) (*domain.HotelSearchResult, error) {
	start := time.Now()
	log := logger.FromContext(ctx, uc.log)

	if query.RadiusKm == 0 {
		query.RadiusKm = uc.opts.HotelRadiusKm
	}
	if err := query.Validate(); err != nil {
		return nil, err
	}

	summaries, hit, err := uc.offers.GetOrFetch(ctx, query, func(ctx context.Context) ([]domain.HotelOfferSummary, error) {
		return executor.Execute(ctx, uc.exec, "hotel-offers-by-geo", func(ctx context.Context) ([]domain.HotelOfferSummary, error) {
			return uc.provider.SearchHotelOffersByGeo(ctx, query, uc.opts.MaxHotelResults)
		})
	})
	switch {
	case err == nil && len(summaries) > 0:
		log.Debug().Bool("cache_hit", hit).Int("hotels", len(summaries)).Msg("nearby hotels from geo offers")
		result := domain.NewHotelSearchResult(summaries, domain.SourceFast, time.Since(start).Milliseconds())
		return &result, nil
	case errors.Is(err, context.Canceled):
		return nil, err
	case err != nil:
		log.Warn().Err(err).Msg("geo hotel offers failed, falling back to per-hotel search")
	default:
		log.Debug().Msg("geo hotel offers empty, falling back to per-hotel search")
	}

	geoQuery := query
	geoQuery.RadiusKm = float64(uc.opts.HotelGeoRadiusKm)
	hotels, err := uc.finder.HotelsNear(ctx, geoQuery)
	if err != nil {
		return nil, err
	}

	collected, err := uc.finder.CollectOffers(ctx, query, hotels, uc.opts.LegacyHotelLimit, true)
	if err != nil {
		return nil, err
	}
	if len(collected) == 0 {
		return nil, domain.ErrNoHotelOffers
	}

	result := domain.NewHotelSearchResult(collected, domain.SourceLegacy, time.Since(start).Milliseconds())
	return &result, nil
}

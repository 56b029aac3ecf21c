package usecase

import (
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/tripcompass/trip-info-service/internal/cache"
	"github.com/tripcompass/trip-info-service/internal/domain"
	"github.com/tripcompass/trip-info-service/internal/infrastructure/executor"
)

var (
	paris   = domain.GeoPoint{Latitude: 48.8566, Longitude: 2.3522}
	newYork = domain.GeoPoint{Latitude: 40.7128, Longitude: -74.0060}
)

// testExecutor runs single attempts with a short timeout so call counts
// in expectations stay exact.
func testExecutor() *executor.Executor {
	return executor.New(executor.Config{
		CallTimeout: time.Second,
		MaxRetries:  0,
		BaseDelay:   time.Millisecond,
		MaxDelay:    time.Millisecond,
		Workers:     6,
	}, nil)
}

func newMockProvider(t *testing.T) *domain.MockFlightsStaysProvider {
	ctrl := gomock.NewController(t)
	return domain.NewMockFlightsStaysProvider(ctrl)
}

func airports(codes ...domain.AirportCode) []domain.Airport {
	out := make([]domain.Airport, 0, len(codes))
	for _, c := range codes {
		out = append(out, domain.Airport{IataCode: c, Name: string(c)})
	}
	return out
}

// flightOffer builds a single-segment offer departing at departAt.
func flightOffer(id string, origin, destination domain.AirportCode, departAt, carrier string) domain.FlightOffer {
	return domain.FlightOffer{
		ID: id,
		Itineraries: []domain.Itinerary{{
			Duration: "PT8H",
			Segments: []domain.Segment{{
				Departure:   domain.SegmentPoint{IataCode: origin.String(), At: departAt},
				Arrival:     domain.SegmentPoint{IataCode: destination.String(), At: departAt},
				CarrierCode: carrier,
				Number:      "1",
			}},
		}},
		Price: domain.Price{Total: "500.00", Currency: "EUR"},
	}
}

func flightSearch(origin, destination domain.AirportCode) domain.FlightSearch {
	return domain.FlightSearch{Origin: origin, Destination: destination, DepartureDate: "2026-11-02", Adults: 1}
}

func hotel(id string, p domain.GeoPoint) domain.Hotel {
	return domain.Hotel{HotelID: id, Name: "Hotel " + id, GeoCode: &p}
}

func hotelOffers(id, total string) []domain.HotelOffer {
	return []domain.HotelOffer{{ID: id + "-1", Price: domain.Price{Total: total, Currency: "USD"}}}
}

func hotelsCache() *cache.ResultCache[[]domain.Hotel] {
	return cache.NewResultCache[[]domain.Hotel](cache.NewMemoryStore(), cache.ResultConfig{Namespace: HotelsCacheNamespace}, nil)
}

func hotelOffersCache() *cache.ResultCache[[]domain.HotelOfferSummary] {
	return cache.NewResultCache[[]domain.HotelOfferSummary](cache.NewMemoryStore(), cache.ResultConfig{Namespace: HotelOffersCacheNamespace}, nil)
}

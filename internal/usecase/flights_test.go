package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/tripcompass/trip-info-service/internal/domain"
)

func newFinder(provider domain.FlightsStaysProvider) *FlightFinder {
	ex := testExecutor()
	return NewFlightFinder(provider, ex, NewAirportResolver(provider, ex, nil, nil), nil, nil)
}

func fallbackRequest(origin, destination domain.AirportCode) FallbackRequest {
	o, d := paris, newYork
	return FallbackRequest{
		Origin:           origin,
		Destination:      destination,
		OriginPoint:      &o,
		DestinationPoint: &d,
		DepartureDate:    "2026-11-02",
		Adults:           1,
	}
}

func TestFlightFinder_SearchWithFallback(t *testing.T) {
	t.Run("direct hit skips alternates", func(t *testing.T) {
		provider := newMockProvider(t)
		offer := flightOffer("1", "CDG", "JFK", "2026-11-02T10:30:00", "AF")
		provider.EXPECT().SearchFlights(gomock.Any(), flightSearch("CDG", "JFK")).Return([]domain.FlightOffer{offer}, nil)

		result, err := newFinder(provider).SearchWithFallback(context.Background(), fallbackRequest("CDG", "JFK"))

		require.NoError(t, err)
		assert.Equal(t, []domain.FlightOffer{offer}, result.Offers)
		assert.Equal(t, domain.AirportCode("CDG"), result.UsedOrigin)
		assert.Equal(t, domain.AirportCode("JFK"), result.UsedDestination)
	})

	t.Run("walks pairs origin first and stops at the first hit", func(t *testing.T) {
		provider := newMockProvider(t)
		offer := flightOffer("1", "CDG", "LGA", "2026-11-02T10:30:00", "AF")
		gomock.InOrder(
			provider.EXPECT().SearchFlights(gomock.Any(), flightSearch("ORY", "LGA")).Return([]domain.FlightOffer{}, nil),
			provider.EXPECT().NearestAirports(gomock.Any(), paris, 100, 3).Return(airports("ORY", "CDG", "BVA"), nil),
			provider.EXPECT().NearestAirports(gomock.Any(), newYork, 100, 3).Return(airports("LGA", "JFK", "EWR"), nil),
			provider.EXPECT().SearchFlights(gomock.Any(), flightSearch("ORY", "JFK")).Return([]domain.FlightOffer{}, nil),
			provider.EXPECT().SearchFlights(gomock.Any(), flightSearch("ORY", "EWR")).
				Return(nil, domain.NewUpstreamError("amadeus", 500, "boom")),
			provider.EXPECT().SearchFlights(gomock.Any(), flightSearch("CDG", "LGA")).Return([]domain.FlightOffer{offer}, nil),
		)

		result, err := newFinder(provider).SearchWithFallback(context.Background(), fallbackRequest("ORY", "LGA"))

		require.NoError(t, err)
		assert.Len(t, result.Offers, 1)
		assert.Equal(t, domain.AirportCode("CDG"), result.UsedOrigin)
		assert.Equal(t, domain.AirportCode("LGA"), result.UsedDestination)
	})

	t.Run("no offers anywhere keeps the requested pair", func(t *testing.T) {
		provider := newMockProvider(t)
		provider.EXPECT().SearchFlights(gomock.Any(), gomock.Any()).Return([]domain.FlightOffer{}, nil).Times(4)
		provider.EXPECT().NearestAirports(gomock.Any(), paris, 100, 3).Return(airports("ORY", "CDG"), nil)
		provider.EXPECT().NearestAirports(gomock.Any(), newYork, 100, 3).Return(airports("LGA", "JFK"), nil)

		result, err := newFinder(provider).SearchWithFallback(context.Background(), fallbackRequest("ORY", "LGA"))

		require.NoError(t, err)
		assert.Empty(t, result.Offers)
		assert.NotNil(t, result.Offers)
		assert.Equal(t, domain.AirportCode("ORY"), result.UsedOrigin)
		assert.Equal(t, domain.AirportCode("LGA"), result.UsedDestination)
	})

	t.Run("every search failing returns the error", func(t *testing.T) {
		provider := newMockProvider(t)
		provider.EXPECT().SearchFlights(gomock.Any(), gomock.Any()).
			Return(nil, domain.NewUpstreamError("amadeus", 503, "down")).Times(2)
		provider.EXPECT().NearestAirports(gomock.Any(), paris, 100, 3).Return(airports("ORY"), nil)
		provider.EXPECT().NearestAirports(gomock.Any(), newYork, 100, 3).Return(airports("LGA", "JFK"), nil)

		_, err := newFinder(provider).SearchWithFallback(context.Background(), fallbackRequest("ORY", "LGA"))

		var upstream *domain.UpstreamError
		require.ErrorAs(t, err, &upstream)
		assert.Equal(t, 503, upstream.Code)
	})

	t.Run("without points only the direct pair is tried", func(t *testing.T) {
		provider := newMockProvider(t)
		provider.EXPECT().SearchFlights(gomock.Any(), flightSearch("ORY", "LGA")).Return([]domain.FlightOffer{}, nil)

		req := fallbackRequest("ORY", "LGA")
		req.OriginPoint, req.DestinationPoint = nil, nil
		result, err := newFinder(provider).SearchWithFallback(context.Background(), req)

		require.NoError(t, err)
		assert.Empty(t, result.Offers)
	})

	t.Run("failed alternate lookup falls back to the airport itself", func(t *testing.T) {
		provider := newMockProvider(t)
		offer := flightOffer("1", "ORY", "JFK", "2026-11-02T10:30:00", "AF")
		gomock.InOrder(
			provider.EXPECT().SearchFlights(gomock.Any(), flightSearch("ORY", "LGA")).Return([]domain.FlightOffer{}, nil),
			provider.EXPECT().NearestAirports(gomock.Any(), paris, 100, 3).Return(nil, errors.New("lookup failed")),
			provider.EXPECT().NearestAirports(gomock.Any(), newYork, 100, 3).Return(airports("LGA", "JFK"), nil),
			provider.EXPECT().SearchFlights(gomock.Any(), flightSearch("ORY", "JFK")).Return([]domain.FlightOffer{offer}, nil),
		)

		result, err := newFinder(provider).SearchWithFallback(context.Background(), fallbackRequest("ORY", "LGA"))

		require.NoError(t, err)
		assert.Equal(t, domain.AirportCode("JFK"), result.UsedDestination)
	})

	t.Run("cancelled context stops the cascade", func(t *testing.T) {
		provider := newMockProvider(t)
		ctx, cancel := context.WithCancel(context.Background())
		provider.EXPECT().SearchFlights(gomock.Any(), flightSearch("ORY", "LGA")).
			DoAndReturn(func(context.Context, domain.FlightSearch) ([]domain.FlightOffer, error) {
				cancel()
				return []domain.FlightOffer{}, nil
			})

		_, err := newFinder(provider).SearchWithFallback(ctx, fallbackRequest("ORY", "LGA"))

		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestPairs(t *testing.T) {
	got := pairs([]domain.AirportCode{"ORY", "CDG"}, []domain.AirportCode{"LGA", "JFK"})
	assert.Equal(t, [][2]domain.AirportCode{
		{"ORY", "LGA"}, {"ORY", "JFK"}, {"CDG", "LGA"}, {"CDG", "JFK"},
	}, got)
}

func TestFlightSearchUseCase_Search(t *testing.T) {
	newUseCase := func(provider domain.FlightsStaysProvider) FlightSearchUseCase {
		return NewFlightSearchUseCase(newFinder(provider), provider, testExecutor(), nil)
	}
	offers := []domain.FlightOffer{
		flightOffer("1", "CDG", "JFK", "2026-11-02T10:30:00", "AF"),
		flightOffer("2", "CDG", "JFK", "2026-11-02T13:00:00", "DL"),
		flightOffer("3", "CDG", "JFK", "2026-11-02T10:30:00", "AF"),
	}

	t.Run("adds carrier names", func(t *testing.T) {
		provider := newMockProvider(t)
		provider.EXPECT().SearchFlights(gomock.Any(), flightSearch("CDG", "JFK")).Return(offers, nil)
		provider.EXPECT().AirlineNames(gomock.Any(), []string{"AF", "DL"}).
			Return(map[string]string{"AF": "Air France", "DL": "Delta Air Lines"}, nil)

		result, err := newUseCase(provider).Search(context.Background(), domain.FlightSearch{
			Origin: "CDG", Destination: "JFK", DepartureDate: "2026-11-02",
		})

		require.NoError(t, err)
		require.Len(t, result.Flights, 2)
		assert.Equal(t, "Air France", result.Flights[0].CarrierName)
		assert.Equal(t, "Delta Air Lines", result.Flights[1].CarrierName)
		assert.Equal(t, 2, result.Metadata.TotalResults)
		assert.False(t, result.Metadata.Fallback)
	})

	t.Run("name lookup failure is ignored", func(t *testing.T) {
		provider := newMockProvider(t)
		provider.EXPECT().SearchFlights(gomock.Any(), gomock.Any()).Return(offers, nil)
		provider.EXPECT().AirlineNames(gomock.Any(), gomock.Any()).Return(nil, domain.NewUpstreamError("amadeus", 500, "boom"))

		result, err := newUseCase(provider).Search(context.Background(), flightSearch("CDG", "JFK"))

		require.NoError(t, err)
		assert.Len(t, result.Flights, 2)
		assert.Empty(t, result.Flights[0].CarrierName)
	})

	t.Run("no offers skips the name lookup", func(t *testing.T) {
		provider := newMockProvider(t)
		provider.EXPECT().SearchFlights(gomock.Any(), gomock.Any()).Return([]domain.FlightOffer{}, nil)

		result, err := newUseCase(provider).Search(context.Background(), flightSearch("CDG", "JFK"))

		require.NoError(t, err)
		assert.NotNil(t, result.Flights)
		assert.Empty(t, result.Flights)
	})

	t.Run("invalid search is rejected before any call", func(t *testing.T) {
		provider := newMockProvider(t)

		_, err := newUseCase(provider).Search(context.Background(), domain.FlightSearch{Origin: "CDG", Destination: "CDG", DepartureDate: "2026-11-02"})

		assert.ErrorIs(t, err, domain.ErrInvalidRequest)
	})

	t.Run("provider error propagates", func(t *testing.T) {
		provider := newMockProvider(t)
		provider.EXPECT().SearchFlights(gomock.Any(), gomock.Any()).Return(nil, domain.NewUpstreamError("amadeus", 429, "slow down"))

		_, err := newUseCase(provider).Search(context.Background(), flightSearch("CDG", "JFK"))

		assert.ErrorIs(t, err, domain.ErrRateLimited)
	})
}

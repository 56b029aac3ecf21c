package amadeus

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tripcompass/trip-info-service/internal/domain"
	"github.com/tripcompass/trip-info-service/internal/infrastructure/retry"
)

type staticTokens struct {
	token       string
	err         error
	invalidated atomic.Int32
}

func (s *staticTokens) Token(ctx context.Context) (string, error) {
	return s.token, s.err
}

func (s *staticTokens) Invalidate() {
	s.invalidated.Add(1)
}

// newTestClient starts a server running handler and returns a client wired to it.
func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *staticTokens) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	tokens := &staticTokens{token: "test-token"}
	c := NewClient(srv.URL, srv.Client())
	c.UseTokens(tokens)
	return c, tokens
}

func TestClient_Name(t *testing.T) {
	assert.Equal(t, "amadeus", NewClient("", nil).Name())
}

func TestClient_Authenticate(t *testing.T) {
	t.Run("posts client credentials", func(t *testing.T) {
		c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, tokenPath, r.URL.Path)
			assert.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))
			require.NoError(t, r.ParseForm())
			assert.Equal(t, "client_credentials", r.PostForm.Get("grant_type"))
			assert.Equal(t, "id", r.PostForm.Get("client_id"))
			assert.Equal(t, "secret", r.PostForm.Get("client_secret"))

			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"type":"amadeusOAuth2Token","access_token":"abc","token_type":"Bearer","expires_in":1799}`))
		})

		tok, err := c.Authenticate(context.Background(), "id", "secret")

		require.NoError(t, err)
		assert.Equal(t, domain.AccessToken{Value: "abc", ExpiresIn: 1799}, tok)
	})

	t.Run("rejected credentials", func(t *testing.T) {
		c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"error":"invalid_client","error_description":"Client credentials are invalid"}`))
		})

		_, err := c.Authenticate(context.Background(), "id", "wrong")

		var upstream *domain.UpstreamError
		require.ErrorAs(t, err, &upstream)
		assert.Equal(t, http.StatusUnauthorized, upstream.Code)
		assert.Contains(t, upstream.Message, "invalid_client")
	})

	t.Run("missing access token", func(t *testing.T) {
		c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"expires_in":1799}`))
		})

		_, err := c.Authenticate(context.Background(), "id", "secret")

		assert.ErrorIs(t, err, domain.ErrMalformedResponse)
		assert.True(t, retry.IsPermanent(err))
	})
}

func TestClient_NearestAirports(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, airportsPath, r.URL.Path)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		q := r.URL.Query()
		assert.Equal(t, "48.856600", q.Get("latitude"))
		assert.Equal(t, "2.352200", q.Get("longitude"))
		assert.Equal(t, "200", q.Get("radius"))
		assert.Equal(t, "1", q.Get("page[limit]"))

		w.Write([]byte(`{"data":[
			{"type":"location","subType":"AIRPORT","name":"CHARLES DE GAULLE","iataCode":"CDG",
			 "geoCode":{"latitude":49.01278,"longitude":2.55},"distance":{"value":24,"unit":"KM"}},
			{"type":"location","subType":"AIRPORT","name":"NO CODE","iataCode":""}
		]}`))
	})

	airports, err := c.NearestAirports(context.Background(), domain.GeoPoint{Latitude: 48.8566, Longitude: 2.3522}, 200, 1)

	require.NoError(t, err)
	require.Len(t, airports, 1)
	assert.Equal(t, domain.AirportCode("CDG"), airports[0].IataCode)
	assert.Equal(t, "CHARLES DE GAULLE", airports[0].Name)
	assert.InDelta(t, 49.01278, airports[0].GeoCode.Latitude, 1e-9)
	assert.InDelta(t, 24, airports[0].DistanceKm, 1e-9)
}

func TestClient_SearchLocations(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "AIRPORT,CITY", q.Get("subType"))
		assert.Equal(t, "par", q.Get("keyword"))
		assert.Equal(t, "5", q.Get("page[limit]"))

		w.Write([]byte(`{"data":[
			{"subType":"CITY","name":"PARIS","iataCode":"PAR","geoCode":{"latitude":48.85341,"longitude":2.3488}},
			{"subType":"AIRPORT","detailedName":"PARIS/FR:CHARLES DE GAULLE","iataCode":"CDG"}
		]}`))
	})

	locations, err := c.SearchLocations(context.Background(), "par", []string{domain.SubTypeAirport, domain.SubTypeCity}, 5)

	require.NoError(t, err)
	require.Len(t, locations, 2)
	assert.Equal(t, "PARIS", locations[0].Name)
	assert.Equal(t, "CITY", locations[0].SubType)
	assert.Equal(t, "PARIS/FR:CHARLES DE GAULLE", locations[1].Name)
}

func TestClient_SearchFlights(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, flightOffersPath, r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "CDG", q.Get("originLocationCode"))
		assert.Equal(t, "JFK", q.Get("destinationLocationCode"))
		assert.Equal(t, "2026-11-02", q.Get("departureDate"))
		assert.Equal(t, "2", q.Get("adults"))
		assert.Equal(t, "2026-11-09", q.Get("returnDate"))

		w.Write([]byte(`{"meta":{"count":1},"data":[{
			"id":"1",
			"itineraries":[{"duration":"PT8H30M","segments":[
				{"departure":{"iataCode":"CDG","at":"2026-11-02T10:00:00"},
				 "arrival":{"iataCode":"JFK","at":"2026-11-02T12:30:00"},
				 "carrierCode":"AF","number":"6"}
			]}],
			"price":{"currency":"EUR","total":"512.30","grandTotal":"512.30"}
		}]}`))
	})

	offers, err := c.SearchFlights(context.Background(), domain.FlightSearch{
		Origin: "CDG", Destination: "JFK", DepartureDate: "2026-11-02", ReturnDate: "2026-11-09", Adults: 2,
	})

	require.NoError(t, err)
	require.Len(t, offers, 1)
	summary, ok := offers[0].Summarize()
	require.True(t, ok)
	assert.Equal(t, "CDG", summary.Origin)
	assert.Equal(t, "JFK", summary.Destination)
	assert.Equal(t, "AF", summary.Carrier)
	assert.Equal(t, "512.30", summary.Price)
	assert.Equal(t, "EUR", summary.Currency)
}

func TestClient_SearchHotelsByGeo(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, hotelsByGeoPath, r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "10", q.Get("radius"))
		assert.Equal(t, "KM", q.Get("radiusUnit"))

		w.Write([]byte(`{"data":[
			{"hotelId":"HLNYC001","name":"HOTEL ONE","geoCode":{"latitude":40.71,"longitude":-74.0},"address":{"countryCode":"US"}},
			{"hotelId":"","name":"BROKEN"}
		]}`))
	})

	hotels, err := c.SearchHotelsByGeo(context.Background(), domain.GeoPoint{Latitude: 40.7128, Longitude: -74.006}, 10)

	require.NoError(t, err)
	require.Len(t, hotels, 1)
	assert.Equal(t, "HLNYC001", hotels[0].HotelID)
	require.NotNil(t, hotels[0].GeoCode)
	assert.InDelta(t, 40.71, hotels[0].GeoCode.Latitude, 1e-9)
	assert.Equal(t, "US", hotels[0].Address.CountryCode)
}

func TestClient_HotelOffers(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, hotelOffersPath, r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "HLNYC001", q.Get("hotelIds"))
		assert.Equal(t, "2", q.Get("adults"))
		assert.Equal(t, "1", q.Get("roomQuantity"))
		assert.Equal(t, "2026-11-02", q.Get("checkInDate"))
		assert.Empty(t, q.Get("checkOutDate"))

		w.Write([]byte(`{"data":[{"hotel":{"hotelId":"HLNYC001"},"available":true,"offers":[
			{"id":"OFF1","checkInDate":"2026-11-02","checkOutDate":"2026-11-03",
			 "room":{"type":"A1K","description":{"text":"Deluxe king"}},
			 "price":{"currency":"USD","total":"245.00"}}
		]}]}`))
	})

	offers, err := c.HotelOffers(context.Background(), domain.HotelOfferQuery{HotelID: "HLNYC001", Adults: 2, CheckIn: "2026-11-02", Rooms: 1})

	require.NoError(t, err)
	require.Len(t, offers, 1)
	assert.Equal(t, "OFF1", offers[0].ID)
	assert.Equal(t, "Deluxe king", offers[0].Description)
	assert.Equal(t, domain.Price{Total: "245.00", Currency: "USD"}, offers[0].Price)
}

func TestClient_SearchHotelOffersByGeo(t *testing.T) {
	point := domain.GeoPoint{Latitude: 40.7128, Longitude: -74.006}

	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, geoHotelOffersPath, r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "15", q.Get("radius"))
		assert.Equal(t, "DISTANCE", q.Get("sort"))
		assert.Equal(t, "true", q.Get("bestRateOnly"))
		assert.Equal(t, "FULL", q.Get("view"))
		assert.Equal(t, "25", q.Get("page[limit]"))
		assert.Equal(t, "2026-11-05", q.Get("checkOutDate"))

		w.Write([]byte(`{"data":[
			{"hotel":{"hotelId":"H1","name":"Harbor Inn","latitude":40.70,"longitude":-74.01,"rating":"4",
			  "address":{"lines":["1 Water St"],"cityName":"NEW YORK"}},
			 "offers":[{"id":"O1","price":{"currency":"USD","total":"199.00"}}]},
			{"hotel":{"hotelId":"H2"},"offers":[]}
		]}`))
	})

	summaries, err := c.SearchHotelOffersByGeo(context.Background(), domain.HotelQuery{
		Point: point, CheckIn: "2026-11-02", CheckOut: "2026-11-05", Adults: 1, Rooms: 1, RadiusKm: 15,
	}, 25)

	require.NoError(t, err)
	require.Len(t, summaries, 2)

	assert.Equal(t, "H1", summaries[0].HotelID)
	assert.Equal(t, "Harbor Inn", summaries[0].Name)
	assert.Equal(t, "1 Water St, NEW YORK", summaries[0].Address)
	assert.Equal(t, "4", summaries[0].Rating)
	assert.Equal(t, "199.00", summaries[0].PriceTotal)
	assert.InDelta(t, 40.70, summaries[0].Location.Latitude, 1e-9)

	assert.Equal(t, "Unknown Hotel", summaries[1].Name)
	assert.Equal(t, point, summaries[1].Location)
	assert.Empty(t, summaries[1].PriceTotal)
}

func TestClient_AirlineNames(t *testing.T) {
	t.Run("resolves and title-cases names", func(t *testing.T) {
		c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "AF,BA", r.URL.Query().Get("airlineCodes"))
			w.Write([]byte(`{"data":[
				{"iataCode":"AF","businessName":"AIR FRANCE","commonName":"AIR FRANCE"},
				{"iataCode":"BA","businessName":"BRITISH AIRWAYS"}
			]}`))
		})

		names, err := c.AirlineNames(context.Background(), []string{"AF", "BA"})

		require.NoError(t, err)
		assert.Equal(t, map[string]string{"AF": "Air France", "BA": "British Airways"}, names)
	})

	t.Run("no codes makes no call", func(t *testing.T) {
		var calls atomic.Int32
		c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
		})

		names, err := c.AirlineNames(context.Background(), nil)

		require.NoError(t, err)
		assert.Empty(t, names)
		assert.Zero(t, calls.Load())
	})
}

func TestClient_ErrorClassification(t *testing.T) {
	point := domain.GeoPoint{Latitude: 48.8566, Longitude: 2.3522}

	tests := []struct {
		name      string
		status    int
		body      string
		check     func(*testing.T, error)
		retryable bool
	}{
		{
			name:   "server error is a retryable upstream error",
			status: http.StatusInternalServerError,
			body:   `{"errors":[{"status":500,"code":141,"title":"SYSTEM ERROR HAS OCCURRED"}]}`,
			check: func(t *testing.T, err error) {
				var upstream *domain.UpstreamError
				require.ErrorAs(t, err, &upstream)
				assert.Equal(t, 500, upstream.Code)
				assert.Equal(t, "SYSTEM ERROR HAS OCCURRED", upstream.Message)
			},
			retryable: true,
		},
		{
			name:      "429 maps to rate limited",
			status:    http.StatusTooManyRequests,
			body:      `{"errors":[{"status":429,"code":38194,"title":"Too many requests"}]}`,
			check:     func(t *testing.T, err error) { assert.ErrorIs(t, err, domain.ErrRateLimited) },
			retryable: true,
		},
		{
			name:   "bad request keeps the detail",
			status: http.StatusBadRequest,
			body:   `{"errors":[{"status":400,"code":477,"title":"INVALID FORMAT","detail":"invalid query parameter format"}]}`,
			check: func(t *testing.T, err error) {
				assert.Contains(t, err.Error(), "INVALID FORMAT: invalid query parameter format")
			},
			retryable: true,
		},
		{
			name:   "missing data is malformed",
			status: http.StatusOK,
			body:   `{"meta":{}}`,
			check: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, domain.ErrMalformedResponse)
				assert.True(t, retry.IsPermanent(err))
			},
		},
		{
			name:   "invalid json is malformed",
			status: http.StatusOK,
			body:   `<html>`,
			check:  func(t *testing.T, err error) { assert.ErrorIs(t, err, domain.ErrMalformedResponse) },
		},
		{
			name:   "wrong data shape is malformed",
			status: http.StatusOK,
			body:   `{"data":{"iataCode":"CDG"}}`,
			check:  func(t *testing.T, err error) { assert.ErrorIs(t, err, domain.ErrMalformedResponse) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			})

			_, err := c.NearestAirports(context.Background(), point, 200, 1)

			require.Error(t, err)
			tt.check(t, err)
			assert.Equal(t, tt.retryable, domain.IsRetryable(err))
		})
	}
}

func TestClient_UnauthorizedInvalidatesToken(t *testing.T) {
	c, tokens := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"errors":[{"status":401,"code":38190,"title":"Invalid access token"}]}`))
	})

	_, err := c.SearchHotelsByGeo(context.Background(), domain.GeoPoint{}, 10)

	var upstream *domain.UpstreamError
	require.ErrorAs(t, err, &upstream)
	assert.Equal(t, http.StatusUnauthorized, upstream.Code)
	assert.Equal(t, int32(1), tokens.invalidated.Load())
}

func TestClient_TokenFailures(t *testing.T) {
	var calls atomic.Int32
	handler := func(w http.ResponseWriter, r *http.Request) { calls.Add(1) }

	t.Run("no token source", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(handler))
		defer srv.Close()

		_, err := NewClient(srv.URL, srv.Client()).NearestAirports(context.Background(), domain.GeoPoint{}, 200, 1)

		assert.ErrorIs(t, err, domain.ErrProviderNotConfigured)
	})

	t.Run("token error propagates", func(t *testing.T) {
		c, tokens := newTestClient(t, handler)
		tokens.err = domain.NewAuthError(errors.New("denied"))

		_, err := c.NearestAirports(context.Background(), domain.GeoPoint{}, 200, 1)

		assert.ErrorIs(t, err, domain.ErrAuth)
		assert.False(t, domain.IsRetryable(err))
	})

	assert.Zero(t, calls.Load())
}

func TestClient_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	c := NewClient(url, nil)
	c.UseTokens(&staticTokens{token: "t"})

	_, err := c.NearestAirports(context.Background(), domain.GeoPoint{}, 200, 1)

	var upstream *domain.UpstreamError
	require.ErrorAs(t, err, &upstream)
	assert.Equal(t, 0, upstream.Code)
	assert.True(t, domain.IsRetryable(err))
}

func TestClient_CancelledContext(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.NearestAirports(ctx, domain.GeoPoint{}, 200, 1)

	assert.ErrorIs(t, err, context.Canceled)
}

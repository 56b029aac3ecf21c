package domain

//go:generate mockgen -source=provider.go -destination=mock_provider.go -package=domain

import "context"

// Authenticator obtains bearer credentials for the Flights&Stays provider.
type Authenticator interface {
	Authenticate(ctx context.Context, clientID, clientSecret string) (AccessToken, error)
}

// FlightsStaysProvider is the flight, hotel and location search provider.
// Implementations return *UpstreamError for non-2xx answers and
// ErrMalformedResponse for payloads they cannot decode.
type FlightsStaysProvider interface {
	Authenticator

	// Name returns the provider identifier used in logs and errors.
	Name() string

	SearchLocations(ctx context.Context, keyword string, subTypes []string, limit int) ([]Location, error)
	NearestAirports(ctx context.Context, point GeoPoint, radiusKm, limit int) ([]Airport, error)
	SearchFlights(ctx context.Context, search FlightSearch) ([]FlightOffer, error)
	SearchHotelsByGeo(ctx context.Context, point GeoPoint, radiusKm int) ([]Hotel, error)
	HotelOffers(ctx context.Context, query HotelOfferQuery) ([]HotelOffer, error)

	// SearchHotelOffersByGeo is the single-call nearby hotel search.
	SearchHotelOffersByGeo(ctx context.Context, query HotelQuery, limit int) ([]HotelOfferSummary, error)

	// AirlineNames maps carrier codes to display names. Unknown codes are omitted.
	AirlineNames(ctx context.Context, codes []string) (map[string]string, error)
}

// MapsProvider is the geocoding, directions and places provider.
type MapsProvider interface {
	Name() string
	Geocode(ctx context.Context, address string) (GeoPoint, error)
	Route(ctx context.Context, origin, destination, mode string) (RouteInfo, error)
	PlacesNearby(ctx context.Context, point GeoPoint, placeType string) ([]Place, error)
}

// TokenSource hands out a valid bearer token.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

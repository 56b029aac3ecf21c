// Package amadeus is the Flights&Stays provider backed by the Amadeus
// self-service REST API.
package amadeus

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/tripcompass/trip-info-service/internal/domain"
)

// ProviderName is the unique identifier for the Amadeus provider.
const ProviderName = "amadeus"

// DefaultTimeout bounds a single HTTP exchange. The executor's per-call
// budget is usually the tighter limit.
const DefaultTimeout = 15 * time.Second

const (
	tokenPath           = "/v1/security/oauth2/token"
	locationsPath       = "/v1/reference-data/locations"
	airportsPath        = "/v1/reference-data/locations/airports"
	hotelsByGeoPath     = "/v1/reference-data/locations/hotels/by-geocode"
	airlinesPath        = "/v1/reference-data/airlines"
	flightOffersPath    = "/v2/shopping/flight-offers"
	geoHotelOffersPath  = "/v2/shopping/hotel-offers"
	hotelOffersPath     = "/v3/shopping/hotel-offers"
	maxResponseBodySize = 4 << 20
)

// invalidator is implemented by token sources that can drop a rejected token.
type invalidator interface {
	Invalidate()
}

// Client implements domain.FlightsStaysProvider.
type Client struct {
	baseURL string
	http    *http.Client
	tokens  domain.TokenSource
}

var _ domain.FlightsStaysProvider = (*Client)(nil)

// NewClient creates a Client for baseURL. A nil httpClient gets DefaultTimeout.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: DefaultTimeout}
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
	}
}

// UseTokens sets the bearer token source for data calls. The token source
// usually wraps this client's Authenticate, hence the separate setter.
func (c *Client) UseTokens(tokens domain.TokenSource) {
	c.tokens = tokens
}

// Name returns the provider identifier.
func (c *Client) Name() string {
	return ProviderName
}

// Authenticate performs the OAuth2 client-credentials exchange.
func (c *Client) Authenticate(ctx context.Context, clientID, clientSecret string) (domain.AccessToken, error) {
	form := url.Values{}
	form.Set("grant_type", "client_credentials")
	form.Set("client_id", clientID)
	form.Set("client_secret", clientSecret)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+tokenPath, strings.NewReader(form.Encode()))
	if err != nil {
		return domain.AccessToken{}, fmt.Errorf("amadeus: build token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	body, err := c.do(ctx, req)
	if err != nil {
		return domain.AccessToken{}, err
	}

	var tr tokenResponse
	if err := json.Unmarshal(body, &tr); err != nil {
		return domain.AccessToken{}, domain.NewMalformedResponse(ProviderName, "token: "+err.Error())
	}
	if tr.AccessToken == "" {
		return domain.AccessToken{}, domain.NewMalformedResponse(ProviderName, "token: missing access_token")
	}
	return domain.AccessToken{Value: tr.AccessToken, ExpiresIn: tr.ExpiresIn}, nil
}

// SearchLocations looks up airports and cities by keyword.
func (c *Client) SearchLocations(ctx context.Context, keyword string, subTypes []string, limit int) ([]domain.Location, error) {
	params := url.Values{}
	params.Set("subType", strings.Join(subTypes, ","))
	params.Set("keyword", keyword)
	params.Set("page[limit]", strconv.Itoa(limit))

	var data []AmadeusLocation
	if err := c.get(ctx, locationsPath, params, &data); err != nil {
		return nil, err
	}
	return normalizeLocations(data), nil
}

// NearestAirports lists airports within radiusKm of point, closest first.
func (c *Client) NearestAirports(ctx context.Context, point domain.GeoPoint, radiusKm, limit int) ([]domain.Airport, error) {
	params := pointParams(point)
	params.Set("radius", strconv.Itoa(radiusKm))
	params.Set("page[limit]", strconv.Itoa(limit))
	params.Set("sort", "distance")

	var data []AmadeusLocation
	if err := c.get(ctx, airportsPath, params, &data); err != nil {
		return nil, err
	}
	return normalizeAirports(data), nil
}

// SearchFlights returns the raw flight offers for a route and date.
func (c *Client) SearchFlights(ctx context.Context, search domain.FlightSearch) ([]domain.FlightOffer, error) {
	params := url.Values{}
	params.Set("originLocationCode", search.Origin.String())
	params.Set("destinationLocationCode", search.Destination.String())
	params.Set("departureDate", search.DepartureDate)
	params.Set("adults", strconv.Itoa(search.Adults))
	if search.ReturnDate != "" {
		params.Set("returnDate", search.ReturnDate)
	}

	var data []AmadeusFlightOffer
	if err := c.get(ctx, flightOffersPath, params, &data); err != nil {
		return nil, err
	}
	return normalizeFlightOffers(data), nil
}

// SearchHotelsByGeo lists hotels within radiusKm of point.
func (c *Client) SearchHotelsByGeo(ctx context.Context, point domain.GeoPoint, radiusKm int) ([]domain.Hotel, error) {
	params := pointParams(point)
	params.Set("radius", strconv.Itoa(radiusKm))
	params.Set("radiusUnit", "KM")

	var data []AmadeusHotel
	if err := c.get(ctx, hotelsByGeoPath, params, &data); err != nil {
		return nil, err
	}
	return normalizeHotels(data), nil
}

// HotelOffers returns the room offers of a single hotel.
func (c *Client) HotelOffers(ctx context.Context, query domain.HotelOfferQuery) ([]domain.HotelOffer, error) {
	params := url.Values{}
	params.Set("hotelIds", query.HotelID)
	params.Set("adults", strconv.Itoa(query.Adults))
	params.Set("checkInDate", query.CheckIn)
	params.Set("roomQuantity", strconv.Itoa(query.Rooms))
	if query.CheckOut != "" {
		params.Set("checkOutDate", query.CheckOut)
	}

	var data []AmadeusHotelOffers
	if err := c.get(ctx, hotelOffersPath, params, &data); err != nil {
		return nil, err
	}
	return normalizeOffers(data), nil
}

// SearchHotelOffersByGeo searches hotels and their best rate around a point
// in one call, nearest first.
func (c *Client) SearchHotelOffersByGeo(ctx context.Context, query domain.HotelQuery, limit int) ([]domain.HotelOfferSummary, error) {
	params := pointParams(query.Point)
	params.Set("radius", strconv.Itoa(int(math.Round(query.RadiusKm))))
	params.Set("radiusUnit", "KM")
	params.Set("checkInDate", query.CheckIn)
	params.Set("roomQuantity", strconv.Itoa(query.Rooms))
	params.Set("adults", strconv.Itoa(query.Adults))
	params.Set("sort", "DISTANCE")
	params.Set("bestRateOnly", "true")
	params.Set("view", "FULL")
	params.Set("page[limit]", strconv.Itoa(limit))
	if query.CheckOut != "" {
		params.Set("checkOutDate", query.CheckOut)
	}

	var data []AmadeusHotelOffers
	if err := c.get(ctx, geoHotelOffersPath, params, &data); err != nil {
		return nil, err
	}
	return summarizeHotelOffers(data, query.Point), nil
}

// AirlineNames resolves carrier codes to display names.
func (c *Client) AirlineNames(ctx context.Context, codes []string) (map[string]string, error) {
	if len(codes) == 0 {
		return map[string]string{}, nil
	}
	params := url.Values{}
	params.Set("airlineCodes", strings.Join(codes, ","))

	var data []AmadeusAirline
	if err := c.get(ctx, airlinesPath, params, &data); err != nil {
		return nil, err
	}
	return normalizeAirlines(data), nil
}

func pointParams(p domain.GeoPoint) url.Values {
	params := url.Values{}
	params.Set("latitude", strconv.FormatFloat(p.Latitude, 'f', 6, 64))
	params.Set("longitude", strconv.FormatFloat(p.Longitude, 'f', 6, 64))
	return params
}

// get performs an authenticated GET and decodes the "data" member into dst.
func (c *Client) get(ctx context.Context, path string, params url.Values, dst any) error {
	if c.tokens == nil {
		return domain.ErrProviderNotConfigured
	}
	token, err := c.tokens.Token(ctx)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("amadeus: build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")

	body, err := c.do(ctx, req)
	if err != nil {
		return err
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return domain.NewMalformedResponse(ProviderName, path+": "+err.Error())
	}
	if len(env.Data) == 0 || string(env.Data) == "null" {
		return domain.NewMalformedResponse(ProviderName, path+": missing data")
	}
	if err := json.Unmarshal(env.Data, dst); err != nil {
		return domain.NewMalformedResponse(ProviderName, path+": "+err.Error())
	}
	return nil
}

// do sends req and returns the body of a 2xx answer.
func (c *Client) do(ctx context.Context, req *http.Request) ([]byte, error) {
	resp, err := c.http.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, domain.NewUpstreamError(ProviderName, 0, err.Error())
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBodySize))
	if err != nil {
		return nil, domain.NewUpstreamError(ProviderName, 0, "read body: "+err.Error())
	}

	if resp.StatusCode == http.StatusUnauthorized {
		if inv, ok := c.tokens.(invalidator); ok {
			inv.Invalidate()
		}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, domain.NewUpstreamError(ProviderName, resp.StatusCode, errorMessage(body, resp.Status))
	}
	return body, nil
}

// errorMessage extracts the first Amadeus error detail, falling back to
// the HTTP status text.
func errorMessage(body []byte, status string) string {
	var env envelope
	if err := json.Unmarshal(body, &env); err == nil && len(env.Errors) > 0 {
		e := env.Errors[0]
		switch {
		case e.Detail != "" && e.Title != "":
			return e.Title + ": " + e.Detail
		case e.Detail != "":
			return e.Detail
		case e.Title != "":
			return e.Title
		}
	}
	var oauth struct {
		Error       string `json:"error"`
		Description string `json:"error_description"`
	}
	if err := json.Unmarshal(body, &oauth); err == nil && oauth.Error != "" {
		if oauth.Description != "" {
			return oauth.Error + ": " + oauth.Description
		}
		return oauth.Error
	}
	return status
}

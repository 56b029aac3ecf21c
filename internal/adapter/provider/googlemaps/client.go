// Package googlemaps is the Maps provider backed by the Google Maps web
// services (geocoding, directions, places).
package googlemaps

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/tripcompass/trip-info-service/internal/domain"
)

// ProviderName is the unique identifier for the Google Maps provider.
const ProviderName = "googlemaps"

// DefaultTimeout bounds a single HTTP exchange.
const DefaultTimeout = 10 * time.Second

// DefaultPlacesRadiusMeters is the search radius of PlacesNearby.
const DefaultPlacesRadiusMeters = 2000

const (
	geocodePath         = "/geocode/json"
	directionsPath      = "/directions/json"
	placesPath          = "/place/nearbysearch/json"
	maxResponseBodySize = 4 << 20
)

// Google answers 200 for most failures and reports them in "status".
const (
	statusOK             = "OK"
	statusZeroResults    = "ZERO_RESULTS"
	statusNotFound       = "NOT_FOUND"
	statusOverQueryLimit = "OVER_QUERY_LIMIT"
	statusRequestDenied  = "REQUEST_DENIED"
	statusInvalidRequest = "INVALID_REQUEST"
)

// Client implements domain.MapsProvider.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

var _ domain.MapsProvider = (*Client)(nil)

// NewClient creates a Client. A nil httpClient gets DefaultTimeout.
func NewClient(baseURL, apiKey string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: DefaultTimeout}
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		http:    httpClient,
	}
}

// Name returns the provider identifier.
func (c *Client) Name() string {
	return ProviderName
}

// Geocode returns the coordinates of the first match for address.
func (c *Client) Geocode(ctx context.Context, address string) (domain.GeoPoint, error) {
	params := url.Values{}
	params.Set("address", address)

	var resp geocodeResponse
	if err := c.get(ctx, geocodePath, params, &resp); err != nil {
		return domain.GeoPoint{}, err
	}
	switch resp.Status {
	case statusOK:
	case statusZeroResults:
		return domain.GeoPoint{}, fmt.Errorf("%w: no match for %q", domain.ErrGeocodeFailed, address)
	default:
		return domain.GeoPoint{}, statusError(resp.Status, resp.ErrorMessage)
	}
	if len(resp.Results) == 0 {
		return domain.GeoPoint{}, fmt.Errorf("%w: no match for %q", domain.ErrGeocodeFailed, address)
	}

	loc := resp.Results[0].Geometry.Location
	if loc == nil {
		return domain.GeoPoint{}, domain.NewMalformedResponse(ProviderName, "geocode: missing geometry.location")
	}
	return domain.GeoPoint{Latitude: loc.Lat, Longitude: loc.Lng}, nil
}

// Route summarizes the first route's first leg between two places.
func (c *Client) Route(ctx context.Context, origin, destination, mode string) (domain.RouteInfo, error) {
	params := url.Values{}
	params.Set("origin", origin)
	params.Set("destination", destination)
	if mode != "" {
		params.Set("mode", mode)
	}

	var resp directionsResponse
	if err := c.get(ctx, directionsPath, params, &resp); err != nil {
		return domain.RouteInfo{}, err
	}
	switch resp.Status {
	case statusOK:
	case statusZeroResults, statusNotFound:
		return domain.RouteInfo{}, fmt.Errorf("%w: no route from %q to %q", domain.ErrGeocodeFailed, origin, destination)
	default:
		return domain.RouteInfo{}, statusError(resp.Status, resp.ErrorMessage)
	}
	if len(resp.Routes) == 0 || len(resp.Routes[0].Legs) == 0 {
		return domain.RouteInfo{}, domain.NewMalformedResponse(ProviderName, "directions: missing routes[0].legs[0]")
	}

	route := resp.Routes[0]
	leg := route.Legs[0]
	return domain.RouteInfo{
		Distance: leg.Distance.Text,
		Duration: leg.Duration.Text,
		Polyline: route.OverviewPolyline.Points,
	}, nil
}

// PlacesNearby lists places of placeType within DefaultPlacesRadiusMeters of point.
func (c *Client) PlacesNearby(ctx context.Context, point domain.GeoPoint, placeType string) ([]domain.Place, error) {
	params := url.Values{}
	params.Set("location", point.String())
	params.Set("radius", fmt.Sprint(DefaultPlacesRadiusMeters))
	if placeType != "" {
		params.Set("type", placeType)
	}

	var resp placesResponse
	if err := c.get(ctx, placesPath, params, &resp); err != nil {
		return nil, err
	}
	switch resp.Status {
	case statusOK, statusZeroResults:
	default:
		return nil, statusError(resp.Status, resp.ErrorMessage)
	}

	places := make([]domain.Place, 0, len(resp.Results))
	for _, r := range resp.Results {
		places = append(places, domain.Place{Name: r.Name, Address: r.Vicinity})
	}
	return places, nil
}

// get performs a keyed GET and decodes the JSON body into dst.
func (c *Client) get(ctx context.Context, path string, params url.Values, dst any) error {
	if c.apiKey == "" {
		return domain.ErrProviderNotConfigured
	}
	params.Set("key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("googlemaps: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return domain.NewUpstreamError(ProviderName, 0, err.Error())
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBodySize))
	if err != nil {
		return domain.NewUpstreamError(ProviderName, 0, "read body: "+err.Error())
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return domain.NewUpstreamError(ProviderName, resp.StatusCode, resp.Status)
	}
	if err := json.Unmarshal(body, dst); err != nil {
		return domain.NewMalformedResponse(ProviderName, path+": "+err.Error())
	}
	return nil
}

// statusError maps a non-OK Google status to an UpstreamError with the
// closest HTTP code.
func statusError(status, message string) error {
	code := http.StatusBadGateway
	switch status {
	case statusOverQueryLimit:
		code = http.StatusTooManyRequests
	case statusRequestDenied:
		code = http.StatusForbidden
	case statusInvalidRequest:
		code = http.StatusBadRequest
	case "":
		return domain.NewMalformedResponse(ProviderName, "missing status")
	}
	if message == "" {
		message = status
	} else {
		message = status + ": " + message
	}
	return domain.NewUpstreamError(ProviderName, code, message)
}

// Package http provides the HTTP handler layer for the trip info API.
// It handles query parsing, validation, response formatting, and error mapping.
package http

import (
	"context"
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/tripcompass/trip-info-service/internal/adapter/http/response"
	"github.com/tripcompass/trip-info-service/internal/domain"
	"github.com/tripcompass/trip-info-service/internal/infrastructure/logger"
	"github.com/tripcompass/trip-info-service/internal/infrastructure/timeutil"
	"github.com/tripcompass/trip-info-service/internal/usecase"
)

// Services groups the use cases served over HTTP.
type Services struct {
	TripInfo  usecase.TripInfoUseCase
	Flights   usecase.FlightSearchUseCase
	Hotels    usecase.HotelSearchUseCase
	Locations usecase.LocationUseCase
	Maps      usecase.MapsUseCase
}

// Handler handles HTTP requests for the trip info endpoints.
type Handler struct {
	services     Services
	clock        timeutil.Clock
	providerMode string
}

// NewHandler creates a Handler. clock decides which dates are in the future.
func NewHandler(services Services, clock timeutil.Clock, providerMode string) *Handler {
	if clock == nil {
		clock = timeutil.NewRealClock()
	}
	return &Handler{services: services, clock: clock, providerMode: providerMode}
}

// TripInfo handles GET /api/v1/trip-info
//
// @Summary Trip info
// @Description Resolves origin and destination airports, then returns up to 3 hotels with offers and up to 3 flights. Alternate airports are tried when the direct pair has no flights.
// @Tags trips
// @Produce json
// @Param lat query number true "Destination latitude"
// @Param lng query number true "Destination longitude"
// @Param origin query string false "Origin airport code (e.g. CDG) or place name"
// @Param originLat query number false "Origin latitude, used when origin is absent"
// @Param originLng query number false "Origin longitude, used when origin is absent"
// @Param checkInDate query string true "Future check-in date (YYYY-MM-DD)"
// @Param checkOutDate query string false "Check-out date (YYYY-MM-DD)"
// @Param adults query int true "Number of adults"
// @Param roomQuantity query int true "Number of rooms"
// @Success 200 {object} domain.TripInfoResult
// @Failure 400 {object} response.ErrorDetail "Validation error or unknown place"
// @Failure 404 {object} response.ErrorDetail "No airport found"
// @Failure 502 {object} response.ErrorDetail "Upstream error"
// @Failure 504 {object} response.ErrorDetail "Gateway timeout"
// @Router /trip-info [get]
func (h *Handler) TripInfo(c echo.Context) error {
	var params TripInfoParams
	if err := c.Bind(&params); err != nil {
		return response.InvalidRequestBody(c)
	}
	req, err := params.Parse(h.clock)
	if err != nil {
		return h.handleError(c, err)
	}

	result, err := h.services.TripInfo.GetTripInfo(c.Request().Context(), req)
	if err != nil {
		return h.handleError(c, err)
	}
	return response.OK(c, result)
}

// SearchLocations handles GET /api/v1/locations
//
// @Summary Search locations
// @Description Airports and cities matching a keyword, up to 5.
// @Tags locations
// @Produce json
// @Param keyword query string true "Search keyword"
// @Success 200 {array} LocationDTO
// @Failure 400 {object} response.ErrorDetail "Missing keyword"
// @Failure 502 {object} response.ErrorDetail "Upstream error"
// @Router /locations [get]
func (h *Handler) SearchLocations(c echo.Context) error {
	locations, err := h.services.Locations.SearchLocations(c.Request().Context(), c.QueryParam("keyword"))
	if err != nil {
		return h.handleError(c, err)
	}
	return response.List(c, ToLocationDTOs(locations))
}

// SearchFlights handles GET /api/v1/flights
//
// @Summary Search flights
// @Description All offers between two airports, flattened and deduplicated.
// @Tags flights
// @Produce json
// @Param origin query string true "Origin IATA code"
// @Param destination query string true "Destination IATA code"
// @Param departureDate query string true "Future departure date (YYYY-MM-DD)"
// @Param returnDate query string false "Return date (YYYY-MM-DD)"
// @Param adults query int false "Number of adults (default 1)"
// @Success 200 {object} domain.FlightSearchResult
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 429 {object} response.ErrorDetail "Rate limited"
// @Failure 502 {object} response.ErrorDetail "Upstream error"
// @Failure 504 {object} response.ErrorDetail "Gateway timeout"
// @Router /flights [get]
func (h *Handler) SearchFlights(c echo.Context) error {
	var params FlightSearchParams
	if err := c.Bind(&params); err != nil {
		return response.InvalidRequestBody(c)
	}
	search, err := params.Parse(h.clock)
	if err != nil {
		return h.handleError(c, err)
	}

	result, err := h.services.Flights.Search(c.Request().Context(), search)
	if err != nil {
		return h.handleError(c, err)
	}
	return response.OK(c, result)
}

// FlightPath handles GET /api/v1/flights/polyline
//
// @Summary Flight path
// @Description Encoded polyline between the airports nearest to two places.
// @Tags flights
// @Produce json
// @Param startPlace query string true "Start place name"
// @Param endPlace query string true "End place name"
// @Success 200 {object} domain.FlightPath
// @Failure 400 {object} response.ErrorDetail "Validation error or unknown place"
// @Failure 404 {object} response.ErrorDetail "No airport found"
// @Router /flights/polyline [get]
func (h *Handler) FlightPath(c echo.Context) error {
	var params FlightPathParams
	if err := c.Bind(&params); err != nil {
		return response.InvalidRequestBody(c)
	}
	if err := params.Validate(); err != nil {
		return h.handleError(c, err)
	}

	path, err := h.services.Maps.FlightPath(c.Request().Context(), params.StartPlace, params.EndPlace)
	if err != nil {
		return h.handleError(c, err)
	}
	return response.OK(c, path)
}

// NearbyHotels handles GET /api/v1/hotels/nearby
//
// @Summary Nearby hotels
// @Description Hotels with offers around a point. Results are cached for 10 minutes.
// @Tags hotels
// @Produce json
// @Param lat query number true "Latitude"
// @Param lng query number true "Longitude"
// @Param checkInDate query string true "Future check-in date (YYYY-MM-DD)"
// @Param checkOutDate query string false "Check-out date (YYYY-MM-DD)"
// @Param adults query int true "Number of adults"
// @Param roomQuantity query int true "Number of rooms"
// @Param radiusKm query number false "Search radius in km (default 15)"
// @Success 200 {object} domain.HotelSearchResult
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 404 {object} response.ErrorDetail "No hotel offers"
// @Failure 429 {object} response.ErrorDetail "Rate limited"
// @Router /hotels/nearby [get]
func (h *Handler) NearbyHotels(c echo.Context) error {
	var params HotelNearbyParams
	if err := c.Bind(&params); err != nil {
		return response.InvalidRequestBody(c)
	}
	query, err := params.Parse(h.clock)
	if err != nil {
		return h.handleError(c, err)
	}

	result, err := h.services.Hotels.SearchNearby(c.Request().Context(), query)
	if err != nil {
		return h.handleError(c, err)
	}
	return response.OK(c, result)
}

// NearbyAirports handles GET /api/v1/airports/nearby
//
// @Summary Nearby airports
// @Description Airports around a point. When none are in range the single nearest airport is returned.
// @Tags locations
// @Produce json
// @Param lat query number true "Latitude"
// @Param lng query number true "Longitude"
// @Param radius query int false "Radius in km (default 200)"
// @Param limit query int false "Maximum airports (default 5)"
// @Success 200 {array} AirportDTO
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 404 {object} response.ErrorDetail "No airport found"
// @Router /airports/nearby [get]
func (h *Handler) NearbyAirports(c echo.Context) error {
	var params NearbyAirportsParams
	if err := c.Bind(&params); err != nil {
		return response.InvalidRequestBody(c)
	}
	point, radius, limit, err := params.Parse()
	if err != nil {
		return h.handleError(c, err)
	}

	airports, err := h.services.Locations.NearbyAirports(c.Request().Context(), point, radius, limit)
	if err != nil {
		return h.handleError(c, err)
	}
	return response.List(c, ToAirportDTOs(airports))
}

// Route handles GET /api/v1/route
//
// @Summary Route
// @Description Distance, duration and polyline between two places.
// @Tags maps
// @Produce json
// @Param origin query string true "Origin place"
// @Param destination query string true "Destination place"
// @Param mode query string false "driving, walking, bicycling or transit (default driving)"
// @Success 200 {object} domain.RouteInfo
// @Failure 400 {object} response.ErrorDetail "Validation error or unknown place"
// @Router /route [get]
func (h *Handler) Route(c echo.Context) error {
	var params RouteParams
	if err := c.Bind(&params); err != nil {
		return response.InvalidRequestBody(c)
	}
	if err := params.Validate(); err != nil {
		return h.handleError(c, err)
	}

	route, err := h.services.Maps.Route(c.Request().Context(), params.Origin, params.Destination, params.Mode)
	if err != nil {
		return h.handleError(c, err)
	}
	return response.OK(c, route)
}

// Places handles GET /api/v1/places
//
// @Summary Nearby places
// @Description Places of a type around a point.
// @Tags maps
// @Produce json
// @Param lat query number true "Latitude"
// @Param lng query number true "Longitude"
// @Param type query string true "Place type, e.g. restaurant"
// @Success 200 {array} domain.Place
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Router /places [get]
func (h *Handler) Places(c echo.Context) error {
	var params PlacesParams
	if err := c.Bind(&params); err != nil {
		return response.InvalidRequestBody(c)
	}
	point, placeType, err := params.Parse()
	if err != nil {
		return h.handleError(c, err)
	}

	places, err := h.services.Maps.PlacesNearby(c.Request().Context(), point, placeType)
	if err != nil {
		return h.handleError(c, err)
	}
	return response.List(c, places)
}

// Health handles GET /health
// Simple health check endpoint.
func (h *Handler) Health(c echo.Context) error {
	return response.Health(c, h.providerMode)
}

// handleError maps domain errors to HTTP responses. Order matters: a
// lookup failure wraps both its own sentinel and the upstream cause.
func (h *Handler) handleError(c echo.Context, err error) error {
	var validationErrs *ValidationErrors
	var upstream *domain.UpstreamError

	switch {
	case errors.As(err, &validationErrs):
		return response.ValidationError(c, validationErrs.ToMap())
	case errors.Is(err, domain.ErrInvalidRequest):
		return response.ValidationErrorWithMessage(c, err.Error())
	case errors.Is(err, domain.ErrGeocodeFailed):
		return response.GeocodeFailed(c, err.Error())
	case errors.Is(err, domain.ErrNoAirportFound), errors.Is(err, domain.ErrNoHotelOffers):
		return response.NotFound(c, err.Error())
	case errors.Is(err, domain.ErrProviderNotConfigured):
		return response.ServiceUnavailable(c)
	case errors.Is(err, domain.ErrAuth):
		return response.BadGateway(c, err.Error())
	case errors.Is(err, domain.ErrRateLimited):
		return response.TooManyRequests(c)
	case errors.As(err, &upstream):
		return response.BadGateway(c, upstream.Error())
	case errors.Is(err, domain.ErrTimeout), errors.Is(err, context.DeadlineExceeded):
		return response.GatewayTimeout(c)
	case errors.Is(err, context.Canceled):
		return response.RequestCancelled(c)
	}

	logger.FromContext(c.Request().Context(), nil).Error().Err(err).Msg("unhandled error")
	return response.InternalServerError(c)
}

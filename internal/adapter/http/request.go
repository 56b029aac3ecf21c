// Package http provides the HTTP handler layer for the trip info API.
// It handles query parsing, validation, response formatting, and error mapping.
package http

import (
	"strconv"
	"strings"

	"github.com/tripcompass/trip-info-service/internal/domain"
	"github.com/tripcompass/trip-info-service/internal/infrastructure/timeutil"
	"github.com/tripcompass/trip-info-service/internal/usecase"
)

// maxAdults mirrors the provider limit on travellers per search.
const maxAdults = 9

// ValidationError represents a field-level validation error.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors holds multiple validation errors.
type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

// Error implements the error interface.
func (v *ValidationErrors) Error() string {
	if len(v.Errors) == 0 {
		return "validation failed"
	}
	return v.Errors[0].Message
}

// Unwrap lets errors.Is match domain.ErrInvalidRequest.
func (v *ValidationErrors) Unwrap() error {
	return domain.ErrInvalidRequest
}

// Add adds a validation error.
func (v *ValidationErrors) Add(field, message string) {
	v.Errors = append(v.Errors, ValidationError{
		Field:   field,
		Message: message,
	})
}

// HasErrors returns true if there are validation errors.
func (v *ValidationErrors) HasErrors() bool {
	return len(v.Errors) > 0
}

// ToMap converts validation errors to a map for API response.
func (v *ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string, len(v.Errors))
	for _, e := range v.Errors {
		result[e.Field] = e.Message
	}
	return result
}

func (v *ValidationErrors) result() error {
	if v.HasErrors() {
		return v
	}
	return nil
}

// TripInfoParams are the query parameters of GET /api/v1/trip-info.
type TripInfoParams struct {
	Lat          string `query:"lat"`
	Lng          string `query:"lng"`
	Origin       string `query:"origin"`
	OriginLat    string `query:"originLat"`
	OriginLng    string `query:"originLng"`
	CheckInDate  string `query:"checkInDate"`
	CheckOutDate string `query:"checkOutDate"`
	Adults       string `query:"adults"`
	RoomQuantity string `query:"roomQuantity"`
}

// Parse validates the parameters against clock's current day.
// An origin of three uppercase letters is an airport code, any other
// text a place name; without origin the origin coordinates are used.
func (p *TripInfoParams) Parse(clock timeutil.Clock) (usecase.TripInfoRequest, error) {
	errs := &ValidationErrors{}
	req := usecase.TripInfoRequest{
		Destination: parsePoint(errs, "lat", p.Lat, "lng", p.Lng),
		CheckIn:     parseFutureDate(errs, clock, "checkInDate", p.CheckInDate),
		Adults:      parsePositiveInt(errs, "adults", p.Adults, 0),
		Rooms:       parsePositiveInt(errs, "roomQuantity", p.RoomQuantity, 0),
	}
	req.CheckOut = parseCheckOut(errs, "checkOutDate", req.CheckIn, p.CheckOutDate)

	switch origin := strings.TrimSpace(p.Origin); {
	case origin != "":
		req.Origin = domain.NewOriginFromText(origin)
	case strings.TrimSpace(p.OriginLat) != "" || strings.TrimSpace(p.OriginLng) != "":
		req.Origin = domain.NewOriginFromPoint(parsePoint(errs, "originLat", p.OriginLat, "originLng", p.OriginLng))
	default:
		errs.Add("origin", "origin or originLat and originLng are required")
	}

	return req, errs.result()
}

// FlightSearchParams are the query parameters of GET /api/v1/flights.
type FlightSearchParams struct {
	Origin        string `query:"origin"`
	Destination   string `query:"destination"`
	DepartureDate string `query:"departureDate"`
	ReturnDate    string `query:"returnDate"`
	Adults        string `query:"adults"`
}

// Parse validates the parameters. Airport codes are upper-cased; adults
// defaults to 1.
func (p *FlightSearchParams) Parse(clock timeutil.Clock) (domain.FlightSearch, error) {
	errs := &ValidationErrors{}
	search := domain.FlightSearch{
		Origin:        parseAirportCode(errs, "origin", p.Origin),
		Destination:   parseAirportCode(errs, "destination", p.Destination),
		DepartureDate: parseFutureDate(errs, clock, "departureDate", p.DepartureDate),
		Adults:        parsePositiveInt(errs, "adults", p.Adults, 1),
	}
	if search.Adults > maxAdults {
		errs.Add("adults", "adults cannot exceed 9")
	}
	if search.Origin != "" && search.Origin == search.Destination {
		errs.Add("destination", "origin and destination must be different")
	}
	if ret := strings.TrimSpace(p.ReturnDate); ret != "" {
		if _, err := timeutil.ParseDate(ret); err != nil {
			errs.Add("returnDate", "returnDate must be a YYYY-MM-DD date")
		} else if search.DepartureDate != "" && ret < search.DepartureDate {
			errs.Add("returnDate", "returnDate must not be before departureDate")
		}
		search.ReturnDate = ret
	}
	return search, errs.result()
}

// HotelNearbyParams are the query parameters of GET /api/v1/hotels/nearby.
type HotelNearbyParams struct {
	Lat          string `query:"lat"`
	Lng          string `query:"lng"`
	CheckInDate  string `query:"checkInDate"`
	CheckOutDate string `query:"checkOutDate"`
	Adults       string `query:"adults"`
	RoomQuantity string `query:"roomQuantity"`
	RadiusKm     string `query:"radiusKm"`
}

// Parse validates the parameters. A missing radius is left zero for the
// use case default.
func (p *HotelNearbyParams) Parse(clock timeutil.Clock) (domain.HotelQuery, error) {
	errs := &ValidationErrors{}
	query := domain.HotelQuery{
		Point:   parsePoint(errs, "lat", p.Lat, "lng", p.Lng),
		CheckIn: parseFutureDate(errs, clock, "checkInDate", p.CheckInDate),
		Adults:  parsePositiveInt(errs, "adults", p.Adults, 0),
		Rooms:   parsePositiveInt(errs, "roomQuantity", p.RoomQuantity, 0),
	}
	query.CheckOut = parseCheckOut(errs, "checkOutDate", query.CheckIn, p.CheckOutDate)
	if radius := strings.TrimSpace(p.RadiusKm); radius != "" {
		v, err := parseFloat(radius)
		if err != nil || v <= 0 {
			errs.Add("radiusKm", "radiusKm must be a positive number")
		}
		query.RadiusKm = v
	}
	return query, errs.result()
}

// NearbyAirportsParams are the query parameters of GET /api/v1/airports/nearby.
type NearbyAirportsParams struct {
	Lat    string `query:"lat"`
	Lng    string `query:"lng"`
	Radius string `query:"radius"`
	Limit  string `query:"limit"`
}

// Parse validates the parameters. Radius and limit are zero when absent.
func (p *NearbyAirportsParams) Parse() (point domain.GeoPoint, radiusKm, limit int, err error) {
	errs := &ValidationErrors{}
	point = parsePoint(errs, "lat", p.Lat, "lng", p.Lng)
	radiusKm = parseOptionalPositiveInt(errs, "radius", p.Radius)
	limit = parseOptionalPositiveInt(errs, "limit", p.Limit)
	return point, radiusKm, limit, errs.result()
}

// PlacesParams are the query parameters of GET /api/v1/places.
type PlacesParams struct {
	Lat  string `query:"lat"`
	Lng  string `query:"lng"`
	Type string `query:"type"`
}

// Parse validates the parameters.
func (p *PlacesParams) Parse() (domain.GeoPoint, string, error) {
	errs := &ValidationErrors{}
	point := parsePoint(errs, "lat", p.Lat, "lng", p.Lng)
	placeType := requireText(errs, "type", p.Type)
	return point, placeType, errs.result()
}

// RouteParams are the query parameters of GET /api/v1/route.
type RouteParams struct {
	Origin      string `query:"origin"`
	Destination string `query:"destination"`
	Mode        string `query:"mode"`
}

// Validate checks that both ends are present.
func (p *RouteParams) Validate() error {
	errs := &ValidationErrors{}
	p.Origin = requireText(errs, "origin", p.Origin)
	p.Destination = requireText(errs, "destination", p.Destination)
	return errs.result()
}

// FlightPathParams are the query parameters of GET /api/v1/flights/polyline.
type FlightPathParams struct {
	StartPlace string `query:"startPlace"`
	EndPlace   string `query:"endPlace"`
}

// Validate checks that both places are present.
func (p *FlightPathParams) Validate() error {
	errs := &ValidationErrors{}
	p.StartPlace = requireText(errs, "startPlace", p.StartPlace)
	p.EndPlace = requireText(errs, "endPlace", p.EndPlace)
	return errs.result()
}

// parseFloat accepts a decimal comma as well as a decimal point.
func parseFloat(value string) (float64, error) {
	return strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(value), ",", "."), 64)
}

func parsePoint(errs *ValidationErrors, latField, lat, lngField, lng string) domain.GeoPoint {
	var p domain.GeoPoint
	v, err := parseFloat(lat)
	if err != nil || v < -90 || v > 90 {
		errs.Add(latField, latField+" must be a number between -90 and 90")
	}
	p.Latitude = v
	v, err = parseFloat(lng)
	if err != nil || v < -180 || v > 180 {
		errs.Add(lngField, lngField+" must be a number between -180 and 180")
	}
	p.Longitude = v
	return p
}

// parsePositiveInt parses a required positive integer. A non-zero def
// makes the field optional.
func parsePositiveInt(errs *ValidationErrors, field, value string, def int) int {
	value = strings.TrimSpace(value)
	if value == "" && def > 0 {
		return def
	}
	n, err := strconv.Atoi(value)
	if err != nil || n < 1 {
		errs.Add(field, field+" must be a positive integer")
		return 0
	}
	return n
}

func parseOptionalPositiveInt(errs *ValidationErrors, field, value string) int {
	if strings.TrimSpace(value) == "" {
		return 0
	}
	return parsePositiveInt(errs, field, value, 0)
}

func parseFutureDate(errs *ValidationErrors, clock timeutil.Clock, field, value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		errs.Add(field, field+" is required")
		return ""
	}
	if !timeutil.IsFutureDate(clock, value) {
		errs.Add(field, field+" must be a future YYYY-MM-DD date")
		return ""
	}
	return value
}

// parseCheckOut validates an optional check-out date. It is only compared
// when checkIn itself was valid.
func parseCheckOut(errs *ValidationErrors, field, checkIn, value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}
	if _, err := timeutil.ParseDate(value); err != nil {
		errs.Add(field, field+" must be a YYYY-MM-DD date")
		return value
	}
	if checkIn != "" && !timeutil.IsValidDateRange(checkIn, value) {
		errs.Add(field, field+" must be after checkInDate")
	}
	return value
}

func parseAirportCode(errs *ValidationErrors, field, value string) domain.AirportCode {
	value = strings.TrimSpace(value)
	if value == "" {
		errs.Add(field, field+" is required")
		return ""
	}
	code, err := domain.ParseAirportCode(value)
	if err != nil {
		errs.Add(field, field+" must be a valid 3-letter IATA airport code")
		return ""
	}
	return code
}

func requireText(errs *ValidationErrors, field, value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		errs.Add(field, field+" is required")
	}
	return value
}

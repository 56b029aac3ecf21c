package domain

import (
	"fmt"
	"math"
	"regexp"
	"time"
)

// DateLayout is the ISO calendar date format used by every query.
const DateLayout = "2006-01-02"

// dateRegex matches dates in YYYY-MM-DD format.
var dateRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// HotelQuery describes a hotel search around a point.
// Two queries with identical field values share a fingerprint.
type HotelQuery struct {
	Point GeoPoint `json:"point"`

	// CheckIn is the check-in date in YYYY-MM-DD format
	CheckIn string `json:"checkInDate"`

	// CheckOut is optional; empty means the provider default stay
	CheckOut string `json:"checkOutDate,omitempty"`

	Adults   int     `json:"adults"`
	Rooms    int     `json:"roomQuantity"`
	RadiusKm float64 `json:"radiusKm"`
}

// Fingerprint returns the deterministic cache key for the query:
// coordinates and radius with six decimals, ISO dates, integers as-is.
func (q HotelQuery) Fingerprint() string {
	return fmt.Sprintf("%.6f:%.6f:%s:%s:%d:%d:%.6f",
		canonical(q.Point.Latitude), canonical(q.Point.Longitude), q.CheckIn, q.CheckOut, q.Adults, q.Rooms, canonical(q.RadiusKm))
}

// canonical rounds v to six decimals and drops the sign of zero, so -0.0
// and -0.0000001 format like 0.
func canonical(v float64) float64 {
	r := math.Round(v*1e6) / 1e6
	if r == 0 {
		return 0
	}
	return r
}

// Validate checks the query fields. It does not compare against today;
// that is a request concern.
func (q HotelQuery) Validate() error {
	if err := q.Point.Validate(); err != nil {
		return err
	}
	if err := validateDate("checkInDate", q.CheckIn); err != nil {
		return err
	}
	if q.CheckOut != "" {
		if err := validateDate("checkOutDate", q.CheckOut); err != nil {
			return err
		}
		if q.CheckOut <= q.CheckIn {
			return fmt.Errorf("%w: checkOutDate must be after checkInDate", ErrInvalidRequest)
		}
	}
	if q.Adults < 1 {
		return fmt.Errorf("%w: adults must be at least 1", ErrInvalidRequest)
	}
	if q.Rooms < 1 {
		return fmt.Errorf("%w: roomQuantity must be at least 1", ErrInvalidRequest)
	}
	if q.RadiusKm < 0 {
		return fmt.Errorf("%w: radiusKm must not be negative", ErrInvalidRequest)
	}
	return nil
}

// OfferQuery returns the per-hotel offer query for hotelID.
func (q HotelQuery) OfferQuery(hotelID string) HotelOfferQuery {
	return HotelOfferQuery{
		HotelID:  hotelID,
		Adults:   q.Adults,
		CheckIn:  q.CheckIn,
		Rooms:    q.Rooms,
		CheckOut: q.CheckOut,
	}
}

// HotelOfferQuery asks for room offers of a single hotel.
type HotelOfferQuery struct {
	HotelID  string
	Adults   int
	CheckIn  string
	Rooms    int
	CheckOut string
}

// FlightSearch defines the parameters for a flight offer search.
type FlightSearch struct {
	// Origin is the IATA code of the departure airport (e.g., "CDG")
	Origin AirportCode `json:"origin"`

	// Destination is the IATA code of the arrival airport (e.g., "JFK")
	Destination AirportCode `json:"destination"`

	// DepartureDate is the desired departure date in YYYY-MM-DD format
	DepartureDate string `json:"departureDate"`

	// ReturnDate is optional
	ReturnDate string `json:"returnDate,omitempty"`

	// Adults is the number of adult travellers (default: 1)
	Adults int `json:"adults"`
}

// Validate checks if the search is valid.
// Returns a wrapped ErrInvalidRequest error if validation fails.
func (s *FlightSearch) Validate() error {
	if s.Origin == "" {
		return fmt.Errorf("%w: origin is required", ErrInvalidRequest)
	}
	if !IsAirportCode(string(s.Origin)) {
		return fmt.Errorf("%w: origin must be a valid 3-letter IATA code, got %q", ErrInvalidRequest, s.Origin)
	}

	if s.Destination == "" {
		return fmt.Errorf("%w: destination is required", ErrInvalidRequest)
	}
	if !IsAirportCode(string(s.Destination)) {
		return fmt.Errorf("%w: destination must be a valid 3-letter IATA code, got %q", ErrInvalidRequest, s.Destination)
	}

	if s.Origin == s.Destination {
		return fmt.Errorf("%w: origin and destination must be different", ErrInvalidRequest)
	}

	if err := validateDate("departureDate", s.DepartureDate); err != nil {
		return err
	}
	if s.ReturnDate != "" {
		if err := validateDate("returnDate", s.ReturnDate); err != nil {
			return err
		}
		if s.ReturnDate < s.DepartureDate {
			return fmt.Errorf("%w: returnDate must not be before departureDate", ErrInvalidRequest)
		}
	}

	if s.Adults < 1 {
		return fmt.Errorf("%w: adults must be at least 1", ErrInvalidRequest)
	}
	if s.Adults > 9 {
		return fmt.Errorf("%w: adults cannot exceed 9", ErrInvalidRequest)
	}

	return nil
}

// SetDefaults applies default values to empty optional fields.
func (s *FlightSearch) SetDefaults() {
	if s.Adults == 0 {
		s.Adults = 1
	}
}

func validateDate(field, value string) error {
	if value == "" {
		return fmt.Errorf("%w: %s is required", ErrInvalidRequest, field)
	}
	if !dateRegex.MatchString(value) {
		return fmt.Errorf("%w: %s must be in YYYY-MM-DD format, got %q", ErrInvalidRequest, field, value)
	}
	if _, err := time.Parse(DateLayout, value); err != nil {
		return fmt.Errorf("%w: %s is not a valid date: %s", ErrInvalidRequest, field, value)
	}
	return nil
}

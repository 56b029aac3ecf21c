package domain

// Location subtypes understood by the location search.
const (
	SubTypeAirport = "AIRPORT"
	SubTypeCity    = "CITY"
)

// Location is a keyword search match.
type Location struct {
	Name     string   `json:"name"`
	IataCode string   `json:"iataCode"`
	SubType  string   `json:"subType"`
	GeoCode  GeoPoint `json:"geoCode"`
}

// Airport is a nearby-airport match.
type Airport struct {
	IataCode AirportCode `json:"iata"`
	Name     string      `json:"name"`
	GeoCode  GeoPoint    `json:"geoCode"`
	// DistanceKm is the provider-reported distance from the query point, if any
	DistanceKm float64 `json:"distanceKm,omitempty"`
}

// AirportCodes extracts the IATA codes, skipping empty ones.
func AirportCodes(airports []Airport) []AirportCode {
	codes := make([]AirportCode, 0, len(airports))
	for _, a := range airports {
		if a.IataCode.Resolved() {
			codes = append(codes, a.IataCode)
		}
	}
	return codes
}

// AccessToken is a bearer credential with the provider-declared lifetime in seconds.
type AccessToken struct {
	Value     string
	ExpiresIn int64
}

// RouteInfo is a driving/walking/transit route summary.
type RouteInfo struct {
	Distance string `json:"distance"`
	Duration string `json:"duration"`
	Polyline string `json:"polyline"`
}

// Place is a point of interest near a location.
type Place struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

// OriginKind tells how an OriginSpec should be resolved.
type OriginKind int

const (
	OriginAirport OriginKind = iota + 1
	OriginPlace
	OriginCoordinates
)

// OriginSpec is the traveller's starting point: an airport code, a place
// name to geocode, or coordinates.
type OriginSpec struct {
	Kind  OriginKind
	Code  AirportCode
	Place string
	Point GeoPoint
}

// NewOriginFromText treats three uppercase letters as an airport code and
// anything else as a place name.
func NewOriginFromText(text string) OriginSpec {
	if IsAirportCode(text) {
		return OriginSpec{Kind: OriginAirport, Code: AirportCode(text)}
	}
	return OriginSpec{Kind: OriginPlace, Place: text}
}

// NewOriginFromPoint creates a coordinate origin.
func NewOriginFromPoint(p GeoPoint) OriginSpec {
	return OriginSpec{Kind: OriginCoordinates, Point: p}
}

// TripInfoResult is the combined trip-info response.
type TripInfoResult struct {
	Coordinates        GeoPoint             `json:"coordinates"`
	OriginAirport      AirportCode          `json:"originAirport"`
	DestinationAirport AirportCode          `json:"destinationAirport"`
	Hotels             []HotelOfferSummary  `json:"hotels"`
	Flights            []FlightOfferSummary `json:"flights"`
}

// FlightPath is the straight line between the airports nearest to two places.
type FlightPath struct {
	StartAirport AirportCode `json:"startAirport"`
	EndAirport   AirportCode `json:"endAirport"`
	Polyline     string      `json:"polyline"`
	DistanceKm   float64     `json:"distanceKm"`
}

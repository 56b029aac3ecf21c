package http

// LocationDTO is a location search match in the flat shape clients use
// for autocomplete.
type LocationDTO struct {
	Name     string  `json:"name"`
	IataCode string  `json:"iataCode"`
	Lat      float64 `json:"lat"`
	Lng      float64 `json:"lng"`
	SubType  string  `json:"subType"`
}

// AirportDTO is a nearby airport.
type AirportDTO struct {
	Iata       string   `json:"iata"`
	Name       string   `json:"name,omitempty"`
	Lat        float64  `json:"lat"`
	Lng        float64  `json:"lng"`
	DistanceKm *float64 `json:"distanceKm,omitempty"`
}

package domain

// FlightSearchResult is the outcome of a flight search, with the airport
// pair that actually produced the offers.
type FlightSearchResult struct {
	Flights         []FlightOfferSummary `json:"flights"`
	Metadata        SearchMetadata       `json:"metadata"`
	RequestedOrigin AirportCode          `json:"requestedOrigin"`
	RequestedDest   AirportCode          `json:"requestedDestination"`
	UsedOrigin      AirportCode          `json:"usedOrigin"`
	UsedDestination AirportCode          `json:"usedDestination"`
}

// HotelSearchResult is the outcome of a nearby hotel search.
type HotelSearchResult struct {
	Hotels   []HotelOfferSummary `json:"hotels"`
	Metadata SearchMetadata      `json:"metadata"`
}

// Hotel search sources.
const (
	SourceFast   = "hotel-offers-by-geo"
	SourceLegacy = "hotels-by-geocode"
)

// SearchMetadata contains metadata about the search execution.
type SearchMetadata struct {
	// TotalResults is the number of results returned
	TotalResults int `json:"total_results"`

	// Fallback is true when results came from an alternate airport pair
	Fallback bool `json:"fallback,omitempty"`

	// Source names the upstream path that produced the results
	Source string `json:"source,omitempty"`

	// SearchTimeMs is the total search duration in milliseconds
	SearchTimeMs int64 `json:"search_time_ms"`
}

// NewFlightSearchResult creates a result, normalizing a nil slice to empty.
func NewFlightSearchResult(search FlightSearch, flights []FlightOfferSummary, usedOrigin, usedDest AirportCode, elapsedMs int64) FlightSearchResult {
	if flights == nil {
		flights = []FlightOfferSummary{}
	}
	return FlightSearchResult{
		Flights:         flights,
		RequestedOrigin: search.Origin,
		RequestedDest:   search.Destination,
		UsedOrigin:      usedOrigin,
		UsedDestination: usedDest,
		Metadata: SearchMetadata{
			TotalResults: len(flights),
			Fallback:     usedOrigin != search.Origin || usedDest != search.Destination,
			SearchTimeMs: elapsedMs,
		},
	}
}

// NewHotelSearchResult creates a result, normalizing a nil slice to empty.
func NewHotelSearchResult(hotels []HotelOfferSummary, source string, elapsedMs int64) HotelSearchResult {
	if hotels == nil {
		hotels = []HotelOfferSummary{}
	}
	return HotelSearchResult{
		Hotels: hotels,
		Metadata: SearchMetadata{
			TotalResults: len(hotels),
			Source:       source,
			SearchTimeMs: elapsedMs,
		},
	}
}

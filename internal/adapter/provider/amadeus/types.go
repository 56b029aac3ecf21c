package amadeus

import "encoding/json"

// envelope is the common {"data": ...} wrapper of every Amadeus answer.
// Data stays raw so a missing key can be told apart from an empty list.
type envelope struct {
	Data   json.RawMessage `json:"data"`
	Errors []apiError      `json:"errors,omitempty"`
}

// apiError is one entry of the Amadeus "errors" array.
type apiError struct {
	Status int    `json:"status"`
	Code   int    `json:"code"`
	Title  string `json:"title"`
	Detail string `json:"detail"`
}

// tokenResponse is the OAuth2 client-credentials answer.
type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

type geoCode struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type distance struct {
	Value float64 `json:"value"`
	Unit  string  `json:"unit"`
}

// AmadeusLocation is a reference-data location (airport or city).
type AmadeusLocation struct {
	Type         string   `json:"type"`
	SubType      string   `json:"subType"`
	Name         string   `json:"name"`
	DetailedName string   `json:"detailedName"`
	IataCode     string   `json:"iataCode"`
	GeoCode      *geoCode `json:"geoCode"`
	Distance     distance `json:"distance"`
}

// AmadeusFlightOffer is one entry of the flight-offers search.
type AmadeusFlightOffer struct {
	ID          string             `json:"id"`
	Itineraries []AmadeusItinerary `json:"itineraries"`
	Price       AmadeusFlightPrice `json:"price"`
}

type AmadeusItinerary struct {
	Duration string           `json:"duration"`
	Segments []AmadeusSegment `json:"segments"`
}

type AmadeusSegment struct {
	Departure   AmadeusEndpoint `json:"departure"`
	Arrival     AmadeusEndpoint `json:"arrival"`
	CarrierCode string          `json:"carrierCode"`
	Number      string          `json:"number"`
}

type AmadeusEndpoint struct {
	IataCode string `json:"iataCode"`
	Terminal string `json:"terminal,omitempty"`
	At       string `json:"at"`
}

type AmadeusFlightPrice struct {
	Currency   string `json:"currency"`
	Total      string `json:"total"`
	GrandTotal string `json:"grandTotal"`
}

// AmadeusHotel is a hotel-list entry (by-geocode search).
type AmadeusHotel struct {
	HotelID string   `json:"hotelId"`
	Name    string   `json:"name"`
	GeoCode *geoCode `json:"geoCode"`
	Rating  string   `json:"rating,omitempty"`
	Address struct {
		Lines       []string `json:"lines"`
		CityName    string   `json:"cityName"`
		CountryCode string   `json:"countryCode"`
	} `json:"address"`
	Distance distance `json:"distance"`
}

// AmadeusHotelOffers is one entry of the hotel-offers shopping answer.
// The v2 geo search and the v3 per-hotel lookup share this shape.
type AmadeusHotelOffers struct {
	Hotel     AmadeusOfferHotel `json:"hotel"`
	Available bool              `json:"available"`
	Offers    []AmadeusOffer    `json:"offers"`
}

type AmadeusOfferHotel struct {
	HotelID   string   `json:"hotelId"`
	Name      string   `json:"name"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	Rating    string   `json:"rating"`
	CityCode  string   `json:"cityCode"`
	Address   struct {
		Lines       []string `json:"lines"`
		CityName    string   `json:"cityName"`
		CountryCode string   `json:"countryCode"`
	} `json:"address"`
}

type AmadeusOffer struct {
	ID           string `json:"id"`
	CheckInDate  string `json:"checkInDate"`
	CheckOutDate string `json:"checkOutDate"`
	Room         struct {
		Type        string `json:"type"`
		Description struct {
			Text string `json:"text"`
		} `json:"description"`
	} `json:"room"`
	Price struct {
		Currency string `json:"currency"`
		Total    string `json:"total"`
		Base     string `json:"base"`
	} `json:"price"`
}

// AmadeusAirline is an airline reference-data entry.
type AmadeusAirline struct {
	IataCode     string `json:"iataCode"`
	IcaoCode     string `json:"icaoCode"`
	BusinessName string `json:"businessName"`
	CommonName   string `json:"commonName"`
}

package domain

import (
	"net/url"
	"strconv"
	"strings"
)

// Hotel is a property returned by a geo search, before offers are known.
type Hotel struct {
	HotelID string    `json:"hotelId"`
	Name    string    `json:"name"`
	GeoCode *GeoPoint `json:"geoCode,omitempty"`
	Address Address   `json:"address"`
	Rating  string    `json:"rating,omitempty"`
}

// Address is a postal address as reported by the provider.
type Address struct {
	Lines       []string `json:"lines,omitempty"`
	CityName    string   `json:"cityName,omitempty"`
	CountryCode string   `json:"countryCode,omitempty"`
}

// Format joins the address lines and the city name.
func (a Address) Format() string {
	line := strings.Join(a.Lines, ", ")
	switch {
	case line == "":
		return a.CityName
	case a.CityName == "":
		return line
	default:
		return line + ", " + a.CityName
	}
}

// HotelOffer is one bookable room offer.
type HotelOffer struct {
	ID           string `json:"id"`
	CheckInDate  string `json:"checkInDate,omitempty"`
	CheckOutDate string `json:"checkOutDate,omitempty"`
	RoomType     string `json:"roomType,omitempty"`
	Description  string `json:"description,omitempty"`
	Price        Price  `json:"price"`
}

// HotelOfferSummary is a hotel with its best offer.
type HotelOfferSummary struct {
	HotelID    string   `json:"id"`
	Name       string   `json:"name"`
	Location   GeoPoint `json:"location"`
	Address    string   `json:"address,omitempty"`
	Rating     string   `json:"rating,omitempty"`
	PriceTotal string   `json:"priceTotal,omitempty"`
	Currency   string   `json:"currency,omitempty"`
	MapsLink   string   `json:"mapsLink"`
}

// SummarizeHotel combines a hotel with its first offer. fallback supplies
// coordinates when the hotel has none.
func SummarizeHotel(h Hotel, offers []HotelOffer, fallback GeoPoint) HotelOfferSummary {
	point := fallback
	if h.GeoCode != nil {
		point = *h.GeoCode
	}
	name := h.Name
	if name == "" {
		name = "Unknown Hotel"
	}

	summary := HotelOfferSummary{
		HotelID:  h.HotelID,
		Name:     name,
		Location: point,
		Address:  h.Address.Format(),
		Rating:   h.Rating,
		MapsLink: MapsLink(name, point),
	}
	if len(offers) > 0 {
		summary.PriceTotal = offers[0].Price.Total
		summary.Currency = offers[0].Price.Currency
	}
	return summary
}

const mapsSearchURL = "https://www.google.com/maps/search/"

// MapsLink builds an external map search link for a named point.
func MapsLink(name string, p GeoPoint) string {
	coords := strconv.FormatFloat(p.Latitude, 'f', -1, 64) + "," + strconv.FormatFloat(p.Longitude, 'f', -1, 64)
	query := coords
	if strings.TrimSpace(name) != "" {
		query = name + " @" + coords
	}
	values := url.Values{}
	values.Set("api", "1")
	values.Set("query", query)
	return mapsSearchURL + "?" + values.Encode()
}

package amadeus

import (
	"strings"

	"github.com/tripcompass/trip-info-service/internal/domain"
)

// normalizeLocations converts reference-data locations, skipping entries
// without a code.
func normalizeLocations(in []AmadeusLocation) []domain.Location {
	result := make([]domain.Location, 0, len(in))
	for _, l := range in {
		if l.IataCode == "" {
			continue
		}
		loc := domain.Location{
			Name:     locationName(l),
			IataCode: l.IataCode,
			SubType:  l.SubType,
		}
		if l.GeoCode != nil {
			loc.GeoCode = domain.GeoPoint{Latitude: l.GeoCode.Latitude, Longitude: l.GeoCode.Longitude}
		}
		result = append(result, loc)
	}
	return result
}

// normalizeAirports converts nearest-airport entries. Entries without a
// valid IATA code are dropped.
func normalizeAirports(in []AmadeusLocation) []domain.Airport {
	result := make([]domain.Airport, 0, len(in))
	for _, l := range in {
		code, err := domain.ParseAirportCode(l.IataCode)
		if err != nil {
			continue
		}
		a := domain.Airport{
			IataCode: code,
			Name:     locationName(l),
		}
		if l.GeoCode != nil {
			a.GeoCode = domain.GeoPoint{Latitude: l.GeoCode.Latitude, Longitude: l.GeoCode.Longitude}
		}
		if strings.EqualFold(l.Distance.Unit, "KM") {
			a.DistanceKm = l.Distance.Value
		}
		result = append(result, a)
	}
	return result
}

func locationName(l AmadeusLocation) string {
	if l.Name != "" {
		return l.Name
	}
	return l.DetailedName
}

// normalizeFlightOffers converts flight offers. The total price falls back
// to the grand total when absent.
func normalizeFlightOffers(in []AmadeusFlightOffer) []domain.FlightOffer {
	result := make([]domain.FlightOffer, 0, len(in))
	for _, o := range in {
		offer := domain.FlightOffer{
			ID: o.ID,
			Price: domain.Price{
				Total:    o.Price.Total,
				Currency: o.Price.Currency,
			},
		}
		if offer.Price.Total == "" {
			offer.Price.Total = o.Price.GrandTotal
		}
		for _, it := range o.Itineraries {
			itinerary := domain.Itinerary{Duration: it.Duration}
			for _, s := range it.Segments {
				itinerary.Segments = append(itinerary.Segments, domain.Segment{
					Departure:   domain.SegmentPoint{IataCode: s.Departure.IataCode, At: s.Departure.At},
					Arrival:     domain.SegmentPoint{IataCode: s.Arrival.IataCode, At: s.Arrival.At},
					CarrierCode: s.CarrierCode,
					Number:      s.Number,
				})
			}
			offer.Itineraries = append(offer.Itineraries, itinerary)
		}
		result = append(result, offer)
	}
	return result
}

// normalizeHotels converts hotel-list entries, skipping those without an id.
func normalizeHotels(in []AmadeusHotel) []domain.Hotel {
	result := make([]domain.Hotel, 0, len(in))
	for _, h := range in {
		if h.HotelID == "" {
			continue
		}
		hotel := domain.Hotel{
			HotelID: h.HotelID,
			Name:    h.Name,
			Rating:  h.Rating,
			Address: domain.Address{
				Lines:       h.Address.Lines,
				CityName:    h.Address.CityName,
				CountryCode: h.Address.CountryCode,
			},
		}
		if h.GeoCode != nil {
			hotel.GeoCode = &domain.GeoPoint{Latitude: h.GeoCode.Latitude, Longitude: h.GeoCode.Longitude}
		}
		result = append(result, hotel)
	}
	return result
}

// normalizeOffers flattens the room offers of every entry.
func normalizeOffers(in []AmadeusHotelOffers) []domain.HotelOffer {
	result := make([]domain.HotelOffer, 0)
	for _, entry := range in {
		for _, o := range entry.Offers {
			result = append(result, domain.HotelOffer{
				ID:           o.ID,
				CheckInDate:  o.CheckInDate,
				CheckOutDate: o.CheckOutDate,
				RoomType:     o.Room.Type,
				Description:  o.Room.Description.Text,
				Price:        domain.Price{Total: o.Price.Total, Currency: o.Price.Currency},
			})
		}
	}
	return result
}

// offerHotel extracts the hotel part of an offers entry.
func offerHotel(h AmadeusOfferHotel) domain.Hotel {
	hotel := domain.Hotel{
		HotelID: h.HotelID,
		Name:    h.Name,
		Rating:  h.Rating,
		Address: domain.Address{
			Lines:       h.Address.Lines,
			CityName:    h.Address.CityName,
			CountryCode: h.Address.CountryCode,
		},
	}
	if h.Latitude != nil && h.Longitude != nil {
		hotel.GeoCode = &domain.GeoPoint{Latitude: *h.Latitude, Longitude: *h.Longitude}
	}
	return hotel
}

// summarizeHotelOffers turns geo hotel-offers entries into summaries.
// Hotels without coordinates are placed at the query point.
func summarizeHotelOffers(in []AmadeusHotelOffers, queryPoint domain.GeoPoint) []domain.HotelOfferSummary {
	result := make([]domain.HotelOfferSummary, 0, len(in))
	for _, entry := range in {
		offers := normalizeOffers([]AmadeusHotelOffers{entry})
		result = append(result, domain.SummarizeHotel(offerHotel(entry.Hotel), offers, queryPoint))
	}
	return result
}

// normalizeAirlines builds a code to name map, preferring the common name.
func normalizeAirlines(in []AmadeusAirline) map[string]string {
	names := make(map[string]string, len(in))
	for _, a := range in {
		if a.IataCode == "" {
			continue
		}
		name := a.CommonName
		if name == "" {
			name = a.BusinessName
		}
		if name == "" {
			continue
		}
		names[a.IataCode] = titleCase(name)
	}
	return names
}

// titleCase turns the upper-case reference names ("AIR FRANCE") into
// display form ("Air France").
func titleCase(s string) string {
	words := strings.Fields(strings.ToLower(s))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

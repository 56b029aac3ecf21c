package fake

import (
	"time"

	"github.com/tripcompass/trip-info-service/internal/domain"
)

func pt(lat, lng float64) domain.GeoPoint {
	return domain.GeoPoint{Latitude: lat, Longitude: lng}
}

func ptr(p domain.GeoPoint) *domain.GeoPoint {
	return &p
}

var seedAirports = []domain.Airport{
	{IataCode: "CDG", Name: "CHARLES DE GAULLE", GeoCode: pt(49.0097, 2.5479)},
	{IataCode: "ORY", Name: "ORLY", GeoCode: pt(48.7262, 2.3652)},
	{IataCode: "BVA", Name: "BEAUVAIS TILLE", GeoCode: pt(49.4544, 2.1128)},
	{IataCode: "JFK", Name: "JOHN F KENNEDY INTL", GeoCode: pt(40.6413, -73.7781)},
	{IataCode: "LGA", Name: "LAGUARDIA", GeoCode: pt(40.7769, -73.8740)},
	{IataCode: "EWR", Name: "NEWARK LIBERTY INTL", GeoCode: pt(40.6895, -74.1745)},
	{IataCode: "LHR", Name: "HEATHROW", GeoCode: pt(51.4700, -0.4543)},
	{IataCode: "LGW", Name: "GATWICK", GeoCode: pt(51.1537, -0.1821)},
	{IataCode: "ARN", Name: "ARLANDA", GeoCode: pt(59.6498, 17.9238)},
	{IataCode: "CPH", Name: "KASTRUP", GeoCode: pt(55.6180, 12.6508)},
	{IataCode: "MMX", Name: "STURUP", GeoCode: pt(55.5363, 13.3762)},
}

var seedCities = []domain.Location{
	{Name: "PARIS", IataCode: "PAR", SubType: domain.SubTypeCity, GeoCode: pt(48.8566, 2.3522)},
	{Name: "NEW YORK", IataCode: "NYC", SubType: domain.SubTypeCity, GeoCode: pt(40.7128, -74.0060)},
	{Name: "LONDON", IataCode: "LON", SubType: domain.SubTypeCity, GeoCode: pt(51.5074, -0.1278)},
	{Name: "STOCKHOLM", IataCode: "STO", SubType: domain.SubTypeCity, GeoCode: pt(59.3293, 18.0686)},
	{Name: "MALMO", IataCode: "MMA", SubType: domain.SubTypeCity, GeoCode: pt(55.6050, 13.0038)},
}

var seedAirlines = map[string]string{
	"AF": "Air France",
	"AA": "American Airlines",
	"BA": "British Airways",
	"DL": "Delta Air Lines",
	"SK": "Sas",
	"UA": "United Airlines",
}

type seedRoute struct {
	origin, destination domain.AirportCode
	schedules           []Schedule
}

var seedRoutes = []seedRoute{
	{"CDG", "JFK", []Schedule{
		{Carrier: "AF", Number: "6", Departs: "10:30", Duration: 8*time.Hour + 30*time.Minute, Price: "512.30", Currency: "EUR"},
		{Carrier: "DL", Number: "263", Departs: "13:15", Duration: 8*time.Hour + 45*time.Minute, Price: "489.00", Currency: "EUR"},
		{Carrier: "AA", Number: "45", Departs: "16:40", Duration: 8*time.Hour + 50*time.Minute, Price: "530.10", Currency: "EUR"},
		{Carrier: "AF", Number: "22", Departs: "18:00", Duration: 8*time.Hour + 25*time.Minute, Price: "601.75", Currency: "EUR"},
	}},
	{"CDG", "EWR", []Schedule{
		{Carrier: "UA", Number: "57", Departs: "11:00", Duration: 8*time.Hour + 40*time.Minute, Price: "455.20", Currency: "EUR"},
	}},
	{"JFK", "CDG", []Schedule{
		{Carrier: "AF", Number: "7", Departs: "19:30", Duration: 7*time.Hour + 20*time.Minute, Price: "540.00", Currency: "USD"},
	}},
	{"LHR", "JFK", []Schedule{
		{Carrier: "BA", Number: "117", Departs: "08:25", Duration: 8 * time.Hour, Price: "610.40", Currency: "GBP"},
	}},
	{"CPH", "ARN", []Schedule{
		{Carrier: "SK", Number: "1417", Departs: "07:05", Duration: 70 * time.Minute, Price: "98.00", Currency: "EUR"},
	}},
	{"ARN", "CDG", []Schedule{
		{Carrier: "AF", Number: "1063", Departs: "12:10", Duration: 2*time.Hour + 45*time.Minute, Price: "143.60", Currency: "EUR"},
	}},
}

type seedHotel struct {
	hotel domain.Hotel
	price string
	curr  string
}

var seedHotels = []seedHotel{
	{domain.Hotel{HotelID: "HLPAR001", Name: "Hotel Louvre Rivoli", GeoCode: ptr(pt(48.8607, 2.3469)), Rating: "4",
		Address: domain.Address{Lines: []string{"20 Rue du Pont Neuf"}, CityName: "PARIS", CountryCode: "FR"}}, "212.00", "EUR"},
	{domain.Hotel{HotelID: "HLPAR002", Name: "Le Marais Boutique", GeoCode: ptr(pt(48.8589, 2.3622)), Rating: "3",
		Address: domain.Address{Lines: []string{"12 Rue de Turenne"}, CityName: "PARIS", CountryCode: "FR"}}, "154.50", "EUR"},
	{domain.Hotel{HotelID: "HLPAR003", Name: "Saint-Germain Residence", GeoCode: ptr(pt(48.8530, 2.3340)), Rating: "4",
		Address: domain.Address{Lines: []string{"5 Rue Jacob"}, CityName: "PARIS", CountryCode: "FR"}}, "238.90", "EUR"},
	{domain.Hotel{HotelID: "HLPAR004", Name: "Montmartre Studio", GeoCode: ptr(pt(48.8867, 2.3431)), Rating: "2",
		Address: domain.Address{Lines: []string{"40 Rue Lepic"}, CityName: "PARIS", CountryCode: "FR"}}, "", ""},
	{domain.Hotel{HotelID: "HLNYC001", Name: "Harbor Inn Downtown", GeoCode: ptr(pt(40.7075, -74.0113)), Rating: "4",
		Address: domain.Address{Lines: []string{"1 Water St"}, CityName: "NEW YORK", CountryCode: "US"}}, "245.00", "USD"},
	{domain.Hotel{HotelID: "HLNYC002", Name: "Tribeca Loft Hotel", GeoCode: ptr(pt(40.7163, -74.0086)), Rating: "5",
		Address: domain.Address{Lines: []string{"85 West Broadway"}, CityName: "NEW YORK", CountryCode: "US"}}, "389.00", "USD"},
	{domain.Hotel{HotelID: "HLNYC003", Name: "SoHo Corner Suites", GeoCode: ptr(pt(40.7233, -74.0030)), Rating: "3",
		Address: domain.Address{Lines: []string{"310 Spring St"}, CityName: "NEW YORK", CountryCode: "US"}}, "199.00", "USD"},
	{domain.Hotel{HotelID: "HLNYC004", Name: "Midtown Express", GeoCode: ptr(pt(40.7549, -73.9840)), Rating: "3",
		Address: domain.Address{Lines: []string{"120 W 41st St"}, CityName: "NEW YORK", CountryCode: "US"}}, "176.25", "USD"},
	{domain.Hotel{HotelID: "HLSTO001", Name: "Gamla Stan Hotel", GeoCode: ptr(pt(59.3251, 18.0711)), Rating: "4",
		Address: domain.Address{Lines: []string{"Lilla Nygatan 25"}, CityName: "STOCKHOLM", CountryCode: "SE"}}, "1650.00", "SEK"},
}

var seedPlaces = map[string]domain.GeoPoint{
	"Paris":        pt(48.8566, 2.3522),
	"Eiffel Tower": pt(48.8584, 2.2945),
	"New York":     pt(40.7128, -74.0060),
	"London":       pt(51.5074, -0.1278),
	"Stockholm":    pt(59.3293, 18.0686),
	"Malmö":        pt(55.6050, 13.0038),
	"Copenhagen":   pt(55.6761, 12.5683),
}

var seedPOIs = map[string][]domain.Place{
	"restaurant": {
		{Name: "Le Comptoir du Relais", Address: "9 Carrefour de l'Odéon, Paris"},
		{Name: "Katz's Delicatessen", Address: "205 E Houston St, New York"},
		{Name: "Operakällaren", Address: "Karl XII:s torg 1, Stockholm"},
	},
	"tourist_attraction": {
		{Name: "Musée du Louvre", Address: "Rue de Rivoli, Paris"},
		{Name: "Statue of Liberty", Address: "Liberty Island, New York"},
		{Name: "Vasa Museum", Address: "Galärvarvsvägen 14, Stockholm"},
	},
}

// NewSeededFlightsStays returns a FlightsStays fake populated with a small
// set of European and North American airports, routes and hotels.
func NewSeededFlightsStays() *FlightsStays {
	f := NewFlightsStays().
		WithAirports(seedAirports...).
		WithLocations(seedCities...).
		WithAirlines(seedAirlines)

	for _, a := range seedAirports {
		f.WithLocations(domain.Location{Name: a.Name, IataCode: a.IataCode.String(), SubType: domain.SubTypeAirport, GeoCode: a.GeoCode})
	}
	for _, r := range seedRoutes {
		f.WithSchedule(r.origin, r.destination, r.schedules...)
	}
	for _, h := range seedHotels {
		f.WithHotels(h.hotel)
		if h.price == "" {
			continue
		}
		f.WithHotelOffers(h.hotel.HotelID, domain.HotelOffer{
			ID:          h.hotel.HotelID + "-STD",
			RoomType:    "STANDARD",
			Description: "Standard room, 1 double bed",
			Price:       domain.Price{Total: h.price, Currency: h.curr},
		})
	}
	return f
}

// NewSeededMaps returns a Maps fake that knows the seeded cities.
func NewSeededMaps() *Maps {
	m := NewMaps()
	for name, p := range seedPlaces {
		m.WithPlace(name, p)
	}
	for placeType, places := range seedPOIs {
		m.WithPlaces(placeType, places...)
	}
	return m
}

// Package fake provides deterministic in-memory providers. They back the
// server in PROVIDER_MODE=fake and the handler and integration tests,
// with configurable delays, errors and call recording.
package fake

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/tripcompass/trip-info-service/internal/domain"
)

// ProviderName is the identifier reported by the fake providers.
const ProviderName = "fake"

// Operation names used by WithError and CallCount.
const (
	OpAuthenticate           = "Authenticate"
	OpSearchLocations        = "SearchLocations"
	OpNearestAirports        = "NearestAirports"
	OpSearchFlights          = "SearchFlights"
	OpSearchHotelsByGeo      = "SearchHotelsByGeo"
	OpHotelOffers            = "HotelOffers"
	OpSearchHotelOffersByGeo = "SearchHotelOffersByGeo"
	OpAirlineNames           = "AirlineNames"
	OpGeocode                = "Geocode"
	OpRoute                  = "Route"
	OpPlacesNearby           = "PlacesNearby"
)

// Call is one recorded provider invocation.
type Call struct {
	Op   string
	Args string
}

// recorder holds the behaviour shared by both fakes.
type recorder struct {
	mu     sync.Mutex
	calls  []Call
	errs   map[string]error
	delays map[string]time.Duration
}

// enter records the call, applies the configured delay and returns the
// configured error for op.
func (r *recorder) enter(ctx context.Context, op string, format string, args ...any) error {
	r.mu.Lock()
	r.calls = append(r.calls, Call{Op: op, Args: fmt.Sprintf(format, args...)})
	delay := r.delays[op]
	err := r.errs[op]
	r.mu.Unlock()

	if delay > 0 {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
	}
	if ctx.Err() != nil {
		return ctx.Err()
	}
	return err
}

func (r *recorder) setError(op string, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.errs == nil {
		r.errs = make(map[string]error)
	}
	r.errs[op] = err
}

func (r *recorder) setDelay(op string, d time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.delays == nil {
		r.delays = make(map[string]time.Duration)
	}
	r.delays[op] = d
}

// Calls returns a copy of the recorded calls in order.
func (r *recorder) Calls() []Call {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Call, len(r.calls))
	copy(out, r.calls)
	return out
}

// CallCount returns how many times op was invoked.
func (r *recorder) CallCount(op string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, c := range r.calls {
		if c.Op == op {
			n++
		}
	}
	return n
}

// Reset forgets the recorded calls.
func (r *recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = nil
}

// Schedule is a daily flight instantiated for the requested date.
type Schedule struct {
	Carrier  string
	Number   string
	Departs  string // HH:MM local
	Duration time.Duration
	Price    string
	Currency string
}

// FlightsStays is an in-memory domain.FlightsStaysProvider. Configure it
// with the With* methods before use; queries are safe for concurrent use.
type FlightsStays struct {
	recorder

	airports    []domain.Airport
	locations   []domain.Location
	offers      map[string][]domain.FlightOffer
	schedules   map[string][]Schedule
	routeErrs   map[string]error
	hotels      []domain.Hotel
	hotelOffers map[string][]domain.HotelOffer
	airlines    map[string]string
	token       domain.AccessToken
}

var _ domain.FlightsStaysProvider = (*FlightsStays)(nil)

// NewFlightsStays creates an empty fake.
func NewFlightsStays() *FlightsStays {
	return &FlightsStays{
		offers:      make(map[string][]domain.FlightOffer),
		schedules:   make(map[string][]Schedule),
		routeErrs:   make(map[string]error),
		hotelOffers: make(map[string][]domain.HotelOffer),
		airlines:    make(map[string]string),
		token:       domain.AccessToken{Value: "fake-token", ExpiresIn: 1799},
	}
}

// WithAirports adds airports to the table.
func (f *FlightsStays) WithAirports(airports ...domain.Airport) *FlightsStays {
	f.airports = append(f.airports, airports...)
	return f
}

// WithLocations adds keyword search entries.
func (f *FlightsStays) WithLocations(locations ...domain.Location) *FlightsStays {
	f.locations = append(f.locations, locations...)
	return f
}

// WithFlights adds fixed offers for a route, returned for any date.
func (f *FlightsStays) WithFlights(origin, destination domain.AirportCode, offers ...domain.FlightOffer) *FlightsStays {
	key := routeKey(origin, destination)
	f.offers[key] = append(f.offers[key], offers...)
	return f
}

// WithSchedule adds daily flights for a route.
func (f *FlightsStays) WithSchedule(origin, destination domain.AirportCode, schedules ...Schedule) *FlightsStays {
	key := routeKey(origin, destination)
	f.schedules[key] = append(f.schedules[key], schedules...)
	return f
}

// WithRouteError makes searches for one route fail with err.
func (f *FlightsStays) WithRouteError(origin, destination domain.AirportCode, err error) *FlightsStays {
	f.routeErrs[routeKey(origin, destination)] = err
	return f
}

// WithHotels adds hotels to the table.
func (f *FlightsStays) WithHotels(hotels ...domain.Hotel) *FlightsStays {
	f.hotels = append(f.hotels, hotels...)
	return f
}

// WithHotelOffers adds room offers for a hotel.
func (f *FlightsStays) WithHotelOffers(hotelID string, offers ...domain.HotelOffer) *FlightsStays {
	f.hotelOffers[hotelID] = append(f.hotelOffers[hotelID], offers...)
	return f
}

// WithAirlines adds carrier display names.
func (f *FlightsStays) WithAirlines(names map[string]string) *FlightsStays {
	for code, name := range names {
		f.airlines[code] = name
	}
	return f
}

// WithToken sets the token handed out by Authenticate.
func (f *FlightsStays) WithToken(token domain.AccessToken) *FlightsStays {
	f.token = token
	return f
}

// WithError makes every call to op fail with err. A nil err clears it.
func (f *FlightsStays) WithError(op string, err error) *FlightsStays {
	f.setError(op, err)
	return f
}

// WithDelay makes every call to op wait d, or until ctx is done.
func (f *FlightsStays) WithDelay(op string, d time.Duration) *FlightsStays {
	f.setDelay(op, d)
	return f
}

// Name returns the provider identifier.
func (f *FlightsStays) Name() string {
	return ProviderName
}

// Authenticate returns the configured token for any credentials.
func (f *FlightsStays) Authenticate(ctx context.Context, clientID, clientSecret string) (domain.AccessToken, error) {
	if err := f.enter(ctx, OpAuthenticate, "%s", clientID); err != nil {
		return domain.AccessToken{}, err
	}
	return f.token, nil
}

// SearchLocations matches the keyword against names and codes, case-insensitively.
func (f *FlightsStays) SearchLocations(ctx context.Context, keyword string, subTypes []string, limit int) ([]domain.Location, error) {
	if err := f.enter(ctx, OpSearchLocations, "%s:%s:%d", keyword, strings.Join(subTypes, ","), limit); err != nil {
		return nil, err
	}
	kw := strings.ToLower(strings.TrimSpace(keyword))
	result := make([]domain.Location, 0)
	for _, l := range f.locations {
		if !containsFold(subTypes, l.SubType) {
			continue
		}
		if !strings.Contains(strings.ToLower(l.Name), kw) && !strings.EqualFold(l.IataCode, kw) {
			continue
		}
		result = append(result, l)
		if limit > 0 && len(result) == limit {
			break
		}
	}
	return result, nil
}

// NearestAirports returns airports within radiusKm of point, closest first.
func (f *FlightsStays) NearestAirports(ctx context.Context, point domain.GeoPoint, radiusKm, limit int) ([]domain.Airport, error) {
	if err := f.enter(ctx, OpNearestAirports, "%s:%d:%d", point, radiusKm, limit); err != nil {
		return nil, err
	}
	result := make([]domain.Airport, 0)
	for _, a := range f.airports {
		d := domain.DistanceKm(point, a.GeoCode)
		if d > float64(radiusKm) {
			continue
		}
		a.DistanceKm = d
		result = append(result, a)
	}
	sort.SliceStable(result, func(i, j int) bool { return result[i].DistanceKm < result[j].DistanceKm })
	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

// SearchFlights returns the fixed offers and the schedules of the route
// instantiated for the departure date.
func (f *FlightsStays) SearchFlights(ctx context.Context, search domain.FlightSearch) ([]domain.FlightOffer, error) {
	if err := f.enter(ctx, OpSearchFlights, "%s-%s:%s", search.Origin, search.Destination, search.DepartureDate); err != nil {
		return nil, err
	}
	key := routeKey(search.Origin, search.Destination)
	if err := f.routeErrs[key]; err != nil {
		return nil, err
	}

	result := make([]domain.FlightOffer, 0, len(f.offers[key])+len(f.schedules[key]))
	result = append(result, f.offers[key]...)
	for i, s := range f.schedules[key] {
		offer, err := s.instantiate(fmt.Sprintf("%s-%d", key, i+1), search)
		if err != nil {
			return nil, err
		}
		result = append(result, offer)
	}
	return result, nil
}

// SearchHotelsByGeo returns hotels within radiusKm of point, closest first.
func (f *FlightsStays) SearchHotelsByGeo(ctx context.Context, point domain.GeoPoint, radiusKm int) ([]domain.Hotel, error) {
	if err := f.enter(ctx, OpSearchHotelsByGeo, "%s:%d", point, radiusKm); err != nil {
		return nil, err
	}
	return f.hotelsWithin(point, float64(radiusKm)), nil
}

// HotelOffers returns the configured offers of a hotel.
func (f *FlightsStays) HotelOffers(ctx context.Context, query domain.HotelOfferQuery) ([]domain.HotelOffer, error) {
	if err := f.enter(ctx, OpHotelOffers, "%s", query.HotelID); err != nil {
		return nil, err
	}
	offers := f.hotelOffers[query.HotelID]
	result := make([]domain.HotelOffer, 0, len(offers))
	for _, o := range offers {
		o.CheckInDate = query.CheckIn
		o.CheckOutDate = query.CheckOut
		result = append(result, o)
	}
	return result, nil
}

// SearchHotelOffersByGeo returns hotels with offers within the query radius.
func (f *FlightsStays) SearchHotelOffersByGeo(ctx context.Context, query domain.HotelQuery, limit int) ([]domain.HotelOfferSummary, error) {
	if err := f.enter(ctx, OpSearchHotelOffersByGeo, "%s", query.Fingerprint()); err != nil {
		return nil, err
	}
	result := make([]domain.HotelOfferSummary, 0)
	for _, h := range f.hotelsWithin(query.Point, query.RadiusKm) {
		offers := f.hotelOffers[h.HotelID]
		if len(offers) == 0 {
			continue
		}
		result = append(result, domain.SummarizeHotel(h, offers, query.Point))
		if limit > 0 && len(result) == limit {
			break
		}
	}
	return result, nil
}

// AirlineNames returns the known names among codes.
func (f *FlightsStays) AirlineNames(ctx context.Context, codes []string) (map[string]string, error) {
	if err := f.enter(ctx, OpAirlineNames, "%s", strings.Join(codes, ",")); err != nil {
		return nil, err
	}
	names := make(map[string]string, len(codes))
	for _, c := range codes {
		if name, ok := f.airlines[c]; ok {
			names[c] = name
		}
	}
	return names, nil
}

func (f *FlightsStays) hotelsWithin(point domain.GeoPoint, radiusKm float64) []domain.Hotel {
	type ranked struct {
		hotel    domain.Hotel
		distance float64
	}
	var in []ranked
	for _, h := range f.hotels {
		if h.GeoCode == nil {
			continue
		}
		d := domain.DistanceKm(point, *h.GeoCode)
		if d <= radiusKm {
			in = append(in, ranked{hotel: h, distance: d})
		}
	}
	sort.SliceStable(in, func(i, j int) bool { return in[i].distance < in[j].distance })

	result := make([]domain.Hotel, 0, len(in))
	for _, r := range in {
		result = append(result, r.hotel)
	}
	return result
}

func (s Schedule) instantiate(id string, search domain.FlightSearch) (domain.FlightOffer, error) {
	departs, err := time.Parse(domain.DateLayout+" 15:04", search.DepartureDate+" "+s.Departs)
	if err != nil {
		return domain.FlightOffer{}, fmt.Errorf("fake: schedule %s%s: %w", s.Carrier, s.Number, err)
	}
	arrives := departs.Add(s.Duration)
	const layout = "2006-01-02T15:04:05"

	return domain.FlightOffer{
		ID: id,
		Itineraries: []domain.Itinerary{{
			Duration: isoDuration(s.Duration),
			Segments: []domain.Segment{{
				Departure:   domain.SegmentPoint{IataCode: search.Origin.String(), At: departs.Format(layout)},
				Arrival:     domain.SegmentPoint{IataCode: search.Destination.String(), At: arrives.Format(layout)},
				CarrierCode: s.Carrier,
				Number:      s.Number,
			}},
		}},
		Price: domain.Price{Total: s.Price, Currency: s.Currency},
	}, nil
}

// isoDuration renders d the way flight offers do, e.g. PT8H30M.
func isoDuration(d time.Duration) string {
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	switch {
	case m == 0:
		return fmt.Sprintf("PT%dH", h)
	case h == 0:
		return fmt.Sprintf("PT%dM", m)
	default:
		return fmt.Sprintf("PT%dH%dM", h, m)
	}
}

func routeKey(origin, destination domain.AirportCode) string {
	return origin.String() + "-" + destination.String()
}

func containsFold(values []string, v string) bool {
	if len(values) == 0 {
		return true
	}
	for _, x := range values {
		if strings.EqualFold(x, v) {
			return true
		}
	}
	return false
}

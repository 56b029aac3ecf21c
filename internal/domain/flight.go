// Package domain contains the core entities, ports and errors of the trip info
// service. These types are provider-agnostic; adapters translate wire formats
// into them.
package domain

import "strings"

// FlightOffer is one priced offer returned by the Flights&Stays provider.
type FlightOffer struct {
	ID          string      `json:"id"`
	Itineraries []Itinerary `json:"itineraries"`
	Price       Price       `json:"price"`
}

// Itinerary is one direction of travel within an offer.
type Itinerary struct {
	// Duration is an ISO-8601 duration (e.g., "PT7H30M")
	Duration string    `json:"duration"`
	Segments []Segment `json:"segments"`
}

// Segment is a single flown leg.
type Segment struct {
	Departure   SegmentPoint `json:"departure"`
	Arrival     SegmentPoint `json:"arrival"`
	CarrierCode string       `json:"carrierCode"`
	Number      string       `json:"number"`
}

// SegmentPoint is a departure or arrival of a segment.
type SegmentPoint struct {
	IataCode string `json:"iataCode"`
	// At is the local timestamp as sent by the provider (e.g., "2026-11-02T10:40:00")
	At string `json:"at"`
}

// Price is an amount in a currency, kept as the provider's decimal string.
type Price struct {
	Total    string `json:"total"`
	Currency string `json:"currency"`
}

// FlightLeg is one segment of a FlightOfferSummary.
type FlightLeg struct {
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	Departure   string `json:"departure,omitempty"`
	Arrival     string `json:"arrival,omitempty"`
	Carrier     string `json:"airline,omitempty"`
}

// FlightOfferSummary is the flattened view of the first itinerary of an offer.
type FlightOfferSummary struct {
	Origin      string      `json:"origin"`
	Destination string      `json:"destination"`
	Departure   string      `json:"departure"`
	Arrival     string      `json:"arrival"`
	Duration    string      `json:"duration,omitempty"`
	Price       string      `json:"price,omitempty"`
	Currency    string      `json:"currency,omitempty"`
	Carrier     string      `json:"airline,omitempty"`
	CarrierName string      `json:"airlineName,omitempty"`
	Legs        []FlightLeg `json:"segments"`
	Stopovers   []string    `json:"stopovers,omitempty"`
}

// Key identifies a summary for deduplication: origin, destination and departure.
func (s FlightOfferSummary) Key() string {
	return s.Origin + "|" + s.Destination + "|" + s.Departure
}

// Summarize flattens the first itinerary of the offer. It returns false when
// the offer lacks the endpoints needed to describe it.
func (o FlightOffer) Summarize() (FlightOfferSummary, bool) {
	if len(o.Itineraries) == 0 {
		return FlightOfferSummary{}, false
	}
	itinerary := o.Itineraries[0]
	if len(itinerary.Segments) == 0 {
		return FlightOfferSummary{}, false
	}

	first := itinerary.Segments[0]
	last := itinerary.Segments[len(itinerary.Segments)-1]
	if first.Departure.IataCode == "" || first.Departure.At == "" ||
		last.Arrival.IataCode == "" || last.Arrival.At == "" {
		return FlightOfferSummary{}, false
	}

	summary := FlightOfferSummary{
		Origin:      first.Departure.IataCode,
		Destination: last.Arrival.IataCode,
		Departure:   first.Departure.At,
		Arrival:     last.Arrival.At,
		Duration:    itinerary.Duration,
		Price:       o.Price.Total,
		Currency:    o.Price.Currency,
		Carrier:     first.CarrierCode,
		Legs:        make([]FlightLeg, 0, len(itinerary.Segments)),
	}

	for i, seg := range itinerary.Segments {
		if seg.Departure.IataCode == "" || seg.Arrival.IataCode == "" {
			continue
		}
		summary.Legs = append(summary.Legs, FlightLeg{
			Origin:      seg.Departure.IataCode,
			Destination: seg.Arrival.IataCode,
			Departure:   seg.Departure.At,
			Arrival:     seg.Arrival.At,
			Carrier:     seg.CarrierCode,
		})
		if i < len(itinerary.Segments)-1 {
			summary.Stopovers = append(summary.Stopovers, seg.Arrival.IataCode)
		}
	}

	return summary, true
}

// SummarizeOffers flattens offers in order, dropping unusable ones and
// duplicates, and stops after limit summaries. A limit <= 0 keeps all.
func SummarizeOffers(offers []FlightOffer, limit int) []FlightOfferSummary {
	summaries := make([]FlightOfferSummary, 0)
	seen := make(map[string]struct{})
	for _, offer := range offers {
		summary, ok := offer.Summarize()
		if !ok {
			continue
		}
		if _, dup := seen[summary.Key()]; dup {
			continue
		}
		seen[summary.Key()] = struct{}{}
		summaries = append(summaries, summary)
		if limit > 0 && len(summaries) >= limit {
			break
		}
	}
	return summaries
}

// Route returns "ORIGIN-DESTINATION" for logging.
func (s FlightOfferSummary) Route() string {
	return strings.Join([]string{s.Origin, s.Destination}, "-")
}

// CarrierCodes returns the distinct carrier codes of the summaries in order.
func CarrierCodes(summaries []FlightOfferSummary) []string {
	codes := make([]string, 0)
	seen := make(map[string]struct{})
	for _, s := range summaries {
		for _, leg := range s.Legs {
			if leg.Carrier == "" {
				continue
			}
			if _, ok := seen[leg.Carrier]; ok {
				continue
			}
			seen[leg.Carrier] = struct{}{}
			codes = append(codes, leg.Carrier)
		}
	}
	return codes
}

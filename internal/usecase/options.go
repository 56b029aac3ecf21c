// Package usecase contains the trip info business logic: airport
// resolution, the flight fallback cascade, hotel searches and the trip
// aggregator. Every upstream call goes through the executor.
package usecase

// Default limits and radii.
const (
	DefaultInitialAirportRadiusKm = 200
	DefaultMaxAirportRadiusKm     = 1000
	DefaultAlternateRadiusKm      = 100
	DefaultAlternateLimit         = 3
	DefaultHotelsPerTrip          = 3
	DefaultFlightsPerTrip         = 3
	DefaultHotelGeoRadiusKm       = 10
	DefaultHotelRadiusKm          = 15
	DefaultMaxHotelResults        = 25
	DefaultLegacyHotelLimit       = 5
	DefaultLocationLimit          = 5
	DefaultNearbyAirportRadiusKm  = 200
	DefaultNearbyAirportLimit     = 5
	DefaultWideAirportRadiusKm    = 1000
)

// Options tunes the search limits. Zero fields take the defaults.
type Options struct {
	// InitialAirportRadiusKm is the first radius of the nearest airport search;
	// it doubles on every miss until it exceeds MaxAirportRadiusKm
	InitialAirportRadiusKm int
	MaxAirportRadiusKm     int

	// AlternateRadiusKm and AlternateLimit bound the fallback airports per side
	AlternateRadiusKm int
	AlternateLimit    int

	HotelsPerTrip    int
	FlightsPerTrip   int
	HotelGeoRadiusKm int

	// HotelRadiusKm is the default radius of the nearby hotel search
	HotelRadiusKm    float64
	MaxHotelResults  int
	LegacyHotelLimit int

	LocationLimit         int
	NearbyAirportRadiusKm int
	NearbyAirportLimit    int
	WideAirportRadiusKm   int
}

// DefaultOptions returns the default options.
func DefaultOptions() Options {
	return Options{
		InitialAirportRadiusKm: DefaultInitialAirportRadiusKm,
		MaxAirportRadiusKm:     DefaultMaxAirportRadiusKm,
		AlternateRadiusKm:      DefaultAlternateRadiusKm,
		AlternateLimit:         DefaultAlternateLimit,
		HotelsPerTrip:          DefaultHotelsPerTrip,
		FlightsPerTrip:         DefaultFlightsPerTrip,
		HotelGeoRadiusKm:       DefaultHotelGeoRadiusKm,
		HotelRadiusKm:          DefaultHotelRadiusKm,
		MaxHotelResults:        DefaultMaxHotelResults,
		LegacyHotelLimit:       DefaultLegacyHotelLimit,
		LocationLimit:          DefaultLocationLimit,
		NearbyAirportRadiusKm:  DefaultNearbyAirportRadiusKm,
		NearbyAirportLimit:     DefaultNearbyAirportLimit,
		WideAirportRadiusKm:    DefaultWideAirportRadiusKm,
	}
}

// resolveOptions fills the zero fields of opts with defaults. A nil opts
// yields DefaultOptions.
func resolveOptions(opts *Options) Options {
	def := DefaultOptions()
	if opts == nil {
		return def
	}
	o := *opts
	setInt := func(v *int, d int) {
		if *v <= 0 {
			*v = d
		}
	}
	setInt(&o.InitialAirportRadiusKm, def.InitialAirportRadiusKm)
	setInt(&o.MaxAirportRadiusKm, def.MaxAirportRadiusKm)
	setInt(&o.AlternateRadiusKm, def.AlternateRadiusKm)
	setInt(&o.AlternateLimit, def.AlternateLimit)
	setInt(&o.HotelsPerTrip, def.HotelsPerTrip)
	setInt(&o.FlightsPerTrip, def.FlightsPerTrip)
	setInt(&o.HotelGeoRadiusKm, def.HotelGeoRadiusKm)
	setInt(&o.MaxHotelResults, def.MaxHotelResults)
	setInt(&o.LegacyHotelLimit, def.LegacyHotelLimit)
	setInt(&o.LocationLimit, def.LocationLimit)
	setInt(&o.NearbyAirportRadiusKm, def.NearbyAirportRadiusKm)
	setInt(&o.NearbyAirportLimit, def.NearbyAirportLimit)
	setInt(&o.WideAirportRadiusKm, def.WideAirportRadiusKm)
	if o.HotelRadiusKm <= 0 {
		o.HotelRadiusKm = def.HotelRadiusKm
	}
	return o
}

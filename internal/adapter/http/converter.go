package http

import (
	"github.com/tripcompass/trip-info-service/internal/domain"
)

// ToLocationDTOs flattens location matches.
func ToLocationDTOs(locations []domain.Location) []LocationDTO {
	result := make([]LocationDTO, 0, len(locations))
	for _, l := range locations {
		result = append(result, LocationDTO{
			Name:     l.Name,
			IataCode: l.IataCode,
			Lat:      l.GeoCode.Latitude,
			Lng:      l.GeoCode.Longitude,
			SubType:  l.SubType,
		})
	}
	return result
}

// ToAirportDTOs flattens nearby airports. The distance is only reported
// when the provider supplied one.
func ToAirportDTOs(airports []domain.Airport) []AirportDTO {
	result := make([]AirportDTO, 0, len(airports))
	for _, a := range airports {
		dto := AirportDTO{
			Iata: a.IataCode.String(),
			Name: a.Name,
			Lat:  a.GeoCode.Latitude,
			Lng:  a.GeoCode.Longitude,
		}
		if a.DistanceKm > 0 {
			d := a.DistanceKm
			dto.DistanceKm = &d
		}
		result = append(result, dto)
	}
	return result
}

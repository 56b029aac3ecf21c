// Package docs registers the Swagger document served at /swagger/*.
// Regenerate with: swag init -g cmd/server/main.go
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
	"schemes": {{ marshal .Schemes }},
	"swagger": "2.0",
	"info": {
		"description": "{{escape .Description}}",
		"title": "{{.Title}}",
		"contact": {
			"name": "API Support",
			"url": "https://github.com/tripcompass/trip-info-service/issues"
		},
		"license": {
			"name": "MIT",
			"url": "https://opensource.org/licenses/MIT"
		},
		"version": "{{.Version}}"
	},
	"host": "{{.Host}}",
	"basePath": "{{.BasePath}}",
	"paths": {
		"/trip-info": {
			"get": {
				"description": "Resolves origin and destination airports, then returns up to 3 hotels with offers and up to 3 flights. Alternate airports are tried when the direct pair has no flights.",
				"produces": [
					"application/json"
				],
				"tags": [
					"trips"
				],
				"summary": "Trip info",
				"parameters": [
					{
						"type": "number",
						"description": "Destination latitude",
						"name": "lat",
						"in": "query",
						"required": true
					},
					{
						"type": "number",
						"description": "Destination longitude",
						"name": "lng",
						"in": "query",
						"required": true
					},
					{
						"type": "string",
						"description": "Origin airport code (e.g. CDG) or place name",
						"name": "origin",
						"in": "query"
					},
					{
						"type": "number",
						"description": "Origin latitude, used when origin is absent",
						"name": "originLat",
						"in": "query"
					},
					{
						"type": "number",
						"description": "Origin longitude, used when origin is absent",
						"name": "originLng",
						"in": "query"
					},
					{
						"type": "string",
						"description": "Future check-in date (YYYY-MM-DD)",
						"name": "checkInDate",
						"in": "query",
						"required": true
					},
					{
						"type": "string",
						"description": "Check-out date (YYYY-MM-DD)",
						"name": "checkOutDate",
						"in": "query"
					},
					{
						"type": "integer",
						"description": "Number of adults",
						"name": "adults",
						"in": "query",
						"required": true
					},
					{
						"type": "integer",
						"description": "Number of rooms",
						"name": "roomQuantity",
						"in": "query",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/domain.TripInfoResult"
						}
					},
					"400": {
						"description": "Validation error or unknown place",
						"schema": {
							"$ref": "#/definitions/response.ErrorDetail"
						}
					},
					"404": {
						"description": "No airport found",
						"schema": {
							"$ref": "#/definitions/response.ErrorDetail"
						}
					},
					"502": {
						"description": "Upstream error",
						"schema": {
							"$ref": "#/definitions/response.ErrorDetail"
						}
					},
					"504": {
						"description": "Gateway timeout",
						"schema": {
							"$ref": "#/definitions/response.ErrorDetail"
						}
					}
				}
			}
		},
		"/locations": {
			"get": {
				"description": "Airports and cities matching a keyword, up to 5.",
				"produces": [
					"application/json"
				],
				"tags": [
					"locations"
				],
				"summary": "Search locations",
				"parameters": [
					{
						"type": "string",
						"description": "Search keyword",
						"name": "keyword",
						"in": "query",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/http.LocationDTO"
							}
						}
					},
					"400": {
						"description": "Missing keyword",
						"schema": {
							"$ref": "#/definitions/response.ErrorDetail"
						}
					},
					"502": {
						"description": "Upstream error",
						"schema": {
							"$ref": "#/definitions/response.ErrorDetail"
						}
					}
				}
			}
		},
		"/flights": {
			"get": {
				"description": "All offers between two airports, flattened and deduplicated.",
				"produces": [
					"application/json"
				],
				"tags": [
					"flights"
				],
				"summary": "Search flights",
				"parameters": [
					{
						"type": "string",
						"description": "Origin IATA code",
						"name": "origin",
						"in": "query",
						"required": true
					},
					{
						"type": "string",
						"description": "Destination IATA code",
						"name": "destination",
						"in": "query",
						"required": true
					},
					{
						"type": "string",
						"description": "Future departure date (YYYY-MM-DD)",
						"name": "departureDate",
						"in": "query",
						"required": true
					},
					{
						"type": "string",
						"description": "Return date (YYYY-MM-DD)",
						"name": "returnDate",
						"in": "query"
					},
					{
						"type": "integer",
						"description": "Number of adults (default 1)",
						"name": "adults",
						"in": "query"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/domain.FlightSearchResult"
						}
					},
					"400": {
						"description": "Validation error",
						"schema": {
							"$ref": "#/definitions/response.ErrorDetail"
						}
					},
					"429": {
						"description": "Rate limited",
						"schema": {
							"$ref": "#/definitions/response.ErrorDetail"
						}
					},
					"502": {
						"description": "Upstream error",
						"schema": {
							"$ref": "#/definitions/response.ErrorDetail"
						}
					},
					"504": {
						"description": "Gateway timeout",
						"schema": {
							"$ref": "#/definitions/response.ErrorDetail"
						}
					}
				}
			}
		},
		"/flights/polyline": {
			"get": {
				"description": "Encoded polyline between the airports nearest to two places.",
				"produces": [
					"application/json"
				],
				"tags": [
					"flights"
				],
				"summary": "Flight path",
				"parameters": [
					{
						"type": "string",
						"description": "Start place name",
						"name": "startPlace",
						"in": "query",
						"required": true
					},
					{
						"type": "string",
						"description": "End place name",
						"name": "endPlace",
						"in": "query",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/domain.FlightPath"
						}
					},
					"400": {
						"description": "Validation error or unknown place",
						"schema": {
							"$ref": "#/definitions/response.ErrorDetail"
						}
					},
					"404": {
						"description": "No airport found",
						"schema": {
							"$ref": "#/definitions/response.ErrorDetail"
						}
					}
				}
			}
		},
		"/hotels/nearby": {
			"get": {
				"description": "Hotels with offers around a point. Results are cached for 10 minutes.",
				"produces": [
					"application/json"
				],
				"tags": [
					"hotels"
				],
				"summary": "Nearby hotels",
				"parameters": [
					{
						"type": "number",
						"description": "Latitude",
						"name": "lat",
						"in": "query",
						"required": true
					},
					{
						"type": "number",
						"description": "Longitude",
						"name": "lng",
						"in": "query",
						"required": true
					},
					{
						"type": "string",
						"description": "Future check-in date (YYYY-MM-DD)",
						"name": "checkInDate",
						"in": "query",
						"required": true
					},
					{
						"type": "string",
						"description": "Check-out date (YYYY-MM-DD)",
						"name": "checkOutDate",
						"in": "query"
					},
					{
						"type": "integer",
						"description": "Number of adults",
						"name": "adults",
						"in": "query",
						"required": true
					},
					{
						"type": "integer",
						"description": "Number of rooms",
						"name": "roomQuantity",
						"in": "query",
						"required": true
					},
					{
						"type": "number",
						"description": "Search radius in km (default 15)",
						"name": "radiusKm",
						"in": "query"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/domain.HotelSearchResult"
						}
					},
					"400": {
						"description": "Validation error",
						"schema": {
							"$ref": "#/definitions/response.ErrorDetail"
						}
					},
					"404": {
						"description": "No hotel offers",
						"schema": {
							"$ref": "#/definitions/response.ErrorDetail"
						}
					},
					"429": {
						"description": "Rate limited",
						"schema": {
							"$ref": "#/definitions/response.ErrorDetail"
						}
					}
				}
			}
		},
		"/airports/nearby": {
			"get": {
				"description": "Airports around a point. When none are in range the single nearest airport is returned.",
				"produces": [
					"application/json"
				],
				"tags": [
					"locations"
				],
				"summary": "Nearby airports",
				"parameters": [
					{
						"type": "number",
						"description": "Latitude",
						"name": "lat",
						"in": "query",
						"required": true
					},
					{
						"type": "number",
						"description": "Longitude",
						"name": "lng",
						"in": "query",
						"required": true
					},
					{
						"type": "integer",
						"description": "Radius in km (default 200)",
						"name": "radius",
						"in": "query"
					},
					{
						"type": "integer",
						"description": "Maximum airports (default 5)",
						"name": "limit",
						"in": "query"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/http.AirportDTO"
							}
						}
					},
					"400": {
						"description": "Validation error",
						"schema": {
							"$ref": "#/definitions/response.ErrorDetail"
						}
					},
					"404": {
						"description": "No airport found",
						"schema": {
							"$ref": "#/definitions/response.ErrorDetail"
						}
					}
				}
			}
		},
		"/route": {
			"get": {
				"description": "Distance, duration and polyline between two places.",
				"produces": [
					"application/json"
				],
				"tags": [
					"maps"
				],
				"summary": "Route",
				"parameters": [
					{
						"type": "string",
						"description": "Origin place",
						"name": "origin",
						"in": "query",
						"required": true
					},
					{
						"type": "string",
						"description": "Destination place",
						"name": "destination",
						"in": "query",
						"required": true
					},
					{
						"type": "string",
						"description": "driving, walking, bicycling or transit (default driving)",
						"name": "mode",
						"in": "query"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/domain.RouteInfo"
						}
					},
					"400": {
						"description": "Validation error or unknown place",
						"schema": {
							"$ref": "#/definitions/response.ErrorDetail"
						}
					}
				}
			}
		},
		"/places": {
			"get": {
				"description": "Places of a type around a point.",
				"produces": [
					"application/json"
				],
				"tags": [
					"maps"
				],
				"summary": "Nearby places",
				"parameters": [
					{
						"type": "number",
						"description": "Latitude",
						"name": "lat",
						"in": "query",
						"required": true
					},
					{
						"type": "number",
						"description": "Longitude",
						"name": "lng",
						"in": "query",
						"required": true
					},
					{
						"type": "string",
						"description": "Place type, e.g. restaurant",
						"name": "type",
						"in": "query",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/domain.Place"
							}
						}
					},
					"400": {
						"description": "Validation error",
						"schema": {
							"$ref": "#/definitions/response.ErrorDetail"
						}
					}
				}
			}
		}
	},
	"definitions": {
		"domain.GeoPoint": {
			"type": "object",
			"properties": {
				"lat": {
					"type": "number"
				},
				"lng": {
					"type": "number"
				}
			}
		},
		"domain.FlightLeg": {
			"type": "object",
			"properties": {
				"origin": {
					"type": "string"
				},
				"destination": {
					"type": "string"
				},
				"departure": {
					"type": "string"
				},
				"arrival": {
					"type": "string"
				},
				"airline": {
					"type": "string"
				}
			}
		},
		"domain.FlightOfferSummary": {
			"type": "object",
			"properties": {
				"origin": {
					"type": "string"
				},
				"destination": {
					"type": "string"
				},
				"departure": {
					"type": "string"
				},
				"arrival": {
					"type": "string"
				},
				"duration": {
					"type": "string"
				},
				"price": {
					"type": "string"
				},
				"currency": {
					"type": "string"
				},
				"airline": {
					"type": "string"
				},
				"airlineName": {
					"type": "string"
				},
				"segments": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/domain.FlightLeg"
					}
				},
				"stopovers": {
					"type": "array",
					"items": {
						"type": "string"
					}
				}
			}
		},
		"domain.HotelOfferSummary": {
			"type": "object",
			"properties": {
				"id": {
					"type": "string"
				},
				"name": {
					"type": "string"
				},
				"location": {
					"$ref": "#/definitions/domain.GeoPoint"
				},
				"address": {
					"type": "string"
				},
				"rating": {
					"type": "string"
				},
				"priceTotal": {
					"type": "string"
				},
				"currency": {
					"type": "string"
				},
				"mapsLink": {
					"type": "string"
				}
			}
		},
		"domain.SearchMetadata": {
			"type": "object",
			"properties": {
				"total_results": {
					"type": "integer"
				},
				"fallback": {
					"type": "boolean"
				},
				"source": {
					"type": "string"
				},
				"search_time_ms": {
					"type": "integer"
				}
			}
		},
		"domain.FlightSearchResult": {
			"type": "object",
			"properties": {
				"flights": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/domain.FlightOfferSummary"
					}
				},
				"metadata": {
					"$ref": "#/definitions/domain.SearchMetadata"
				},
				"requestedOrigin": {
					"type": "string"
				},
				"requestedDestination": {
					"type": "string"
				},
				"usedOrigin": {
					"type": "string"
				},
				"usedDestination": {
					"type": "string"
				}
			}
		},
		"domain.HotelSearchResult": {
			"type": "object",
			"properties": {
				"hotels": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/domain.HotelOfferSummary"
					}
				},
				"metadata": {
					"$ref": "#/definitions/domain.SearchMetadata"
				}
			}
		},
		"domain.TripInfoResult": {
			"type": "object",
			"properties": {
				"coordinates": {
					"$ref": "#/definitions/domain.GeoPoint"
				},
				"originAirport": {
					"type": "string"
				},
				"destinationAirport": {
					"type": "string"
				},
				"hotels": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/domain.HotelOfferSummary"
					}
				},
				"flights": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/domain.FlightOfferSummary"
					}
				}
			}
		},
		"domain.FlightPath": {
			"type": "object",
			"properties": {
				"startAirport": {
					"type": "string"
				},
				"endAirport": {
					"type": "string"
				},
				"polyline": {
					"type": "string"
				},
				"distanceKm": {
					"type": "number"
				}
			}
		},
		"domain.RouteInfo": {
			"type": "object",
			"properties": {
				"distance": {
					"type": "string"
				},
				"duration": {
					"type": "string"
				},
				"polyline": {
					"type": "string"
				}
			}
		},
		"domain.Place": {
			"type": "object",
			"properties": {
				"name": {
					"type": "string"
				},
				"address": {
					"type": "string"
				}
			}
		},
		"http.LocationDTO": {
			"type": "object",
			"properties": {
				"name": {
					"type": "string"
				},
				"iataCode": {
					"type": "string"
				},
				"lat": {
					"type": "number"
				},
				"lng": {
					"type": "number"
				},
				"subType": {
					"type": "string"
				}
			}
		},
		"http.AirportDTO": {
			"type": "object",
			"properties": {
				"iata": {
					"type": "string"
				},
				"name": {
					"type": "string"
				},
				"lat": {
					"type": "number"
				},
				"lng": {
					"type": "number"
				},
				"distanceKm": {
					"type": "number"
				}
			}
		},
		"response.ErrorDetail": {
			"type": "object",
			"properties": {
				"code": {
					"type": "string"
				},
				"message": {
					"type": "string"
				},
				"details": {
					"type": "object",
					"additionalProperties": {
						"type": "string"
					}
				}
			}
		}
	}
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{"http", "https"},
	Title:            "Trip Info API",
	Description:      "Combines airports, flights, hotels and maps lookups for a trip destination. Flights fall back to alternate airports when the direct pair has no offers.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}

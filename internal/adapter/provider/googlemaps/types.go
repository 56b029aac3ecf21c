package googlemaps

type latLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type geocodeResponse struct {
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message"`
	Results      []struct {
		FormattedAddress string `json:"formatted_address"`
		Geometry         struct {
			Location *latLng `json:"location"`
		} `json:"geometry"`
	} `json:"results"`
}

type textValue struct {
	Text  string `json:"text"`
	Value int64  `json:"value"`
}

type directionsResponse struct {
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message"`
	Routes       []struct {
		Summary          string `json:"summary"`
		OverviewPolyline struct {
			Points string `json:"points"`
		} `json:"overview_polyline"`
		Legs []struct {
			Distance textValue `json:"distance"`
			Duration textValue `json:"duration"`
		} `json:"legs"`
	} `json:"routes"`
}

type placesResponse struct {
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message"`
	Results      []struct {
		Name     string `json:"name"`
		Vicinity string `json:"vicinity"`
	} `json:"results"`
}

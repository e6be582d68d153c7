package external

// CurrentWeatherResponse represents the response from the current weather API
type CurrentWeatherResponse struct {
	Name    string                `json:"name"`
	Main    MainConditionsDTO     `json:"main"`
	Wind    WindDTO               `json:"wind"`
	Weather []WeatherConditionDTO `json:"weather"`
}

// MainConditionsDTO holds temperature (°C with units=metric) and humidity (%)
type MainConditionsDTO struct {
	Temp     float64 `json:"temp"`
	Humidity int     `json:"humidity"`
}

// WindDTO holds wind speed in m/s
type WindDTO struct {
	Speed float64 `json:"speed"`
}

// WeatherConditionDTO represents a single weather condition
type WeatherConditionDTO struct {
	Main        string `json:"main"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// GeoDirectResponse represents one entry from the direct geocoding API
type GeoDirectResponse struct {
	Name    string  `json:"name"`
	Country string  `json:"country"`
	State   string  `json:"state"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
}

// APIErrorResponse represents an error payload. cod is a string or a number depending on the endpoint.
type APIErrorResponse struct {
	Cod     any    `json:"cod"`
	Message string `json:"message"`
}

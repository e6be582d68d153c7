package entity

type DisplayWeather struct {
	Temperature  int       `json:"temperature"`
	Humidity     int       `json:"humidity"`
	WindSpeedKmh float64   `json:"windSpeedKmh"`
	Location     string    `json:"location"`
	Icon         IconAsset `json:"icon"`
}

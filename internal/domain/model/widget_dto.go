package model

import (
	"time"

	"go-weather/internal/domain/entity"
)

// SearchDTO is the body of a city search
type SearchDTO struct {
	City string `json:"city"`
}

// SuggestDTO is the body of a keystroke in the search box
type SuggestDTO struct {
	Query string `json:"query"`
}

// SelectDTO is the body of a clicked suggestion
type SelectDTO struct {
	Suggestion string `json:"suggestion"`
}

// PositionDTO carries a geolocation fix from the browser
type PositionDTO struct {
	Latitude  *float64 `json:"latitude" validate:"required,latitude"`
	Longitude *float64 `json:"longitude" validate:"required,longitude"`
}

// GeolocationDTO is either a position or an unavailable marker
type GeolocationDTO struct {
	Unavailable bool `json:"unavailable"`
	PositionDTO
}

// HasPosition reports whether a position was sent at all
func (g GeolocationDTO) HasPosition() bool {
	return g.Latitude != nil || g.Longitude != nil
}

// Coordinates converts the position, assuming it was validated
func (p PositionDTO) Coordinates() entity.Coordinates {
	var c entity.Coordinates
	if p.Latitude != nil {
		c.Latitude = *p.Latitude
	}
	if p.Longitude != nil {
		c.Longitude = *p.Longitude
	}
	return c
}

type AlertKind string

const (
	AlertEmptyInput         AlertKind = "empty_input"
	AlertLocationNotFound   AlertKind = "location_not_found"
	AlertWeatherUnavailable AlertKind = "weather_unavailable"
)

type AlertDTO struct {
	Kind    AlertKind `json:"kind"`
	Message string    `json:"message"`
}

// WeatherDTO is DisplayWeather as sent to the browser, with the icon resolved to a URL
type WeatherDTO struct {
	Temperature  int     `json:"temperature"`
	Humidity     int     `json:"humidity"`
	WindSpeedKmh float64 `json:"windSpeedKmh"`
	Location     string  `json:"location"`
	Icon         string  `json:"icon"`
	IconURL      string  `json:"iconUrl"`
}

// WidgetResponse is returned by every widget route
type WidgetResponse struct {
	ID          string      `json:"id"`
	Weather     *WeatherDTO `json:"weather"`
	Suggestions []string    `json:"suggestions"`
	Alert       *AlertDTO   `json:"alert,omitempty"`
}

type EventType string

const (
	EventWeather     EventType = "weather"
	EventSuggestions EventType = "suggestions"
	EventAlert       EventType = "alert"
)

// WidgetEvent is published after a state slot is replaced or an alert is raised
type WidgetEvent struct {
	WidgetID    string                 `json:"widgetId"`
	Type        EventType              `json:"type"`
	Weather     *entity.DisplayWeather `json:"weather,omitempty"`
	Suggestions []string               `json:"suggestions"`
	Alert       *AlertDTO              `json:"alert,omitempty"`
	At          time.Time              `json:"at"`
}

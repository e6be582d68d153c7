package api

import (
	"context"

	"go-weather/internal/domain/entity"
	"go-weather/internal/domain/model/external"
)

// WeatherGateway defines the interface for current weather API calls
type WeatherGateway interface {
	// CurrentByCity gets the current weather for a free-text city query
	CurrentByCity(ctx context.Context, city string) (*external.CurrentWeatherResponse, error)

	// CurrentByCoordinates gets the current weather at a position
	CurrentByCoordinates(ctx context.Context, coords entity.Coordinates) (*external.CurrentWeatherResponse, error)
}

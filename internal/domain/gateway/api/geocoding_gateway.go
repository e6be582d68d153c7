package api

import (
	"context"

	"go-weather/internal/domain/entity"
	"go-weather/internal/domain/model/external"
)

// GeocodingGateway resolves partial place names into candidate places
type GeocodingGateway interface {
	// Direct returns at most limit places matching query
	Direct(ctx context.Context, query string, limit int) ([]external.GeoDirectResponse, error)
}

// ReverseGeocodingGateway names the place at a position
type ReverseGeocodingGateway interface {
	Reverse(ctx context.Context, coords entity.Coordinates) (*external.ReverseGeocodeResponse, error)
}

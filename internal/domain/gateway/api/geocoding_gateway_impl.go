package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"go-weather/internal/domain/entity"
	"go-weather/internal/domain/model/external"
	"go-weather/pkg/http"
)

const (
	geoDirectPath = "/geo/1.0/direct"
	reversePath   = "/reverse"
)

type geocodingGatewayImpl struct {
	httpClient *http.Client
	apiKey     string
}

// NewGeocodingGateway creates a GeocodingGateway backed by the OpenWeatherMap geocoding API
func NewGeocodingGateway(baseUrl string, apiKey string, clientOptions http.ClientOptions) GeocodingGateway {
	return &geocodingGatewayImpl{
		httpClient: http.NewHttpClient(baseUrl, clientOptions),
		apiKey:     apiKey,
	}
}

// Direct returns at most limit places matching query
func (g *geocodingGatewayImpl) Direct(ctx context.Context, query string, limit int) ([]external.GeoDirectResponse, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("limit", strconv.Itoa(limit))
	params.Set("appid", g.apiKey)

	successResp, errResp, _, err := g.httpClient.Request().
		WithContext(ctx).
		WithPath(geoDirectPath).
		WithQueryParams(params).
		WithSuccessResp(&[]external.GeoDirectResponse{}).
		WithErrorResp(&external.APIErrorResponse{}).
		Execute()

	if err == nil {
		return *successResp.(*[]external.GeoDirectResponse), nil
	}

	return nil, translateError(err, errResp)
}

type reverseGeocodingGatewayImpl struct {
	httpClient *http.Client
}

// NewReverseGeocodingGateway creates a ReverseGeocodingGateway backed by Nominatim.
// clientOptions should carry a User-Agent default header, Nominatim rejects anonymous clients.
func NewReverseGeocodingGateway(baseUrl string, clientOptions http.ClientOptions) ReverseGeocodingGateway {
	return &reverseGeocodingGatewayImpl{
		httpClient: http.NewHttpClient(baseUrl, clientOptions),
	}
}

// Reverse names the place at coords
func (r *reverseGeocodingGatewayImpl) Reverse(ctx context.Context, coords entity.Coordinates) (*external.ReverseGeocodeResponse, error) {
	successResp, errResp, _, err := r.httpClient.Request().
		WithContext(ctx).
		WithPath(reversePath).
		WithQueryParam("lat", coords.LatString()).
		WithQueryParam("lon", coords.LonString()).
		WithQueryParam("format", "json").
		WithSuccessResp(&external.ReverseGeocodeResponse{}).
		WithErrorResp(&external.APIErrorResponse{}).
		Execute()

	if err != nil {
		return nil, translateError(err, errResp)
	}

	response := successResp.(*external.ReverseGeocodeResponse)
	// Nominatim answers 200 with an error field for unnamed places such as open sea
	if response.Error != "" {
		return nil, fmt.Errorf("%w: %s", ErrLocationNotFound, response.Error)
	}
	return response, nil
}

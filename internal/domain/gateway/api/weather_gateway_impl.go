package api

import (
	"context"
	"net/url"

	"go-weather/internal/domain/entity"
	"go-weather/internal/domain/model/external"
	"go-weather/pkg/http"
)

const currentWeatherPath = "/data/2.5/weather"

// weatherGatewayImpl implements the WeatherGateway interface
type weatherGatewayImpl struct {
	httpClient *http.Client
	apiKey     string
	units      string
}

// NewWeatherGateway creates a new instance of WeatherGateway with HTTP client
func NewWeatherGateway(baseUrl string, apiKey string, units string, clientOptions http.ClientOptions) WeatherGateway {
	if units == "" {
		units = "metric"
	}
	return &weatherGatewayImpl{
		httpClient: http.NewHttpClient(baseUrl, clientOptions),
		apiKey:     apiKey,
		units:      units,
	}
}

// CurrentByCity gets the current weather for a free-text city query
func (w *weatherGatewayImpl) CurrentByCity(ctx context.Context, city string) (*external.CurrentWeatherResponse, error) {
	params := url.Values{}
	params.Set("q", city)
	return w.current(ctx, params)
}

// CurrentByCoordinates gets the current weather at a position
func (w *weatherGatewayImpl) CurrentByCoordinates(ctx context.Context, coords entity.Coordinates) (*external.CurrentWeatherResponse, error) {
	params := url.Values{}
	params.Set("lat", coords.LatString())
	params.Set("lon", coords.LonString())
	return w.current(ctx, params)
}

func (w *weatherGatewayImpl) current(ctx context.Context, params url.Values) (*external.CurrentWeatherResponse, error) {
	params.Set("units", w.units)
	params.Set("appid", w.apiKey)

	successResp, errResp, _, err := w.httpClient.Request().
		WithContext(ctx).
		WithMethod(http.GET).
		WithPath(currentWeatherPath).
		WithQueryParams(params).
		WithSuccessResp(&external.CurrentWeatherResponse{}).
		WithErrorResp(&external.APIErrorResponse{}).
		Execute()

	if err == nil {
		return successResp.(*external.CurrentWeatherResponse), nil
	}

	return nil, translateError(err, errResp)
}

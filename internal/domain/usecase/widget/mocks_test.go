package widget

import (
	"context"
	"sync"

	"github.com/stretchr/testify/mock"

	"go-weather/internal/domain/entity"
	"go-weather/internal/domain/model"
	"go-weather/internal/domain/model/external"
)

type weatherGatewayMock struct {
	mock.Mock
}

func (m *weatherGatewayMock) CurrentByCity(ctx context.Context, city string) (*external.CurrentWeatherResponse, error) {
	args := m.Called(ctx, city)
	response, _ := args.Get(0).(*external.CurrentWeatherResponse)
	return response, args.Error(1)
}

func (m *weatherGatewayMock) CurrentByCoordinates(ctx context.Context, coords entity.Coordinates) (*external.CurrentWeatherResponse, error) {
	args := m.Called(ctx, coords)
	response, _ := args.Get(0).(*external.CurrentWeatherResponse)
	return response, args.Error(1)
}

type geocodingGatewayMock struct {
	mock.Mock
}

func (m *geocodingGatewayMock) Direct(ctx context.Context, query string, limit int) ([]external.GeoDirectResponse, error) {
	args := m.Called(ctx, query, limit)
	places, _ := args.Get(0).([]external.GeoDirectResponse)
	return places, args.Error(1)
}

type reverseGatewayMock struct {
	mock.Mock
}

func (m *reverseGatewayMock) Reverse(ctx context.Context, coords entity.Coordinates) (*external.ReverseGeocodeResponse, error) {
	args := m.Called(ctx, coords)
	response, _ := args.Get(0).(*external.ReverseGeocodeResponse)
	return response, args.Error(1)
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []model.WidgetEvent
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, event model.WidgetEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return p.err
}

func (p *recordingPublisher) Health(context.Context) model.ComponentHealthStatus {
	return model.ComponentHealthStatus{Status: model.StatusUp}
}

func (p *recordingPublisher) ofType(eventType model.EventType) []model.WidgetEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	var matched []model.WidgetEvent
	for _, event := range p.events {
		if event.Type == eventType {
			matched = append(matched, event)
		}
	}
	return matched
}

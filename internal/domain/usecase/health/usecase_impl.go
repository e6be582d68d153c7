package health

import (
	"context"

	"go-weather/internal/domain/gateway/events"
	"go-weather/internal/domain/model"
)

type healthUseCase struct {
	widgets   WidgetCounter
	publisher events.StatePublisher
}

func NewHealthUseCase(widgets WidgetCounter, publisher events.StatePublisher) UseCase {
	return &healthUseCase{
		widgets:   widgets,
		publisher: publisher,
	}
}

// CheckHealth is DOWN only when an enabled event publisher is unreachable
func (useCase *healthUseCase) CheckHealth(ctx context.Context) model.HealthResponse {
	eventsHealth := useCase.publisher.Health(ctx)

	overallStatus := model.StatusUp
	if eventsHealth.Status == model.StatusDown {
		overallStatus = model.StatusDown
	}

	return model.HealthResponse{
		Status:  overallStatus,
		Widgets: useCase.widgets.Count(),
		Events:  eventsHealth,
	}
}

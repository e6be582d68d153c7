package health

import (
	"context"

	"go-weather/internal/domain/model"
)

type UseCase interface {
	CheckHealth(ctx context.Context) model.HealthResponse
}

// WidgetCounter reports the number of open widget sessions
type WidgetCounter interface {
	Count() int
}

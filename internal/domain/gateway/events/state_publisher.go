package events

import (
	"context"

	"go-weather/internal/domain/model"
)

// StatePublisher fans out widget state changes to external subscribers
type StatePublisher interface {
	Publish(ctx context.Context, event model.WidgetEvent) error
	Health(ctx context.Context) model.ComponentHealthStatus
}

type nopStatePublisher struct{}

// NewNopStatePublisher returns a publisher that drops every event
func NewNopStatePublisher() StatePublisher {
	return nopStatePublisher{}
}

func (nopStatePublisher) Publish(context.Context, model.WidgetEvent) error {
	return nil
}

func (nopStatePublisher) Health(context.Context) model.ComponentHealthStatus {
	return model.ComponentHealthStatus{
		Status:  model.StatusDisabled,
		Details: map[string]string{"message": "State events disabled"},
	}
}

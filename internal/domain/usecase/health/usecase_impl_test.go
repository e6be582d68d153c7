package health

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"go-weather/internal/domain/gateway/events"
	"go-weather/internal/domain/model"
)

type fixedCounter int

func (c fixedCounter) Count() int {
	return int(c)
}

type downPublisher struct {
	events.StatePublisher
}

func (downPublisher) Health(context.Context) model.ComponentHealthStatus {
	return model.ComponentHealthStatus{Status: model.StatusDown}
}

func TestCheckHealthWithEventsDisabled(t *testing.T) {
	health := NewHealthUseCase(fixedCounter(3), events.NewNopStatePublisher()).CheckHealth(context.Background())

	assert.Equal(t, model.StatusUp, health.Status)
	assert.Equal(t, 3, health.Widgets)
	assert.Equal(t, model.StatusDisabled, health.Events.Status)
}

func TestCheckHealthWithEventsDown(t *testing.T) {
	health := NewHealthUseCase(fixedCounter(0), downPublisher{}).CheckHealth(context.Background())

	assert.Equal(t, model.StatusDown, health.Status)
}

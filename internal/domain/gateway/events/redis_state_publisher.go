package events

import (
	"context"
	"fmt"

	"go-weather/internal/domain/model"
	"go-weather/pkg/redis"
)

type redisStatePublisher struct {
	channel   string
	publisher *redis.Publisher
	health    *redis.HealthChecker
}

// NewRedisStatePublisher publishes widget events as JSON on <namespace>::<channel>
func NewRedisStatePublisher(client *redis.Client, namespace string, channel string) StatePublisher {
	return &redisStatePublisher{
		channel:   channel,
		publisher: redis.NewPublisher(client.GetClient(), redis.NewPubSubConfig().WithChannelNamespace(namespace)),
		health:    redis.NewHealthChecker(client.GetClient(), client.GetConfig()),
	}
}

func (p *redisStatePublisher) Publish(ctx context.Context, event model.WidgetEvent) error {
	if err := p.publisher.PublishJSON(ctx, p.channel, event); err != nil {
		return fmt.Errorf("failed to publish %s event: %w", event.Type, err)
	}
	return nil
}

func (p *redisStatePublisher) Health(ctx context.Context) model.ComponentHealthStatus {
	check := p.health.HealthCheck(ctx)

	status := model.StatusDown
	if check.Status == redis.StatusUp {
		status = model.StatusUp
	}

	details := make(map[string]string, len(check.Details)+1)
	for key, value := range check.Details {
		details[key] = value
	}
	details["channel"] = p.publisher.ChannelName(p.channel)

	return model.ComponentHealthStatus{
		Status:  status,
		Details: details,
	}
}

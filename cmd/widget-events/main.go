package main

import (
	"context"
	"encoding/json"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"go-weather/internal/domain/model"
	"go-weather/pkg/log"
	"go-weather/pkg/redis"
	"go-weather/pkg/resource"
)

// widget-events tails the widget state channel and logs every event
func main() {
	defer func() { _ = log.Sync() }()

	client, err := redis.NewClient(redis.NewRedisConfigFromProperties("app.redis"))
	if err != nil {
		log.Fatal("Failed to create redis client", zap.Error(err))
	}
	defer func() { _ = client.Close() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	subscriber := redis.NewSubscriber(client.GetClient(),
		redis.NewPubSubConfig().WithChannelNamespace(resource.GetString("app.events.namespace")))

	channel := resource.GetString("app.events.channel")
	log.Infof("Tailing widget events on %s", channel)
	if err = subscriber.Subscribe(ctx, channel, redis.MessageHandlerFunc(logEvent)); err != nil {
		log.Fatal("Widget event subscription stopped", zap.Error(err))
	}
}

func logEvent(_ context.Context, channel string, message string) error {
	var event model.WidgetEvent
	if err := json.Unmarshal([]byte(message), &event); err != nil {
		log.Warn("Skipping malformed widget event", zap.String("channel", channel), zap.Error(err))
		return nil
	}

	fields := []zap.Field{
		zap.String("widget_id", event.WidgetID),
		zap.String("type", string(event.Type)),
		zap.Time("at", event.At),
	}
	switch event.Type {
	case model.EventWeather:
		fields = append(fields, zap.Any("weather", event.Weather))
	case model.EventSuggestions:
		fields = append(fields, zap.Strings("suggestions", event.Suggestions))
	case model.EventAlert:
		fields = append(fields, zap.Any("alert", event.Alert))
	}
	log.Info("Widget event", fields...)
	return nil
}

package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// PubSubConfig defines the configuration options for Redis pub/sub
type PubSubConfig struct {
	// ChannelNamespace prefixes every channel as <namespace>::<channel>
	ChannelNamespace string
}

// NewPubSubConfig creates a new pub/sub configuration with default values
func NewPubSubConfig() *PubSubConfig {
	return &PubSubConfig{}
}

// WithChannelNamespace sets the namespace for organizing channels
func (psc *PubSubConfig) WithChannelNamespace(namespace string) *PubSubConfig {
	psc.ChannelNamespace = namespace
	return psc
}

func (psc *PubSubConfig) channelName(channel string) string {
	if psc.ChannelNamespace != "" {
		return psc.ChannelNamespace + "::" + channel
	}
	return channel
}

// Publisher handles Redis publishing operations
type Publisher struct {
	client *redis.Client
	config *PubSubConfig
}

// NewPublisher creates a new publisher
func NewPublisher(client *redis.Client, config *PubSubConfig) *Publisher {
	if config == nil {
		config = NewPubSubConfig()
	}
	return &Publisher{
		client: client,
		config: config,
	}
}

// ChannelName constructs the full channel name using ChannelNamespace::channelName format
func (p *Publisher) ChannelName(channel string) string {
	return p.config.channelName(channel)
}

// Publish publishes a raw message to a channel
func (p *Publisher) Publish(ctx context.Context, channel string, message interface{}) error {
	return p.client.Publish(ctx, p.ChannelName(channel), message).Err()
}

// PublishJSON publishes a JSON message to a channel
func (p *Publisher) PublishJSON(ctx context.Context, channel string, message interface{}) error {
	jsonData, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("failed to marshal message to JSON: %w", err)
	}
	return p.client.Publish(ctx, p.ChannelName(channel), jsonData).Err()
}

// MessageHandler receives messages delivered to a subscription
type MessageHandler interface {
	HandleMessage(ctx context.Context, channel string, message string) error
}

// MessageHandlerFunc adapts a function to MessageHandler
type MessageHandlerFunc func(ctx context.Context, channel string, message string) error

func (f MessageHandlerFunc) HandleMessage(ctx context.Context, channel string, message string) error {
	return f(ctx, channel, message)
}

// Subscriber consumes namespaced channels
type Subscriber struct {
	client *redis.Client
	config *PubSubConfig
}

// NewSubscriber creates a new subscriber
func NewSubscriber(client *redis.Client, config *PubSubConfig) *Subscriber {
	if config == nil {
		config = NewPubSubConfig()
	}
	return &Subscriber{
		client: client,
		config: config,
	}
}

// Subscribe blocks, passing every message on channel to handler until ctx is done.
// A handler error stops the subscription and is returned.
func (s *Subscriber) Subscribe(ctx context.Context, channel string, handler MessageHandler) error {
	name := s.config.channelName(channel)
	pubsub := s.client.Subscribe(ctx, name)
	defer func() { _ = pubsub.Close() }()

	if _, err := pubsub.Receive(ctx); err != nil {
		return fmt.Errorf("failed to subscribe to %s: %w", name, err)
	}

	messages := pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			return nil
		case m, ok := <-messages:
			if !ok {
				return nil
			}
			if err := handler.HandleMessage(ctx, m.Channel, m.Payload); err != nil {
				return fmt.Errorf("handler failed on %s: %w", m.Channel, err)
			}
		}
	}
}

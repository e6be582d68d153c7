package redis

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T) (*miniredis.Miniredis, *Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	port, err := strconv.Atoi(mr.Port())
	require.NoError(t, err)

	client, err := NewClient(NewRedisConfig().WithHost(mr.Host()).WithPort(port))
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}

func TestConfigValidate(t *testing.T) {
	assert.NoError(t, NewRedisConfig().Validate())
	assert.EqualError(t, NewRedisConfig().WithHost("").Validate(), "host cannot be empty")
	assert.Error(t, NewRedisConfig().WithPort(70000).Validate())
	assert.Error(t, NewRedisConfig().WithDatabase(16).Validate())
	assert.Equal(t, "cache:6380", NewRedisConfig().WithHost("cache").WithPort(6380).Addr())
}

func TestNewRedisConfigFromProperties(t *testing.T) {
	config := NewRedisConfigFromProperties("app.redis")
	assert.Equal(t, "localhost", config.Host)
	assert.Equal(t, 6379, config.Port)
	assert.Equal(t, 0, config.Database)
}

func TestNewClientRejectsInvalidConfig(t *testing.T) {
	_, err := NewClient(NewRedisConfig().WithPort(0))
	assert.Error(t, err)
}

func TestClientPing(t *testing.T) {
	_, client := newTestClient(t)
	assert.NoError(t, client.Ping(context.Background()))
}

func TestPublisherPublishJSON(t *testing.T) {
	_, client := newTestClient(t)
	ctx := context.Background()

	publisher := NewPublisher(client.GetClient(), NewPubSubConfig().WithChannelNamespace("go-weather"))
	assert.Equal(t, "go-weather::widget-state", publisher.ChannelName("widget-state"))

	sub := client.GetClient().Subscribe(ctx, "go-weather::widget-state")
	defer func() { _ = sub.Close() }()
	_, err := sub.Receive(ctx)
	require.NoError(t, err)

	require.NoError(t, publisher.PublishJSON(ctx, "widget-state", map[string]string{"type": "weather"}))

	select {
	case m := <-sub.Channel():
		assert.JSONEq(t, `{"type":"weather"}`, m.Payload)
	case <-time.After(2 * time.Second):
		t.Fatal("message not received")
	}
}

func TestPublisherWithoutNamespace(t *testing.T) {
	_, client := newTestClient(t)
	publisher := NewPublisher(client.GetClient(), nil)
	assert.Equal(t, "widget-state", publisher.ChannelName("widget-state"))
	assert.NoError(t, publisher.Publish(context.Background(), "widget-state", "raw"))
}

func TestHealthCheck(t *testing.T) {
	mr, client := newTestClient(t)
	checker := NewHealthChecker(client.GetClient(), client.GetConfig())

	health := checker.HealthCheck(context.Background())
	assert.Equal(t, StatusUp, health.Status)
	assert.Equal(t, mr.Host(), health.Details["host"])
	assert.Empty(t, checker.GetLastError())

	mr.Close()
	health = checker.HealthCheck(context.Background())
	assert.Equal(t, StatusDown, health.Status)
	assert.NotEmpty(t, checker.GetLastError())
}

func TestSubscriberDeliversUntilCancelled(t *testing.T) {
	_, client := newTestClient(t)
	config := NewPubSubConfig().WithChannelNamespace("go-weather")
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	received := make(chan string, 1)
	done := make(chan error, 1)
	subscriber := NewSubscriber(client.GetClient(), config)
	go func() {
		done <- subscriber.Subscribe(ctx, "widget-state", MessageHandlerFunc(func(_ context.Context, channel string, message string) error {
			assert.Equal(t, "go-weather::widget-state", channel)
			received <- message
			return nil
		}))
	}()

	publisher := NewPublisher(client.GetClient(), config)
	require.Eventually(t, func() bool {
		n, err := client.GetClient().PubSubNumSub(context.Background(), "go-weather::widget-state").Result()
		return err == nil && n["go-weather::widget-state"] == 1
	}, 2*time.Second, 10*time.Millisecond)
	require.NoError(t, publisher.Publish(context.Background(), "widget-state", "hello"))

	select {
	case message := <-received:
		assert.Equal(t, "hello", message)
	case <-time.After(2 * time.Second):
		t.Fatal("message not received")
	}

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("subscriber did not stop")
	}
}

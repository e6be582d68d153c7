package redis

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisHealthCheck represents the health check response for Redis
type RedisHealthCheck struct {
	Status  HealthStatus      `json:"status"`
	Details map[string]string `json:"details"`
}

// HealthChecker provides Redis health checking functionality
type HealthChecker struct {
	client    *redis.Client
	config    *Config
	timeout   time.Duration
	mu        sync.Mutex
	lastCheck time.Time
	lastError string
}

// NewHealthChecker creates a new Redis health checker
func NewHealthChecker(client *redis.Client, config *Config) *HealthChecker {
	return &HealthChecker{
		client:  client,
		config:  config,
		timeout: 2 * time.Second,
	}
}

// HealthCheck pings Redis and reports connection details
func (h *HealthChecker) HealthCheck(ctx context.Context) RedisHealthCheck {
	h.mu.Lock()
	defer h.mu.Unlock()

	ctx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()

	status := StatusUp
	h.lastError = ""
	if err := h.client.Ping(ctx).Err(); err != nil {
		status = StatusDown
		h.lastError = fmt.Sprintf("ping failed: %v", err)
	}
	h.lastCheck = time.Now()

	stats := h.client.PoolStats()
	return RedisHealthCheck{
		Status: status,
		Details: map[string]string{
			"host":        h.config.Host,
			"port":        strconv.Itoa(h.config.Port),
			"database":    strconv.Itoa(h.config.Database),
			"total_conns": strconv.FormatUint(uint64(stats.TotalConns), 10),
			"idle_conns":  strconv.FormatUint(uint64(stats.IdleConns), 10),
			"last_check":  h.lastCheck.Format(time.RFC3339),
			"last_error":  h.lastError,
		},
	}
}

// GetLastError returns the last error encountered during health checks
func (h *HealthChecker) GetLastError() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.lastError
}

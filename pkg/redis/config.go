package redis

import (
	"fmt"
	"time"

	"go-weather/pkg/resource"
)

// Config represents Redis connection options
type Config struct {
	Host     string
	Port     int
	Password string
	Database int
	// MinIdleConns is the minimum number of idle connections kept open
	MinIdleConns int
	// MaxActive caps the connections the pool may open; 0 means no limit
	MaxActive int
	// MaxRetries is the go-redis command retry count; -1 disables retries
	MaxRetries   int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	PoolTimeout  time.Duration
}

// NewRedisConfig creates a new Redis configuration with default values
func NewRedisConfig() *Config {
	return &Config{
		Host:         "localhost",
		Port:         6379,
		MinIdleConns: 1,
		MaxActive:    20,
		MaxRetries:   -1,
		DialTimeout:  2 * time.Second,
		ReadTimeout:  time.Second,
		WriteTimeout: time.Second,
		PoolTimeout:  2 * time.Second,
	}
}

// NewRedisConfigFromProperties reads <prefix>.host, .port, .password and .database over the defaults.
func NewRedisConfigFromProperties(prefix string) *Config {
	config := NewRedisConfig()
	if host := resource.GetString(prefix + ".host"); host != "" {
		config.Host = host
	}
	if port := resource.GetInt(prefix + ".port"); port != 0 {
		config.Port = port
	}
	config.Password = resource.GetString(prefix + ".password")
	config.Database = resource.GetInt(prefix + ".database")
	return config
}

// WithHost sets the Redis server host
func (c *Config) WithHost(host string) *Config {
	c.Host = host
	return c
}

// WithPort sets the Redis server port
func (c *Config) WithPort(port int) *Config {
	c.Port = port
	return c
}

// WithPassword sets the Redis server password
func (c *Config) WithPassword(password string) *Config {
	c.Password = password
	return c
}

// WithDatabase sets the Redis database number
func (c *Config) WithDatabase(database int) *Config {
	c.Database = database
	return c
}

// Addr returns host:port.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Host == "" {
		return fmt.Errorf("host cannot be empty")
	}
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid port: %d, must be between 1 and 65535", c.Port)
	}
	if c.Database < 0 || c.Database > 15 {
		return fmt.Errorf("invalid database: %d, must be between 0 and 15", c.Database)
	}
	if c.MinIdleConns < 0 || c.MaxActive < 0 {
		return fmt.Errorf("invalid pool size: min idle %d, max active %d", c.MinIdleConns, c.MaxActive)
	}
	if c.DialTimeout < 0 || c.ReadTimeout < 0 || c.WriteTimeout < 0 || c.PoolTimeout < 0 {
		return fmt.Errorf("timeouts must be non-negative")
	}
	return nil
}

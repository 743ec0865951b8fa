package redisclient

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

type Config struct {
	Addr     string
	Password string
	DB       int
}

// New builds the Redis client used by the rates cache. Returns nil when no
// address is configured, which downgrades callers to in-process caching.
func New(cfg Config) *redis.Client {
	if cfg.Addr == "" {
		return nil
	}

	return redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  2 * time.Second,
		ReadTimeout:  2 * time.Second,
		WriteTimeout: 2 * time.Second,
	})
}

// Ping checks connectivity; safe on a nil client.
func Ping(ctx context.Context, c *redis.Client) error {
	if c == nil {
		return nil
	}
	return c.Ping(ctx).Err()
}

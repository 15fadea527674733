// Package redis connects to Redis for the key-value document backend.
package redis

import (
	"context"
	"errors"
	"fmt"

	goredis "github.com/redis/go-redis/v9"

	"github.com/felixgeelhaar/todolist/internal/shared/infrastructure/database"
)

// Client wraps a go-redis client.
type Client struct {
	rdb *goredis.Client
}

// Connect parses a redis:// URL, dials and pings the server.
func Connect(ctx context.Context, cfg database.Config) (*Client, error) {
	if cfg.URL == "" {
		return nil, errors.New("database URL is required for Redis")
	}

	opts, err := goredis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("invalid Redis URL: %w", err)
	}
	if cfg.MaxConns > 0 {
		opts.PoolSize = cfg.MaxConns
	}

	rdb := goredis.NewClient(opts)
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("failed to ping Redis: %w", err)
	}

	return &Client{rdb: rdb}, nil
}

// Redis returns the underlying client.
func (c *Client) Redis() *goredis.Client {
	return c.rdb
}

// Ping verifies the server is still reachable.
func (c *Client) Ping(ctx context.Context) error {
	return c.rdb.Ping(ctx).Err()
}

// Close closes the client.
func (c *Client) Close() error {
	return c.rdb.Close()
}

// Package mongodb connects to the MongoDB document store.
package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/felixgeelhaar/todolist/internal/shared/infrastructure/convert"
	"github.com/felixgeelhaar/todolist/internal/shared/infrastructure/database"
)

const disconnectTimeout = 5 * time.Second

// Client holds a connected MongoDB client and the selected database.
type Client struct {
	client *mongo.Client
	db     *mongo.Database
}

// Connect dials MongoDB and verifies the primary is reachable.
func Connect(ctx context.Context, cfg database.Config) (*Client, error) {
	if cfg.URL == "" {
		return nil, errors.New("database URL is required for MongoDB")
	}

	opts := options.Client().ApplyURI(cfg.URL)
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid MongoDB URL: %w", err)
	}
	if cfg.MaxConns > 0 {
		opts.SetMaxPoolSize(convert.IntToUint64Clamped(cfg.MaxConns))
	}

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	return &Client{
		client: client,
		db:     client.Database(cfg.DatabaseName()),
	}, nil
}

// Database returns the selected database.
func (c *Client) Database() *mongo.Database {
	return c.db
}

// Collection returns a collection in the selected database.
func (c *Client) Collection(name string) *mongo.Collection {
	return c.db.Collection(name)
}

// Ping verifies the primary is still reachable.
func (c *Client) Ping(ctx context.Context) error {
	return c.client.Ping(ctx, readpref.Primary())
}

// Close disconnects the client.
func (c *Client) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), disconnectTimeout)
	defer cancel()
	return c.client.Disconnect(ctx)
}

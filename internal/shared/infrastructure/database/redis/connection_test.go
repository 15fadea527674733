package redis

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/felixgeelhaar/todolist/internal/shared/infrastructure/database"
)

func TestConnect_RequiresURL(t *testing.T) {
	_, err := Connect(context.Background(), database.Config{Driver: database.DriverRedis})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "database URL is required")
}

func TestConnect_InvalidScheme(t *testing.T) {
	_, err := Connect(context.Background(), database.Config{URL: "http://localhost:6379"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid Redis URL")
}

func TestConnect_Integration(t *testing.T) {
	url := os.Getenv("TEST_REDIS_URL")
	if url == "" {
		t.Skip("TEST_REDIS_URL not set, skipping integration test")
	}

	ctx := context.Background()
	client, err := Connect(ctx, database.Config{URL: url})
	require.NoError(t, err)
	defer client.Close()

	assert.NoError(t, client.Ping(ctx))
	assert.NotNil(t, client.Redis())
}

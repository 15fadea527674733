package mongodb

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/felixgeelhaar/todolist/internal/shared/infrastructure/database"
)

func TestConnect_RequiresURL(t *testing.T) {
	_, err := Connect(context.Background(), database.Config{Driver: database.DriverMongo})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "database URL is required")
}

func TestConnect_RejectsNonMongoScheme(t *testing.T) {
	_, err := Connect(context.Background(), database.Config{URL: "http://localhost:27017"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid MongoDB URL")
}

func TestConnect_Integration(t *testing.T) {
	url := os.Getenv("TEST_MONGO_URL")
	if url == "" {
		t.Skip("TEST_MONGO_URL not set, skipping integration test")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := Connect(ctx, database.Config{URL: url, Name: "todolist_test"})
	require.NoError(t, err)
	defer client.Close()

	require.NoError(t, client.Ping(ctx))
	assert.Equal(t, "todolist_test", client.Database().Name())
	assert.Equal(t, "todos", client.Collection("todos").Name())
}

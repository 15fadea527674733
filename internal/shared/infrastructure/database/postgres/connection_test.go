package postgres

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/felixgeelhaar/todolist/internal/shared/infrastructure/database"
)

func TestNewConnection_RequiresURL(t *testing.T) {
	_, err := NewConnection(context.Background(), database.Config{Driver: database.DriverPostgres})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "database URL is required")
}

func TestNewConnection_InvalidURL(t *testing.T) {
	_, err := NewConnection(context.Background(), database.Config{URL: "postgres://%zz"})
	require.Error(t, err)
}

func TestNewConnection_Integration(t *testing.T) {
	dbURL := os.Getenv("TEST_DATABASE_URL")
	if dbURL == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping integration test")
	}

	ctx := context.Background()
	conn, err := NewConnection(ctx, database.Config{URL: dbURL, MaxConns: 2})
	require.NoError(t, err)
	defer conn.Close()

	require.NoError(t, conn.Ping(ctx))
	assert.Equal(t, database.DriverPostgres, conn.Driver())

	var one int
	require.NoError(t, conn.QueryRow(ctx, `SELECT 1`).Scan(&one))
	assert.Equal(t, 1, one)
}

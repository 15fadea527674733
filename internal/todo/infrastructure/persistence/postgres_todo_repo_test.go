package persistence

import (
	"context"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/felixgeelhaar/todolist/internal/shared/infrastructure/database"
	"github.com/felixgeelhaar/todolist/internal/shared/infrastructure/database/postgres"
	"github.com/felixgeelhaar/todolist/internal/shared/infrastructure/migrations"
	"github.com/felixgeelhaar/todolist/internal/todo/domain"
)

func TestPostgresTodoRepository(t *testing.T) {
	dbURL := os.Getenv("TEST_DATABASE_URL")
	if dbURL == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping integration test")
	}

	ctx := context.Background()
	conn, err := postgres.NewConnection(ctx, database.Config{URL: dbURL})
	require.NoError(t, err)
	defer conn.Close()
	require.NoError(t, migrations.Run(ctx, conn))

	runRepositoryContract(t, func(t *testing.T) domain.Repository {
		_, err := conn.Exec(ctx, `TRUNCATE todos`)
		require.NoError(t, err)
		return NewPostgresTodoRepository(conn)
	}, uuid.NewString())
}

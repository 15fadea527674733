package persistence

import (
	"context"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/felixgeelhaar/todolist/internal/shared/infrastructure/database"
	"github.com/felixgeelhaar/todolist/internal/shared/infrastructure/database/redis"
	"github.com/felixgeelhaar/todolist/internal/todo/domain"
)

func TestRedisTodoRepository(t *testing.T) {
	url := os.Getenv("TEST_REDIS_URL")
	if url == "" {
		t.Skip("TEST_REDIS_URL not set, skipping integration test")
	}

	ctx := context.Background()
	client, err := redis.Connect(ctx, database.Config{URL: url})
	require.NoError(t, err)
	defer client.Close()

	runRepositoryContract(t, func(t *testing.T) domain.Repository {
		prefix := "todolist_test:" + uuid.NewString()[:8]
		t.Cleanup(func() {
			keys, _ := client.Redis().Keys(context.Background(), prefix+":*").Result()
			if len(keys) > 0 {
				client.Redis().Del(context.Background(), keys...)
			}
		})
		return NewRedisTodoRepository(client.Redis(), prefix)
	}, uuid.NewString())
}

func TestNewRedisTodoRepository_DefaultPrefix(t *testing.T) {
	repo := NewRedisTodoRepository(nil, "")
	assert.Equal(t, "todos:order", repo.orderKey())
	assert.Equal(t, "todos:doc:x1", repo.docKey("x1"))
}

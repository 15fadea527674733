package persistence

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/felixgeelhaar/todolist/internal/shared/infrastructure/database"
	"github.com/felixgeelhaar/todolist/internal/shared/infrastructure/database/mongodb"
	"github.com/felixgeelhaar/todolist/internal/todo/domain"
)

func TestMongoTodoRepository(t *testing.T) {
	url := os.Getenv("TEST_MONGO_URL")
	if url == "" {
		t.Skip("TEST_MONGO_URL not set, skipping integration test")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, err := mongodb.Connect(ctx, database.Config{URL: url, Name: "todolist_test"})
	require.NoError(t, err)
	defer client.Close()

	runRepositoryContract(t, func(t *testing.T) domain.Repository {
		coll := client.Collection("todos_" + uuid.NewString()[:8])
		t.Cleanup(func() { _ = coll.Drop(context.Background()) })
		return NewMongoTodoRepository(coll)
	}, primitive.NewObjectID().Hex())
}

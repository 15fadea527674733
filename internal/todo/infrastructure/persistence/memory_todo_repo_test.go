package persistence

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/felixgeelhaar/todolist/internal/todo/domain"
)

func TestMemoryTodoRepository(t *testing.T) {
	runRepositoryContract(t, func(t *testing.T) domain.Repository {
		return NewMemoryTodoRepository()
	}, uuid.NewString())
}

func TestMemoryTodoRepository_ConcurrentInserts(t *testing.T) {
	repo := NewMemoryTodoRepository()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			todo, err := domain.NewTodo(fmt.Sprintf("task %d", i))
			if assert.NoError(t, err) {
				assert.NoError(t, repo.Insert(ctx, todo))
			}
		}(i)
	}
	wg.Wait()

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(50), count)
}

func TestMemoryTodoRepository_RejectsSavedTodo(t *testing.T) {
	repo := NewMemoryTodoRepository()

	err := repo.Insert(context.Background(), domain.Rehydrate("x1", "done", true))
	assert.ErrorIs(t, err, domain.ErrIDAssigned)
}

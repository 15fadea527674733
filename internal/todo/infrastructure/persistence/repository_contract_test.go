package persistence

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/felixgeelhaar/todolist/internal/todo/domain"
)

// runRepositoryContract exercises behavior every backend must share.
// newRepo must return an empty repository.
func runRepositoryContract(t *testing.T, newRepo func(t *testing.T) domain.Repository, unknownID string) {
	ctx := context.Background()

	insert := func(t *testing.T, repo domain.Repository, task string) *domain.Todo {
		t.Helper()
		todo, err := domain.NewTodo(task)
		require.NoError(t, err)
		require.NoError(t, repo.Insert(ctx, todo))
		return todo
	}

	t.Run("insert assigns id", func(t *testing.T) {
		repo := newRepo(t)
		todo := insert(t, repo, "buy milk")

		assert.NotEmpty(t, todo.ID())
		assert.False(t, todo.Completed())

		count, err := repo.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)
	})

	t.Run("list keeps insertion order and pages", func(t *testing.T) {
		repo := newRepo(t)
		var ids []string
		for _, task := range []string{"a", "b", "c", "d", "e"} {
			ids = append(ids, insert(t, repo, task).ID())
		}

		page, err := repo.List(ctx, 0, 2)
		require.NoError(t, err)
		require.Len(t, page, 2)
		assert.Equal(t, ids[0], page[0].ID())
		assert.Equal(t, "b", page[1].Task())

		page, err = repo.List(ctx, 4, 2)
		require.NoError(t, err)
		require.Len(t, page, 1)
		assert.Equal(t, ids[4], page[0].ID())

		page, err = repo.List(ctx, 10, 2)
		require.NoError(t, err)
		assert.NotNil(t, page)
		assert.Empty(t, page)
	})

	t.Run("list with maximum limit returns the rest", func(t *testing.T) {
		repo := newRepo(t)
		for _, task := range []string{"a", "b", "c"} {
			insert(t, repo, task)
		}

		page, err := repo.List(ctx, 1, math.MaxInt)
		require.NoError(t, err)
		require.Len(t, page, 2)
		assert.Equal(t, "b", page[0].Task())
		assert.Equal(t, "c", page[1].Task())
	})

	t.Run("task text is stored as given", func(t *testing.T) {
		repo := newRepo(t)
		insert(t, repo, "  spaced \"quoted\" </tag> ")

		page, err := repo.List(ctx, 0, 10)
		require.NoError(t, err)
		require.Len(t, page, 1)
		assert.Equal(t, "  spaced \"quoted\" </tag> ", page[0].Task())
	})

	t.Run("set completed toggles and returns record", func(t *testing.T) {
		repo := newRepo(t)
		todo := insert(t, repo, "walk dog")

		updated, err := repo.SetCompleted(ctx, todo.ID(), true)
		require.NoError(t, err)
		assert.Equal(t, todo.ID(), updated.ID())
		assert.Equal(t, "walk dog", updated.Task())
		assert.True(t, updated.Completed())

		updated, err = repo.SetCompleted(ctx, todo.ID(), false)
		require.NoError(t, err)
		assert.False(t, updated.Completed())

		page, err := repo.List(ctx, 0, 10)
		require.NoError(t, err)
		require.Len(t, page, 1)
		assert.False(t, page[0].Completed())
	})

	t.Run("set completed on unknown id", func(t *testing.T) {
		repo := newRepo(t)

		_, err := repo.SetCompleted(ctx, unknownID, true)
		assert.ErrorIs(t, err, domain.ErrNotFound)

		_, err = repo.SetCompleted(ctx, "not-an-id", true)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("delete removes from list", func(t *testing.T) {
		repo := newRepo(t)
		keep := insert(t, repo, "keep")
		gone := insert(t, repo, "gone")

		require.NoError(t, repo.Delete(ctx, gone.ID()))

		page, err := repo.List(ctx, 0, 10)
		require.NoError(t, err)
		require.Len(t, page, 1)
		assert.Equal(t, keep.ID(), page[0].ID())

		count, err := repo.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)

		assert.ErrorIs(t, repo.Delete(ctx, gone.ID()), domain.ErrNotFound)
	})

	t.Run("delete unknown id", func(t *testing.T) {
		repo := newRepo(t)
		assert.ErrorIs(t, repo.Delete(ctx, unknownID), domain.ErrNotFound)
		assert.ErrorIs(t, repo.Delete(ctx, "not-an-id"), domain.ErrNotFound)
	})

	t.Run("ping", func(t *testing.T) {
		assert.NoError(t, newRepo(t).Ping(ctx))
	})
}

package commands

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/felixgeelhaar/todolist/internal/shared/infrastructure/eventbus"
	"github.com/felixgeelhaar/todolist/internal/todo/application"
	"github.com/felixgeelhaar/todolist/internal/todo/domain"
	"github.com/felixgeelhaar/todolist/pkg/observability"
)

func TestDeleteTodoHandler_Handle(t *testing.T) {
	ctx := context.Background()

	t.Run("deletes and publishes", func(t *testing.T) {
		repo := new(mockTodoRepo)
		pub := eventbus.NewMemoryPublisher()
		metrics := observability.NewInMemoryMetrics()
		handler := NewDeleteTodoHandler(repo, application.NewEventDispatcher(pub, nil, nil), metrics)

		repo.On("Delete", ctx, "x1").Return(nil)

		require.NoError(t, handler.Handle(ctx, DeleteTodoCommand{ID: "x1"}))

		assert.Equal(t, int64(1), metrics.GetCounter(observability.MetricTodosDeleted))
		msgs := pub.Messages()
		require.Len(t, msgs, 1)
		assert.Equal(t, domain.RoutingKeyDeleted, msgs[0].RoutingKey)
		repo.AssertExpectations(t)
		repo.AssertNotCalled(t, "SetCompleted")
	})

	t.Run("not found when store matched nothing", func(t *testing.T) {
		repo := new(mockTodoRepo)
		handler := NewDeleteTodoHandler(repo, nil, nil)

		repo.On("Delete", ctx, "missing").Return(domain.ErrNotFound)

		assert.ErrorIs(t, handler.Handle(ctx, DeleteTodoCommand{ID: "missing"}), domain.ErrNotFound)
	})

	t.Run("wraps store failure", func(t *testing.T) {
		repo := new(mockTodoRepo)
		handler := NewDeleteTodoHandler(repo, nil, nil)
		storeErr := errors.New("boom")

		repo.On("Delete", ctx, "x1").Return(storeErr)

		err := handler.Handle(ctx, DeleteTodoCommand{ID: "x1"})
		assert.ErrorIs(t, err, storeErr)
		assert.Contains(t, err.Error(), "delete todo x1")
	})
}

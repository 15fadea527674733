package commands

import (
	"context"
	"errors"
	"fmt"

	sharedApplication "github.com/felixgeelhaar/todolist/internal/shared/application"
	"github.com/felixgeelhaar/todolist/internal/todo/application"
	"github.com/felixgeelhaar/todolist/internal/todo/domain"
	"github.com/felixgeelhaar/todolist/pkg/observability"
)

// DeleteTodoCommand removes one todo.
type DeleteTodoCommand struct {
	ID string
}

// CommandName implements sharedApplication.Command.
func (DeleteTodoCommand) CommandName() string { return "todo.delete" }

// DeleteTodoHandler handles the DeleteTodoCommand.
type DeleteTodoHandler struct {
	repo    domain.Repository
	events  *application.EventDispatcher
	metrics observability.Metrics
}

var _ sharedApplication.CommandHandler[DeleteTodoCommand] = (*DeleteTodoHandler)(nil)

// NewDeleteTodoHandler creates a new DeleteTodoHandler.
func NewDeleteTodoHandler(repo domain.Repository, events *application.EventDispatcher, metrics observability.Metrics) *DeleteTodoHandler {
	if metrics == nil {
		metrics = observability.NoopMetrics{}
	}
	return &DeleteTodoHandler{repo: repo, events: events, metrics: metrics}
}

// Handle deletes without reading first; domain.ErrNotFound is returned
// only when the store matched nothing.
func (h *DeleteTodoHandler) Handle(ctx context.Context, cmd DeleteTodoCommand) error {
	err := observability.TimeOperation(ctx, nil, h.metrics, "todo.delete", func() error {
		return h.repo.Delete(ctx, cmd.ID)
	})
	if errors.Is(err, domain.ErrNotFound) {
		return err
	}
	if err != nil {
		return fmt.Errorf("delete todo %s: %w", cmd.ID, err)
	}
	h.metrics.Counter(observability.MetricTodosDeleted, 1)

	h.events.Dispatch(observability.WithOperation(ctx, cmd.CommandName()), domain.NewTodoDeleted(cmd.ID))
	return nil
}

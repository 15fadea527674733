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

// SetCompletionCommand sets the completion flag of one todo.
type SetCompletionCommand struct {
	ID        string
	Completed bool
}

// CommandName implements sharedApplication.Command.
func (SetCompletionCommand) CommandName() string { return "todo.set_completion" }

// SetCompletionHandler handles the SetCompletionCommand.
type SetCompletionHandler struct {
	repo    domain.Repository
	events  *application.EventDispatcher
	metrics observability.Metrics
}

var _ sharedApplication.ResultCommandHandler[SetCompletionCommand, application.TodoDTO] = (*SetCompletionHandler)(nil)

// NewSetCompletionHandler creates a new SetCompletionHandler.
func NewSetCompletionHandler(repo domain.Repository, events *application.EventDispatcher, metrics observability.Metrics) *SetCompletionHandler {
	if metrics == nil {
		metrics = observability.NoopMetrics{}
	}
	return &SetCompletionHandler{repo: repo, events: events, metrics: metrics}
}

// Handle writes the flag in one atomic store operation and returns the
// stored record. Unknown ids yield domain.ErrNotFound.
func (h *SetCompletionHandler) Handle(ctx context.Context, cmd SetCompletionCommand) (application.TodoDTO, error) {
	todo, err := observability.TimeOperationResult(ctx, nil, h.metrics, "todo.set_completed", func() (*domain.Todo, error) {
		return h.repo.SetCompleted(ctx, cmd.ID, cmd.Completed)
	})
	if errors.Is(err, domain.ErrNotFound) {
		return application.TodoDTO{}, err
	}
	if err != nil {
		return application.TodoDTO{}, fmt.Errorf("update todo %s: %w", cmd.ID, err)
	}

	if todo.Completed() {
		h.metrics.Counter(observability.MetricTodosCompleted, 1)
	} else {
		h.metrics.Counter(observability.MetricTodosReopened, 1)
	}

	h.events.Dispatch(observability.WithOperation(ctx, cmd.CommandName()), domain.NewTodoCompletionChanged(todo))
	return application.NewTodoDTO(todo), nil
}

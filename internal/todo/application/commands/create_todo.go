package commands

import (
	"context"
	"fmt"

	sharedApplication "github.com/felixgeelhaar/todolist/internal/shared/application"
	"github.com/felixgeelhaar/todolist/internal/todo/application"
	"github.com/felixgeelhaar/todolist/internal/todo/domain"
	"github.com/felixgeelhaar/todolist/pkg/observability"
)

// CreateTodoCommand contains the data needed to create a todo.
type CreateTodoCommand struct {
	Task string
}

// CommandName implements sharedApplication.Command.
func (CreateTodoCommand) CommandName() string { return "todo.create" }

// CreateTodoHandler handles the CreateTodoCommand.
type CreateTodoHandler struct {
	repo    domain.Repository
	events  *application.EventDispatcher
	metrics observability.Metrics
}

var _ sharedApplication.ResultCommandHandler[CreateTodoCommand, application.TodoDTO] = (*CreateTodoHandler)(nil)

// NewCreateTodoHandler creates a new CreateTodoHandler.
func NewCreateTodoHandler(repo domain.Repository, events *application.EventDispatcher, metrics observability.Metrics) *CreateTodoHandler {
	if metrics == nil {
		metrics = observability.NoopMetrics{}
	}
	return &CreateTodoHandler{repo: repo, events: events, metrics: metrics}
}

// Handle stores a new, incomplete todo and returns it with its id.
func (h *CreateTodoHandler) Handle(ctx context.Context, cmd CreateTodoCommand) (application.TodoDTO, error) {
	todo, err := domain.NewTodo(cmd.Task)
	if err != nil {
		return application.TodoDTO{}, err
	}

	err = observability.TimeOperation(ctx, nil, h.metrics, "todo.create", func() error {
		return h.repo.Insert(ctx, todo)
	})
	if err != nil {
		return application.TodoDTO{}, fmt.Errorf("create todo: %w", err)
	}
	h.metrics.Counter(observability.MetricTodosCreated, 1)

	h.events.Dispatch(observability.WithOperation(ctx, cmd.CommandName()), domain.NewTodoCreated(todo))
	return application.NewTodoDTO(todo), nil
}

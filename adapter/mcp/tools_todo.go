package mcp

import (
	"context"
	"errors"
	"strings"

	"github.com/felixgeelhaar/mcp-go"
	"github.com/felixgeelhaar/todolist/internal/todo/application"
	"github.com/felixgeelhaar/todolist/internal/todo/application/commands"
	"github.com/felixgeelhaar/todolist/internal/todo/application/queries"
	"github.com/felixgeelhaar/todolist/internal/todo/domain"
	"github.com/felixgeelhaar/todolist/pkg/observability"
)

type todoListInput struct {
	Page  int `json:"page,omitempty"`
	Limit int `json:"limit,omitempty"`
}

type todoCreateInput struct {
	Task string `json:"task" jsonschema:"required"`
}

type todoSetCompletedInput struct {
	ID        string `json:"id" jsonschema:"required"`
	Completed *bool  `json:"completed" jsonschema:"required"`
}

type todoIDInput struct {
	ID string `json:"id" jsonschema:"required"`
}

func registerTodoTools(srv *mcp.Server, deps ToolDependencies) {
	srv.Tool("todo.list").
		Description("List todos one page at a time").
		Handler(func(ctx context.Context, input todoListInput) (queries.ListTodosResult, error) {
			return deps.ListTodos.Handle(ctx, queries.ListTodosQuery{
				Page:  input.Page,
				Limit: input.Limit,
			})
		})

	srv.Tool("todo.create").
		Description("Create a new todo").
		Handler(func(ctx context.Context, input todoCreateInput) (application.TodoDTO, error) {
			if strings.TrimSpace(input.Task) == "" {
				return application.TodoDTO{}, errors.New("task is required")
			}
			return deps.CreateTodo.Handle(ctx, commands.CreateTodoCommand{Task: input.Task})
		})

	srv.Tool("todo.set_completed").
		Description("Mark a todo as completed or not completed").
		Handler(func(ctx context.Context, input todoSetCompletedInput) (application.TodoDTO, error) {
			if input.ID == "" {
				return application.TodoDTO{}, errors.New("id is required")
			}
			if input.Completed == nil {
				return application.TodoDTO{}, domain.NewValidationError("completed", "must be a boolean")
			}
			return deps.SetCompletion.Handle(ctx, commands.SetCompletionCommand{
				ID:        input.ID,
				Completed: *input.Completed,
			})
		})

	srv.Tool("todo.delete").
		Description("Delete a todo").
		Handler(func(ctx context.Context, input todoIDInput) (map[string]any, error) {
			if input.ID == "" {
				return nil, errors.New("id is required")
			}
			if err := deps.DeleteTodo.Handle(ctx, commands.DeleteTodoCommand{ID: input.ID}); err != nil {
				return nil, err
			}
			return map[string]any{"id": input.ID, "deleted": true}, nil
		})
}

func registerHealthTool(srv *mcp.Server, deps ToolDependencies) {
	srv.Tool("todo.health").
		Description("Report store and broker health").
		Handler(func(ctx context.Context, _ struct{}) (observability.OverallHealth, error) {
			if deps.Health == nil {
				return observability.OverallHealth{}, errors.New("health checks not configured")
			}
			return deps.Health.Check(ctx), nil
		})
}

package mcp

import (
	"errors"

	"github.com/felixgeelhaar/mcp-go"
	"github.com/felixgeelhaar/todolist/internal/todo/application/commands"
	"github.com/felixgeelhaar/todolist/internal/todo/application/queries"
	"github.com/felixgeelhaar/todolist/pkg/observability"
)

// ToolDependencies provides handlers for MCP tools.
type ToolDependencies struct {
	ListTodos     *queries.ListTodosHandler
	CreateTodo    *commands.CreateTodoHandler
	SetCompletion *commands.SetCompletionHandler
	DeleteTodo    *commands.DeleteTodoHandler
	Health        *observability.HealthRegistry
}

// RegisterTools registers the todo tools.
func RegisterTools(srv *mcp.Server, deps ToolDependencies) error {
	if srv == nil {
		return errors.New("server is required")
	}
	if deps.ListTodos == nil || deps.CreateTodo == nil || deps.SetCompletion == nil || deps.DeleteTodo == nil {
		return errors.New("todo handlers are required")
	}

	registerTodoTools(srv, deps)
	registerHealthTool(srv, deps)
	return nil
}

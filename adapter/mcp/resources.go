package mcp

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/felixgeelhaar/mcp-go"
	"github.com/felixgeelhaar/todolist/internal/todo/application"
	"github.com/felixgeelhaar/todolist/internal/todo/application/queries"
)

// resourcePageSize is the page size used when walking the whole list.
const resourcePageSize = 100

// RegisterResources exposes the todo list as read-only resources.
func RegisterResources(srv *mcp.Server, deps ToolDependencies) error {
	if srv == nil {
		return errors.New("server is required")
	}
	if deps.ListTodos == nil {
		return errors.New("list handler is required")
	}

	srv.Resource("todolist://todos").
		Name("Todos").
		Description("First page of todos in store order, with totals").
		MimeType("application/json").
		Handler(func(ctx context.Context, uri string, _ map[string]string) (*mcp.ResourceContent, error) {
			result, err := deps.ListTodos.Handle(ctx, queries.ListTodosQuery{Page: queries.DefaultPage})
			if err != nil {
				return nil, err
			}
			return jsonResource(uri, result)
		})

	srv.Resource("todolist://todos/open").
		Name("Open todos").
		Description("Every todo not yet completed").
		MimeType("application/json").
		Handler(func(ctx context.Context, uri string, _ map[string]string) (*mcp.ResourceContent, error) {
			return filteredResource(ctx, deps.ListTodos, uri, false)
		})

	srv.Resource("todolist://todos/done").
		Name("Completed todos").
		Description("Every completed todo").
		MimeType("application/json").
		Handler(func(ctx context.Context, uri string, _ map[string]string) (*mcp.ResourceContent, error) {
			return filteredResource(ctx, deps.ListTodos, uri, true)
		})

	return nil
}

func filteredResource(ctx context.Context, list *queries.ListTodosHandler, uri string, completed bool) (*mcp.ResourceContent, error) {
	todos, err := allTodos(ctx, list)
	if err != nil {
		return nil, err
	}
	matched := make([]application.TodoDTO, 0, len(todos))
	for _, t := range todos {
		if t.Completed == completed {
			matched = append(matched, t)
		}
	}
	return jsonResource(uri, matched)
}

// allTodos reads every page in store order.
func allTodos(ctx context.Context, list *queries.ListTodosHandler) ([]application.TodoDTO, error) {
	var todos []application.TodoDTO
	for page := 1; ; page++ {
		result, err := list.Handle(ctx, queries.ListTodosQuery{Page: page, Limit: resourcePageSize})
		if err != nil {
			return nil, err
		}
		todos = append(todos, result.Todos...)
		if page >= result.TotalPages {
			return todos, nil
		}
	}
}

func jsonResource(uri string, v any) (*mcp.ResourceContent, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, err
	}
	return &mcp.ResourceContent{URI: uri, MimeType: "application/json", Text: string(data)}, nil
}

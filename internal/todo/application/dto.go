// Package application holds the todo use cases shared by the HTTP, MCP
// and CLI adapters.
package application

import "github.com/felixgeelhaar/todolist/internal/todo/domain"

// TodoDTO is the transport shape of a todo.
type TodoDTO struct {
	ID        string `json:"id"`
	Task      string `json:"task"`
	Completed bool   `json:"completed"`
}

// NewTodoDTO converts a domain todo.
func NewTodoDTO(t *domain.Todo) TodoDTO {
	return TodoDTO{ID: t.ID(), Task: t.Task(), Completed: t.Completed()}
}

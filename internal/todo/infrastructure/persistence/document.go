// Package persistence stores todos as documents in MongoDB, PostgreSQL,
// SQLite, Redis or process memory.
package persistence

import (
	"encoding/json"
	"fmt"

	"github.com/felixgeelhaar/todolist/internal/todo/domain"
)

// todoDocument is the stored shape of a todo. The id lives outside the
// document body for every backend.
type todoDocument struct {
	Task      string `json:"task"`
	Completed bool   `json:"completed"`
}

func encodeDocument(t *domain.Todo) ([]byte, error) {
	return json.Marshal(todoDocument{Task: t.Task(), Completed: t.Completed()})
}

func decodeDocument(id string, raw []byte) (*domain.Todo, error) {
	var doc todoDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode todo %s: %w", id, err)
	}
	return domain.Rehydrate(id, doc.Task, doc.Completed), nil
}

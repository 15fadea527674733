package persistence

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/felixgeelhaar/todolist/internal/todo/domain"
)

// MemoryTodoRepository keeps todos in insertion order in process memory.
type MemoryTodoRepository struct {
	mu    sync.RWMutex
	todos []todoRecord
}

type todoRecord struct {
	id  string
	doc todoDocument
}

// NewMemoryTodoRepository creates an empty in-memory repository.
func NewMemoryTodoRepository() *MemoryTodoRepository {
	return &MemoryTodoRepository{}
}

// Insert stores the todo under a new uuid.
func (r *MemoryTodoRepository) Insert(_ context.Context, t *domain.Todo) error {
	id := uuid.NewString()
	if err := t.AssignID(id); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.todos = append(r.todos, todoRecord{
		id:  id,
		doc: todoDocument{Task: t.Task(), Completed: t.Completed()},
	})
	return nil
}

// List returns at most limit todos starting at offset.
func (r *MemoryTodoRepository) List(_ context.Context, offset, limit int) ([]*domain.Todo, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*domain.Todo, 0)
	if offset < 0 || limit <= 0 || offset >= len(r.todos) {
		return result, nil
	}
	end := len(r.todos)
	if limit < end-offset {
		end = offset + limit
	}
	for _, rec := range r.todos[offset:end] {
		result = append(result, domain.Rehydrate(rec.id, rec.doc.Task, rec.doc.Completed))
	}
	return result, nil
}

// Count returns the number of stored todos.
func (r *MemoryTodoRepository) Count(context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.todos)), nil
}

// SetCompleted updates the completion flag under the write lock.
func (r *MemoryTodoRepository) SetCompleted(_ context.Context, id string, completed bool) (*domain.Todo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.todos {
		if r.todos[i].id == id {
			r.todos[i].doc.Completed = completed
			rec := r.todos[i]
			return domain.Rehydrate(rec.id, rec.doc.Task, rec.doc.Completed), nil
		}
	}
	return nil, domain.ErrNotFound
}

// Delete removes the todo with the given id.
func (r *MemoryTodoRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.todos {
		if r.todos[i].id == id {
			r.todos = append(r.todos[:i], r.todos[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

// Ping always succeeds.
func (r *MemoryTodoRepository) Ping(context.Context) error {
	return nil
}

package domain

import "context"

// Repository persists todos in a document collection. Implementations
// return todos in insertion order.
type Repository interface {
	// Insert stores a new todo and assigns its id.
	Insert(ctx context.Context, todo *Todo) error
	List(ctx context.Context, offset, limit int) ([]*Todo, error)
	Count(ctx context.Context) (int64, error)
	// SetCompleted atomically updates the flag and returns the stored todo,
	// or ErrNotFound.
	SetCompleted(ctx context.Context, id string, completed bool) (*Todo, error)
	// Delete removes the todo, returning ErrNotFound when nothing matched.
	Delete(ctx context.Context, id string) error
	Ping(ctx context.Context) error
}

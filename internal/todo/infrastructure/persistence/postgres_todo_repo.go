package persistence

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/felixgeelhaar/todolist/internal/shared/infrastructure/database"
	"github.com/felixgeelhaar/todolist/internal/todo/domain"
)

// PostgresTodoRepository stores todos as JSONB documents.
type PostgresTodoRepository struct {
	conn database.Connection
}

// NewPostgresTodoRepository creates a PostgreSQL todo repository.
func NewPostgresTodoRepository(conn database.Connection) *PostgresTodoRepository {
	return &PostgresTodoRepository{conn: conn}
}

// Insert stores the todo under a new uuid.
func (r *PostgresTodoRepository) Insert(ctx context.Context, t *domain.Todo) error {
	doc, err := encodeDocument(t)
	if err != nil {
		return err
	}

	return insertDocument(ctx, r.conn, `INSERT INTO todos (id, doc) VALUES ($1, $2::text::jsonb)`, doc, t)
}

// List returns todos ordered by insertion.
func (r *PostgresTodoRepository) List(ctx context.Context, offset, limit int) ([]*domain.Todo, error) {
	rows, err := r.conn.Query(ctx, `SELECT id::text, doc::text FROM todos ORDER BY seq LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list todos: %w", err)
	}
	return scanTodos(rows)
}

// Count returns the number of stored todos.
func (r *PostgresTodoRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.conn.QueryRow(ctx, `SELECT COUNT(*) FROM todos`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count todos: %w", err)
	}
	return n, nil
}

// SetCompleted rewrites the completed field with jsonb_set. Ids that are
// not uuids cannot match any row.
func (r *PostgresTodoRepository) SetCompleted(ctx context.Context, id string, completed bool) (*domain.Todo, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrNotFound
	}
	row := r.conn.QueryRow(ctx,
		`UPDATE todos SET doc = jsonb_set(doc, '{completed}', to_jsonb($1::boolean)) WHERE id = $2 RETURNING id::text, doc::text`,
		completed, id)
	return scanUpdated(row)
}

// Delete removes the todo with the given id.
func (r *PostgresTodoRepository) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return domain.ErrNotFound
	}
	result, err := r.conn.Exec(ctx, `DELETE FROM todos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete todo: %w", err)
	}
	return checkDeleted(result)
}

// Ping checks the connection.
func (r *PostgresTodoRepository) Ping(ctx context.Context) error {
	return r.conn.Ping(ctx)
}

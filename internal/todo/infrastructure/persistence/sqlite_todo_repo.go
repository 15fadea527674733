package persistence

import (
	"context"
	"fmt"
	"strconv"

	"github.com/google/uuid"

	"github.com/felixgeelhaar/todolist/internal/shared/infrastructure/database"
	"github.com/felixgeelhaar/todolist/internal/todo/domain"
)

// SQLiteTodoRepository stores todos as JSON documents in a SQLite table.
type SQLiteTodoRepository struct {
	conn database.Connection
}

// NewSQLiteTodoRepository creates a SQLite todo repository. The todos
// table must already exist.
func NewSQLiteTodoRepository(conn database.Connection) *SQLiteTodoRepository {
	return &SQLiteTodoRepository{conn: conn}
}

// Insert stores the todo under a new uuid.
func (r *SQLiteTodoRepository) Insert(ctx context.Context, t *domain.Todo) error {
	doc, err := encodeDocument(t)
	if err != nil {
		return err
	}

	return insertDocument(ctx, r.conn, `INSERT INTO todos (id, doc) VALUES (?, ?)`, doc, t)
}

// List returns todos ordered by insertion.
func (r *SQLiteTodoRepository) List(ctx context.Context, offset, limit int) ([]*domain.Todo, error) {
	rows, err := r.conn.Query(ctx, `SELECT id, doc FROM todos ORDER BY seq LIMIT ? OFFSET ?`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list todos: %w", err)
	}
	return scanTodos(rows)
}

// Count returns the number of stored todos.
func (r *SQLiteTodoRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.conn.QueryRow(ctx, `SELECT COUNT(*) FROM todos`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count todos: %w", err)
	}
	return n, nil
}

// SetCompleted rewrites the completed field in a single UPDATE ... RETURNING.
func (r *SQLiteTodoRepository) SetCompleted(ctx context.Context, id string, completed bool) (*domain.Todo, error) {
	row := r.conn.QueryRow(ctx,
		`UPDATE todos SET doc = json_set(doc, '$.completed', json(?)) WHERE id = ? RETURNING id, doc`,
		strconv.FormatBool(completed), id)
	return scanUpdated(row)
}

// Delete removes the todo with the given id.
func (r *SQLiteTodoRepository) Delete(ctx context.Context, id string) error {
	result, err := r.conn.Exec(ctx, `DELETE FROM todos WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete todo: %w", err)
	}
	return checkDeleted(result)
}

// Ping checks the connection.
func (r *SQLiteTodoRepository) Ping(ctx context.Context) error {
	return r.conn.Ping(ctx)
}

// insertAttempts bounds retries when a generated id collides.
const insertAttempts = 3

// insertDocument stores doc under a fresh uuid and assigns it to t.
func insertDocument(ctx context.Context, conn database.Executor, query string, doc []byte, t *domain.Todo) error {
	var err error
	for range insertAttempts {
		id := uuid.NewString()
		if _, err = conn.Exec(ctx, query, id, string(doc)); err == nil {
			return t.AssignID(id)
		}
		if !database.IsUniqueViolation(err) {
			break
		}
	}
	return fmt.Errorf("insert todo: %w", err)
}

func scanTodos(rows database.Rows) ([]*domain.Todo, error) {
	defer rows.Close()

	todos := make([]*domain.Todo, 0)
	for rows.Next() {
		var (
			id  string
			doc []byte
		)
		if err := rows.Scan(&id, &doc); err != nil {
			return nil, fmt.Errorf("scan todo: %w", err)
		}
		t, err := decodeDocument(id, doc)
		if err != nil {
			return nil, err
		}
		todos = append(todos, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list todos: %w", err)
	}
	return todos, nil
}

func scanUpdated(row database.Row) (*domain.Todo, error) {
	var (
		id  string
		doc []byte
	)
	if err := row.Scan(&id, &doc); err != nil {
		if database.IsNoRows(err) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update todo: %w", err)
	}
	return decodeDocument(id, doc)
}

func checkDeleted(result database.Result) error {
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete todo: %w", err)
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

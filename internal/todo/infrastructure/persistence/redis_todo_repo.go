package persistence

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"

	"github.com/felixgeelhaar/todolist/internal/todo/domain"
)

// DefaultRedisPrefix namespaces todo keys.
const DefaultRedisPrefix = "todos"

// setCompletedScript rewrites the completed field of one document atomically.
var setCompletedScript = goredis.NewScript(`
local raw = redis.call('GET', KEYS[1])
if not raw then
  return false
end
local doc = cjson.decode(raw)
doc.completed = (ARGV[1] == '1')
local out = cjson.encode(doc)
redis.call('SET', KEYS[1], out)
return out
`)

// deleteScript removes a document and its position in the order list.
var deleteScript = goredis.NewScript(`
local removed = redis.call('DEL', KEYS[1])
if removed == 1 then
  redis.call('LREM', KEYS[2], 1, ARGV[1])
end
return removed
`)

// RedisTodoRepository stores each todo as a JSON string and keeps
// insertion order in a list.
type RedisTodoRepository struct {
	rdb    goredis.UniversalClient
	prefix string
}

// NewRedisTodoRepository creates a Redis repository. An empty prefix uses
// DefaultRedisPrefix.
func NewRedisTodoRepository(rdb goredis.UniversalClient, prefix string) *RedisTodoRepository {
	if prefix == "" {
		prefix = DefaultRedisPrefix
	}
	return &RedisTodoRepository{rdb: rdb, prefix: prefix}
}

func (r *RedisTodoRepository) docKey(id string) string { return r.prefix + ":doc:" + id }
func (r *RedisTodoRepository) orderKey() string        { return r.prefix + ":order" }

// Insert writes the document and appends its id in one transaction.
func (r *RedisTodoRepository) Insert(ctx context.Context, t *domain.Todo) error {
	doc, err := encodeDocument(t)
	if err != nil {
		return err
	}

	id := uuid.NewString()
	_, err = r.rdb.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
		pipe.Set(ctx, r.docKey(id), doc, 0)
		pipe.RPush(ctx, r.orderKey(), id)
		return nil
	})
	if err != nil {
		return fmt.Errorf("insert todo: %w", err)
	}
	return t.AssignID(id)
}

// List reads a window of the order list and fetches the documents.
func (r *RedisTodoRepository) List(ctx context.Context, offset, limit int) ([]*domain.Todo, error) {
	todos := make([]*domain.Todo, 0)
	if limit <= 0 || offset < 0 {
		return todos, nil
	}

	// -1 reads to the end of the list when offset+limit overflows.
	stop := int64(-1)
	if limit <= math.MaxInt-offset {
		stop = int64(offset) + int64(limit) - 1
	}
	ids, err := r.rdb.LRange(ctx, r.orderKey(), int64(offset), stop).Result()
	if err != nil {
		return nil, fmt.Errorf("list todos: %w", err)
	}
	if len(ids) == 0 {
		return todos, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = r.docKey(id)
	}
	values, err := r.rdb.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("list todos: %w", err)
	}

	for i, v := range values {
		raw, ok := v.(string)
		if !ok {
			// Deleted between LRANGE and MGET.
			continue
		}
		t, err := decodeDocument(ids[i], []byte(raw))
		if err != nil {
			return nil, err
		}
		todos = append(todos, t)
	}
	return todos, nil
}

// Count returns the length of the order list.
func (r *RedisTodoRepository) Count(ctx context.Context) (int64, error) {
	n, err := r.rdb.LLen(ctx, r.orderKey()).Result()
	if err != nil {
		return 0, fmt.Errorf("count todos: %w", err)
	}
	return n, nil
}

// SetCompleted updates the document with a Lua script.
func (r *RedisTodoRepository) SetCompleted(ctx context.Context, id string, completed bool) (*domain.Todo, error) {
	flag := "0"
	if completed {
		flag = "1"
	}

	raw, err := setCompletedScript.Run(ctx, r.rdb, []string{r.docKey(id)}, flag).Text()
	if errors.Is(err, goredis.Nil) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("update todo: %w", err)
	}
	return decodeDocument(id, []byte(raw))
}

// Delete removes the document and its order entry.
func (r *RedisTodoRepository) Delete(ctx context.Context, id string) error {
	removed, err := deleteScript.Run(ctx, r.rdb, []string{r.docKey(id), r.orderKey()}, id).Int64()
	if err != nil {
		return fmt.Errorf("delete todo: %w", err)
	}
	if removed == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Ping checks the server.
func (r *RedisTodoRepository) Ping(ctx context.Context) error {
	return r.rdb.Ping(ctx).Err()
}

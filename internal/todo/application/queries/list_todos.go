package queries

import (
	"context"
	"fmt"
	"math"

	sharedApplication "github.com/felixgeelhaar/todolist/internal/shared/application"
	"github.com/felixgeelhaar/todolist/internal/shared/infrastructure/convert"
	"github.com/felixgeelhaar/todolist/internal/todo/application"
	"github.com/felixgeelhaar/todolist/internal/todo/domain"
	"github.com/felixgeelhaar/todolist/pkg/observability"
)

// Pagination defaults.
const (
	DefaultPage  = 1
	DefaultLimit = 10
)

// ListTodosQuery selects one page. Non-positive values fall back to the
// defaults.
type ListTodosQuery struct {
	Page  int
	Limit int
}

// QueryName implements sharedApplication.Query.
func (ListTodosQuery) QueryName() string { return "todo.list" }

// ListTodosResult is one page of todos plus totals.
type ListTodosResult struct {
	Todos       []application.TodoDTO `json:"todos"`
	CurrentPage int                   `json:"currentPage"`
	TotalPages  int                   `json:"totalPages"`
	TotalTodos  int64                 `json:"totalTodos"`
}

// ListTodosHandler handles the ListTodosQuery.
type ListTodosHandler struct {
	repo         domain.Repository
	defaultLimit int
	metrics      observability.Metrics
}

var _ sharedApplication.QueryHandler[ListTodosQuery, ListTodosResult] = (*ListTodosHandler)(nil)

// NewListTodosHandler creates a new ListTodosHandler. A non-positive
// defaultLimit uses DefaultLimit.
func NewListTodosHandler(repo domain.Repository, defaultLimit int, metrics observability.Metrics) *ListTodosHandler {
	if defaultLimit <= 0 {
		defaultLimit = DefaultLimit
	}
	if metrics == nil {
		metrics = observability.NoopMetrics{}
	}
	return &ListTodosHandler{repo: repo, defaultLimit: defaultLimit, metrics: metrics}
}

// Handle returns the store-order slice [offset, offset+limit). Pages past
// the end are empty but carry correct totals.
func (h *ListTodosHandler) Handle(ctx context.Context, query ListTodosQuery) (ListTodosResult, error) {
	page, limit := query.Page, query.Limit
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = h.defaultLimit
	}

	timer := observability.StartTimer("todo.list").WithMetrics(h.metrics)

	total, err := h.repo.Count(ctx)
	if err != nil {
		timer.StopWithError(ctx, err)
		return ListTodosResult{}, fmt.Errorf("count todos: %w", err)
	}
	h.metrics.Gauge(observability.MetricTodosStored, float64(total))

	result := ListTodosResult{
		Todos:       []application.TodoDTO{},
		CurrentPage: page,
		TotalPages:  TotalPages(total, limit),
		TotalTodos:  total,
	}

	if offset, ok := Offset(page, limit); ok && int64(offset) < total {
		todos, err := h.repo.List(ctx, offset, limit)
		if err != nil {
			timer.StopWithError(ctx, err)
			return ListTodosResult{}, fmt.Errorf("list todos: %w", err)
		}
		for _, t := range todos {
			result.Todos = append(result.Todos, application.NewTodoDTO(t))
		}
	}

	timer.Stop(ctx)
	h.metrics.Counter(observability.MetricTodosListed, int64(len(result.Todos)))
	return result, nil
}

// Offset returns (page-1)*limit for positive page and limit. ok is false
// when the product does not fit in an int; such a page is past any store.
func Offset(page, limit int) (offset int, ok bool) {
	if page < 1 || limit < 1 {
		return 0, false
	}
	if page-1 > math.MaxInt/limit {
		return 0, false
	}
	return (page - 1) * limit, true
}

// TotalPages returns ceil(total/limit) without overflowing.
func TotalPages(total int64, limit int) int {
	if limit <= 0 || total <= 0 {
		return 0
	}
	pages := total / int64(limit)
	if total%int64(limit) != 0 {
		pages++
	}
	return convert.Int64ToIntClamped(pages)
}

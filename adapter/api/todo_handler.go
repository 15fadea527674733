package api

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/felixgeelhaar/todolist/internal/todo/application/commands"
	"github.com/felixgeelhaar/todolist/internal/todo/application/queries"
	"github.com/felixgeelhaar/todolist/internal/todo/domain"
)

// Response messages.
const (
	MsgTaskRequired      = "Task is required and must be a non-empty string"
	MsgCompletedRequired = "Completed status must be a boolean"
	MsgNotFound          = "Todo not found"
	MsgFetchFailed       = "Failed to fetch todos"
	MsgCreateFailed      = "Failed to create todo"
	MsgUpdateFailed      = "Failed to update todo"
	MsgDeleteFailed      = "Failed to delete todo"
	MsgDeleted           = "Todo deleted successfully"
)

const maxBodyBytes = 1 << 20

// TodoHandler handles todo API requests.
type TodoHandler struct {
	listTodos     *queries.ListTodosHandler
	createTodo    *commands.CreateTodoHandler
	setCompletion *commands.SetCompletionHandler
	deleteTodo    *commands.DeleteTodoHandler
	logger        *slog.Logger
}

// TodoHandlerConfig holds dependencies for the todo handler.
type TodoHandlerConfig struct {
	ListTodos     *queries.ListTodosHandler
	CreateTodo    *commands.CreateTodoHandler
	SetCompletion *commands.SetCompletionHandler
	DeleteTodo    *commands.DeleteTodoHandler
	Logger        *slog.Logger
}

// NewTodoHandler creates a new todo handler.
func NewTodoHandler(cfg TodoHandlerConfig) *TodoHandler {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	return &TodoHandler{
		listTodos:     cfg.ListTodos,
		createTodo:    cfg.CreateTodo,
		setCompletion: cfg.SetCompletion,
		deleteTodo:    cfg.DeleteTodo,
		logger:        cfg.Logger,
	}
}

// ListTodos handles GET /todos
func (h *TodoHandler) ListTodos(w http.ResponseWriter, r *http.Request) {
	query := queries.ListTodosQuery{
		Page:  parseIntParam(r, "page", queries.DefaultPage),
		Limit: parseIntParam(r, "limit", queries.DefaultLimit),
	}

	result, err := h.listTodos.Handle(r.Context(), query)
	if err != nil {
		h.logger.ErrorContext(r.Context(), "failed to list todos", "error", err)
		writeError(w, http.StatusInternalServerError, MsgFetchFailed)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// CreateTodo handles POST /todos
func (h *TodoHandler) CreateTodo(w http.ResponseWriter, r *http.Request) {
	body, err := readBody(w, r)
	if err != nil {
		writeError(w, http.StatusBadRequest, MsgTaskRequired)
		return
	}
	doc, err := validateBody(createSchema, body)
	if err != nil {
		h.logger.DebugContext(r.Context(), "rejected create body", "error", err)
		writeError(w, http.StatusBadRequest, MsgTaskRequired)
		return
	}

	task, _ := doc["task"].(string)
	todo, err := h.createTodo.Handle(r.Context(), commands.CreateTodoCommand{Task: task})
	if err != nil {
		if domain.IsValidation(err) {
			writeError(w, http.StatusBadRequest, MsgTaskRequired)
			return
		}
		h.logger.ErrorContext(r.Context(), "failed to create todo", "error", err)
		writeError(w, http.StatusInternalServerError, MsgCreateFailed)
		return
	}

	writeJSON(w, http.StatusOK, todo)
}

// UpdateTodo handles PUT /todos/{id}
func (h *TodoHandler) UpdateTodo(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	body, err := readBody(w, r)
	if err != nil {
		writeError(w, http.StatusBadRequest, MsgCompletedRequired)
		return
	}
	doc, err := validateBody(updateSchema, body)
	if err != nil {
		h.logger.DebugContext(r.Context(), "rejected update body", "error", err)
		writeError(w, http.StatusBadRequest, MsgCompletedRequired)
		return
	}

	completed, _ := doc["completed"].(bool)
	todo, err := h.setCompletion.Handle(r.Context(), commands.SetCompletionCommand{ID: id, Completed: completed})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, MsgNotFound)
			return
		}
		h.logger.ErrorContext(r.Context(), "failed to update todo", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, MsgUpdateFailed)
		return
	}

	writeJSON(w, http.StatusOK, todo)
}

// DeleteTodo handles DELETE /todos/{id}
func (h *TodoHandler) DeleteTodo(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	if err := h.deleteTodo.Handle(r.Context(), commands.DeleteTodoCommand{ID: id}); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, MsgNotFound)
			return
		}
		h.logger.ErrorContext(r.Context(), "failed to delete todo", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, MsgDeleteFailed)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": MsgDeleted})
}

// Helper functions

func readBody(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	return io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
}

// parseIntParam returns defaultVal for absent, non-numeric or non-positive values.
func parseIntParam(r *http.Request, key string, defaultVal int) int {
	val := r.URL.Query().Get(key)
	if val == "" {
		return defaultVal
	}
	i, err := strconv.Atoi(val)
	if err != nil || i < 1 {
		return defaultVal
	}
	return i
}

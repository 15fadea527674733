package domain

import shared "github.com/felixgeelhaar/todolist/internal/shared/domain"

const (
	AggregateType = "Todo"

	RoutingKeyCreated           = "todo.created"
	RoutingKeyCompletionChanged = "todo.completion_changed"
	RoutingKeyDeleted           = "todo.deleted"
)

// TodoCreated is emitted after a todo is stored.
type TodoCreated struct {
	shared.BaseEvent
	Task string `json:"task"`
}

// NewTodoCreated creates a TodoCreated event.
func NewTodoCreated(t *Todo) *TodoCreated {
	return &TodoCreated{
		BaseEvent: shared.NewBaseEvent(t.ID(), AggregateType, RoutingKeyCreated),
		Task:      t.Task(),
	}
}

// TodoCompletionChanged is emitted after the completion flag is written.
type TodoCompletionChanged struct {
	shared.BaseEvent
	Completed bool `json:"completed"`
}

// NewTodoCompletionChanged creates a TodoCompletionChanged event.
func NewTodoCompletionChanged(t *Todo) *TodoCompletionChanged {
	return &TodoCompletionChanged{
		BaseEvent: shared.NewBaseEvent(t.ID(), AggregateType, RoutingKeyCompletionChanged),
		Completed: t.Completed(),
	}
}

// TodoDeleted is emitted after a todo is removed.
type TodoDeleted struct {
	shared.BaseEvent
}

// NewTodoDeleted creates a TodoDeleted event.
func NewTodoDeleted(id string) *TodoDeleted {
	return &TodoDeleted{
		BaseEvent: shared.NewBaseEvent(id, AggregateType, RoutingKeyDeleted),
	}
}

package domain

import "strings"

// Todo is a single to-do item. Only the completion flag changes after
// creation.
type Todo struct {
	id        string
	task      string
	completed bool
}

// NewTodo creates an unsaved todo. The text is kept as given but must
// contain something other than whitespace.
func NewTodo(task string) (*Todo, error) {
	if strings.TrimSpace(task) == "" {
		return nil, ErrEmptyTask
	}
	return &Todo{task: task}, nil
}

// Rehydrate rebuilds a todo read back from a store.
func Rehydrate(id, task string, completed bool) *Todo {
	return &Todo{id: id, task: task, completed: completed}
}

func (t *Todo) ID() string      { return t.id }
func (t *Todo) Task() string    { return t.task }
func (t *Todo) Completed() bool { return t.completed }
func (t *Todo) IsNew() bool     { return t.id == "" }

// AssignID records the id chosen by the store on insert.
func (t *Todo) AssignID(id string) error {
	if t.id != "" {
		return ErrIDAssigned
	}
	t.id = id
	return nil
}

// SetCompleted sets the completion flag and reports whether it changed.
func (t *Todo) SetCompleted(completed bool) bool {
	changed := t.completed != completed
	t.completed = completed
	return changed
}

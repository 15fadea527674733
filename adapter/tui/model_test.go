package tui

import (
	"context"
	"errors"
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/felixgeelhaar/todolist/pkg/todoclient"
)

// fakeAPI serves pages from an in-memory list and records calls.
type fakeAPI struct {
	todos     []todoclient.Todo
	listCalls []int
	nextID    int

	failList, failCreate, failToggle, failDelete error
}

func (f *fakeAPI) List(_ context.Context, page, limit int) (*todoclient.Page, error) {
	f.listCalls = append(f.listCalls, page)
	if f.failList != nil {
		return nil, f.failList
	}
	total := len(f.todos)
	start := (page - 1) * limit
	end := start + limit
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}
	pages := (total + limit - 1) / limit
	return &todoclient.Page{
		Todos:       append([]todoclient.Todo{}, f.todos[start:end]...),
		CurrentPage: page,
		TotalPages:  pages,
		TotalTodos:  int64(total),
	}, nil
}

func (f *fakeAPI) Create(_ context.Context, task string) (*todoclient.Todo, error) {
	if f.failCreate != nil {
		return nil, f.failCreate
	}
	f.nextID++
	t := todoclient.Todo{ID: fmt.Sprintf("new-%d", f.nextID), Task: task}
	f.todos = append(f.todos, t)
	return &t, nil
}

func (f *fakeAPI) SetCompleted(_ context.Context, id string, completed bool) (*todoclient.Todo, error) {
	if f.failToggle != nil {
		return nil, f.failToggle
	}
	for i := range f.todos {
		if f.todos[i].ID == id {
			f.todos[i].Completed = completed
			t := f.todos[i]
			return &t, nil
		}
	}
	return nil, &todoclient.APIError{StatusCode: 404, Message: "Todo not found"}
}

func (f *fakeAPI) Delete(_ context.Context, id string) error {
	if f.failDelete != nil {
		return f.failDelete
	}
	for i := range f.todos {
		if f.todos[i].ID == id {
			f.todos = append(f.todos[:i], f.todos[i+1:]...)
			return nil
		}
	}
	return &todoclient.APIError{StatusCode: 404, Message: "Todo not found"}
}

func seeded(n int) *fakeAPI {
	f := &fakeAPI{}
	for i := 1; i <= n; i++ {
		f.todos = append(f.todos, todoclient.Todo{ID: fmt.Sprintf("t%d", i), Task: fmt.Sprintf("task %d", i)})
	}
	return f
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// send delivers msg and returns the command it produced.
func send(m *Model, msg tea.Msg) tea.Cmd {
	_, cmd := m.Update(msg)
	return cmd
}

// run executes cmd and feeds its message back into the model.
func run(t *testing.T, m *Model, cmd tea.Cmd) {
	t.Helper()
	require.NotNil(t, cmd)
	send(m, cmd())
}

func typeText(m *Model, s string) {
	for _, r := range s {
		if r == ' ' {
			send(m, key(" "))
			continue
		}
		send(m, key(string(r)))
	}
}

func started(t *testing.T, api *fakeAPI) *Model {
	t.Helper()
	m := NewModel(context.Background(), api, nil)
	run(t, m, m.Init())
	return m
}

func TestModel_InitLoadsFirstPage(t *testing.T) {
	api := seeded(25)
	m := started(t, api)

	assert.Equal(t, []int{1}, api.listCalls)
	assert.Equal(t, 1, m.Page())
	assert.Equal(t, 3, m.TotalPages())
	require.Len(t, m.Items(), 10)
	assert.Equal(t, "t1", m.Items()[0].Todo.ID)
}

func TestModel_Pagination(t *testing.T) {
	api := seeded(25)
	m := started(t, api)

	assert.Nil(t, send(m, key("left")), "prev disabled on first page")

	run(t, m, send(m, key("right")))
	assert.Equal(t, 2, m.Page())
	assert.Equal(t, "t11", m.Items()[0].Todo.ID)

	run(t, m, send(m, key("right")))
	assert.Equal(t, 3, m.Page())
	assert.Len(t, m.Items(), 5)

	assert.Nil(t, send(m, key("right")), "next disabled on last page")
	assert.Equal(t, 3, m.Page())

	run(t, m, send(m, key("left")))
	assert.Equal(t, 2, m.Page())
	assert.Equal(t, []int{1, 2, 3, 2}, api.listCalls)
}

func TestModel_AddAppendsWithoutRefetch(t *testing.T) {
	api := seeded(2)
	m := started(t, api)

	send(m, key("a"))
	typeText(m, "buy milk")
	run(t, m, send(m, key("enter")))

	require.Len(t, m.Items(), 3)
	assert.Equal(t, "buy milk", m.Items()[2].Todo.Task)
	assert.False(t, m.Items()[2].Todo.Completed)
	assert.Equal(t, []int{1}, api.listCalls)
	assert.NotContains(t, m.View(), "New task:")
}

func TestModel_AddIgnoresBlankInput(t *testing.T) {
	api := seeded(1)
	m := started(t, api)

	send(m, key("a"))
	typeText(m, "   ")
	assert.Nil(t, send(m, key("enter")))

	assert.Len(t, api.todos, 1)
	assert.Len(t, m.Items(), 1)
}

func TestModel_AddFailureKeepsState(t *testing.T) {
	api := seeded(1)
	api.failCreate = &todoclient.APIError{StatusCode: 500, Message: "Failed to create todo"}
	m := started(t, api)

	send(m, key("a"))
	typeText(m, "x")
	run(t, m, send(m, key("enter")))

	assert.Len(t, m.Items(), 1)
	assert.Equal(t, "Failed to create todo: Failed to create todo", m.LastError())
	assert.Contains(t, m.View(), "Failed to create todo")
}

func TestModel_ToggleUsesServerResponse(t *testing.T) {
	api := seeded(2)
	m := started(t, api)

	send(m, key("down"))
	run(t, m, send(m, key(" ")))
	assert.True(t, m.Items()[1].Todo.Completed)
	assert.True(t, api.todos[1].Completed)

	run(t, m, send(m, key(" ")))
	assert.False(t, m.Items()[1].Todo.Completed)
	assert.Equal(t, []int{1}, api.listCalls)
}

func TestModel_ToggleFailureLeavesState(t *testing.T) {
	api := seeded(1)
	api.failToggle = errors.New("connection refused")
	m := started(t, api)

	run(t, m, send(m, key(" ")))

	assert.False(t, m.Items()[0].Todo.Completed)
	assert.Contains(t, m.LastError(), "connection refused")
}

func TestModel_DeleteTagsThenRemoves(t *testing.T) {
	api := seeded(3)
	m := started(t, api)

	cmd := send(m, key("d"))
	require.NotNil(t, cmd)
	assert.Equal(t, VisualDeleting, m.Items()[0].Visual)
	assert.Contains(t, m.View(), "deleting")
	assert.Nil(t, send(m, key("d")), "second delete on same row is ignored")

	send(m, cmd())

	require.Len(t, m.Items(), 2)
	assert.Equal(t, "t2", m.Items()[0].Todo.ID)
	assert.Equal(t, []int{1}, api.listCalls)
}

func TestModel_DeleteFailureReverts(t *testing.T) {
	api := seeded(1)
	api.failDelete = &todoclient.APIError{StatusCode: 500, Message: "Failed to delete todo"}
	m := started(t, api)

	run(t, m, send(m, key("d")))

	require.Len(t, m.Items(), 1)
	assert.Equal(t, VisualIdle, m.Items()[0].Visual)
	assert.Equal(t, "Failed to delete todo: Failed to delete todo", m.LastError())
}

func TestModel_ListFailureKeepsPreviousData(t *testing.T) {
	api := seeded(15)
	m := started(t, api)

	api.failList = errors.New("timeout")
	run(t, m, send(m, key("right")))

	assert.Equal(t, 2, m.Page())
	assert.Equal(t, "t1", m.Items()[0].Todo.ID)
	assert.Contains(t, m.LastError(), "timeout")
}

func TestModel_InputEscapeCancels(t *testing.T) {
	m := started(t, seeded(0))

	send(m, key("a"))
	typeText(m, "draft")
	send(m, key("esc"))

	assert.NotContains(t, m.View(), "draft")
	assert.Contains(t, m.View(), "No todos yet.")
}

func TestModel_Quit(t *testing.T) {
	m := started(t, seeded(0))

	cmd := send(m, key("q"))

	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestModel_ViewShowsPageBounds(t *testing.T) {
	m := started(t, seeded(12))

	assert.Contains(t, m.View(), "Page 1 of 2")
}

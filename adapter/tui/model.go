// Package tui is the terminal client for the todo API.
package tui

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/felixgeelhaar/todolist/pkg/todoclient"
)

// PageSize is the number of todos requested per page.
const PageSize = 10

// API is the subset of todoclient.Client the UI drives.
type API interface {
	List(ctx context.Context, page, limit int) (*todoclient.Page, error)
	Create(ctx context.Context, task string) (*todoclient.Todo, error)
	SetCompleted(ctx context.Context, id string, completed bool) (*todoclient.Todo, error)
	Delete(ctx context.Context, id string) error
}

// VisualState is a client-only tag on a row. It is never sent to the API.
type VisualState int

const (
	VisualIdle VisualState = iota
	VisualDeleting
)

// Item is a todo plus its visual state.
type Item struct {
	Todo   todoclient.Todo
	Visual VisualState
}

// Model is the bubbletea model for the todo list.
type Model struct {
	ctx    context.Context
	api    API
	logger *slog.Logger

	page       int
	totalPages int
	items      []Item
	cursor     int

	editing bool
	input   []rune

	lastErr string
	loaded  bool
	width   int
}

// Messages produced by API commands.
type (
	pageLoadedMsg struct {
		page   int
		result *todoclient.Page
		err    error
	}
	createdMsg struct {
		todo *todoclient.Todo
		err  error
	}
	toggledMsg struct {
		id   string
		todo *todoclient.Todo
		err  error
	}
	deletedMsg struct {
		id  string
		err error
	}
)

// NewModel creates a model starting on page 1.
func NewModel(ctx context.Context, api API, logger *slog.Logger) *Model {
	if ctx == nil {
		ctx = context.Background()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Model{
		ctx:    ctx,
		api:    api,
		logger: logger,
		page:   1,
	}
}

// Init loads the first page.
func (m *Model) Init() tea.Cmd {
	return m.fetchPage()
}

// Update handles key presses and API results.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case tea.KeyMsg:
		if m.editing {
			return m, m.handleInputKey(msg)
		}
		return m, m.handleKey(msg)
	case pageLoadedMsg:
		m.onPageLoaded(msg)
	case createdMsg:
		m.onCreated(msg)
	case toggledMsg:
		m.onToggled(msg)
	case deletedMsg:
		m.onDeleted(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "ctrl+c", "q":
		return tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}
	case "a", "i":
		m.editing = true
		m.input = m.input[:0]
	case " ", "x", "enter":
		return m.toggleSelected()
	case "d", "delete":
		return m.deleteSelected()
	case "right", "l", "n":
		return m.setPage(m.page + 1)
	case "left", "h", "p":
		return m.setPage(m.page - 1)
	}
	return nil
}

func (m *Model) handleInputKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyCtrlC:
		return tea.Quit
	case tea.KeyEsc:
		m.editing = false
		m.input = m.input[:0]
	case tea.KeyEnter:
		return m.submit()
	case tea.KeyBackspace:
		if len(m.input) > 0 {
			m.input = m.input[:len(m.input)-1]
		}
	case tea.KeySpace:
		m.input = append(m.input, ' ')
	case tea.KeyRunes:
		m.input = append(m.input, msg.Runes...)
	}
	return nil
}

// submit sends the typed task. Blank input is ignored locally.
func (m *Model) submit() tea.Cmd {
	task := string(m.input)
	if strings.TrimSpace(task) == "" {
		return nil
	}
	m.input = m.input[:0]
	m.editing = false

	ctx, api := m.ctx, m.api
	return func() tea.Msg {
		todo, err := api.Create(ctx, task)
		return createdMsg{todo: todo, err: err}
	}
}

func (m *Model) toggleSelected() tea.Cmd {
	item, ok := m.selected()
	if !ok || item.Visual == VisualDeleting {
		return nil
	}
	ctx, api := m.ctx, m.api
	id, want := item.Todo.ID, !item.Todo.Completed
	return func() tea.Msg {
		todo, err := api.SetCompleted(ctx, id, want)
		return toggledMsg{id: id, todo: todo, err: err}
	}
}

func (m *Model) deleteSelected() tea.Cmd {
	item, ok := m.selected()
	if !ok || item.Visual == VisualDeleting {
		return nil
	}
	item.Visual = VisualDeleting

	ctx, api := m.ctx, m.api
	id := item.Todo.ID
	return func() tea.Msg {
		return deletedMsg{id: id, err: api.Delete(ctx, id)}
	}
}

// setPage moves within [1, totalPages] and refetches. Out-of-range moves
// are ignored.
func (m *Model) setPage(page int) tea.Cmd {
	if page < 1 || page > m.totalPages || page == m.page {
		return nil
	}
	m.page = page
	return m.fetchPage()
}

func (m *Model) fetchPage() tea.Cmd {
	ctx, api, page := m.ctx, m.api, m.page
	return func() tea.Msg {
		result, err := api.List(ctx, page, PageSize)
		return pageLoadedMsg{page: page, result: result, err: err}
	}
}

func (m *Model) onPageLoaded(msg pageLoadedMsg) {
	if msg.err != nil {
		m.fail("fetch todos", msg.err, "page", msg.page)
		return
	}
	m.loaded = true
	m.lastErr = ""
	m.totalPages = msg.result.TotalPages
	m.items = make([]Item, 0, len(msg.result.Todos))
	for _, t := range msg.result.Todos {
		m.items = append(m.items, Item{Todo: t})
	}
	m.clampCursor()
}

func (m *Model) onCreated(msg createdMsg) {
	if msg.err != nil {
		m.fail("create todo", msg.err)
		return
	}
	m.lastErr = ""
	m.items = append(m.items, Item{Todo: *msg.todo})
}

func (m *Model) onToggled(msg toggledMsg) {
	if msg.err != nil {
		m.fail("update todo", msg.err, "id", msg.id)
		return
	}
	m.lastErr = ""
	if i := m.indexOf(msg.id); i >= 0 {
		m.items[i].Todo.Completed = msg.todo.Completed
	}
}

func (m *Model) onDeleted(msg deletedMsg) {
	i := m.indexOf(msg.id)
	if msg.err != nil {
		m.fail("delete todo", msg.err, "id", msg.id)
		if i >= 0 {
			m.items[i].Visual = VisualIdle
		}
		return
	}
	m.lastErr = ""
	if i >= 0 {
		m.items = append(m.items[:i], m.items[i+1:]...)
		m.clampCursor()
	}
}

func (m *Model) fail(op string, err error, attrs ...any) {
	m.logger.Error("failed to "+op, append(attrs, "error", err)...)
	m.lastErr = "Failed to " + op + ": " + errorMessage(err)
}

func errorMessage(err error) string {
	var apiErr *todoclient.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return err.Error()
}

func (m *Model) selected() (*Item, bool) {
	if m.cursor < 0 || m.cursor >= len(m.items) {
		return nil, false
	}
	return &m.items[m.cursor], true
}

func (m *Model) indexOf(id string) int {
	for i := range m.items {
		if m.items[i].Todo.ID == id {
			return i
		}
	}
	return -1
}

func (m *Model) clampCursor() {
	if m.cursor >= len(m.items) {
		m.cursor = len(m.items) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// Page returns the current page number.
func (m *Model) Page() int { return m.page }

// TotalPages returns the last known page count.
func (m *Model) TotalPages() int { return m.totalPages }

// Items returns the rows on screen.
func (m *Model) Items() []Item { return m.items }

// LastError returns the footer error line.
func (m *Model) LastError() string { return m.lastErr }

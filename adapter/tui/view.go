package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	cursorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("212"))
	doneStyle     = lipgloss.NewStyle().Strikethrough(true).Foreground(lipgloss.Color("244"))
	deletingStyle = lipgloss.NewStyle().Faint(true).Italic(true)
	disabledStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	helpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// View renders the list, input line and footer.
func (m *Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Todo List") + "\n\n")

	if m.editing {
		b.WriteString("New task: " + string(m.input) + "█\n\n")
	} else {
		b.WriteString(helpStyle.Render("a: add task") + "\n\n")
	}

	switch {
	case !m.loaded && m.lastErr == "":
		b.WriteString("Loading...\n")
	case len(m.items) == 0:
		b.WriteString("No todos yet.\n")
	default:
		for i, item := range m.items {
			b.WriteString(m.renderItem(i, item) + "\n")
		}
	}

	b.WriteString("\n" + m.renderPagination() + "\n")
	if m.lastErr != "" {
		b.WriteString(errorStyle.Render(m.lastErr) + "\n")
	}
	b.WriteString(helpStyle.Render(m.helpLine()) + "\n")
	return b.String()
}

func (m *Model) renderItem(i int, item Item) string {
	prefix := "  "
	if i == m.cursor {
		prefix = cursorStyle.Render("> ")
	}
	check := "[ ]"
	if item.Todo.Completed {
		check = "[x]"
	}
	line := fmt.Sprintf("%s %s", check, item.Todo.Task)

	switch {
	case item.Visual == VisualDeleting:
		line = deletingStyle.Render(line + " (deleting...)")
	case item.Todo.Completed:
		line = doneStyle.Render(line)
	}
	return prefix + line
}

func (m *Model) renderPagination() string {
	prev, next := "< prev", "next >"
	if m.page <= 1 {
		prev = disabledStyle.Render(prev)
	}
	if m.page >= m.totalPages {
		next = disabledStyle.Render(next)
	}
	total := m.totalPages
	if total < 1 {
		total = 1
	}
	return fmt.Sprintf("%s  Page %d of %d  %s", prev, m.page, total, next)
}

func (m *Model) helpLine() string {
	if m.editing {
		return "enter: save • esc: cancel"
	}
	return "↑/↓: move • space: toggle • d: delete • ←/→: page • q: quit"
}

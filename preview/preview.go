// Package preview mounts a view component in an interactive terminal
// program.
package preview

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	view "github.com/grindlemire/go-view"
	"github.com/grindlemire/go-view/internal/debug"
	"github.com/grindlemire/go-view/style"
)

var (
	statusStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#8b949e"))
	changedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#f85149")).Bold(true)
)

// Model is the bubbletea model for the preview.
type Model struct {
	root  view.Component
	sheet style.Sheet
	width int

	tree    *view.Element
	renders int
	// stable is false once a re-render produced a tree that differs from
	// the one before it.
	stable   bool
	quitting bool
}

// New creates a preview of root styled with sheet, and renders it once.
func New(root view.Component, sheet style.Sheet) Model {
	return Model{
		root:    root,
		sheet:   sheet,
		tree:    view.Render(root),
		renders: 1,
		stable:  true,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		case "r":
			return m.rerender(), nil
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
	}
	return m, nil
}

func (m Model) rerender() Model {
	next := view.Render(m.root)
	if !view.Equal(m.tree, next) {
		m.stable = false
		debug.Log("preview: render %d differs from previous", m.renders+1)
	}
	m.tree = next
	m.renders++
	return m
}

// Renders returns how many render passes have run.
func (m Model) Renders() int {
	return m.renders
}

// Stable reports whether every re-render matched the previous tree.
func (m Model) Stable() bool {
	return m.stable
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(style.Render(m.tree, m.sheet, m.width))
	b.WriteString("\n\n")

	status := fmt.Sprintf("renders: %d", m.renders)
	if m.stable {
		b.WriteString(statusStyle.Render(status + " · output stable"))
	} else {
		b.WriteString(changedStyle.Render(status + " · output changed"))
	}
	b.WriteString("\n")
	b.WriteString(statusStyle.Render("r re-render · q quit"))
	b.WriteString("\n")
	return b.String()
}

// Run starts the interactive preview and blocks until the user quits.
func Run(root view.Component, sheet style.Sheet, opts ...tea.ProgramOption) error {
	p := tea.NewProgram(New(root, sheet), opts...)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running preview: %w", err)
	}
	return nil
}

// Package ui renders transient progress on the terminal while episodes are resolved.
package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/youngoor/youngoor/style"
)

// StepMsg reports that done episodes are resolved, the last being title.
type StepMsg struct {
	Done  int
	Title string
}

// DoneMsg ends the program and clears the line.
type DoneMsg struct{}

// Model is the progress line: a spinner, a counter and the last resolved title.
type Model struct {
	spinner spinner.Model
	total   int
	done    int
	title   string
	closed  bool
}

// NewModel returns a model counting up to total.
func NewModel(total int) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = style.New().Foreground(style.AccentColor)

	return Model{spinner: s, total: total}
}

func (m Model) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case StepMsg:
		m.done = msg.Done
		m.title = msg.Title
		return m, nil
	case DoneMsg:
		m.closed = true
		return m, tea.Quit
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m Model) View() string {
	if m.closed {
		return ""
	}

	line := fmt.Sprintf("%s Resolving %s", m.spinner.View(), style.Bold(fmt.Sprintf("%d/%d", m.done, m.total)))
	if m.title != "" {
		line += " " + style.Faint(m.title)
	}
	return line
}

// Package textinput is the one-line prompt used to open a file by path.
package textinput

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/vivid/internal/ui/styles"
)

// Result is what the prompt produced when it closed.
type Result struct {
	Text     string
	Canceled bool // esc, or enter on an empty line
}

// Model wraps a bubbles text input with open/close state.
type Model struct {
	input  textinput.Model
	active bool
}

// New creates an inactive prompt.
func New() Model {
	ti := textinput.New()
	ti.Prompt = "open: "
	ti.Placeholder = "path to an audio file"
	ti.CharLimit = 4096
	return Model{input: ti}
}

// Active reports whether the prompt is open and taking keys.
func (m Model) Active() bool { return m.active }

// Start opens an empty prompt width cells wide.
func (m *Model) Start(width int) tea.Cmd {
	m.active = true
	m.input.Reset()
	m.input.Width = max(width-len(m.input.Prompt)-1, 1)
	m.input.PromptStyle = styles.T().S().Title
	m.input.PlaceholderStyle = styles.T().S().Subtle
	return m.input.Focus()
}

// Update feeds msg to the input. When enter or esc closes the prompt the
// returned result is non-nil.
func (m Model) Update(msg tea.Msg) (Model, *Result, tea.Cmd) {
	if !m.active {
		return m, nil, nil
	}

	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyEsc:
			m.close()
			return m, &Result{Canceled: true}, nil
		case tea.KeyEnter:
			text := strings.TrimSpace(m.input.Value())
			m.close()
			return m, &Result{Text: text, Canceled: text == ""}, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, nil, cmd
}

func (m *Model) close() {
	m.active = false
	m.input.Blur()
	m.input.Reset()
}

// View renders the prompt line, or "" when closed.
func (m Model) View() string {
	if !m.active {
		return ""
	}
	return m.input.View()
}

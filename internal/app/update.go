package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/vivid/internal/mpris"
)

// Update handles messages and returns updated model and commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case DispatchMsg:
		msg()
		return m.afterCallbacks()

	case FileReadMsg:
		return m.handleFileRead(msg)

	case TickMsg:
		m.freq = m.Engine.Equalizer()
		m.wave = m.Engine.Waveform()
		if m.remote != nil {
			m.remote.Publish(m.snapshot())
		}
		return m, TickCmd()

	case RemoteMsg:
		return m.handleRemote(mpris.Command(msg))
	}

	// cursor blink and other input internals
	if m.prompt.Active() {
		return m.handlePrompt(msg)
	}
	return m, nil
}

package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// tickInterval is roughly 30 frames per second for the visualization.
const tickInterval = 33 * time.Millisecond

// TickCmd returns a command that sends TickMsg after tickInterval.
func TickCmd() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// readFileCmd reads path off the update goroutine.
func readFileCmd(read func(string) ([]byte, error), generation int, path string) tea.Cmd {
	return func() tea.Msg {
		data, err := read(path)
		return FileReadMsg{Generation: generation, Path: path, Data: data, Err: err}
	}
}

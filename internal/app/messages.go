// Package app is the bubbletea model driving the player: it owns the engine
// loop, turns key presses into engine calls and renders the screen.
package app

import (
	"time"

	"github.com/llehouerou/vivid/internal/mpris"
)

// TickMsg is sent periodically to refresh the position and visualization.
type TickMsg time.Time

// DispatchMsg carries a completion to run on the update goroutine. It is how
// decode results and audio end notifications reach the engine.
type DispatchMsg func()

// FileReadMsg reports the bytes of a file requested by openCmd.
type FileReadMsg struct {
	Generation int
	Path       string
	Data       []byte
	Err        error
}

// RemoteMsg is a media control request received over the session bus.
type RemoteMsg mpris.Command

// Package mpris exposes the player on the session bus as an MPRIS media
// player so desktop media keys and applets can drive it.
//
// D-Bus calls arrive on their own goroutines. Reads are served from the
// last published Snapshot and writes are forwarded as Commands, so the
// engine is only ever touched by the UI loop.
package mpris

import (
	"log/slog"
	"sync"
	"time"
)

// Status is the MPRIS playback status.
type Status int

const (
	StatusStopped Status = iota
	StatusPlaying
	StatusPaused
)

// Snapshot is the player state served to D-Bus readers.
type Snapshot struct {
	Status   Status
	Path     string
	Title    string
	Duration time.Duration
	Position time.Duration
	Volume   float64

	CanPlay     bool
	HasNext     bool
	HasPrevious bool
}

// Op is a remote control request.
type Op int

const (
	OpPlayPause Op = iota
	OpPlay
	OpPause
	OpStop
	OpNext
	OpPrevious
	OpSeek        // relative, by Offset
	OpSetPosition // absolute, to Offset
	OpSetVolume
)

// Command is one request from a D-Bus client.
type Command struct {
	Op     Op
	Offset time.Duration
	Volume float64
}

// Adapter bridges the UI loop and the bus.
type Adapter struct {
	mu     sync.Mutex
	snap   Snapshot
	send   func(Command)
	logger *slog.Logger

	stop func() error
}

// New creates an adapter that is not yet on the bus.
func New(logger *slog.Logger) *Adapter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Adapter{logger: logger}
}

// Publish replaces the state served to readers.
func (a *Adapter) Publish(s Snapshot) {
	a.mu.Lock()
	a.snap = s
	a.mu.Unlock()
}

func (a *Adapter) snapshot() Snapshot {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.snap
}

// dispatch forwards c to the UI loop. Commands before Start are dropped.
func (a *Adapter) dispatch(c Command) {
	a.mu.Lock()
	send := a.send
	a.mu.Unlock()
	if send != nil {
		send(c)
	}
}

// Start registers on the session bus. send may block until the UI loop
// receives the command.
func (a *Adapter) Start(send func(Command)) {
	a.mu.Lock()
	a.send = send
	a.mu.Unlock()
	a.stop = a.listen()
}

// Close leaves the bus.
func (a *Adapter) Close() error {
	a.mu.Lock()
	a.send = nil
	a.mu.Unlock()
	if a.stop == nil {
		return nil
	}
	return a.stop()
}

package app

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/vivid/internal/engine"
	"github.com/llehouerou/vivid/internal/errmsg"
	"github.com/llehouerou/vivid/internal/track"
)

// subscribe keeps the status line in step with the engine.
func (m Model) subscribe() {
	e, s := m.Engine, m.s
	e.On(engine.EventLoaded, func(data any) {
		t := data.(*track.Track)
		s.status = "Loaded " + t.Title()
		s.errMsg = ""
		if a := m.announcer; a != nil {
			title, path, d := t.Title(), s.path, t.Duration()
			go a.Announce(title, path, d)
		}
	})
	e.On(engine.EventUnloaded, func(any) {
		s.status = "Unloaded"
	})
	e.On(engine.EventPause, func(any) {
		if e.Loaded() && e.Elapsed() >= e.Duration() {
			s.ended = true
		}
	})
	e.On(engine.EventVolume, func(data any) {
		s.status = fmt.Sprintf("Volume %d%%", int(data.(float64)*100+0.5))
	})
}

// open starts loading Files[i]. Any load still in flight is abandoned.
func (m Model) open(i int) tea.Cmd {
	if i < 0 || i >= len(m.Files) {
		return nil
	}
	m.abandon()
	m.s.generation++
	m.s.status = "Reading " + filepath.Base(m.Files[i])
	return readFileCmd(m.readFile, m.s.generation, m.Files[i])
}

// abandon drops the pending decode, if any.
func (m Model) abandon() {
	if m.s.cancel != nil {
		m.s.cancel()
		m.s.cancel = nil
	}
	m.s.pending = nil
}

func (m Model) handleFileRead(msg FileReadMsg) (tea.Model, tea.Cmd) {
	if msg.Generation != m.s.generation {
		m.logger.Debug("dropping stale file read", "path", msg.Path)
		return m, nil
	}
	name := filepath.Base(msg.Path)
	if msg.Err != nil {
		m.logger.Error("cannot read file", "path", msg.Path, "error", msg.Err)
		m.s.errMsg = errmsg.FormatWith(errmsg.OpFileRead, name, msg.Err)
		return m, nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	s, e, gen := m.s, m.Engine, m.s.generation
	s.cancel = cancel
	s.status = "Decoding " + name

	t := m.Tracks.Load(ctx, name, msg.Data)
	s.pending = t
	t.Await(func(ready *track.Track) {
		if gen != s.generation {
			return
		}
		s.pending, s.cancel = nil, nil
		cancel()
		s.path = msg.Path
		e.Load(ready, true)
	}, func(err error) {
		if gen != s.generation || errors.Is(err, track.ErrDiscarded) {
			return
		}
		s.pending, s.cancel = nil, nil
		cancel()
		m.logger.Error("cannot decode track", "track", name, "error", err)
		s.errMsg = errmsg.FormatWith(errmsg.OpTrackDecode, name, err)
	})
	return m, nil
}

// afterCallbacks reacts to what engine callbacks recorded: a track that ran
// out advances to the next file.
func (m Model) afterCallbacks() (Model, tea.Cmd) {
	if !m.s.ended {
		return m, nil
	}
	m.s.ended = false
	if m.Index+1 >= len(m.Files) {
		m.s.status = "End of playlist"
		return m, nil
	}
	m.Index++
	return m, m.open(m.Index)
}

// Pending reports whether a decode is in flight.
func (m Model) Pending() bool { return m.s.pending != nil }

package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/vivid/internal/config"
	"github.com/llehouerou/vivid/internal/keymap"
	"github.com/llehouerou/vivid/internal/mpris"
	"github.com/llehouerou/vivid/internal/ui/textinput"
)

// seekStep is how far one seek key press moves.
const seekStep = 5 * time.Second

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.prompt.Active() && msg.Type != tea.KeyCtrlC {
		return m.handlePrompt(msg)
	}

	action := m.keys.Resolve(msg.String())
	if m.ShowHelp && action != keymap.ActionQuit {
		// any key closes help
		m.ShowHelp = false
		return m, nil
	}
	return m.handleAction(action)
}

func (m Model) handleAction(action keymap.Action) (tea.Model, tea.Cmd) {
	e := m.Engine
	switch action {
	case keymap.ActionQuit:
		m.abandon()
		return m, tea.Quit

	case keymap.ActionPlayPause:
		if !e.Loaded() {
			if m.Pending() || len(m.Files) == 0 {
				return m, nil
			}
			return m, m.open(m.Index)
		}
		if !e.Playing() && e.Elapsed() >= e.Duration() {
			e.SetElapsed(0)
		}
		e.Toggle()

	case keymap.ActionSeekForward:
		e.Seek(seekStep)

	case keymap.ActionSeekBack:
		e.Seek(-seekStep)

	case keymap.ActionRestart:
		e.SetElapsed(0)

	case keymap.ActionVolumeUp:
		e.SetVolume(e.Volume() + volumeStep)

	case keymap.ActionVolumeDown:
		e.SetVolume(e.Volume() - volumeStep)

	case keymap.ActionNextTrack:
		if m.Index+1 < len(m.Files) {
			m.Index++
			return m, m.open(m.Index)
		}

	case keymap.ActionPrevTrack:
		// restart the current file unless near its beginning
		if e.Loaded() && e.Elapsed() > 3*time.Second || m.Index == 0 {
			e.SetElapsed(0)
			return m, nil
		}
		m.Index--
		return m, m.open(m.Index)

	case keymap.ActionUnload:
		m.abandon()
		m.s.generation++
		if e.Loaded() {
			e.Unload()
		}

	case keymap.ActionToggleView:
		m.Mode = m.Mode.Next()

	case keymap.ActionHelp:
		m.ShowHelp = true

	case keymap.ActionOpen:
		return m, m.prompt.Start(m.Width)
	}
	return m.afterCallbacks()
}

// handlePrompt feeds the open-file prompt. A confirmed path is appended to
// the file list and opened.
func (m Model) handlePrompt(msg tea.Msg) (tea.Model, tea.Cmd) {
	var (
		res *textinput.Result
		cmd tea.Cmd
	)
	m.prompt, res, cmd = m.prompt.Update(msg)
	if res == nil || res.Canceled {
		return m, cmd
	}

	m.Files = append(m.Files[:len(m.Files):len(m.Files)], config.ExpandPath(res.Text))
	m.Index = len(m.Files) - 1
	return m, m.open(m.Index)
}

// handleRemote applies a media control request from the session bus.
func (m Model) handleRemote(c mpris.Command) (tea.Model, tea.Cmd) {
	e := m.Engine
	switch c.Op {
	case mpris.OpPlayPause:
		return m.handleAction(keymap.ActionPlayPause)
	case mpris.OpPlay:
		if !e.Playing() {
			return m.handleAction(keymap.ActionPlayPause)
		}
	case mpris.OpPause:
		e.Pause()
	case mpris.OpStop:
		return m.handleAction(keymap.ActionUnload)
	case mpris.OpNext:
		return m.handleAction(keymap.ActionNextTrack)
	case mpris.OpPrevious:
		return m.handleAction(keymap.ActionPrevTrack)
	case mpris.OpSeek:
		e.Seek(c.Offset)
	case mpris.OpSetPosition:
		e.SetElapsed(c.Offset)
	case mpris.OpSetVolume:
		e.SetVolume(c.Volume)
	}
	return m.afterCallbacks()
}

package app

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/vivid/internal/keymap"
	"github.com/llehouerou/vivid/internal/ui/headerbar"
	"github.com/llehouerou/vivid/internal/ui/helpbindings"
	"github.com/llehouerou/vivid/internal/ui/overlay"
	"github.com/llehouerou/vivid/internal/ui/playerbar"
	"github.com/llehouerou/vivid/internal/ui/render"
	"github.com/llehouerou/vivid/internal/ui/spectrum"
	"github.com/llehouerou/vivid/internal/ui/styles"
)

// footerHeight is the single status/help line under the player bar.
const footerHeight = 1

const helpWidth = 48

// View renders the application UI.
func (m Model) View() string {
	if m.Width < 20 || m.Height < headerbar.Height+playerbar.Height+footerHeight+3 {
		return ""
	}

	header := headerbar.Render(m.Mode, m.s.status, m.Width)

	// panel frame takes two rows and two columns
	panelHeight := m.Height - headerbar.Height - playerbar.Height - footerHeight - 2
	panelWidth := m.Width - 2
	body := spectrum.Render(m.Mode, m.freq, m.wave, panelWidth, panelHeight)
	if m.ShowHelp {
		body = overlay.Center(body, helpBox(panelWidth, panelHeight), panelWidth, panelHeight)
	}
	panel := styles.T().Panel(m.Engine.Playing()).Render(body)

	bar := playerbar.Render(playerbar.NewState(m.Engine, m.Index+1, len(m.Files)), m.Width)

	return lipgloss.JoinVertical(lipgloss.Left, header, panel, bar, m.footer())
}

// helpBox renders the bindings in a bordered box that fits inside the panel.
func helpBox(width, height int) string {
	w := min(width, helpWidth)
	h := max(min(height-2, helpbindings.Height(keymap.All)), 1)
	content := helpbindings.Render(keymap.All, w-2, h)
	return styles.T().Panel(true).Width(w - 2).Render(content)
}

func (m Model) footer() string {
	if m.prompt.Active() {
		return m.prompt.View()
	}
	if m.s.errMsg != "" {
		return styles.T().S().Error.Render(render.Label(m.s.errMsg, m.Width))
	}
	hint := keymap.Hint(keymap.ByContext("playback")) + " · ? help"
	return styles.T().S().Subtle.Render(render.Label(hint, m.Width))
}

// Package headerbar renders the one-line header: app name and the
// visualization tabs.
package headerbar

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/vivid/internal/ui/render"
	"github.com/llehouerou/vivid/internal/ui/spectrum"
	"github.com/llehouerou/vivid/internal/ui/styles"
)

// Height is the fixed height of the header bar (single line).
const Height = 1

// tab represents a header bar tab.
type tab struct {
	name string
	mode spectrum.Mode
}

var tabs = []tab{
	{"Spectrum", spectrum.ModeBars},
	{"Waveform", spectrum.ModeWave},
}

// Styles
var (
	titleStyle = lipgloss.NewStyle().Bold(true)

	activeStyle = lipgloss.NewStyle().
			Foreground(styles.T().Primary).
			Bold(true)

	inactiveStyle = lipgloss.NewStyle().
			Foreground(styles.T().FgMuted)

	separatorStyle = lipgloss.NewStyle().
			Foreground(styles.T().FgSubtle)
)

// Render returns the header for the given width with current highlighted and
// status right-aligned.
func Render(current spectrum.Mode, status string, width int) string {
	if width < 20 {
		return ""
	}

	title := styles.Gradient("vivid", titleStyle, styles.T().Primary, styles.T().Secondary)

	parts := make([]string, 0, len(tabs))
	for _, t := range tabs {
		style := inactiveStyle
		if t.mode == current {
			style = activeStyle
		}
		parts = append(parts, style.Render(t.name))
	}
	left := title + "  " + strings.Join(parts, separatorStyle.Render(" │ "))

	room := width - lipgloss.Width(left) - 1
	right := styles.T().S().Muted.Render(render.Label(status, max(room, 0)))
	return render.Row(left, right, width)
}

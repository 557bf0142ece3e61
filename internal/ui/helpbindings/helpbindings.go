// Package helpbindings renders the key binding reference shown over the
// visualization.
package helpbindings

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/samber/lo"

	"github.com/llehouerou/vivid/internal/keymap"
	"github.com/llehouerou/vivid/internal/ui/render"
	"github.com/llehouerou/vivid/internal/ui/styles"
)

// categoryOrder defines the display order of binding categories.
var categoryOrder = []string{"playback", "global"}

// categoryLabels maps context names to display labels.
var categoryLabels = map[string]string{
	"global":   "Global",
	"playback": "Playback",
}

// keyColumn is the width reserved for the key list.
const keyColumn = 16

// Height returns the number of lines Render needs to show every binding.
func Height(bindings []keymap.Binding) int {
	n := 0
	for _, ctx := range categoryOrder {
		group := inContext(bindings, ctx)
		if len(group) == 0 {
			continue
		}
		if n > 0 {
			n++
		}
		n += 1 + len(group)
	}
	return n
}

// Render lists every binding grouped by context, clipped to height lines.
func Render(bindings []keymap.Binding, width, height int) string {
	height = max(height, 1)
	var lines []string
	for _, ctx := range categoryOrder {
		group := inContext(bindings, ctx)
		if len(group) == 0 {
			continue
		}
		if len(lines) > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, styles.T().S().Title.Render(categoryLabels[ctx]))
		for _, b := range group {
			keys := render.Pad(formatKeys(b.Keys), keyColumn)
			line := styles.T().S().Playing.Render(keys) + styles.T().S().Base.Render(b.Description)
			lines = append(lines, line)
		}
	}

	if len(lines) > height {
		lines = lines[:height]
	}
	return lipgloss.NewStyle().Width(width).Height(height).Render(strings.Join(lines, "\n"))
}

func inContext(bindings []keymap.Binding, ctx string) []keymap.Binding {
	return lo.Filter(bindings, func(b keymap.Binding, _ int) bool { return b.Context == ctx })
}

func formatKeys(keys []string) string {
	labels := make([]string, len(keys))
	for i, k := range keys {
		labels[i] = keymap.KeyLabel(k)
	}
	return strings.Join(labels, ", ")
}

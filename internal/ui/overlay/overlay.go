// Package overlay draws one rendered block on top of another.
package overlay

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Place draws box over base with its top-left corner at column x, row y.
// Base lines shorter than width are padded first. Both sides keep their
// styling since cuts are ANSI-aware.
func Place(base, box string, x, y, width int) string {
	baseLines := strings.Split(base, "\n")
	x = max(x, 0)

	for i, line := range strings.Split(box, "\n") {
		row := y + i
		if row < 0 {
			continue
		}
		if row >= len(baseLines) || x >= width {
			break
		}

		under := baseLines[row]
		if w := ansi.StringWidth(under); w < width {
			under += strings.Repeat(" ", width-w)
		}

		end := min(x+ansi.StringWidth(line), width)
		baseLines[row] = ansi.Cut(under, 0, x) + ansi.Cut(line, 0, end-x) + ansi.Cut(under, end, width)
	}

	return strings.Join(baseLines, "\n")
}

// Center draws box in the middle of a base that is width by height cells.
func Center(base, box string, width, height int) string {
	boxLines := strings.Split(box, "\n")
	boxWidth := 0
	for _, l := range boxLines {
		boxWidth = max(boxWidth, ansi.StringWidth(l))
	}
	x := max((width-boxWidth)/2, 0)
	y := max((height-len(boxLines))/2, 0)
	return Place(base, box, x, y, width)
}

// Package spectrum draws engine analyser snapshots as terminal graphics:
// frequency data as vertical bars, time-domain data as an oscilloscope trace.
package spectrum

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/vivid/internal/ui/styles"
)

// Mode selects what the panel draws.
type Mode int

const (
	ModeBars Mode = iota
	ModeWave
)

// Next cycles between modes.
func (m Mode) Next() Mode {
	if m == ModeBars {
		return ModeWave
	}
	return ModeBars
}

// String returns the mode label.
func (m Mode) String() string {
	if m == ModeWave {
		return "waveform"
	}
	return "spectrum"
}

// eighths are partial block glyphs, index k fills k/8 of a cell.
var eighths = []string{" ", "▁", "▂", "▃", "▄", "▅", "▆", "▇", "█"}

// Columns reduces freq to width levels in 0..1, grouping bins on a log
// frequency scale so low frequencies are not squeezed into a few columns.
// DC is skipped.
func Columns(freq []byte, width int) []float64 {
	if width <= 0 || len(freq) < 2 {
		return nil
	}
	out := make([]float64, width)
	logMin := 0.0 // log(1)
	logMax := math.Log(float64(len(freq)))
	for i := range width {
		from := int(math.Exp(logMin + float64(i)/float64(width)*(logMax-logMin)))
		to := int(math.Exp(logMin + float64(i+1)/float64(width)*(logMax-logMin)))
		from = min(max(from, 1), len(freq)-1)
		to = min(max(to, from+1), len(freq))

		var peak byte
		for _, v := range freq[from:to] {
			peak = max(peak, v)
		}
		out[i] = float64(peak) / 255
	}
	return out
}

// Bars renders freq as width columns height rows tall. Rows are colored from
// the theme's primary color at the bottom to the secondary at the top.
func Bars(freq []byte, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	cols := Columns(freq, width)
	if cols == nil {
		cols = make([]float64, width)
	}
	ramp := styles.Ramp(height, styles.T().Primary, styles.T().Secondary)

	rows := make([]string, height)
	for r := range height {
		level := height - 1 - r // 0 is the bottom row
		var line strings.Builder
		for _, v := range cols {
			line.WriteString(cell(v*float64(height), level))
		}
		rows[r] = lipgloss.NewStyle().Foreground(ramp[level]).Render(line.String())
	}
	return strings.Join(rows, "\n")
}

// cell returns the glyph for row level of a bar that is units rows tall.
func cell(units float64, level int) string {
	fill := units - float64(level)
	switch {
	case fill >= 1:
		return eighths[8]
	case fill <= 0:
		return eighths[0]
	default:
		return eighths[int(fill*8)]
	}
}

// Wave renders time-domain bytes as a trace, one sample per column taken at
// even strides across wave. 128 is the centre line.
func Wave(wave []byte, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	grid := make([][]rune, height)
	for r := range grid {
		grid[r] = []rune(strings.Repeat(" ", width))
	}
	mid := height / 2
	for c := range width {
		grid[mid][c] = '·'
	}
	if len(wave) > 0 {
		for c := range width {
			v := wave[c*len(wave)/width]
			grid[Row(v, height)][c] = '•'
		}
	}

	lines := make([]string, height)
	for r, runes := range grid {
		lines[r] = string(runes)
	}
	return styles.T().S().Playing.Render(strings.Join(lines, "\n"))
}

// Row maps a time-domain byte to a grid row, 0 at the top.
func Row(v byte, height int) int {
	r := int(float64(255-int(v)) / 256 * float64(height))
	return min(max(r, 0), height-1)
}

// Render draws the panel for mode. Without data it draws an empty panel of
// the same size.
func Render(mode Mode, freq, wave []byte, width, height int) string {
	if mode == ModeWave {
		return Wave(wave, width, height)
	}
	return Bars(freq, width, height)
}

package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/rivo/uniseg"
)

// ansiGray stands in for palette colors, which have no RGB value to blend.
var ansiGray = colorful.Color{R: 0.5, G: 0.5, B: 0.5}

// Ramp returns n colors going from from to to, blended in HCL space so the
// steps look even. The endpoints are the given colors.
func Ramp(n int, from, to lipgloss.Color) []lipgloss.Color {
	if n <= 0 {
		return nil
	}
	a, b := rgb(from), rgb(to)
	out := make([]lipgloss.Color, n)
	for i := range out {
		switch i {
		case 0:
			out[i] = lipgloss.Color(a.Hex())
		case n - 1:
			out[i] = lipgloss.Color(b.Hex())
		default:
			t := float64(i) / float64(n-1)
			out[i] = lipgloss.Color(a.BlendHcl(b, t).Clamped().Hex())
		}
	}
	return out
}

// Gradient renders text with base, coloring each grapheme along a from→to
// ramp.
func Gradient(text string, base lipgloss.Style, from, to lipgloss.Color) string {
	var clusters []string
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		clusters = append(clusters, g.Str())
	}

	ramp := Ramp(len(clusters), from, to)
	var b strings.Builder
	for i, c := range clusters {
		b.WriteString(base.Foreground(ramp[i]).Render(c))
	}
	return b.String()
}

func rgb(c lipgloss.Color) colorful.Color {
	if col, err := colorful.Hex(string(c)); err == nil {
		return col
	}
	return ansiGray
}

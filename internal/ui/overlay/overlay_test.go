package overlay

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
)

func TestPlace(t *testing.T) {
	base := "..........\n..........\n.........."

	got := Place(base, "ab\ncd", 3, 1, 10)

	assert.Equal(t, "..........\n...ab.....\n...cd.....", got)
}

func TestPlace_PadsShortBaseLines(t *testing.T) {
	got := Place("..", "X", 4, 0, 6)
	assert.Equal(t, "..  X ", got)
}

func TestPlace_ClipsAtWidthAndHeight(t *testing.T) {
	base := "......\n......"

	got := Place(base, "abcd\nefgh\nijkl", 4, 1, 6)

	assert.Equal(t, "......\n....ab", got)
}

func TestPlace_KeepsStyledBase(t *testing.T) {
	style := lipgloss.NewStyle().Bold(true)
	base := style.Render("0123456789")

	got := Place(base, "XX", 4, 0, 10)

	assert.Equal(t, "0123XX6789", ansi.Strip(got))
	assert.Equal(t, 10, ansi.StringWidth(got))
}

func TestCenter(t *testing.T) {
	base := strings.Repeat(strings.Repeat(".", 8)+"\n", 4)
	base = strings.TrimSuffix(base, "\n")

	got := Center(base, "ab\ncd", 8, 4)

	assert.Equal(t, "........\n...ab...\n...cd...\n........", got)
}

func TestCenter_BoxLargerThanBase(t *testing.T) {
	got := Center("....", "abcdef", 4, 1)
	assert.Equal(t, "abcd", got)
}

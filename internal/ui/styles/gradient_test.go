package styles

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRamp_Endpoints(t *testing.T) {
	ramp := Ramp(5, lipgloss.Color("#000000"), lipgloss.Color("#ffffff"))

	require.Len(t, ramp, 5)
	assert.Equal(t, lipgloss.Color("#000000"), ramp[0])
	assert.Equal(t, lipgloss.Color("#ffffff"), ramp[4])
}

func TestRamp_Sizes(t *testing.T) {
	assert.Nil(t, Ramp(0, T().Primary, T().Secondary))
	assert.Equal(t, []lipgloss.Color{"#a78bfa"}, Ramp(1, T().Primary, T().Secondary))
}

func TestRamp_AnsiFallsBackToGray(t *testing.T) {
	ramp := Ramp(2, lipgloss.Color("240"), lipgloss.Color("240"))

	assert.Equal(t, lipgloss.Color("#808080"), ramp[0])
}

func TestRamp_BlendsBetweenEndpoints(t *testing.T) {
	ramp := Ramp(3, lipgloss.Color("#000000"), lipgloss.Color("#ffffff"))

	assert.NotEqual(t, ramp[0], ramp[1])
	assert.NotEqual(t, ramp[2], ramp[1])
}

func TestGradient(t *testing.T) {
	base := lipgloss.NewStyle().Bold(true)

	assert.Empty(t, Gradient("", base, T().Primary, T().Secondary))
	assert.Equal(t, "vivid", ansi.Strip(Gradient("vivid", base, T().Primary, T().Secondary)))
	// combining sequences come out intact
	assert.Equal(t, "e\u0301!", ansi.Strip(Gradient("e\u0301!", base, T().Primary, T().Secondary)))
}

func TestPanel(t *testing.T) {
	assert.Equal(t, T().BorderActive, T().Panel(true).GetBorderTopForeground())
	assert.Equal(t, T().Border, T().Panel(false).GetBorderTopForeground())
}

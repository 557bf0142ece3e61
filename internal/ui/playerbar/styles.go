package playerbar

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/vivid/internal/ui/styles"
)

const (
	playSymbol  = "▶"
	pauseSymbol = "⏸"
	stopSymbol  = "■"
)

func titleStyle() lipgloss.Style        { return styles.T().S().Title }
func metaStyle() lipgloss.Style         { return styles.T().S().Subtle }
func progressTimeStyle() lipgloss.Style { return styles.T().S().Muted }
func progressBarFilled() lipgloss.Style { return styles.T().S().Playing }
func progressBarEmpty() lipgloss.Style  { return styles.T().S().Subtle }

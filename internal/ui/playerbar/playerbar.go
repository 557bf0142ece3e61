package playerbar

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/llehouerou/vivid/internal/track"
	"github.com/llehouerou/vivid/internal/ui/render"
	"github.com/llehouerou/vivid/internal/ui/styles"
)

// Height is the rendered height: top border, content, bottom border.
const Height = 3

// Player is the read side of the playback engine the bar displays.
type Player interface {
	Loaded() bool
	Playing() bool
	Track() *track.Track
	Elapsed() time.Duration
	Duration() time.Duration
	Volume() float64
}

// State holds everything needed to render the player bar.
type State struct {
	Loaded   bool
	Playing  bool
	Title    string
	Size     int // source bytes
	Position time.Duration
	Duration time.Duration
	Volume   float64
	Index    int // 1-based position in the file list, 0 if unknown
	Total    int
}

// NewState captures the current player state. index and total describe the
// file list position.
func NewState(p Player, index, total int) State {
	s := State{
		Volume: p.Volume(),
		Index:  index,
		Total:  total,
	}
	if !p.Loaded() {
		return s
	}
	t := p.Track()
	s.Loaded = true
	s.Playing = p.Playing()
	s.Title = t.Title()
	s.Size = t.Size()
	s.Position = p.Elapsed()
	s.Duration = p.Duration()
	return s
}

// Render returns the framed player bar for the given width.
func Render(s State, width int) string {
	innerWidth := max(width-6, 0) // borders + padding

	status := stopSymbol
	switch {
	case s.Playing:
		status = playSymbol
	case s.Loaded:
		status = pauseSymbol
	}

	title := s.Title
	if !s.Loaded {
		title = "Nothing loaded"
	}

	var meta []string
	if s.Total > 0 {
		meta = append(meta, fmt.Sprintf("%d/%d", s.Index, s.Total))
	}
	if s.Size > 0 {
		meta = append(meta, humanize.Bytes(uint64(s.Size)))
	}
	metaStr := strings.Join(meta, " · ")

	timeStr := fmt.Sprintf("%s / %s", formatDuration(s.Position), formatDuration(s.Duration))
	volStr := RenderVolume(s.Volume)

	separator := "   "
	sepWidth := lipgloss.Width(separator)
	fixed := lipgloss.Width(status) + 1 + lipgloss.Width(timeStr) + lipgloss.Width(volStr) + sepWidth*3
	if metaStr != "" {
		fixed += lipgloss.Width(metaStr) + sepWidth
	}

	// the title is truncated before the bar shrinks below minBarWidth
	minBarWidth := 10
	available := max(innerWidth-fixed, 0)
	titleWidth := min(lipgloss.Width(render.Sanitize(title)), max(available-minBarWidth, 0))
	barWidth := max(available-titleWidth, 5)

	var content strings.Builder
	content.WriteString(status)
	content.WriteString(" ")
	content.WriteString(titleStyle().Render(render.Label(title, titleWidth)))
	if metaStr != "" {
		content.WriteString(separator)
		content.WriteString(metaStyle().Render(metaStr))
	}
	content.WriteString(separator)
	content.WriteString(RenderProgressBar(s.Position, s.Duration, barWidth))
	content.WriteString(separator)
	content.WriteString(progressTimeStyle().Render(timeStr))
	content.WriteString(separator)
	content.WriteString(volStr)

	return styles.T().Panel(s.Playing).Padding(0, 2).Width(width - 2).Render(content.String())
}

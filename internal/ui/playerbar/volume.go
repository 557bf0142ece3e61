package playerbar

import (
	"fmt"
	"math"
)

// RenderVolume renders the volume indicator.
// Format: "vol  50%" or "vol mute"
func RenderVolume(volume float64) string {
	if volume <= 0 {
		return progressTimeStyle().Render("vol mute")
	}
	pct := int(math.Round(volume * 100))
	return progressTimeStyle().Render(fmt.Sprintf("vol %3d%%", pct))
}

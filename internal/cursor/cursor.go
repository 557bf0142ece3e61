// Package cursor translates clock readings into song position.
//
// A Cursor keeps two representations of the position and only one of them is
// authoritative at a time:
//
//	playing:  position = now - Start
//	paused:   position = Elapsed
//
// Every transition recomputes the inactive field from the active one before
// the caller flips its playing flag.
package cursor

import (
	"time"

	"github.com/samber/lo"
)

// Cursor holds the clock reading at which the current play segment began
// (shifted back by the position it resumed from) and the paused position.
type Cursor struct {
	Start   time.Duration
	Elapsed time.Duration
}

// Reset zeroes both fields.
func (c *Cursor) Reset() {
	c.Start = 0
	c.Elapsed = 0
}

// Position returns the song position for the given clock reading.
func (c *Cursor) Position(now time.Duration, playing bool) time.Duration {
	if playing {
		return now - c.Start
	}
	return c.Elapsed
}

// Pause captures the live position into Elapsed.
func (c *Cursor) Pause(now time.Duration) {
	c.Elapsed = now - c.Start
}

// Resume rebases Start so that now - Start equals Elapsed.
func (c *Cursor) Resume(now time.Duration) {
	c.Start = now - c.Elapsed
}

// SeekPaused sets the paused position, clamped to [0, duration].
// The caller must have paused the cursor first.
func (c *Cursor) SeekPaused(t, duration time.Duration) time.Duration {
	c.Elapsed = lo.Clamp(t, 0, max(duration, 0))
	return c.Elapsed
}

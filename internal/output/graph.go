package output

import (
	"sync"
	"sync/atomic"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
)

var (
	_ beep.Streamer = (*oneShot)(nil)
	_ beep.Streamer = (*tap)(nil)
)

// oneShot ends its stream for good once stopped.
type oneShot struct {
	streamer beep.Streamer
	stopped  atomic.Bool
}

// Stream implements beep.Streamer.
func (o *oneShot) Stream(samples [][2]float64) (n int, ok bool) {
	if o.stopped.Load() {
		return 0, false
	}
	return o.streamer.Stream(samples)
}

// Err implements beep.Streamer.
func (o *oneShot) Err() error { return o.streamer.Err() }

// sampleWriter receives every block that flows through a tap.
type sampleWriter interface {
	Write(samples [][2]float64)
}

// tap copies samples into the analyser on their way to the gain stage.
type tap struct {
	streamer beep.Streamer
	sink     sampleWriter
}

// Stream implements beep.Streamer.
func (t *tap) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = t.streamer.Stream(samples)
	if n > 0 {
		t.sink.Write(samples[:n])
	}
	return n, ok
}

// Err implements beep.Streamer.
func (t *tap) Err() error { return t.streamer.Err() }

// graph is one playback chain: source → analyser tap → gain → speaker.
type graph struct {
	owner   *Speaker
	source  *oneShot
	gain    *effects.Gain
	chain   beep.Streamer
	started atomic.Bool
	endOnce sync.Once
	ended   func()
}

// Start hands the chain to the speaker mixer.
func (g *graph) Start() {
	if g.started.Swap(true) {
		return
	}
	g.owner.play(g.chain)
}

// Stop ends the source. The speaker drains the chain on its next buffer,
// which reports the end through the trailing callback.
func (g *graph) Stop() {
	g.source.stopped.Store(true)
	if !g.started.Load() {
		g.finish()
	}
}

func (g *graph) finish() {
	g.endOnce.Do(func() {
		g.owner.detach(g)
		g.ended()
	})
}

package engine

import (
	"time"

	"github.com/llehouerou/vivid/internal/decode"
)

// Source is one live audio graph. It plays once: it cannot be restarted or
// repositioned after Start or Stop.
type Source interface {
	// Start begins playback from the offset given to Output.Open.
	Start()
	// Stop halts playback. Stopping delivers the ended notification exactly
	// as reaching the end of the buffer would.
	Stop()
}

// Output builds audio graphs and applies gain to whatever is playing.
type Output interface {
	// Open builds a graph over pcm starting at offset. ended is called once,
	// from any goroutine, when the graph finishes or is stopped.
	Open(pcm *decode.PCM, offset time.Duration, ended func()) (Source, error)
	// SetGain sets the output amplitude multiplier in [0,1]. It applies to the
	// live graph and to every graph opened afterwards.
	SetGain(level float64)
	// Analyser returns the analysis stage sitting between sources and gain.
	Analyser() Analyser
}

// Analyser exposes byte-scaled snapshots of the signal.
type Analyser interface {
	BinCount() int
	// FrequencyData writes one magnitude byte (0-255) per frequency bin.
	FrequencyData(dst []byte)
	// TimeDomainData writes one byte per sample, centered at 128.
	TimeDomainData(dst []byte)
	// Reset drops captured samples so the next snapshot starts from silence.
	Reset()
}

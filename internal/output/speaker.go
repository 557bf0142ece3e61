// Package output plays engine audio graphs on the system speaker through
// gopxl/beep.
package output

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/speaker"

	"github.com/llehouerou/vivid/internal/analysis"
	"github.com/llehouerou/vivid/internal/decode"
	"github.com/llehouerou/vivid/internal/engine"
)

// Verify Speaker implements engine.Output at compile time.
var _ engine.Output = (*Speaker)(nil)

const (
	DefaultSampleRate = beep.SampleRate(44100)
	DefaultBuffer     = 100 * time.Millisecond
	resampleQuality   = 4
)

// Speaker is the engine output backed by the beep speaker. The speaker runs
// at a fixed rate; tracks at other rates are resampled.
type Speaker struct {
	sampleRate beep.SampleRate
	buffer     time.Duration
	analyser   *analysis.Analyser

	initOnce sync.Once
	initErr  error
	opened   atomic.Bool

	mu   sync.Mutex
	gain float64
	live *graph

	// overridable in tests
	play func(s beep.Streamer)
}

// NewSpeaker creates a speaker output. The device is opened lazily on the
// first Open.
func NewSpeaker(sampleRate beep.SampleRate, buffer time.Duration, a *analysis.Analyser) *Speaker {
	if sampleRate <= 0 {
		sampleRate = DefaultSampleRate
	}
	if buffer <= 0 {
		buffer = DefaultBuffer
	}
	s := &Speaker{
		sampleRate: sampleRate,
		buffer:     buffer,
		analyser:   a,
		gain:       1,
	}
	s.play = func(st beep.Streamer) {
		speaker.Play(st)
	}
	return s
}

// Init opens the audio device. Open calls it implicitly; calling it up front
// surfaces device errors before anything is played.
func (s *Speaker) Init() error {
	s.initOnce.Do(func() {
		if err := speaker.Init(s.sampleRate, s.sampleRate.N(s.buffer)); err != nil {
			s.initErr = fmt.Errorf("init speaker: %w", err)
			return
		}
		s.opened.Store(true)
	})
	return s.initErr
}

// Open implements engine.Output.
func (s *Speaker) Open(pcm *decode.PCM, offset time.Duration, ended func()) (engine.Source, error) {
	if err := s.Init(); err != nil {
		return nil, err
	}
	return s.build(pcm, offset, ended), nil
}

// build assembles a graph without touching the audio device.
func (s *Speaker) build(pcm *decode.PCM, offset time.Duration, ended func()) *graph {
	var src beep.Streamer = pcm.StreamerAt(offset)
	if rate := pcm.Format().SampleRate; rate != s.sampleRate {
		src = beep.Resample(resampleQuality, rate, s.sampleRate, src)
	}

	g := &graph{owner: s, ended: ended}
	g.source = &oneShot{streamer: src}
	g.gain = &effects.Gain{
		Streamer: &tap{streamer: g.source, sink: s.analyser},
		Gain:     s.currentGain() - 1,
	}
	// The callback runs inside the speaker's locked mixing step; leave it
	// before notifying so listeners may call back into the speaker.
	g.chain = beep.Seq(g.gain, beep.Callback(func() { go g.finish() }))

	s.mu.Lock()
	s.live = g
	s.mu.Unlock()
	return g
}

// detach forgets g if it is still the live graph.
func (s *Speaker) detach(g *graph) {
	s.mu.Lock()
	if s.live == g {
		s.live = nil
	}
	s.mu.Unlock()
}

// SetGain implements engine.Output. effects.Gain multiplies by 1+Gain, so a
// level of 0.2 is a Gain of -0.8.
func (s *Speaker) SetGain(level float64) {
	s.mu.Lock()
	s.gain = level
	live := s.live
	s.mu.Unlock()

	if live != nil {
		speaker.Lock()
		live.gain.Gain = level - 1
		speaker.Unlock()
	}
}

func (s *Speaker) currentGain() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gain
}

// Analyser implements engine.Output.
func (s *Speaker) Analyser() engine.Analyser { return s.analyser }

// SampleRate returns the device rate.
func (s *Speaker) SampleRate() beep.SampleRate { return s.sampleRate }

// Close releases the audio device if it was opened.
func (s *Speaker) Close() {
	if !s.opened.Load() {
		return
	}
	speaker.Clear()
	speaker.Close()
}

// Package engine implements the playback state machine: it owns the loaded
// track, the position cursor and the live audio graph, and exposes
// play/pause/seek/volume plus spectrum and waveform snapshots.
//
// An Engine is not safe for concurrent use. Every method must be called from
// the goroutine that runs the dispatcher given to New; asynchronous
// notifications from the output are routed through that dispatcher.
package engine

import (
	"log/slog"
	"time"

	"github.com/samber/lo"

	"github.com/llehouerou/vivid/internal/clock"
	"github.com/llehouerou/vivid/internal/cursor"
	"github.com/llehouerou/vivid/internal/eventbus"
	"github.com/llehouerou/vivid/internal/loop"
	"github.com/llehouerou/vivid/internal/track"
)

// Engine is the playback state machine.
type Engine struct {
	out        Output
	clock      clock.Clock
	dispatcher loop.Dispatcher
	logger     *slog.Logger
	bus        *eventbus.Bus

	track   *track.Track
	cursor  cursor.Cursor
	loaded  bool
	playing bool
	gain    float64

	// stopped is the source Pause stopped; its ended notification is not a
	// natural end.
	stopped Source
	source  Source

	// last snapshots taken while playing, served while paused
	freq []byte
	wave []byte
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock sets the time source. Defaults to clock.NewSystem().
func WithClock(c clock.Clock) Option {
	return func(e *Engine) { e.clock = c }
}

// WithDispatcher sets how output notifications reach the engine goroutine.
// Defaults to loop.Inline, which is only correct when the output notifies
// from the engine goroutine itself.
func WithDispatcher(d loop.Dispatcher) Option {
	return func(e *Engine) { e.dispatcher = d }
}

// WithLogger sets the logger for diagnostics. Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// WithVolume sets the initial gain. Defaults to DefaultVolume.
func WithVolume(level float64) Option {
	return func(e *Engine) { e.gain = lo.Clamp(level, 0, 1) }
}

// New creates an unloaded engine playing through out.
func New(out Output, opts ...Option) *Engine {
	e := &Engine{
		out:        out,
		clock:      clock.NewSystem(),
		dispatcher: loop.Inline{},
		logger:     slog.Default(),
		gain:       DefaultVolume,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.bus = eventbus.New(e.logger)
	e.out.SetGain(e.gain)
	return e
}

// On registers a listener for an engine event.
func (e *Engine) On(event string, fn eventbus.Listener) eventbus.Handle {
	return e.bus.On(event, fn)
}

// Off removes a listener registered with On.
func (e *Engine) Off(h eventbus.Handle) { e.bus.Off(h) }

// Loaded reports whether a track is loaded.
func (e *Engine) Loaded() bool { return e.loaded }

// Playing reports whether the loaded track is playing.
func (e *Engine) Playing() bool { return e.playing }

// State returns the combined loaded/playing state.
func (e *Engine) State() State {
	switch {
	case e.playing:
		return Playing
	case e.loaded:
		return Paused
	default:
		return Unloaded
	}
}

// Track returns the loaded track, or nil.
func (e *Engine) Track() *track.Track { return e.track }

// Duration returns the loaded track's duration, or 0.
func (e *Engine) Duration() time.Duration {
	if !e.loaded {
		return 0
	}
	return e.track.Duration()
}

// Load makes t the current track. t must be Ready; anything else is logged
// and ignored. A previously loaded track is unloaded first. With autoplay,
// playback starts immediately.
func (e *Engine) Load(t *track.Track, autoplay bool) {
	if t == nil || t.State() != track.Ready {
		e.logger.Warn("track not playable", "track", trackName(t), "state", trackState(t))
		return
	}
	if e.loaded {
		e.Unload()
	}

	e.track = t
	e.cursor.Reset()
	e.out.Analyser().Reset()
	e.freq, e.wave = nil, nil
	e.loaded = true
	e.bus.Emit(EventLoaded, t)

	if autoplay {
		e.Play()
	}
}

// Unload stops and releases the current track. The track's own listeners are
// cleared so nothing registered on it fires into a discarded player state.
func (e *Engine) Unload() {
	if !e.loaded {
		e.logger.Warn("nothing loaded")
		return
	}
	if e.playing {
		e.Pause()
	}

	old := e.track
	old.Bus().Clear()
	e.track = nil
	e.loaded = false
	e.freq, e.wave = nil, nil
	e.bus.Emit(EventUnloaded, old)
}

// Play starts the loaded track from the current position.
func (e *Engine) Play() {
	if e.playing {
		e.logger.Debug("already playing")
		return
	}
	if !e.loaded {
		e.logger.Warn("nothing loaded")
		return
	}

	var src Source
	src, err := e.out.Open(e.track.PCM(), e.cursor.Elapsed, func() {
		e.dispatcher.Dispatch(func() { e.sourceEnded(src) })
	})
	if err != nil {
		e.logger.Error("cannot open audio output", "track", e.track.Name(), "error", err)
		return
	}

	e.cursor.Resume(e.clock.Now())
	// Set before Start: an output may report the end synchronously.
	e.playing = true
	e.source = src
	src.Start()
	e.bus.Emit(EventPlay, e.track)
}

// Pause stops playback, keeping the position.
func (e *Engine) Pause() {
	if !e.playing {
		e.logger.Debug("already paused")
		return
	}
	if !e.loaded {
		e.logger.Warn("nothing loaded")
		return
	}

	e.halt()
	e.stopped = e.source
	e.stopSource()
	e.bus.Emit(EventPause, e.track)
}

// Toggle pauses when playing and plays otherwise.
func (e *Engine) Toggle() {
	if e.playing {
		e.Pause()
		return
	}
	e.Play()
}

// halt captures the position and snapshots, leaving the engine paused.
func (e *Engine) halt() {
	e.cursor.Pause(e.clock.Now())
	e.freq = e.snapshot(e.out.Analyser().FrequencyData)
	e.wave = e.snapshot(e.out.Analyser().TimeDomainData)
	e.playing = false
}

func (e *Engine) stopSource() {
	src := e.source
	e.source = nil
	if src != nil {
		src.Stop()
	}
}

// sourceEnded handles the ended notification of src. Notifications from
// different sources may arrive in any order, so only the current source can
// end the track.
func (e *Engine) sourceEnded(src Source) {
	if src != nil && src == e.stopped {
		e.stopped = nil
		return
	}
	if src == nil || src != e.source {
		e.logger.Debug("ignoring end of superseded source")
		return
	}

	e.logger.Debug("reached the end", "track", e.track.Name())
	e.halt()
	e.source = nil
	e.cursor.Elapsed = e.track.Duration()
	e.bus.Emit(EventPause, e.track)
}

// Volume returns the gain in [0,1].
func (e *Engine) Volume() float64 { return e.gain }

// SetVolume sets the gain, clamped to [0,1]. The gain outlives tracks: it
// may be set while unloaded and applies to everything played afterwards.
func (e *Engine) SetVolume(level float64) {
	e.gain = lo.Clamp(level, 0, 1)
	e.out.SetGain(e.gain)
	e.bus.Emit(EventVolume, e.gain)
}

// Elapsed returns the current song position, or 0 when nothing is loaded.
func (e *Engine) Elapsed() time.Duration {
	if !e.loaded {
		return 0
	}
	return e.cursor.Position(e.clock.Now(), e.playing)
}

// SetElapsed moves to t, clamped to the track bounds. A playing track is
// paused, repositioned and resumed since a live source cannot seek.
func (e *Engine) SetElapsed(t time.Duration) {
	if !e.loaded {
		e.logger.Debug("seek ignored, nothing loaded")
		return
	}

	resume := e.playing
	if resume {
		e.Pause()
	}
	pos := e.cursor.SeekPaused(t, e.track.Duration())
	if resume {
		e.Play()
	}
	e.bus.Emit(EventElapsed, pos)
}

// Seek moves the position by delta relative to the current one.
func (e *Engine) Seek(delta time.Duration) {
	if !e.loaded {
		e.logger.Debug("seek ignored, nothing loaded")
		return
	}
	e.SetElapsed(e.Elapsed() + delta)
}

// Equalizer returns a frequency-domain snapshot, one byte per bin.
// It is nil when nothing is loaded. While paused it returns the last
// snapshot taken while playing.
func (e *Engine) Equalizer() []byte {
	return e.read(e.freq, e.out.Analyser().FrequencyData)
}

// Waveform returns a time-domain snapshot, one byte per sample centered at 128.
// Same availability rules as Equalizer.
func (e *Engine) Waveform() []byte {
	return e.read(e.wave, e.out.Analyser().TimeDomainData)
}

func (e *Engine) read(last []byte, fill func([]byte)) []byte {
	if !e.loaded {
		return nil
	}
	if !e.playing && last != nil {
		return append([]byte(nil), last...)
	}
	return e.snapshot(fill)
}

func (e *Engine) snapshot(fill func([]byte)) []byte {
	dst := make([]byte, e.out.Analyser().BinCount())
	fill(dst)
	return dst
}

// Close unloads the current track and drops every engine listener.
func (e *Engine) Close() {
	if e.loaded {
		e.Unload()
	}
	e.bus.Clear()
}

func trackName(t *track.Track) string {
	if t == nil {
		return ""
	}
	return t.Name()
}

func trackState(t *track.Track) string {
	if t == nil {
		return "nil"
	}
	return t.State().String()
}

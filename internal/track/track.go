// Package track models one decoded audio asset and its asynchronous load
// pipeline: a Track starts Pending and moves once to Ready or Failed.
package track

import (
	"errors"
	"log/slog"
	"time"

	"github.com/llehouerou/vivid/internal/decode"
	"github.com/llehouerou/vivid/internal/eventbus"
)

// State is the load state of a Track.
type State int

const (
	Pending State = iota
	Ready
	Failed
)

// String returns the state name for debugging.
func (s State) String() string {
	switch s {
	case Pending:
		return "Pending"
	case Ready:
		return "Ready"
	case Failed:
		return "Failed"
	default:
		return "Unknown"
	}
}

// Events emitted on a track's bus.
const (
	EventLoaded = "loaded" // data: *Track
	EventFailed = "failed" // data: error
)

// ErrDiscarded is the failure reason of a track abandoned before its decode
// completed.
var ErrDiscarded = errors.New("track discarded before decode completed")

// Track is one audio asset. Duration and PCM are only meaningful once the
// state is Ready, and never change afterwards.
//
// A Track is mutated only by its own decode completion, which runs on the
// loop that created it; it is not safe for concurrent use.
type Track struct {
	name     string
	title    string
	size     int
	state    State
	duration time.Duration
	pcm      *decode.PCM
	err      error
	bus      *eventbus.Bus
	logger   *slog.Logger
}

func newTrack(name string, size int, logger *slog.Logger) *Track {
	if logger == nil {
		logger = slog.Default()
	}
	return &Track{
		name:   name,
		size:   size,
		state:  Pending,
		bus:    eventbus.New(logger),
		logger: logger,
	}
}

// NewReady wraps already decoded audio in a Ready track.
func NewReady(name string, pcm *decode.PCM) *Track {
	t := newTrack(name, 0, nil)
	t.state = Ready
	t.pcm = pcm
	t.duration = pcm.Duration()
	return t
}

// Name returns the name the track was loaded under, usually a file name.
func (t *Track) Name() string { return t.name }

// Title returns the embedded title tag when one was found, else Name.
func (t *Track) Title() string {
	if t.title != "" {
		return t.title
	}
	return t.name
}

// Size returns the size in bytes of the source data.
func (t *Track) Size() int { return t.size }

// State returns the load state.
func (t *Track) State() State { return t.state }

// Duration returns the playing time. Zero unless Ready.
func (t *Track) Duration() time.Duration { return t.duration }

// PCM returns the decoded samples. Nil unless Ready.
func (t *Track) PCM() *decode.PCM { return t.pcm }

// Err returns the failure reason. Nil unless Failed.
func (t *Track) Err() error { return t.err }

// Bus returns the track's event bus.
func (t *Track) Bus() *eventbus.Bus { return t.bus }

// On registers a listener on the track's bus.
func (t *Track) On(event string, fn eventbus.Listener) eventbus.Handle {
	return t.bus.On(event, fn)
}

// Off removes a listener registered with On.
func (t *Track) Off(h eventbus.Handle) { t.bus.Off(h) }

// Await calls onReady or onFail exactly once: immediately when the track has
// already settled, otherwise when it does.
func (t *Track) Await(onReady func(*Track), onFail func(error)) {
	switch t.state {
	case Ready:
		onReady(t)
		return
	case Failed:
		onFail(t.err)
		return
	case Pending:
	}

	var loaded, failed eventbus.Handle
	loaded = t.On(EventLoaded, func(any) {
		t.Off(loaded)
		t.Off(failed)
		onReady(t)
	})
	failed = t.On(EventFailed, func(data any) {
		t.Off(loaded)
		t.Off(failed)
		err, _ := data.(error)
		onFail(err)
	})
}

// Discard abandons a Pending track so its decode result will be dropped.
// Settled tracks are left unchanged.
func (t *Track) Discard() {
	if t.state != Pending {
		return
	}
	t.fail(ErrDiscarded)
}

// complete applies a decode result. Results arriving after the track settled
// (discarded or superseded) are ignored.
func (t *Track) complete(pcm *decode.PCM, title string, err error) {
	if t.state != Pending {
		t.logger.Debug("dropping stale decode result", "track", t.name, "state", t.state)
		return
	}
	if err != nil {
		t.fail(err)
		return
	}

	t.pcm = pcm
	t.duration = pcm.Duration()
	t.title = title
	t.state = Ready
	t.logger.Debug("track decoded", "track", t.name, "duration", t.duration)
	t.bus.Emit(EventLoaded, t)
}

func (t *Track) fail(err error) {
	t.state = Failed
	t.err = err
	t.logger.Warn("track failed", "track", t.name, "error", err)
	t.bus.Emit(EventFailed, err)
}

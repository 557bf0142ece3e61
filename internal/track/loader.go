package track

import (
	"bytes"
	"context"
	"log/slog"

	"github.com/dhowden/tag"

	"github.com/llehouerou/vivid/internal/decode"
	"github.com/llehouerou/vivid/internal/loop"
)

// Loader starts track decodes on a background goroutine and delivers the
// results through Dispatcher.
type Loader struct {
	Decoder    decode.Decoder
	Dispatcher loop.Dispatcher
	Logger     *slog.Logger
}

// NewLoader creates a Loader using the automatic format decoder.
func NewLoader(d loop.Dispatcher, logger *slog.Logger) *Loader {
	return &Loader{Decoder: decode.Auto{}, Dispatcher: d, Logger: logger}
}

// Load returns a Pending track for data and begins decoding it.
//
// If ctx is done by the time the decode result reaches the loop, the track
// is discarded instead. The decoder itself is not interrupted.
func (l *Loader) Load(ctx context.Context, name string, data []byte) *Track {
	t := newTrack(name, len(data), l.Logger)
	go func() {
		pcm, err := l.Decoder.Decode(data)
		var title string
		if err == nil {
			title = readTitle(data)
		}
		l.Dispatcher.Dispatch(func() {
			if ctx.Err() != nil {
				t.Discard()
				return
			}
			t.complete(pcm, title, err)
		})
	}()
	return t
}

func readTitle(data []byte) string {
	m, err := tag.ReadFrom(bytes.NewReader(data))
	if err != nil {
		return ""
	}
	return m.Title()
}

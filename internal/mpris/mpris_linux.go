//go:build linux

package mpris

import (
	"fmt"
	"hash/fnv"
	"net/url"
	"time"

	"github.com/godbus/dbus/v5"
	"github.com/quarckster/go-mpris-server/pkg/server"
	"github.com/quarckster/go-mpris-server/pkg/types"
)

// busName becomes org.mpris.MediaPlayer2.vivid.
const busName = "vivid"

func (a *Adapter) listen() func() error {
	srv := server.NewServer(busName, rootAdapter{}, &playerAdapter{a: a})
	go func() {
		if err := srv.Listen(); err != nil {
			a.logger.Warn("mpris unavailable", "error", err)
		}
	}()
	return srv.Stop
}

// rootAdapter implements OrgMprisMediaPlayer2Adapter.
type rootAdapter struct{}

func (rootAdapter) Raise() error                { return nil }
func (rootAdapter) Quit() error                 { return nil }
func (rootAdapter) CanQuit() (bool, error)      { return false, nil }
func (rootAdapter) CanRaise() (bool, error)     { return false, nil }
func (rootAdapter) HasTrackList() (bool, error) { return false, nil }
func (rootAdapter) Identity() (string, error)   { return "Vivid", nil }

//nolint:revive // Method name required by interface.
func (rootAdapter) SupportedUriSchemes() ([]string, error) {
	return []string{"file"}, nil
}

func (rootAdapter) SupportedMimeTypes() ([]string, error) {
	return []string{"audio/mpeg", "audio/flac", "audio/wav", "audio/ogg", "audio/opus"}, nil
}

// playerAdapter implements OrgMprisMediaPlayer2PlayerAdapter.
type playerAdapter struct {
	a *Adapter
}

func (p *playerAdapter) do(op Op) error {
	p.a.dispatch(Command{Op: op})
	return nil
}

func (p *playerAdapter) Next() error      { return p.do(OpNext) }
func (p *playerAdapter) Previous() error  { return p.do(OpPrevious) }
func (p *playerAdapter) Pause() error     { return p.do(OpPause) }
func (p *playerAdapter) PlayPause() error { return p.do(OpPlayPause) }
func (p *playerAdapter) Stop() error      { return p.do(OpStop) }
func (p *playerAdapter) Play() error      { return p.do(OpPlay) }

func (p *playerAdapter) Seek(offset types.Microseconds) error {
	p.a.dispatch(Command{Op: OpSeek, Offset: time.Duration(offset) * time.Microsecond})
	return nil
}

func (p *playerAdapter) SetPosition(trackID string, position types.Microseconds) error {
	// stale requests for a track that is no longer current are ignored
	if trackID != string(trackObjectPath(p.a.snapshot().Path)) {
		return nil
	}
	p.a.dispatch(Command{Op: OpSetPosition, Offset: time.Duration(position) * time.Microsecond})
	return nil
}

//nolint:revive // Method name required by interface.
func (p *playerAdapter) OpenUri(_ string) error { return nil }

func (p *playerAdapter) PlaybackStatus() (types.PlaybackStatus, error) {
	switch p.a.snapshot().Status {
	case StatusPlaying:
		return types.PlaybackStatusPlaying, nil
	case StatusPaused:
		return types.PlaybackStatusPaused, nil
	case StatusStopped:
	}
	return types.PlaybackStatusStopped, nil
}

func (p *playerAdapter) Rate() (float64, error)  { return 1.0, nil }
func (p *playerAdapter) SetRate(_ float64) error { return nil }

func (p *playerAdapter) Metadata() (types.Metadata, error) {
	s := p.a.snapshot()
	if s.Status == StatusStopped {
		return types.Metadata{}, nil
	}

	meta := types.Metadata{
		TrackId: trackObjectPath(s.Path),
		Length:  types.Microseconds(s.Duration.Microseconds()),
		Title:   s.Title,
	}
	if s.Path != "" {
		if art := FindCover(s.Path); art != "" {
			meta.ArtUrl = (&url.URL{Scheme: "file", Path: art}).String()
		}
	}
	return meta, nil
}

func (p *playerAdapter) Volume() (float64, error) { return p.a.snapshot().Volume, nil }

func (p *playerAdapter) SetVolume(v float64) error {
	p.a.dispatch(Command{Op: OpSetVolume, Volume: v})
	return nil
}

func (p *playerAdapter) Position() (int64, error) {
	return p.a.snapshot().Position.Microseconds(), nil
}

func (p *playerAdapter) MinimumRate() (float64, error) { return 1.0, nil }
func (p *playerAdapter) MaximumRate() (float64, error) { return 1.0, nil }

func (p *playerAdapter) CanGoNext() (bool, error)     { return p.a.snapshot().HasNext, nil }
func (p *playerAdapter) CanGoPrevious() (bool, error) { return p.a.snapshot().HasPrevious, nil }
func (p *playerAdapter) CanPlay() (bool, error)       { return p.a.snapshot().CanPlay, nil }

func (p *playerAdapter) CanPause() (bool, error) {
	return p.a.snapshot().Status != StatusStopped, nil
}

func (p *playerAdapter) CanSeek() (bool, error) {
	return p.a.snapshot().Status != StatusStopped, nil
}

func (p *playerAdapter) CanControl() (bool, error) { return true, nil }

func trackObjectPath(path string) dbus.ObjectPath {
	h := fnv.New64a()
	h.Write([]byte(path))
	return dbus.ObjectPath(fmt.Sprintf("/org/mpris/MediaPlayer2/Track/%x", h.Sum64()))
}

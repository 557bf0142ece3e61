//go:build linux

package mpris

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/quarckster/go-mpris-server/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPlayer() (*playerAdapter, *[]Command) {
	a := New(nil)
	var got []Command
	a.send = func(c Command) { got = append(got, c) }
	return &playerAdapter{a: a}, &got
}

func TestPlayer_ForwardsControls(t *testing.T) {
	p, got := newTestPlayer()

	require.NoError(t, p.PlayPause())
	require.NoError(t, p.Next())
	require.NoError(t, p.Previous())
	require.NoError(t, p.Stop())
	require.NoError(t, p.Seek(types.Microseconds(2_500_000)))
	require.NoError(t, p.SetVolume(0.3))

	assert.Equal(t, []Command{
		{Op: OpPlayPause},
		{Op: OpNext},
		{Op: OpPrevious},
		{Op: OpStop},
		{Op: OpSeek, Offset: 2500 * time.Millisecond},
		{Op: OpSetVolume, Volume: 0.3},
	}, *got)
}

func TestPlayer_SetPositionChecksTrack(t *testing.T) {
	p, got := newTestPlayer()
	p.a.Publish(Snapshot{Status: StatusPaused, Path: "/music/a.flac"})

	require.NoError(t, p.SetPosition(string(trackObjectPath("/music/b.flac")), 1_000_000))
	assert.Empty(t, *got, "position for another track is ignored")

	require.NoError(t, p.SetPosition(string(trackObjectPath("/music/a.flac")), 1_000_000))
	assert.Equal(t, []Command{{Op: OpSetPosition, Offset: time.Second}}, *got)
}

func TestPlayer_ReadsSnapshot(t *testing.T) {
	p, _ := newTestPlayer()

	status, err := p.PlaybackStatus()
	require.NoError(t, err)
	assert.Equal(t, types.PlaybackStatusStopped, status)
	meta, err := p.Metadata()
	require.NoError(t, err)
	assert.Equal(t, types.Metadata{}, meta)
	canSeek, _ := p.CanSeek()
	assert.False(t, canSeek)

	dir := t.TempDir()
	path := filepath.Join(dir, "a.flac")
	p.a.Publish(Snapshot{
		Status:   StatusPlaying,
		Path:     path,
		Title:    "A",
		Duration: time.Minute,
		Position: 3 * time.Second,
		Volume:   0.4,
		HasNext:  true,
	})

	status, _ = p.PlaybackStatus()
	assert.Equal(t, types.PlaybackStatusPlaying, status)
	pos, _ := p.Position()
	assert.Equal(t, int64(3_000_000), pos)
	vol, _ := p.Volume()
	assert.InDelta(t, 0.4, vol, 1e-9)
	next, _ := p.CanGoNext()
	assert.True(t, next)
	prev, _ := p.CanGoPrevious()
	assert.False(t, prev)

	meta, _ = p.Metadata()
	assert.Equal(t, "A", meta.Title)
	assert.Equal(t, types.Microseconds(60_000_000), meta.Length)
	assert.Equal(t, trackObjectPath(path), meta.TrackId)
	assert.Empty(t, meta.ArtUrl)
}

func TestTrackObjectPath_Stable(t *testing.T) {
	assert.Equal(t, trackObjectPath("/a"), trackObjectPath("/a"))
	assert.NotEqual(t, trackObjectPath("/a"), trackObjectPath("/b"))
	assert.True(t, trackObjectPath("/a").IsValid())
}

package mpris

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAdapter_PublishReplacesSnapshot(t *testing.T) {
	a := New(nil)
	assert.Equal(t, Snapshot{}, a.snapshot())

	s := Snapshot{Status: StatusPlaying, Title: "Song", Position: time.Second}
	a.Publish(s)

	assert.Equal(t, s, a.snapshot())
}

func TestAdapter_DispatchBeforeStartIsDropped(t *testing.T) {
	a := New(nil)
	assert.NotPanics(t, func() { a.dispatch(Command{Op: OpNext}) })
}

func TestAdapter_DispatchForwards(t *testing.T) {
	a := New(nil)
	var got []Command
	a.send = func(c Command) { got = append(got, c) }

	a.dispatch(Command{Op: OpSeek, Offset: time.Second})

	assert.Equal(t, []Command{{Op: OpSeek, Offset: time.Second}}, got)
}

func TestAdapter_CloseStopsForwarding(t *testing.T) {
	a := New(nil)
	calls := 0
	a.send = func(Command) { calls++ }

	assert.NoError(t, a.Close())
	a.dispatch(Command{Op: OpPlay})

	assert.Zero(t, calls)
}

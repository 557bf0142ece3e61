package app

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatcher_DeliversInOrder(t *testing.T) {
	d := NewDispatcher()
	var got []int
	for i := range 3 {
		d.Dispatch(func() { got = append(got, i) })
	}

	msgs := make(chan tea.Msg, 8)
	ctx, cancel := context.WithCancel(t.Context())
	defer cancel()
	go d.Run(ctx, func(msg tea.Msg) { msgs <- msg })

	for range 3 {
		select {
		case msg := <-msgs:
			fn, ok := msg.(DispatchMsg)
			require.True(t, ok, "got %T", msg)
			fn()
		case <-time.After(5 * time.Second):
			t.Fatal("dispatch not delivered")
		}
	}
	assert.Equal(t, []int{0, 1, 2}, got)
}

func TestDispatcher_DispatchDoesNotBlock(t *testing.T) {
	d := NewDispatcher()

	// nothing is running, the send side would block forever
	for range 100 {
		d.Dispatch(func() {})
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	assert.Len(t, d.queue, 100)
}

func TestDispatcher_StopsWithContext(t *testing.T) {
	d := NewDispatcher()
	ctx, cancel := context.WithCancel(t.Context())
	done := make(chan struct{})
	go func() {
		d.Run(ctx, func(tea.Msg) {})
		close(done)
	}()

	cancel()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return")
	}
}

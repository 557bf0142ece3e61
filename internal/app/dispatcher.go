package app

import (
	"context"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/vivid/internal/loop"
)

// Verify Dispatcher implements loop.Dispatcher at compile time.
var _ loop.Dispatcher = (*Dispatcher)(nil)

// Dispatcher forwards closures to the bubbletea program as DispatchMsg.
//
// Dispatch never blocks: closures are queued and a pump goroutine sends them
// in order. Program.Send blocks until the update loop receives, so sending
// directly from the update goroutine would deadlock.
type Dispatcher struct {
	mu    sync.Mutex
	queue []func()
	wake  chan struct{}
}

// NewDispatcher creates an idle dispatcher. Call Run to start delivering.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{wake: make(chan struct{}, 1)}
}

// Dispatch implements loop.Dispatcher.
func (d *Dispatcher) Dispatch(fn func()) {
	d.mu.Lock()
	d.queue = append(d.queue, fn)
	d.mu.Unlock()

	select {
	case d.wake <- struct{}{}:
	default:
	}
}

// Run delivers queued closures through send until ctx is done.
// Pass the program's Send method.
func (d *Dispatcher) Run(ctx context.Context, send func(tea.Msg)) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-d.wake:
		}

		d.mu.Lock()
		batch := d.queue
		d.queue = nil
		d.mu.Unlock()

		for _, fn := range batch {
			send(DispatchMsg(fn))
		}
	}
}

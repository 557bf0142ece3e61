// Package eventbus provides the publish/subscribe primitive held by every
// stateful object (tracks, the playback engine) so observers can react to
// state changes without being coupled to the emitter.
package eventbus

import (
	"log/slog"
	"sync"

	"github.com/samber/lo"
)

// Listener receives the data passed to Emit.
type Listener func(data any)

// Handle identifies a single registration returned by On.
// Registering the same function twice yields two distinct handles.
type Handle struct {
	event string
	id    uint64
}

// Event returns the event name the handle was registered for.
func (h Handle) Event() string { return h.event }

type registration struct {
	id uint64
	fn Listener
}

// Bus maps event names to ordered listener lists.
//
// Emission is synchronous and follows registration order. The zero value is
// ready to use.
type Bus struct {
	mu        sync.Mutex
	listeners map[string][]registration
	nextID    uint64
	logger    *slog.Logger
}

// New creates a bus that reports recovered listener panics to logger.
// A nil logger falls back to slog.Default().
func New(logger *slog.Logger) *Bus {
	return &Bus{logger: logger}
}

// On registers fn for event and returns the handle needed to remove it.
func (b *Bus) On(event string, fn Listener) Handle {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.listeners == nil {
		b.listeners = make(map[string][]registration)
	}
	b.nextID++
	b.listeners[event] = append(b.listeners[event], registration{id: b.nextID, fn: fn})
	return Handle{event: event, id: b.nextID}
}

// Off removes the registration identified by h. Unknown handles are ignored.
func (b *Bus) Off(h Handle) {
	b.mu.Lock()
	defer b.mu.Unlock()

	regs := b.listeners[h.event]
	_, idx, found := lo.FindIndexOf(regs, func(r registration) bool { return r.id == h.id })
	if !found {
		return
	}
	regs = append(regs[:idx:idx], regs[idx+1:]...)
	if len(regs) == 0 {
		delete(b.listeners, h.event)
		return
	}
	b.listeners[h.event] = regs
}

// Emit invokes every listener registered for event, in registration order.
// Listeners registered or removed during the emission take effect on the next
// one. A panicking listener is logged and does not stop the others.
func (b *Bus) Emit(event string, data any) {
	b.mu.Lock()
	regs := append([]registration(nil), b.listeners[event]...)
	b.mu.Unlock()

	for _, r := range regs {
		b.invoke(event, r.fn, data)
	}
}

func (b *Bus) invoke(event string, fn Listener, data any) {
	defer func() {
		if r := recover(); r != nil {
			b.log().Error("event listener panicked", "event", event, "panic", r)
		}
	}()
	fn(data)
}

// Clear drops every registration.
func (b *Bus) Clear() {
	b.mu.Lock()
	b.listeners = nil
	b.mu.Unlock()
}

// Len returns the number of listeners registered for event.
func (b *Bus) Len(event string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.listeners[event])
}

func (b *Bus) log() *slog.Logger {
	if b.logger != nil {
		return b.logger
	}
	return slog.Default()
}

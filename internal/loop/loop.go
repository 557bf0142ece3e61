// Package loop defines how asynchronous completions (decode results, audio
// backend notifications) are handed back to the goroutine that owns the
// player state.
package loop

// Dispatcher schedules fn to run on the owning goroutine.
// Implementations must preserve submission order.
type Dispatcher interface {
	Dispatch(fn func())
}

// Func adapts a plain function to Dispatcher.
type Func func(fn func())

// Dispatch calls f(fn).
func (f Func) Dispatch(fn func()) { f(fn) }

// Inline runs fn immediately on the calling goroutine.
// Only safe when every caller already runs on the owning goroutine, as in tests.
type Inline struct{}

// Dispatch runs fn.
func (Inline) Dispatch(fn func()) { fn() }

//go:build !linux

package mpris

// listen is a no-op where there is no session bus.
func (a *Adapter) listen() func() error { return nil }

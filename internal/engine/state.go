package engine

// State summarizes the loaded/playing flags.
//
//	┌──────────┐      Load       ┌──────────┐
//	│ Unloaded │ ───────────────▶│  Paused  │◀──┐
//	└──────────┘                 └──────────┘   │
//	     ▲                          │  ▲        │ Pause, natural end
//	     │ Unload                   │  │        │
//	     │                     Play │  │        │
//	     │                          ▼  │        │
//	     │                       ┌──────────┐   │
//	     └───────────────────────│ Playing  │───┘
//	          Unload (pauses     └──────────┘
//	          first)
//
// Load with autoplay goes straight to Playing. Loading while something is
// loaded unloads first. Redundant calls (Play while Playing, Pause while
// Paused, anything but Load and SetVolume while Unloaded) are logged no-ops.
type State int

const (
	Unloaded State = iota
	Paused
	Playing
)

// String returns the state name for debugging.
func (s State) String() string {
	switch s {
	case Unloaded:
		return "Unloaded"
	case Paused:
		return "Paused"
	case Playing:
		return "Playing"
	default:
		return "Unknown"
	}
}

// IsLoaded returns true if a track is loaded (Paused or Playing).
func (s State) IsLoaded() bool {
	return s == Paused || s == Playing
}

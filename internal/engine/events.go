package engine

// Events emitted on the engine bus.
//
//	EventLoaded, EventUnloaded, EventPlay, EventPause: data is *track.Track
//	EventVolume: data is float64, the new gain
//	EventElapsed: data is time.Duration, the position after the seek
const (
	EventLoaded   = "loaded"
	EventUnloaded = "unloaded"
	EventPlay     = "play"
	EventPause    = "pause"
	EventVolume   = "volume"
	EventElapsed  = "elapsed"
)

// DefaultVolume is the gain of a new engine.
const DefaultVolume = 0.5

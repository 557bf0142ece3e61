// Package keymap defines key bindings for the player.
package keymap

// Action represents a user-triggerable action.
type Action string

const (
	ActionQuit        Action = "quit"
	ActionPlayPause   Action = "play_pause"
	ActionSeekForward Action = "seek_forward"
	ActionSeekBack    Action = "seek_back"
	ActionRestart     Action = "restart"
	ActionVolumeUp    Action = "volume_up"
	ActionVolumeDown  Action = "volume_down"
	ActionNextTrack   Action = "next_track"
	ActionPrevTrack   Action = "prev_track"
	ActionUnload      Action = "unload"
	ActionToggleView  Action = "toggle_view"
	ActionHelp        Action = "help"
	ActionOpen        Action = "open"
)

// Binding describes a single key binding.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Context     string // "global" or "playback"
}

// All contains all key bindings for help generation.
var All = []Binding{
	// Global
	{ActionQuit, []string{"q", "ctrl+c"}, "Quit", "global"},
	{ActionToggleView, []string{"v"}, "Spectrum/waveform", "global"},
	{ActionHelp, []string{"?"}, "Show help", "global"},
	{ActionOpen, []string{"o"}, "Open file", "global"},

	// Playback
	{ActionPlayPause, []string{" "}, "Play/pause", "playback"},
	{ActionSeekForward, []string{"right", "l"}, "Seek +5s", "playback"},
	{ActionSeekBack, []string{"left", "h"}, "Seek -5s", "playback"},
	{ActionRestart, []string{"0", "home"}, "Back to start", "playback"},
	{ActionVolumeUp, []string{"+", "=", "up"}, "Volume up", "playback"},
	{ActionVolumeDown, []string{"-", "down"}, "Volume down", "playback"},
	{ActionNextTrack, []string{"n", "pgdown"}, "Next file", "playback"},
	{ActionPrevTrack, []string{"p", "pgup"}, "Previous file", "playback"},
	{ActionUnload, []string{"s"}, "Stop and unload", "playback"},
}

// ByContext returns key bindings filtered by context.
func ByContext(context string) []Binding {
	var result []Binding
	for _, kb := range All {
		if kb.Context == context {
			result = append(result, kb)
		}
	}
	return result
}

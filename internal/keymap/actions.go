// Package keymap defines key bindings and action dispatch for the player.
package keymap

// Action represents a user-triggerable action.
type Action string

const (
	ActionQuit        Action = "quit"
	ActionPrevTrack   Action = "prev_track"
	ActionNextTrack   Action = "next_track"
	ActionCycleMode   Action = "cycle_mode"
	ActionTogglePause Action = "toggle_pause"
	ActionVolumeUp    Action = "volume_up"
	ActionVolumeDown  Action = "volume_down"
	ActionSeekForward Action = "seek_forward"
	ActionSeekBack    Action = "seek_back"
)

// Actions lists every action in help order.
var Actions = []Action{
	ActionQuit,
	ActionPrevTrack,
	ActionNextTrack,
	ActionCycleMode,
	ActionTogglePause,
	ActionVolumeUp,
	ActionVolumeDown,
	ActionSeekForward,
	ActionSeekBack,
}

// Valid reports whether a is a known action.
func (a Action) Valid() bool {
	for _, known := range Actions {
		if a == known {
			return true
		}
	}
	return false
}

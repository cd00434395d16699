package playback

import (
	"time"

	"github.com/llehouerou/tplay/internal/keymap"
)

// CommandKind names an engine operation.
type CommandKind int

const (
	CmdHalt CommandKind = iota
	CmdPause
	CmdResume
	CmdSeek
	CmdSetVolume
)

// Command is an engine operation produced by Apply.
type Command struct {
	Kind     CommandKind
	Position float64 // CmdSeek: absolute seconds
	Volume   int     // CmdSetVolume
}

// Steps holds the amounts one key press moves by.
type Steps struct {
	Seek   float64 // seconds
	Volume int     // device units
}

// DefaultSteps are 5 seconds per seek and 2 volume units per key.
var DefaultSteps = Steps{Seek: 5, Volume: 2}

// Apply dispatches an action with the default steps.
func Apply(s State, action keymap.Action, now time.Time, total, n int) (State, []Command) {
	return DefaultSteps.Apply(s, action, now, total, n)
}

// Apply returns the state after action and the engine commands it needs.
// total is the current track length in seconds (0 if unknown) and n the
// playlist length. Unknown actions change nothing.
func (st Steps) Apply(s State, action keymap.Action, now time.Time, total, n int) (State, []Command) {
	switch action {
	case keymap.ActionQuit:
		s.Phase = PhaseExiting
		return s, []Command{{Kind: CmdHalt}}

	case keymap.ActionPrevTrack:
		return s.Skip(-1, n), []Command{{Kind: CmdHalt}}

	case keymap.ActionNextTrack:
		return s.Skip(1, n), []Command{{Kind: CmdHalt}}

	case keymap.ActionCycleMode:
		return s.CycleMode(), nil

	case keymap.ActionTogglePause:
		if !s.Phase.HasTrack() {
			return s, nil
		}
		s = s.TogglePause(now)
		if s.Paused {
			return s, []Command{{Kind: CmdPause}}
		}
		return s, []Command{{Kind: CmdResume}}

	case keymap.ActionVolumeUp:
		s = s.AdjustVolume(st.Volume)
		return s, []Command{{Kind: CmdSetVolume, Volume: s.Volume}}

	case keymap.ActionVolumeDown:
		s = s.AdjustVolume(-st.Volume)
		return s, []Command{{Kind: CmdSetVolume, Volume: s.Volume}}

	case keymap.ActionSeekForward, keymap.ActionSeekBack:
		if !s.Phase.HasTrack() {
			return s, nil
		}
		step := st.Seek
		if action == keymap.ActionSeekBack {
			step = -step
		}
		s, target := s.Seek(step, now, total)
		return s, []Command{{Kind: CmdSeek, Position: target}}
	}

	return s, nil
}

package player

// State tracks whether a track is loaded and whether its output is gated.
// Open moves to Playing, Pause and Resume swap Playing and Paused, Stop
// returns to Stopped from either. The end of a stream leaves the state
// alone; IsPlaying reports it.
type State int

const (
	Stopped State = iota
	Playing
	Paused
)

var stateNames = [...]string{Stopped: "Stopped", Playing: "Playing", Paused: "Paused"}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "Unknown"
	}
	return stateNames[s]
}

// IsActive reports whether a track is loaded.
func (s State) IsActive() bool { return s != Stopped }

func (s State) CanPause() bool  { return s == Playing }
func (s State) CanResume() bool { return s == Paused }

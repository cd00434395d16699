package playback

import "fmt"

// Mode decides which track follows one that ended on its own.
type Mode int

const (
	Sequential Mode = iota
	LoopCurrent
	Random
)

// String returns the mode name as used in config files and flags.
func (m Mode) String() string {
	switch m {
	case Sequential:
		return "sequential"
	case LoopCurrent:
		return "loop"
	case Random:
		return "random"
	default:
		return "unknown"
	}
}

// Next returns the following mode in the cycle
// Sequential → LoopCurrent → Random → Sequential.
func (m Mode) Next() Mode {
	switch m {
	case Sequential:
		return LoopCurrent
	case LoopCurrent:
		return Random
	default:
		return Sequential
	}
}

// ParseMode parses a mode name.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "sequential", "normal":
		return Sequential, nil
	case "loop", "loop-current":
		return LoopCurrent, nil
	case "random", "shuffle":
		return Random, nil
	default:
		return Sequential, fmt.Errorf("unknown playback mode %q", s)
	}
}

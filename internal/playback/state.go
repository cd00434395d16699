package playback

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/samber/lo"

	"github.com/llehouerou/tplay/internal/player"
)

// Phase is the controller's position in the track lifecycle.
//
//	Loading → Playing ⇄ Paused
//	Playing/Paused → Finished → Loading
//	any → Exiting
type Phase int

const (
	PhaseLoading Phase = iota
	PhasePlaying
	PhasePaused
	PhaseFinished
	PhaseExiting
)

// String returns the phase name for debugging.
func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "Loading"
	case PhasePlaying:
		return "Playing"
	case PhasePaused:
		return "Paused"
	case PhaseFinished:
		return "Finished"
	case PhaseExiting:
		return "Exiting"
	default:
		return "Unknown"
	}
}

// HasTrack returns true while a track is loaded (Playing or Paused).
func (p Phase) HasTrack() bool {
	return p == PhasePlaying || p == PhasePaused
}

// State is the session's mutable core. Transitions are pure: every method
// returns an updated copy.
type State struct {
	Index  int
	Mode   Mode
	Phase  Phase
	Volume int

	Paused         bool
	TrackStart     time.Time
	PausedTotal    time.Duration
	PauseStartedAt time.Time // zero unless Paused

	SeekOffset float64 // seconds
	Position   float64 // seconds, recomputed by Tick
}

// NewState returns the state of a session about to load index.
func NewState(index int, mode Mode, volume int) State {
	return State{
		Index:  index,
		Mode:   mode,
		Phase:  PhaseLoading,
		Volume: lo.Clamp(volume, 0, player.MaxVolume),
	}
}

// Begin resets the per-track clock for a track that just started at now.
// Mode, volume and index are kept.
func (s State) Begin(now time.Time) State {
	s.Phase = PhasePlaying
	s.Paused = false
	s.TrackStart = now
	s.PausedTotal = 0
	s.PauseStartedAt = time.Time{}
	s.SeekOffset = 0
	s.Position = 0
	return s
}

// TogglePause enters or leaves the paused state at now.
func (s State) TogglePause(now time.Time) State {
	if s.Paused {
		s.PausedTotal += now.Sub(s.PauseStartedAt)
		s.PauseStartedAt = time.Time{}
		s.Paused = false
		s.Phase = PhasePlaying
		return s
	}
	s.PauseStartedAt = now
	s.Paused = true
	s.Phase = PhasePaused
	return s
}

// wallElapsed returns the seconds of unpaused wall time since the track
// started. While paused the clock stands still at the moment of pausing.
func (s State) wallElapsed(now time.Time) float64 {
	ref := now
	if s.Paused {
		ref = s.PauseStartedAt
	}
	return (ref.Sub(s.TrackStart) - s.PausedTotal).Seconds()
}

// Tick recomputes Position. Paused states keep their position.
func (s State) Tick(now time.Time) State {
	s.Position = s.wallElapsed(now) + s.SeekOffset
	return s
}

// Elapsed returns the whole seconds shown to the user, never negative.
func (s State) Elapsed() int {
	return max(int(math.Floor(s.Position)), 0)
}

// Seek moves the offset by step seconds (negative steps go back) and returns
// the absolute engine target. total is the track length in seconds; 0 means
// unknown and disables the upper clamp.
func (s State) Seek(step float64, now time.Time, total int) (State, float64) {
	if step >= 0 {
		s.SeekOffset += step
		wall := s.wallElapsed(now)
		if total > 0 && wall+s.SeekOffset > float64(total) {
			s.SeekOffset = max(float64(total)-wall, 0)
		}
		target := s.Position + step
		if total > 0 {
			target = min(target, float64(total))
		}
		return s, target
	}

	s.SeekOffset = max(s.SeekOffset+step, 0)
	return s, max(s.Position+step, 0)
}

// AdjustVolume moves the volume by delta within the device range.
func (s State) AdjustVolume(delta int) State {
	s.Volume = lo.Clamp(s.Volume+delta, 0, player.MaxVolume)
	return s
}

// CycleMode advances the playback mode.
func (s State) CycleMode() State {
	s.Mode = s.Mode.Next()
	return s
}

// Skip moves the index by delta positions, wrapping around n tracks, and
// forces the next track to load.
func (s State) Skip(delta, n int) State {
	if n <= 0 {
		return s
	}
	s.Index = ((s.Index+delta)%n + n) % n
	s.Phase = PhaseLoading
	return s
}

// Advance picks the track that follows one that ended on its own.
func (s State) Advance(n int, rng *rand.Rand) State {
	if n <= 0 {
		return s
	}
	switch s.Mode {
	case LoopCurrent:
		s.Phase = PhaseLoading
	case Random:
		s.Index = rng.IntN(n)
		s.Phase = PhaseLoading
	default:
		s = s.Skip(1, n)
	}
	return s
}

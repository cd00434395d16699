package player

import "time"

// MaxVolume is the top of the engine's volume scale.
const MaxVolume = 128

// Interface defines the engine contract the playback controller drives.
// Every method returns without waiting for audio to be produced.
type Interface interface {
	// Open stops the current track and starts playing path from the beginning.
	Open(path string) error
	Stop()
	Pause()
	Resume()
	// IsPlaying reports whether a track is loaded and has not reached its
	// end. A paused track is still playing.
	IsPlaying() bool
	// SetPosition seeks to an absolute position in seconds.
	SetPosition(seconds float64) error
	Volume() int
	SetVolume(level int)
	Duration() time.Duration
	Close() error
}

// Verify Beep implements Interface at compile time.
var _ Interface = (*Beep)(nil)

package playback

import "github.com/llehouerou/tplay/internal/player"

// WindowRadius is the number of playlist entries shown on each side of the
// current track.
const WindowRadius = 3

// Frame is the snapshot handed to the renderer once per frame.
type Frame struct {
	Path     string
	FileName string
	Title    string
	Artist   string
	Album    string

	Elapsed int // seconds
	Total   int // seconds, 0 if unknown
	Paused  bool
	Mode    Mode

	Volume        int // 0..player.MaxVolume
	VolumePercent int // 0..100

	// Window holds 2*WindowRadius+1 file names centered on the current
	// track; positions outside the playlist are empty.
	Window []string

	Notice string
	Help   string
}

// VolumePercent converts a device volume to a percentage.
func VolumePercent(volume int) int {
	return volume * 100 / player.MaxVolume
}

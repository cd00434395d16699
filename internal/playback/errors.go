package playback

import "errors"

var (
	// ErrEmptyPlaylist is returned when there is nothing to play.
	ErrEmptyPlaylist = errors.New("playlist is empty")
	// ErrNoPlayableTracks is returned when every track failed to open in a row.
	ErrNoPlayableTracks = errors.New("no track in the playlist could be opened")
)

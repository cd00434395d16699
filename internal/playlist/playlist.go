// Package playlist builds the ordered track list a session plays from.
package playlist

import "path/filepath"

// Track is a resolved path to a playable audio file.
// Two tracks are the same track when their paths are equal.
type Track struct {
	Path string
}

// Name returns the file name of the track.
func (t Track) Name() string {
	return filepath.Base(t.Path)
}

// Playlist holds an ordered, read-only collection of tracks.
type Playlist struct {
	tracks []Track
}

// New creates a playlist from tracks, keeping their order.
func New(tracks ...Track) Playlist {
	p := Playlist{tracks: make([]Track, len(tracks))}
	copy(p.tracks, tracks)
	return p
}

// Len returns the number of tracks.
func (p Playlist) Len() int {
	return len(p.tracks)
}

// IsEmpty returns true if the playlist has no tracks.
func (p Playlist) IsEmpty() bool {
	return len(p.tracks) == 0
}

// Track returns the track at the given index, or nil if out of bounds.
func (p Playlist) Track(index int) *Track {
	if index < 0 || index >= len(p.tracks) {
		return nil
	}
	return &p.tracks[index]
}

// Tracks returns a copy of all tracks.
func (p Playlist) Tracks() []Track {
	result := make([]Track, len(p.tracks))
	copy(result, p.tracks)
	return result
}

// IndexOf returns the index of the first track whose absolute path matches
// path, or -1 if there is none.
func (p Playlist) IndexOf(path string) int {
	want, err := filepath.Abs(path)
	if err != nil {
		return -1
	}
	for i, t := range p.tracks {
		got, err := filepath.Abs(t.Path)
		if err != nil {
			continue
		}
		if got == want {
			return i
		}
	}
	return -1
}

// StartIndex returns the index playback should begin at for target.
// Falls back to 0 when the target names no file or the file is not listed.
func (p Playlist) StartIndex(target Target) int {
	if target.Start == "" {
		return 0
	}
	if i := p.IndexOf(target.Start); i >= 0 {
		return i
	}
	return 0
}

// Window returns the file names of the 2*radius+1 tracks centered on index.
// Positions outside the playlist are empty strings.
func (p Playlist) Window(index, radius int) []string {
	radius = max(radius, 0)
	names := make([]string, 0, 2*radius+1)
	for i := index - radius; i <= index+radius; i++ {
		if t := p.Track(i); t != nil {
			names = append(names, t.Name())
			continue
		}
		names = append(names, "")
	}
	return names
}

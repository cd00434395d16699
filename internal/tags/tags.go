// Package tags reads track metadata and durations for the player.
// Reads never fail from the caller's point of view: missing or unreadable
// fields are replaced by fallback values.
package tags

import (
	"path/filepath"
	"strings"
)

const (
	ExtMP3 = ".mp3"
	ExtWAV = ".wav"
	ExtOGG = ".ogg"
)

const (
	UnknownArtist = "Unknown Artist"
	UnknownAlbum  = "Unknown Album"
)

// Metadata is what the screen shows for a track.
type Metadata struct {
	Title  string
	Artist string
	Album  string
}

// withFallbacks fills blank fields: the title with the file name, artist
// and album with placeholders.
func (m Metadata) withFallbacks(path string) Metadata {
	orDefault := func(v, def string) string {
		if strings.TrimSpace(v) == "" {
			return def
		}
		return v
	}
	return Metadata{
		Title:  orDefault(m.Title, filepath.Base(path)),
		Artist: orDefault(m.Artist, UnknownArtist),
		Album:  orDefault(m.Album, UnknownAlbum),
	}
}

// Fallback is the metadata of a track whose tags could not be read.
func Fallback(path string) Metadata {
	return Metadata{}.withFallbacks(path)
}

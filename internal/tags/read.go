package tags

import (
	"os"
	"path/filepath"

	"github.com/dhowden/tag"
)

// Read returns the raw tags of a file; any field may be empty.
//
// dhowden/tag is tried first. When it fails, MP3s are retried with
// bogem/id3v2, which copes with UTF-16 frames, and WAV or Ogg files with
// TagLib, since dhowden/tag has no RIFF support.
func Read(path string) (Metadata, error) {
	m, err := readGeneric(path)
	if err == nil {
		return m, nil
	}
	switch filepath.Ext(path) {
	case ExtMP3:
		return readID3(path)
	case ExtWAV, ExtOGG:
		return readTaglib(path)
	}
	return Metadata{}, err
}

func readGeneric(path string) (Metadata, error) {
	f, err := os.Open(path)
	if err != nil {
		return Metadata{}, err
	}
	defer f.Close()

	t, err := tag.ReadFrom(f)
	if err != nil {
		return Metadata{}, err
	}
	return Metadata{Title: t.Title(), Artist: t.Artist(), Album: t.Album()}, nil
}

package playlist

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/samber/lo"
)

// File extensions accepted in a playlist. Matching is case-sensitive.
const (
	ExtMP3 = ".mp3"
	ExtWAV = ".wav"
	ExtOGG = ".ogg"
)

// Extensions lists the accepted extensions in display order.
var Extensions = []string{ExtMP3, ExtWAV, ExtOGG}

// IsAudioFile reports whether name carries one of the accepted extensions.
func IsAudioFile(name string) bool {
	return lo.Contains(Extensions, filepath.Ext(name))
}

// Build scans dir (non-recursively) and returns its audio files sorted by path.
func Build(dir string) (Playlist, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return Playlist{}, fmt.Errorf("resolve %s: %w", dir, err)
	}

	entries, err := os.ReadDir(abs)
	if err != nil {
		return Playlist{}, fmt.Errorf("read directory %s: %w", abs, err)
	}

	tracks := make([]Track, 0, len(entries))
	for _, e := range entries {
		if !IsAudioFile(e.Name()) {
			continue
		}
		path := filepath.Join(abs, e.Name())
		// Stat follows symlinks, so a link to a regular file is accepted.
		info, err := os.Stat(path)
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		tracks = append(tracks, Track{Path: path})
	}

	sort.Slice(tracks, func(i, j int) bool {
		return tracks[i].Path < tracks[j].Path
	})

	return Playlist{tracks: tracks}, nil
}

// Target is where a session starts: the directory to scan and, when the
// user named a file, that file's absolute path.
type Target struct {
	Dir   string
	Start string
}

// ResolveTarget interprets the optional path argument.
//
//   - a regular file: scan its parent directory, start at the file
//   - a directory: scan it
//   - anything else, including "": scan the working directory
func ResolveTarget(arg string) (Target, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return Target{}, err
	}
	if arg == "" {
		return Target{Dir: cwd}, nil
	}

	info, err := os.Stat(arg)
	if err != nil {
		return Target{Dir: cwd}, nil //nolint:nilerr // unknown paths fall back to cwd
	}

	switch {
	case info.Mode().IsRegular():
		abs, err := filepath.Abs(arg)
		if err != nil {
			return Target{}, err
		}
		return Target{Dir: filepath.Dir(abs), Start: abs}, nil
	case info.IsDir():
		return Target{Dir: arg}, nil
	default:
		return Target{Dir: cwd}, nil
	}
}

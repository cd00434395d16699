package mpris

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/samber/lo"
)

var (
	coverBases = []string{"cover", "folder", "album", "front"}
	coverExts  = []string{".jpg", ".png", ".jpeg"}
)

// coverRank orders image names by base first, then extension. Names that
// are not cover images rank -1.
func coverRank(name string) int {
	lower := strings.ToLower(name)
	ext := filepath.Ext(lower)
	bi := lo.IndexOf(coverBases, strings.TrimSuffix(lower, ext))
	ei := lo.IndexOf(coverExts, ext)
	if bi < 0 || ei < 0 {
		return -1
	}
	return bi*len(coverExts) + ei
}

// FindAlbumArt returns the best cover image next to the track, or "".
// Matching ignores case, so Cover.JPG is found too.
func FindAlbumArt(trackPath string) string {
	dir := filepath.Dir(trackPath)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return ""
	}

	best, bestRank := "", -1
	for _, e := range entries {
		if !e.Type().IsRegular() {
			continue
		}
		rank := coverRank(e.Name())
		if rank >= 0 && (bestRank < 0 || rank < bestRank) {
			best, bestRank = e.Name(), rank
		}
	}
	if best == "" {
		return ""
	}
	return filepath.Join(dir, best)
}

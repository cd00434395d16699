package notify

import "github.com/llehouerou/tplay/internal/mpris"

// FindAlbumArtPath returns the cover image used as notification icon.
func FindAlbumArtPath(trackPath string) string {
	return mpris.FindAlbumArt(trackPath)
}

package tags

import "github.com/bogem/id3v2/v2"

// albumArtistFrame is the ID3v2 frame used when TPE1 is empty.
const albumArtistFrame = "TPE2"

func readID3(path string) (Metadata, error) {
	t, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return Metadata{}, err
	}
	defer t.Close()

	m := Metadata{Title: t.Title(), Artist: t.Artist(), Album: t.Album()}
	if m.Artist == "" {
		m.Artist = t.GetTextFrame(albumArtistFrame).Text
	}
	return m, nil
}

package tags

import "go.senan.xyz/taglib"

func readTaglib(path string) (Metadata, error) {
	props, err := taglib.ReadTags(path)
	if err != nil {
		return Metadata{}, err
	}
	first := func(keys ...string) string {
		for _, k := range keys {
			if v := props[k]; len(v) > 0 {
				return v[0]
			}
		}
		return ""
	}
	return Metadata{
		Title:  first(taglib.Title),
		Artist: first(taglib.Artist, taglib.AlbumArtist),
		Album:  first(taglib.Album),
	}, nil
}

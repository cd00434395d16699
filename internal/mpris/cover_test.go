package mpris

import (
	"os"
	"path/filepath"
	"testing"
)

func touchFiles(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, name := range names {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("fake"), 0o600); err != nil {
			t.Fatal(err)
		}
	}
}

func TestFindAlbumArt(t *testing.T) {
	tests := []struct {
		name  string
		files []string
		want  string
	}{
		{"none", []string{"track.mp3"}, ""},
		{"single cover", []string{"track.mp3", "cover.jpg"}, "cover.jpg"},
		{"cover beats folder", []string{"folder.jpg", "cover.png"}, "cover.png"},
		{"jpg beats png", []string{"front.png", "front.jpg"}, "front.jpg"},
		{"case insensitive", []string{"Folder.JPG"}, "Folder.JPG"},
		{"other images ignored", []string{"scan.jpg", "cover.gif"}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			touchFiles(t, dir, tt.files...)

			got := FindAlbumArt(filepath.Join(dir, "track.mp3"))
			want := ""
			if tt.want != "" {
				want = filepath.Join(dir, tt.want)
			}
			if got != want {
				t.Errorf("FindAlbumArt() = %q, want %q", got, want)
			}
		})
	}
}

func TestFindAlbumArt_SkipsDirectories(t *testing.T) {
	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, "cover.jpg"), 0o755); err != nil {
		t.Fatal(err)
	}
	touchFiles(t, dir, "folder.png")

	got := FindAlbumArt(filepath.Join(dir, "track.mp3"))
	if want := filepath.Join(dir, "folder.png"); got != want {
		t.Errorf("FindAlbumArt() = %q, want %q", got, want)
	}
}

func TestFindAlbumArt_MissingDirectory(t *testing.T) {
	if got := FindAlbumArt("/does/not/exist/track.mp3"); got != "" {
		t.Errorf("FindAlbumArt() = %q, want empty", got)
	}
}

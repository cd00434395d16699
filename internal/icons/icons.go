// Package icons picks the glyphs shown for playback status and mode.
package icons

import "github.com/samber/lo"

// Style names a glyph set selectable from config or --icons.
type Style string

const (
	StyleNerd    Style = "nerd"
	StyleUnicode Style = "unicode"
	StyleNone    Style = "none"
)

// Set is one complete group of glyphs.
type Set struct {
	Play      string
	Pause     string
	Shuffle   string
	RepeatAll string
	RepeatOne string
}

var sets = map[Style]Set{
	// nf-fa-play, nf-fa-pause, nf-fa-random, nf-md-repeat, nf-md-repeat_once
	StyleNerd: {"\uf04b", "\uf04c", "\uf074", "󰑖", "󰑘"},
	StyleUnicode: {
		Play:      "▶",
		Pause:     "⏸",
		Shuffle:   "🔀",
		RepeatAll: "🔁",
		RepeatOne: "🔂",
	},
	StyleNone: {">", "||", "[S]", "[R]", "[1]"},
}

var current = sets[StyleNone]

// Init selects the glyph set. Unknown styles select "none".
func Init(style string) {
	set, ok := sets[Style(style)]
	if !ok {
		set = sets[StyleNone]
	}
	current = set
}

// Valid reports whether style names a known glyph set.
func Valid(style string) bool {
	_, ok := sets[Style(style)]
	return ok
}

// Status shows what the toggle key would do: play while paused, pause
// while playing.
func Status(paused bool) string {
	return lo.Ternary(paused, current.Play, current.Pause)
}

func Shuffle() string   { return current.Shuffle }
func RepeatAll() string { return current.RepeatAll }
func RepeatOne() string { return current.RepeatOne }

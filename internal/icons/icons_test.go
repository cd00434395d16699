package icons

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func withStyle(t *testing.T, style string) {
	t.Helper()
	Init(style)
	t.Cleanup(func() { Init("none") })
}

func TestInit_SelectsSet(t *testing.T) {
	cases := map[string]Style{
		"nerd":    StyleNerd,
		"unicode": StyleUnicode,
		"none":    StyleNone,
		"":        StyleNone,
		"emoji":   StyleNone,
		"NERD":    StyleNone,
	}
	for in, want := range cases {
		withStyle(t, in)
		assert.Equal(t, sets[want], current, "Init(%q)", in)
	}
}

func TestValid(t *testing.T) {
	assert.True(t, Valid("nerd"))
	assert.True(t, Valid("unicode"))
	assert.True(t, Valid("none"))
	assert.False(t, Valid("emoji"))
	assert.False(t, Valid(""))
}

func TestStatus(t *testing.T) {
	withStyle(t, "nerd")
	assert.Equal(t, "\uf04b", Status(true))
	assert.Equal(t, "\uf04c", Status(false))

	withStyle(t, "unicode")
	assert.Equal(t, "▶", Status(true))

	withStyle(t, "none")
	assert.Equal(t, "||", Status(false))
}

func TestModeGlyphs(t *testing.T) {
	withStyle(t, "none")
	assert.Equal(t, []string{"[S]", "[R]", "[1]"}, []string{Shuffle(), RepeatAll(), RepeatOne()})

	withStyle(t, "nerd")
	assert.Equal(t, "󰑖", RepeatAll())
	assert.Equal(t, "󰑘", RepeatOne())
}

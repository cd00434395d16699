package styles

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGradientFill(t *testing.T) {
	from, to := lipgloss.Color("#000000"), lipgloss.Color("#ffffff")

	tests := map[string]struct {
		filled, width int
		want          string
	}{
		"empty":           {0, 10, ""},
		"negative":        {-3, 10, ""},
		"partial":         {4, 10, "▓▓▓▓"},
		"full":            {10, 10, strings.Repeat("▓", 10)},
		"overfull clamps": {15, 10, strings.Repeat("▓", 10)},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := GradientFill("▓", tt.filled, tt.width, from, to)
			assert.Equal(t, tt.want, ansi.Strip(got))
		})
	}
}

func TestApplyBoldGradient(t *testing.T) {
	th := T()

	assert.Empty(t, ApplyBoldGradient("", th.Primary, th.Secondary))
	assert.Equal(t, "Now Playing", ansi.Strip(ApplyBoldGradient("Now Playing", th.Primary, th.Secondary)))
	assert.Equal(t, "x", ansi.Strip(ApplyBoldGradient("x", th.Primary, th.Secondary)))
}

func TestBlendColors(t *testing.T) {
	ramp := blendColors(3, "#000000", "#ffffff")
	require.Len(t, ramp, 3)
	assert.Equal(t, lipgloss.Color("#000000"), ramp[0])
	assert.Equal(t, lipgloss.Color("#ffffff"), ramp[2])
	assert.NotEqual(t, ramp[0], ramp[1])

	assert.Equal(t, []lipgloss.Color{"#123456"}, blendColors(1, "#123456", "#ffffff"))
}

func TestBlendColors_NonHexFallsBackToGray(t *testing.T) {
	ramp := blendColors(2, "12", "12")
	assert.Equal(t, lipgloss.Color(fallbackGray.Hex()), ramp[0])
}

func TestThemeStylesCached(t *testing.T) {
	th := T()
	assert.Same(t, th.S(), th.S())
}

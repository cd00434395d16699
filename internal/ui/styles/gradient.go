package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/rivo/uniseg"
)

// fallbackGray stands in for colors that are not #rrggbb, such as ANSI
// palette indexes.
var fallbackGray = colorful.Color{R: 0.5, G: 0.5, B: 0.5}

// ApplyBoldGradient renders text in bold, shading each grapheme from one
// color to the other.
func ApplyBoldGradient(text string, from, to lipgloss.Color) string {
	var clusters []string
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		clusters = append(clusters, g.Str())
	}

	switch len(clusters) {
	case 0:
		return ""
	case 1:
		return lipgloss.NewStyle().Foreground(from).Bold(true).Render(text)
	}

	ramp := blendColors(len(clusters), from, to)
	var b strings.Builder
	for i, c := range clusters {
		b.WriteString(lipgloss.NewStyle().Foreground(ramp[i]).Bold(true).Render(c))
	}
	return b.String()
}

// GradientFill renders filled copies of glyph colored as if the gradient
// spanned all width cells, so a cell keeps its color as the fill grows.
func GradientFill(glyph string, filled, width int, from, to lipgloss.Color) string {
	filled = min(filled, width)
	if filled <= 0 {
		return ""
	}

	ramp := blendColors(width, from, to)
	var b strings.Builder
	for _, c := range ramp[:filled] {
		b.WriteString(lipgloss.NewStyle().Foreground(c).Render(glyph))
	}
	return b.String()
}

// blendColors interpolates n colors between from and to in HCL space.
func blendColors(n int, from, to lipgloss.Color) []lipgloss.Color {
	if n < 2 {
		return []lipgloss.Color{from}
	}

	start, end := parseHex(from), parseHex(to)
	out := make([]lipgloss.Color, n)
	for i := range out {
		step := float64(i) / float64(n-1)
		out[i] = lipgloss.Color(start.BlendHcl(end, step).Clamped().Hex())
	}
	return out
}

func parseHex(c lipgloss.Color) colorful.Color {
	col, err := colorful.Hex(string(c))
	if err != nil {
		return fallbackGray
	}
	return col
}

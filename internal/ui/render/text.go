// Package render fits text from tags and file names into terminal cells.
package render

import (
	"strings"
	"unicode"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

const ellipsis = "..."

// Sanitize drops invalid UTF-8 and control characters other than tab, and
// turns non-breaking spaces into plain ones. Tag data reaches the screen
// unfiltered otherwise, and a stray escape byte would move the cursor.
func Sanitize(s string) string {
	s = strings.ToValidUTF8(s, "")
	return strings.Map(func(r rune) rune {
		switch {
		case r == '\t':
			return r
		case r == ' ':
			return ' '
		case unicode.IsControl(r):
			return -1
		}
		return r
	}, s)
}

// Truncate sanitizes s and cuts it to maxWidth cells, ending in "..." when
// something was cut. Wide runes count as two cells.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	return runewidth.Truncate(Sanitize(s), maxWidth, ellipsis)
}

// Width returns the number of cells s occupies, ignoring escape sequences.
func Width(s string) int {
	return ansi.StringWidth(s)
}

// FitLine cuts an already styled line to width cells. Escape sequences
// are kept intact.
func FitLine(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if Width(s) <= width {
		return s
	}
	return ansi.Truncate(s, width, "")
}

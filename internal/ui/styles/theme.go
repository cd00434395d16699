// Package styles holds the player's color palette and lipgloss styles.
package styles

import (
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// Theme is the palette the now-playing screen draws with.
type Theme struct {
	Primary   lipgloss.Color // gradient start, status glyphs
	Secondary lipgloss.Color // gradient end

	FgBase   lipgloss.Color
	FgMuted  lipgloss.Color
	FgSubtle lipgloss.Color

	// current entry of the playlist window
	BgCursor lipgloss.Color
	FgCursor lipgloss.Color

	Error lipgloss.Color

	once   sync.Once
	styles Styles
}

// Styles are the lipgloss styles derived from a Theme.
type Styles struct {
	Base    lipgloss.Style
	Muted   lipgloss.Style
	Subtle  lipgloss.Style
	Title   lipgloss.Style
	Playing lipgloss.Style
	Cursor  lipgloss.Style
	Error   lipgloss.Style
	Help    lipgloss.Style
}

var defaultTheme = &Theme{
	Primary:   "#a78bfa",
	Secondary: "#f1a208",
	FgBase:    "#c0c0c0",
	FgMuted:   "#808080",
	FgSubtle:  "#585858",
	BgCursor:  "#d0d0d0",
	FgCursor:  "#1a1a1a",
	Error:     "#ff5555",
}

// T returns the default theme.
func T() *Theme {
	return defaultTheme
}

// S returns the theme's styles, building them on first use.
func (t *Theme) S() *Styles {
	t.once.Do(func() {
		fg := func(c lipgloss.Color) lipgloss.Style {
			return lipgloss.NewStyle().Foreground(c)
		}
		t.styles = Styles{
			Base:    fg(t.FgBase),
			Muted:   fg(t.FgMuted),
			Subtle:  fg(t.FgSubtle),
			Title:   fg(t.FgBase).Bold(true),
			Playing: fg(t.Primary).Bold(true),
			Cursor:  fg(t.FgCursor).Background(t.BgCursor),
			Error:   fg(t.Error),
			Help:    fg(t.FgMuted),
		}
	})
	return &t.styles
}

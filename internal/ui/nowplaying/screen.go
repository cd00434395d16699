package nowplaying

import (
	"bufio"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/x/ansi"
	"golang.org/x/term"

	"github.com/llehouerou/tplay/internal/playback"
)

// Fallback size when the output is not a terminal.
const (
	defaultWidth  = 80
	defaultHeight = 24
)

// SizeFunc reports the current terminal size.
type SizeFunc func() (width, height int)

// Screen draws frames onto a terminal in place.
type Screen struct {
	mu   sync.Mutex
	out  *bufio.Writer
	size SizeFunc

	// dimensions of the previous frame; zero until the first Render
	width, height int
}

// NewScreen creates a screen writing to out. The size is queried from out
// when it is a terminal, otherwise 80x24 is assumed.
func NewScreen(out io.Writer) *Screen {
	return &Screen{
		out:  bufio.NewWriter(out),
		size: terminalSize(out),
	}
}

// WithSize overrides how the screen learns its dimensions.
func (s *Screen) WithSize(size SizeFunc) *Screen {
	s.size = size
	return s
}

func terminalSize(out io.Writer) SizeFunc {
	f, ok := out.(*os.File)
	if !ok {
		return func() (int, int) { return defaultWidth, defaultHeight }
	}
	fd := int(f.Fd()) //nolint:gosec // fd fits in int
	return func() (int, int) {
		w, h, err := term.GetSize(fd)
		if err != nil || w <= 0 || h <= 0 {
			return defaultWidth, defaultHeight
		}
		return w, h
	}
}

// Open hides the cursor and clears the screen.
func (s *Screen) Open() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.width, s.height = 0, 0
	_, _ = s.out.WriteString(ansi.HideCursor + ansi.EraseEntireScreen)
	return s.out.Flush()
}

// Render redraws every row of the frame in place. A size change erases the
// whole screen first so rows reflowed by the terminal do not linger.
func (s *Screen) Render(frame playback.Frame) {
	width, height := s.size()
	lines := Lines(frame, width, height)

	s.mu.Lock()
	defer s.mu.Unlock()

	if width != s.width || height != s.height {
		_, _ = s.out.WriteString(ansi.EraseEntireScreen)
		s.width, s.height = width, height
	}
	for i, line := range lines {
		var b strings.Builder
		b.WriteString(ansi.CursorPosition(1, i+1))
		b.WriteString(line)
		b.WriteString(ansi.EraseLineRight)
		_, _ = s.out.WriteString(b.String())
	}
	_ = s.out.Flush()
}

// Close clears the screen, homes and shows the cursor.
func (s *Screen) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.width, s.height = 0, 0
	_, _ = s.out.WriteString(ansi.EraseEntireScreen + ansi.CursorHomePosition + ansi.ShowCursor)
	return s.out.Flush()
}

var _ playback.Renderer = (*Screen)(nil)

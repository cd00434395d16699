// Package nowplaying draws the full-screen now-playing frame.
package nowplaying

import (
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/llehouerou/tplay/internal/icons"
	"github.com/llehouerou/tplay/internal/playback"
	"github.com/llehouerou/tplay/internal/ui/render"
	"github.com/llehouerou/tplay/internal/ui/styles"
)

// Row numbers (0-based) of the fixed parts of the layout.
const (
	rowFile     = 2
	rowTitle    = 4
	rowArtist   = 6
	rowAlbum    = 8
	rowStatus   = 10
	rowVolume   = 13
	rowWindow   = 15
	rowNotice   = rowWindow + 2*playback.WindowRadius + 2
	leftPadding = " "
)

// View renders frame as exactly height lines, each at most width cells.
// The help line always occupies the last line.
func View(frame playback.Frame, width, height int) string {
	return strings.Join(Lines(frame, width, height), "\n")
}

// Lines renders frame as exactly height lines.
func Lines(frame playback.Frame, width, height int) []string {
	if height <= 0 || width <= 0 {
		return nil
	}

	t := styles.T()
	s := t.S()
	inner := max(width-len(leftPadding), 0)
	text := func(v string) string { return render.Truncate(v, inner) }

	lines := make([]string, max(height, rowNotice+2))

	lines[rowFile] = leftPadding + styles.ApplyBoldGradient("Now Playing: ", t.Primary, t.Secondary) +
		s.Title.Render(render.Truncate(frame.FileName, max(inner-len("Now Playing: "), 0)))
	lines[rowTitle] = leftPadding + s.Title.Render(text(frame.Title))
	lines[rowArtist] = leftPadding + s.Base.Render(text(frame.Artist))
	lines[rowAlbum] = leftPadding + s.Muted.Render(text("["+frame.Album+"]"))

	status := "[ " + s.Playing.Render(icons.Status(frame.Paused)) + " ] " +
		"[ " + s.Playing.Render(modeIcon(frame.Mode)) + " ] "
	lines[rowStatus] = leftPadding + status +
		renderProgress(frame.Elapsed, frame.Total, inner-statusWidth(frame))
	lines[rowVolume] = leftPadding + renderVolume(frame.Volume, frame.VolumePercent)

	for i, name := range frame.Window {
		row := rowWindow + i
		if i == len(frame.Window)/2 {
			lines[row] = leftPadding + s.Cursor.Render(" ["+render.Truncate(name, max(inner-4, 0))+"] ")
			continue
		}
		lines[row] = leftPadding + s.Muted.Render(text(name))
	}

	if frame.Notice != "" {
		lines[rowNotice] = leftPadding + s.Error.Render(text(frame.Notice))
	}

	// Keep the help line pinned to the last row even when the layout is
	// taller than the terminal.
	out := lines[:height]
	out[height-1] = s.Help.Render(render.Truncate(frame.Help, width))

	for i := range out {
		out[i] = render.FitLine(out[i], width)
	}
	return out
}

// statusWidth is the cell width of the status and mode prefix.
func statusWidth(frame playback.Frame) int {
	plain := "[ " + icons.Status(frame.Paused) + " ] [ " + modeIcon(frame.Mode) + " ] "
	return ansi.StringWidth(plain)
}

func modeIcon(m playback.Mode) string {
	switch m {
	case playback.LoopCurrent:
		return icons.RepeatOne()
	case playback.Random:
		return icons.Shuffle()
	default:
		return icons.RepeatAll()
	}
}

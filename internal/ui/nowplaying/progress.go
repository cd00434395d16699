package nowplaying

import (
	"fmt"
	"strings"

	"github.com/llehouerou/tplay/internal/ui/styles"
)

const (
	filledBlock = "▓"
	emptyBlock  = "░"

	maxBarWidth  = 100
	volumeCells  = 10
	volumeLevels = 128
)

// formatClock renders seconds as mm:ss. Minutes grow past two digits.
func formatClock(seconds int) string {
	seconds = max(seconds, 0)
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

// filledCells returns how many of width cells represent elapsed/total.
// An unknown total (0) fills nothing.
func filledCells(elapsed, total, width int) int {
	if total <= 0 || width <= 0 || elapsed <= 0 {
		return 0
	}
	return min(elapsed*width/total, width)
}

// bar renders width cells with the first filled ones highlighted.
func bar(filled, width int) string {
	if width <= 0 {
		return ""
	}
	filled = min(max(filled, 0), width)
	t := styles.T()
	return styles.GradientFill(filledBlock, filled, width, t.Primary, t.Secondary) +
		t.S().Subtle.Render(strings.Repeat(emptyBlock, width-filled))
}

// renderProgress renders "mm:ss [bar] mm:ss" within width cells.
func renderProgress(elapsed, total, width int) string {
	pos := formatClock(elapsed)
	dur := formatClock(total)

	// Format: "01:23 [▓▓▓░░░] 04:56"
	fixed := len(pos) + len(dur) + 4
	barWidth := min(width-fixed, maxBarWidth)
	if barWidth < 3 {
		// Too narrow for bar, just show times
		return pos + " / " + dur
	}

	return pos + " [" + bar(filledCells(elapsed, total, barWidth), barWidth) + "] " + dur
}

// renderVolume renders the 10-cell volume bar and percentage.
func renderVolume(volume, percent int) string {
	filled := volume * volumeCells / volumeLevels
	return "[" + bar(filled, volumeCells) + "] " + fmt.Sprintf("Volume: %d / 100", percent)
}

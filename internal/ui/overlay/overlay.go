// Package overlay composes a foreground box on top of a background view
// without clearing the screen. Both layers may carry ANSI styling.
package overlay

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Position specifies where to place the overlay content.
type Position int

const (
	// Center places the overlay in the center of the viewport.
	Center Position = iota
	// Top places the overlay at the top center of the viewport.
	Top
	// Bottom places the overlay at the bottom center of the viewport.
	Bottom
)

// Config controls overlay rendering behavior.
type Config struct {
	// Width and Height are the total viewport dimensions.
	Width  int
	Height int
	// Position selects Center, Top, or Bottom placement.
	Position Position
	// PadY insets Top/Bottom placements from the edge.
	PadY int
}

// Place renders foreground content on top of background. Background columns
// covered by the foreground are replaced; columns either side survive with
// their styling intact.
func Place(cfg Config, fg, bg string) string {
	fgLines := strings.Split(fg, "\n")
	bgLines := strings.Split(bg, "\n")
	for len(bgLines) < cfg.Height {
		bgLines = append(bgLines, strings.Repeat(" ", cfg.Width))
	}

	startX, startY := origin(cfg, lipgloss.Width(fg), len(fgLines))

	for i, fgLine := range fgLines {
		y := startY + i
		if y >= len(bgLines) {
			break
		}
		bgLines[y] = splice(bgLines[y], fgLine, startX)
	}

	return strings.Join(bgLines, "\n")
}

// splice overwrites the background line with the foreground line starting at
// column x, ANSI-aware on both sides of the cut.
func splice(bgLine, fgLine string, x int) string {
	left := ansi.Truncate(bgLine, x, "")
	if w := ansi.StringWidth(left); w < x {
		left += strings.Repeat(" ", x-w)
	}

	endX := x + ansi.StringWidth(fgLine)
	var right string
	if endX < ansi.StringWidth(bgLine) {
		right = ansi.TruncateLeft(bgLine, endX, "")
	}

	return left + fgLine + right
}

// origin computes the top-left corner for the foreground box, clamped to the
// viewport.
func origin(cfg Config, fgWidth, fgHeight int) (x, y int) {
	x = (cfg.Width - fgWidth) / 2
	switch cfg.Position {
	case Top:
		y = cfg.PadY
	case Bottom:
		y = cfg.Height - fgHeight - cfg.PadY
	default:
		y = (cfg.Height - fgHeight) / 2
	}
	return max(x, 0), max(y, 0)
}

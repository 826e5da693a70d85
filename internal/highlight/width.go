package highlight

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// DisplayWidth returns the number of terminal columns plain text occupies.
// Grapheme clusters are measured as units so emoji and combining marks
// count once.
func DisplayWidth(s string) int {
	width := 0
	state := -1
	for len(s) > 0 {
		cluster, rest, _, newState := uniseg.StepString(s, state)
		width += runewidth.StringWidth(cluster)
		s = rest
		state = newState
	}
	return width
}

// expandTabs replaces tabs with spaces padded to the next tab stop,
// measuring everything else by display width. It returns the expanded text
// and the column after it, given the column the text starts at.
func expandTabs(s string, startCol, tabWidth int) (string, int) {
	if tabWidth <= 0 {
		tabWidth = 4
	}
	var out strings.Builder
	col := startCol
	state := -1
	for len(s) > 0 {
		cluster, rest, _, newState := uniseg.StepString(s, state)
		if cluster == "\t" {
			pad := tabWidth - col%tabWidth
			out.WriteString(strings.Repeat(" ", pad))
			col += pad
		} else {
			out.WriteString(cluster)
			col += runewidth.StringWidth(cluster)
		}
		s = rest
		state = newState
	}
	return out.String(), col
}

// Package panes contains the bordered pane components framing the preview.
package panes

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/glintlabs/glint/internal/ui/styles"
)

// Border characters (rounded)
const (
	borderTopLeft     = "╭"
	borderTopRight    = "╮"
	borderBottomLeft  = "╰"
	borderBottomRight = "╯"
	borderHorizontal  = "─"
	borderVertical    = "│"
)

// BorderConfig configures the appearance of a bordered panel.
type BorderConfig struct {
	Content string // rendered inside the border
	Width   int    // total width including borders
	Height  int    // total height including borders

	// Titles embedded in the border runs. All optional.
	TopLeft     string
	TopRight    string
	BottomLeft  string
	BottomRight string

	Focused            bool
	TitleColor         lipgloss.TerminalColor
	BorderColor        lipgloss.TerminalColor
	FocusedBorderColor lipgloss.TerminalColor
}

// BorderedPane renders content within a bordered panel with optional titles
// on either end of the top and bottom border runs.
//
// Nil color fallback: with both border colors nil the default border color is
// used in both states; a lone BorderColor covers the focused state too; a
// lone FocusedBorderColor leaves the unfocused state on the default.
func BorderedPane(cfg BorderConfig) string {
	borderColor := resolveBorderColor(cfg.BorderColor, cfg.FocusedBorderColor, cfg.Focused)

	titleColor := cfg.TitleColor
	if titleColor == nil {
		titleColor = styles.BorderDefaultColor
	}

	borderStyle := lipgloss.NewStyle().Foreground(borderColor)
	titleStyle := lipgloss.NewStyle().Foreground(titleColor)

	innerWidth := max(cfg.Width-2, 1)
	contentHeight := max(cfg.Height-2, 1)

	topBorder := buildEdge(borderTopLeft, borderTopRight, cfg.TopLeft, cfg.TopRight, innerWidth, borderStyle, titleStyle)
	bottomBorder := buildEdge(borderBottomLeft, borderBottomRight, cfg.BottomLeft, cfg.BottomRight, innerWidth, borderStyle, titleStyle)

	// lipgloss handles wrapping/truncation to the inner box
	constrained := lipgloss.NewStyle().Width(innerWidth).Height(contentHeight).Render(cfg.Content)
	contentLines := strings.Split(constrained, "\n")
	paddedLines := make([]string, contentHeight)

	for i := range contentHeight {
		var line string
		if i < len(contentLines) {
			line = contentLines[i]
		}

		// Pad to innerWidth so the right border aligns.
		if w := lipgloss.Width(line); w < innerWidth {
			line += strings.Repeat(" ", innerWidth-w)
		}
		paddedLines[i] = borderStyle.Render(borderVertical) + line + borderStyle.Render(borderVertical)
	}

	var result strings.Builder
	result.WriteString(topBorder)
	result.WriteString("\n")
	result.WriteString(strings.Join(paddedLines, "\n"))
	result.WriteString("\n")
	result.WriteString(bottomBorder)
	return result.String()
}

// resolveBorderColor implements the nil color fallback logic.
func resolveBorderColor(borderColor, focusedBorderColor lipgloss.TerminalColor, focused bool) lipgloss.TerminalColor {
	if borderColor == nil && focusedBorderColor == nil {
		return styles.BorderDefaultColor
	}
	if focusedBorderColor == nil {
		return borderColor
	}
	if focused {
		return focusedBorderColor
	}
	if borderColor == nil {
		return styles.BorderDefaultColor
	}
	return borderColor
}

// buildEdge creates one horizontal border run with optional titles embedded
// at either end:
//
//	╭─ Left ───────── Right ─╮
//
// Titles that do not fit are truncated (left) or dropped (right); a run too
// narrow for any title degrades to a plain border.
func buildEdge(cornerLeft, cornerRight, leftTitle, rightTitle string, innerWidth int, borderStyle, titleStyle lipgloss.Style) string {
	plain := func() string {
		return borderStyle.Render(cornerLeft + strings.Repeat(borderHorizontal, max(innerWidth, 0)) + cornerRight)
	}

	if innerWidth < 1 || (leftTitle == "" && rightTitle == "") {
		return plain()
	}

	// "─ Left ─" needs 4 columns beyond the title itself.
	if rightTitle != "" && innerWidth < lipgloss.Width(leftTitle)+lipgloss.Width(rightTitle)+7 {
		rightTitle = ""
	}
	if leftTitle != "" && innerWidth < 5 {
		return plain()
	}
	if leftTitle != "" {
		if avail := innerWidth - 4; lipgloss.Width(leftTitle) > avail {
			leftTitle = styles.TruncateString(leftTitle, avail)
		}
	}

	// innerWidth = "─ " + left + " " + middle + " " + right + " ─"
	middle := innerWidth
	if leftTitle != "" {
		middle -= lipgloss.Width(leftTitle) + 3
	}
	if rightTitle != "" {
		middle -= lipgloss.Width(rightTitle) + 3
	}
	middle = max(middle, 1)

	var result strings.Builder
	result.WriteString(borderStyle.Render(cornerLeft))
	if leftTitle != "" {
		result.WriteString(borderStyle.Render(borderHorizontal + " "))
		result.WriteString(titleStyle.Render(leftTitle))
		result.WriteString(borderStyle.Render(" "))
	}
	result.WriteString(borderStyle.Render(strings.Repeat(borderHorizontal, middle)))
	if rightTitle != "" {
		result.WriteString(borderStyle.Render(" "))
		result.WriteString(titleStyle.Render(rightTitle))
		result.WriteString(borderStyle.Render(" " + borderHorizontal))
	}
	result.WriteString(borderStyle.Render(cornerRight))
	return result.String()
}

package preview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/glintlabs/glint/internal/syntax"
	"github.com/glintlabs/glint/internal/ui/styles"
)

// inspectorHeaderLines is the header plus its rule line, rendered above the
// span rows inside the inspector viewport.
const inspectorHeaderLines = 2

// inspectorContent renders the span table for the current scan result.
// One row per span: index, byte range, category, flags, nested sub-span
// summary, and an escaped text preview.
func (m Model) inspectorContent(width int) string {
	spans := m.result.Spans
	src := m.current().Code

	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(styles.TextPrimaryColor)
	ruleStyle := lipgloss.NewStyle().Foreground(styles.BorderDefaultColor)
	rowStyle := lipgloss.NewStyle().Foreground(styles.TextSecondaryColor)
	selStyle := lipgloss.NewStyle().Bold(true).Foreground(styles.AccentColor)

	var sb strings.Builder
	sb.WriteString(headerStyle.Render(fmt.Sprintf("%5s  %-13s %-10s %-3s %-14s %s",
		"#", "range", "category", "", "nested", "text")))
	sb.WriteString("\n")
	sb.WriteString(ruleStyle.Render(strings.Repeat("─", max(width, 1))))

	if len(spans) == 0 {
		sb.WriteString("\n")
		sb.WriteString(styles.HelpHintStyle.Render("  no spans"))
		return sb.String()
	}

	for i, sp := range spans {
		flags := ""
		if sp.Unterminated {
			flags = "⚠"
		}

		row := fmt.Sprintf("%5d  %-13s %-10s %-3s %-14s %s",
			i,
			fmt.Sprintf("[%d:%d)", sp.Start, sp.End),
			sp.Category.String(),
			flags,
			nestedSummary(sp),
			spanPreview(src, sp, max(width-55, 8)),
		)

		sb.WriteString("\n")
		if i == m.inspectorIndex {
			sb.WriteString(selStyle.Render("▸" + row[1:]))
		} else {
			sb.WriteString(rowStyle.Render(row))
		}
	}
	return sb.String()
}

// nestedSummary compresses a span's sub-spans into counts, e.g. "2 esc, 1 expr".
func nestedSummary(sp syntax.Span) string {
	if len(sp.Nested) == 0 {
		return ""
	}
	esc, expr := 0, 0
	for _, n := range sp.Nested {
		switch n.Category {
		case syntax.CatEscape:
			esc++
		case syntax.CatExpression:
			expr++
		}
	}
	parts := make([]string, 0, 2)
	if esc > 0 {
		parts = append(parts, fmt.Sprintf("%d esc", esc))
	}
	if expr > 0 {
		parts = append(parts, fmt.Sprintf("%d expr", expr))
	}
	return strings.Join(parts, ", ")
}

// spanPreview extracts the span text with newlines and tabs made visible,
// truncated to maxWidth display columns.
func spanPreview(src string, sp syntax.Span, maxWidth int) string {
	if sp.Start < 0 || sp.End > len(src) || sp.Start >= sp.End {
		return ""
	}
	text := src[sp.Start:sp.End]
	text = strings.ReplaceAll(text, "\n", "⏎")
	text = strings.ReplaceAll(text, "\t", "⇥")
	return styles.TruncateString(text, maxWidth)
}

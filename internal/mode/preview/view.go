package preview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/glintlabs/glint/internal/highlight"
	"github.com/glintlabs/glint/internal/ui/shared/panes"
	"github.com/glintlabs/glint/internal/ui/styles"
)

// View implements mode.Controller.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	if len(m.snippets) == 0 {
		return styles.ErrorStyle.Render("nothing to preview")
	}

	bottom := m.renderBottom()
	paneHeight := m.height - m.bottomHeight()

	sidebarW := sidebarWidth(m.width)
	mainW := m.width - sidebarW

	sidebar := m.renderSidebar(sidebarW, paneHeight)

	var main string
	if m.inspectorOpen {
		main = m.renderInspectorPane(mainW, paneHeight)
	} else {
		main = m.renderCodePane(mainW, paneHeight)
	}

	view := lipgloss.JoinHorizontal(lipgloss.Top, sidebar, main)
	if bottom != "" {
		view = lipgloss.JoinVertical(lipgloss.Left, view, bottom)
	}

	if m.showHelp {
		return zone.Scan(m.help.Overlay(view))
	}
	return zone.Scan(view)
}

// sidebarWidth is 30% of the terminal, clamped to a readable range.
func sidebarWidth(total int) int {
	w := total * 30 / 100
	if w < 20 {
		w = 20
	}
	if w > 30 {
		w = 30
	}
	if w > total/2 {
		w = total / 2
	}
	return max(w, 4)
}

// renderSidebar renders the snippet list. Each entry is marked as a mouse
// zone so clicks can select it.
func (m Model) renderSidebar(width, height int) string {
	inner := max(width-2, 1)
	var sb strings.Builder

	for i, snip := range m.snippets {
		name := styles.TruncateString(snip.Name, inner-4)

		var line string
		if i == m.selected {
			line = styles.SidebarSelectedStyle.Render("● " + name)
		} else {
			line = styles.SidebarItemStyle.Render("  " + name)
		}

		sb.WriteString(zone.Mark(snippetZoneID(i), line))
		if i < len(m.snippets)-1 {
			sb.WriteString("\n")
		}
	}

	return panes.BorderedPane(panes.BorderConfig{
		Content:    sb.String(),
		Width:      width,
		Height:     height,
		TopLeft:    "Snippets",
		TitleColor: styles.TextPrimaryColor,
	})
}

// renderCodePane renders the highlighted source in a scrolling pane. The
// top border carries the snippet name and the resolved language.
func (m Model) renderCodePane(width, height int) string {
	langTag := m.result.Language
	if m.langOverride != "" {
		langTag += " (forced)"
	}

	return panes.ScrollablePane(width, height, panes.ScrollableConfig{
		Viewport:   &m.viewport,
		LeftTitle:  m.current().Name,
		RightTitle: langTag,
		BottomLeft: m.codeFooter(),
		TitleColor: styles.TextPrimaryColor,
		Focused:    true,
	}, func(wrapWidth int) string {
		return m.codeContent(wrapWidth)
	})
}

// codeFooter summarizes the scan on the bottom border of the code pane.
func (m Model) codeFooter() string {
	if m.scanErr != "" {
		return lipgloss.NewStyle().Foreground(styles.StatusErrorColor).Render(m.scanErr)
	}
	if n := countUnterminated(m.result.Spans); n > 0 {
		return lipgloss.NewStyle().Foreground(styles.StatusWarningColor).
			Render(fmt.Sprintf("%d unterminated", n))
	}
	return ""
}

// codeContent builds the viewport content: an optional line number gutter
// followed by each styled line, windowed to the horizontal scroll offset.
func (m Model) codeContent(width int) string {
	if width <= 0 || len(m.lines) == 0 {
		return ""
	}

	gutter := ""
	gutterW := 0
	if m.showLineNumbers {
		gutterW = len(fmt.Sprint(len(m.lines))) + 3
	}
	codeW := max(width-gutterW, 1)

	var sb strings.Builder
	for i, line := range m.lines {
		if m.showLineNumbers {
			gutter = m.theme.Gutter().Render(fmt.Sprintf("%*d │ ", gutterW-3, i+1))
		}
		sb.WriteString(gutter)
		sb.WriteString(highlight.Window(line.Content, m.xOffset, codeW))
		if i < len(m.lines)-1 {
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

// renderInspectorPane renders the span table in place of the code pane.
func (m Model) renderInspectorPane(width, height int) string {
	position := ""
	if n := len(m.result.Spans); n > 0 {
		position = fmt.Sprintf("%d/%d", m.inspectorIndex+1, n)
	}

	return panes.ScrollablePane(width, height, panes.ScrollableConfig{
		Viewport:           &m.inspectorVP,
		LeftTitle:          "Span Inspector",
		RightTitle:         m.result.Language,
		BottomLeft:         position,
		TitleColor:         styles.TextPrimaryColor,
		Focused:            true,
		FocusedBorderColor: styles.AccentColor,
	}, func(wrapWidth int) string {
		return m.inspectorContent(wrapWidth)
	})
}

// bottomHeight counts the rows renderBottom will occupy.
func (m Model) bottomHeight() int {
	h := 0
	if m.fileGone || m.reloaded {
		h++
	}
	if m.showStatusBar {
		h++
	}
	return h
}

// renderBottom stacks the transient watch banner over the status bar.
func (m Model) renderBottom() string {
	var parts []string

	if m.fileGone {
		parts = append(parts, styles.WatchBannerStyle.Width(m.width).
			Render(styles.TruncateString("✗ file deleted: "+m.filePath, m.width-2)))
	} else if m.reloaded {
		parts = append(parts, styles.WatchBannerStyle.Width(m.width).
			Render(styles.TruncateString("⟳ reloaded "+m.current().Name, m.width-2)))
	}

	if m.showStatusBar {
		parts = append(parts, m.renderStatusBar())
	}

	if len(parts) == 0 {
		return ""
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// renderStatusBar shows the scan summary and the active theme.
func (m Model) renderStatusBar() string {
	kv := func(k, v string) string {
		return styles.StatusKeyStyle.Render(k+" ") + v
	}

	cacheTag := "miss"
	if m.cacheHit {
		cacheTag = "hit"
	}
	watchTag := "off"
	if m.watching {
		watchTag = "on"
	}

	segments := []string{
		kv("lang", m.result.Language),
		kv("theme", m.theme.Scheme().Name),
		kv("spans", fmt.Sprint(len(m.result.Spans))),
		kv("scan", styles.FormatDuration(m.result.Elapsed)),
		kv("cache", cacheTag),
	}
	if m.filePath != "" {
		segments = append(segments, kv("watch", watchTag))
	}
	if n := countUnterminated(m.result.Spans); n > 0 {
		segments = append(segments,
			lipgloss.NewStyle().Foreground(styles.StatusWarningColor).Background(styles.SurfaceColor).
				Render(fmt.Sprintf("⚠ %d unterminated", n)))
	}

	left := strings.Join(segments, styles.StatusKeyStyle.Render(" · "))
	hint := styles.StatusKeyStyle.Render("? help")

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(hint) - 2
	if gap < 1 {
		return styles.StatusBarStyle.Width(m.width).Render(styles.TruncateString(left, m.width-2))
	}
	return styles.StatusBarStyle.Width(m.width).
		Render(left + styles.StatusKeyStyle.Render(strings.Repeat(" ", gap)) + hint)
}

package panes

import (
	"fmt"
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/require"
)

func init() {
	// Force ANSI color output in tests (lipgloss disables colors when no TTY)
	lipgloss.SetColorProfile(termenv.ANSI256)
}

// Test colors for scrollable pane tests
var (
	scrollTestColorBlue  = lipgloss.AdaptiveColor{Light: "#54A0FF", Dark: "#54A0FF"}
	scrollTestColorGreen = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"}
)

// numberedLines builds n lines of recognizable content.
func numberedLines(n int) string {
	lines := make([]string, n)
	for i := range lines {
		lines[i] = fmt.Sprintf("line %d", i+1)
	}
	return strings.Join(lines, "\n")
}

func TestScrollablePane_RendersContentCorrectly(t *testing.T) {
	vp := viewport.New(18, 3)
	cfg := ScrollableConfig{
		Viewport:    &vp,
		LeftTitle:   "Test",
		TitleColor:  scrollTestColorBlue,
		BorderColor: scrollTestColorBlue,
	}

	result := ScrollablePane(20, 5, cfg, func(wrapWidth int) string {
		return "Hello World"
	})

	require.Contains(t, result, "╭", "missing top-left corner")
	require.Contains(t, result, "╯", "missing bottom-right corner")
	require.Contains(t, result, "Test", "missing title")
	require.Contains(t, result, "Hello World", "missing content")
}

func TestScrollablePane_ContentTopAligned(t *testing.T) {
	vp := viewport.New(18, 8)
	cfg := ScrollableConfig{Viewport: &vp}

	result := ScrollablePane(20, 10, cfg, func(wrapWidth int) string {
		return "first line"
	})

	// Short content starts at the top of the pane, not the bottom.
	lines := strings.Split(result, "\n")
	require.Contains(t, lines[1], "first line", "content must start on the first inner line")
}

func TestScrollablePane_ScrollIndicatorAppearsOnOverflow(t *testing.T) {
	vp := viewport.New(18, 3)
	cfg := ScrollableConfig{Viewport: &vp}

	result := ScrollablePane(20, 5, cfg, func(wrapWidth int) string {
		return numberedLines(20)
	})

	require.Contains(t, result, "%", "overflowing content must show a scroll percentage")
}

func TestScrollablePane_NoScrollIndicatorWhenContentFits(t *testing.T) {
	vp := viewport.New(18, 5)
	cfg := ScrollableConfig{Viewport: &vp}

	result := ScrollablePane(20, 7, cfg, func(wrapWidth int) string {
		return "one\ntwo"
	})

	require.NotContains(t, result, "%", "fitting content must not show a scroll percentage")
}

func TestScrollablePane_ScrollStateSurvivesRenders(t *testing.T) {
	vp := viewport.New(18, 3)
	cfg := ScrollableConfig{Viewport: &vp}
	content := func(wrapWidth int) string { return numberedLines(30) }

	ScrollablePane(20, 5, cfg, content)
	vp.ScrollDown(5)
	offset := vp.YOffset

	ScrollablePane(20, 5, cfg, content)
	require.Equal(t, offset, vp.YOffset, "re-rendering at the same size must not move the viewport")
}

func TestScrollablePane_ProportionalScrollAfterResize(t *testing.T) {
	vp := viewport.New(18, 3)
	cfg := ScrollableConfig{Viewport: &vp}
	content := func(wrapWidth int) string { return numberedLines(40) }

	ScrollablePane(20, 5, cfg, content)
	vp.GotoBottom()

	ScrollablePane(20, 12, cfg, content)
	require.Greater(t, vp.YOffset, 0, "bottom position should be restored proportionally after a resize")
}

func TestScrollablePane_ViewportResizedToInnerBox(t *testing.T) {
	vp := viewport.New(1, 1)
	cfg := ScrollableConfig{Viewport: &vp}

	ScrollablePane(30, 10, cfg, func(wrapWidth int) string {
		require.Equal(t, 28, wrapWidth, "contentFn must receive the inner width")
		return "x"
	})

	require.Equal(t, 28, vp.Width)
	require.Equal(t, 8, vp.Height)
}

func TestScrollablePane_TitlesAndStatusPassedThrough(t *testing.T) {
	vp := viewport.New(38, 3)
	cfg := ScrollableConfig{
		Viewport:   &vp,
		LeftTitle:  "sample.py",
		RightTitle: "python",
		BottomLeft: "88 spans",
	}

	result := ScrollablePane(40, 5, cfg, func(wrapWidth int) string {
		return "code"
	})

	require.Contains(t, result, "sample.py")
	require.Contains(t, result, "python")
	require.Contains(t, result, "88 spans")
}

func TestScrollablePane_FocusedBorderColor(t *testing.T) {
	vp := viewport.New(18, 3)
	focused := ScrollablePane(20, 5, ScrollableConfig{
		Viewport:           &vp,
		Focused:            true,
		BorderColor:        scrollTestColorBlue,
		FocusedBorderColor: scrollTestColorGreen,
	}, func(wrapWidth int) string { return "x" })

	vp2 := viewport.New(18, 3)
	unfocused := ScrollablePane(20, 5, ScrollableConfig{
		Viewport:           &vp2,
		Focused:            false,
		BorderColor:        scrollTestColorBlue,
		FocusedBorderColor: scrollTestColorGreen,
	}, func(wrapWidth int) string { return "x" })

	require.NotEqual(t, focused, unfocused, "focus must change the border styling")
}

func TestBuildScrollIndicator_ContentFits(t *testing.T) {
	vp := viewport.New(20, 10)
	vp.SetContent("short")
	require.Empty(t, BuildScrollIndicator(vp))
}

func TestBuildScrollIndicator_Overflow(t *testing.T) {
	vp := viewport.New(20, 3)
	vp.SetContent(numberedLines(20))
	require.Contains(t, BuildScrollIndicator(vp), "%")
}

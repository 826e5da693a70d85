package panes

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/require"
)

// Test colors for bordered pane tests
var (
	testColorBlue  = lipgloss.AdaptiveColor{Light: "#54A0FF", Dark: "#54A0FF"}
	testColorGreen = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"}
)

func TestBorderedPane_BasicRendering(t *testing.T) {
	result := BorderedPane(BorderConfig{
		Content: "Hello World",
		Width:   20,
		Height:  5,
	})

	require.Contains(t, result, "╭", "missing top-left corner")
	require.Contains(t, result, "╮", "missing top-right corner")
	require.Contains(t, result, "╰", "missing bottom-left corner")
	require.Contains(t, result, "╯", "missing bottom-right corner")
	require.Contains(t, result, "│", "missing vertical border")
	require.Contains(t, result, "Hello World", "missing content")

	lines := strings.Split(result, "\n")
	require.Len(t, lines, 5, "expected 5 lines for height 5")
}

func TestBorderedPane_TopLeftTitle(t *testing.T) {
	result := BorderedPane(BorderConfig{
		Content: "content",
		Width:   30,
		Height:  5,
		TopLeft: "My Title",
	})

	topLine := strings.Split(result, "\n")[0]
	require.Contains(t, topLine, "My Title", "title must sit on the top border")
}

func TestBorderedPane_TopRightTitle(t *testing.T) {
	result := BorderedPane(BorderConfig{
		Content:  "content",
		Width:    30,
		Height:   5,
		TopRight: "python",
	})

	topLine := strings.Split(result, "\n")[0]
	require.Contains(t, topLine, "python", "missing top-right title")
}

func TestBorderedPane_BottomTitles(t *testing.T) {
	result := BorderedPane(BorderConfig{
		Content:     "content",
		Width:       40,
		Height:      5,
		BottomLeft:  "42 spans",
		BottomRight: "37%",
	})

	lines := strings.Split(result, "\n")
	bottomLine := lines[len(lines)-1]
	require.Contains(t, bottomLine, "42 spans", "missing bottom-left title")
	require.Contains(t, bottomLine, "37%", "missing bottom-right title")
}

func TestBorderedPane_DualTopTitles(t *testing.T) {
	result := BorderedPane(BorderConfig{
		Content:  "content",
		Width:    40,
		Height:   5,
		TopLeft:  "Python",
		TopRight: "python",
	})

	topLine := strings.Split(result, "\n")[0]
	require.Contains(t, topLine, "Python")
	require.Contains(t, topLine, "python")
	require.Less(t, strings.Index(topLine, "Python"), strings.LastIndex(topLine, "python"),
		"left title must precede right title")
}

func TestBorderedPane_RightTitleDroppedWhenTooNarrow(t *testing.T) {
	result := BorderedPane(BorderConfig{
		Content:  "x",
		Width:    14,
		Height:   3,
		TopLeft:  "Long Left Title",
		TopRight: "right",
	})

	require.NotContains(t, result, "right", "right title should be dropped before the left")
}

func TestBorderedPane_LongTitleTruncated(t *testing.T) {
	result := BorderedPane(BorderConfig{
		Content: "x",
		Width:   16,
		Height:  3,
		TopLeft: "An Exceedingly Long Pane Title",
	})

	require.Contains(t, result, "...", "over-long title should be truncated with ellipsis")
	topLine := strings.Split(result, "\n")[0]
	require.Equal(t, 16, lipgloss.Width(topLine), "top border must keep the configured width")
}

func TestBorderedPane_ContentConstrainedToBox(t *testing.T) {
	result := BorderedPane(BorderConfig{
		Content: strings.Repeat("line\n", 10),
		Width:   20,
		Height:  5,
	})

	lines := strings.Split(result, "\n")
	require.Len(t, lines, 5, "content beyond the box must be clipped")
	for _, line := range lines {
		require.Equal(t, 20, lipgloss.Width(line), "every line must match the configured width")
	}
}

func TestBorderedPane_EmptyContent(t *testing.T) {
	result := BorderedPane(BorderConfig{Width: 10, Height: 4})

	lines := strings.Split(result, "\n")
	require.Len(t, lines, 4)
	for _, line := range lines {
		require.Equal(t, 10, lipgloss.Width(line))
	}
}

func TestBorderedPane_MinimumDimensions(t *testing.T) {
	// Degenerate sizes must not panic and still emit a frame.
	result := BorderedPane(BorderConfig{Content: "x", Width: 0, Height: 0})
	require.Contains(t, result, "╭")
	require.Contains(t, result, "╯")
}

func TestBorderedPane_UnicodeContentAndTitle(t *testing.T) {
	result := BorderedPane(BorderConfig{
		Content: "héllo → wörld",
		Width:   30,
		Height:  4,
		TopLeft: "日本語",
	})

	require.Contains(t, result, "héllo → wörld")
	require.Contains(t, result, "日本語")
	for _, line := range strings.Split(result, "\n") {
		require.Equal(t, 30, lipgloss.Width(line), "wide runes must not break border alignment")
	}
}

func TestResolveBorderColor_BothNil(t *testing.T) {
	c := resolveBorderColor(nil, nil, true)
	require.NotNil(t, c)
}

func TestResolveBorderColor_OnlyBorderColor(t *testing.T) {
	c := resolveBorderColor(testColorBlue, nil, true)
	require.Equal(t, lipgloss.TerminalColor(testColorBlue), c, "lone BorderColor covers the focused state")
}

func TestResolveBorderColor_OnlyFocusedBorderColor(t *testing.T) {
	focused := resolveBorderColor(nil, testColorGreen, true)
	require.Equal(t, lipgloss.TerminalColor(testColorGreen), focused)

	unfocused := resolveBorderColor(nil, testColorGreen, false)
	require.NotEqual(t, lipgloss.TerminalColor(testColorGreen), unfocused, "unfocused state falls back to the default")
}

func TestResolveBorderColor_BothSet(t *testing.T) {
	require.Equal(t, lipgloss.TerminalColor(testColorGreen), resolveBorderColor(testColorBlue, testColorGreen, true))
	require.Equal(t, lipgloss.TerminalColor(testColorBlue), resolveBorderColor(testColorBlue, testColorGreen, false))
}

func TestBuildEdge_PlainWhenNoTitles(t *testing.T) {
	plain := lipgloss.NewStyle()
	edge := buildEdge(borderTopLeft, borderTopRight, "", "", 8, plain, plain)
	require.Equal(t, "╭────────╮", edge)
}

func TestBuildEdge_BottomCorners(t *testing.T) {
	plain := lipgloss.NewStyle()
	edge := buildEdge(borderBottomLeft, borderBottomRight, "st", "", 8, plain, plain)
	require.True(t, strings.HasPrefix(edge, "╰"))
	require.True(t, strings.HasSuffix(edge, "╯"))
	require.Contains(t, edge, "st")
}

func TestBuildEdge_WidthInvariant(t *testing.T) {
	plain := lipgloss.NewStyle()
	for _, tc := range []struct {
		name        string
		left, right string
	}{
		{"none", "", ""},
		{"left", "Title", ""},
		{"right", "", "tag"},
		{"both", "Title", "tag"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			edge := buildEdge(borderTopLeft, borderTopRight, tc.left, tc.right, 24, plain, plain)
			require.Equal(t, 26, lipgloss.Width(edge), "edge must be innerWidth plus two corners")
		})
	}
}

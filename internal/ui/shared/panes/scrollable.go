package panes

import (
	"fmt"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"

	"github.com/glintlabs/glint/internal/ui/styles"
)

// ScrollIndicatorStyle is the style for the scroll position indicator.
var ScrollIndicatorStyle = lipgloss.NewStyle().Foreground(styles.TextMutedColor)

// ScrollableConfig holds the configuration for rendering a scrollable pane.
type ScrollableConfig struct {
	// Viewport must be a pointer so scroll state survives across renders.
	// ScrollablePane resizes it and replaces its content.
	Viewport *viewport.Model

	// LeftTitle is shown on the left side of the top border, RightTitle on
	// its right side (e.g. the language tag).
	LeftTitle  string
	RightTitle string

	// BottomLeft is optional status text on the bottom border. The
	// bottom-right slot always carries the scroll percentage when the
	// content overflows the viewport.
	BottomLeft string

	TitleColor         lipgloss.TerminalColor
	BorderColor        lipgloss.TerminalColor
	Focused            bool
	FocusedBorderColor lipgloss.TerminalColor
}

// ScrollablePane wraps pre-rendered content in a scrolling viewport inside a
// bordered pane. Content is top-aligned; the caller owns the viewport and
// its scroll position. contentFn receives the viewport width and returns the
// content to display.
func ScrollablePane(width, height int, cfg ScrollableConfig, contentFn func(wrapWidth int) string) string {
	vpWidth := max(width-2, 1)
	vpHeight := max(height-2, 1)

	content := contentFn(vpWidth)

	// Preserve the scroll position proportionally across resizes. Capture
	// before any viewport mutation: SetContent clamps the offset.
	oldScrollPercent := cfg.Viewport.ScrollPercent()
	dimensionsChanged := cfg.Viewport.Width != vpWidth || cfg.Viewport.Height != vpHeight

	cfg.Viewport.Width = vpWidth
	cfg.Viewport.Height = vpHeight
	cfg.Viewport.SetContent(content)

	if dimensionsChanged && oldScrollPercent > 0 {
		scrollableRange := cfg.Viewport.TotalLineCount() - cfg.Viewport.Height
		if scrollableRange > 0 {
			cfg.Viewport.SetYOffset(int(oldScrollPercent * float64(scrollableRange)))
		}
	}

	return BorderedPane(BorderConfig{
		Content:            cfg.Viewport.View(),
		Width:              width,
		Height:             height,
		TopLeft:            cfg.LeftTitle,
		TopRight:           cfg.RightTitle,
		BottomLeft:         cfg.BottomLeft,
		BottomRight:        BuildScrollIndicator(*cfg.Viewport),
		Focused:            cfg.Focused,
		TitleColor:         cfg.TitleColor,
		BorderColor:        cfg.BorderColor,
		FocusedBorderColor: cfg.FocusedBorderColor,
	})
}

// BuildScrollIndicator returns a styled scroll percentage for the viewport,
// or empty when the content fits entirely.
func BuildScrollIndicator(vp viewport.Model) string {
	if vp.TotalLineCount() <= vp.Height {
		return ""
	}
	return ScrollIndicatorStyle.Render(fmt.Sprintf("%.0f%%", vp.ScrollPercent()*100))
}

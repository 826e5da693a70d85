// Package styles contains Lip Gloss style definitions for the preview chrome.
// Chrome colors default to the glint-dark palette; ApplyScheme rebinds them
// when the active scheme changes so the frame always matches the code view.
package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/glintlabs/glint/internal/scheme"
)

var (
	// Semantic color names - Text hierarchy
	TextPrimaryColor   = lipgloss.AdaptiveColor{Light: "#383838", Dark: "#d8d8d8"} // Code view, titles
	TextSecondaryColor = lipgloss.AdaptiveColor{Light: "#585858", Dark: "#b8b8b8"} // Status bar values
	TextMutedColor     = lipgloss.AdaptiveColor{Light: "#b8b8b8", Dark: "#585858"} // Hints, help text, gutters

	// Semantic color names - Border
	BorderDefaultColor = lipgloss.AdaptiveColor{Light: "#d8d8d8", Dark: "#383838"} // Unfocused borders
	BorderFocusColor   = lipgloss.AdaptiveColor{Light: "#7cafc2", Dark: "#7cafc2"} // Focused pane border

	// Semantic color names - Status
	StatusSuccessColor = lipgloss.AdaptiveColor{Light: "#a1b56c", Dark: "#a1b56c"} // Cache hits, saved notices
	StatusWarningColor = lipgloss.AdaptiveColor{Light: "#f7ca88", Dark: "#f7ca88"} // Watch banner, unterminated
	StatusErrorColor   = lipgloss.AdaptiveColor{Light: "#ab4642", Dark: "#ab4642"} // Errors

	// Accent for the selected snippet and active language tab
	AccentColor = lipgloss.AdaptiveColor{Light: "#7cafc2", Dark: "#7cafc2"}

	// Surface colors for bars and banners
	SurfaceColor = lipgloss.AdaptiveColor{Light: "#e8e8e8", Dark: "#282828"}

	// Overlay colors
	OverlayTitleColor  = lipgloss.AdaptiveColor{Light: "#282828", Dark: "#e8e8e8"}
	OverlayBorderColor = lipgloss.AdaptiveColor{Light: "#585858", Dark: "#585858"}
)

// Styles derived from the colors above. Rebuilt by ApplyScheme.
var (
	SelectionIndicatorStyle lipgloss.Style
	SidebarTitleStyle       lipgloss.Style
	SidebarItemStyle        lipgloss.Style
	SidebarSelectedStyle    lipgloss.Style
	GutterStyle             lipgloss.Style
	StatusBarStyle          lipgloss.Style
	StatusKeyStyle          lipgloss.Style
	WatchBannerStyle        lipgloss.Style
	ErrorStyle              lipgloss.Style
	HelpHintStyle           lipgloss.Style
)

func init() {
	rebuild()
}

// ApplyScheme rebinds the chrome colors to the given palette. Light schemes
// fill both adaptive slots with the same value, so detection stays with the
// scheme rather than the terminal.
func ApplyScheme(s *scheme.Scheme) {
	TextPrimaryColor = flat(s.Hex("base05"))
	TextSecondaryColor = flat(s.Hex("base04"))
	TextMutedColor = flat(s.Hex("base03"))

	BorderDefaultColor = flat(s.Hex("base02"))
	BorderFocusColor = flat(s.Hex("base0D"))

	StatusSuccessColor = flat(s.Hex("base0B"))
	StatusWarningColor = flat(s.Hex("base0A"))
	StatusErrorColor = flat(s.Hex("base08"))

	AccentColor = flat(s.Hex("base0D"))
	SurfaceColor = flat(s.Hex("base01"))

	OverlayTitleColor = flat(s.Hex("base06"))
	OverlayBorderColor = flat(s.Hex("base03"))

	rebuild()
}

// rebuild recreates the derived styles from the current colors.
func rebuild() {
	SelectionIndicatorStyle = lipgloss.NewStyle().Bold(true).Foreground(AccentColor)

	SidebarTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(TextPrimaryColor).Padding(0, 1)
	SidebarItemStyle = lipgloss.NewStyle().Foreground(TextSecondaryColor).Padding(0, 1)
	SidebarSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(AccentColor).Padding(0, 1)

	GutterStyle = lipgloss.NewStyle().Foreground(TextMutedColor)

	StatusBarStyle = lipgloss.NewStyle().
		Foreground(TextSecondaryColor).
		Background(SurfaceColor).
		Padding(0, 1)

	StatusKeyStyle = lipgloss.NewStyle().
		Foreground(TextMutedColor).
		Background(SurfaceColor)

	WatchBannerStyle = lipgloss.NewStyle().
		Foreground(SurfaceColor).
		Background(StatusWarningColor).
		Bold(true).
		Padding(0, 1)

	ErrorStyle = lipgloss.NewStyle().
		Foreground(StatusErrorColor).
		Bold(true).
		Padding(1, 2)

	HelpHintStyle = lipgloss.NewStyle().Foreground(TextMutedColor)
}

// flat fills both adaptive slots with one hex value.
func flat(hex string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: hex, Dark: hex}
}

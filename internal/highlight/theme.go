// Package highlight renders classified spans as styled terminal text. A
// Theme derives one lipgloss style per span category from a Base16/Base24
// scheme; a Renderer slices styled spans into lines a viewport can show.
package highlight

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/glintlabs/glint/internal/scheme"
	"github.com/glintlabs/glint/internal/syntax"
)

// Theme maps span categories to terminal styles. Build one per scheme with
// NewTheme; the zero value is not usable.
type Theme struct {
	scheme *scheme.Scheme
	styles map[syntax.Category]lipgloss.Style

	// chrome
	gutter    lipgloss.Style
	errorline lipgloss.Style
}

// NewTheme derives category styles from a scheme, following the Base16
// styling convention: comments dim italic, strings green, escapes and
// regexes cyan, keywords purple bold, types yellow, numbers orange.
func NewTheme(s *scheme.Scheme) *Theme {
	color := func(slot string) lipgloss.Color {
		return lipgloss.Color(s.Hex(slot))
	}
	return &Theme{
		scheme: s,
		styles: map[syntax.Category]lipgloss.Style{
			syntax.CatComment:    lipgloss.NewStyle().Foreground(color("base03")).Italic(true),
			syntax.CatString:     lipgloss.NewStyle().Foreground(color("base0B")),
			syntax.CatEscape:     lipgloss.NewStyle().Foreground(color("base0C")),
			syntax.CatRegex:      lipgloss.NewStyle().Foreground(color("base0C")),
			syntax.CatExpression: lipgloss.NewStyle().Foreground(color("base0F")),
			syntax.CatKeyword:    lipgloss.NewStyle().Foreground(color("base0E")).Bold(true),
			syntax.CatType:       lipgloss.NewStyle().Foreground(color("base0A")),
			syntax.CatNumber:     lipgloss.NewStyle().Foreground(color("base09")),
			syntax.CatOperator:   lipgloss.NewStyle().Foreground(color("base05")),
			syntax.CatIdentifier: lipgloss.NewStyle().Foreground(color("base05")),
			syntax.CatWhitespace: lipgloss.NewStyle(),
			syntax.CatUnknown:    lipgloss.NewStyle().Foreground(color("base05")),
		},
		gutter:    lipgloss.NewStyle().Foreground(color("base03")),
		errorline: lipgloss.NewStyle().Foreground(color("base08")).Underline(true),
	}
}

// Scheme returns the scheme the theme was built from.
func (t *Theme) Scheme() *scheme.Scheme {
	return t.scheme
}

// Style returns the style for a category. Unknown categories get the
// Unknown style, so a renderer never errors on a span it does not know.
func (t *Theme) Style(c syntax.Category) lipgloss.Style {
	if s, ok := t.styles[c]; ok {
		return s
	}
	return t.styles[syntax.CatUnknown]
}

// Unterminated layers the error styling over a category style so open
// strings, comments, and regexes stay visible but clearly wrong.
func (t *Theme) Unterminated(base lipgloss.Style) lipgloss.Style {
	return base.Foreground(t.errorline.GetForeground()).Underline(true)
}

// Gutter returns the style for line numbers and similar margin text.
func (t *Theme) Gutter() lipgloss.Style {
	return t.gutter
}

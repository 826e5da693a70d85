// Package help contains the help overlay component.
package help

import (
	_ "embed"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/glintlabs/glint/internal/keys"
	"github.com/glintlabs/glint/internal/log"
	"github.com/glintlabs/glint/internal/ui/overlay"
	"github.com/glintlabs/glint/internal/ui/styles"
)

//go:embed help.md
var helpMarkdown string

// noMarginStyle strips glamour's document margins so the rendered markdown
// sits flush inside the help box.
const noMarginStyle = `{
	"document": {
		"margin": 0,
		"block_prefix": "",
		"block_suffix": ""
	}
}`

// boxWidth is the fixed help box width; the overlay centers it.
const boxWidth = 72

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(styles.OverlayTitleColor).
			PaddingLeft(2)

	dividerStyle = lipgloss.NewStyle().
			Foreground(styles.OverlayBorderColor)

	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(styles.OverlayTitleColor).
			MarginTop(1)

	keyStyle = lipgloss.NewStyle().
			Foreground(styles.TextSecondaryColor).
			Width(12)

	descStyle = lipgloss.NewStyle().
			Foreground(styles.TextMutedColor)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(styles.OverlayBorderColor)

	contentStyle = lipgloss.NewStyle().
			Padding(0, 2)

	footerStyle = lipgloss.NewStyle().
			Foreground(styles.TextMutedColor).
			MarginTop(1)
)

// Model holds the help view state.
type Model struct {
	keys   keys.KeyMap
	width  int
	height int

	// rendered markdown intro, built lazily and cached: glamour renders
	// are not cheap enough for every frame.
	intro string
}

// New creates the help view over the default keymap.
func New() Model {
	return Model{keys: keys.DefaultKeyMap()}
}

// SetSize updates dimensions.
func (m Model) SetSize(width, height int) Model {
	m.width = width
	m.height = height
	return m
}

// View renders the help overlay (standalone, no background).
func (m Model) View() string {
	return m.Overlay("")
}

// Overlay renders the help box on top of a background view.
func (m Model) Overlay(background string) string {
	helpBox := m.renderContent()

	if background == "" {
		return lipgloss.Place(
			m.width, m.height,
			lipgloss.Center, lipgloss.Center,
			helpBox,
		)
	}

	return overlay.Place(overlay.Config{
		Width:    m.width,
		Height:   m.height,
		Position: overlay.Center,
	}, helpBox, background)
}

// renderContent builds the help box: glamour-rendered intro on top, then the
// keybinding columns.
func (m *Model) renderContent() string {
	inner := boxWidth - 4 // box padding

	if m.intro == "" {
		m.intro = renderIntro(inner)
	}

	columns := m.renderBindingColumns()

	var body strings.Builder
	body.WriteString(m.intro)
	body.WriteString("\n")
	body.WriteString(columns)
	body.WriteString("\n")
	body.WriteString(footerStyle.Render("Press ? or Esc to close"))

	divider := dividerStyle.Render(strings.Repeat("─", boxWidth))

	var content strings.Builder
	content.WriteString(titleStyle.Render("Help"))
	content.WriteString("\n")
	content.WriteString(divider)
	content.WriteString("\n")
	content.WriteString(contentStyle.Render(body.String()))

	return boxStyle.Width(boxWidth).Render(content.String())
}

// renderIntro renders the embedded markdown through glamour. On a glamour
// failure the raw markdown is word-wrapped instead, so help never vanishes.
func renderIntro(width int) string {
	r, err := glamour.NewTermRenderer(
		glamour.WithStylePath("dark"),
		glamour.WithStylesFromJSONBytes([]byte(noMarginStyle)),
		glamour.WithWordWrap(width),
	)
	if err == nil {
		out, rerr := r.Render(helpMarkdown)
		if rerr == nil {
			return strings.TrimRight(out, "\n")
		}
		err = rerr
	}
	log.ErrorErr(log.CatUI, "help markdown render failed", err)
	return wordwrap.String(helpMarkdown, width)
}

// renderBindingColumns lays the keymap out in four sections side by side.
func (m Model) renderBindingColumns() string {
	columnStyle := lipgloss.NewStyle().MarginRight(3)

	var navCol strings.Builder
	navCol.WriteString(sectionStyle.Render("Navigation"))
	navCol.WriteString("\n")
	navCol.WriteString(renderBinding(m.keys.Up))
	navCol.WriteString(renderBinding(m.keys.Down))
	navCol.WriteString(renderBinding(m.keys.Left))
	navCol.WriteString(renderBinding(m.keys.Right))

	var cycleCol strings.Builder
	cycleCol.WriteString(sectionStyle.Render("Cycling"))
	cycleCol.WriteString("\n")
	cycleCol.WriteString(renderBinding(m.keys.NextLanguage))
	cycleCol.WriteString(renderBinding(m.keys.PrevLanguage))
	cycleCol.WriteString(renderBinding(m.keys.NextTheme))
	cycleCol.WriteString(renderBinding(m.keys.PrevTheme))

	var actionsCol strings.Builder
	actionsCol.WriteString(sectionStyle.Render("Actions"))
	actionsCol.WriteString("\n")
	actionsCol.WriteString(renderBinding(m.keys.Inspect))
	actionsCol.WriteString(renderBinding(m.keys.Refresh))
	actionsCol.WriteString(renderBinding(m.keys.OpenEditor))
	actionsCol.WriteString(renderBinding(m.keys.ToggleWatch))
	actionsCol.WriteString(renderBinding(m.keys.LineNumbers))

	var generalCol strings.Builder
	generalCol.WriteString(sectionStyle.Render("General"))
	generalCol.WriteString("\n")
	generalCol.WriteString(renderBinding(m.keys.Help))
	generalCol.WriteString(renderBinding(m.keys.ToggleStatus))
	generalCol.WriteString(renderBinding(m.keys.Escape))
	generalCol.WriteString(renderBinding(m.keys.Quit))

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		columnStyle.Render(navCol.String()),
		columnStyle.Render(cycleCol.String()),
		columnStyle.Render(actionsCol.String()),
		generalCol.String(),
	)
}

func renderBinding(b key.Binding) string {
	help := b.Help()
	return keyStyle.Render(help.Key) + descStyle.Render(help.Desc) + "\n"
}

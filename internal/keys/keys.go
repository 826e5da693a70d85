// Package keys contains keybinding definitions.
package keys

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keybindings for the preview.
type KeyMap struct {
	// Navigation
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding

	// Language and theme cycling
	NextLanguage key.Binding
	PrevLanguage key.Binding
	NextTheme    key.Binding
	PrevTheme    key.Binding

	// Actions
	Inspect     key.Binding
	Refresh     key.Binding
	OpenEditor  key.Binding
	ToggleWatch key.Binding
	LineNumbers key.Binding

	// General
	Help         key.Binding
	Escape       key.Binding
	Quit         key.Binding
	ToggleStatus key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		// Navigation
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "move down"),
		),
		Left: key.NewBinding(
			key.WithKeys("h", "left"),
			key.WithHelp("h/←", "scroll left"),
		),
		Right: key.NewBinding(
			key.WithKeys("l", "right"),
			key.WithHelp("l/→", "scroll right"),
		),

		// Language and theme cycling
		NextLanguage: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next language"),
		),
		PrevLanguage: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "previous language"),
		),
		NextTheme: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "next theme"),
		),
		PrevTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "previous theme"),
		),

		// Actions
		Inspect: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "span inspector"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "re-scan"),
		),
		OpenEditor: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "open in editor"),
		),
		ToggleWatch: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "toggle watch"),
		),
		LineNumbers: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "toggle line numbers"),
		),

		// General
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "go back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		ToggleStatus: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "toggle status bar"),
		),
	}
}

// ShortHelp returns keybindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.Quit}
}

// FullHelp returns keybindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},                          // Navigation
		{k.NextLanguage, k.PrevLanguage, k.NextTheme, k.PrevTheme}, // Cycling
		{k.Inspect, k.Refresh, k.OpenEditor, k.ToggleWatch, k.LineNumbers}, // Actions
		{k.Help, k.ToggleStatus, k.Escape, k.Quit},               // General
	}
}

// InspectorKeyMap defines the keybindings for the span inspector overlay.
type InspectorKeyMap struct {
	// Navigation
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Top      key.Binding
	Bottom   key.Binding

	// General
	Close key.Binding
	Quit  key.Binding
}

// DefaultInspectorKeyMap returns the keybindings for the span inspector.
func DefaultInspectorKeyMap() InspectorKeyMap {
	return InspectorKeyMap{
		// Navigation
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "previous span"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "next span"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup", "ctrl+u"),
			key.WithHelp("pgup", "page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown", "ctrl+d"),
			key.WithHelp("pgdn", "page down"),
		),
		Top: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "first span"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "last span"),
		),

		// General
		Close: key.NewBinding(
			key.WithKeys("esc", "i"),
			key.WithHelp("esc", "close inspector"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

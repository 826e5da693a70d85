package keys

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	"github.com/stretchr/testify/require"
)

func TestDefaultKeyMap_Assignments(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		name     string
		binding  key.Binding
		expected []string
	}{
		{"Up uses k and up", keys.Up, []string{"k", "up"}},
		{"Down uses j and down", keys.Down, []string{"j", "down"}},
		{"Left uses h and left", keys.Left, []string{"h", "left"}},
		{"Right uses l and right", keys.Right, []string{"l", "right"}},
		{"NextLanguage uses tab", keys.NextLanguage, []string{"tab"}},
		{"PrevLanguage uses shift+tab", keys.PrevLanguage, []string{"shift+tab"}},
		{"NextTheme uses t", keys.NextTheme, []string{"t"}},
		{"PrevTheme uses T", keys.PrevTheme, []string{"T"}},
		{"Inspect uses i", keys.Inspect, []string{"i"}},
		{"Refresh uses r", keys.Refresh, []string{"r"}},
		{"OpenEditor uses e", keys.OpenEditor, []string{"e"}},
		{"ToggleWatch uses w", keys.ToggleWatch, []string{"w"}},
		{"LineNumbers uses n", keys.LineNumbers, []string{"n"}},
		{"Quit uses q and ctrl+c", keys.Quit, []string{"q", "ctrl+c"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, tt.binding.Keys())
		})
	}
}

func TestDefaultKeyMap_HelpTextDefined(t *testing.T) {
	keys := DefaultKeyMap()

	bindings := []struct {
		name    string
		binding key.Binding
	}{
		{"Up", keys.Up},
		{"Down", keys.Down},
		{"NextLanguage", keys.NextLanguage},
		{"PrevLanguage", keys.PrevLanguage},
		{"NextTheme", keys.NextTheme},
		{"Inspect", keys.Inspect},
		{"Refresh", keys.Refresh},
		{"OpenEditor", keys.OpenEditor},
		{"ToggleWatch", keys.ToggleWatch},
		{"LineNumbers", keys.LineNumbers},
		{"Help", keys.Help},
		{"Escape", keys.Escape},
		{"Quit", keys.Quit},
		{"ToggleStatus", keys.ToggleStatus},
	}

	for _, b := range bindings {
		t.Run(b.name, func(t *testing.T) {
			help := b.binding.Help()
			require.NotEmpty(t, help.Key, "key help should not be empty")
			require.NotEmpty(t, help.Desc, "description help should not be empty")
		})
	}
}

func TestKeyMap_ShortHelp(t *testing.T) {
	keys := DefaultKeyMap()
	help := keys.ShortHelp()
	require.Len(t, help, 2)
	require.Equal(t, keys.Help.Keys(), help[0].Keys())
	require.Equal(t, keys.Quit.Keys(), help[1].Keys())
}

func TestKeyMap_FullHelp(t *testing.T) {
	keys := DefaultKeyMap()
	help := keys.FullHelp()
	require.Len(t, help, 4, "full help should contain 4 rows")

	// First row: navigation
	require.Contains(t, help[0], keys.Up)
	require.Contains(t, help[0], keys.Down)

	// Second row: cycling
	require.Contains(t, help[1], keys.NextLanguage)
	require.Contains(t, help[1], keys.NextTheme)

	// Third row: actions
	require.Contains(t, help[2], keys.Inspect)
	require.Contains(t, help[2], keys.ToggleWatch)

	// Fourth row: general
	require.Contains(t, help[3], keys.Quit)
}

func TestInspectorKeyMap_Assignments(t *testing.T) {
	keys := DefaultInspectorKeyMap()

	require.Equal(t, []string{"k", "up"}, keys.Up.Keys())
	require.Equal(t, []string{"j", "down"}, keys.Down.Keys())
	require.Equal(t, []string{"pgup", "ctrl+u"}, keys.PageUp.Keys())
	require.Equal(t, []string{"pgdown", "ctrl+d"}, keys.PageDown.Keys())
	require.Equal(t, []string{"g", "home"}, keys.Top.Keys())
	require.Equal(t, []string{"G", "end"}, keys.Bottom.Keys())
}

func TestInspectorKeyMap_CloseAlsoTogglesWithI(t *testing.T) {
	// The same key that opens the inspector closes it.
	keys := DefaultInspectorKeyMap()
	require.Contains(t, keys.Close.Keys(), "i")
	require.Contains(t, keys.Close.Keys(), "esc")
}

package styles

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/glintlabs/glint/internal/scheme"
)

func TestApplyScheme_RebindsChromeColors(t *testing.T) {
	s, ok := scheme.Builtin("glint-light")
	require.True(t, ok)

	ApplyScheme(s)
	defer ApplyScheme(scheme.Default())

	require.Equal(t, s.Hex("base05"), TextPrimaryColor.Dark)
	require.Equal(t, s.Hex("base05"), TextPrimaryColor.Light)
	require.Equal(t, s.Hex("base0D"), AccentColor.Dark)
	require.Equal(t, s.Hex("base08"), StatusErrorColor.Dark)
	require.Equal(t, s.Hex("base01"), SurfaceColor.Dark)
}

func TestApplyScheme_RebuildsDerivedStyles(t *testing.T) {
	s, ok := scheme.Builtin("glint-light")
	require.True(t, ok)

	ApplyScheme(s)
	defer ApplyScheme(scheme.Default())

	require.Equal(t, AccentColor, SelectionIndicatorStyle.GetForeground())
	require.Equal(t, TextMutedColor, GutterStyle.GetForeground())
	require.Equal(t, SurfaceColor, StatusBarStyle.GetBackground())
	require.Equal(t, StatusWarningColor, WatchBannerStyle.GetBackground())
}

func TestDefaultColorsMatchDarkBuiltin(t *testing.T) {
	// The package defaults mirror glint-dark so the chrome is coherent
	// before any config loads.
	ApplyScheme(scheme.Default())

	require.Equal(t, "#d8d8d8", TextPrimaryColor.Dark)
	require.Equal(t, "#7cafc2", AccentColor.Dark)
	require.Equal(t, "#ab4642", StatusErrorColor.Dark)
}

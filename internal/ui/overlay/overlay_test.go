package overlay

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlace_Center(t *testing.T) {
	bg := "AAAAA\nAAAAA\nAAAAA"
	fg := "XX\nXX"
	cfg := Config{Width: 5, Height: 3, Position: Center}

	result := Place(cfg, fg, bg)

	lines := strings.Split(result, "\n")
	assert.Len(t, lines, 3)
	assert.Contains(t, lines[1], "XX")
}

func TestPlace_Center_LargeForeground(t *testing.T) {
	bg := "AAA\nAAA\nAAA"
	fg := "XXXXX\nXXXXX"
	cfg := Config{Width: 3, Height: 3, Position: Center}

	result := Place(cfg, fg, bg)

	// Oversized foreground clamps to the top-left corner.
	lines := strings.Split(result, "\n")
	assert.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "XXXXX") || strings.HasPrefix(lines[1], "XXXXX"))
}

func TestPlace_Top(t *testing.T) {
	bg := "AAAAA\nAAAAA\nAAAAA\nAAAAA\nAAAAA"
	fg := "XX"
	cfg := Config{Width: 5, Height: 5, Position: Top, PadY: 0}

	result := Place(cfg, fg, bg)

	lines := strings.Split(result, "\n")
	assert.Contains(t, lines[0], "XX")
	assert.Equal(t, "AAAAA", lines[4])
}

func TestPlace_Top_WithPadding(t *testing.T) {
	bg := "AAAAA\nAAAAA\nAAAAA\nAAAAA\nAAAAA"
	fg := "XX"
	cfg := Config{Width: 5, Height: 5, Position: Top, PadY: 1}

	result := Place(cfg, fg, bg)

	lines := strings.Split(result, "\n")
	assert.Equal(t, "AAAAA", lines[0])
	assert.Contains(t, lines[1], "XX")
}

func TestPlace_Bottom(t *testing.T) {
	bg := "AAAAA\nAAAAA\nAAAAA\nAAAAA\nAAAAA"
	fg := "XX"
	cfg := Config{Width: 5, Height: 5, Position: Bottom, PadY: 0}

	result := Place(cfg, fg, bg)

	lines := strings.Split(result, "\n")
	assert.Contains(t, lines[4], "XX")
	assert.Equal(t, "AAAAA", lines[0])
}

func TestPlace_Bottom_WithPadding(t *testing.T) {
	bg := "AAAAA\nAAAAA\nAAAAA\nAAAAA\nAAAAA"
	fg := "XX"
	cfg := Config{Width: 5, Height: 5, Position: Bottom, PadY: 1}

	result := Place(cfg, fg, bg)

	lines := strings.Split(result, "\n")
	assert.Equal(t, "AAAAA", lines[4])
	assert.Contains(t, lines[3], "XX")
}

func TestPlace_EmptyBackground(t *testing.T) {
	fg := "XX\nXX"
	cfg := Config{Width: 5, Height: 3, Position: Center}

	result := Place(cfg, fg, "")

	lines := strings.Split(result, "\n")
	assert.Len(t, lines, 3)
}

func TestPlace_PreservesBackgroundOnSides(t *testing.T) {
	bg := "ABCDE\nFGHIJ\nKLMNO"
	fg := "X"
	cfg := Config{Width: 5, Height: 3, Position: Center}

	result := Place(cfg, fg, bg)

	lines := strings.Split(result, "\n")
	// X lands at column 2; FG and IJ survive either side.
	assert.Equal(t, "FGXIJ", lines[1])
}

func TestPlace_PreservesANSI(t *testing.T) {
	bg := "\x1b[31mRED\x1b[0m\n\x1b[31mRED\x1b[0m\n\x1b[31mRED\x1b[0m"
	fg := "X"
	cfg := Config{Width: 3, Height: 3, Position: Center}

	result := Place(cfg, fg, bg)

	assert.Contains(t, result, "\x1b[31m")
}

func TestPlace_MultilineForeground(t *testing.T) {
	bg := ".....\n.....\n.....\n.....\n....."
	fg := "XXX\nXXX\nXXX"
	cfg := Config{Width: 5, Height: 5, Position: Center}

	result := Place(cfg, fg, bg)

	lines := strings.Split(result, "\n")
	assert.Len(t, lines, 5)
	assert.Contains(t, lines[1], "XXX")
	assert.Contains(t, lines[2], "XXX")
	assert.Contains(t, lines[3], "XXX")
}

func TestPlace_BoxOnDotField(t *testing.T) {
	bg := strings.TrimSuffix(strings.Repeat(strings.Repeat(".", 20)+"\n", 10), "\n")
	fg := "┌──────┐\n│ HELP │\n└──────┘"
	cfg := Config{Width: 20, Height: 10, Position: Center}

	result := Place(cfg, fg, bg)

	lines := strings.Split(result, "\n")
	assert.Equal(t, strings.Repeat(".", 20), lines[0], "rows above the box stay background")
	assert.Equal(t, "......┌──────┐......", lines[3])
	assert.Equal(t, "......│ HELP │......", lines[4])
	assert.Equal(t, "......└──────┘......", lines[5])
	assert.Equal(t, strings.Repeat(".", 20), lines[9], "rows below the box stay background")
}

func TestOrigin_Center(t *testing.T) {
	cfg := Config{Width: 10, Height: 10, Position: Center}

	x, y := origin(cfg, 4, 2)

	assert.Equal(t, 3, x)
	assert.Equal(t, 4, y)
}

func TestOrigin_Top(t *testing.T) {
	cfg := Config{Width: 10, Height: 10, Position: Top, PadY: 2}

	x, y := origin(cfg, 4, 2)

	assert.Equal(t, 3, x)
	assert.Equal(t, 2, y)
}

func TestOrigin_Bottom(t *testing.T) {
	cfg := Config{Width: 10, Height: 10, Position: Bottom, PadY: 1}

	x, y := origin(cfg, 4, 2)

	assert.Equal(t, 3, x)
	assert.Equal(t, 7, y)
}

func TestOrigin_NegativeClamping(t *testing.T) {
	cfg := Config{Width: 5, Height: 5, Position: Center}

	x, y := origin(cfg, 10, 10)

	assert.Equal(t, 0, x)
	assert.Equal(t, 0, y)
}

package styles

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTruncateString(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxWidth int
		want     string
	}{
		{"fits", "Hello", 10, "Hello"},
		{"exact", "Hello", 5, "Hello"},
		{"truncate", "Hello World", 8, "Hello..."},
		{"very short", "Hello", 3, "..."},
		{"minimal", "Hello", 1, "."},
		{"zero", "Hello", 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TruncateString(tt.input, tt.maxWidth)
			assert.Equal(t, tt.want, got, "TruncateString(%q, %d)", tt.input, tt.maxWidth)
		})
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		name string
		d    time.Duration
		want string
	}{
		{"sub-microsecond", 500 * time.Nanosecond, "<1µs"},
		{"microseconds", 420 * time.Microsecond, "420µs"},
		{"small millis keep a decimal", 1200 * time.Microsecond, "1.2ms"},
		{"big millis round", 35 * time.Millisecond, "35ms"},
		{"seconds", 1050 * time.Millisecond, "1.05s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatDuration(tt.d))
		})
	}
}

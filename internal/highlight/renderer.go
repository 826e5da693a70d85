package highlight

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/glintlabs/glint/internal/syntax"
)

// Line is one rendered line of highlighted output.
type Line struct {
	// Content carries ANSI styling and expanded tabs.
	Content string
	// Width is the display-column width of the plain text.
	Width int
}

// Renderer turns a span stream back into styled source lines. Styles come
// from the theme; multi-line spans keep their style across line breaks, and
// nested escape and expression sub-spans are styled inside their parents.
type Renderer struct {
	theme    *Theme
	tabWidth int
}

// NewRenderer creates a renderer over the given theme with 4-column tabs.
func NewRenderer(theme *Theme) *Renderer {
	return &Renderer{theme: theme, tabWidth: 4}
}

// SetTabWidth overrides the tab stop width.
func (r *Renderer) SetTabWidth(w int) {
	if w > 0 {
		r.tabWidth = w
	}
}

// Theme returns the renderer's theme.
func (r *Renderer) Theme() *Theme {
	return r.theme
}

// segment is a run of text under one style.
type segment struct {
	text  string
	style lipgloss.Style
}

// Render slices the spans at line boundaries and returns styled lines.
// A trailing newline in the source does not produce a final empty line.
func (r *Renderer) Render(src string, spans []syntax.Span) []Line {
	var lines []Line
	var cur strings.Builder
	col := 0

	flush := func() {
		lines = append(lines, Line{Content: cur.String(), Width: col})
		cur.Reset()
		col = 0
	}

	for _, sp := range spans {
		for _, seg := range r.segments(src, sp) {
			pieces := strings.Split(seg.text, "\n")
			for i, piece := range pieces {
				if i > 0 {
					flush()
				}
				piece = strings.TrimSuffix(piece, "\r")
				if piece == "" {
					continue
				}
				expanded, endCol := expandTabs(piece, col, r.tabWidth)
				cur.WriteString(seg.style.Render(expanded))
				col = endCol
			}
		}
	}
	if cur.Len() > 0 || len(lines) == 0 {
		flush()
	}
	return lines
}

// segments splits a span into styled runs: parent-styled gaps around each
// nested sub-span. Unterminated spans take the error styling for the whole
// parent run.
func (r *Renderer) segments(src string, sp syntax.Span) []segment {
	base := r.theme.Style(sp.Category)
	if sp.Unterminated {
		base = r.theme.Unterminated(base)
	}
	text := sp.Text(src)
	if len(sp.Nested) == 0 {
		return []segment{{text, base}}
	}
	segs := make([]segment, 0, len(sp.Nested)*2+1)
	last := 0
	for _, n := range sp.Nested {
		if n.Start > last {
			segs = append(segs, segment{text[last:n.Start], base})
		}
		segs = append(segs, segment{text[n.Start:n.End], r.theme.Style(n.Category)})
		last = n.End
	}
	if last < len(text) {
		segs = append(segs, segment{text[last:], base})
	}
	return segs
}

// Window cuts a styled line to a horizontal viewport: skip offset columns,
// then keep width columns. ANSI sequences survive the cut.
func Window(line string, offset, width int) string {
	if offset > 0 {
		line = ansi.TruncateLeft(line, offset, "")
	}
	if width >= 0 {
		line = ansi.Truncate(line, width, "")
	}
	return line
}

// StyledWidth measures the display width of a styled line.
func StyledWidth(line string) int {
	return ansi.StringWidth(line)
}

package testutil

import (
	"strings"
	"testing"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// DiffLines returns a line-oriented diff between want and got, one line
// per output line prefixed with "-", "+", or " ". Returns "" when the
// inputs are equal.
func DiffLines(want, got string) string {
	if want == got {
		return ""
	}

	dmp := diffmatchpatch.New()
	wantChars, gotChars, lineIndex := dmp.DiffLinesToChars(want, got)
	diffs := dmp.DiffMain(wantChars, gotChars, false)
	diffs = dmp.DiffCharsToLines(diffs, lineIndex)

	var b strings.Builder
	for _, d := range diffs {
		prefix := " "
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			prefix = "-"
		case diffmatchpatch.DiffInsert:
			prefix = "+"
		}
		for _, line := range strings.Split(strings.TrimSuffix(d.Text, "\n"), "\n") {
			b.WriteString(prefix)
			b.WriteString(line)
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// RequireTextEqual fails the test with a readable line diff when got
// differs from want. Meant for multi-line rendered output where the
// default assertion dump is unreadable.
func RequireTextEqual(t *testing.T, want, got string) {
	t.Helper()
	if diff := DiffLines(want, got); diff != "" {
		t.Fatalf("rendered output mismatch (-want +got):\n%s", diff)
	}
}

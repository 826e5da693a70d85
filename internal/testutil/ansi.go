// Package testutil provides shared helpers for asserting rendered
// terminal output.
package testutil

import "regexp"

var ansiRegex = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// StripANSI removes SGR escape sequences from s, leaving plain text.
func StripANSI(s string) string {
	return ansiRegex.ReplaceAllString(s, "")
}

// HasANSI reports whether s contains any SGR escape sequence.
func HasANSI(s string) bool {
	return ansiRegex.MatchString(s)
}

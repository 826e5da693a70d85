package syntax

import (
	"sort"
	"strings"
)

// Table is the ordered set of lexical rules for one language. Tables are
// immutable after construction and safe to share across concurrent scans.
type Table struct {
	// Name is the canonical language name, e.g. "python".
	Name string
	// Aliases are alternate names and file extensions resolved by Lookup.
	Aliases []string

	// Keywords and Types are matched as whole words only.
	Keywords map[string]bool
	Types    map[string]bool

	// LineComment opens a comment running to end of line. Empty disables.
	LineComment string
	// BlockComment describes a delimited comment. Nil disables.
	BlockComment *BlockComment

	// Strings lists the quoted-literal forms, checked longest delimiter
	// first so a triple quote wins over a single one.
	Strings []StringRule

	// StringPrefixes maps lowercase letter prefixes (e.g. "r", "f", "rb")
	// to the flags they add to an immediately following quoted literal.
	StringPrefixes map[string]PrefixFlags

	// Escape is the escape-introducer byte inside non-raw strings.
	// Zero disables escape scanning.
	Escape byte

	// InterpOpen and InterpClose delimit interpolated expressions inside
	// formatted strings, e.g. "{"/"}" or "${"/"}".
	InterpOpen  string
	InterpClose string

	// Regex describes a regex literal form. Nil disables.
	Regex *RegexRule

	// Operators is the punctuation set, matched longest first.
	Operators []string
}

// BlockComment is a delimited comment form. Nested enables depth tracking
// for languages whose block comments nest.
type BlockComment struct {
	Open   string
	Close  string
	Nested bool
}

// StringRule is one quoted-literal form. The delimiter closes what it opens.
type StringRule struct {
	Delim string
	// Raw disables escape processing inside the literal.
	Raw bool
	// Formatted enables interpolation scanning inside the literal.
	Formatted bool
	// Multiline lets the literal span line breaks. Literals that cannot
	// are closed unterminated at the line break instead.
	Multiline bool
}

// PrefixFlags are the flags a string prefix adds to the quoted literal it
// binds to. A raw prefix on a formatted rule keeps both behaviors.
type PrefixFlags struct {
	Raw       bool
	Formatted bool
}

// RegexRule is a delimited regex-literal form. Delim both opens and closes
// the literal; a delimiter inside a [...] character class does not close it.
type RegexRule struct {
	Delim byte
}

// newTable normalizes rule ordering: operators longest first and string
// delimiters longest first, declaration order preserved on ties.
func newTable(t Table) *Table {
	sort.SliceStable(t.Operators, func(i, j int) bool {
		return len(t.Operators[i]) > len(t.Operators[j])
	})
	sort.SliceStable(t.Strings, func(i, j int) bool {
		return len(t.Strings[i].Delim) > len(t.Strings[j].Delim)
	})
	return &t
}

// matchString returns the string rule whose delimiter opens at the given
// text, if any. Rules are pre-sorted so the longest delimiter wins.
func (t *Table) matchString(rest string) (StringRule, bool) {
	for _, r := range t.Strings {
		if strings.HasPrefix(rest, r.Delim) {
			return r, true
		}
	}
	return StringRule{}, false
}

// matchOperator returns the longest operator matching at the given text.
func (t *Table) matchOperator(rest string) (string, bool) {
	for _, op := range t.Operators {
		if strings.HasPrefix(rest, op) {
			return op, true
		}
	}
	return "", false
}

// prefixFlags resolves a candidate string prefix, case-insensitively.
func (t *Table) prefixFlags(word string) (PrefixFlags, bool) {
	if len(t.StringPrefixes) == 0 {
		return PrefixFlags{}, false
	}
	f, ok := t.StringPrefixes[strings.ToLower(word)]
	return f, ok
}

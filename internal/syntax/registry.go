package syntax

import (
	"path/filepath"
	"strings"
)

// tables lists the built-in rule tables in display order.
var tables = []*Table{Python, JavaScript, Go, Rust, Shell}

// Languages returns the names of the built-in tables in display order.
func Languages() []string {
	names := make([]string, len(tables))
	for i, t := range tables {
		names[i] = t.Name
	}
	return names
}

// Lookup resolves a language name, alias, or file extension to its rule
// table, case-insensitively.
func Lookup(name string) (*Table, bool) {
	name = strings.ToLower(strings.TrimPrefix(name, "."))
	for _, t := range tables {
		if t.Name == name {
			return t, true
		}
		for _, a := range t.Aliases {
			if a == name {
				return t, true
			}
		}
	}
	return nil, false
}

// LookupPath resolves a file path to a rule table by its extension.
func LookupPath(path string) (*Table, bool) {
	ext := filepath.Ext(path)
	if ext == "" {
		return nil, false
	}
	return Lookup(ext)
}

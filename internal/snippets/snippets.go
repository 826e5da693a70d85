// Package snippets embeds the sample sources shown by the preview gallery.
package snippets

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/glintlabs/glint/internal/syntax"
)

//go:embed samples/sample.py samples/sample.js samples/sample.go samples/sample.rs samples/sample.sh
var files embed.FS

// Snippet is one entry in the preview gallery.
type Snippet struct {
	Name     string // display name shown in the sidebar
	Language string // rule table name, resolvable via syntax.Lookup
	FileName string
	Code     string
}

var gallery []Snippet

func init() {
	entries := []struct {
		name string
		lang string
		file string
	}{
		{"Python", "python", "sample.py"},
		{"JavaScript", "javascript", "sample.js"},
		{"Go", "go", "sample.go"},
		{"Rust", "rust", "sample.rs"},
		{"Shell", "shell", "sample.sh"},
	}
	for _, e := range entries {
		code, err := files.ReadFile("samples/" + e.file)
		if err != nil {
			panic(fmt.Sprintf("snippets: missing embedded sample %s: %v", e.file, err))
		}
		gallery = append(gallery, Snippet{
			Name:     e.name,
			Language: e.lang,
			FileName: e.file,
			Code:     string(code),
		})
	}
}

// All returns the built-in snippets in gallery order.
func All() []Snippet {
	out := make([]Snippet, len(gallery))
	copy(out, gallery)
	return out
}

// ByName looks up a built-in snippet by display name, language name, or
// file name. Matching is case-insensitive.
func ByName(name string) (Snippet, bool) {
	needle := strings.ToLower(name)
	for _, s := range gallery {
		if strings.ToLower(s.Name) == needle || s.Language == needle || s.FileName == needle {
			return s, true
		}
	}
	return Snippet{}, false
}

// FromFile loads a snippet from disk, inferring the language from the
// file extension. Unrecognized extensions fall back to the first
// registered language so the preview always has something to show.
func FromFile(path string) (Snippet, error) {
	code, err := os.ReadFile(path)
	if err != nil {
		return Snippet{}, fmt.Errorf("reading snippet %s: %w", path, err)
	}
	lang := syntax.Languages()[0]
	if table, ok := syntax.LookupPath(path); ok {
		lang = table.Name
	}
	return Snippet{
		Name:     filepath.Base(path),
		Language: lang,
		FileName: filepath.Base(path),
		Code:     string(code),
	}, nil
}

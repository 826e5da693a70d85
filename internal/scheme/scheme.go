// Package scheme loads Base16 and Base24 color schemes in the tinted-theming
// YAML format. A validated scheme always answers for all 24 slots: missing
// base24 colors fall back to their base16 counterparts.
package scheme

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Scheme is a Base16/Base24 palette plus its metadata.
type Scheme struct {
	System  string            `yaml:"system"`
	Name    string            `yaml:"name"`
	Author  string            `yaml:"author"`
	Variant string            `yaml:"variant"`
	Palette map[string]string `yaml:"palette"`
}

// required is the base16 core every scheme must define.
var required = []string{
	"base00", "base01", "base02", "base03",
	"base04", "base05", "base06", "base07",
	"base08", "base09", "base0A", "base0B",
	"base0C", "base0D", "base0E", "base0F",
}

// base24Fallback maps the extended slots to the base16 slot that stands in
// when a scheme defines only sixteen colors.
var base24Fallback = map[string]string{
	"base10": "base00",
	"base11": "base00",
	"base12": "base08",
	"base13": "base0A",
	"base14": "base0B",
	"base15": "base0C",
	"base16": "base0D",
	"base17": "base0E",
}

// Parse decodes and validates a scheme from YAML.
func Parse(data []byte) (*Scheme, error) {
	var s Scheme
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("decoding scheme: %w", err)
	}
	if err := s.validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Load reads and validates a scheme file.
func Load(path string) (*Scheme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scheme: %w", err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return s, nil
}

// LoadDir loads every .yaml scheme in dir, sorted by name. Files that fail
// to parse are skipped and reported in the returned error list.
func LoadDir(dir string) ([]*Scheme, []error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, []error{fmt.Errorf("reading scheme dir: %w", err)}
	}
	var schemes []*Scheme
	var errs []error
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".yaml") {
			continue
		}
		s, err := Load(filepath.Join(dir, e.Name()))
		if err != nil {
			errs = append(errs, err)
			continue
		}
		schemes = append(schemes, s)
	}
	sort.Slice(schemes, func(i, j int) bool { return schemes[i].Name < schemes[j].Name })
	return schemes, errs
}

// validate checks the base16 core is present and every color is hex,
// normalizing values to #rrggbb form.
func (s *Scheme) validate() error {
	if s.Palette == nil {
		return fmt.Errorf("scheme %q: missing palette", s.Name)
	}
	for key, val := range s.Palette {
		hex, err := normalizeHex(val)
		if err != nil {
			return fmt.Errorf("scheme %q: %s: %w", s.Name, key, err)
		}
		s.Palette[key] = hex
	}
	for _, key := range required {
		if _, ok := s.Palette[key]; !ok {
			return fmt.Errorf("scheme %q: missing %s", s.Name, key)
		}
	}
	return nil
}

// Hex returns the normalized #rrggbb value for a palette slot, deriving
// base24 slots from the base16 core when absent. Unknown slots return the
// foreground color so a renderer never sees an empty value.
func (s *Scheme) Hex(key string) string {
	if v, ok := s.Palette[key]; ok {
		return v
	}
	if fb, ok := base24Fallback[key]; ok {
		return s.Palette[fb]
	}
	return s.Palette["base05"]
}

// Dark reports whether the scheme declares a dark variant. Schemes that
// leave the field empty are treated as dark, the common case.
func (s *Scheme) Dark() bool {
	return !strings.EqualFold(s.Variant, "light")
}

// normalizeHex accepts RGB hex with or without a leading # and returns the
// #rrggbb form.
func normalizeHex(v string) (string, error) {
	h := strings.TrimPrefix(strings.TrimSpace(v), "#")
	if len(h) != 6 {
		return "", fmt.Errorf("want 6 hex digits, got %q", v)
	}
	for _, c := range h {
		if !isHex(byte(c)) {
			return "", fmt.Errorf("invalid hex color %q", v)
		}
	}
	return "#" + strings.ToLower(h), nil
}

func isHex(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

package scheme

import (
	_ "embed"
	"fmt"
)

//go:embed schemes/glint-dark.yaml
var darkYAML []byte

//go:embed schemes/glint-light.yaml
var lightYAML []byte

var builtins = map[string]*Scheme{}
var builtinNames []string

func init() {
	for _, data := range [][]byte{darkYAML, lightYAML} {
		s, err := Parse(data)
		if err != nil {
			panic(fmt.Sprintf("embedded scheme invalid: %v", err))
		}
		builtins[s.Name] = s
		builtinNames = append(builtinNames, s.Name)
	}
}

// Default returns the scheme used when nothing is configured.
func Default() *Scheme {
	return builtins["glint-dark"]
}

// Builtin returns a compiled-in scheme by name.
func Builtin(name string) (*Scheme, bool) {
	s, ok := builtins[name]
	return s, ok
}

// Names lists the compiled-in scheme names in registration order.
func Names() []string {
	out := make([]string, len(builtinNames))
	copy(out, builtinNames)
	return out
}

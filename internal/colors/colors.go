// Package colors resolves color attribute values to packed ARGB
// values. Literal hex syntax is tried first, then a named-color table
// (the CSS color keywords) loaded from an embedded YAML file, which
// can be extended from a user-supplied file at startup.
package colors

import (
	_ "embed"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed named_colors.yaml
var namedColorsYAML []byte

var (
	namedOnce sync.Once
	named     map[string]uint32
)

func namedTable() map[string]uint32 {
	namedOnce.Do(func() {
		var raw map[string]string
		if err := yaml.Unmarshal(namedColorsYAML, &raw); err != nil {
			// The embedded table ships with the binary; failing to
			// parse it is a build defect, not a runtime condition.
			panic(fmt.Sprintf("embedded named_colors.yaml is invalid: %v", err))
		}
		named = make(map[string]uint32, len(raw))
		for name, value := range raw {
			argb, ok := ParseLiteral(value)
			if !ok {
				panic(fmt.Sprintf("embedded named_colors.yaml has invalid value %q for %q", value, name))
			}
			named[name] = argb
		}
	})
	return named
}

// Load extends the named-color table with entries from a YAML file
// mapping names to hex literals. Existing names are overridden. It
// must be called during startup, before any concurrent resolution.
func Load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read named colors file %s: %w", path, err)
	}
	var raw map[string]string
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("failed to parse named colors file %s: %w", path, err)
	}
	table := namedTable()
	for name, value := range raw {
		argb, ok := ParseLiteral(value)
		if !ok {
			return fmt.Errorf("invalid color value %q for %q in %s", value, name, path)
		}
		table[name] = argb
	}
	return nil
}

// Resolve parses a color value, trying literal hex syntax first and
// the named-color table second.
func Resolve(value string) (uint32, bool) {
	if argb, ok := ParseLiteral(value); ok {
		return argb, true
	}
	argb, ok := namedTable()[value]
	return argb, ok
}

// ParseLiteral parses the #rgb, #rgba, #rrggbb and #rrggbbaa color
// literal forms into a packed ARGB value. Alpha defaults to 0xff when
// the literal omits it.
func ParseLiteral(s string) (uint32, bool) {
	if !strings.HasPrefix(s, "#") {
		return 0, false
	}
	h := s[1:]
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return 0, false
	}
	nibble := func(shift uint) uint32 {
		// A single hex digit expands by repetition: #f -> 0xff.
		return uint32(v>>shift&0xf) * 0x11
	}
	switch len(h) {
	case 3:
		return 0xff000000 | nibble(8)<<16 | nibble(4)<<8 | nibble(0), true
	case 4:
		return nibble(0)<<24 | nibble(12)<<16 | nibble(8)<<8 | nibble(4), true
	case 6:
		return 0xff000000 | uint32(v), true
	case 8:
		return uint32(v&0xff)<<24 | uint32(v>>8), true
	default:
		return 0, false
	}
}

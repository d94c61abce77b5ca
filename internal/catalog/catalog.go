// Package catalog loads rule presets from YAML files.
//
// A catalog file lists rules in selection order:
//
//	rules:
//	  - name: Classic
//	    turns: RL
//	    start: "#000000"
//	    end: "#AAAAAA"
//
// Colors are six hex digits prefixed by '#' or "0x".
package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"

	"turmites/internal/langton"
)

//go:embed rules.schema.json
var schemaSource string

var compiledSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	return jsonschema.CompileString("rules.schema.json", schemaSource)
})

type file struct {
	Rules []entry `yaml:"rules"`
}

type entry struct {
	Name  string `yaml:"name"`
	Turns string `yaml:"turns"`
	Start string `yaml:"start"`
	End   string `yaml:"end"`
}

// Load reads and validates the catalog at path.
func Load(path string) ([]langton.Preset, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	presets, err := Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return presets, nil
}

// Parse validates a YAML catalog and converts it into presets. Every preset is
// also built once so malformed rules fail here rather than in the engine.
func Parse(raw []byte) ([]langton.Preset, error) {
	if err := validate(raw); err != nil {
		return nil, err
	}
	var f file
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	presets := make([]langton.Preset, 0, len(f.Rules))
	for i, e := range f.Rules {
		start, err := ParseColor(e.Start)
		if err != nil {
			return nil, fmt.Errorf("rule %d start: %w", i, err)
		}
		end, err := ParseColor(e.End)
		if err != nil {
			return nil, fmt.Errorf("rule %d end: %w", i, err)
		}
		presets = append(presets, langton.Preset{Name: e.Name, Turns: e.Turns, Start: start, End: end})
	}
	if _, err := langton.BuildRules(presets); err != nil {
		return nil, err
	}
	return presets, nil
}

func validate(raw []byte) error {
	schema, err := compiledSchema()
	if err != nil {
		return fmt.Errorf("schema: %w", err)
	}
	var doc any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	// Round-trip through JSON so the validator sees JSON value types.
	b, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("invalid catalog: %w", err)
	}
	return nil
}

// ParseColor converts "#RRGGBB" or "0xRRGGBB" into a packed color.
func ParseColor(s string) (uint32, error) {
	hex, ok := strings.CutPrefix(s, "#")
	if !ok {
		hex, ok = strings.CutPrefix(strings.ToLower(s), "0x")
	}
	if !ok || len(hex) != 6 {
		return 0, fmt.Errorf("color %q: want #RRGGBB or 0xRRGGBB", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("color %q: %w", s, err)
	}
	return uint32(v), nil
}

// FormatColor renders a packed color as "#RRGGBB".
func FormatColor(c uint32) string {
	return fmt.Sprintf("#%06X", c&0xFFFFFF)
}

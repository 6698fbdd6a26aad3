package preset

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	textdebug "github.com/glyphlab/go-textdebug"
)

// A preset file is a flat map of attribute names to hex color strings:
//
//	baseline    = "#ff2d55"
//	line_border = "#007aff"
//	line_fill   = "#007aff1a"
//
// (or the YAML equivalent). Attribute names match the DebugOption fields in
// snake_case.
var attributes = map[string]func(*textdebug.DebugOption, *textdebug.Color){
	"baseline":     func(o *textdebug.DebugOption, c *textdebug.Color) { o.Baseline = c },
	"frame_border": func(o *textdebug.DebugOption, c *textdebug.Color) { o.FrameBorder = c },
	"frame_fill":   func(o *textdebug.DebugOption, c *textdebug.Color) { o.FrameFill = c },
	"line_border":  func(o *textdebug.DebugOption, c *textdebug.Color) { o.LineBorder = c },
	"line_fill":    func(o *textdebug.DebugOption, c *textdebug.Color) { o.LineFill = c },
	"line_number":  func(o *textdebug.DebugOption, c *textdebug.Color) { o.LineNumber = c },
	"run_border":   func(o *textdebug.DebugOption, c *textdebug.Color) { o.RunBorder = c },
	"run_fill":     func(o *textdebug.DebugOption, c *textdebug.Color) { o.RunFill = c },
	"run_number":   func(o *textdebug.DebugOption, c *textdebug.Color) { o.RunNumber = c },
	"glyph_border": func(o *textdebug.DebugOption, c *textdebug.Color) { o.GlyphBorder = c },
	"glyph_fill":   func(o *textdebug.DebugOption, c *textdebug.Color) { o.GlyphFill = c },
}

// AttributeNames returns the attribute keys a preset file may use, sorted.
func AttributeNames() []string {
	names := make([]string, 0, len(attributes))
	for name := range attributes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Load reads a preset file, dispatching on the file extension (.toml, .yaml,
// .yml).
func Load(path string) (*textdebug.DebugOption, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("preset: reading %s: %w", path, err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return ParseTOML(data)
	case ".yaml", ".yml":
		return ParseYAML(data)
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(path))
}

// ParseTOML decodes a flat TOML document of attribute = "#hex" pairs.
func ParseTOML(data []byte) (*textdebug.DebugOption, error) {
	var raw map[string]string
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("preset: decoding toml: %w", err)
	}
	return fromMap(raw)
}

// ParseYAML decodes a flat YAML document of attribute: "#hex" pairs.
func ParseYAML(data []byte) (*textdebug.DebugOption, error) {
	var raw map[string]string
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("preset: decoding yaml: %w", err)
	}
	return fromMap(raw)
}

func fromMap(raw map[string]string) (*textdebug.DebugOption, error) {
	opt := &textdebug.DebugOption{}
	for key, value := range raw {
		assign, ok := attributes[key]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownAttribute, key)
		}
		c, err := textdebug.ParseHex(value)
		if err != nil {
			return nil, fmt.Errorf("preset: attribute %q: %w", key, err)
		}
		assign(opt, c.Ptr())
	}
	return opt, nil
}

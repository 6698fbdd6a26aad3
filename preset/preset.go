// Package preset ships ready-made debug overlay palettes and loads custom
// ones from TOML or YAML files.
package preset

import (
	"fmt"
	"sort"

	textdebug "github.com/glyphlab/go-textdebug"
)

// Builtin palettes. Fills are translucent so the text underneath stays
// readable; borders and labels are opaque.
var builtins = map[string]*textdebug.DebugOption{
	"off": {},
	"baselines": {
		Baseline: textdebug.RGB(0xff, 0x2d, 0x55).Ptr(),
	},
	"lines": {
		LineBorder: textdebug.RGB(0x00, 0x7a, 0xff).Ptr(),
		LineFill:   textdebug.RGBA(0x00, 0x7a, 0xff, 0x1a).Ptr(),
		LineNumber: textdebug.RGB(0x00, 0x7a, 0xff).Ptr(),
	},
	"runs": {
		RunBorder: textdebug.RGB(0x34, 0xc7, 0x59).Ptr(),
		RunFill:   textdebug.RGBA(0x34, 0xc7, 0x59, 0x1a).Ptr(),
		RunNumber: textdebug.RGB(0x34, 0xc7, 0x59).Ptr(),
	},
	"glyphs": {
		GlyphBorder: textdebug.RGB(0xff, 0x95, 0x00).Ptr(),
		GlyphFill:   textdebug.RGBA(0xff, 0x95, 0x00, 0x1a).Ptr(),
	},
	"all": {
		Baseline:    textdebug.RGB(0xff, 0x2d, 0x55).Ptr(),
		FrameBorder: textdebug.RGB(0xaf, 0x52, 0xde).Ptr(),
		FrameFill:   textdebug.RGBA(0xaf, 0x52, 0xde, 0x14).Ptr(),
		LineBorder:  textdebug.RGB(0x00, 0x7a, 0xff).Ptr(),
		LineFill:    textdebug.RGBA(0x00, 0x7a, 0xff, 0x14).Ptr(),
		LineNumber:  textdebug.RGB(0x00, 0x7a, 0xff).Ptr(),
		RunBorder:   textdebug.RGB(0x34, 0xc7, 0x59).Ptr(),
		RunFill:     textdebug.RGBA(0x34, 0xc7, 0x59, 0x14).Ptr(),
		RunNumber:   textdebug.RGB(0x34, 0xc7, 0x59).Ptr(),
		GlyphBorder: textdebug.RGB(0xff, 0x95, 0x00).Ptr(),
		GlyphFill:   textdebug.RGBA(0xff, 0x95, 0x00, 0x14).Ptr(),
	},
}

// Names returns the built-in preset names, sorted.
func Names() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Get returns a copy of the named built-in preset, so callers can mutate the
// result freely.
func Get(name string) (*textdebug.DebugOption, error) {
	opt, ok := builtins[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}
	return opt.Clone(), nil
}

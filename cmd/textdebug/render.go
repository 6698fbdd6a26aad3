package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/mattn/go-isatty"

	textdebug "github.com/glyphlab/go-textdebug"
)

type attribute struct {
	name string
	get  func(*textdebug.DebugOption) *textdebug.Color
}

// attribute display order follows drawing order: frame, lines, runs, glyphs.
var displayOrder = []attribute{
	{"baseline", func(o *textdebug.DebugOption) *textdebug.Color { return o.Baseline }},
	{"frame_border", func(o *textdebug.DebugOption) *textdebug.Color { return o.FrameBorder }},
	{"frame_fill", func(o *textdebug.DebugOption) *textdebug.Color { return o.FrameFill }},
	{"line_border", func(o *textdebug.DebugOption) *textdebug.Color { return o.LineBorder }},
	{"line_fill", func(o *textdebug.DebugOption) *textdebug.Color { return o.LineFill }},
	{"line_number", func(o *textdebug.DebugOption) *textdebug.Color { return o.LineNumber }},
	{"run_border", func(o *textdebug.DebugOption) *textdebug.Color { return o.RunBorder }},
	{"run_fill", func(o *textdebug.DebugOption) *textdebug.Color { return o.RunFill }},
	{"run_number", func(o *textdebug.DebugOption) *textdebug.Color { return o.RunNumber }},
	{"glyph_border", func(o *textdebug.DebugOption) *textdebug.Color { return o.GlyphBorder }},
	{"glyph_fill", func(o *textdebug.DebugOption) *textdebug.Color { return o.GlyphFill }},
}

// renderSummary produces the one-line form used by list and validate output,
// e.g. "3 overlays: line_border line_fill line_number".
func renderSummary(opt *textdebug.DebugOption) string {
	var names []string
	for _, a := range displayOrder {
		if c := a.get(opt); c != nil && c.Visible() {
			names = append(names, a.name)
		}
	}
	if len(names) == 0 {
		return "no overlays"
	}
	return fmt.Sprintf("%d overlays: %s", len(names), strings.Join(names, " "))
}

// swatches renders one line per set attribute. Color output is gated on
// stdout being a terminal.
func swatches(opt *textdebug.DebugOption) []string {
	color := isatty.IsTerminal(os.Stdout.Fd())
	var out []string
	for _, a := range displayOrder {
		c := a.get(opt)
		if c == nil {
			continue
		}
		line := fmt.Sprintf("%-13s %s", a.name, c.Hex())
		if color {
			line += " " + swatch(*c)
		}
		out = append(out, line)
	}
	return out
}

func swatch(c textdebug.Color) string {
	bg := lipgloss.Color(opaqueHex(c))
	fg := lipgloss.Color("#000000")
	if labelNeedsLight(c) {
		fg = lipgloss.Color("#ffffff")
	}
	return lipgloss.NewStyle().Background(bg).Foreground(fg).Render(fmt.Sprintf(" %s ", c.Hex()))
}

// opaqueHex drops the alpha channel; terminal cells cannot blend, so the
// swatch shows the base color at full opacity.
func opaqueHex(c textdebug.Color) string {
	return c.WithAlpha(0xff).Hex()
}

// labelNeedsLight picks a readable label color for the swatch background.
func labelNeedsLight(c textdebug.Color) bool {
	base := colorful.Color{
		R: float64(c.R()) / 255,
		G: float64(c.G()) / 255,
		B: float64(c.B()) / 255,
	}
	l, _, _ := base.Lab()
	return l < 0.5
}

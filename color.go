package textdebug

import (
	"fmt"
	"image/color"
	"strconv"
)

// Color is an immutable RGBA value used for overlay drawing. The zero value is
// fully transparent black, which is never considered visible.
type Color struct {
	r, g, b, a uint8
}

// RGB returns an opaque color.
func RGB(r, g, b uint8) Color {
	return Color{r, g, b, 0xff}
}

// RGBA returns a color with an explicit alpha channel. Overlay fills are
// typically translucent so the text underneath stays readable.
func RGBA(r, g, b, a uint8) Color {
	return Color{r, g, b, a}
}

// ParseHex parses "#rgb", "#rrggbb" or "#rrggbbaa" (leading '#' optional,
// hex digits case-insensitive). Three- and six-digit forms are opaque.
func ParseHex(s string) (Color, error) {
	orig := s
	if len(s) > 0 && s[0] == '#' {
		s = s[1:]
	}
	switch len(s) {
	case 3:
		v, err := strconv.ParseUint(s, 16, 16)
		if err != nil {
			return Color{}, fmt.Errorf("textdebug: invalid hex color %q", orig)
		}
		r := uint8(v >> 8 & 0xf)
		g := uint8(v >> 4 & 0xf)
		b := uint8(v & 0xf)
		return Color{r | r<<4, g | g<<4, b | b<<4, 0xff}, nil
	case 6:
		v, err := strconv.ParseUint(s, 16, 32)
		if err != nil {
			return Color{}, fmt.Errorf("textdebug: invalid hex color %q", orig)
		}
		return Color{uint8(v >> 16), uint8(v >> 8), uint8(v), 0xff}, nil
	case 8:
		v, err := strconv.ParseUint(s, 16, 64)
		if err != nil {
			return Color{}, fmt.Errorf("textdebug: invalid hex color %q", orig)
		}
		return Color{uint8(v >> 24), uint8(v >> 16), uint8(v >> 8), uint8(v)}, nil
	}
	return Color{}, fmt.Errorf("textdebug: invalid hex color %q", orig)
}

// R returns the red component.
func (c Color) R() uint8 { return c.r }

// G returns the green component.
func (c Color) G() uint8 { return c.g }

// B returns the blue component.
func (c Color) B() uint8 { return c.b }

// A returns the alpha component.
func (c Color) A() uint8 { return c.a }

// Visible reports whether drawing this color has any effect.
func (c Color) Visible() bool { return c.a > 0 }

// WithAlpha returns a copy of c with the alpha channel replaced.
func (c Color) WithAlpha(a uint8) Color {
	c.a = a
	return c
}

// Hex formats the color as "#rrggbb", or "#rrggbbaa" when the color is not
// fully opaque. ParseHex(c.Hex()) round-trips.
func (c Color) Hex() string {
	if c.a != 0xff {
		return fmt.Sprintf("#%02x%02x%02x%02x", c.r, c.g, c.b, c.a)
	}
	return fmt.Sprintf("#%02x%02x%02x", c.r, c.g, c.b)
}

// NRGBA converts to the standard library's non-premultiplied representation.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.r, G: c.g, B: c.b, A: c.a}
}

// Ptr returns a pointer to a copy of c, for assigning into DebugOption fields.
func (c Color) Ptr() *Color { return &c }

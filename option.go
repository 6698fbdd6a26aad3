package textdebug

// DebugOption selects which layout internals get painted over rendered text and
// in what color. A nil attribute disables that overlay. The zero value draws
// nothing.
//
// DebugOption is a plain value: Clone it before handing it to code that may
// outlive the caller's mutation window. Once installed via SetShared the option
// must be treated as immutable.
type DebugOption struct {
	Baseline    *Color // baseline line color
	FrameBorder *Color // frame path border color
	FrameFill   *Color // frame path fill color
	LineBorder  *Color // line bounds border color
	LineFill    *Color // line bounds fill color
	LineNumber  *Color // line number label color
	RunBorder   *Color // run bounds border color
	RunFill     *Color // run bounds fill color
	RunNumber   *Color // run number label color
	GlyphBorder *Color // glyph bounds border color
	GlyphFill   *Color // glyph bounds fill color
}

// colors returns pointers to the attribute slots, in drawing order.
func (o *DebugOption) colors() []**Color {
	return []**Color{
		&o.Baseline,
		&o.FrameBorder, &o.FrameFill,
		&o.LineBorder, &o.LineFill, &o.LineNumber,
		&o.RunBorder, &o.RunFill, &o.RunNumber,
		&o.GlyphBorder, &o.GlyphFill,
	}
}

// NeedsDraw reports whether at least one overlay color is set and visible.
// Renderers use it to skip the debug pass entirely.
func (o *DebugOption) NeedsDraw() bool {
	if o == nil {
		return false
	}
	for _, c := range o.colors() {
		if *c != nil && (*c).Visible() {
			return true
		}
	}
	return false
}

// Clear sets every overlay color to nil.
func (o *DebugOption) Clear() {
	for _, c := range o.colors() {
		*c = nil
	}
}

// Clone returns an independent copy. Mutating the copy's attributes never
// affects the original.
func (o *DebugOption) Clone() *DebugOption {
	if o == nil {
		return nil
	}
	dup := *o
	for _, c := range dup.colors() {
		if *c != nil {
			v := **c
			*c = &v
		}
	}
	return &dup
}

// Equal reports attribute-wise equality with other. Two nil options are equal.
func (o *DebugOption) Equal(other *DebugOption) bool {
	if o == nil || other == nil {
		return o == other
	}
	a, b := o.colors(), other.colors()
	for i := range a {
		ca, cb := *a[i], *b[i]
		if (ca == nil) != (cb == nil) {
			return false
		}
		if ca != nil && *ca != *cb {
			return false
		}
	}
	return true
}

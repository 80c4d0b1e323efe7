package layout

import "github.com/gogpu/paratext/fonts"

// unknownStr is the string returned for unknown enum values.
const unknownStr = "Unknown"

// Align specifies horizontal alignment within Params.Width.
type Align uint8

const (
	// AlignLeft aligns lines to the left edge (default).
	AlignLeft Align = iota
	// AlignCenter centers each line.
	AlignCenter
	// AlignRight aligns lines to the right edge.
	AlignRight
)

// String returns the string representation of the alignment.
func (a Align) String() string {
	switch a {
	case AlignLeft:
		return "Left"
	case AlignCenter:
		return "Center"
	case AlignRight:
		return "Right"
	default:
		return unknownStr
	}
}

// VAlign specifies vertical alignment within Params.Height.
type VAlign uint8

const (
	// VAlignTop keeps the paragraph at the top (default).
	VAlignTop VAlign = iota
	// VAlignCenter centers the paragraph vertically.
	VAlignCenter
	// VAlignBottom pushes the paragraph to the bottom.
	VAlignBottom
)

// String returns the string representation of the vertical alignment.
func (v VAlign) String() string {
	switch v {
	case VAlignTop:
		return "Top"
	case VAlignCenter:
		return "Center"
	case VAlignBottom:
		return "Bottom"
	default:
		return unknownStr
	}
}

// WrapMode selects what happens to a line that does not fit Params.Width.
// Wrapping never happens when Width is 0.
type WrapMode uint8

const (
	// WrapNone truncates the line (default).
	WrapNone WrapMode = iota
	// WrapEllipses truncates the line and appends "...".
	WrapEllipses
	// WrapChar breaks the line before the first glyph that does not fit.
	WrapChar
	// WrapWord breaks the line at the last whitespace, falling back to
	// WrapChar for words longer than the line.
	WrapWord
)

// String returns the string representation of the wrap mode.
func (m WrapMode) String() string {
	switch m {
	case WrapNone:
		return "None"
	case WrapEllipses:
		return "Ellipses"
	case WrapChar:
		return "Char"
	case WrapWord:
		return "Word"
	default:
		return unknownStr
	}
}

// Params configures a layout. The zero value lays out a single unbounded,
// left-aligned, unwrapped paragraph, and a nil *Params means the same.
type Params struct {
	// Width is the maximum line width in pixels; 0 means unbounded.
	Width float64

	// Height is the maximum paragraph height in pixels; 0 means unbounded.
	// Lines that do not fit are left unconsumed for the next page, except
	// the first line, which is always placed even when it alone is taller
	// than Height. This keeps a pagination loop making progress.
	Height float64

	// Align is the horizontal alignment. It has no effect when Width is 0.
	Align Align

	// VAlign is the vertical alignment. It has no effect when Height is 0.
	VAlign VAlign

	// Indent shifts the first line to the right. Only used with AlignLeft.
	Indent float64

	// CharSpacing is added between consecutive glyphs of a line.
	CharSpacing float64

	// LineSpacing is added between consecutive lines. Negative values
	// tighten lines but never make them overlap.
	LineSpacing float64

	// Wrap is the wrap mode.
	Wrap WrapMode

	// Style is the initial style of the initial font.
	Style fonts.StyleID

	// MaxChars stops the layout after that many characters; 0 means
	// unlimited. Useful for typewriter effects.
	MaxChars int

	// TabStops are the tab positions in pixels from the line start, in
	// ascending order. Past the last stop, or when empty, tabs advance to
	// the next multiple of four space widths.
	TabStops []float64
}

// ParseAlign converts "left", "center" or "right" to an Align.
func ParseAlign(s string) (Align, bool) {
	switch s {
	case "left", "Left", "":
		return AlignLeft, true
	case "center", "Center":
		return AlignCenter, true
	case "right", "Right":
		return AlignRight, true
	default:
		return AlignLeft, false
	}
}

// ParseVAlign converts "top", "center" or "bottom" to a VAlign.
func ParseVAlign(s string) (VAlign, bool) {
	switch s {
	case "top", "Top", "":
		return VAlignTop, true
	case "center", "Center":
		return VAlignCenter, true
	case "bottom", "Bottom":
		return VAlignBottom, true
	default:
		return VAlignTop, false
	}
}

// ParseWrapMode converts "none", "ellipses", "char" or "word" to a WrapMode.
func ParseWrapMode(s string) (WrapMode, bool) {
	switch s {
	case "none", "None", "":
		return WrapNone, true
	case "ellipses", "Ellipses":
		return WrapEllipses, true
	case "char", "Char":
		return WrapChar, true
	case "word", "Word":
		return WrapWord, true
	default:
		return WrapNone, false
	}
}

package fonts

import (
	"image/color"
	"image/draw"
)

// StyleID selects a font-local rendering variant. Style 0 is the default
// style and is valid for every font.
type StyleID uint8

// Style describes how glyphs of one StyleID are painted.
// Styles never change glyph metrics, only appearance.
type Style struct {
	// Color fills the glyph. Nil means opaque white.
	Color color.Color

	// Outline, when non-nil, is painted one pixel around the glyph
	// before the fill.
	Outline color.Color
}

// fill returns the fill color, defaulting to white.
func (s Style) fill() color.Color {
	if s.Color == nil {
		return color.White
	}
	return s.Color
}

// GlyphRef identifies the drawable glyph inside its font.
type GlyphRef struct {
	// Rune is the codepoint the glyph was resolved for. Fonts backed by
	// golang.org/x/image index their glyphs by rune.
	Rune rune

	// GID is the glyph index inside the font file, when known.
	GID uint32
}

// GlyphMetrics holds everything layout needs to place one glyph.
type GlyphMetrics struct {
	// Advance is the horizontal distance to move the pen after the glyph.
	Advance float64

	// Bounds is the visible extent of the glyph relative to the pen
	// position on the baseline. Y grows downward, so MinY is usually
	// negative. Bounds may overshoot the advance box.
	Bounds Rect

	// Ref is the drawable glyph reference.
	Ref GlyphRef
}

// Extents holds the vertical metrics of a font style.
type Extents struct {
	// Ascent is the distance from the baseline to the top of the line (positive).
	Ascent float64

	// Descent is the distance from the baseline to the bottom of the line (positive).
	Descent float64

	// LineGap is the recommended extra gap between lines.
	LineGap float64
}

// LineHeight returns ascent + descent + line gap, the nominal distance
// between consecutive baselines.
func (e Extents) LineHeight() float64 {
	return e.Ascent + e.Descent + e.LineGap
}

// Font is the capability the layout engine needs from a font.
//
// Implementations must be safe for concurrent use: a cached paragraph may
// be rendered while another goroutine lays out text with the same font.
type Font interface {
	// Metrics resolves a codepoint in the given style. It reports false
	// when the font has no glyph for r.
	Metrics(r rune, style StyleID) (GlyphMetrics, bool)

	// Extents returns the vertical metrics of the given style.
	Extents(style StyleID) Extents

	// HasStyle reports whether style is defined by the font.
	// Style 0 is always defined.
	HasStyle(style StyleID) bool
}

// Drawer is implemented by fonts that can paint their own glyphs.
// (x, y) is the pen position on the baseline in destination pixels.
type Drawer interface {
	DrawGlyph(dst draw.Image, ref GlyphRef, style StyleID, x, y float64)
}

// Kerner is implemented by fonts that provide pair kerning.
// Kern returns the adjustment to add between prev and r.
type Kerner interface {
	Kern(prev, r rune, style StyleID) float64
}

// LineHeight returns the line height of style in f.
func LineHeight(f Font, style StyleID) float64 {
	return f.Extents(style).LineHeight()
}

package layout

import (
	"sync"
	"unicode"

	"github.com/gogpu/paratext/fonts"
)

// Glyph is one positioned glyph of a Paragraph.
type Glyph struct {
	// Rune is the source codepoint.
	Rune rune

	// Ref is the drawable glyph inside the font. It may point at a
	// replacement glyph when the font lacks Rune.
	Ref fonts.GlyphRef

	// Font and Style identify the font and style the glyph is drawn with.
	Font  uint8
	Style fonts.StyleID

	// X, Y is the pen position on the baseline, relative to the paragraph
	// origin (the start of the first baseline before vertical alignment).
	X, Y float64

	// Advance is the horizontal advance of the glyph.
	Advance float64

	// Bounds is the visible extent relative to (X, Y).
	Bounds fonts.Rect

	// Start and End delimit the source bytes of the glyph. Glyphs added by
	// the layout itself (ellipsis dots) have Start == End.
	Start, End int
}

// Visible reports whether the glyph paints anything. Whitespace never does.
func (g *Glyph) Visible() bool {
	return !unicode.IsSpace(g.Rune) && !g.Bounds.Empty()
}

// Extent returns the visible extent in paragraph coordinates.
func (g *Glyph) Extent() fonts.Rect {
	return g.Bounds.Add(g.X, g.Y)
}

// Line is a run of glyphs sharing a baseline.
type Line struct {
	// First and Last delimit the line glyphs in Paragraph.Glyphs: [First, Last).
	First, Last int

	// Width is the right edge of the last non-space glyph before alignment,
	// including the first-line indent. Trailing spaces stay in the line but
	// take no width.
	Width float64

	// Ascent, Descent and LineGap are the maxima over the fonts used on the line.
	Ascent, Descent, LineGap float64

	// Baseline is the y coordinate of the baseline.
	Baseline float64

	// Offset is the horizontal alignment shift applied to the line.
	Offset float64

	// ByteStart and ByteEnd delimit the source bytes the line consumed.
	ByteStart, ByteEnd int
}

// Top returns the y coordinate of the top of the line box.
func (l *Line) Top() float64 {
	return l.Baseline - l.Ascent
}

// Bottom returns the y coordinate of the bottom of the line box.
func (l *Line) Bottom() float64 {
	return l.Baseline + l.Descent
}

// Paragraph is a finished layout. It is immutable once Build returns and
// safe to render from several goroutines.
type Paragraph struct {
	// Glyphs holds every line's glyphs contiguously.
	Glyphs []Glyph

	// Lines is the ordered list of lines.
	Lines []Line

	// BBox is the union of the visible extents of all glyphs, relative to
	// the paragraph origin. It is empty when nothing is visible.
	BBox fonts.Rect

	// Consumed is the number of source bytes laid out. Text from this
	// offset on belongs to the next page.
	Consumed int

	// Params are the parameters the paragraph was built with.
	Params Params
}

// Line returns the glyphs of line i.
func (p *Paragraph) Line(i int) []Glyph {
	l := &p.Lines[i]
	return p.Glyphs[l.First:l.Last]
}

// NumLines returns the number of lines.
func (p *Paragraph) NumLines() int {
	return len(p.Lines)
}

// NumGlyphs returns the number of placed glyphs, whitespace included.
func (p *Paragraph) NumGlyphs() int {
	return len(p.Glyphs)
}

// NumChars returns the number of placed glyphs that come from the source
// text, excluding ellipsis dots.
func (p *Paragraph) NumChars() int {
	n := 0
	for i := range p.Glyphs {
		if p.Glyphs[i].End > p.Glyphs[i].Start {
			n++
		}
	}
	return n
}

// Size returns the width of the widest line and the paragraph height.
func (p *Paragraph) Size() (w, h float64) {
	return p.Width(), p.Height()
}

// Height returns the distance from the top of the first line to the
// bottom of the last one. It is 0 for an empty paragraph.
func (p *Paragraph) Height() float64 {
	if len(p.Lines) == 0 {
		return 0
	}
	return p.Lines[len(p.Lines)-1].Bottom() - p.Lines[0].Top()
}

// Width returns the width of the widest line.
func (p *Paragraph) Width() float64 {
	var w float64
	for i := range p.Lines {
		w = max(w, p.Lines[i].Width)
	}
	return w
}

// Release returns the paragraph buffers for reuse by later layouts.
// The paragraph must not be used afterwards.
func (p *Paragraph) Release() {
	if p.Glyphs != nil {
		putGlyphs(p.Glyphs)
	}
	*p = Paragraph{}
}

// glyphPool recycles glyph buffers between layouts that are rendered
// immediately and discarded.
var glyphPool = sync.Pool{
	New: func() any {
		buf := make([]Glyph, 0, 128)
		return &buf
	},
}

func getGlyphs() []Glyph {
	buf := glyphPool.Get().(*[]Glyph)
	return (*buf)[:0]
}

func putGlyphs(buf []Glyph) {
	buf = buf[:0]
	glyphPool.Put(&buf)
}

package fonts

import (
	"image"
	"image/draw"
	"io"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/paratext/internal/cache"
)

// outlineOffsets are the pixel offsets an outline is stamped at.
var outlineOffsets = [...]image.Point{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// faceGlyph is a cached glyph lookup.
type faceGlyph struct {
	metrics GlyphMetrics
	ok      bool
}

// FaceFont adapts any golang.org/x/image/font.Face (bitmap faces such as
// basicfont, or scalable OpenType faces) to the Font capability.
//
// Styles only change colors; every style shares the face metrics.
// FaceFont is safe for concurrent use.
type FaceFont struct {
	// mu serializes access to face: x/image faces reuse internal buffers.
	mu   sync.Mutex
	face font.Face
	name string

	extents Extents
	styles  *styleTable
	glyphs  *cache.LRU[rune, faceGlyph]
}

// NewFaceFont wraps face. The face must stay valid until Close.
func NewFaceFont(face font.Face, opts ...Option) *FaceFont {
	cfg := applyOptions(opts)
	m := face.Metrics()

	ext := Extents{
		Ascent:  fixedToFloat64(m.Ascent),
		Descent: fixedToFloat64(m.Descent),
	}
	if gap := fixedToFloat64(m.Height) - ext.Ascent - ext.Descent; gap > 0 {
		ext.LineGap = gap
	}

	return &FaceFont{
		face:    face,
		extents: ext,
		styles:  newStyleTable(cfg.styles),
		glyphs:  cache.New[rune, faceGlyph](cfg.cacheSize),
	}
}

// Name returns the font family name, if known.
func (f *FaceFont) Name() string {
	return f.name
}

// SetStyle defines (or redefines) style id.
func (f *FaceFont) SetStyle(id StyleID, s Style) {
	f.styles.set(id, s)
}

// Style returns the definition of style id. Undefined ids report false
// and the default style.
func (f *FaceFont) Style(id StyleID) (Style, bool) {
	return f.styles.get(id)
}

// HasStyle implements Font.HasStyle.
func (f *FaceFont) HasStyle(id StyleID) bool {
	return f.styles.has(id)
}

// Extents implements Font.Extents.
func (f *FaceFont) Extents(StyleID) Extents {
	return f.extents
}

// Metrics implements Font.Metrics.
func (f *FaceFont) Metrics(r rune, _ StyleID) (GlyphMetrics, bool) {
	g := f.glyphs.GetOrCreate(r, func() faceGlyph {
		return f.measure(r)
	})
	return g.metrics, g.ok
}

func (f *FaceFont) measure(r rune) faceGlyph {
	f.mu.Lock()
	bounds, advance, ok := f.face.GlyphBounds(r)
	f.mu.Unlock()
	if !ok {
		return faceGlyph{}
	}

	return faceGlyph{
		metrics: GlyphMetrics{
			Advance: fixedToFloat64(advance),
			Bounds: Rect{
				MinX: fixedToFloat64(bounds.Min.X),
				MinY: fixedToFloat64(bounds.Min.Y),
				MaxX: fixedToFloat64(bounds.Max.X),
				MaxY: fixedToFloat64(bounds.Max.Y),
			},
			Ref: GlyphRef{Rune: r},
		},
		ok: true,
	}
}

// Kern implements Kerner.
func (f *FaceFont) Kern(prev, r rune, _ StyleID) float64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return fixedToFloat64(f.face.Kern(prev, r))
}

// DrawGlyph implements Drawer.
func (f *FaceFont) DrawGlyph(dst draw.Image, ref GlyphRef, style StyleID, x, y float64) {
	st, _ := f.styles.get(style)
	dot := fixed.Point26_6{X: floatToFixed(x), Y: floatToFixed(y)}

	// The mask returned by the face may be reused by the next call,
	// so compositing happens under the lock.
	f.mu.Lock()
	defer f.mu.Unlock()

	dr, mask, maskp, _, _ := f.face.Glyph(dot, ref.Rune)
	if mask == nil || dr.Empty() {
		return
	}
	if st.Outline != nil {
		src := image.NewUniform(st.Outline)
		for _, off := range outlineOffsets {
			draw.DrawMask(dst, dr.Add(off), src, image.Point{}, mask, maskp, draw.Over)
		}
	}
	draw.DrawMask(dst, dr, image.NewUniform(st.fill()), image.Point{}, mask, maskp, draw.Over)
}

// CacheStats reports the glyph metrics cache counters.
func (f *FaceFont) CacheStats() cache.Stats {
	return f.glyphs.Stats()
}

// Close releases the underlying face if it holds resources.
func (f *FaceFont) Close() error {
	f.glyphs.Clear()
	if c, ok := f.face.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// fixedToFloat64 converts fixed.Int26_6 to float64.
func fixedToFloat64(x fixed.Int26_6) float64 {
	return float64(x) / 64.0
}

// floatToFixed converts a pixel coordinate to fixed.Int26_6.
func floatToFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}

package fonts

import (
	"bytes"
	"fmt"
	"sync"

	gotext "github.com/go-text/typesetting/font"

	"github.com/gogpu/paratext/internal/cache"
)

// GoTextFont measures glyphs with go-text/typesetting, which reads metrics
// straight from the OpenType tables (hmtx, glyf/CFF extents, hhea/OS2).
//
// GoTextFont does not rasterize: it is meant for measuring and paginating
// text, for example on a server that only needs line breaks and bounding
// boxes. Pair it with a FaceFont over the same file to draw.
//
// GoTextFont is safe for concurrent use.
type GoTextFont struct {
	// mu guards face; go-text faces keep mutable caches.
	mu    sync.Mutex
	face  *gotext.Face
	scale float64

	extents Extents
	styles  *styleTable
	glyphs  *cache.LRU[rune, faceGlyph]
}

// ParseGoText parses TTF/OTF data at size points.
func ParseGoText(data []byte, size float64, opts ...Option) (*GoTextFont, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}
	if size <= 0 {
		return nil, ErrInvalidSize
	}
	cfg := applyOptions(opts)

	face, err := gotext.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("fonts: failed to parse font: %w", err)
	}
	upem := face.Upem()
	if upem == 0 {
		return nil, fmt.Errorf("fonts: font reports zero units per em")
	}

	f := &GoTextFont{
		face:   face,
		scale:  size * cfg.dpi / 72 / float64(upem),
		styles: newStyleTable(cfg.styles),
		glyphs: cache.New[rune, faceGlyph](cfg.cacheSize),
	}
	if fe, ok := face.FontHExtents(); ok {
		f.extents = Extents{
			Ascent:  float64(fe.Ascender) * f.scale,
			Descent: -float64(fe.Descender) * f.scale,
			LineGap: max(0, float64(fe.LineGap)*f.scale),
		}
	}
	return f, nil
}

// SetStyle defines (or redefines) style id.
func (f *GoTextFont) SetStyle(id StyleID, s Style) {
	f.styles.set(id, s)
}

// HasStyle implements Font.HasStyle.
func (f *GoTextFont) HasStyle(id StyleID) bool {
	return f.styles.has(id)
}

// Extents implements Font.Extents.
func (f *GoTextFont) Extents(StyleID) Extents {
	return f.extents
}

// Metrics implements Font.Metrics.
func (f *GoTextFont) Metrics(r rune, _ StyleID) (GlyphMetrics, bool) {
	g := f.glyphs.GetOrCreate(r, func() faceGlyph {
		return f.measure(r)
	})
	return g.metrics, g.ok
}

func (f *GoTextFont) measure(r rune) faceGlyph {
	f.mu.Lock()
	defer f.mu.Unlock()

	gid, ok := f.face.NominalGlyph(r)
	if !ok {
		return faceGlyph{}
	}
	m := GlyphMetrics{
		Advance: float64(f.face.HorizontalAdvance(gid)) * f.scale,
		Ref:     GlyphRef{Rune: r, GID: uint32(gid)},
	}
	// Extents use y-up font units: YBearing is the top, Height is negative.
	if ext, ok := f.face.GlyphExtents(gid); ok {
		m.Bounds = Rect{
			MinX: float64(ext.XBearing) * f.scale,
			MinY: -float64(ext.YBearing) * f.scale,
			MaxX: float64(ext.XBearing+ext.Width) * f.scale,
			MaxY: -float64(ext.YBearing+ext.Height) * f.scale,
		}
	}
	return faceGlyph{metrics: m, ok: true}
}

package fonts

import (
	"bytes"
	"fmt"

	"seehuhn.de/go/sfnt"
	"seehuhn.de/go/sfnt/cmap"
)

// SFNTFont measures glyphs with seehuhn.de/go/sfnt. Widths and glyph boxes
// are read once at parse time, so Metrics needs no lock and no cache.
//
// Like GoTextFont it does not rasterize. It implements no Kerner.
type SFNTFont struct {
	info   *sfnt.Font
	cmap   cmap.Subtable
	scale  float64
	bboxes []glyphBox

	extents Extents
	styles  *styleTable
}

// glyphBox is a glyph bounding box in font units, y up.
type glyphBox struct {
	llx, lly, urx, ury float64
}

// ParseSFNT parses TTF/OTF data at size points.
func ParseSFNT(data []byte, size float64, opts ...Option) (*SFNTFont, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}
	if size <= 0 {
		return nil, ErrInvalidSize
	}
	cfg := applyOptions(opts)

	info, err := sfnt.Read(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("fonts: failed to parse font: %w", err)
	}
	if info.UnitsPerEm == 0 {
		return nil, fmt.Errorf("fonts: font reports zero units per em")
	}
	sub, err := info.CMapTable.GetBest()
	if err != nil {
		return nil, fmt.Errorf("fonts: no usable cmap: %w", err)
	}

	f := &SFNTFont{
		info:   info,
		cmap:   sub,
		scale:  size * cfg.dpi / 72 / float64(info.UnitsPerEm),
		styles: newStyleTable(cfg.styles),
	}
	f.extents = Extents{
		Ascent:  float64(info.Ascent) * f.scale,
		Descent: -float64(info.Descent) * f.scale,
		LineGap: max(0, float64(info.LineGap)*f.scale),
	}
	for _, b := range info.GlyphBBoxes() {
		f.bboxes = append(f.bboxes, glyphBox{
			llx: float64(b.LLx), lly: float64(b.LLy),
			urx: float64(b.URx), ury: float64(b.URy),
		})
	}
	return f, nil
}

// Name returns the family name recorded in the font.
func (f *SFNTFont) Name() string {
	return f.info.FamilyName
}

// SetStyle defines (or redefines) style id.
func (f *SFNTFont) SetStyle(id StyleID, s Style) {
	f.styles.set(id, s)
}

// HasStyle implements Font.HasStyle.
func (f *SFNTFont) HasStyle(id StyleID) bool {
	return f.styles.has(id)
}

// Extents implements Font.Extents.
func (f *SFNTFont) Extents(StyleID) Extents {
	return f.extents
}

// Metrics implements Font.Metrics.
func (f *SFNTFont) Metrics(r rune, _ StyleID) (GlyphMetrics, bool) {
	gid := f.cmap.Lookup(r)
	if gid == 0 {
		return GlyphMetrics{}, false
	}
	m := GlyphMetrics{
		Advance: float64(f.info.GlyphWidth(gid)) * f.scale,
		Ref:     GlyphRef{Rune: r, GID: uint32(gid)},
	}
	if int(gid) < len(f.bboxes) {
		b := f.bboxes[gid]
		m.Bounds = Rect{
			MinX: b.llx * f.scale,
			MinY: -b.ury * f.scale,
			MaxX: b.urx * f.scale,
			MaxY: -b.lly * f.scale,
		}
	}
	return m, true
}

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"github.com/gogpu/paratext/fonts"
	"github.com/gogpu/paratext/layout"
)

// Renderer is the drawing target of a paragraph.
type Renderer interface {
	// DrawGlyph paints g using font f with the pen at (x, y) in target
	// coordinates. g.X and g.Y are already folded into x and y.
	DrawGlyph(f fonts.Font, g *layout.Glyph, x, y float64)
}

// RendererFunc adapts a function to the Renderer interface.
type RendererFunc func(f fonts.Font, g *layout.Glyph, x, y float64)

// DrawGlyph calls fn(f, g, x, y).
func (fn RendererFunc) DrawGlyph(f fonts.Font, g *layout.Glyph, x, y float64) {
	fn(f, g, x, y)
}

// Paragraph draws every visible glyph of p with the paragraph origin (the
// start of the first baseline) at (x0, y0). Fonts are resolved through src
// at draw time; glyphs whose font is no longer known are skipped.
// It returns the number of glyphs drawn.
func Paragraph(r Renderer, src layout.Fonts, p *layout.Paragraph, x0, y0 float64) int {
	var (
		lastID   uint8
		lastFont fonts.Font
		resolved bool
		drawn    int
	)
	for i := range p.Glyphs {
		g := &p.Glyphs[i]
		if !g.Visible() {
			continue
		}
		if !resolved || g.Font != lastID {
			lastID = g.Font
			lastFont, resolved = src.Lookup(g.Font)
			if !resolved {
				continue
			}
		}
		r.DrawGlyph(lastFont, g, x0+g.X, y0+g.Y)
		drawn++
	}
	return drawn
}

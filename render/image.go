// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"image/draw"
	"sync"

	"github.com/gogpu/paratext/fonts"
	"github.com/gogpu/paratext/internal/logging"
	"github.com/gogpu/paratext/layout"
)

// Image renders glyphs into a draw.Image. Fonts must implement
// fonts.Drawer; glyphs of other fonts are skipped with a warning logged
// once per font id.
//
// Image is safe for concurrent use as long as the target image is.
type Image struct {
	mu     sync.Mutex
	dst    draw.Image
	warned [256]bool
}

// NewImage returns a renderer that draws into dst.
func NewImage(dst draw.Image) *Image {
	return &Image{dst: dst}
}

// Target returns the current target image.
func (r *Image) Target() draw.Image {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.dst
}

// SetTarget replaces the target image.
func (r *Image) SetTarget(dst draw.Image) {
	r.mu.Lock()
	r.dst = dst
	r.mu.Unlock()
}

// DrawGlyph implements Renderer.
func (r *Image) DrawGlyph(f fonts.Font, g *layout.Glyph, x, y float64) {
	dst := r.Target()
	if dst == nil {
		return
	}
	d, ok := f.(fonts.Drawer)
	if !ok {
		r.warnOnce(g.Font)
		return
	}
	d.DrawGlyph(dst, g.Ref, g.Style, x, y)
}

func (r *Image) warnOnce(id uint8) {
	r.mu.Lock()
	seen := r.warned[id]
	r.warned[id] = true
	r.mu.Unlock()
	if !seen {
		logging.Logger().Warn("render: font cannot draw glyphs, skipping", "font", id)
	}
}

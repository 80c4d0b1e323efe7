// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"bytes"
	"image"
	"image/color"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/gogpu/paratext/fonts"
	"github.com/gogpu/paratext/internal/logging"
	"github.com/gogpu/paratext/layout"
	"github.com/gogpu/paratext/registry"
)

// metricsOnly is a font without a Drawer.
type metricsOnly struct{ fonts.Font }

func newRegistry(t *testing.T) *registry.Registry {
	t.Helper()
	reg := registry.New()
	reg.Register(0, fonts.Basic())
	return reg
}

func TestParagraph_Recorder(t *testing.T) {
	reg := newRegistry(t)
	p, _ := layout.Build(reg, nil, 0, []byte("a b\nc"))

	rec := NewRecorder()
	n := Paragraph(rec, reg, p, 10, 20)
	if n != 3 {
		t.Errorf("drawn = %d, want 3 (spaces skipped)", n)
	}

	want := []Command{
		{Font: 0, Rune: 'a', Ref: fonts.GlyphRef{Rune: 'a'}, X: 10, Y: 20},
		{Font: 0, Rune: 'b', Ref: fonts.GlyphRef{Rune: 'b'}, X: 24, Y: 20},
		{Font: 0, Rune: 'c', Ref: fonts.GlyphRef{Rune: 'c'}, X: 10, Y: 33},
	}
	if diff := cmp.Diff(want, rec.Finish().Commands()); diff != "" {
		t.Errorf("commands mismatch (-want +got):\n%s", diff)
	}
	if rec.Len() != 0 {
		t.Errorf("Len() after Finish = %d, want 0", rec.Len())
	}
}

func TestParagraph_SkipsUnregisteredFonts(t *testing.T) {
	reg := newRegistry(t)
	reg.Register(1, fonts.Basic())
	p, _ := layout.Build(reg, nil, 0, []byte("a$01b$00c"))
	reg.Unregister(1)

	rec := NewRecorder()
	if n := Paragraph(rec, reg, p, 0, 0); n != 2 {
		t.Errorf("drawn = %d, want 2", n)
	}
}

func TestRecording_Playback(t *testing.T) {
	reg := newRegistry(t)
	p, _ := layout.Build(reg, nil, 0, []byte("Hi!"))

	first := NewRecorder()
	Paragraph(first, reg, p, 5, 5)
	recording := first.Finish()

	second := NewRecorder()
	if n := recording.Playback(second, reg); n != 3 {
		t.Errorf("Playback replayed %d, want 3", n)
	}
	if diff := cmp.Diff(recording.Commands(), second.Finish().Commands()); diff != "" {
		t.Errorf("replayed commands differ (-want +got):\n%s", diff)
	}

	empty := registry.New()
	if n := recording.Playback(NewRecorder(), empty); n != 0 {
		t.Errorf("Playback with no fonts replayed %d, want 0", n)
	}
}

func TestImage_DrawsInsideBBox(t *testing.T) {
	reg := newRegistry(t)
	p, _ := layout.Build(reg, nil, 0, []byte("Hello"))

	dst := image.NewRGBA(image.Rect(0, 0, 60, 30))
	const x0, y0 = 5, 15
	n := Paragraph(NewImage(dst), reg, p, x0, y0)
	if n != 5 {
		t.Fatalf("drawn = %d, want 5", n)
	}

	box := image.Rect(
		int(p.BBox.MinX)+x0, int(p.BBox.MinY)+y0,
		int(p.BBox.MaxX)+x0, int(p.BBox.MaxY)+y0,
	)
	inside, outside := 0, 0
	for y := dst.Rect.Min.Y; y < dst.Rect.Max.Y; y++ {
		for x := dst.Rect.Min.X; x < dst.Rect.Max.X; x++ {
			if dst.RGBAAt(x, y).A == 0 {
				continue
			}
			if image.Pt(x, y).In(box) {
				inside++
			} else {
				outside++
			}
		}
	}
	if inside == 0 {
		t.Error("no pixels drawn inside the bounding box")
	}
	if outside != 0 {
		t.Errorf("%d pixels drawn outside the bounding box %v", outside, box)
	}
}

func TestImage_UsesStyleColor(t *testing.T) {
	red := color.RGBA{R: 255, A: 255}
	reg := registry.New()
	reg.Register(0, fonts.Basic(fonts.WithStyle(1, fonts.Style{Color: red})))
	p, _ := layout.Build(reg, nil, 0, []byte("^01#"))

	dst := image.NewRGBA(image.Rect(0, 0, 20, 20))
	Paragraph(NewImage(dst), reg, p, 2, 14)

	found := false
	for i := 0; i < len(dst.Pix); i += 4 {
		if dst.Pix[i+3] == 0 {
			continue
		}
		found = true
		if dst.Pix[i] == 0 || dst.Pix[i+1] != 0 || dst.Pix[i+2] != 0 {
			t.Fatalf("pixel %v is not red", dst.Pix[i:i+4])
		}
	}
	if !found {
		t.Error("nothing drawn")
	}
}

func TestImage_NonDrawerFontWarnsOnce(t *testing.T) {
	var buf bytes.Buffer
	orig := logging.Logger()
	t.Cleanup(func() { logging.Set(orig) })
	logging.Set(slog.New(slog.NewTextHandler(&buf, nil)))

	reg := registry.New()
	reg.Register(4, metricsOnly{fonts.Basic()})
	p, _ := layout.Build(reg, nil, 4, []byte("abc"))

	dst := image.NewRGBA(image.Rect(0, 0, 40, 20))
	r := NewImage(dst)
	Paragraph(r, reg, p, 0, 13)
	Paragraph(r, reg, p, 0, 13)

	if got := strings.Count(buf.String(), "cannot draw"); got != 1 {
		t.Errorf("warning logged %d times, want 1:\n%s", got, buf.String())
	}
	for _, v := range dst.Pix {
		if v != 0 {
			t.Fatal("a non-drawing font painted pixels")
		}
	}
}

func TestImage_SetTarget(t *testing.T) {
	r := NewImage(nil)
	reg := newRegistry(t)
	p, _ := layout.Build(reg, nil, 0, []byte("x"))

	// A nil target is ignored.
	Paragraph(r, reg, p, 0, 13)

	dst := image.NewRGBA(image.Rect(0, 0, 10, 16))
	r.SetTarget(dst)
	if r.Target() != dst {
		t.Error("Target() did not return the new target")
	}
	Paragraph(r, reg, p, 0, 13)
	painted := false
	for i := 3; i < len(dst.Pix); i += 4 {
		if dst.Pix[i] != 0 {
			painted = true
			break
		}
	}
	if !painted {
		t.Error("nothing drawn after SetTarget")
	}
}

func TestRendererFunc(t *testing.T) {
	var got []rune
	fn := RendererFunc(func(_ fonts.Font, g *layout.Glyph, _, _ float64) {
		got = append(got, g.Rune)
	})
	reg := newRegistry(t)
	p, _ := layout.Build(reg, nil, 0, []byte("ok"))
	Paragraph(fn, reg, p, 0, 0)
	if string(got) != "ok" {
		t.Errorf("got %q, want %q", string(got), "ok")
	}
}

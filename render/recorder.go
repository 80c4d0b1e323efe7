// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"sync"

	"github.com/gogpu/paratext/fonts"
	"github.com/gogpu/paratext/layout"
)

// Command is one recorded glyph draw.
type Command struct {
	Font  uint8
	Rune  rune
	Ref   fonts.GlyphRef
	Style fonts.StyleID
	X, Y  float64
}

// Recorder captures glyph draws instead of painting them.
// It is safe for concurrent use.
type Recorder struct {
	mu       sync.Mutex
	commands []Command
}

// NewRecorder returns an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{commands: make([]Command, 0, 64)}
}

// DrawGlyph implements Renderer.
func (r *Recorder) DrawGlyph(_ fonts.Font, g *layout.Glyph, x, y float64) {
	r.mu.Lock()
	r.commands = append(r.commands, Command{
		Font:  g.Font,
		Rune:  g.Rune,
		Ref:   g.Ref,
		Style: g.Style,
		X:     x,
		Y:     y,
	})
	r.mu.Unlock()
}

// Len returns the number of recorded commands.
func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.commands)
}

// Reset drops all recorded commands.
func (r *Recorder) Reset() {
	r.mu.Lock()
	r.commands = r.commands[:0]
	r.mu.Unlock()
}

// Finish returns an immutable Recording of the commands so far and
// resets the recorder.
func (r *Recorder) Finish() *Recording {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec := &Recording{commands: r.commands}
	r.commands = make([]Command, 0, cap(r.commands))
	return rec
}

// Recording is a finished list of glyph draws.
type Recording struct {
	commands []Command
}

// Commands returns the recorded commands. The slice must not be modified.
func (rec *Recording) Commands() []Command {
	return rec.commands
}

// Playback replays the recording to r, resolving fonts through src.
// Commands whose font is no longer known are skipped.
// It returns the number of glyphs replayed.
func (rec *Recording) Playback(r Renderer, src layout.Fonts) int {
	n := 0
	for _, c := range rec.commands {
		f, ok := src.Lookup(c.Font)
		if !ok {
			continue
		}
		g := layout.Glyph{
			Rune:  c.Rune,
			Ref:   c.Ref,
			Font:  c.Font,
			Style: c.Style,
		}
		r.DrawGlyph(f, &g, c.X, c.Y)
		n++
	}
	return n
}

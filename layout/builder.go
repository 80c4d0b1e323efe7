package layout

import (
	"fmt"
	"math"
	"unicode"
	"unicode/utf8"

	"github.com/gogpu/paratext/escape"
	"github.com/gogpu/paratext/fonts"
	"github.com/gogpu/paratext/internal/logging"
)

// Fonts resolves font ids while laying out. *registry.Registry implements it.
type Fonts interface {
	Lookup(id uint8) (fonts.Font, bool)
}

// tabSpaces is the default tab interval, in space advances.
const tabSpaces = 4

// Build lays out text starting with font fontID and returns the paragraph
// and the number of bytes consumed. A nil params means the zero Params.
//
// The text may contain font and style escape codes (see package escape).
// Build never fails on malformed text; it panics only if fontID is not
// known to src.
func Build(src Fonts, params *Params, fontID uint8, text []byte) (*Paragraph, int) {
	font, ok := src.Lookup(fontID)
	if !ok {
		panic(fmt.Sprintf("layout: font %d is not registered", fontID))
	}

	b := &builder{
		src:       src,
		fontID:    fontID,
		font:      font,
		glyphs:    getGlyphs(),
		lastBreak: -1,
	}
	if params != nil {
		b.p = *params
	}
	b.style = b.validStyle(b.p.Style)

	b.run(text)
	return b.finish()
}

// builder holds the state of one layout. Glyphs of the pending line are
// glyphs[first:]; they get their Y coordinate when the line is committed.
type builder struct {
	src Fonts
	p   Params

	fontID uint8
	font   fonts.Font
	style  fonts.StyleID

	glyphs []Glyph
	ext    []fonts.Extents // parallel to glyphs
	lines  []Line

	first      int  // first glyph of the pending line
	lineStart  int  // first source byte of the pending line
	lastBreak  int  // last breakable space of the pending line, -1 if none
	truncating bool // skipping the rest of an overflowing logical line
	skipSpace  bool // skipping leading spaces after a soft break
	chars      int
	consumed   int
	stopped    bool
}

func (b *builder) run(text []byte) {
	sc := escape.NewScanner(text)
	for !b.stopped {
		tok, ok := sc.Next()
		if !ok {
			return
		}
		b.consumed = tok.End

		switch tok.Kind {
		case escape.SwitchFont:
			b.switchFont(tok.ID)
		case escape.SwitchStyle:
			b.style = b.validStyle(fonts.StyleID(tok.ID))
		default:
			b.codepoint(tok)
		}
	}
}

func (b *builder) switchFont(id uint8) {
	f, ok := b.src.Lookup(id)
	if !ok {
		logging.Logger().Debug("layout: ignoring switch to unregistered font", "font", id)
		return
	}
	b.fontID, b.font, b.style = id, f, 0
}

func (b *builder) validStyle(s fonts.StyleID) fonts.StyleID {
	if b.font.HasStyle(s) {
		return s
	}
	logging.Logger().Debug("layout: unknown style, using style 0", "font", b.fontID, "style", s)
	return 0
}

func (b *builder) codepoint(tok escape.Token) {
	r := tok.Rune
	switch {
	case r == '\n':
		b.hardBreak(tok.End)
		return
	case r == '\r', b.truncating:
		return
	case b.skipSpace && isBreakSpace(r):
		b.lineStart = tok.End
		return
	}
	b.skipSpace = false

	g := Glyph{
		Rune:  r,
		Font:  b.fontID,
		Style: b.style,
		Start: tok.Start,
		End:   tok.End,
	}
	if r != '\t' {
		m, ok := b.metrics(r)
		if !ok {
			return
		}
		g.Ref, g.Advance, g.Bounds = m.Ref, m.Advance, m.Bounds
	}

	if !b.place(g, b.font.Extents(b.style)) {
		return
	}
	b.chars++
	if b.p.MaxChars > 0 && b.chars >= b.p.MaxChars && !b.stopped {
		if b.commit(len(b.glyphs), b.consumed) {
			b.stopped = true
		}
	}
}

// metrics resolves r in the current font, falling back to U+FFFD and then
// '?' for codepoints the font lacks.
func (b *builder) metrics(r rune) (fonts.GlyphMetrics, bool) {
	if m, ok := b.font.Metrics(r, b.style); ok {
		return m, true
	}
	for _, fb := range [...]rune{utf8.RuneError, '?'} {
		if m, ok := b.font.Metrics(fb, b.style); ok {
			logging.Logger().Debug("layout: missing glyph", "rune", r, "font", b.fontID, "fallback", fb)
			return m, true
		}
	}
	logging.Logger().Debug("layout: missing glyph, skipped", "rune", r, "font", b.fontID)
	return fonts.GlyphMetrics{}, false
}

// place appends g to the pending line, wrapping as the params require.
// It reports whether g was placed.
func (b *builder) place(g Glyph, ext fonts.Extents) bool {
	for !b.stopped {
		g.X = b.pen(&g)
		if g.Rune == '\t' {
			g.Advance = b.tabStop(g.X) - g.X
		}

		empty := b.first == len(b.glyphs)
		if b.p.Width <= 0 || g.X+g.Advance <= b.p.Width || (empty && b.p.Wrap >= WrapChar) {
			b.push(g, ext)
			return true
		}

		switch {
		case b.p.Wrap == WrapNone:
			b.truncating = true
			return false
		case b.p.Wrap == WrapEllipses:
			b.ellipsis(g.Start)
			b.truncating = true
			return false
		case isBreakSpace(g.Rune):
			// The space is consumed by the break and placed on neither line.
			if b.softBreak(len(b.glyphs), len(b.glyphs), g.End) {
				b.skipSpace = true
			}
			return false
		case b.p.Wrap == WrapWord && b.lastBreak >= b.first && b.trimSpace(b.lastBreak) > b.first:
			b.softBreak(b.lastBreak, b.lastBreak+1, b.glyphs[b.lastBreak].End)
		default:
			b.softBreak(len(b.glyphs), len(b.glyphs), g.Start)
		}
	}
	return false
}

// pen returns the pen position for g on the pending line.
func (b *builder) pen(g *Glyph) float64 {
	if b.first == len(b.glyphs) {
		if len(b.lines) == 0 && b.p.Align == AlignLeft {
			return b.p.Indent
		}
		return 0
	}
	prev := &b.glyphs[len(b.glyphs)-1]
	x := prev.X + prev.Advance + b.p.CharSpacing
	if prev.Font == g.Font && prev.Style == g.Style && g.Rune != '\t' && prev.Rune != '\t' {
		if k, ok := b.font.(fonts.Kerner); ok {
			x += k.Kern(prev.Ref.Rune, g.Ref.Rune, g.Style)
		}
	}
	return x
}

// tabStop returns the first tab stop after x.
func (b *builder) tabStop(x float64) float64 {
	const eps = 1e-9
	for _, s := range b.p.TabStops {
		if s > x+eps {
			return s
		}
	}
	interval := tabSpaces * b.spaceAdvance()
	if interval <= 0 {
		return x
	}
	return (math.Floor(x/interval+eps) + 1) * interval
}

func (b *builder) spaceAdvance() float64 {
	if m, ok := b.font.Metrics(' ', b.style); ok {
		return m.Advance
	}
	return b.font.Extents(b.style).Ascent / 2
}

func (b *builder) push(g Glyph, ext fonts.Extents) {
	b.glyphs = append(b.glyphs, g)
	b.ext = append(b.ext, ext)
	if isBreakSpace(g.Rune) {
		b.lastBreak = len(b.glyphs) - 1
	}
}

func (b *builder) truncateGlyphs(n int) {
	b.glyphs = b.glyphs[:n]
	b.ext = b.ext[:n]
}

// ellipsis makes room for "..." on the pending line and appends it.
// When even the dots do not fit, as many dots as fit are placed.
func (b *builder) ellipsis(at int) {
	dot, ok := b.font.Metrics('.', b.style)
	if !ok {
		return
	}
	g := Glyph{
		Rune:    '.',
		Ref:     dot.Ref,
		Font:    b.fontID,
		Style:   b.style,
		Advance: dot.Advance,
		Bounds:  dot.Bounds,
		Start:   at,
		End:     at,
	}
	// The dots after the first: their advances, spacing and the '.'/'.' kern.
	tail := 2 * (dot.Advance + b.p.CharSpacing)
	if k, ok := b.font.(fonts.Kerner); ok {
		tail += 2 * k.Kern('.', '.', b.style)
	}
	for b.first < len(b.glyphs) {
		last := &b.glyphs[len(b.glyphs)-1]
		if !isBreakSpace(last.Rune) && b.pen(&g)+dot.Advance+tail <= b.p.Width {
			break
		}
		b.truncateGlyphs(len(b.glyphs) - 1)
	}

	ext := b.font.Extents(b.style)
	for range 3 {
		g.X = b.pen(&g)
		if g.X+g.Advance > b.p.Width {
			return
		}
		b.push(g, ext)
	}
}

// trimSpace returns end moved back over trailing spaces of the pending line.
func (b *builder) trimSpace(end int) int {
	for end > b.first && isBreakSpace(b.glyphs[end-1].Rune) {
		end--
	}
	return end
}

// softBreak commits glyphs[first:end] as a wrapped line and carries
// glyphs[next:] over to the new pending line. byteEnd is the first source
// byte of the new line.
func (b *builder) softBreak(end, next, byteEnd int) bool {
	carried := len(b.glyphs) - next
	end = b.trimSpace(end)
	if !b.commit(end, byteEnd) {
		return false
	}

	copy(b.glyphs[end:], b.glyphs[next:])
	copy(b.ext[end:], b.ext[next:])
	b.truncateGlyphs(end + carried)
	b.startLine(byteEnd)

	if carried > 0 {
		dx := -b.glyphs[end].X
		for i := end; i < len(b.glyphs); i++ {
			b.glyphs[i].X += dx
			if isBreakSpace(b.glyphs[i].Rune) {
				b.lastBreak = i
			}
		}
	}
	return true
}

// hardBreak ends the pending line at a newline. A newline right after a
// soft break that swallowed a space closes nothing: that line is already
// committed.
func (b *builder) hardBreak(byteEnd int) {
	if b.skipSpace && b.first == len(b.glyphs) {
		b.startLine(byteEnd)
		return
	}
	if b.commit(len(b.glyphs), byteEnd) {
		b.startLine(byteEnd)
	}
}

func (b *builder) startLine(byteStart int) {
	b.first = len(b.glyphs)
	b.lineStart = byteStart
	b.lastBreak = -1
	b.truncating = false
	b.skipSpace = false
}

// commit closes glyphs[first:end] as a line. When the line would exceed
// the height bound it is dropped, layout stops and commit returns false.
// The first line is always kept so pagination makes progress.
func (b *builder) commit(end, byteEnd int) bool {
	l := Line{
		First:     b.first,
		Last:      end,
		ByteStart: b.lineStart,
		ByteEnd:   byteEnd,
	}
	if end > b.first {
		// Trailing spaces take no width, whatever ended the line.
		if w := b.trimSpace(end); w > b.first {
			last := &b.glyphs[w-1]
			l.Width = last.X + last.Advance
		}
		for _, e := range b.ext[b.first:end] {
			l.Ascent = max(l.Ascent, e.Ascent)
			l.Descent = max(l.Descent, e.Descent)
			l.LineGap = max(l.LineGap, e.LineGap)
		}
	} else {
		e := b.font.Extents(b.style)
		l.Ascent, l.Descent, l.LineGap = e.Ascent, e.Descent, e.LineGap
	}

	if n := len(b.lines); n > 0 {
		prev := &b.lines[n-1]
		l.Baseline = prev.Baseline + prev.Descent + max(0, prev.LineGap+b.p.LineSpacing) + l.Ascent
		if b.p.Height > 0 && l.Bottom()-b.lines[0].Top() > b.p.Height {
			logging.Logger().Debug("layout: height limit reached",
				"lines", n, "height", b.p.Height, "consumed", b.lineStart)
			b.truncateGlyphs(b.first)
			b.consumed = b.lineStart
			b.stopped = true
			return false
		}
	}

	for i := b.first; i < end; i++ {
		b.glyphs[i].Y = l.Baseline
	}
	b.lines = append(b.lines, l)
	return true
}

func (b *builder) finish() (*Paragraph, int) {
	if !b.stopped && (b.first < len(b.glyphs) || b.truncating) {
		b.commit(len(b.glyphs), b.consumed)
	}
	b.truncateGlyphs(b.lastLineEnd())

	p := &Paragraph{
		Glyphs:   b.glyphs,
		Lines:    b.lines,
		Consumed: b.consumed,
		Params:   b.p,
	}
	alignHorizontal(p)
	alignVertical(p)
	for i := range p.Glyphs {
		if g := &p.Glyphs[i]; g.Visible() {
			p.BBox = p.BBox.Union(g.Extent())
		}
	}
	return p, p.Consumed
}

func (b *builder) lastLineEnd() int {
	if len(b.lines) == 0 {
		return 0
	}
	return b.lines[len(b.lines)-1].Last
}

func alignHorizontal(p *Paragraph) {
	if p.Params.Width <= 0 || p.Params.Align == AlignLeft {
		return
	}
	for i := range p.Lines {
		l := &p.Lines[i]
		slack := p.Params.Width - l.Width
		if p.Params.Align == AlignCenter {
			slack /= 2
		}
		l.Offset = slack
		for j := l.First; j < l.Last; j++ {
			p.Glyphs[j].X += slack
		}
	}
}

func alignVertical(p *Paragraph) {
	if p.Params.Height <= 0 || p.Params.VAlign == VAlignTop || len(p.Lines) == 0 {
		return
	}
	slack := max(0, p.Params.Height-p.Height())
	if p.Params.VAlign == VAlignCenter {
		slack /= 2
	}
	for i := range p.Lines {
		p.Lines[i].Baseline += slack
	}
	for i := range p.Glyphs {
		p.Glyphs[i].Y += slack
	}
}

// isBreakSpace reports whether r is whitespace a line may break at.
// No-break spaces are excluded.
func isBreakSpace(r rune) bool {
	switch r {
	case ' ', '\t':
		return true
	case '\u00a0', '\u2007', '\u202f':
		return false
	}
	return unicode.IsSpace(r)
}

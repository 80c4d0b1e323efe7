// Package layout breaks escape-coded text into positioned glyphs.
//
// Build scans the text (see package escape), resolves every codepoint
// through the current font and style, and produces a Paragraph: lines of
// glyphs positioned relative to the start of the first baseline.
//
//	p, n := layout.Build(reg, &layout.Params{
//		Width: 200,
//		Wrap:  layout.WrapWord,
//	}, 0, text)
//	// text[n:] did not fit and belongs to the next page.
//
// # Wrapping
//
// When Params.Width is bounded, a line that does not fit is handled by
// Params.Wrap. WrapNone and WrapEllipses truncate and skip the rest of the
// logical line; those bytes still count as consumed. WrapChar breaks before
// the overflowing glyph. WrapWord breaks at the last space of the line,
// falling back to WrapChar inside words longer than the line. A glyph
// whose right edge lands exactly on Width fits. A space that would
// overflow is consumed by the break and starts neither line.
//
// # Pagination
//
// When Params.Height is bounded, layout stops before the first line whose
// bottom exceeds the bound and the returned byte count points at the start
// of that line. The first line is always placed, so repeatedly laying out
// text[n:] always makes progress.
package layout

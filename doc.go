// Package paratext lays out and draws multi-font text.
//
// # Overview
//
// paratext turns a UTF-8 byte stream into positioned glyphs inside a box,
// honoring a wrap mode and alignment, and either draws them immediately or
// returns a reusable layout.Paragraph. The text may switch fonts and styles
// inline with escape codes:
//
//	$xx   switch to font xx (two hex digits) and reset the style to 0
//	^xx   switch to style xx of the current font
//	$$    a literal '$'
//	^^    a literal '^'
//
// # Quick Start
//
//	img := image.NewRGBA(image.Rect(0, 0, 320, 240))
//
//	e := paratext.New(paratext.WithRenderer(render.NewImage(img)))
//	e.RegisterFont(0, fonts.Basic())
//	e.RegisterFont(1, fonts.Basic(fonts.WithStyle(1, fonts.Style{Color: color.RGBA{R: 255, A: 255}})))
//
//	e.PrintString(&layout.Params{Width: 300, Wrap: layout.WrapWord}, 0, 10, 20,
//		"Hello, $01^01world$00! This line wraps at word boundaries.")
//
// # Pagination
//
// Print and Layout return the number of bytes consumed. When the text does
// not fit the height bound, print the rest on the next page:
//
//	for len(text) > 0 {
//		n := e.Print(params, 0, x, y, text)
//		text = text[n:]
//		nextPage()
//	}
//
// # Layout Cache
//
// Text printed repeatedly with the same font and parameters, such as a HUD
// redrawn every frame, can skip the layout step:
//
//	e := paratext.New(paratext.WithRenderer(r), paratext.WithLayoutCache(256))
//
// # Architecture
//
// The library is organized into:
//   - escape: the escape code scanner
//   - fonts: the Font capability and concrete fonts
//   - registry: font id bookkeeping
//   - layout: the line breaker and Paragraph
//   - render: drawing targets
//
// # Coordinate System
//
//   - Origin (0,0) at top-left of the target
//   - X increases right
//   - Y increases down
//   - Print and Render position the start of the first baseline
package paratext

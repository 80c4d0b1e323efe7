// Package fonts defines the Font capability consumed by the layout engine
// and provides concrete fonts.
//
// A Font resolves a codepoint in a style to its advance, visible bounds and
// a drawable reference, and reports per-style vertical extents. Styles are
// font-local small integers; style 0 is the default.
//
// Implementations:
//
//   - FaceFont: adapts any golang.org/x/image/font.Face. Use ParseOpenType or
//     LoadOpenType for TTF/OTF files and Basic for the built-in 7x13 face.
//   - GoTextFont: metrics-only font backed by go-text/typesetting.
//   - SFNTFont: metrics-only font backed by seehuhn.de/go/sfnt, with all
//     widths and boxes read up front.
//
// Fonts that can paint themselves implement Drawer; fonts with pair kerning
// implement Kerner.
//
// # Example
//
//	f, err := fonts.ParseOpenType(goregular.TTF, 16,
//	    fonts.WithStyle(1, fonts.Style{Color: color.RGBA{255, 0, 0, 255}}))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer f.Close()
package fonts

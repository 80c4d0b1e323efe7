// Command paratext paginates a text file into PNG pages.
//
// The text may use paratext escape codes. Font 0 is the font given with
// -font (or the built-in 7x13 bitmap font) and defines four styles:
//
//	^00  black
//	^01  red
//	^02  blue
//	^03  white with a black outline
//
// Usage:
//
//	paratext [flags] [file]
//
// With no file, or "-", the text is read from standard input.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"

	"golang.org/x/term"

	"github.com/gogpu/paratext"
	"github.com/gogpu/paratext/fonts"
	"github.com/gogpu/paratext/layout"
	"github.com/gogpu/paratext/render"
)

func main() {
	var (
		fontPath    = flag.String("font", "", "TTF/OTF font file (default: built-in 7x13)")
		size        = flag.Float64("size", 16, "font size in points")
		width       = flag.Int("width", 320, "page width in pixels")
		height      = flag.Int("height", 240, "page height in pixels")
		margin      = flag.Int("margin", 8, "page margin in pixels")
		align       = flag.String("align", "left", "horizontal alignment: left, center, right")
		valign      = flag.String("valign", "top", "vertical alignment: top, center, bottom")
		wrap        = flag.String("wrap", "word", "wrap mode: none, ellipses, char, word")
		indent      = flag.Float64("indent", 0, "first line indent in pixels")
		charSpacing = flag.Float64("char-spacing", 0, "extra pixels between glyphs")
		lineSpacing = flag.Float64("line-spacing", 0, "extra pixels between lines")
		output      = flag.String("output", ".", "output directory")
		prefix      = flag.String("page-prefix", "page", "output file name prefix")
		dryRun      = flag.Bool("dry-run", false, "report pages without rendering")
		measurer    = flag.String("measure", "gotext", "metrics backend for -dry-run: gotext, sfnt")
		verbose     = flag.Bool("verbose", false, "enable debug logging")
	)
	flag.Parse()

	if *verbose {
		paratext.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	text, err := readInput(flag.Arg(0))
	if err != nil {
		log.Fatalf("Failed to read input: %v", err)
	}

	params := &layout.Params{
		Width:       float64(*width - 2*(*margin)),
		Height:      float64(*height - 2*(*margin)),
		Indent:      *indent,
		CharSpacing: *charSpacing,
		LineSpacing: *lineSpacing,
	}
	var ok bool
	if params.Align, ok = layout.ParseAlign(*align); !ok {
		log.Fatalf("Unknown alignment %q", *align)
	}
	if params.VAlign, ok = layout.ParseVAlign(*valign); !ok {
		log.Fatalf("Unknown vertical alignment %q", *valign)
	}
	if params.Wrap, ok = layout.ParseWrapMode(*wrap); !ok {
		log.Fatalf("Unknown wrap mode %q", *wrap)
	}
	if params.Width <= 0 || params.Height <= 0 {
		log.Fatalf("Margin %d leaves no room on a %dx%d page", *margin, *width, *height)
	}

	if *dryRun {
		font, err := measureFont(*fontPath, *measurer, *size)
		if err != nil {
			log.Fatalf("Failed to load font: %v", err)
		}
		e := paratext.New()
		e.RegisterFont(0, font)
		report(os.Stdout, e, params, text)
		return
	}

	font, err := drawFont(*fontPath, *size)
	if err != nil {
		log.Fatalf("Failed to load font: %v", err)
	}
	defer font.Close()

	pages, err := renderPages(font, params, text, *width, *height, *margin, func(page int, img image.Image) error {
		return savePNG(filepath.Join(*output, fmt.Sprintf("%s-%03d.png", *prefix, page)), img)
	})
	if err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	log.Printf("Rendered %d pages (%dx%d) to %s\n", pages, *width, *height, *output)
}

var styles = []fonts.Style{
	{Color: color.Black},
	{Color: color.RGBA{R: 0xd0, A: 0xff}},
	{Color: color.RGBA{B: 0xd0, A: 0xff}},
	{Color: color.White, Outline: color.Black},
}

func styleOptions() []fonts.Option {
	opts := make([]fonts.Option, len(styles))
	for i, s := range styles {
		opts[i] = fonts.WithStyle(fonts.StyleID(i), s)
	}
	return opts
}

func readInput(path string) ([]byte, error) {
	if path == "" || path == "-" {
		if term.IsTerminal(int(os.Stdin.Fd())) {
			log.Println("Reading text from standard input (end with Ctrl-D)")
		}
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

// drawFont loads the font used for rendering.
func drawFont(path string, size float64) (*fonts.FaceFont, error) {
	if path == "" {
		return fonts.Basic(styleOptions()...), nil
	}
	return fonts.LoadOpenType(path, size, styleOptions()...)
}

// measureFont loads a metrics-only font for dry runs with the named
// backend.
func measureFont(path, backend string, size float64) (fonts.Font, error) {
	if path == "" {
		return fonts.Basic(styleOptions()...), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	switch backend {
	case "gotext":
		return fonts.ParseGoText(data, size, styleOptions()...)
	case "sfnt":
		return fonts.ParseSFNT(data, size, styleOptions()...)
	default:
		return nil, fmt.Errorf("unknown metrics backend %q", backend)
	}
}

// renderPages prints text page by page on white images and hands every
// page to save. It returns the number of pages.
func renderPages(font fonts.Font, params *layout.Params, text []byte, w, h, margin int,
	save func(page int, img image.Image) error,
) (int, error) {
	target := render.NewImage(nil)
	e := paratext.New(paratext.WithRenderer(target))
	e.RegisterFont(0, font)

	x0 := float64(margin)
	y0 := float64(margin) + font.Extents(0).Ascent

	page := 0
	for len(text) > 0 {
		page++
		img := image.NewRGBA(image.Rect(0, 0, w, h))
		draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)
		target.SetTarget(img)

		n := e.Print(params, 0, x0, y0, text)
		if err := save(page, img); err != nil {
			return page, err
		}
		if n == 0 {
			break
		}
		text = text[n:]
	}
	return page, nil
}

// report writes the byte range and size of every page.
func report(w io.Writer, e *paratext.Engine, params *layout.Params, text []byte) {
	off := 0
	for page := 1; off < len(text); page++ {
		p, n := e.Layout(params, 0, text[off:])
		pw, ph := p.Size()
		fmt.Fprintf(w, "page %d: bytes [%d,%d) lines=%d size=%.1fx%.1f\n",
			page, off, off+n, p.NumLines(), pw, ph)
		p.Release()
		if n == 0 {
			break
		}
		off += n
	}
}

func savePNG(path string, img image.Image) error {
	// #nosec G304 -- Output path is provided by the user
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

package fonts

import (
	"fmt"
	"os"

	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

// ParseOpenType parses TTF/OTF data and returns a FaceFont rendering it at
// size points. The data is not retained after parsing.
func ParseOpenType(data []byte, size float64, opts ...Option) (*FaceFont, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}
	if size <= 0 {
		return nil, ErrInvalidSize
	}
	cfg := applyOptions(opts)

	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("fonts: failed to parse font: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     cfg.dpi,
		Hinting: cfg.hinting,
	})
	if err != nil {
		return nil, fmt.Errorf("fonts: failed to create face: %w", err)
	}

	ff := NewFaceFont(face, opts...)
	ff.name = familyName(f)
	return ff, nil
}

// LoadOpenType reads a TTF/OTF file and parses it with ParseOpenType.
func LoadOpenType(path string, size float64, opts ...Option) (*FaceFont, error) {
	// #nosec G304 -- Font file path is provided by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("fonts: failed to read font file: %w", err)
	}
	return ParseOpenType(data, size, opts...)
}

// Basic returns a FaceFont over the built-in 7x13 bitmap face. Every glyph
// advances 7 pixels; ascent is 11 and descent 2.
func Basic(opts ...Option) *FaceFont {
	ff := NewFaceFont(basicfont.Face7x13, opts...)
	ff.name = "basic7x13"
	return ff
}

func familyName(f *sfnt.Font) string {
	name, err := f.Name(nil, sfnt.NameIDFamily)
	if err != nil {
		return ""
	}
	return name
}

package fonts

import "errors"

// Sentinel errors for the fonts package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("fonts: empty font data")

	// ErrInvalidSize is returned when a font size is not positive.
	ErrInvalidSize = errors.New("fonts: size must be positive")
)

package fonts

import "golang.org/x/image/font"

// Option configures a font during creation.
type Option func(*config)

// config holds the creation options shared by every font in this package.
type config struct {
	dpi       float64
	hinting   font.Hinting
	cacheSize int
	styles    map[StyleID]Style
}

// defaultConfig returns the default font configuration.
func defaultConfig() config {
	return config{
		dpi:       72,
		hinting:   font.HintingFull,
		cacheSize: 512,
	}
}

func applyOptions(opts []Option) config {
	c := defaultConfig()
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// WithDPI sets the resolution used to convert point sizes to pixels.
// The default is 72, where one point equals one pixel.
func WithDPI(dpi float64) Option {
	return func(c *config) {
		if dpi > 0 {
			c.dpi = dpi
		}
	}
}

// WithHinting sets the hinting mode for OpenType faces.
func WithHinting(h font.Hinting) Option {
	return func(c *config) {
		c.hinting = h
	}
}

// WithCacheSize sets how many glyph metrics the font memoizes.
func WithCacheSize(n int) Option {
	return func(c *config) {
		c.cacheSize = n
	}
}

// WithStyle defines style id at creation time. See [FaceFont.SetStyle].
func WithStyle(id StyleID, s Style) Option {
	return func(c *config) {
		if c.styles == nil {
			c.styles = make(map[StyleID]Style)
		}
		c.styles[id] = s
	}
}

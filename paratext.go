package paratext

import (
	"fmt"
	"sync"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/paratext/fonts"
	"github.com/gogpu/paratext/internal/cache"
	"github.com/gogpu/paratext/layout"
	"github.com/gogpu/paratext/registry"
	"github.com/gogpu/paratext/render"
)

// CacheStats holds the counters of the layout cache.
type CacheStats = cache.Stats

// Engine lays out and draws text with the fonts of its registry.
//
// Layout and rendering are synchronous. An Engine may be used from several
// goroutines as long as the attached renderer allows it; registering fonts
// while another goroutine renders a paragraph that uses them is a caller
// error.
type Engine struct {
	fonts *registry.Registry
	lang  language.Tag

	mu       sync.RWMutex
	renderer render.Renderer

	// layouts is nil unless WithLayoutCache was given.
	layouts *cache.Sharded[string, *layout.Paragraph]
}

// New creates an engine. Without WithRegistry it gets a private, empty
// registry; without WithRenderer, Render draws nothing.
func New(opts ...Option) *Engine {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.registry == nil {
		o.registry = registry.New()
	}
	e := &Engine{
		fonts:    o.registry,
		lang:     o.language,
		renderer: o.renderer,
	}
	if o.layouts > 0 {
		e.layouts = cache.NewSharded[string, *layout.Paragraph](o.layouts, cache.StringHasher)
	}
	return e
}

// Registry returns the font registry of the engine.
func (e *Engine) Registry() *registry.Registry {
	return e.fonts
}

// RegisterFont makes f available under id. It panics if id is already
// registered or f is nil.
func (e *Engine) RegisterFont(id uint8, f fonts.Font) {
	e.fonts.Register(id, f)
	e.ClearLayoutCache()
}

// UnregisterFont removes the font registered under id, if any.
func (e *Engine) UnregisterFont(id uint8) {
	e.fonts.Unregister(id)
	e.ClearLayoutCache()
}

// ClearLayoutCache drops every paragraph kept by WithLayoutCache.
func (e *Engine) ClearLayoutCache() {
	if e.layouts != nil {
		e.layouts.Clear()
	}
}

// LayoutCacheStats reports the layout cache counters. All zero when the
// cache is disabled.
func (e *Engine) LayoutCacheStats() CacheStats {
	if e.layouts == nil {
		return CacheStats{}
	}
	return e.layouts.Stats()
}

// Font returns the font registered under id.
func (e *Engine) Font(id uint8) (fonts.Font, bool) {
	return e.fonts.Lookup(id)
}

// Renderer returns the attached renderer, or nil.
func (e *Engine) Renderer() render.Renderer {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.renderer
}

// SetRenderer attaches r as the drawing target. Nil detaches the current one.
func (e *Engine) SetRenderer(r render.Renderer) {
	e.mu.Lock()
	e.renderer = r
	e.mu.Unlock()
}

// Layout lays out text starting with font fontID and returns the paragraph
// and the number of bytes consumed. A nil params uses the defaults.
//
// Layout panics if fontID is not registered. Malformed text never fails.
func (e *Engine) Layout(params *layout.Params, fontID uint8, text []byte) (*layout.Paragraph, int) {
	if _, ok := e.fonts.Lookup(fontID); !ok {
		panic(fmt.Sprintf("paratext: font %d is not registered", fontID))
	}
	return layout.Build(e.fonts, params, fontID, text)
}

// Render draws p with the start of its first baseline at (x0, y0).
// It returns the number of glyphs drawn.
func (e *Engine) Render(p *layout.Paragraph, x0, y0 float64) int {
	r := e.Renderer()
	if r == nil {
		Logger().Debug("paratext: no renderer attached, nothing drawn")
		return 0
	}
	return render.Paragraph(r, e.fonts, p, x0, y0)
}

// Print lays out text, draws it at (x0, y0) and discards the layout.
// It returns the number of bytes consumed, so that text[n:] can be printed
// on the next page.
//
// With WithLayoutCache, a paragraph already laid out for the same font,
// parameters and text is drawn again without a new layout.
func (e *Engine) Print(params *layout.Params, fontID uint8, x0, y0 float64, text []byte) int {
	if e.layouts != nil {
		p := e.cachedLayout(params, fontID, text)
		e.Render(p, x0, y0)
		return p.Consumed
	}
	p, n := e.Layout(params, fontID, text)
	e.Render(p, x0, y0)
	p.Release()
	return n
}

// cachedLayout returns the shared paragraph for the inputs. It is never
// released, since other callers may be drawing it.
func (e *Engine) cachedLayout(params *layout.Params, fontID uint8, text []byte) *layout.Paragraph {
	if _, ok := e.fonts.Lookup(fontID); !ok {
		panic(fmt.Sprintf("paratext: font %d is not registered", fontID))
	}
	return e.layouts.GetOrCreate(layoutKey(params, fontID, text), func() *layout.Paragraph {
		p, _ := layout.Build(e.fonts, params, fontID, text)
		return p
	})
}

func layoutKey(params *layout.Params, fontID uint8, text []byte) string {
	var p layout.Params
	if params != nil {
		p = *params
	}
	return fmt.Sprintf("%d\x00%+v\x00%s", fontID, p, text)
}

// PrintString is like Print but takes a string.
func (e *Engine) PrintString(params *layout.Params, fontID uint8, x0, y0 float64, s string) int {
	return e.Print(params, fontID, x0, y0, []byte(s))
}

// Printf formats according to format in the engine language and prints the
// result like Print. Escape codes in the expanded text are honored, so
// untrusted arguments should go through escape.Escape first.
func (e *Engine) Printf(params *layout.Params, fontID uint8, x0, y0 float64, format string, args ...any) int {
	return e.PrintString(params, fontID, x0, y0, e.Sprintf(format, args...))
}

// Sprintf formats according to format in the engine language.
func (e *Engine) Sprintf(format string, args ...any) string {
	return message.NewPrinter(e.lang).Sprintf(format, args...)
}

package paratext

import (
	"golang.org/x/text/language"

	"github.com/gogpu/paratext/registry"
	"github.com/gogpu/paratext/render"
)

// Option configures an Engine during creation.
//
// Example:
//
//	// Fresh registry, no renderer attached
//	e := paratext.New()
//
//	// Shared registry, drawing into an image
//	e := paratext.New(
//		paratext.WithRegistry(reg),
//		paratext.WithRenderer(render.NewImage(img)),
//	)
type Option func(*options)

// options holds optional configuration for Engine creation.
type options struct {
	registry *registry.Registry
	renderer render.Renderer
	language language.Tag
	layouts  int
}

// defaultOptions returns the default engine options.
func defaultOptions() options {
	return options{
		registry: nil, // Will be created if nil
		renderer: nil, // Render is a no-op until one is set
		language: language.English,
	}
}

// WithRegistry makes the engine use reg instead of a private registry.
// Several engines may share one registry.
func WithRegistry(reg *registry.Registry) Option {
	return func(o *options) {
		o.registry = reg
	}
}

// WithRenderer attaches the drawing target used by Render and Print.
func WithRenderer(r render.Renderer) Option {
	return func(o *options) {
		o.renderer = r
	}
}

// WithLanguage sets the locale Printf formats numbers with.
//
// Example:
//
//	e := paratext.New(paratext.WithLanguage(language.German))
//	e.Printf(nil, 0, 10, 20, "%d points", 1234567) // "1.234.567 points"
func WithLanguage(tag language.Tag) Option {
	return func(o *options) {
		o.language = tag
	}
}

// WithLayoutCache makes Print keep up to capacity finished paragraphs and
// reuse them when the same text is printed again with the same font and
// parameters. Zero or negative disables the cache, which is the default.
//
// Cached paragraphs are invalidated by RegisterFont and UnregisterFont.
// Fonts changed directly on a shared registry require ClearLayoutCache.
func WithLayoutCache(capacity int) Option {
	return func(o *options) {
		o.layouts = capacity
	}
}

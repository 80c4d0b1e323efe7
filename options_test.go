package paratext

import (
	"testing"

	"golang.org/x/text/language"

	"github.com/gogpu/paratext/fonts"
	"github.com/gogpu/paratext/layout"
	"github.com/gogpu/paratext/registry"
)

// countingRenderer is a test renderer for DI testing.
type countingRenderer struct {
	draws int
}

func (c *countingRenderer) DrawGlyph(fonts.Font, *layout.Glyph, float64, float64) {
	c.draws++
}

// TestDefaultOptions tests the zero configuration.
func TestDefaultOptions(t *testing.T) {
	o := defaultOptions()
	if o.registry != nil || o.renderer != nil {
		t.Error("default registry and renderer should be nil")
	}
	if o.language != language.English {
		t.Errorf("language = %v, want English", o.language)
	}
	if o.layouts != 0 {
		t.Errorf("layouts = %d, want the cache disabled", o.layouts)
	}
}

// TestNewWithRenderer tests dependency injection of a custom renderer.
func TestNewWithRenderer(t *testing.T) {
	mock := &countingRenderer{}
	e := New(WithRenderer(mock))
	if e.renderer != mock {
		t.Fatal("renderer is not the injected mock renderer")
	}

	e.RegisterFont(0, fonts.Basic())
	e.PrintString(nil, 0, 0, 0, "a b")
	if mock.draws != 2 {
		t.Errorf("draws = %d, want 2", mock.draws)
	}
}

// TestNewMultipleOptions tests combining options.
func TestNewMultipleOptions(t *testing.T) {
	reg := registry.New()
	e := New(
		WithRegistry(reg),
		WithLanguage(language.French),
		WithLayoutCache(64),
	)
	if e.Registry() != reg {
		t.Error("registry was not injected")
	}
	if e.lang != language.French {
		t.Errorf("lang = %v, want French", e.lang)
	}
	if e.layouts == nil || e.layouts.Capacity() != 64 {
		t.Error("layout cache not configured with capacity 64")
	}
}

// TestWithLayoutCacheDisabled tests that non-positive capacities disable
// the cache.
func TestWithLayoutCacheDisabled(t *testing.T) {
	for _, n := range []int{0, -5} {
		if e := New(WithLayoutCache(n)); e.layouts != nil {
			t.Errorf("WithLayoutCache(%d) enabled the cache", n)
		}
	}
}

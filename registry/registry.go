// Package registry maps small integer font ids to fonts.
//
// A Registry is an explicit context object: the application creates one
// (or several, e.g. one per test) and hands it to the engine, instead of
// relying on process-wide state.
//
//	reg := registry.New()
//	reg.Register(1, fonts.Basic())
//	f, ok := reg.Lookup(1)
//
// The registry references fonts but does not own them: unregistering a font
// does not close it, and the caller must keep a font valid while any
// paragraph laid out with it may still be rendered.
package registry

import (
	"fmt"
	"slices"
	"sync"

	"github.com/gogpu/paratext/fonts"
)

// Registry maps font ids to fonts. The zero value is not usable; use New.
//
// Registry is safe for concurrent use, so cached paragraphs may be rendered
// from several goroutines. Mutating the registry while a paragraph that
// references the affected id is being rendered is a caller error.
type Registry struct {
	mu    sync.RWMutex
	fonts map[uint8]fonts.Font
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{fonts: make(map[uint8]fonts.Font)}
}

// Register makes font available under id.
//
// Register panics if:
//   - font is nil
//   - id is already registered
//
// Both are caller contract violations, caught early rather than silently
// replacing the font a cached paragraph refers to.
func (r *Registry) Register(id uint8, font fonts.Font) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if font == nil {
		panic(fmt.Sprintf("registry: Register font %d is nil", id))
	}
	if _, dup := r.fonts[id]; dup {
		panic(fmt.Sprintf("registry: Register called twice for font %d", id))
	}
	r.fonts[id] = font
}

// Unregister removes id. If id is not registered, this is a no-op.
func (r *Registry) Unregister(id uint8) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.fonts, id)
}

// Lookup returns the font registered under id.
func (r *Registry) Lookup(id uint8) (fonts.Font, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	f, ok := r.fonts[id]
	return f, ok
}

// MustLookup returns the font registered under id, panicking if there is none.
func (r *Registry) MustLookup(id uint8) fonts.Font {
	f, ok := r.Lookup(id)
	if !ok {
		panic(fmt.Sprintf("registry: font %d is not registered", id))
	}
	return f
}

// IDs returns the registered ids in ascending order.
func (r *Registry) IDs() []uint8 {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]uint8, 0, len(r.fonts))
	for id := range r.fonts {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Len returns the number of registered fonts.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.fonts)
}

package spinner

import (
	"sort"
	"strings"
	"sync"

	"github.com/goliatone/go-slug"
)

// Factory returns a fresh variant value.
type Factory func() Variant

// Registry stores built-in and host-defined variant factories keyed by
// slug-normalized name.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// NewDefaultRegistry returns a registry holding the built-in designs.
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	RegisterBuiltIns(r)
	return r
}

// RegisterBuiltIns adds the ring and dual ring designs to r.
func RegisterBuiltIns(r *Registry) {
	r.Register(RingName, func() Variant { return NewRing() })
	r.Register(DualRingName, func() Variant { return NewDualRing() })
}

// Register adds or replaces the factory stored under name. Empty names and
// nil factories are ignored.
func (r *Registry) Register(name string, factory Factory) {
	key := CanonicalName(name)
	if key == "" || factory == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[key] = factory
}

// New builds the variant registered under name.
func (r *Registry) New(name string) (Variant, error) {
	r.mu.RLock()
	factory, ok := r.factories[CanonicalName(name)]
	r.mu.RUnlock()
	if !ok {
		return nil, validationError(ErrUnknownVariant, textCodeUnknownVariant, "spinner variant "+name+" is not registered")
	}
	return factory(), nil
}

// Has reports whether name is registered.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.factories[CanonicalName(name)]
	return ok
}

// Names returns the registered names in order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.factories))
	for name := range r.factories {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// CanonicalName normalizes a variant name with go-slug, so "Dual Ring"
// resolves to "dual-ring".
func CanonicalName(name string) string {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return ""
	}
	normalized, err := slug.Default().Normalize(trimmed)
	if err != nil || normalized == "" {
		return strings.ToLower(trimmed)
	}
	return normalized
}

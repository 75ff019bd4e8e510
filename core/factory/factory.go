package factory

import (
	"fmt"
	"sort"
	"sync"

	"github.com/go-viper/mapstructure/v2"
)

// Spec contains the kind name and the raw settings of one value.
type Spec struct {
	Kind   string         `json:"kind"`
	Fields map[string]any `json:"fields"`
}

// Factory constructs a T from raw settings.
type Factory[T any] func(map[string]any) (T, error)

// Registry stores factories keyed by kind.
type Registry[T any] struct {
	mu        sync.RWMutex
	factories map[string]Factory[T]
}

// NewRegistry returns an empty registry.
func NewRegistry[T any]() *Registry[T] {
	return &Registry[T]{factories: make(map[string]Factory[T])}
}

// Register adds a factory for the given kind.
func (r *Registry[T]) Register(kind string, f Factory[T]) error {
	if f == nil {
		return fmt.Errorf("factory nil for %s", kind)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.factories[kind]; ok {
		return fmt.Errorf("factory already registered for %s", kind)
	}
	r.factories[kind] = f
	return nil
}

// Has reports whether a factory is registered for kind.
func (r *Registry[T]) Has(kind string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.factories[kind]
	return ok
}

// Kinds returns the registered kind names, sorted.
func (r *Registry[T]) Kinds() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.factories))
	for k := range r.factories {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Create builds a value from its spec.
func (r *Registry[T]) Create(spec Spec) (T, error) {
	r.mu.RLock()
	f, ok := r.factories[spec.Kind]
	r.mu.RUnlock()
	if !ok {
		var zero T
		return zero, fmt.Errorf("unknown kind %s", spec.Kind)
	}
	return f(spec.Fields)
}

// Decode fills out the provided struct using json tags. Unknown keys are an
// error so that a decoded struct never silently drops settings.
func Decode(data map[string]any, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:     "json",
		ErrorUnused: true,
		Result:      out,
	})
	if err != nil {
		return err
	}
	return dec.Decode(data)
}

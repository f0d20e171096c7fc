// Package catalog holds the static material, shape and environment
// registries. All three are built at init time and never mutated; keys are
// closed enumerations, so a failed lookup is a programming error and panics.
package catalog

import "fmt"

type registry[T any] struct {
	keys []string
	defs map[string]T
}

func newRegistry[T any]() *registry[T] {
	return &registry[T]{defs: make(map[string]T)}
}

func (r *registry[T]) add(key string, def T) {
	if _, dup := r.defs[key]; dup {
		panic(fmt.Sprintf("catalog: duplicate key %q", key))
	}
	r.keys = append(r.keys, key)
	r.defs[key] = def
}

func (r *registry[T]) lookup(key string) T {
	def, ok := r.defs[key]
	if !ok {
		panic(fmt.Sprintf("catalog: unknown key %q", key))
	}
	return def
}

// orderedKeys returns a copy so callers cannot disturb declaration order.
func (r *registry[T]) orderedKeys() []string {
	keys := make([]string, len(r.keys))
	copy(keys, r.keys)
	return keys
}

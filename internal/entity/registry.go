package entity

// Registry is a get-or-create store that maps a normalized key to a single
// lazily-created value. It is the one deduplication primitive shared by all
// entity kinds; only the key function and factory differ per kind.
//
// A Registry is owned by exactly one ingestion run and is not safe for
// concurrent use.
type Registry[T any] struct {
	byKey map[string]T
	keys  []string // insertion order, for stable output
}

// NewRegistry returns an empty registry.
func NewRegistry[T any]() *Registry[T] {
	return &Registry[T]{byKey: make(map[string]T)}
}

// Resolve returns the value stored under key, invoking factory to create it
// on first reference. Later occurrences of the same key return the stored
// value untouched: first write wins. An empty key resolves to nothing and
// creates nothing.
func (r *Registry[T]) Resolve(key string, factory func() T) (T, bool) {
	var zero T
	if key == "" {
		return zero, false
	}
	if v, ok := r.byKey[key]; ok {
		return v, true
	}
	v := factory()
	r.byKey[key] = v
	r.keys = append(r.keys, key)
	return v, true
}

// Values returns all stored values in first-reference order.
func (r *Registry[T]) Values() []T {
	out := make([]T, 0, len(r.keys))
	for _, k := range r.keys {
		out = append(out, r.byKey[k])
	}
	return out
}

// Len reports the number of distinct keys stored.
func (r *Registry[T]) Len() int {
	return len(r.keys)
}

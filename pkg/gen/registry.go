package gen

import "github.com/l3aro/go-cfg-bench/pkg/cfg"

// registry is an append-only, insertion-ordered collection of entities with
// O(1) lookup by id. Insertion order matters: it defines the serialization
// order of the assembled artifact.
type registry[T any] struct {
	index map[cfg.ID]int
	items []*T
}

func newRegistry[T any]() registry[T] {
	return registry[T]{index: make(map[cfg.ID]int)}
}

func (r *registry[T]) add(id cfg.ID, item *T) {
	r.index[id] = len(r.items)
	r.items = append(r.items, item)
}

func (r *registry[T]) get(id cfg.ID) (*T, bool) {
	i, ok := r.index[id]
	if !ok {
		return nil, false
	}
	return r.items[i], true
}

func (r *registry[T]) has(id cfg.ID) bool {
	_, ok := r.index[id]
	return ok
}

func (r *registry[T]) len() int {
	return len(r.items)
}

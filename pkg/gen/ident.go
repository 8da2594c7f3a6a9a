// Package gen implements the synthetic CFG generators: a session-scoped id
// allocator, the entity factory shared by all generators, and the DFS chase
// call-tree generator.
package gen

import "github.com/l3aro/go-cfg-bench/pkg/cfg"

// IDAllocator hands out globally unique entity ids for one generation
// session. The first call to Next returns 1 and ids strictly increase from
// there; ids are never reused.
//
// An allocator is single-threaded state. Give each independent generation
// session its own instance; sharing one across concurrent sessions breaks
// the uniqueness invariant.
type IDAllocator struct {
	last cfg.ID
}

// NewIDAllocator returns a fresh allocator whose first id is 1.
func NewIDAllocator() *IDAllocator {
	return &IDAllocator{}
}

// Next returns the next unused id.
func (a *IDAllocator) Next() cfg.ID {
	a.last++
	return a.last
}

package gen

import (
	"fmt"
	"math/rand/v2"

	"github.com/l3aro/go-cfg-bench/pkg/cfg"
)

// PopRandom removes and returns an element chosen uniformly from the list.
// The caller supplies the random source so selection stays reproducible
// under a fixed seed; popping from an empty list fails with
// ErrEmptyCollection.
func PopRandom[T any](r *rand.Rand, list *[]T) (T, error) {
	var zero T
	if len(*list) == 0 {
		return zero, fmt.Errorf("%w: pop from empty list", cfg.ErrEmptyCollection)
	}
	idx := r.IntN(len(*list))
	elem := (*list)[idx]
	*list = append((*list)[:idx], (*list)[idx+1:]...)
	return elem, nil
}

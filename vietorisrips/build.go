package vietorisrips

import (
	"github.com/katalvlaran/homology2/complex"
	"github.com/katalvlaran/homology2/simplicial"
)

// Build pushes every entry, in filtration order, into a fresh self-basis
// complex via PushUnchecked. This is safe without a face-closure check
// because Enumerate's ordering is monotone in containment: every face of
// a simplex has a filtration value no greater than the simplex's own, so
// it is always pushed first (spec.md §4.8).
func Build(entries []Entry) *complex.Filtered {
	c := complex.NewFiltered(0)
	for _, e := range entries {
		c.PushUnchecked(simplicial.New(e.Vertices))
	}

	return c
}

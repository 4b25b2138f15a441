package complex

import (
	"github.com/katalvlaran/homology2/container"
	"github.com/katalvlaran/homology2/f2vec"
	"github.com/katalvlaran/homology2/simplicial"
)

// Filtered is an indexed container of simplices enforcing the
// face-closure invariant: every face of the simplex at index j resolves
// to an earlier index in the target basis (spec.md §3, §4.3).
//
// target is nil for a self-basis complex (faces are sought among the
// complex's own earlier entries) and non-nil for a split-dimension
// complex built with NewFilteredWithPrev, in which case faces are sought
// in target's basis instead.
type Filtered struct {
	basis  *container.Indexed[simplicial.Simplex]
	target *Filtered
}

// NewFiltered returns an empty self-basis Filtered complex whose logical
// indices begin at start. start is normally 0; a nonzero start is
// supported (spec.md §9 Open Questions) and simply offsets every
// downstream pairing's birth/death indices.
func NewFiltered(start uint64) *Filtered {
	return &Filtered{basis: container.NewIndexed[simplicial.Simplex](start)}
}

// NewFilteredWithPrev returns an empty split-dimension Filtered complex
// whose start index equals prev's end index, and whose faces resolve
// against prev's basis rather than its own. This is the Go replacement
// for the original "with_prev" back-pointer chain (spec.md §9): the only
// state kept is prev itself, used purely as a read-only target basis.
func NewFilteredWithPrev(prev *Filtered) *Filtered {
	return &Filtered{
		basis:  container.NewIndexed[simplicial.Simplex](prev.End()),
		target: prev,
	}
}

// Start returns the logical index of the first simplex.
func (f *Filtered) Start() uint64 { return f.basis.Start() }

// End returns one past the logical index of the last simplex.
func (f *Filtered) End() uint64 { return f.basis.End() }

// Len returns the number of stored simplices.
func (f *Filtered) Len() int { return f.basis.Len() }

// Get returns the simplex at logical index idx.
func (f *Filtered) Get(idx uint64) (simplicial.Simplex, bool) {
	return f.basis.Get(idx)
}

// targetBasis returns the complex against which faces are resolved: f
// itself for a self-basis complex, or the complex f was built "with
// previous" for a split-dimension complex.
func (f *Filtered) targetBasis() *Filtered {
	if f.target != nil {
		return f.target
	}

	return f
}

// searchBound returns the exclusive upper bound of the target's index
// range that is legal to search when pushing/streaming logical index j:
// strictly below j for a self-basis complex (faces must be earlier than
// the simplex that uses them), or the whole of a foreign target's range
// (every foreign index already precedes j, by construction).
func (f *Filtered) searchBound(target *Filtered, j uint64) uint64 {
	if target == f {
		return j
	}

	return target.End()
}

// findFace locates face within target's basis, restricted to indices
// below bound, by a linear scan comparing vertex tuples (spec.md §4.3:
// "face lookup is a linear scan... a hash-index is acceptable but not
// required").
func findFace(target *Filtered, bound uint64, face simplicial.Simplex) (uint64, bool) {
	return target.basis.PositionWithin(target.Start(), bound, face, func(a, b simplicial.Simplex) bool {
		return a.Equal(b)
	})
}

// checkFaceClosure verifies that every face of s resolves to an index
// strictly below the prospective push index j in target's basis.
func checkFaceClosure(f, target *Filtered, j uint64, s simplicial.Simplex) error {
	bound := f.searchBound(target, j)
	for _, face := range s.Boundary() {
		if _, ok := findFace(target, bound, face); !ok {
			return ErrComplexIsNotFiltered
		}
	}

	return nil
}

// Push appends s after verifying the face-closure invariant against the
// target basis. It returns the logical index assigned to s, or
// ErrComplexIsNotFiltered if some face of s is missing.
func (f *Filtered) Push(s simplicial.Simplex) (uint64, error) {
	j := f.End()
	target := f.targetBasis()
	if err := checkFaceClosure(f, target, j, s); err != nil {
		return 0, err
	}

	return f.basis.Push(s), nil
}

// PushStrict is Push, plus a check that no existing basis element equals
// s under inner product — the strict-constructor mode of spec.md §4.3.
func (f *Filtered) PushStrict(s simplicial.Simplex) (uint64, error) {
	for _, v := range f.All() {
		if v.InnerProduct(s) != 0 {
			return 0, ErrElementAlreadyExists
		}
	}

	return f.Push(s)
}

// PushUnchecked appends s without any validation. It exists for builders
// that have already established filtration order by construction (e.g.
// the Vietoris–Rips enumerator, whose sort order is provably monotone in
// containment).
func (f *Filtered) PushUnchecked(s simplicial.Simplex) uint64 {
	return f.basis.Push(s)
}

// All iterates every simplex in insertion order.
func (f *Filtered) All() func(yield func(uint64, simplicial.Simplex) bool) {
	return func(yield func(uint64, simplicial.Simplex) bool) {
		for idx, s := range f.basis.All() {
			if !yield(idx, *s) {
				return
			}
		}
	}
}

// BoundaryColumn computes the sparse 𝔽₂ boundary column of simplex j (for
// the embedding complex f), resolved against target's basis.
func BoundaryColumn(f, target *Filtered, j uint64) (f2vec.Column, error) {
	s, ok := f.Get(j)
	if !ok {
		panic("complex: index out of range")
	}

	bound := f.searchBound(target, j)
	indices := make([]uint64, 0, s.Dimension()+1)
	for _, face := range s.Boundary() {
		pos, ok := findFace(target, bound, face)
		if !ok {
			return f2vec.Column{}, ErrComplexIsNotFiltered
		}
		indices = append(indices, pos)
	}

	col, _ := f2vec.NewFromIndices(indices, false)

	return col, nil
}

// Boundaries streams (index, column) pairs for every simplex in f, in
// strictly ascending index order, resolved against f's own target basis.
// The stream is lazy, one-shot and forward-only (spec.md §9): consumers
// that need to restart must collect it first.
func (f *Filtered) Boundaries() func(yield func(uint64, f2vec.Column, error) bool) {
	return f.BoundariesFrom(f.targetBasis())
}

// BoundariesFrom streams boundary columns resolved against an explicit
// target basis rather than f's own configured target — this is what lets
// reduce.FromComplexes(domain, target) reduce one complex's boundaries
// against a separately owned basis.
func (f *Filtered) BoundariesFrom(target *Filtered) func(yield func(uint64, f2vec.Column, error) bool) {
	return func(yield func(uint64, f2vec.Column, error) bool) {
		for idx := f.Start(); idx < f.End(); idx++ {
			col, err := BoundaryColumn(f, target, idx)
			if !yield(idx, col, err) {
				return
			}
			if err != nil {
				return
			}
		}
	}
}

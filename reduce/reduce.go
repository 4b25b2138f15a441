package reduce

import (
	"github.com/katalvlaran/homology2/container"
	"github.com/katalvlaran/homology2/f2vec"
)

// Reducer maintains a reduced matrix under the standard algorithm: a
// lowest-nonzero-index memo mapping each pivot to the logical index of
// the unique reduced column holding it, and an indexed container of the
// reduced columns themselves, in insertion (= filtration) order.
//
// Reducer is generic over the vector representation: instantiate it with
// f2vec.Column for plain persistence, or f2vec.Chain when representative
// cycles are needed too (spec.md §4.6, §4.5). Rather than requiring V to
// carry its own mutator methods — which in Go would force a pointer-
// method-set generics dance — Reducer takes Lowest/IsCycle/Add as plain
// functions, so both instantiations share one implementation and Add can
// stay a pure function (f2vec.Added, f2vec.ChainAdded).
type Reducer[V any] struct {
	reduced *container.Indexed[V]
	memo    map[uint64]uint64

	lowest  func(V) (uint64, bool)
	isCycle func(V) bool
	add     func(a, b V) V
}

// New constructs an empty Reducer whose first pushed column is assigned
// logical index start.
func New[V any](start uint64, lowest func(V) (uint64, bool), isCycle func(V) bool, add func(a, b V) V) *Reducer[V] {
	return &Reducer[V]{
		reduced: container.NewIndexed[V](start),
		memo:    make(map[uint64]uint64),
		lowest:  lowest,
		isCycle: isCycle,
		add:     add,
	}
}

// NewColumnReducer is New specialized to bare f2vec.Column, the
// representation used for plain persistence-pair computation.
func NewColumnReducer(start uint64) *Reducer[f2vec.Column] {
	return New(start, f2vec.Column.Lowest, f2vec.Column.IsCycle, f2vec.Added)
}

// NewChainReducer is New specialized to f2vec.Chain, the
// representation used when representative cycles must be recovered.
func NewChainReducer(start uint64) *Reducer[f2vec.Chain] {
	return New(start, f2vec.Chain.Lowest, f2vec.Chain.IsCycle, f2vec.ChainAdded)
}

// findSameLowest locates the stored reduced column, if any, sharing b's
// pivot.
func (r *Reducer[V]) findSameLowest(b V) (V, bool) {
	lowest, ok := r.lowest(b)
	if !ok {
		var zero V

		return zero, false
	}
	idx, found := r.memo[lowest]
	if !found {
		var zero V

		return zero, false
	}

	return r.reduced.MustGet(idx), true
}

// reduceColumn repeatedly adds the stored column sharing b's current
// pivot until b is a cycle or its pivot is no longer in the memo. Each
// iteration strictly decreases the pivot (spec.md §4.6), so this always
// terminates.
func (r *Reducer[V]) reduceColumn(b V) V {
	for {
		other, found := r.findSameLowest(b)
		if !found {
			return b
		}
		b = r.add(b, other)
	}
}

// Push reduces b against the currently stored columns and inserts the
// result. It returns the logical index assigned to it.
//
// If the reduced column is a cycle, it births a class at that index. If
// it has a pivot not already in the memo, it kills the class born at
// that pivot and the memo gains an entry. A pivot already present in the
// memo after full reduction can never happen — it would mean a prior
// reduced column failed to be pivot-unique — and indicates a broken
// invariant (spec.md §4.6's "unreachable" row), so it panics rather than
// returning an error: this is a programmer error, not a data error.
func (r *Reducer[V]) Push(b V) uint64 {
	b = r.reduceColumn(b)
	idx := r.reduced.Push(b)

	if lowest, ok := r.lowest(b); ok {
		if _, exists := r.memo[lowest]; exists {
			panic("reduce: pivot collision after full reduction violates the reducer invariant")
		}
		r.memo[lowest] = idx
	}

	return idx
}

// LookupByLowest returns the logical index of the unique stored column
// whose pivot equals lowest, if any. This is the oracle the pairing
// iterator uses to find a cycle's death index.
func (r *Reducer[V]) LookupByLowest(lowest uint64) (uint64, bool) {
	idx, ok := r.memo[lowest]

	return idx, ok
}

// Get returns the stored reduced column at logical index idx.
func (r *Reducer[V]) Get(idx uint64) (V, bool) {
	return r.reduced.Get(idx)
}

// Len returns the number of columns pushed so far.
func (r *Reducer[V]) Len() int {
	return r.reduced.Len()
}

// Start returns the logical index of the first pushed column.
func (r *Reducer[V]) Start() uint64 {
	return r.reduced.Start()
}

// Cycles iterates (index, column) for every stored column that is a
// cycle, in insertion order. The iterator is lazy, one-shot and
// forward-only (spec.md §9).
func (r *Reducer[V]) Cycles() func(yield func(uint64, V) bool) {
	return func(yield func(uint64, V) bool) {
		for idx, v := range r.reduced.All() {
			if r.isCycle(*v) {
				if !yield(idx, *v) {
					return
				}
			}
		}
	}
}

// CycleEntry is one element of IntoCycles' owned result.
type CycleEntry[V any] struct {
	Index uint64
	Value V
}

// IntoCycles collects every cycle column into an owned slice, preserving
// insertion order.
func (r *Reducer[V]) IntoCycles() []CycleEntry[V] {
	var out []CycleEntry[V]
	for idx, v := range r.Cycles() {
		out = append(out, CycleEntry[V]{Index: idx, Value: v})
	}

	return out
}

// CheckInvariants re-verifies the reducer's structural invariants
// (spec.md §8): every stored column is a cycle or its pivot is unique,
// the memo's key set equals the set of stored non-cycle pivots, and each
// memo entry points at a column whose pivot really is that key. It is a
// diagnostic for tests, not part of the hot path.
func (r *Reducer[V]) CheckInvariants() error {
	seenPivots := make(map[uint64]uint64, len(r.memo))
	for idx, v := range r.reduced.All() {
		lowest, ok := r.lowest(*v)
		if !ok {
			continue
		}
		if prev, dup := seenPivots[lowest]; dup {
			return errPivotNotUnique(lowest, prev, idx)
		}
		seenPivots[lowest] = idx
	}

	if len(seenPivots) != len(r.memo) {
		return errMemoMismatch()
	}
	for lowest, idx := range r.memo {
		want, ok := seenPivots[lowest]
		if !ok || want != idx {
			return errMemoMismatch()
		}
	}

	return nil
}

package f2vec

import "sort"

// Column is a sparse vector over 𝔽₂: the finite set of indices of its
// nonzero entries, stored in strictly descending order. The zero value is
// the empty column.
type Column struct {
	// idx holds the nonzero positions, strictly descending.
	idx []uint64
}

// New returns the empty column.
func New() Column {
	return Column{}
}

// NewFromIndices builds a column from an arbitrary index list, sorting it
// into strictly descending order. If rejectDuplicates is true and the same
// index appears twice, it returns ErrDuplicateIndex instead of silently
// deduplicating.
func NewFromIndices(indices []uint64, rejectDuplicates bool) (Column, error) {
	idx := make([]uint64, len(indices))
	copy(idx, indices)
	sort.Slice(idx, func(i, j int) bool { return idx[i] > idx[j] })

	if rejectDuplicates {
		for i := 1; i < len(idx); i++ {
			if idx[i] == idx[i-1] {
				return Column{}, ErrDuplicateIndex
			}
		}
		return Column{idx: idx}, nil
	}

	out := idx[:0]
	for i, v := range idx {
		if i > 0 && v == idx[i-1] {
			continue
		}
		out = append(out, v)
	}

	return Column{idx: out}, nil
}

// NewFromPairs builds a column from (index, sign) pairs, dropping the
// signs — the 𝔽₂ core only cares which indices are present. Pairs are
// assumed to carry distinct indices, as boundary enumeration guarantees
// (spec.md §4.1); duplicates are not deduplicated here.
func NewFromPairs(pairs []IndexSign) Column {
	idx := make([]uint64, len(pairs))
	for i, p := range pairs {
		idx[i] = p.Index
	}
	sort.Slice(idx, func(i, j int) bool { return idx[i] > idx[j] })

	return Column{idx: idx}
}

// IndexSign pairs a basis index with a coefficient sign, the shape a
// boundary-chain generator emits before it collapses into a Column.
type IndexSign struct {
	Index uint64
	Sign  Sign
}

// Lowest returns the pivot of the column: its maximum index. The second
// return value is false for the empty column (a cycle).
func (c Column) Lowest() (uint64, bool) {
	if len(c.idx) == 0 {
		return 0, false
	}

	return c.idx[0], true
}

// IsCycle reports whether the column has no pivot.
func (c Column) IsCycle() bool {
	return len(c.idx) == 0
}

// Len returns the number of nonzero entries.
func (c Column) Len() int {
	return len(c.idx)
}

// Indices returns the nonzero indices in descending order. The returned
// slice must not be mutated by the caller.
func (c Column) Indices() []uint64 {
	return c.idx
}

// Has reports whether idx is present in the column.
func (c Column) Has(idx uint64) bool {
	for _, v := range c.idx {
		if v == idx {
			return true
		}
	}

	return false
}

// IsValid reports whether the backing slice is strictly descending, the
// invariant every Column must satisfy at all times.
func (c Column) IsValid() bool {
	for i := 1; i < len(c.idx); i++ {
		if c.idx[i-1] <= c.idx[i] {
			return false
		}
	}

	return true
}

// Equal reports whether two columns hold the same set of indices.
func (c Column) Equal(other Column) bool {
	if len(c.idx) != len(other.idx) {
		return false
	}
	for i := range c.idx {
		if c.idx[i] != other.idx[i] {
			return false
		}
	}

	return true
}

// AddAssign replaces c with the symmetric difference of c and other — the
// 𝔽₂ sum of the two columns. It is a linear-time merge of the two
// descending sequences: O(|c| + |other|).
func (c *Column) AddAssign(other Column) {
	a := c.idx
	b := other.idx
	result := make([]uint64, 0, len(a)+len(b))

	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] == b[j]:
			i++
			j++
		case a[i] > b[j]:
			result = append(result, a[i])
			i++
		default:
			result = append(result, b[j])
			j++
		}
	}
	result = append(result, a[i:]...)
	result = append(result, b[j:]...)

	c.idx = result
}

// Added returns the symmetric difference of a and b without mutating
// either operand.
func Added(a, b Column) Column {
	result := a
	result.AddAssign(b)

	return result
}

// Clone returns an independent copy of c.
func (c Column) Clone() Column {
	idx := make([]uint64, len(c.idx))
	copy(idx, c.idx)

	return Column{idx: idx}
}

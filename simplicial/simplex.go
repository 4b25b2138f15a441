package simplicial

import (
	"fmt"
	"sort"
	"strings"
)

// Simplex is a nonempty, strictly increasing sequence of vertex ids. Its
// dimension is len(vertices)-1. Equality ignores orientation; the core
// this package feeds is unsigned (spec.md §3).
//
// A Simplex is immutable once constructed and owned by the complex it is
// pushed into.
type Simplex struct {
	vertices []uint64
}

// New builds a Simplex from a vertex list, sorting it ascending and
// dropping duplicates. It panics on an empty list — an empty simplex is a
// programmer error, not a recoverable condition (spec.md §7).
func New(vertices []uint64) Simplex {
	if len(vertices) == 0 {
		panic("simplicial: simplex must have at least one vertex")
	}

	v := make([]uint64, len(vertices))
	copy(v, vertices)
	sort.Slice(v, func(i, j int) bool { return v[i] < v[j] })

	out := v[:1]
	for _, x := range v[1:] {
		if x != out[len(out)-1] {
			out = append(out, x)
		}
	}

	return Simplex{vertices: out}
}

// Dimension returns len(vertices)-1.
func (s Simplex) Dimension() int {
	return len(s.vertices) - 1
}

// Vertices returns the ascending vertex list. The caller must not mutate
// the returned slice.
func (s Simplex) Vertices() []uint64 {
	return s.vertices
}

// Equal reports whether two simplices have identical vertex sets.
func (s Simplex) Equal(other Simplex) bool {
	if len(s.vertices) != len(other.vertices) {
		return false
	}
	for i := range s.vertices {
		if s.vertices[i] != other.vertices[i] {
			return false
		}
	}

	return true
}

// InnerProduct is +1 if the two simplices have identical vertex tuples,
// and 0 otherwise (spec.md §3).
func (s Simplex) InnerProduct(other Simplex) int {
	if s.Equal(other) {
		return 1
	}

	return 0
}

// IsFaceOf reports whether every vertex of s also appears in other, using
// binary search since other's vertices are sorted ascending.
func (s Simplex) IsFaceOf(other Simplex) bool {
	for _, v := range s.vertices {
		i := sort.Search(len(other.vertices), func(i int) bool { return other.vertices[i] >= v })
		if i == len(other.vertices) || other.vertices[i] != v {
			return false
		}
	}

	return true
}

// Boundary returns the dimension-1 faces of s, obtained by excluding each
// vertex in position order 0, 1, ..., dim. A 0-simplex's boundary is
// empty.
func (s Simplex) Boundary() []Simplex {
	n := len(s.vertices)
	if n <= 1 {
		return nil
	}

	faces := make([]Simplex, 0, n)
	for skip := 0; skip < n; skip++ {
		face := make([]uint64, 0, n-1)
		for i, v := range s.vertices {
			if i == skip {
				continue
			}
			face = append(face, v)
		}
		faces = append(faces, Simplex{vertices: face})
	}

	return faces
}

// String renders the display form "|v0 v1 ... vd|" (spec.md §6).
func (s Simplex) String() string {
	var b strings.Builder
	b.WriteByte('|')
	for i, v := range s.vertices {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%d", v)
	}
	b.WriteByte('|')

	return b.String()
}

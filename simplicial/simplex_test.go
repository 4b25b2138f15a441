package simplicial_test

import (
	"testing"

	"github.com/katalvlaran/homology2/simplicial"
	"github.com/stretchr/testify/require"
)

func TestSimplex_DimensionAndSort(t *testing.T) {
	s := simplicial.New([]uint64{3, 1, 2})
	require.Equal(t, 2, s.Dimension())
	require.Equal(t, []uint64{1, 2, 3}, s.Vertices())
}

func TestSimplex_DedupOnConstruction(t *testing.T) {
	s := simplicial.New([]uint64{1, 2, 2, 3})
	require.Equal(t, []uint64{1, 2, 3}, s.Vertices())
}

func TestSimplex_NewPanicsOnEmpty(t *testing.T) {
	require.Panics(t, func() { simplicial.New(nil) })
}

func TestSimplex_Boundary(t *testing.T) {
	s := simplicial.New([]uint64{0, 1, 2, 3})
	b := s.Boundary()
	require.Len(t, b, 4)
	require.True(t, b[0].Equal(simplicial.New([]uint64{1, 2, 3})))
	require.True(t, b[1].Equal(simplicial.New([]uint64{0, 2, 3})))
	require.True(t, b[2].Equal(simplicial.New([]uint64{0, 1, 3})))
	require.True(t, b[3].Equal(simplicial.New([]uint64{0, 1, 2})))
}

func TestSimplex_BoundaryOfVertexIsEmpty(t *testing.T) {
	s := simplicial.New([]uint64{5})
	require.Empty(t, s.Boundary())
}

func TestSimplex_BoundaryFacesAreFaces(t *testing.T) {
	s := simplicial.New([]uint64{0, 1, 2, 3})
	for _, f := range s.Boundary() {
		require.True(t, f.IsFaceOf(s))
	}
}

func TestSimplex_IsFaceOf(t *testing.T) {
	s := simplicial.New([]uint64{0, 1, 2, 3})
	t1 := simplicial.New([]uint64{1, 3})

	require.True(t, t1.IsFaceOf(s))
	require.False(t, s.IsFaceOf(t1))
	require.True(t, s.IsFaceOf(s))
	require.True(t, t1.IsFaceOf(t1))
}

func TestSimplex_InnerProduct(t *testing.T) {
	a := simplicial.New([]uint64{1, 2})
	b := simplicial.New([]uint64{2, 1})
	c := simplicial.New([]uint64{1, 3})

	require.Equal(t, 1, a.InnerProduct(b))
	require.Equal(t, 0, a.InnerProduct(c))
}

func TestSimplex_BoundaryOfBoundaryIsEmpty(t *testing.T) {
	// ∂∂ = 0: every codim-2 face of s is hit an even number of times
	// (twice) when enumerating the boundary of each codim-1 face.
	s := simplicial.New([]uint64{0, 1, 2, 3})
	counts := make(map[string]int)
	for _, face := range s.Boundary() {
		for _, subface := range face.Boundary() {
			counts[subface.String()]++
		}
	}
	for key, n := range counts {
		require.Equal(t, 0, n%2, "face %s appeared an odd number of times", key)
	}
}

func TestSimplex_String(t *testing.T) {
	s := simplicial.New([]uint64{2, 0, 1})
	require.Equal(t, "|0 1 2|", s.String())
}

package vietorisrips_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/homology2/f2vec"
	"github.com/katalvlaran/homology2/reduce"
	"github.com/katalvlaran/homology2/vietorisrips"
	"github.com/stretchr/testify/require"
)

func TestEnumerate_SortedAscendingByValue(t *testing.T) {
	dist := vietorisrips.NewDistanceMatrix(4, func(i, j int) float64 {
		return float64((i - j) * (i - j))
	})

	entries := vietorisrips.Enumerate(4, 1, dist)
	for i := 1; i < len(entries); i++ {
		require.LessOrEqual(t, entries[i-1].Value, entries[i].Value)
	}

	// 4 singletons (value 0) plus C(4,2)=6 edges.
	require.Len(t, entries, 10)
}

func TestEnumerate_FacePrecedesCofaceOnTies(t *testing.T) {
	// All pairwise distances equal: every face/coface pair ties in value,
	// so only the stable sort's bucket order can keep faces first.
	dist := vietorisrips.NewDistanceMatrix(4, func(i, j int) float64 {
		if i == j {
			return 0
		}

		return 1
	})

	entries := vietorisrips.Enumerate(4, 2, dist)
	c := vietorisrips.Build(entries)

	for _, _, err := range c.Boundaries() {
		require.NoError(t, err)
	}
}

func TestVietorisRipsCircle(t *testing.T) {
	const n = 12
	points := make([][]float64, n)
	for i := 0; i < n; i++ {
		theta := 2 * math.Pi * float64(i) / float64(n)
		points[i] = []float64{math.Cos(theta), math.Sin(theta)}
	}

	dist := vietorisrips.FromPoints(points)
	entries := vietorisrips.Enumerate(n, 2, dist)
	c := vietorisrips.Build(entries)

	r, err := reduce.FromComplex(c)
	require.NoError(t, err)
	require.NoError(t, r.CheckInvariants())

	essentialByDim := make(map[int]int)
	for p := range reduce.Pair[f2vec.Column](r, r.Cycles()) {
		if !p.IsEssential() {
			continue
		}
		s, ok := c.Get(p.Birth)
		require.True(t, ok)
		essentialByDim[s.Dimension()]++
	}

	// Enumerate with maxDim=2 and no distance cutoff builds the full
	// 2-skeleton of the 12-point simplex, whatever the point positions.
	// Its reduced homology is concentrated in degree 2 with reduced Betti
	// number C(11,3) = 165 (the standard skeleton theorem): the complex is
	// connected (one dim-0 essential class) and every 1-cycle born along
	// the way is eventually filled by some triangle (no dim-1 essential
	// classes), while none of the 165 independent 2-cycles can ever be
	// killed since no tetrahedron was pushed.
	require.Equal(t, 1, essentialByDim[0])
	require.Equal(t, 0, essentialByDim[1])
	require.Equal(t, 165, essentialByDim[2])
}

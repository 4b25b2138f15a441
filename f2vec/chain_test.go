package f2vec_test

import (
	"testing"

	"github.com/katalvlaran/homology2/f2vec"
	"github.com/stretchr/testify/require"
)

func TestChain_NewChainSingletonOrigin(t *testing.T) {
	image := col(t, 1, 3)
	c := f2vec.NewChain(7, image)

	require.Equal(t, []uint64{7}, c.Origin.Indices())
	require.True(t, c.Image.Equal(image))
}

func TestChain_AddAssignLockStep(t *testing.T) {
	a := f2vec.NewChain(1, col(t, 5, 6))
	b := f2vec.NewChain(2, col(t, 6, 9))

	a.AddAssign(b)

	require.Equal(t, []uint64{2, 1}, a.Origin.Indices())
	require.Equal(t, []uint64{9, 5}, a.Image.Indices())
}

func TestChain_LowestDelegatesToImage(t *testing.T) {
	c := f2vec.NewChain(0, f2vec.New())
	require.True(t, c.IsCycle())
	_, ok := c.Lowest()
	require.False(t, ok)

	c2 := f2vec.NewChain(0, col(t, 4))
	lowest, ok := c2.Lowest()
	require.True(t, ok)
	require.Equal(t, uint64(4), lowest)
}

package f2vec_test

import (
	"testing"

	"github.com/katalvlaran/homology2/f2vec"
	"github.com/stretchr/testify/require"
)

func col(t *testing.T, indices ...uint64) f2vec.Column {
	t.Helper()
	c, err := f2vec.NewFromIndices(indices, true)
	require.NoError(t, err)

	return c
}

func TestColumn_LowestOfEmptyIsNone(t *testing.T) {
	c := f2vec.New()
	_, ok := c.Lowest()
	require.False(t, ok)
	require.True(t, c.IsCycle())
}

func TestColumn_LowestIsMax(t *testing.T) {
	c := col(t, 0, 3, 4, 5, 8, 10, 12)
	lowest, ok := c.Lowest()
	require.True(t, ok)
	require.Equal(t, uint64(12), lowest)
	require.False(t, c.IsCycle())
}

func TestColumn_AddAssign(t *testing.T) {
	x := col(t, 0, 2, 5, 6)
	y := col(t, 1, 2, 5, 9, 11)
	z := col(t, 0, 1, 6, 9, 11)
	zero := f2vec.New()

	x.AddAssign(y)
	require.True(t, x.IsValid())
	require.True(t, x.Equal(z))

	x.AddAssign(z)
	require.True(t, x.IsValid())
	require.True(t, x.Equal(zero))

	x.AddAssign(y)
	require.True(t, x.IsValid())
	require.True(t, x.Equal(y))
}

func TestColumn_AddCommutative(t *testing.T) {
	a := col(t, 0, 2, 5, 6)
	b := col(t, 1, 2, 5, 9, 11)

	require.True(t, f2vec.Added(a, b).Equal(f2vec.Added(b, a)))
}

func TestColumn_AddSelfCancels(t *testing.T) {
	a := col(t, 0, 2, 5, 6, 100)
	require.True(t, f2vec.Added(a, a).Equal(f2vec.New()))
}

func TestColumn_AddEmptyIsIdentity(t *testing.T) {
	a := col(t, 0, 2, 5, 6, 100)
	require.True(t, f2vec.Added(a, f2vec.New()).Equal(a))
}

func TestColumn_Equality(t *testing.T) {
	x := col(t, 0, 3, 4, 5, 8, 10, 12)
	y := col(t, 0, 3, 4, 5, 8, 10, 12)
	z := col(t, 1, 2, 6, 30)
	zero := f2vec.New()

	require.True(t, x.Equal(y))
	require.False(t, x.Equal(z))
	require.False(t, x.Equal(zero))
}

func TestColumn_NewFromIndicesDuplicateRejected(t *testing.T) {
	_, err := f2vec.NewFromIndices([]uint64{1, 2, 2, 3}, true)
	require.ErrorIs(t, err, f2vec.ErrDuplicateIndex)

	c, err := f2vec.NewFromIndices([]uint64{1, 2, 2, 3}, false)
	require.NoError(t, err)
	require.Equal(t, 3, c.Len())
}

func TestColumn_NewFromPairsDropsSign(t *testing.T) {
	c := f2vec.NewFromPairs([]f2vec.IndexSign{
		{Index: 4, Sign: f2vec.Negative},
		{Index: 1, Sign: f2vec.Positive},
		{Index: 7, Sign: f2vec.Positive},
	})
	require.Equal(t, []uint64{7, 4, 1}, c.Indices())
}

func TestColumn_InvariantHoldsAfterManyAdds(t *testing.T) {
	a := col(t, 1, 4, 9, 16, 25)
	b := col(t, 2, 4, 8, 16, 32)
	c := col(t, 3, 9, 27)

	a.AddAssign(b)
	require.True(t, a.IsValid())
	a.AddAssign(c)
	require.True(t, a.IsValid())
}

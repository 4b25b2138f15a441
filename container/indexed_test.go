package container_test

import (
	"testing"

	"github.com/katalvlaran/homology2/container"
	"github.com/stretchr/testify/require"
)

func TestIndexed_PushAssignsSequentialIndices(t *testing.T) {
	c := container.NewIndexed[string](0)
	require.Equal(t, uint64(0), c.Push("a"))
	require.Equal(t, uint64(1), c.Push("b"))
	require.Equal(t, uint64(2), c.Push("c"))
	require.Equal(t, 3, c.Len())
}

func TestIndexed_NonZeroStart(t *testing.T) {
	c := container.NewIndexed[string](10)
	require.Equal(t, uint64(10), c.Push("a"))
	require.Equal(t, uint64(11), c.Push("b"))
	require.Equal(t, uint64(10), c.Start())
	require.Equal(t, uint64(12), c.End())

	v, ok := c.Get(10)
	require.True(t, ok)
	require.Equal(t, "a", v)

	_, ok = c.Get(9)
	require.False(t, ok)
	_, ok = c.Get(12)
	require.False(t, ok)
}

func TestIndexed_IndexNeverChanges(t *testing.T) {
	c := container.NewIndexed[int](0)
	idx := c.Push(42)
	c.Push(7)
	c.Push(99)

	v, ok := c.Get(idx)
	require.True(t, ok)
	require.Equal(t, 42, v)
}

func TestIndexed_RangeClampsToValidBounds(t *testing.T) {
	c := container.NewIndexed[int](5)
	c.Push(1)
	c.Push(2)
	c.Push(3)

	var got []uint64
	for idx, v := range c.Range(0, 100) {
		got = append(got, idx)
		_ = v
	}
	require.Equal(t, []uint64{5, 6, 7}, got)
}

func TestIndexed_All(t *testing.T) {
	c := container.NewIndexed[int](0)
	c.Push(10)
	c.Push(20)

	var sum int
	for _, v := range c.All() {
		sum += *v
	}
	require.Equal(t, 30, sum)
}

func TestIndexed_PositionWithin(t *testing.T) {
	c := container.NewIndexed[string](0)
	c.Push("a")
	c.Push("b")
	c.Push("c")

	idx, ok := c.PositionWithin(0, 3, "b", func(a, b string) bool { return a == b })
	require.True(t, ok)
	require.Equal(t, uint64(1), idx)

	_, ok = c.PositionWithin(0, 1, "b", func(a, b string) bool { return a == b })
	require.False(t, ok)
}

func TestIndexed_MustGetPanicsOutOfRange(t *testing.T) {
	c := container.NewIndexed[int](0)
	c.Push(1)
	require.Panics(t, func() { c.MustGet(5) })
}

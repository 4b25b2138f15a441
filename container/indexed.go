package container

// Indexed is an append-only sequence of T whose logical start index is
// fixed at construction. Valid logical indices are [Start, Start+Len()).
// Once assigned, the logical index of an element never changes.
type Indexed[T any] struct {
	start uint64
	items []T
}

// NewIndexed returns an empty Indexed with the given logical start index.
func NewIndexed[T any](start uint64) *Indexed[T] {
	return &Indexed[T]{start: start}
}

// NewIndexedWithCapacity is NewIndexed with a capacity hint for the
// backing slice.
func NewIndexedWithCapacity[T any](start uint64, capacity int) *Indexed[T] {
	return &Indexed[T]{start: start, items: make([]T, 0, capacity)}
}

// Start returns the logical index of the first element, regardless of
// whether any element has been pushed yet.
func (c *Indexed[T]) Start() uint64 {
	return c.start
}

// End returns Start() + Len(): one past the last valid logical index.
func (c *Indexed[T]) End() uint64 {
	return c.start + uint64(len(c.items))
}

// Len returns the number of stored elements.
func (c *Indexed[T]) Len() int {
	return len(c.items)
}

// Push appends elem, which is assigned logical index End().
// It returns that index.
func (c *Indexed[T]) Push(elem T) uint64 {
	idx := c.End()
	c.items = append(c.items, elem)

	return idx
}

// Get returns the element at logical index idx, or false if idx is out of
// range.
func (c *Indexed[T]) Get(idx uint64) (T, bool) {
	if idx < c.start || idx >= c.End() {
		var zero T

		return zero, false
	}

	return c.items[idx-c.start], true
}

// MustGet is Get but panics on an out-of-range index — used internally
// where the index is known valid by construction (spec.md §7 treats
// out-of-range access as a programmer error).
func (c *Indexed[T]) MustGet(idx uint64) T {
	v, ok := c.Get(idx)
	if !ok {
		panic("container: index out of range")
	}

	return v
}

// Range returns a forward, one-shot iterator over logical indices in
// [from, to) intersected with the container's valid range, yielding
// (index, *T) pairs. The pointer aliases the backing storage and is only
// valid for the lifetime of the iteration.
func (c *Indexed[T]) Range(from, to uint64) func(yield func(uint64, *T) bool) {
	if from < c.start {
		from = c.start
	}
	end := c.End()
	if to > end {
		to = end
	}

	return func(yield func(uint64, *T) bool) {
		for idx := from; idx < to; idx++ {
			if !yield(idx, &c.items[idx-c.start]) {
				return
			}
		}
	}
}

// All iterates every stored element in insertion order.
func (c *Indexed[T]) All() func(yield func(uint64, *T) bool) {
	return c.Range(c.start, c.End())
}

// PositionWithin scans the logical range [from, to) for the first element
// equal to target under eq, returning its logical index.
func (c *Indexed[T]) PositionWithin(from, to uint64, target T, eq func(T, T) bool) (uint64, bool) {
	for idx, v := range c.Range(from, to) {
		if eq(*v, target) {
			return idx, true
		}
	}

	return 0, false
}

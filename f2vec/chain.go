package f2vec

// Chain pairs a reduced boundary column ("image") with the combination of
// original columns ("origin") that produced it. The reducer (package
// reduce) mutates Image the way it would mutate a bare Column; Origin is
// carried in lock-step so that, once a column is fully reduced, Origin
// names the representative cycle in the domain's original basis.
//
// The two slots must never be mutated independently — AddAssign is the
// only way to update a Chain, exactly as spec.md §4.5 requires.
type Chain struct {
	Origin Column
	Image  Column
}

// NewChain builds the Chain for the boundary column of basis index j:
// Origin starts as the singleton {j} and Image starts as the given
// boundary column.
func NewChain(j uint64, image Column) Chain {
	origin, _ := NewFromIndices([]uint64{j}, true)

	return Chain{Origin: origin, Image: image}
}

// Lowest delegates to Image.
func (c Chain) Lowest() (uint64, bool) {
	return c.Image.Lowest()
}

// IsCycle delegates to Image.
func (c Chain) IsCycle() bool {
	return c.Image.IsCycle()
}

// AddAssign adds other into c atomically: both Origin and Image are
// updated by symmetric difference.
func (c *Chain) AddAssign(other Chain) {
	c.Origin.AddAssign(other.Origin)
	c.Image.AddAssign(other.Image)
}

// Clone returns an independent copy of c.
func (c Chain) Clone() Chain {
	return Chain{Origin: c.Origin.Clone(), Image: c.Image.Clone()}
}

// ChainAdded returns the symmetric difference of a and b without
// mutating either operand — the pure-function form built on AddAssign,
// and what the reducer's generic Add hook uses for the chain-tracking
// instantiation.
func ChainAdded(a, b Chain) Chain {
	result := a
	result.AddAssign(b)

	return result
}

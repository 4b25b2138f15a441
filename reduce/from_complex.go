package reduce

import (
	"github.com/katalvlaran/homology2/complex"
	"github.com/katalvlaran/homology2/f2vec"
)

// PushComplex pushes every boundary column of c into r, in filtration
// order, stopping at the first ErrComplexIsNotFiltered the boundary
// stream reports.
func PushComplex(r *Reducer[f2vec.Column], c *complex.Filtered) error {
	for _, col, err := range c.Boundaries() {
		if err != nil {
			return err
		}
		r.Push(col)
	}

	return nil
}

// PushComplexWith is PushComplex, but each boundary column is wrapped via
// wrap(j, column) before being pushed — the hook used to wrap into an
// f2vec.Chain for cycle tracking.
func PushComplexWith[V any](r *Reducer[V], c *complex.Filtered, wrap func(j uint64, col f2vec.Column) V) error {
	for idx, col, err := range c.Boundaries() {
		if err != nil {
			return err
		}
		r.Push(wrap(idx, col))
	}

	return nil
}

// FromComplex builds a plain column Reducer from c's own boundary
// stream.
func FromComplex(c *complex.Filtered) (*Reducer[f2vec.Column], error) {
	r := NewColumnReducer(c.Start())
	if err := PushComplex(r, c); err != nil {
		return nil, err
	}

	return r, nil
}

// FromComplexWithChain builds a chain-tracking Reducer from c's own
// boundary stream, so that representative cycles can be read off its
// stored Chains' Origin columns.
func FromComplexWithChain(c *complex.Filtered) (*Reducer[f2vec.Chain], error) {
	r := NewChainReducer(c.Start())
	if err := PushComplexWith(r, c, f2vec.NewChain); err != nil {
		return nil, err
	}

	return r, nil
}

// PushComplexFrom pushes domain's boundary columns, resolved against
// target's basis, into an already-existing reducer r. This is the
// building block that lets a chain of split-dimension complexes (built
// with complex.NewFilteredWithPrev) feed one continuous reduction: the
// reducer's logical indices keep running from wherever the previous
// complex left off, exactly mirroring the single shared index space the
// complexes themselves present.
func PushComplexFrom(r *Reducer[f2vec.Column], domain, target *complex.Filtered) error {
	for _, col, err := range domain.BoundariesFrom(target) {
		if err != nil {
			return err
		}
		r.Push(col)
	}

	return nil
}

// FromComplexes builds a fresh plain column Reducer seeded at domain's
// own start index and pushes domain's boundary stream into it, resolved
// against a separately owned target basis — the split-dimension
// construction mode of spec.md §4.3/§4.6, for the common case of a
// single domain/target pair reduced in isolation. To reduce several
// chained split-dimension complexes into one global pairing (spec.md §8
// scenario 6), construct one Reducer with NewColumnReducer and drive it
// across all of them with repeated PushComplexFrom calls instead.
func FromComplexes(domain, target *complex.Filtered) (*Reducer[f2vec.Column], error) {
	r := NewColumnReducer(domain.Start())
	if err := PushComplexFrom(r, domain, target); err != nil {
		return nil, err
	}

	return r, nil
}

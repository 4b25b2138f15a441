package reduce

import "fmt"

// Persistence is a (birth, death) pair of global filtration indices.
// Death is nil for an essential class — one still alive at the end of
// the filtration (spec.md §3).
type Persistence struct {
	Birth uint64
	Death *uint64
}

// IsEssential reports whether the class is never killed.
func (p Persistence) IsEssential() bool {
	return p.Death == nil
}

// String renders "<birth> <death|inf>": the first two fields of the
// persistence CLI line, without the dimension field.
func (p Persistence) String() string {
	if p.Death == nil {
		return fmt.Sprintf("%d inf", p.Birth)
	}

	return fmt.Sprintf("%d %d", p.Birth, *p.Death)
}

// LookupByLowest is satisfied by any reducer — the oracle Pair uses to
// find a cycle's death index.
type LookupByLowest interface {
	LookupByLowest(lowest uint64) (uint64, bool)
}

// Pair turns a reducer and a source of (birth index, cycle) pairs into a
// stream of (Persistence, cycle) results: for each cycle born at b, its
// death is whatever reducer column currently holds pivot b, if any.
func Pair[V any](r LookupByLowest, cycles func(yield func(uint64, V) bool)) func(yield func(Persistence, V) bool) {
	return func(yield func(Persistence, V) bool) {
		for birth, cycle := range cycles {
			p := Persistence{Birth: birth}
			if death, ok := r.LookupByLowest(birth); ok {
				d := death
				p.Death = &d
			}
			if !yield(p, cycle) {
				return
			}
		}
	}
}

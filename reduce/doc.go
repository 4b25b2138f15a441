// Package reduce implements the standard algorithm for persistent
// homology over 𝔽₂: incremental column reduction with a lowest-nonzero-
// index memo, plus the pairing iterator that turns reduced cycle columns
// into (birth, death) persistence pairs.
//
// Reducer is generic over the vector type, with its Lowest/IsCycle/Add
// operations passed in as functions — a bare f2vec.Column for plain
// persistence computation, or an f2vec.Chain when representative cycles
// are also wanted. Both share
// the exact same reduction loop (spec.md §9: "the polymorphism is
// pedagogical, not load-bearing" — one generic implementation covers
// both, rather than a sum type or two near-duplicate reducers).
package reduce

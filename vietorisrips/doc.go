// Package vietorisrips builds the boundary feeder for a Vietoris–Rips
// filtration: a packed symmetric distance matrix over a finite point set,
// and an enumerator that orders every q-dimensional simplex, q from 0 up
// to a target dimension, by filtration value (the maximum pairwise
// distance among its vertices), breaking ties by dimension and then by
// combinatorial order.
//
// The resulting ordered list is what a caller pushes, in order, into a
// complex.Filtered via PushUnchecked — the max-distance filtration is
// monotone in containment, so every face is guaranteed to already be
// present when its coface is pushed.
package vietorisrips

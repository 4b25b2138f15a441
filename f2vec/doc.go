// Package f2vec implements sparse vectors over the field 𝔽₂, stored as a
// strictly descending list of the indices of their nonzero entries.
//
// A Column's "lowest" entry is the maximum index present — the pivot used
// by the reduce package to drive column reduction. Addition is symmetric
// difference: two columns of a boundary-matrix computation cancel wherever
// they share an index.
//
// Chain pairs a Column with a second "origin" column recording which
// original boundary columns, combined, produced it — this is what lets a
// caller recover a representative cycle once reduction is done.
package f2vec

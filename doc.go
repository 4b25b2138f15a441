// Package homology2 computes persistent homology over 𝔽₂ for filtered
// simplicial complexes.
//
// A filtration orders simplices by a monotone index so that every face
// of a simplex appears no later than the simplex itself (complex).
// Boundaries are tracked as sparse 𝔽₂ vectors (f2vec) and reduced by
// a pivot-memoized column reduction (reduce) to produce birth/death
// pairs and, optionally, representative cycles.
//
// Subpackages:
//
//	simplicial/   — ordered-vertex simplex identity and faces
//	complex/      — filtered complex construction and validation
//	f2vec/        — sparse 𝔽₂ column and chain arithmetic
//	container/    — append-only sequence with offset logical indices
//	reduce/       — column reduction and persistence pairing
//	vietorisrips/ — Vietoris-Rips filtration from a point cloud
//	simpio/       — plain-text simplex list reader/writer
//	cmd/ripser2/  — CLI: persistence pairs, essential cycles, SVG plots
package homology2

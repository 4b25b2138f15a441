// Package complex implements the filtered simplicial complex: an
// append-only, face-closed sequence of simplices, and the lazy boundary
// stream that turns each simplex into a sparse 𝔽₂ column over the indices
// of its faces.
//
// A Filtered complex may resolve faces against its own basis
// (self-basis) or against a separately owned, earlier complex
// (split-dimension basis) whose end index becomes this complex's start
// index, so that indices stay contiguous across the split. Both modes
// share the same face-closure validation and boundary-stream logic.
package complex

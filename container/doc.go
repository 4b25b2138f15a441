// Package container provides Indexed, an append-only generic sequence
// whose logical indices begin at a configurable offset rather than always
// at zero. It is the storage primitive shared by the filtered complex
// (package complex) and the column reducer (package reduce): both need a
// sequence where "the index an element was pushed at" is a permanent,
// externally meaningful identity, not just a slice position.
package container

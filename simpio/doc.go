// Package simpio reads the simplex text format at the system boundary:
// one block of lines, each holding space-separated unsigned vertex ids,
// terminated by a blank line or end of input. Each line becomes one
// simplex, pushed into a complex.Filtered in file order (spec.md §6).
package simpio

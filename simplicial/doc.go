// Package simplicial defines Simplex, a nonempty strictly increasing
// sequence of vertex ids, and its boundary: the sequence of codimension-1
// faces obtained by deleting each vertex in turn.
package simplicial

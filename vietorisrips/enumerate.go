package vietorisrips

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat/combin"
)

// Entry is one (simplex, filtration value) pair produced by Enumerate.
type Entry struct {
	Vertices []uint64
	Value    float64
}

// filtrationValue is the maximum pairwise distance among vertices: 0 for
// a singleton, the lone edge length for a pair, and the max over every
// edge of the subset otherwise.
func filtrationValue(vertices []int, dist DistanceMatrix) float64 {
	switch len(vertices) {
	case 0:
		panic("vietorisrips: simplex must have at least one vertex")
	case 1:
		return 0
	case 2:
		v, _ := dist.Get(vertices[0], vertices[1])

		return v
	}

	max := math.Inf(-1)
	for _, edge := range combin.Combinations(len(vertices), 2) {
		v, _ := dist.Get(vertices[edge[0]], vertices[edge[1]])
		if v > max {
			max = v
		}
	}

	return max
}

// Enumerate lists every simplex of dimension 0 through maxDim over n
// points under dist, sorted by (filtration value ascending, then
// dimension, then combinatorial order) — the ordering that makes the
// result a valid filtration, since the max-distance value is monotone in
// containment and a face always has a lower dimension than its coface.
func Enumerate(n, maxDim int, dist DistanceMatrix) []Entry {
	var entries []Entry
	for dim := 0; dim <= maxDim; dim++ {
		for _, combo := range combin.Combinations(n, dim+1) {
			vertices := make([]uint64, len(combo))
			for i, v := range combo {
				vertices[i] = uint64(v)
			}
			entries = append(entries, Entry{
				Vertices: vertices,
				Value:    filtrationValue(combo, dist),
			})
		}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Value < entries[j].Value
	})

	return entries
}

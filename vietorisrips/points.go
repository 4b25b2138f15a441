package vietorisrips

import "gonum.org/v1/gonum/floats"

// FromPoints builds a DistanceMatrix from a slice of points in R^n
// (all must share the same dimension) using Euclidean distance.
func FromPoints(points [][]float64) DistanceMatrix {
	return NewDistanceMatrix(len(points), func(i, j int) float64 {
		if i == j {
			return 0
		}

		return floats.Distance(points[i], points[j], 2)
	})
}

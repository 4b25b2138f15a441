package vietorisrips

// DistanceMatrix is a symmetric distance matrix over a finite point set,
// stored as its packed upper triangle: only the size*(size+1)/2 entries
// with i <= j are kept.
type DistanceMatrix struct {
	size int
	data []float64
}

// NewDistanceMatrix builds a DistanceMatrix of the given size by calling f
// once for every pair (i, j) with i <= j. f is expected to be symmetric;
// NewDistanceMatrix never calls it with i > j.
func NewDistanceMatrix(size int, f func(i, j int) float64) DistanceMatrix {
	data := make([]float64, 0, size*(size+1)/2)
	for i := 0; i < size; i++ {
		for j := i; j < size; j++ {
			data = append(data, f(i, j))
		}
	}

	return DistanceMatrix{size: size, data: data}
}

// Size returns the number of points the matrix covers.
func (m DistanceMatrix) Size() int { return m.size }

// Get returns the distance between points i and j, and false if either
// index is out of range.
func (m DistanceMatrix) Get(i, j int) (float64, bool) {
	if i < 0 || j < 0 || i >= m.size || j >= m.size {
		return 0, false
	}
	if i > j {
		i, j = j, i
	}

	pos := j
	if i != 0 {
		pos = m.size*i - (i-1)*i/2 + j - i
	}

	return m.data[pos], true
}

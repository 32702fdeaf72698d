package tsp

import (
	"math"

	"github.com/katalvlaran/tsplab/matrix"
)

// Coordinate is a city position in the plane.
type Coordinate struct {
	X, Y float64
}

// Distance returns the Euclidean distance between a and b.
func (a Coordinate) Distance(b Coordinate) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// DistanceMatrix builds the n×n Euclidean distance matrix of coords.
//
// The result is symmetric with a zero diagonal and non-negative entries;
// each pair is computed once and mirrored. An empty input yields a 0×0 matrix.
//
// Complexity: O(n²) time and memory.
func DistanceMatrix(coords []Coordinate) *matrix.Dense {
	n := len(coords)
	m, _ := matrix.NewDense(n, n) // n ≥ 0 never fails

	var (
		i, j int
		d    float64
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			d = coords[i].Distance(coords[j])
			_ = m.Set(i, j, d) // finite for finite input
			_ = m.Set(j, i, d)
		}
	}

	return m
}

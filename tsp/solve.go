// Package tsp - unified dispatcher for TSP solvers.
//
// Solve routes a distance matrix to the requested Algorithm. SolveCoordinates
// additionally builds the Euclidean distance matrix from raw points, which is
// how batch callers feed parsed instance files into the solvers.
package tsp

import (
	"fmt"

	"github.com/katalvlaran/tsplab/matrix"
)

// Solve runs algo on dist.
//
// Errors: ErrUnsupportedAlgorithm plus the solver's own validation sentinels.
func Solve(dist matrix.Matrix, algo Algorithm, opts Options) (Result, error) {
	switch algo {
	case TwiceAroundTreeAlgo:
		return TwiceAroundTree(dist, opts)
	case ChristofidesAlgo:
		return Christofides(dist, opts)
	case BranchAndBoundAlgo:
		return BranchAndBound(dist, opts)
	}

	return NotAvailable, fmt.Errorf("%w: %s", ErrUnsupportedAlgorithm, algo)
}

// SolveCoordinates builds the distance matrix of coords and runs algo on it.
func SolveCoordinates(coords []Coordinate, algo Algorithm, opts Options) (Result, error) {
	return Solve(DistanceMatrix(coords), algo, opts)
}

// Package tsp - cost utilities shared by exact/heuristic solvers.
//
// A route is an open permutation of the cities; its cost is the sum of
// consecutive-pair distances plus the wrap-around edge from the last city
// back to the first. Costs are rounded to 1e-9 to avoid cross-platform FP
// noise in comparisons and persisted results.
package tsp

import (
	"math"

	"github.com/katalvlaran/tsplab/matrix"
)

// roundScale controls final cost stabilization precision (1e-9).
const roundScale = 1e9

// RouteCost validates dist and route, then returns the closed-tour cost.
//
// Errors: matrix validation sentinels (see validateAndPrefetch) and
// ErrInvalidRoute when route is not a permutation of 0..n-1.
//
// Complexity: O(n²) validation + O(n) summation.
func RouteCost(dist matrix.Matrix, route []int) (float64, error) {
	w, err := validateAndPrefetch(dist)
	if err != nil {
		return 0, err
	}
	if err = ValidateRoute(route, w.n); err != nil {
		return 0, err
	}

	return routeCost(w, route), nil
}

// routeCost sums w along route including the closing edge. Routes of length
// 0 or 1 cost 0.
//
// Complexity: O(n).
func routeCost(w *weights, route []int) float64 {
	L := len(route)
	if L < 2 {
		return 0
	}
	var (
		sum float64
		i   int
	)
	for i = 0; i+1 < L; i++ {
		sum += w.at(route[i], route[i+1])
	}
	sum += w.at(route[L-1], route[0])

	return round1e9(sum)
}

// round1e9 returns x rounded to 1e-9 absolute precision.
func round1e9(x float64) float64 {
	return math.Round(x*roundScale) / roundScale
}

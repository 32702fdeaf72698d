// Package tsp - MST-based approximations.
//
// Both solvers share one pipeline over the complete metric graph:
//
//  1. Minimum spanning tree (Prim, rooted at city 0).
//  2. Make every degree even:
//     - TwiceAroundTree doubles each tree edge (2-approximation);
//     - Christofides adds a minimum-weight perfect matching on the
//     odd-degree tree vertices (1.5-approximation).
//  3. Eulerian circuit from city 0 on the resulting multigraph.
//  4. Shortcut the circuit to a route (first occurrence of each city).
//
// The time limit is checked once, after the route is complete; an expired
// run yields NotAvailable. Instances with n ≤ 1 are trivial and never expire.
//
// Complexity: O(n²) for TwiceAroundTree; O(n³) for Christofides (matching).
package tsp

import (
	"time"

	"github.com/katalvlaran/tsplab/matrix"
)

// TwiceAroundTree returns a route of cost at most twice the optimum
// (at most twice the MST weight) for a metric instance.
//
// Errors: ErrNilMatrix, ErrInvalidMatrix.
func TwiceAroundTree(dist matrix.Matrix, opts Options) (Result, error) {
	start := time.Now()
	w, err := validateAndPrefetch(dist)
	if err != nil {
		return NotAvailable, err
	}
	if w.n <= 1 {
		return trivialResult(w.n, start), nil
	}

	tree := primTree(w)
	g := NewMultigraph(w.n)
	for _, e := range tree.Edges {
		g.AddEdge(e.U, e.V)
		g.AddEdge(e.U, e.V)
	}

	return finish(w, EulerianRoute(g), start, opts), nil
}

// Christofides returns a route of cost at most 1.5 times the optimum for a
// metric instance.
//
// Errors: ErrNilMatrix, ErrInvalidMatrix.
func Christofides(dist matrix.Matrix, opts Options) (Result, error) {
	start := time.Now()
	w, err := validateAndPrefetch(dist)
	if err != nil {
		return NotAvailable, err
	}
	if w.n <= 1 {
		return trivialResult(w.n, start), nil
	}

	tree := primTree(w)
	g := NewMultigraph(w.n)
	g.AddEdges(tree.Edges)
	g.AddEdges(minWeightPerfectMatching(w, tree.OddVertices(w.n)))

	return finish(w, EulerianRoute(g), start, opts), nil
}

// finish prices route and applies the post-hoc time-limit check.
func finish(w *weights, route []int, start time.Time, opts Options) Result {
	cost := routeCost(w, route)
	now := time.Now()
	if opts.expired(start, now) {
		return NotAvailable
	}

	return Result{Route: route, Cost: cost, Elapsed: now.Sub(start), Available: true}
}

// trivialResult is the zero-cost answer for n ≤ 1: [] or [0].
func trivialResult(n int, start time.Time) Result {
	route := make([]int, n)

	return Result{Route: route, Cost: 0, Elapsed: time.Since(start), Available: true}
}

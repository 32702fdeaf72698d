// Package tsp - minimum-weight perfect matching over a vertex subset.
//
// Christofides pairs up the odd-degree vertices of the MST with a true
// minimum-weight perfect matching. The subset induces a complete graph, so a
// perfect matching always exists when the subset has even size. The blossom
// engine maximizes weight; distances are turned into weights by
// w' = round((maxD - d) · scale), which reverses the order of perfect
// matchings while keeping every weight a non-negative integer.
package tsp

import (
	"fmt"
	"math"

	"github.com/katalvlaran/tsplab/matrix"
)

// matchWeightRange is the largest quantized edge weight handed to the blossom
// engine. Dual updates on integers below 2^53 stay exact in float64.
const matchWeightRange = 1e12

// MinimumWeightPerfectMatching returns a perfect matching of minimum total
// distance on the complete graph induced by vertices. Every pair is reported
// once, ordered by the position of its first vertex in vertices.
//
// Errors: matrix validation sentinels, ErrVertexOutOfRange for an index
// outside [0..n-1], ErrDuplicateVertex when a vertex is listed twice.
//
// Panics with ErrOddVertexSet when len(vertices) is odd.
//
// Complexity: O(k³) for k = len(vertices).
func MinimumWeightPerfectMatching(dist matrix.Matrix, vertices []int) ([]Edge, error) {
	w, err := validateAndPrefetch(dist)
	if err != nil {
		return nil, err
	}
	seen := make([]bool, w.n)
	for i, v := range vertices {
		if v < 0 || v >= w.n {
			return nil, fmt.Errorf("%w: vertices[%d]=%d, n=%d", ErrVertexOutOfRange, i, v, w.n)
		}
		if seen[v] {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateVertex, v)
		}
		seen[v] = true
	}

	return minWeightPerfectMatching(w, vertices), nil
}

// minWeightPerfectMatching is the unchecked core used by Christofides.
func minWeightPerfectMatching(w *weights, vertices []int) []Edge {
	k := len(vertices)
	if k&1 == 1 {
		panic(fmt.Errorf("%w: %d vertices", ErrOddVertexSet, k))
	}
	if k == 0 {
		return []Edge{}
	}

	var maxD float64
	for a := 0; a < k; a++ {
		for b := a + 1; b < k; b++ {
			if d := w.at(vertices[a], vertices[b]); d > maxD {
				maxD = d
			}
		}
	}
	scale := 1.0
	if maxD > 0 {
		scale = matchWeightRange / maxD
	}

	edges := make([]blossomEdge, 0, k*(k-1)/2)
	for a := 0; a < k; a++ {
		for b := a + 1; b < k; b++ {
			d := w.at(vertices[a], vertices[b])
			edges = append(edges, blossomEdge{i: a, j: b, w: math.Round((maxD - d) * scale)})
		}
	}

	mate := maxWeightMatching(k, edges, true)

	pairs := make([]Edge, 0, k/2)
	for a := 0; a < k; a++ {
		b := mate[a]
		if b < 0 {
			panic(fmt.Errorf("%w: vertex %d", ErrMatchingIncomplete, vertices[a]))
		}
		if a < b {
			pairs = append(pairs, Edge{U: vertices[a], V: vertices[b]})
		}
	}

	return pairs
}

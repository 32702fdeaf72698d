package tsp

import (
	"math"

	"github.com/katalvlaran/tsplab/matrix"
)

// MinimumSpanningTree computes a minimum spanning tree of the complete graph
// described by the n×n distance matrix dist, using Prim's algorithm from
// vertex 0.
//
// Ties are broken deterministically: the unattached vertex with the lowest
// index wins among equal connection costs, and a vertex keeps the earliest
// tree vertex as parent among equal edges.
//
// For n ≤ 1 the tree has no edges.
//
// Time:  O(n²).
// Space: O(n).
func MinimumSpanningTree(dist matrix.Matrix) (Tree, error) {
	w, err := validateAndPrefetch(dist)
	if err != nil {
		return Tree{}, err
	}

	return primTree(w), nil
}

// primTree is the dense O(n²) Prim on a validated buffer.
func primTree(w *weights) Tree {
	n := w.n
	if n <= 1 {
		return Tree{Edges: []Edge{}}
	}
	// Track which vertices are in the tree
	inMST := make([]bool, n)
	// Best edge weight to connect each vertex to the growing tree
	bestCost := make([]float64, n)
	// Parent pointer for each vertex
	parents := make([]int, n)

	var v int
	for v = range bestCost {
		bestCost[v] = math.Inf(1)
		parents[v] = -1
	}
	bestCost[0] = 0

	edges := make([]Edge, 0, n-1)
	var total float64
	var it int
	for it = 0; it < n; it++ {
		// (a) Find vertex u not in the tree with minimal bestCost[u];
		//     strict < keeps the lowest index on ties.
		u, minW := -1, math.Inf(1)
		for v = 0; v < n; v++ {
			if !inMST[v] && bestCost[v] < minW {
				minW, u = bestCost[v], v
			}
		}
		// (b) Attach u.
		inMST[u] = true
		if p := parents[u]; p >= 0 {
			edges = append(edges, Edge{U: p, V: u})
			total += minW
		}
		// (c) Relax the remaining vertices through u.
		for v = 0; v < n; v++ {
			if !inMST[v] && w.at(u, v) < bestCost[v] {
				bestCost[v] = w.at(u, v)
				parents[v] = u
			}
		}
	}

	return Tree{Edges: edges, Weight: round1e9(total)}
}

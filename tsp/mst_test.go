package tsp_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tsplab/matrix"
	"github.com/katalvlaran/tsplab/tsp"
)

func TestMinimumSpanningTree_UnitSquare(t *testing.T) {
	tree, err := tsp.MinimumSpanningTree(tsp.DistanceMatrix(unitSquare()))
	require.NoError(t, err)
	require.InDelta(t, 3.0, tree.Weight, eps)
	// Lowest index wins ties: 0-1, then 1-2, then 0-3.
	require.Equal(t, []tsp.Edge{{U: 0, V: 1}, {U: 1, V: 2}, {U: 0, V: 3}}, tree.Edges)
	require.Equal(t, []int{2, 3}, tree.OddVertices(4))
}

func TestMinimumSpanningTree_TwoCities(t *testing.T) {
	tree, err := tsp.MinimumSpanningTree(tsp.DistanceMatrix(twoCities()))
	require.NoError(t, err)
	require.Len(t, tree.Edges, 1)
	require.InDelta(t, 5.0, tree.Weight, eps)
}

func TestMinimumSpanningTree_Degenerate(t *testing.T) {
	for _, n := range []int{0, 1} {
		tree, err := tsp.MinimumSpanningTree(tsp.DistanceMatrix(make([]tsp.Coordinate, n)))
		require.NoError(t, err)
		require.Empty(t, tree.Edges)
		require.Zero(t, tree.Weight)
	}
}

func TestMinimumSpanningTree_SpansAllVertices(t *testing.T) {
	rng := rand.New(rand.NewSource(seedDet))
	for n := 2; n <= 30; n += 7 {
		tree, err := tsp.MinimumSpanningTree(tsp.DistanceMatrix(randomCoords(rng, n)))
		require.NoError(t, err)
		require.Len(t, tree.Edges, n-1)
		require.True(t, isSpanningTree(n, tree.Edges), "n=%d", n)
	}
}

// TestMinimumSpanningTree_Exhaustive compares Prim against every spanning tree
// of the complete graph on small instances.
func TestMinimumSpanningTree_Exhaustive(t *testing.T) {
	rng := rand.New(rand.NewSource(seedDet + 1))
	for n := 2; n <= 6; n++ {
		for trial := 0; trial < 3; trial++ {
			m := tsp.DistanceMatrix(randomCoords(rng, n))
			tree, err := tsp.MinimumSpanningTree(m)
			require.NoError(t, err)
			require.InDelta(t, minSpanningWeight(t, m), tree.Weight, eps, "n=%d trial=%d", n, trial)
		}
	}
}

// minSpanningWeight enumerates all (n-1)-edge subsets of K_n and keeps the
// lightest one that spans.
func minSpanningWeight(t *testing.T, m matrix.Matrix) float64 {
	n := m.Rows()
	var all []tsp.Edge
	for u := 0; u < n; u++ {
		for v := u + 1; v < n; v++ {
			all = append(all, tsp.Edge{U: u, V: v})
		}
	}

	best := math.Inf(1)
	pick := make([]tsp.Edge, 0, n-1)
	var rec func(from int)
	rec = func(from int) {
		if len(pick) == n-1 {
			if !isSpanningTree(n, pick) {
				return
			}
			var w float64
			for _, e := range pick {
				w += at(t, m, e.U, e.V)
			}
			if w < best {
				best = w
			}
			return
		}
		for i := from; i < len(all); i++ {
			pick = append(pick, all[i])
			rec(i + 1)
			pick = pick[:len(pick)-1]
		}
	}
	rec(0)

	return best
}

// isSpanningTree checks n-1 edges connect all n vertices without a cycle.
func isSpanningTree(n int, edges []tsp.Edge) bool {
	if len(edges) != n-1 {
		return false
	}
	parent := make([]int, n)
	for i := range parent {
		parent[i] = i
	}
	var find func(int) int
	find = func(x int) int {
		for parent[x] != x {
			parent[x] = parent[parent[x]]
			x = parent[x]
		}
		return x
	}
	for _, e := range edges {
		a, b := find(e.U), find(e.V)
		if a == b {
			return false
		}
		parent[a] = b
	}

	return true
}

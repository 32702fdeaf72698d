package tsp_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tsplab/tsp"
)

func TestEulerianCircuit_DoubledPath(t *testing.T) {
	// Path 0-1-2 doubled.
	g := tsp.NewMultigraph(3)
	g.AddEdge(0, 1)
	g.AddEdge(0, 1)
	g.AddEdge(1, 2)
	g.AddEdge(1, 2)

	walk := tsp.EulerianCircuit(g, 0)
	require.Equal(t, []int{0, 1, 2, 1, 0}, walk)
	require.Equal(t, []int{0, 1, 2}, tsp.EulerianRoute(g))
}

func TestEulerianCircuit_TwoTriangles(t *testing.T) {
	// Bow-tie: triangles 0-1-2 and 0-3-4 sharing vertex 0.
	g := tsp.NewMultigraph(5)
	g.AddEdges([]tsp.Edge{{U: 0, V: 1}, {U: 1, V: 2}, {U: 2, V: 0}, {U: 0, V: 3}, {U: 3, V: 4}, {U: 4, V: 0}})

	walk := tsp.EulerianCircuit(g, 0)
	require.Len(t, walk, g.Size()+1)
	require.Equal(t, 0, walk[0])
	require.Equal(t, 0, walk[len(walk)-1])

	// Each edge is used exactly once.
	count := map[[2]int]int{}
	for i := 0; i+1 < len(walk); i++ {
		u, v := walk[i], walk[i+1]
		if u > v {
			u, v = v, u
		}
		count[[2]int{u, v}]++
	}
	require.Len(t, count, 6)
	for e, c := range count {
		require.Equal(t, 1, c, "edge %v", e)
	}

	route := tsp.EulerianRoute(g)
	requireRoute(t, route, 5)
	require.Equal(t, []int{0, 1, 2, 3, 4}, route)
}

func TestEulerianRoute_SingleVertex(t *testing.T) {
	require.Equal(t, []int{0}, tsp.EulerianRoute(tsp.NewMultigraph(1)))
	require.Empty(t, tsp.EulerianRoute(tsp.NewMultigraph(0)))
}

func TestEulerianCircuit_OddDegreePanics(t *testing.T) {
	g := tsp.NewMultigraph(3)
	g.AddEdge(0, 1)
	g.AddEdge(1, 2)

	err := panicErr(func() { tsp.EulerianCircuit(g, 0) })
	require.ErrorIs(t, err, tsp.ErrNotEulerian)
}

func TestEulerianCircuit_DisconnectedPanics(t *testing.T) {
	// Two separate doubled edges: 0=1 and 2=3.
	g := tsp.NewMultigraph(4)
	g.AddEdge(0, 1)
	g.AddEdge(0, 1)
	g.AddEdge(2, 3)
	g.AddEdge(2, 3)

	err := panicErr(func() { tsp.EulerianCircuit(g, 0) })
	require.ErrorIs(t, err, tsp.ErrNotEulerian)
}

func TestEulerianRoute_IsolatedVertexPanics(t *testing.T) {
	// Vertex 2 has degree 0: the circuit is fine but cannot reach it.
	g := tsp.NewMultigraph(3)
	g.AddEdge(0, 1)
	g.AddEdge(0, 1)

	err := panicErr(func() { tsp.EulerianRoute(g) })
	require.ErrorIs(t, err, tsp.ErrNotEulerian)
}

func TestMultigraph_AddEdgeOutOfRange(t *testing.T) {
	g := tsp.NewMultigraph(2)
	err := panicErr(func() { g.AddEdge(0, 2) })
	require.ErrorIs(t, err, tsp.ErrVertexOutOfRange)
}

func TestShortcutEulerian(t *testing.T) {
	require.Equal(t, []int{0, 2, 1, 3}, tsp.ShortcutEulerian([]int{0, 2, 0, 1, 2, 3, 0}, 4))

	err := panicErr(func() { tsp.ShortcutEulerian([]int{0, 1, 0}, 3) })
	require.ErrorIs(t, err, tsp.ErrNotEulerian)
}

package tsp

import "fmt"

// Multigraph is an undirected multigraph on vertices 0..n-1 that allows
// parallel edges. It is built transiently from a spanning tree (doubled, or
// joined with a matching) and consumed by EulerianCircuit.
type Multigraph struct {
	ends [][2]int // edge id → endpoints
	inc  [][]int  // vertex → incident edge ids, in insertion order
}

// NewMultigraph returns an edgeless multigraph on n vertices.
func NewMultigraph(n int) *Multigraph {
	return &Multigraph{inc: make([][]int, n)}
}

// Order returns the number of vertices.
func (g *Multigraph) Order() int { return len(g.inc) }

// Size returns the number of edges, counting parallel edges separately.
func (g *Multigraph) Size() int { return len(g.ends) }

// Degree returns the number of edge endpoints at v.
func (g *Multigraph) Degree(v int) int { return len(g.inc[v]) }

// AddEdge inserts one more u-v edge. It panics with ErrVertexOutOfRange on
// indices outside [0..n-1].
func (g *Multigraph) AddEdge(u, v int) {
	n := g.Order()
	if u < 0 || u >= n || v < 0 || v >= n {
		panic(fmt.Errorf("%w: edge (%d,%d) on %d vertices", ErrVertexOutOfRange, u, v, n))
	}
	id := len(g.ends)
	g.ends = append(g.ends, [2]int{u, v})
	g.inc[u] = append(g.inc[u], id)
	g.inc[v] = append(g.inc[v], id)
}

// AddEdges inserts every edge of es once.
func (g *Multigraph) AddEdges(es []Edge) {
	for _, e := range es {
		g.AddEdge(e.U, e.V)
	}
}

// other returns the endpoint of edge id opposite to u.
func (g *Multigraph) other(id, u int) int {
	if g.ends[id][0] == u {
		return g.ends[id][1]
	}

	return g.ends[id][0]
}

// EulerianCircuit returns a closed walk that starts and ends at start and
// traverses every edge of g exactly once (Hierholzer's algorithm).
//
// At each vertex the lowest unused edge id (earliest inserted) is taken next,
// so the walk is deterministic for a given insertion order.
//
// It panics with ErrNotEulerian if a vertex has odd degree or if some edge is
// unreachable from start.
//
// Complexity: O(n + E).
func EulerianCircuit(g *Multigraph, start int) []int {
	n := g.Order()
	if start < 0 || start >= n {
		panic(fmt.Errorf("%w: start %d on %d vertices", ErrVertexOutOfRange, start, n))
	}
	var v int
	for v = 0; v < n; v++ {
		if g.Degree(v)&1 == 1 {
			panic(fmt.Errorf("%w: vertex %d has odd degree %d", ErrNotEulerian, v, g.Degree(v)))
		}
	}

	used := make([]bool, g.Size())
	next := make([]int, n) // per-vertex cursor into inc
	circuit := make([]int, 0, g.Size()+1)
	stack := []int{start}

	var (
		u, id int
		moved bool
	)
	for len(stack) > 0 {
		u = stack[len(stack)-1]
		moved = false
		for next[u] < len(g.inc[u]) {
			id = g.inc[u][next[u]]
			next[u]++
			if used[id] {
				continue
			}
			// traverse one edge u→other
			used[id] = true
			stack = append(stack, g.other(id, u))
			moved = true
			break
		}
		if !moved {
			// no more edges: backtrack
			circuit = append(circuit, u)
			stack = stack[:len(stack)-1]
		}
	}

	if len(circuit) != g.Size()+1 {
		panic(fmt.Errorf("%w: circuit covers %d of %d edges (disconnected)", ErrNotEulerian, len(circuit)-1, g.Size()))
	}

	// Backtracking emits the circuit in reverse; flip it to traversal order.
	for i, j := 0, len(circuit)-1; i < j; i, j = i+1, j-1 {
		circuit[i], circuit[j] = circuit[j], circuit[i]
	}

	return circuit
}

// EulerianRoute extracts an Eulerian circuit of g from vertex 0 and shortcuts
// it into a route visiting every vertex exactly once, in discovery order.
//
// Panics with ErrNotEulerian on an odd-degree vertex or a disconnected g.
func EulerianRoute(g *Multigraph) []int {
	n := g.Order()
	if n == 0 {
		return []int{}
	}

	return ShortcutEulerian(EulerianCircuit(g, 0), n)
}

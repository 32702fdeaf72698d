package tsp

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Sentinel errors. Input-shape problems are returned; invariant violations
// (which only a bug in a calling component can cause) panic with an error
// value wrapping one of the invariant sentinels below.
var (
	// ErrNilMatrix is returned when the distance matrix is nil.
	ErrNilMatrix = errors.New("tsp: nil distance matrix")

	// ErrInvalidMatrix is returned when the distance matrix is not a valid
	// symmetric metric matrix (non-square, negative, NaN/Inf, non-zero diagonal).
	ErrInvalidMatrix = errors.New("tsp: invalid distance matrix")

	// ErrUnsupportedAlgorithm is returned for an unknown Algorithm value.
	ErrUnsupportedAlgorithm = errors.New("tsp: unsupported algorithm")

	// ErrVertexOutOfRange is returned when a vertex index lies outside [0..n-1].
	ErrVertexOutOfRange = errors.New("tsp: vertex index out of range")

	// ErrDuplicateVertex is returned when a vertex subset lists a city twice.
	ErrDuplicateVertex = errors.New("tsp: duplicate vertex")

	// ErrInvalidRoute is returned by ValidateRoute for a route that is not a
	// permutation of 0..n-1.
	ErrInvalidRoute = errors.New("tsp: route is not a permutation")

	// ErrOddVertexSet is the invariant violated when a perfect matching is
	// requested over an odd number of vertices.
	ErrOddVertexSet = errors.New("tsp: perfect matching over an odd vertex set")

	// ErrMatchingIncomplete is the invariant violated when the matching engine
	// leaves a vertex of a complete even-sized graph unmatched.
	ErrMatchingIncomplete = errors.New("tsp: matching left a vertex unmatched")

	// ErrNotEulerian is the invariant violated when a multigraph passed to the
	// Eulerian tour constructor has an odd-degree vertex or is disconnected.
	ErrNotEulerian = errors.New("tsp: multigraph is not Eulerian")
)

// NoTimeLimit disables the wall-clock limit of a solver.
const NoTimeLimit time.Duration = -1

// DefaultTimeLimit is the per-solver limit used by DefaultOptions.
const DefaultTimeLimit = 30 * time.Minute

// Options configures a solver run.
type Options struct {
	// TimeLimit bounds the wall-clock time of a run. A negative value means
	// unlimited; zero means the budget is already spent.
	//
	// BranchAndBound samples it once per search-stack pop and abandons the
	// search when it is reached. TwiceAroundTree and Christofides check it
	// once, after the tour is complete.
	TimeLimit time.Duration
}

// DefaultOptions returns Options with TimeLimit = DefaultTimeLimit.
func DefaultOptions() Options {
	return Options{TimeLimit: DefaultTimeLimit}
}

// expired reports whether the budget limit is used up at time now.
func (o Options) expired(start, now time.Time) bool {
	return o.TimeLimit >= 0 && now.Sub(start) >= o.TimeLimit
}

// Result is the (route, cost, elapsed) triple every solver returns.
//
// When Available is false the run timed out and Route, Cost and Elapsed
// carry no information; NotAvailable is the shared value for that case.
type Result struct {
	// Route is a permutation of 0..n-1, implicitly closed (last → first).
	Route []int

	// Cost is the closed-tour total distance, rounded to 1e-9.
	Cost float64

	// Elapsed is the wall-clock duration of the run.
	Elapsed time.Duration

	// Available is false for timed-out runs.
	Available bool
}

// NotAvailable is the sentinel result of a run that exceeded its time limit.
var NotAvailable = Result{}

// String renders the result compactly: "NA" or "cost=… elapsed=… route=[…]".
func (r Result) String() string {
	if !r.Available {
		return "NA"
	}

	return fmt.Sprintf("cost=%g elapsed=%s route=%v", r.Cost, r.Elapsed, r.Route)
}

// Algorithm selects a solver in Solve.
type Algorithm int

const (
	// TwiceAroundTreeAlgo is the doubled-MST 2-approximation.
	TwiceAroundTreeAlgo Algorithm = iota
	// ChristofidesAlgo is the MST + perfect matching 1.5-approximation.
	ChristofidesAlgo
	// BranchAndBoundAlgo is the exact depth-first branch-and-bound search.
	BranchAndBoundAlgo
)

var algorithmNames = [...]string{
	TwiceAroundTreeAlgo: "twice-around-tree",
	ChristofidesAlgo:    "christofides",
	BranchAndBoundAlgo:  "branch-and-bound",
}

// String returns the canonical kebab-case name of a.
func (a Algorithm) String() string {
	if a < 0 || int(a) >= len(algorithmNames) {
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}

	return algorithmNames[a]
}

// ParseAlgorithm maps a name (case-insensitive; "tat", "bnb" accepted as
// short forms) to an Algorithm.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "twice-around-tree", "tat":
		return TwiceAroundTreeAlgo, nil
	case "christofides":
		return ChristofidesAlgo, nil
	case "branch-and-bound", "bnb":
		return BranchAndBoundAlgo, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, name)
}

// Algorithms lists every solver in a stable order.
func Algorithms() []Algorithm {
	return []Algorithm{TwiceAroundTreeAlgo, ChristofidesAlgo, BranchAndBoundAlgo}
}

// Edge is an unordered pair of city indices. Its weight is always looked up
// in the distance matrix.
type Edge struct {
	U, V int
}

// Tree is a minimum spanning tree: exactly n-1 edges for n ≥ 1.
type Tree struct {
	// Edges in the order Prim's algorithm attached them; U is the parent.
	Edges []Edge

	// Weight is the total edge weight, rounded to 1e-9.
	Weight float64
}

// Degrees returns the degree of every vertex 0..n-1 in t.
func (t Tree) Degrees(n int) []int {
	deg := make([]int, n)
	for _, e := range t.Edges {
		deg[e.U]++
		deg[e.V]++
	}

	return deg
}

// OddVertices returns, in ascending order, the vertices of odd degree in t.
// The result always has even length (handshake lemma).
func (t Tree) OddVertices(n int) []int {
	deg := t.Degrees(n)
	odd := make([]int, 0, n/2+1)
	var v int
	for v = 0; v < n; v++ {
		if deg[v]&1 == 1 {
			odd = append(odd, v)
		}
	}

	return odd
}

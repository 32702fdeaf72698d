package tsp_test

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tsplab/matrix"
	"github.com/katalvlaran/tsplab/tsp"
)

const (
	// eps absorbs the 1e-9 cost rounding in comparisons.
	eps = 1e-6

	// seedDet keeps random instances reproducible.
	seedDet = int64(20240601)
)

// unitSquare is the 4-city square whose optimal tour is its perimeter.
func unitSquare() []tsp.Coordinate {
	return []tsp.Coordinate{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 0}}
}

// twoCities are 5 apart, so every tour costs 10.
func twoCities() []tsp.Coordinate {
	return []tsp.Coordinate{{X: 0, Y: 0}, {X: 3, Y: 4}}
}

// randomCoords draws n points in [0,100)² from a seeded source.
func randomCoords(rng *rand.Rand, n int) []tsp.Coordinate {
	pts := make([]tsp.Coordinate, n)
	for i := range pts {
		pts[i] = tsp.Coordinate{X: rng.Float64() * 100, Y: rng.Float64() * 100}
	}

	return pts
}

// at reads dist[i][j] and fails the test on error.
func at(t *testing.T, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// bruteForceOptimum enumerates every permutation of 1..n-1 behind city 0.
func bruteForceOptimum(t *testing.T, m matrix.Matrix) float64 {
	t.Helper()
	n := m.Rows()
	if n <= 1 {
		return 0
	}
	rest := make([]int, 0, n-1)
	for v := 1; v < n; v++ {
		rest = append(rest, v)
	}
	best := math.Inf(1)
	permute(rest, 0, func(p []int) {
		cost := at(t, m, 0, p[0]) + at(t, m, p[len(p)-1], 0)
		for i := 0; i+1 < len(p); i++ {
			cost += at(t, m, p[i], p[i+1])
		}
		if cost < best {
			best = cost
		}
	})

	return best
}

// permute calls visit for every permutation of a[k:] (Heap-free swap recursion).
func permute(a []int, k int, visit func([]int)) {
	if k == len(a) {
		visit(a)
		return
	}
	for i := k; i < len(a); i++ {
		a[k], a[i] = a[i], a[k]
		permute(a, k+1, visit)
		a[k], a[i] = a[i], a[k]
	}
}

// requireRoute asserts route is a permutation of 0..n-1.
func requireRoute(t *testing.T, route []int, n int) {
	t.Helper()
	require.NoError(t, tsp.ValidateRoute(route, n))
}

// panicErr runs f and returns the error it panicked with, or nil.
func panicErr(f func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(error); ok {
				err = e
				return
			}
			err = errors.New("non-error panic")
		}
	}()
	f()

	return nil
}

// solverFunc is the common signature of the three solvers.
type solverFunc = func(matrix.Matrix, tsp.Options) (tsp.Result, error)

// approximations are the MST-based solvers.
var approximations = []solverFunc{tsp.TwiceAroundTree, tsp.Christofides}

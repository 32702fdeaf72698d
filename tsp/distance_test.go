package tsp_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tsplab/matrix"
	"github.com/katalvlaran/tsplab/tsp"
)

func TestDistanceMatrix_Shape(t *testing.T) {
	m := tsp.DistanceMatrix(twoCities())
	require.Equal(t, 2, m.Rows())
	require.Equal(t, 2, m.Cols())
	require.InDelta(t, 5.0, at(t, m, 0, 1), 1e-12)
	require.InDelta(t, 5.0, at(t, m, 1, 0), 1e-12)
	require.Zero(t, at(t, m, 0, 0))
}

func TestDistanceMatrix_Empty(t *testing.T) {
	m := tsp.DistanceMatrix(nil)
	require.Equal(t, 0, m.Rows())
	require.Equal(t, 0, m.Cols())
}

func TestDistanceMatrix_IsDistance(t *testing.T) {
	rng := rand.New(rand.NewSource(seedDet))
	for _, n := range []int{1, 3, 7, 20} {
		m := tsp.DistanceMatrix(randomCoords(rng, n))
		require.NoError(t, matrix.ValidateDistance(m, 0), "n=%d", n)
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				require.GreaterOrEqual(t, at(t, m, i, j), 0.0)
				require.Equal(t, at(t, m, i, j), at(t, m, j, i))
			}
		}
	}
}

func TestRouteCost(t *testing.T) {
	m := tsp.DistanceMatrix(unitSquare())

	cost, err := tsp.RouteCost(m, []int{0, 1, 2, 3})
	require.NoError(t, err)
	require.InDelta(t, 4.0, cost, eps)

	cost, err = tsp.RouteCost(m, []int{0, 2, 1, 3})
	require.NoError(t, err)
	require.InDelta(t, 2+2*1.4142135623730951, cost, eps)

	_, err = tsp.RouteCost(m, []int{0, 1, 1, 3})
	require.ErrorIs(t, err, tsp.ErrInvalidRoute)

	_, err = tsp.RouteCost(m, []int{0, 1, 2, 9})
	require.ErrorIs(t, err, tsp.ErrVertexOutOfRange)
}

func TestValidation_Sentinels(t *testing.T) {
	_, err := tsp.MinimumSpanningTree(nil)
	require.ErrorIs(t, err, tsp.ErrNilMatrix)

	asym, err := matrix.NewDenseFromRows([][]float64{{0, 1}, {2, 0}})
	require.NoError(t, err)
	for _, algo := range tsp.Algorithms() {
		_, err = tsp.Solve(asym, algo, tsp.DefaultOptions())
		require.ErrorIs(t, err, tsp.ErrInvalidMatrix, algo.String())
		require.ErrorIs(t, err, matrix.ErrAsymmetry, algo.String())
	}

	neg, err := matrix.NewDenseFromRows([][]float64{{0, -1}, {-1, 0}})
	require.NoError(t, err)
	_, err = tsp.TwiceAroundTree(neg, tsp.DefaultOptions())
	require.ErrorIs(t, err, matrix.ErrNegative)

	rect, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	_, err = tsp.BranchAndBound(rect, tsp.DefaultOptions())
	require.ErrorIs(t, err, matrix.ErrNonSquare)
}

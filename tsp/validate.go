// Package tsp - input validation and prefetch shared by every solver.
//
// Solvers accept any matrix.Matrix. validateAndPrefetch checks it once
// (matrix.ValidateDistance) and copies it into a flat row-major buffer so hot
// loops avoid interface calls and error returns.
package tsp

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/tsplab/matrix"
)

// symTol is the structural tolerance for symmetry and diagonal checks.
const symTol = 1e-12

// weights is a validated, read-only n×n distance buffer: w[u*n+v].
type weights struct {
	n int
	w []float64
}

// at is a fast accessor into the dense weight buffer.
func (d *weights) at(u, v int) float64 { return d.w[u*d.n+v] }

// validateAndPrefetch validates dist as a symmetric metric distance matrix and
// copies it into a weights buffer.
//
// Errors: ErrNilMatrix, or ErrInvalidMatrix wrapping the matrix sentinel.
// Complexity: O(n²).
func validateAndPrefetch(dist matrix.Matrix) (*weights, error) {
	if err := matrix.ValidateDistance(dist, symTol); err != nil {
		if errors.Is(err, matrix.ErrNilMatrix) {
			return nil, ErrNilMatrix
		}
		return nil, fmt.Errorf("%w: %w", ErrInvalidMatrix, err)
	}

	n := dist.Rows()
	d := &weights{n: n, w: make([]float64, n*n)}
	if dense, ok := dist.(*matrix.Dense); ok {
		// Fast path: whole rows at a time.
		var (
			i   int
			row []float64
		)
		for i = 0; i < n; i++ {
			row, _ = dense.Row(i)
			copy(d.w[i*n:], row)
		}
		return d, nil
	}

	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			d.w[i*n+j], _ = dist.At(i, j) // in range after validation
		}
	}

	return d, nil
}

// Package matrix provides the dense, row-major float64 storage used by the
// tour solvers for distance matrices.
//
// The matrix package provides:
//
//   - Matrix, a minimal read/write interface (Rows, Cols, At, Set, Clone).
//   - Dense, a flat-slice implementation with bounds-checked accessors.
//   - Validators for the shape and numeric properties a metric distance
//     matrix must satisfy (square, symmetric, zero diagonal, finite, ≥ 0).
//
// A 0×0 Dense is legal: an empty instance is a valid, trivially solved input.
//
// All errors are package sentinels matched with errors.Is. Public accessors
// never panic on user input.
package matrix

// Package tsp provides Travelling Salesman Problem solvers for symmetric,
// metric instances given as 2-D coordinates or a distance matrix.
//
// Building blocks:
//
//   - DistanceMatrix   - Euclidean n×n matrix from []Coordinate.
//   - MinimumSpanningTree - Prim's algorithm from city 0, O(n²).
//   - MinimumWeightPerfectMatching - Edmonds' blossom algorithm, O(k³).
//   - EulerianCircuit / EulerianRoute - Hierholzer from city 0 plus
//     first-occurrence shortcutting.
//
// Solvers (all return a Result):
//
//   - TwiceAroundTree - doubled MST, cost ≤ 2·OPT.
//   - Christofides    - MST + perfect matching on odd vertices, cost ≤ 1.5·OPT.
//   - BranchAndBound  - exact depth-first search with a wall-clock limit.
//
// A Result whose Available flag is false (NotAvailable) means the time limit
// was reached. Instances with n ≤ 1 are trivial: route [] or [0], cost 0.
//
// Error policy:
//   - Malformed input matrices are reported through sentinel errors
//     (ErrNilMatrix, ErrInvalidMatrix, …); test with errors.Is.
//   - Internal invariant violations (odd-size matching request, odd-degree
//     or disconnected multigraph) panic with an error wrapping
//     ErrOddVertexSet, ErrMatchingIncomplete or ErrNotEulerian.
package tsp

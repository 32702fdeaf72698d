// Package tsp - route utilities.
//
// These helpers operate purely on route structure (index sequences):
//   - ValidateRoute: verify a permutation over {0..n-1}.
//   - ShortcutEulerian: keep first occurrences of a closed walk.
package tsp

import "fmt"

// ValidateRoute checks that route is a permutation of {0..n-1}.
//
// Complexity: O(n) time, O(n) space.
func ValidateRoute(route []int, n int) error {
	if len(route) != n {
		return fmt.Errorf("%w: length %d, want %d", ErrInvalidRoute, len(route), n)
	}
	seen := make([]bool, n)
	var (
		i int
		v int
	)
	for i = 0; i < n; i++ {
		v = route[i]
		if v < 0 || v >= n {
			return fmt.Errorf("%w: position %d holds %d", ErrVertexOutOfRange, i, v)
		}
		if seen[v] {
			return fmt.Errorf("%w: city %d repeated", ErrInvalidRoute, v)
		}
		seen[v] = true
	}

	return nil
}

// ShortcutEulerian turns a closed walk over vertices 0..n-1 into a route by
// emitting every vertex the first time it is met. Discovery order is kept.
//
// It panics with ErrNotEulerian when the walk does not reach all n vertices:
// callers only pass walks of connected multigraphs.
//
// Complexity: O(len(walk)) time, O(n) space.
func ShortcutEulerian(walk []int, n int) []int {
	route := make([]int, 0, n)
	seen := make([]bool, n)
	for _, v := range walk {
		if v < 0 || v >= n {
			panic(fmt.Errorf("%w: walk visits %d outside [0,%d)", ErrNotEulerian, v, n))
		}
		if seen[v] {
			continue
		}
		seen[v] = true
		route = append(route, v)
	}
	if len(route) != n {
		panic(fmt.Errorf("%w: walk reaches %d of %d vertices (disconnected)", ErrNotEulerian, len(route), n))
	}

	return route
}

// Package tsp - depth-first Branch-and-Bound (exact search).
//
// BranchAndBound explores partial routes rooted at city 0 with an explicit
// LIFO stack. A node is ([0, …, last], cost so far, visited set). Popping a
// complete node closes the tour back to city 0 and may replace the
// incumbent; popping a partial node pushes its children in ascending city
// order, so the highest-index child is expanded first.
//
// Pruning, both against the incumbent cost UB:
//   - cost: the tentative extension cost is already ≥ UB;
//   - bound: extension cost + Σ minOut[u] over still-unvisited cities u is
//     ≥ UB, where minOut[u] is u's cheapest edge to another city. Every
//     unvisited city leaves the completed tour exactly once, so the bound
//     never exceeds the best completion.
//
// The deadline is sampled once per pop. When it is reached the search is
// abandoned and NotAvailable is returned; no partial route leaks out.
//
// Complexity: exponential worst case; O(n) per child for the bound.
package tsp

import (
	"math"
	"time"

	"github.com/yourbasic/bit"

	"github.com/katalvlaran/tsplab/matrix"
)

// searchNode is one partial route on the search stack.
type searchNode struct {
	route   []int // route[0] == 0
	cost    float64
	visited *bit.Set
}

// incumbent is the best closed tour found so far.
type incumbent struct {
	route []int
	cost  float64
}

// bbEngine holds the read-only data of one search.
type bbEngine struct {
	w      *weights
	minOut []float64
	opts   Options
	start  time.Time
}

// BranchAndBound returns an optimal route, or NotAvailable when the time
// limit is reached before the search space is exhausted.
//
// Errors: ErrNilMatrix, ErrInvalidMatrix.
func BranchAndBound(dist matrix.Matrix, opts Options) (Result, error) {
	start := time.Now()
	w, err := validateAndPrefetch(dist)
	if err != nil {
		return NotAvailable, err
	}
	if w.n <= 1 {
		return trivialResult(w.n, start), nil
	}

	e := &bbEngine{w: w, minOut: cheapestOutgoing(w), opts: opts, start: start}
	best := &incumbent{cost: math.Inf(1)}
	if !e.search(best) {
		return NotAvailable, nil
	}
	if best.route == nil {
		// n ≥ 2 always closes a tour; kept for completeness.
		return NotAvailable, nil
	}

	return Result{
		Route:     best.route,
		Cost:      round1e9(best.cost),
		Elapsed:   time.Since(start),
		Available: true,
	}, nil
}

// cheapestOutgoing returns, per city, the smallest distance to any other city.
func cheapestOutgoing(w *weights) []float64 {
	minOut := make([]float64, w.n)
	var u, v int
	for u = 0; u < w.n; u++ {
		m := math.Inf(1)
		for v = 0; v < w.n; v++ {
			if v != u && w.at(u, v) < m {
				m = w.at(u, v)
			}
		}
		minOut[u] = m
	}

	return minOut
}

// search runs the stack loop, updating best in place. It returns false when
// the deadline interrupted the search.
func (e *bbEngine) search(best *incumbent) bool {
	n := e.w.n
	stack := []searchNode{{route: []int{0}, cost: 0, visited: bit.New(0)}}

	for len(stack) > 0 {
		if e.opts.expired(e.start, time.Now()) {
			return false
		}
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		last := node.route[len(node.route)-1]
		if len(node.route) == n {
			if total := node.cost + e.w.at(last, 0); total < best.cost {
				best.cost = total
				best.route = node.route
			}
			continue
		}

		for city := 0; city < n; city++ {
			if node.visited.Contains(city) {
				continue
			}
			cost := node.cost + e.w.at(last, city)
			if cost >= best.cost {
				continue
			}
			visited := new(bit.Set).Set(node.visited).Add(city)
			if e.bound(cost, visited) >= best.cost {
				continue
			}
			route := make([]int, len(node.route)+1)
			copy(route, node.route)
			route[len(node.route)] = city
			stack = append(stack, searchNode{route: route, cost: cost, visited: visited})
		}
	}

	return true
}

// bound is cost plus the cheapest outgoing edge of every unvisited city.
func (e *bbEngine) bound(cost float64, visited *bit.Set) float64 {
	b := cost
	for u := 0; u < e.w.n; u++ {
		if !visited.Contains(u) {
			b += e.minOut[u]
		}
	}

	return b
}

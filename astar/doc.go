// Package astar implements the best-first search family: A*, weighted A*,
// and Dijkstra's algorithm, unified behind a single engine parameterised
// by a heuristic and an optional heuristic multiplier.
//
// Dijkstra is the degenerate case of a zero heuristic (see the Dijkstra
// constructor); weighted A* is the degenerate case of a multiplier above
// one, which trades optimality for a bounded-suboptimality guarantee:
// the returned cost never exceeds hMul times the true optimum, provided
// the supplied heuristic is consistent.
//
// Frontier
//
// The open set is a fibheap.Heap keyed by f = g + h*hMul. Rediscovering
// an already-open node is a DecreaseKey, not a second insertion; a node
// is "expanded" exactly when its handle reports Cleared. This is what
// gives the engine its O((V+E) log V)-shaped behaviour instead of the
// O(V^2) a linear open-set scan would produce.
//
// Construction failures (nil graph, nil heuristic, hMul < 1) are
// reported by New, not by Run; see core.ErrNilGraph, core.ErrNilHeuristic,
// core.ErrInvalidMultiplier.
package astar

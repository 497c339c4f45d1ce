// Package idastar implements IDA* (iterative-deepening A*) and, with a
// zero heuristic, plain cost-bounded IDDFS.
//
// Unlike astar, the frontier is an explicit stack rather than a priority
// queue: each iteration performs a depth-first search pruned by a cost
// bound, and any node whose f = g + h exceeds the bound is cut, with its
// f value folded into the next iteration's bound. This trades astar's
// O(V+E) memory for O(depth), at the cost of revisiting nodes across
// iterations — the right trade when the state space is large relative
// to solution depth, as in sliding-tile puzzles (see samples/npuzzle).
//
// Cycle avoidance walks the current DFS stack's ancestor chain instead
// of maintaining a visited set, which is what keeps memory at O(depth)
// rather than O(nodes expanded).
package idastar

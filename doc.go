// Package pathwalk collects a family of graph-search engines that share
// one contract: a caller supplies a Graph (outgoing-edge enumeration)
// and, where needed, a Heuristic, then calls a single Run with a start
// node and an optional observer, and gets back either a reconstructed
// edge path or a local optimum.
//
// Engines:
//
//	astar/       — A*, weighted A*, and Dijkstra via a shared priority frontier
//	greedy/      — greedy best-first search, priority frontier keyed by h alone
//	bfs/         — breadth-first search, unweighted shortest path
//	idastar/     — IDA*, iterative-deepening cost-bounded depth-first search
//	parallel/    — parallel IDA* with per-worker stacks and work stealing
//	localsearch/ — steepest descent with a bounded plateau-move budget
//
// Supporting packages:
//
//	core/         — Graph, Edge, Heuristic, Observer, and the PathNode lineage chain
//	fibheap/      — the Fibonacci heap backing astar's priority frontier
//	graphbuilder/ — a convenience adjacency-list builder for assembling fixtures
//	samples/      — example problem domains (N-Puzzle, maze, N-Queens)
//	cmd/pathwalk/ — a CLI that drives the samples through each engine
//
// Every engine is safe to reuse sequentially across Run calls but not
// concurrently, except parallel.Search, whose concurrency is internal to
// a single Run. None of the packages do I/O; that is left to callers and
// to cmd/pathwalk.
package pathwalk

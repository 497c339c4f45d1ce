// Package greedy implements Greedy Best-First search: a best-first
// engine whose frontier is keyed by the heuristic alone, with no cost
// relaxation and no decrease-key. It shares astar's frontier data
// structure (fibheap) but not its correctness properties: the returned
// path is not guaranteed optimal, only a path that exists.
//
// Each node enters the frontier map at most once; a second discovery of
// an already-known node is simply ignored rather than triggering a
// relaxation, since the frontier key does not depend on accumulated
// cost.
package greedy

// Package npuzzle is a sample problem domain for the search engines in
// astar, greedy, bfs, idastar and parallel: the sliding tile puzzle on an
// n*n grid with one empty cell. State implements core.Graph's node
// constraint directly (it is comparable), and Graph adapts the four
// legal slides into core.Edge values.
package npuzzle

// Package localsearch implements steepest descent, a local search that
// hill-climbs a Heuristic's gradient without ever building a path: it
// returns the single node it settled on, not a sequence of edges.
//
// Unlike the frontier-based engines in astar, greedy, bfs, idastar and
// parallel, steepest descent keeps no open set and no parent chain — only
// the current node and a count of side moves taken on a plateau. It has
// no notion of "target"; it simply stops where the heuristic stops
// improving, or once it has made maxSides equal-valued moves in total.
package localsearch

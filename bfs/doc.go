// Package bfs implements breadth-first search over a core.Graph: a FIFO
// frontier and a visited-once map, ignoring edge weights entirely. It
// returns a path with the fewest edges to a target, not the cheapest one
// — use astar.Dijkstra for that.
//
// What & why
//
//   - Each node is enqueued at most once; edges to already-visited
//     successors are silently skipped, since a later discovery can only
//     be at an equal or greater depth.
//   - This is the fastest correct engine for unweighted reachability and
//     is the one used for the maze end-to-end scenario (see
//     samples/maze), where every move has the same cost.
//
// Determinism
//
// Successors are enqueued in the order core.Graph.OutgoingEdges returns
// them, so the visit order (and hence the returned path, when several of
// equal length exist) is fully reproducible for a deterministic graph.
package bfs

package bfs

import "github.com/pathwalk/pathwalk/core"

// node is the lineage record for a discovered value. Depth is tracked
// for callers that want it via Search.Run's returned path length, but
// plays no role in traversal order — the FIFO queue already guarantees
// non-decreasing depth.
type node[N comparable] struct {
	core.PathNode[N]
	value N
	depth int
}

package core

// PathNode is the back-chained lineage record every engine uses to
// reconstruct a path once a target is found. It is created when a
// successor is first discovered and pushed into a frontier, and survives
// unchanged until the search that created it terminates; it is never
// shared across separate Run invocations.
//
// Engines that need extra per-node bookkeeping (a frontier handle, a
// cached heuristic value, a cumulative cost) embed PathNode as the first
// field of their own node type instead of duplicating parent/edge
// plumbing — see astar.node, idastar.node for examples.
type PathNode[N comparable] struct {
	Parent *PathNode[N]
	Edge   *Edge[N]
}

// BuildPath walks n's parent chain back to the root and returns the edges
// traversed from the root to n, in order. The root itself has a nil Edge
// and is not included in the result. BuildPath never returns nil for a
// non-nil n; a root node with no ancestors yields an empty, non-nil
// slice, so callers can distinguish "found a path of length zero" from
// "found no path at all" (the latter is always represented by a nil
// slice returned directly from an engine's Run, never by calling
// BuildPath).
func BuildPath[N comparable](n *PathNode[N]) []Edge[N] {
	var reversed []Edge[N]
	for cur := n; cur != nil && cur.Edge != nil; cur = cur.Parent {
		reversed = append(reversed, *cur.Edge)
	}
	path := make([]Edge[N], len(reversed))
	for i, e := range reversed {
		path[len(reversed)-1-i] = e
	}
	return path
}

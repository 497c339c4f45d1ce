// Package core defines the abstractions shared by every search engine in
// pathwalk: the Graph and Heuristic interfaces supplied by a caller, the
// Edge type that labels a transition between two node values, and the
// parent-linked lineage record used by every engine to reconstruct a path
// once a target is found.
//
// Nodes are values of a caller-chosen type N, constrained only to be
// comparable so they can be used as map keys. pathwalk never mutates a
// node value and never stores anything but N itself, a Graph, and a
// Heuristic; callers own the graph representation entirely.
//
// A Graph is consulted lazily: engines call OutgoingEdges on demand as
// nodes are discovered, and never assume the graph can be fully
// enumerated up front. This makes pathwalk suitable for state spaces that
// are too large to materialize, such as sliding-tile puzzles or game
// boards, where edges are generated on the fly from a node value.
package core

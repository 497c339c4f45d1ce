package core

// Edge connects a source node to a destination node in a Graph.
//
// Label is an optional, caller-defined annotation (e.g. the name of a move
// that produced this transition); it plays no role in search and is
// carried through purely for the caller's benefit when inspecting a
// returned path. Weight must never be negative, and is additive along a
// path. Two edges are equal when all three fields are equal.
type Edge[N comparable] struct {
	Label       string
	Weight      float64
	Destination N
}

// Graph describes a search problem: the only thing an engine needs to
// know about a node is which edges lead out of it. Implementations are
// expected to be deterministic for the lifetime of a single search — the
// same node must always produce the same outgoing edges within one Run.
//
// Graph says nothing about which nodes are targets; that is supplied
// per-engine, either as an explicit predicate over N or, when an engine
// accepts a Heuristic, via the convention that a zero heuristic marks a
// target (see Heuristic).
type Graph[N comparable] interface {
	// OutgoingEdges returns the edges leading out of node, in the order
	// the engine should consider them. An empty or nil slice means node
	// has no successors.
	OutgoingEdges(node N) []Edge[N]
}

// Heuristic estimates the lowest-cost remaining distance from a node to a
// target. It must never return a negative value, and by convention
// returns exactly zero for a target node when an engine has no other way
// to identify targets.
//
// A Heuristic is consistent when, for every edge (u, v) with weight w,
// h(u) <= w + h(v). Several engines (A*, IDA*) only guarantee an optimal
// result when the supplied Heuristic is consistent; pathwalk never checks
// this and will not reject an inconsistent heuristic — see the
// correctness notes in the astar package documentation.
type Heuristic[N comparable] func(node N) float64

// TargetFunc reports whether node should be treated as a target. Engines
// that accept a TargetFunc alongside a Heuristic use the predicate in
// place of the "heuristic is zero" convention.
type TargetFunc[N comparable] func(node N) bool

// Observer is invoked once for every node an engine visits: popped from a
// priority frontier, dequeued from a FIFO frontier, or expanded past a
// depth-bound cutoff in IDA*. It must not panic and must not mutate graph
// topology; engines make no attempt to recover from a panicking Observer.
type Observer[N comparable] func(node N)

// Visit calls o if it is non-nil. Every engine's Run routes its observer
// invocations through this helper so a nil Observer needs no special
// casing at call sites.
func (o Observer[N]) Visit(node N) {
	if o != nil {
		o(node)
	}
}

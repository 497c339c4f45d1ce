package idastar

import (
	"math"

	"github.com/pathwalk/pathwalk/core"
)

// Search is an IDA* engine over a graph of node values N.
type Search[N comparable] struct {
	graph     core.Graph[N]
	heuristic core.Heuristic[N]
	opts      Options[N]
}

// New constructs a Search. Pass a heuristic that always returns 0 for
// plain IDDFS.
func New[N comparable](graph core.Graph[N], heuristic core.Heuristic[N], opts ...Option[N]) (*Search[N], error) {
	if graph == nil {
		return nil, core.ErrNilGraph
	}
	if heuristic == nil {
		return nil, core.ErrNilHeuristic
	}
	cfg := DefaultOptions[N]()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Search[N]{graph: graph, heuristic: heuristic, opts: cfg}, nil
}

// Run searches from start and returns the edges of a path to a target,
// or (nil, nil) if no target is reachable. observe, if non-nil, is
// invoked with every node's value that is expanded below the current
// cost bound.
func (s *Search[N]) Run(start N, observe core.Observer[N]) ([]core.Edge[N], error) {
	bound := s.heuristic(start)
	if math.IsInf(bound, 1) {
		return nil, nil
	}

	for {
		nextBound := math.Inf(1)
		root := &node[N]{value: start, g: 0}
		stack := []*node[N]{root}
		var found *node[N]

		for len(stack) > 0 {
			cur := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			h := s.heuristic(cur.value)
			f := cur.g + h
			if f > bound {
				if f < nextBound {
					nextBound = f
				}
				continue
			}

			observe.Visit(cur.value)
			if s.isTarget(cur, h) {
				found = cur
				break
			}

			for _, e := range s.graph.OutgoingEdges(cur.value) {
				if onAncestorChain(cur, start, e.Destination) {
					continue
				}
				edgeCopy := e
				nn := &node[N]{value: e.Destination, g: cur.g + e.Weight}
				nn.Parent = &cur.PathNode
				nn.Edge = &edgeCopy
				stack = append(stack, nn)
			}
		}

		if found != nil {
			return core.BuildPath(&found.PathNode), nil
		}
		if math.IsInf(nextBound, 1) {
			return nil, nil
		}
		bound = nextBound
	}
}

func (s *Search[N]) isTarget(n *node[N], h float64) bool {
	if s.opts.Target != nil {
		return s.opts.Target(n.value)
	}
	return h == 0
}

// onAncestorChain reports whether v is the value of cur or of some
// ancestor of cur. Each ancestor's value is the destination of the edge
// that leads to it, except the root, whose value is start; this lets the
// check walk the shared core.PathNode chain without needing a pointer
// back to the idastar-specific node type.
func onAncestorChain[N comparable](cur *node[N], start N, v N) bool {
	if cur.value == v {
		return true
	}
	for p := cur.Parent; p != nil; p = p.Parent {
		if p.Edge != nil {
			if p.Edge.Destination == v {
				return true
			}
		} else if start == v {
			return true
		}
	}
	return false
}

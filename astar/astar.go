package astar

import (
	"fmt"

	"github.com/pathwalk/pathwalk/core"
	"github.com/pathwalk/pathwalk/fibheap"
)

// node is the lineage record kept per discovered value, carrying the
// best-first engine's payload (g, cached h, frontier handle) alongside
// the shared parent/edge chain.
type node[N comparable] struct {
	core.PathNode[N]
	value  N
	g      float64
	h      float64
	handle *fibheap.Handle[*node[N]]
}

// Search is a best-first engine over a graph of node values N. A Search
// is safe to Run repeatedly, sequentially; it holds no state between
// calls to Run.
type Search[N comparable] struct {
	graph     core.Graph[N]
	heuristic core.Heuristic[N]
	opts      Options[N]
}

// New constructs a Search. heuristic must be non-nil; pass a heuristic
// that always returns 0 for Dijkstra, or use the Dijkstra constructor.
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
	if cfg.HMul < 1 {
		return nil, core.ErrInvalidMultiplier
	}
	return &Search[N]{graph: graph, heuristic: heuristic, opts: cfg}, nil
}

// Dijkstra constructs a Search with a zero heuristic, i.e. plain
// uniform-cost search.
func Dijkstra[N comparable](graph core.Graph[N], opts ...Option[N]) (*Search[N], error) {
	return New[N](graph, func(N) float64 { return 0 }, opts...)
}

// Run searches from start and returns the edges of a path to a target,
// or (nil, nil) if no target is reachable. observe, if non-nil, is
// invoked with every node's value as it is popped from the frontier.
func (s *Search[N]) Run(start N, observe core.Observer[N]) ([]core.Edge[N], error) {
	frontier := fibheap.New[*node[N]]()
	known := make(map[N]*node[N])

	startH := s.heuristic(start)
	startNode := &node[N]{value: start, g: 0, h: startH}
	hd, err := frontier.Insert(startH*s.opts.HMul, startNode)
	if err != nil {
		return nil, fmt.Errorf("astar: %w", err)
	}
	startNode.handle = hd
	known[start] = startNode

	for !frontier.IsEmpty() {
		hd, err := frontier.ExtractMin()
		if err != nil {
			return nil, fmt.Errorf("astar: %w", err)
		}
		cur := hd.Value()
		observe.Visit(cur.value)

		if s.isTarget(cur) {
			return core.BuildPath(&cur.PathNode), nil
		}

		for _, e := range s.graph.OutgoingEdges(cur.value) {
			gPrime := cur.g + e.Weight
			edgeCopy := e

			v, seen := known[e.Destination]
			switch {
			case !seen:
				h := s.heuristic(e.Destination)
				nn := &node[N]{value: e.Destination, g: gPrime, h: h}
				nn.Parent = &cur.PathNode
				nn.Edge = &edgeCopy
				handle, err := frontier.Insert(gPrime+h*s.opts.HMul, nn)
				if err != nil {
					return nil, fmt.Errorf("astar: %w", err)
				}
				nn.handle = handle
				known[e.Destination] = nn
			case !v.handle.Cleared() && gPrime < v.g:
				v.g = gPrime
				v.Parent = &cur.PathNode
				v.Edge = &edgeCopy
				if err := frontier.DecreaseKey(v.handle, gPrime+v.h*s.opts.HMul); err != nil {
					return nil, fmt.Errorf("astar: %w", err)
				}
			}
		}
	}
	return nil, nil
}

// isTarget applies the default "cached h is zero" rule, or the
// configured predicate when one was supplied.
func (s *Search[N]) isTarget(n *node[N]) bool {
	if s.opts.Target != nil {
		return s.opts.Target(n.value)
	}
	return n.h == 0
}

package greedy

import (
	"fmt"

	"github.com/pathwalk/pathwalk/core"
	"github.com/pathwalk/pathwalk/fibheap"
)

// node is the lineage record for a discovered value; g is tracked only
// so a caller inspecting the returned path's cost gets a meaningful
// number, it plays no role in frontier ordering.
type node[N comparable] struct {
	core.PathNode[N]
	value N
	g     float64
	h     float64
}

// Search is a Greedy Best-First engine over a graph of node values N.
type Search[N comparable] struct {
	graph     core.Graph[N]
	heuristic core.Heuristic[N]
	opts      Options[N]
}

// New constructs a Search. heuristic must be non-nil.
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
// or (nil, nil) if no target is reachable. The returned path is not
// guaranteed to be optimal.
func (s *Search[N]) Run(start N, observe core.Observer[N]) ([]core.Edge[N], error) {
	frontier := fibheap.New[*node[N]]()
	known := make(map[N]bool)

	startH := s.heuristic(start)
	startNode := &node[N]{value: start, g: 0, h: startH}
	if _, err := frontier.Insert(startH, startNode); err != nil {
		return nil, fmt.Errorf("greedy: %w", err)
	}
	known[start] = true

	for !frontier.IsEmpty() {
		hd, err := frontier.ExtractMin()
		if err != nil {
			return nil, fmt.Errorf("greedy: %w", err)
		}
		cur := hd.Value()
		observe.Visit(cur.value)

		if s.isTarget(cur) {
			return core.BuildPath(&cur.PathNode), nil
		}

		for _, e := range s.graph.OutgoingEdges(cur.value) {
			if known[e.Destination] {
				continue
			}
			known[e.Destination] = true

			edgeCopy := e
			h := s.heuristic(e.Destination)
			nn := &node[N]{value: e.Destination, g: cur.g + e.Weight, h: h}
			nn.Parent = &cur.PathNode
			nn.Edge = &edgeCopy
			if _, err := frontier.Insert(h, nn); err != nil {
				return nil, fmt.Errorf("greedy: %w", err)
			}
		}
	}
	return nil, nil
}

func (s *Search[N]) isTarget(n *node[N]) bool {
	if s.opts.Target != nil {
		return s.opts.Target(n.value)
	}
	return n.h == 0
}

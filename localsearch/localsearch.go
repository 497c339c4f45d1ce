package localsearch

import (
	"math/rand"

	"github.com/pathwalk/pathwalk/core"
)

// Search is a steepest-descent local search over a graph of node values N.
type Search[N comparable] struct {
	graph     core.Graph[N]
	heuristic core.Heuristic[N]
	opts      Options[N]
}

// New constructs a Search. It fails if graph or heuristic is nil, or if
// Options.MaxSides is negative.
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
	if cfg.MaxSides < 0 {
		return nil, core.ErrInvalidMaxSides
	}
	if cfg.Rand == nil {
		cfg.Rand = rand.New(rand.NewSource(1))
	}
	return &Search[N]{graph: graph, heuristic: heuristic, opts: cfg}, nil
}

// RunFromRandom starts from a node produced by the RandomNode supplier
// configured via WithRandomNodeSupplier and otherwise behaves exactly like
// Run. The second return value is false if no supplier was configured.
func (s *Search[N]) RunFromRandom(observe core.Observer[N]) (N, bool) {
	if s.opts.RandomNode == nil {
		var zero N
		return zero, false
	}
	return s.Run(s.opts.RandomNode(), observe), true
}

// Run starts from node and hill-climbs the heuristic: at each step it
// evaluates every outgoing neighbour, keeps only those whose heuristic is
// no worse than the current node's, narrows that set to the strict
// minimum whenever a strictly better neighbour appears, and picks
// uniformly at random among the survivors. A move that does not strictly
// improve the heuristic counts against maxSides; once the budget is
// exhausted, or once no candidate neighbour survives the filter, Run
// returns the node it is standing on. observe, if non-nil, is invoked on
// every node visited, including the starting node and the final one.
func (s *Search[N]) Run(node N, observe core.Observer[N]) N {
	current := node
	currentH := s.heuristic(current)
	sides := 0

	for {
		observe.Visit(current)

		oldH := currentH
		bestH := currentH
		var candidates []N

		for _, e := range s.graph.OutgoingEdges(current) {
			h := s.heuristic(e.Destination)
			if h > bestH {
				continue
			}
			if h < bestH {
				bestH = h
				candidates = candidates[:0]
			}
			candidates = append(candidates, e.Destination)
		}

		if len(candidates) == 0 {
			return current
		}

		current = candidates[s.opts.Rand.Intn(len(candidates))]
		currentH = bestH
		if bestH == oldH {
			sides++
			if sides >= s.opts.MaxSides {
				observe.Visit(current)
				return current
			}
		}
	}
}

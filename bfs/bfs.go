package bfs

import "github.com/pathwalk/pathwalk/core"

// Search is a breadth-first engine over a graph of node values N.
type Search[N comparable] struct {
	graph  core.Graph[N]
	target core.TargetFunc[N]
}

// New constructs a Search. Unlike astar and greedy, bfs has no heuristic
// to fall back on for target identification, so target must be non-nil.
func New[N comparable](graph core.Graph[N], target core.TargetFunc[N]) (*Search[N], error) {
	if graph == nil {
		return nil, core.ErrNilGraph
	}
	if target == nil {
		return nil, core.ErrNilTarget
	}
	return &Search[N]{graph: graph, target: target}, nil
}

// Run searches from start and returns the edges of a shortest (by edge
// count) path to a target, or (nil, nil) if no target is reachable.
func (s *Search[N]) Run(start N, observe core.Observer[N]) ([]core.Edge[N], error) {
	startNode := &node[N]{value: start, depth: 0}
	queue := []*node[N]{startNode}
	visited := map[N]bool{start: true}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		observe.Visit(cur.value)
		if s.target(cur.value) {
			return core.BuildPath(&cur.PathNode), nil
		}

		for _, e := range s.graph.OutgoingEdges(cur.value) {
			if visited[e.Destination] {
				continue
			}
			visited[e.Destination] = true

			edgeCopy := e
			nn := &node[N]{value: e.Destination, depth: cur.depth + 1}
			nn.Parent = &cur.PathNode
			nn.Edge = &edgeCopy
			queue = append(queue, nn)
		}
	}
	return nil, nil
}

package npuzzle

import "github.com/pathwalk/pathwalk/core"

// Graph adapts State's four legal slide moves to core.Graph. Its zero
// value is ready to use; there is no per-instance state.
type Graph struct{}

// Instance is the singleton Graph value, since Graph carries no state.
var Instance = Graph{}

// OutgoingEdges returns up to four edges, one per direction the empty
// cell can slide in, each with weight 1.
func (Graph) OutgoingEdges(s State) []core.Edge[State] {
	edges := make([]core.Edge[State], 0, 4)
	row, col := s.emptyRow(), s.emptyCol()

	if row > 0 {
		edges = append(edges, core.Edge[State]{Label: "up", Weight: 1, Destination: s.withEmptyMovedTo((row-1)*s.size + col)})
	}
	if row < s.size-1 {
		edges = append(edges, core.Edge[State]{Label: "down", Weight: 1, Destination: s.withEmptyMovedTo((row+1)*s.size + col)})
	}
	if col > 0 {
		edges = append(edges, core.Edge[State]{Label: "left", Weight: 1, Destination: s.withEmptyMovedTo(row*s.size + col - 1)})
	}
	if col < s.size-1 {
		edges = append(edges, core.Edge[State]{Label: "right", Weight: 1, Destination: s.withEmptyMovedTo(row*s.size + col + 1)})
	}
	return edges
}

// IsSolved is a core.TargetFunc over State, usable directly with engines
// that accept a target predicate (e.g. greedy, bfs, idastar, parallel, or
// astar.Dijkstra via WithTargetPredicate).
func IsSolved(s State) bool { return s.IsSolved() }

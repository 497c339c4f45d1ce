package astar_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pathwalk/pathwalk/astar"
	"github.com/pathwalk/pathwalk/core"
)

// mapGraph is a minimal core.Graph[string] backed by an adjacency map,
// used across this package's tests and examples.
type mapGraph map[string][]core.Edge[string]

func (g mapGraph) OutgoingEdges(n string) []core.Edge[string] {
	return g[n]
}

func edge(to string, w float64) core.Edge[string] {
	return core.Edge[string]{Destination: to, Weight: w}
}

// diamond is a small graph with two routes of different cost from "s" to
// "t": s->a->t costs 1+1=2, s->b->t costs 1+5=6.
func diamond() mapGraph {
	return mapGraph{
		"s": {edge("a", 1), edge("b", 1)},
		"a": {edge("t", 1)},
		"b": {edge("t", 5)},
		"t": {},
	}
}

func zeroHeuristic(string) float64 { return 0 }

func pathCost(path []core.Edge[string]) float64 {
	var total float64
	for _, e := range path {
		total += e.Weight
	}
	return total
}

func TestDijkstraFindsCheapestRoute(t *testing.T) {
	g := diamond()
	s, err := astar.Dijkstra[string](g, astar.WithTargetPredicate[string](func(n string) bool { return n == "t" }))
	require.NoError(t, err)

	path, err := s.Run("s", nil)
	require.NoError(t, err)
	require.NotNil(t, path)
	assert.Equal(t, float64(2), pathCost(path))
	assert.Equal(t, "t", path[len(path)-1].Destination)
}

func TestAStarWithConsistentHeuristic(t *testing.T) {
	g := diamond()
	h := func(n string) float64 {
		if n == "t" {
			return 0
		}
		return 1
	}
	s, err := astar.New[string](g, h)
	require.NoError(t, err)

	path, err := s.Run("s", nil)
	require.NoError(t, err)
	assert.Equal(t, float64(2), pathCost(path))
}

func TestNoPathReturnsNilNil(t *testing.T) {
	g := mapGraph{"s": {}, "t": {}}
	s, err := astar.Dijkstra[string](g, astar.WithTargetPredicate[string](func(n string) bool { return n == "t" }))
	require.NoError(t, err)

	path, err := s.Run("s", nil)
	require.NoError(t, err)
	assert.Nil(t, path)
}

func TestWeightedAStarBoundedSuboptimality(t *testing.T) {
	g := diamond()
	h := func(n string) float64 {
		if n == "t" {
			return 0
		}
		return 1
	}
	s, err := astar.New[string](g, h, astar.WithHeuristicMultiplier[string](3))
	require.NoError(t, err)

	path, err := s.Run("s", nil)
	require.NoError(t, err)
	require.NotNil(t, path)
	assert.LessOrEqual(t, pathCost(path), 3*float64(2))
}

func TestNewRejectsNilGraph(t *testing.T) {
	_, err := astar.New[string](nil, zeroHeuristic)
	assert.ErrorIs(t, err, core.ErrNilGraph)
}

func TestNewRejectsNilHeuristic(t *testing.T) {
	_, err := astar.New[string](diamond(), nil)
	assert.ErrorIs(t, err, core.ErrNilHeuristic)
}

func TestNewRejectsSubunitMultiplier(t *testing.T) {
	_, err := astar.New[string](diamond(), zeroHeuristic, astar.WithHeuristicMultiplier[string](0.5))
	assert.ErrorIs(t, err, core.ErrInvalidMultiplier)
}

func TestObserverSeesEveryVisitedNode(t *testing.T) {
	g := diamond()
	s, err := astar.Dijkstra[string](g, astar.WithTargetPredicate[string](func(n string) bool { return n == "t" }))
	require.NoError(t, err)

	seen := map[string]bool{}
	path, err := s.Run("s", func(n string) { seen[n] = true })
	require.NoError(t, err)

	assert.True(t, seen["s"])
	for _, e := range path {
		assert.True(t, seen[e.Destination])
	}
}

func TestIdempotence(t *testing.T) {
	g := diamond()
	s, err := astar.Dijkstra[string](g, astar.WithTargetPredicate[string](func(n string) bool { return n == "t" }))
	require.NoError(t, err)

	p1, err := s.Run("s", nil)
	require.NoError(t, err)
	p2, err := s.Run("s", nil)
	require.NoError(t, err)
	assert.Equal(t, pathCost(p1), pathCost(p2))
}

func TestDecreaseKeyRelaxesOpenNode(t *testing.T) {
	// A longer-first-discovered route to a shared node must be relaxed
	// down when a cheaper one is found later, before that node is popped:
	// a is popped first and opens c at 11, then b lowers c to 2.
	g := mapGraph{
		"s": {edge("a", 1), edge("b", 1.5)},
		"a": {edge("c", 10)},
		"b": {edge("c", 0.5)},
		"c": {},
	}
	s, err := astar.Dijkstra[string](g, astar.WithTargetPredicate[string](func(n string) bool { return n == "c" }))
	require.NoError(t, err)

	path, err := s.Run("s", nil)
	require.NoError(t, err)
	assert.Equal(t, float64(2), pathCost(path))
}

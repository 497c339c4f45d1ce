package localsearch_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pathwalk/pathwalk/core"
	"github.com/pathwalk/pathwalk/localsearch"
)

type mapGraph map[string][]core.Edge[string]

func (g mapGraph) OutgoingEdges(n string) []core.Edge[string] { return g[n] }

func edge(to string, w float64) core.Edge[string] {
	return core.Edge[string]{Destination: to, Weight: w}
}

func TestDescendsToLocalMinimum(t *testing.T) {
	g := mapGraph{
		"a": {edge("b", 1)},
		"b": {edge("c", 1)},
		"c": {edge("d", 1)},
		"d": {},
	}
	h := map[string]float64{"a": 3, "b": 2, "c": 1, "d": 0}

	s, err := localsearch.New[string](g, func(n string) float64 { return h[n] })
	require.NoError(t, err)

	var visited []string
	got := s.Run("a", func(n string) { visited = append(visited, n) })
	assert.Equal(t, "d", got)
	assert.Equal(t, []string{"a", "b", "c", "d"}, visited)
}

func TestStopsImmediatelyAtLocalMinimum(t *testing.T) {
	g := mapGraph{"a": {edge("b", 1)}, "b": {}}
	h := map[string]float64{"a": 0, "b": 5}

	s, err := localsearch.New[string](g, func(n string) float64 { return h[n] })
	require.NoError(t, err)

	got := s.Run("a", nil)
	assert.Equal(t, "a", got)
}

func TestPlateauBudgetBoundsSideMoves(t *testing.T) {
	// A flat ring of equal-heuristic nodes: every step is a side move,
	// so the search must stop once maxSides is exhausted rather than
	// wandering forever.
	g := mapGraph{
		"x": {edge("y", 1)},
		"y": {edge("z", 1)},
		"z": {edge("x", 1)},
	}
	flat := func(string) float64 { return 1 }

	s, err := localsearch.New[string](g, flat,
		localsearch.WithMaxSides[string](3),
		localsearch.WithRandSource[string](rand.New(rand.NewSource(42))))
	require.NoError(t, err)

	visitCount := 0
	s.Run("x", func(string) { visitCount++ })
	// One visit before any side move is taken, then at most maxSides
	// further moves before the budget trips.
	assert.LessOrEqual(t, visitCount, 4)
}

func TestRandomNodeSupplier(t *testing.T) {
	g := mapGraph{"start": {edge("end", 1)}, "end": {}}
	h := map[string]float64{"start": 1, "end": 0}

	s, err := localsearch.New[string](g, func(n string) float64 { return h[n] },
		localsearch.WithRandomNodeSupplier[string](func() string { return "start" }))
	require.NoError(t, err)

	got, ok := s.RunFromRandom(nil)
	require.True(t, ok)
	assert.Equal(t, "end", got)
}

func TestRunFromRandomWithoutSupplier(t *testing.T) {
	s, err := localsearch.New[string](mapGraph{}, func(string) float64 { return 0 })
	require.NoError(t, err)

	_, ok := s.RunFromRandom(nil)
	assert.False(t, ok)
}

func TestNewRejectsNilGraph(t *testing.T) {
	_, err := localsearch.New[string](nil, func(string) float64 { return 0 })
	assert.ErrorIs(t, err, core.ErrNilGraph)
}

func TestNewRejectsNilHeuristic(t *testing.T) {
	_, err := localsearch.New[string](mapGraph{}, nil)
	assert.ErrorIs(t, err, core.ErrNilHeuristic)
}

func TestNewRejectsNegativeMaxSides(t *testing.T) {
	_, err := localsearch.New[string](mapGraph{}, func(string) float64 { return 0 },
		localsearch.WithMaxSides[string](-1))
	assert.ErrorIs(t, err, core.ErrInvalidMaxSides)
}

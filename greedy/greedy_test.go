package greedy_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pathwalk/pathwalk/core"
	"github.com/pathwalk/pathwalk/greedy"
)

type mapGraph map[string][]core.Edge[string]

func (g mapGraph) OutgoingEdges(n string) []core.Edge[string] { return g[n] }

func edge(to string, w float64) core.Edge[string] {
	return core.Edge[string]{Destination: to, Weight: w}
}

func TestGreedyFindsAPath(t *testing.T) {
	g := mapGraph{
		"s": {edge("a", 1), edge("b", 1)},
		"a": {edge("t", 1)},
		"b": {edge("t", 5)},
		"t": {},
	}
	h := func(n string) float64 {
		if n == "t" {
			return 0
		}
		return 1
	}
	s, err := greedy.New[string](g, h)
	require.NoError(t, err)

	path, err := s.Run("s", nil)
	require.NoError(t, err)
	require.NotNil(t, path)
	assert.Equal(t, "t", path[len(path)-1].Destination)
}

func TestGreedyNoPath(t *testing.T) {
	g := mapGraph{"s": {}, "t": {}}
	h := func(n string) float64 {
		if n == "t" {
			return 0
		}
		return 1
	}
	s, err := greedy.New[string](g, h)
	require.NoError(t, err)

	path, err := s.Run("s", nil)
	require.NoError(t, err)
	assert.Nil(t, path)
}

func TestGreedyRejectsNilHeuristic(t *testing.T) {
	_, err := greedy.New[string](mapGraph{}, nil)
	assert.ErrorIs(t, err, core.ErrNilHeuristic)
}

func TestGreedyEachNodeDiscoveredOnce(t *testing.T) {
	// b and c both lead to a shared node "d"; d must only be enqueued
	// once even though it is reachable via two distinct edges.
	visits := map[string]int{}
	g := mapGraph{
		"s": {edge("b", 1), edge("c", 1)},
		"b": {edge("d", 1)},
		"c": {edge("d", 1)},
		"d": {},
	}
	h := func(n string) float64 {
		if n == "d" {
			return 0
		}
		return 1
	}
	s, err := greedy.New[string](g, h)
	require.NoError(t, err)

	_, err = s.Run("s", func(n string) { visits[n]++ })
	require.NoError(t, err)
	assert.LessOrEqual(t, visits["d"], 1)
}

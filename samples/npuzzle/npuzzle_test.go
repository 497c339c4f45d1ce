package npuzzle_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pathwalk/pathwalk/astar"
	"github.com/pathwalk/pathwalk/core"
	"github.com/pathwalk/pathwalk/samples/npuzzle"
)

func TestNewRejectsNonSquareCount(t *testing.T) {
	_, err := npuzzle.New(1, 2, 3)
	assert.ErrorIs(t, err, npuzzle.ErrInvalidSize)
}

func TestNewRejectsMissingEmptyCell(t *testing.T) {
	_, err := npuzzle.New(1, 2, 3, 4)
	assert.ErrorIs(t, err, npuzzle.ErrMissingEmptyCell)
}

func TestSolvedStateIsSolved(t *testing.T) {
	s, err := npuzzle.New(1, 2, 3, 4, 5, 6, 7, 8, 0)
	require.NoError(t, err)
	assert.True(t, s.IsSolved())
}

func TestOutgoingEdgesFromCorner(t *testing.T) {
	// Empty cell at (0,0): only right and down moves are legal.
	s, err := npuzzle.New(0, 2, 3, 4, 5, 6, 7, 8, 1)
	require.NoError(t, err)
	edges := npuzzle.Instance.OutgoingEdges(s)
	assert.Len(t, edges, 2)
}

func Test8PuzzleManhattanScenario(t *testing.T) {
	start, err := npuzzle.New(8, 7, 4, 1, 6, 3, 2, 5, 0)
	require.NoError(t, err)

	s, err := astar.New[npuzzle.State](npuzzle.Instance, npuzzle.Manhattan)
	require.NoError(t, err)

	path, err := s.Run(start, nil)
	require.NoError(t, err)
	require.NotEmpty(t, path)
	assert.True(t, path[len(path)-1].Destination.IsSolved())
	assert.Len(t, path, 22)
	assertValidPath(t, npuzzle.Instance, start, path)
}

func Test8PuzzleOutOfPlaceScenario(t *testing.T) {
	start, err := npuzzle.New(5, 3, 7, 4, 0, 6, 1, 2, 8)
	require.NoError(t, err)

	s, err := astar.New[npuzzle.State](npuzzle.Instance, npuzzle.OutOfPlace)
	require.NoError(t, err)

	path, err := s.Run(start, nil)
	require.NoError(t, err)
	assert.Len(t, path, 22)
}

func Test8PuzzleDijkstraScenario(t *testing.T) {
	start, err := npuzzle.New(7, 1, 2, 4, 8, 3, 5, 0, 6)
	require.NoError(t, err)

	s, err := astar.Dijkstra[npuzzle.State](npuzzle.Instance, astar.WithTargetPredicate[npuzzle.State](npuzzle.IsSolved))
	require.NoError(t, err)

	path, err := s.Run(start, nil)
	require.NoError(t, err)
	assert.Len(t, path, 13)
}

func Test15PuzzleWeightedAStarManhattanScenario(t *testing.T) {
	start, err := npuzzle.New(8, 12, 10, 7, 3, 14, 6, 13, 4, 9, 5, 2, 1, 15, 11, 0)
	require.NoError(t, err)

	s, err := astar.New[npuzzle.State](npuzzle.Instance, npuzzle.Manhattan,
		astar.WithHeuristicMultiplier[npuzzle.State](2))
	require.NoError(t, err)

	path, err := s.Run(start, nil)
	require.NoError(t, err)
	require.NotEmpty(t, path)
	assert.True(t, path[len(path)-1].Destination.IsSolved())
	assert.Len(t, path, 74)
	assertValidPath(t, npuzzle.Instance, start, path)
}

func assertValidPath(t *testing.T, g core.Graph[npuzzle.State], start npuzzle.State, path []core.Edge[npuzzle.State]) {
	t.Helper()
	cur := start
	for _, e := range path {
		found := false
		for _, out := range g.OutgoingEdges(cur) {
			if out == e {
				found = true
				break
			}
		}
		assert.True(t, found, "edge %+v not among outgoing edges of %+v", e, cur)
		cur = e.Destination
	}
}

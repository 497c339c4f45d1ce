package maze

import (
	"errors"

	"github.com/pathwalk/pathwalk/core"
)

// Cell is a grid coordinate. It is comparable, so it is used directly as
// the node type for every engine in this module.
type Cell struct {
	Row, Col int
}

// ErrEmptyGrid is returned by New when the grid has no rows.
var ErrEmptyGrid = errors.New("maze: grid must have at least one row")

// ErrRaggedGrid is returned by New when not every row has the same
// length.
var ErrRaggedGrid = errors.New("maze: every row must have the same length")

var directions = []struct {
	dr, dc int
	label  string
}{
	{0, -1, "left"}, {0, 1, "right"}, {-1, 0, "up"}, {1, 0, "down"},
	{-1, -1, "up-left"}, {-1, 1, "up-right"}, {1, -1, "down-left"}, {1, 1, "down-right"},
}

// Grid is a core.Graph[Cell] over a rectangular grid of movement costs.
// A cost of zero or less means the cell is blocked (no edges lead into
// it). Grid is immutable once built.
type Grid struct {
	rows [][]int
}

// New builds a Grid from a row-major cost matrix. Every row must have
// the same length.
func New(rows [][]int) (*Grid, error) {
	if len(rows) == 0 {
		return nil, ErrEmptyGrid
	}
	width := len(rows[0])
	copied := make([][]int, len(rows))
	for i, row := range rows {
		if len(row) != width {
			return nil, ErrRaggedGrid
		}
		copied[i] = append([]int(nil), row...)
	}
	return &Grid{rows: copied}, nil
}

// Height returns the number of rows.
func (g *Grid) Height() int { return len(g.rows) }

// Width returns the number of columns.
func (g *Grid) Width() int { return len(g.rows[0]) }

// Cost returns the movement cost of entering (row, col); a
// non-positive cost means the cell is blocked.
func (g *Grid) Cost(row, col int) int { return g.rows[row][col] }

// OutgoingEdges returns an edge to every 8-directional neighbour that is
// in range and not blocked, weighted by that neighbour's entry cost.
func (g *Grid) OutgoingEdges(c Cell) []core.Edge[Cell] {
	edges := make([]core.Edge[Cell], 0, 8)
	for _, d := range directions {
		row, col := c.Row+d.dr, c.Col+d.dc
		if row < 0 || row >= g.Height() || col < 0 || col >= g.Width() {
			continue
		}
		cost := g.Cost(row, col)
		if cost <= 0 {
			continue
		}
		edges = append(edges, core.Edge[Cell]{Label: d.label, Weight: float64(cost), Destination: Cell{Row: row, Col: col}})
	}
	return edges
}

// TargetCell returns a core.TargetFunc matching exactly the given cell.
func TargetCell(target Cell) core.TargetFunc[Cell] {
	return func(c Cell) bool { return c == target }
}

package npuzzle

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// ErrInvalidSize is returned by New when the number of tiles is not a
// positive perfect square.
var ErrInvalidSize = errors.New("npuzzle: tile count must be a positive perfect square")

// ErrMissingEmptyCell is returned by New when no tile value is <= 0, and
// also when more than one is.
var ErrMissingEmptyCell = errors.New("npuzzle: no empty cell in tile values")

// State is one configuration of the puzzle: an n*n grid of tiles with
// exactly one empty cell. It is comparable, so it can be used directly
// as the node type for every engine in this module.
type State struct {
	size       int
	emptyIndex int
	cells      string
}

// New builds a State from a row-major list of tile values. Any value <=
// 0 is treated as the empty cell. len(values) must be a positive perfect
// square.
func New(values ...int) (State, error) {
	n := len(values)
	side := int(math.Sqrt(float64(n)))
	if side == 0 || side*side != n {
		return State{}, ErrInvalidSize
	}
	emptyIndex := -1
	cells := make([]byte, n)
	for i, v := range values {
		if v <= 0 {
			if emptyIndex != -1 {
				return State{}, ErrMissingEmptyCell
			}
			emptyIndex = i
			cells[i] = 0
			continue
		}
		if v > math.MaxUint8 {
			return State{}, fmt.Errorf("npuzzle: tile value %d out of range", v)
		}
		cells[i] = byte(v)
	}
	if emptyIndex == -1 {
		return State{}, ErrMissingEmptyCell
	}
	return State{size: side, emptyIndex: emptyIndex, cells: string(cells)}, nil
}

// Size returns the side length of the grid.
func (s State) Size() int { return s.size }

// Cell returns the tile at (row, col); 0 means the empty cell.
func (s State) Cell(row, col int) int {
	return int(s.cells[row*s.size+col])
}

// IsSolved reports whether the tiles are ordered 1..n*n-1 with the empty
// cell last.
func (s State) IsSolved() bool {
	n := s.size * s.size
	if s.cells[n-1] != 0 {
		return false
	}
	for i := 1; i < n; i++ {
		if int(s.cells[i-1]) != i {
			return false
		}
	}
	return true
}

func (s State) String() string {
	var b strings.Builder
	for i := 0; i < s.size; i++ {
		for j := 0; j < s.size; j++ {
			if j > 0 {
				b.WriteByte(' ')
			}
			fmt.Fprintf(&b, "%d", s.Cell(i, j))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func (s State) emptyRow() int { return s.emptyIndex / s.size }
func (s State) emptyCol() int { return s.emptyIndex % s.size }

// withEmptyMovedTo returns the state obtained by swapping the empty cell
// with whatever tile sits at newIndex.
func (s State) withEmptyMovedTo(newIndex int) State {
	cells := []byte(s.cells)
	cells[s.emptyIndex] = cells[newIndex]
	cells[newIndex] = 0
	return State{size: s.size, emptyIndex: newIndex, cells: string(cells)}
}

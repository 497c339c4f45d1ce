package nqueens

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/pathwalk/pathwalk/core"
)

// ErrInvalidSize is returned by New when n is less than 1.
var ErrInvalidSize = errors.New("nqueens: n must be >= 1")

// ErrRowOutOfRange is returned by New when a row assignment is outside
// [0, n).
var ErrRowOutOfRange = errors.New("nqueens: row out of range")

// Board places exactly one queen per column on an n*n board: rows[col]
// is the row of the queen in that column. Board is comparable, so it is
// used directly as the node type for localsearch.
type Board struct {
	n    int
	rows string
}

// New builds a Board from a row-per-column assignment.
func New(rows ...int) (Board, error) {
	n := len(rows)
	if n == 0 {
		return Board{}, ErrInvalidSize
	}
	buf := make([]byte, n)
	for i, r := range rows {
		if r < 0 || r >= n {
			return Board{}, ErrRowOutOfRange
		}
		buf[i] = byte(r)
	}
	return Board{n: n, rows: string(buf)}, nil
}

// RandomBoard builds a random n*n Board using rnd for row choices.
func RandomBoard(n int, rnd *rand.Rand) (Board, error) {
	if n < 1 {
		return Board{}, ErrInvalidSize
	}
	buf := make([]byte, n)
	for i := range buf {
		buf[i] = byte(rnd.Intn(n))
	}
	return Board{n: n, rows: string(buf)}, nil
}

// Size returns the board's side length.
func (b Board) Size() int { return b.n }

// Row returns the row of the queen placed in col.
func (b Board) Row(col int) int { return int(b.rows[col]) }

// IsSolved reports whether no two queens attack each other.
func (b Board) IsSolved() bool { return Conflicts(b) == 0 }

func (b Board) String() string {
	s := "["
	for i := 0; i < b.n; i++ {
		if i > 0 {
			s += " "
		}
		s += fmt.Sprint(b.Row(i))
	}
	return s + "]"
}

func (b Board) withRow(col, row int) Board {
	buf := []byte(b.rows)
	buf[col] = byte(row)
	return Board{n: b.n, rows: string(buf)}
}

// Graph adapts Board's "move one queen to another row in its column"
// moves to core.Graph. Its zero value is ready to use.
type Graph struct{}

// Instance is the singleton Graph value, since Graph carries no state.
var Instance = Graph{}

// OutgoingEdges returns one edge per (column, row) reassignment that
// actually changes the board, each with weight 1.
func (Graph) OutgoingEdges(b Board) []core.Edge[Board] {
	n := b.Size()
	edges := make([]core.Edge[Board], 0, n*(n-1))
	for col := 0; col < n; col++ {
		current := b.Row(col)
		for row := 0; row < n; row++ {
			if row == current {
				continue
			}
			edges = append(edges, core.Edge[Board]{
				Label:       fmt.Sprintf("%d->%d", col, row),
				Weight:      1,
				Destination: b.withRow(col, row),
			})
		}
	}
	return edges
}

// Conflicts counts the pairs of queens that share a row or a diagonal.
// Queens never share a column, since each column holds exactly one
// queen. Zero means no two queens attack each other.
func Conflicts(b Board) float64 {
	n := b.Size()
	var count float64
	for col := 0; col < n; col++ {
		rowA := b.Row(col)
		for other := col + 1; other < n; other++ {
			rowB := b.Row(other)
			dist := other - col
			if rowB == rowA || rowB == rowA-dist || rowB == rowA+dist {
				count++
			}
		}
	}
	return count
}

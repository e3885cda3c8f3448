package model

import (
	"crypto/md5"
	"fmt"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol-regions/rules"
)

// Grid represents one generation of the board.
// Cells are stored row-major; a Grid is never modified after construction.
type Grid struct {
	rows  int
	cols  int
	cells []uint8
}

// NewGrid creates a grid with the specified dimensions from row-major cell values
func NewGrid(rows, cols int, values []uint8) (*Grid, error) {
	if rows < 1 || cols < 1 {
		return nil, errors.Wrapf(ErrInvalidDimensions, "[NewGrid] rows: %d, cols: %d", rows, cols)
	}
	if len(values) != rows*cols {
		return nil, errors.Wrapf(ErrInvalidCell, "[NewGrid] expected %d values, got %d", rows*cols, len(values))
	}
	for i, v := range values {
		if v != rules.Dead && v != rules.Alive {
			return nil, errors.Wrapf(ErrInvalidCell, "[NewGrid] value %d at (%d, %d)", v, i/cols, i%cols)
		}
	}

	cells := make([]uint8, len(values))
	copy(cells, values)
	return &Grid{rows: rows, cols: cols, cells: cells}, nil
}

// EmptyGrid creates a grid with every cell dead
func EmptyGrid(rows, cols int) (*Grid, error) {
	if rows < 1 || cols < 1 {
		return nil, errors.Wrapf(ErrInvalidDimensions, "[EmptyGrid] rows: %d, cols: %d", rows, cols)
	}
	return &Grid{rows: rows, cols: cols, cells: make([]uint8, rows*cols)}, nil
}

// Rows returns the number of rows of the grid
func (g *Grid) Rows() int {
	return g.rows
}

// Cols returns the number of columns of the grid
func (g *Grid) Cols() int {
	return g.cols
}

// At returns the value of a cell. Out of range coordinates read as dead.
func (g *Grid) At(r, c int) uint8 {
	if r < 0 || r >= g.rows || c < 0 || c >= g.cols {
		return rules.Dead
	}
	return g.cells[r*g.cols+c]
}

// Alive reports whether a cell is alive
func (g *Grid) Alive(r, c int) bool {
	return g.At(r, c) == rules.Alive
}

// Cells returns a row-major copy of the cell values
func (g *Grid) Cells() []uint8 {
	out := make([]uint8, len(g.cells))
	copy(out, g.cells)
	return out
}

// NeighborSum returns the number of live neighbors of a cell
func (g *Grid) NeighborSum(r, c int) int {
	return NeighborSum(g.cells, g.rows, g.cols, r, c)
}

// Apply returns a new grid holding the receiver's cells with every change written over them.
// The receiver is left untouched.
func (g *Grid) Apply(changes []CellChange) *Grid {
	return g.applyInto(&Grid{rows: g.rows, cols: g.cols, cells: make([]uint8, len(g.cells))}, changes)
}

// applyInto copies the receiver into next and writes the changes. next must match the dimensions.
func (g *Grid) applyInto(next *Grid, changes []CellChange) *Grid {
	copy(next.cells, g.cells)
	for _, ch := range changes {
		next.cells[ch.Row*next.cols+ch.Col] = ch.Value
	}
	return next
}

// Equal reports whether two grids have the same dimensions and cells
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.rows != other.rows || g.cols != other.cols {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() (count int) {
	for _, v := range g.cells {
		if v == rules.Alive {
			count++
		}
	}
	return
}

// GetGridHash returns an MD5 hash of the current grid state
func (g *Grid) GetGridHash() string {
	h := md5.New()
	h.Write([]byte(fmt.Sprintf("%dx%d:", g.rows, g.cols)))
	h.Write(g.cells)
	return fmt.Sprintf("%x", h.Sum(nil))
}

// reset resizes the grid for reuse and clears every cell
func (g *Grid) reset(rows, cols int) {
	g.rows = rows
	g.cols = cols
	if cap(g.cells) < rows*cols {
		g.cells = make([]uint8, rows*cols)
		return
	}
	g.cells = g.cells[:rows*cols]
	clear(g.cells)
}

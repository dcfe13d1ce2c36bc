// Package bitgrid provides a fixed-size two-dimensional boolean matrix stored
// at one bit per cell.
//
// Cells are laid out row-major. Cell (i, j) maps to the linear index
// i*cols+j, which is split into a group (byte) index and a bit offset within
// that group, least-significant bit first.
package bitgrid

import (
	"github.com/spacemeshos/bitgrid/shared"
)

// Grid is a rows x cols boolean matrix packed into bytes.
//
// A Grid is not safe for concurrent use. Set performs a read-modify-write of
// a whole group, so two writers touching different cells of the same group
// can lose each other's update. Callers sharing a Grid must serialize writes
// externally.
type Grid struct {
	rows   uint64
	cols   uint64
	groups []byte
}

// New returns a rows x cols grid with every cell set to false.
//
// rows*cols must not overflow uint64; use shared.ValidateDimensions to check
// untrusted dimensions beforehand.
func New(rows, cols uint64) *Grid {
	return &Grid{
		rows:   rows,
		cols:   cols,
		groups: make([]byte, shared.NumGroups(rows*cols)),
	}
}

// Rows returns the number of rows.
func (g *Grid) Rows() uint64 { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() uint64 { return g.cols }

// NumGroups returns the number of bytes backing the grid.
func (g *Grid) NumGroups() int { return len(g.groups) }

// Get returns the value of cell (i, j).
// It panics with *IndexOutOfBoundsError if the cell is outside the grid.
func (g *Grid) Get(i, j uint64) bool {
	g.check(i, j)
	group, bit := g.indexes(i, j)
	return g.groups[group]&(1<<bit) != 0
}

// Set assigns value to cell (i, j), leaving every other cell untouched.
// It panics with *IndexOutOfBoundsError if the cell is outside the grid.
func (g *Grid) Set(i, j uint64, value bool) {
	g.check(i, j)
	group, bit := g.indexes(i, j)
	if value {
		g.groups[group] |= 1 << bit
	} else {
		g.groups[group] &^= 1 << bit
	}
}

func (g *Grid) check(i, j uint64) {
	if i >= g.rows || j >= g.cols {
		panic(&IndexOutOfBoundsError{Row: i, Col: j, Rows: g.rows, Cols: g.cols})
	}
}

// indexes maps cell (i, j) to its group index and bit offset.
func (g *Grid) indexes(i, j uint64) (uint64, uint64) {
	linear := i*g.cols + j
	return linear / shared.GroupBits, linear % shared.GroupBits
}
